package middleware

import (
	"fmt"
	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/auth"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func extractToken(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := c.Cookie("auth_token"); err == nil {
		return cookie
	}
	return ""
}

func parseClaims(tokenString string, jwksProvider *auth.Provider, cfg *config.Config) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); ok {
			// HS256 - shared secret
			if cfg.SupabaseJWTSecret == "" {
				return nil, fmt.Errorf("HS256 token received but SUPABASE_JWT_SECRET is not configured")
			}
			return []byte(cfg.SupabaseJWTSecret), nil
		}
		if _, ok := token.Method.(*jwt.SigningMethodRSA); ok {
			// RS256 - JWKS
			return jwksProvider.KeyFunc(token)
		}
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid claims")
	}
	return claims, nil
}

// AuthMiddleware requires a valid session token and places the actor's
// identity on the context. The role comes from the profiles table, never from
// the token; a token whose profile row does not exist yet (signup in
// progress) carries an empty role.
func AuthMiddleware(jwksProvider *auth.Provider, cfg *config.Config, identityUC domain.IdentityUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
			c.Abort()
			return
		}

		claims, err := parseClaims(tokenString, jwksProvider, cfg)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		sub, _ := claims["sub"].(string)
		email, _ := claims["email"].(string)
		if sub == "" {
			response.Error(c, http.StatusUnauthorized, "Invalid token subject", nil)
			c.Abort()
			return
		}

		// Resolve the role from the database, not the JWT: the token's role
		// claim is Supabase's "authenticated", not ours. A missing profile is
		// tolerated here so signup endpoints can run; role-gated handlers
		// reject the empty role.
		role := ""
		if identity, err := identityUC.Resolve(c.Request.Context(), sub); err == nil && identity.Profile != nil {
			role = identity.Profile.Role
		}

		c.Set(string(domain.KeyUserID), sub)
		c.Set(string(domain.KeyUserEmail), email)
		c.Set(string(domain.KeyUserRole), role)

		c.Next()
	}
}

// OptionalAuth resolves the actor when a valid token is present and leaves the
// context unauthenticated otherwise. Public pages treat a missing session as a
// valid state, never an error.
func OptionalAuth(jwksProvider *auth.Provider, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.Next()
			return
		}

		claims, err := parseClaims(tokenString, jwksProvider, cfg)
		if err != nil {
			c.Next()
			return
		}

		if sub, _ := claims["sub"].(string); sub != "" {
			c.Set(string(domain.KeyUserID), sub)
			if email, _ := claims["email"].(string); email != "" {
				c.Set(string(domain.KeyUserEmail), email)
			}
		}
		c.Next()
	}
}
