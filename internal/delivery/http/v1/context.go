package v1

import (
	"context"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// contextWithIdentity copies the actor's identity from the gin context onto
// the request context so usecases can enforce ownership without depending on
// the HTTP layer.
func contextWithIdentity(c *gin.Context) context.Context {
	ctx := c.Request.Context()
	if userID := c.GetString(string(domain.KeyUserID)); userID != "" {
		ctx = context.WithValue(ctx, domain.KeyUserID, userID)
	}
	if email := c.GetString(string(domain.KeyUserEmail)); email != "" {
		ctx = context.WithValue(ctx, domain.KeyUserEmail, email)
	}
	if role := c.GetString(string(domain.KeyUserRole)); role != "" {
		ctx = context.WithValue(ctx, domain.KeyUserRole, role)
	}
	return ctx
}
