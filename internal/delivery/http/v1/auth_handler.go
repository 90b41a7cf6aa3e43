package v1

import (
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	identityUC domain.IdentityUsecase
}

// NewAuthHandler registers signup and session routes. Signup completes an
// account that already authenticated against Supabase: the token exists but
// the profile rows do not yet.
func NewAuthHandler(r *gin.RouterGroup, identityUC domain.IdentityUsecase, writeLimit gin.HandlerFunc) {
	handler := &AuthHandler{identityUC: identityUC}

	auth := r.Group("/auth")
	{
		auth.POST("/signup/candidate", writeLimit, handler.SignupCandidate)
		auth.POST("/signup/employer", writeLimit, handler.SignupEmployer)
		auth.GET("/me", handler.Me)
	}
}

// SignupCandidate godoc
// @Summary      Complete candidate signup
// @Description  Create the profile and candidate profile for the authenticated user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      domain.CandidateSignup  true  "Signup data"
// @Success      201   {object}  response.Response{data=domain.Identity}
// @Failure      400   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /auth/signup/candidate [post]
// @Security     BearerAuth
func (h *AuthHandler) SignupCandidate(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var req domain.CandidateSignup
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	identity, err := h.identityUC.RegisterCandidate(c.Request.Context(), userID, &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Account created successfully", identity)
}

// SignupEmployer godoc
// @Summary      Complete employer signup
// @Description  Create the profile and employer profile for the authenticated user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      domain.EmployerSignup  true  "Signup data"
// @Success      201   {object}  response.Response{data=domain.Identity}
// @Failure      400   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /auth/signup/employer [post]
// @Security     BearerAuth
func (h *AuthHandler) SignupEmployer(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var req domain.EmployerSignup
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	identity, err := h.identityUC.RegisterEmployer(c.Request.Context(), userID, &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Account created successfully", identity)
}

// Me godoc
// @Summary      Get the current identity
// @Description  Resolve the session to its profile and role-specific profile
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Identity}
// @Failure      401  {object}  response.Response
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	identity, err := h.identityUC.Resolve(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Identity resolved", identity)
}
