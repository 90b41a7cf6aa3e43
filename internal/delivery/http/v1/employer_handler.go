package v1

import (
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"net/http"

	"github.com/gin-gonic/gin"
)

type EmployerHandler struct {
	employerUC domain.EmployerUsecase
}

func NewEmployerHandler(r *gin.RouterGroup, employerUC domain.EmployerUsecase) {
	handler := &EmployerHandler{employerUC: employerUC}

	employers := r.Group("/employers")
	{
		employers.GET("/profile", handler.GetProfile)
		employers.PUT("/profile", handler.UpdateProfile)
	}
}

// GetProfile godoc
// @Summary      Get my employer profile
// @Tags         employers
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.EmployerProfile}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /employers/profile [get]
// @Security     BearerAuth
func (h *EmployerHandler) GetProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	ctx := contextWithIdentity(c)
	profile, err := h.employerUC.GetProfile(ctx, userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile retrieved", profile)
}

// UpdateProfile godoc
// @Summary      Update my employer profile
// @Tags         employers
// @Accept       json
// @Produce      json
// @Param        body  body      domain.EmployerProfile  true  "Profile fields"
// @Success      200   {object}  response.Response{data=domain.EmployerProfile}
// @Failure      400   {object}  response.Response
// @Router       /employers/profile [put]
// @Security     BearerAuth
func (h *EmployerHandler) UpdateProfile(c *gin.Context) {
	var req domain.EmployerProfile
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	ctx := contextWithIdentity(c)
	if err := h.employerUC.UpdateProfile(ctx, &req); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", &req)
}
