package v1

import (
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

func NewCandidateHandler(r *gin.RouterGroup, candidateUC domain.CandidateUsecase, writeLimit gin.HandlerFunc) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	candidates := r.Group("/candidates")
	{
		candidates.GET("/profile", handler.GetProfile)
		candidates.PUT("/profile", handler.UpdateProfile)
		candidates.POST("/resume", writeLimit, handler.UploadResume)
	}
}

// GetProfile godoc
// @Summary      Get my candidate profile
// @Tags         candidates
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.CandidateProfile}
// @Failure      401  {object}  response.Response
// @Router       /candidates/profile [get]
// @Security     BearerAuth
func (h *CandidateHandler) GetProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	ctx := contextWithIdentity(c)
	profile, err := h.candidateUC.GetProfile(ctx, userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile retrieved", profile)
}

// UpdateProfile godoc
// @Summary      Update my candidate profile
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        body  body      domain.CandidateProfile  true  "Profile fields"
// @Success      200   {object}  response.Response{data=domain.CandidateProfile}
// @Failure      400   {object}  response.Response
// @Router       /candidates/profile [put]
// @Security     BearerAuth
func (h *CandidateHandler) UpdateProfile(c *gin.Context) {
	var req domain.CandidateProfile
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	ctx := contextWithIdentity(c)
	if err := h.candidateUC.UpdateProfile(ctx, &req); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", &req)
}

// UploadResume godoc
// @Summary      Upload my resume
// @Description  Store a resume file (.pdf, .doc, .docx) and record its URL on the candidate profile
// @Tags         candidates
// @Accept       multipart/form-data
// @Produce      json
// @Param        resume  formData  file  true  "Resume file"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Router       /candidates/resume [post]
// @Security     BearerAuth
func (h *CandidateHandler) UploadResume(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	if role != domain.RoleCandidate {
		c.Error(apperror.Forbidden("Only candidates can upload a resume"))
		return
	}

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		c.Error(apperror.BadRequest("Resume file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.BadRequest("Could not read resume file"))
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	url, err := h.candidateUC.UploadResume(c.Request.Context(), userID, fileHeader.Filename, content)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume uploaded successfully", gin.H{"resume_url": url})
}
