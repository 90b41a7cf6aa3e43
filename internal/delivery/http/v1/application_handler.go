package v1

import (
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewApplicationHandler registers application routes
func NewApplicationHandler(r *gin.RouterGroup, applicationUC domain.ApplicationUsecase, writeLimit gin.HandlerFunc) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	// Candidate routes
	candidates := r.Group("/candidates")
	{
		candidates.POST("/jobs/:jobId/apply", writeLimit, handler.ApplyToJob)
		candidates.GET("/applications", handler.GetMyApplications)
	}

	// Employer routes
	employers := r.Group("/employers")
	{
		employers.GET("/jobs/:jobId/applications", handler.ListJobApplications)
		employers.PATCH("/applications/:id", handler.UpdateApplicationStatus)
	}
}

// ApplyToJobRequest is the request payload for applying to a job
type ApplyToJobRequest struct {
	CoverLetter string `json:"cover_letter"`
}

// ApplyToJob godoc
// @Summary      Apply to a job
// @Description  Submit an application with an optional cover letter (Candidate only)
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        jobId  path      int                true  "Job ID"
// @Param        body   body      ApplyToJobRequest  false "Application data"
// @Success      201    {object}  response.Response{data=domain.Application}
// @Failure      403    {object}  response.Response
// @Failure      409    {object}  response.Response
// @Router       /candidates/jobs/{jobId}/apply [post]
// @Security     BearerAuth
func (h *ApplicationHandler) ApplyToJob(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	// Only candidates can apply
	if role != domain.RoleCandidate {
		c.Error(apperror.Forbidden("Only candidates can apply to jobs"))
		return
	}

	jobID, err := strconv.ParseInt(c.Param("jobId"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	// Body is optional: applying without a cover letter is valid
	var req ApplyToJobRequest
	_ = c.ShouldBindJSON(&req)

	app, err := h.applicationUC.Submit(c.Request.Context(), userID, jobID, req.CoverLetter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted successfully", app)
}

// GetMyApplications godoc
// @Summary      Get my applications
// @Description  All applications submitted by the current candidate, newest first
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Application}
// @Failure      401  {object}  response.Response
// @Router       /candidates/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) GetMyApplications(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	applications, err := h.applicationUC.ListForCandidate(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", applications)
}

// ListJobApplications godoc
// @Summary      List applications for a job
// @Description  All applications for a job with applicant name and email (owning employer only)
// @Tags         applications
// @Produce      json
// @Param        jobId  path      int  true  "Job ID"
// @Success      200    {object}  response.Response{data=[]domain.Application}
// @Failure      403    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /employers/jobs/{jobId}/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListJobApplications(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	if role != domain.RoleEmployer && role != domain.RoleAdmin {
		c.Error(apperror.Forbidden("Only employers can view job applications"))
		return
	}

	jobID, err := strconv.ParseInt(c.Param("jobId"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	applications, err := h.applicationUC.ListForJob(c.Request.Context(), userID, jobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", applications)
}

// UpdateStatusRequest is the request payload for updating application status
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=accepted rejected"`
}

// UpdateApplicationStatus godoc
// @Summary      Update application status
// @Description  Accept or reject a pending application (owning employer only)
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      int                  true  "Application ID"
// @Param        body  body      UpdateStatusRequest  true  "Status update"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /employers/applications/{id} [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateApplicationStatus(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	if role != domain.RoleEmployer && role != domain.RoleAdmin {
		c.Error(apperror.Forbidden("Only employers can update application status"))
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid application ID"))
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.applicationUC.SetStatus(c.Request.Context(), userID, id, req.Status); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application status updated", nil)
}
