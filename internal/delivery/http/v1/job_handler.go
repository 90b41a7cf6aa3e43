package v1

import (
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

// NewJobHandler registers public listing routes and the employer's posting
// routes.
func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase, writeLimit gin.HandlerFunc) {
	handler := &JobHandler{jobUC: jobUC}

	public.GET("/jobs", handler.ListJobs)
	public.GET("/jobs/:id", handler.GetJob)

	employers := protected.Group("/employers")
	{
		employers.POST("/jobs", writeLimit, handler.PostJob)
		employers.GET("/jobs", handler.ListMyJobs)
	}
}

// ListJobs godoc
// @Summary      List active jobs
// @Description  Active postings with company data, newest first, optionally filtered by keyword and location substring
// @Tags         jobs
// @Produce      json
// @Param        q         query     string  false  "Keyword matched against title and description"
// @Param        location  query     string  false  "Location substring"
// @Success      200       {object}  response.Response{data=[]domain.JobWithEmployer}
// @Router       /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	filter := domain.JobFilter{
		Query:    c.Query("q"),
		Location: c.Query("location"),
	}

	jobs, err := h.jobUC.ListActiveJobs(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Jobs retrieved", jobs)
}

// GetJob godoc
// @Summary      Get job details
// @Description  Job with its employer's company details
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response{data=domain.JobWithEmployer}
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	job, err := h.jobUC.GetJobDetails(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job retrieved", job)
}

// PostJob godoc
// @Summary      Post a new job
// @Description  Create a job posting owned by the authenticated employer (Employer only)
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        body  body      domain.PostJobInput  true  "Job posting form"
// @Success      201   {object}  response.Response{data=domain.Job}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Router       /employers/jobs [post]
// @Security     BearerAuth
func (h *JobHandler) PostJob(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	if role != domain.RoleEmployer && role != domain.RoleAdmin {
		c.Error(apperror.Forbidden("Only employers can post jobs"))
		return
	}

	var req domain.PostJobInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job, err := h.jobUC.PostJob(c.Request.Context(), userID, &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job posted successfully", job)
}

// ListMyJobs godoc
// @Summary      List my job postings
// @Description  All postings owned by the authenticated employer, newest first
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Job}
// @Failure      403  {object}  response.Response
// @Router       /employers/jobs [get]
// @Security     BearerAuth
func (h *JobHandler) ListMyJobs(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	if role != domain.RoleEmployer && role != domain.RoleAdmin {
		c.Error(apperror.Forbidden("Only employers can view their postings"))
		return
	}

	jobs, err := h.jobUC.ListMyJobs(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Jobs retrieved", jobs)
}
