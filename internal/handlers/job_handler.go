package handlers

import (
	"net/http"

	"workbridge_backend/internal/listing"
	"workbridge_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	jobs := rg.Group("/jobs")
	{
		jobs.GET("", h.ListJobs)
		jobs.GET("/:id", h.GetJob)
	}
	rg.GET("/catalog", h.Catalog)
}

// ListJobs godoc
// @Summary List open jobs
// @Description Active jobs, newest first, narrowed by search, category, region and salary range.
// @Tags jobs
// @Produce json
// @Param search query string false "Matches title or company"
// @Param category query string false "Category or 'all'"
// @Param region query string false "Region or 'all'"
// @Param salary query string false "Salary range key"
// @Success 200 {object} dto.JobListResponse
// @Router /api/v1/jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	var filter listing.JobFilter
	if !h.BindAndValidate_Query(c, &filter) {
		return
	}

	resp, err := h.jobService.ListPublic(c.Request.Context(), h.GetDB(c), filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetJob godoc
// @Summary Job details
// @Tags jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} dto.JobDetails
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/v1/jobs/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.jobService.GetPublic(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// Catalog godoc
// @Summary Option lists for filters and forms
// @Tags jobs
// @Produce json
// @Success 200 {object} dto.CatalogResponse
// @Router /api/v1/catalog [get]
func (h *JobHandler) Catalog(c *gin.Context) {
	c.JSON(http.StatusOK, h.jobService.Catalog())
}
