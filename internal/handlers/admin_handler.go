package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"workbridge_backend/internal/admin"
	"workbridge_backend/internal/forms"
	"workbridge_backend/internal/listing"
	"workbridge_backend/internal/logger"
	"workbridge_backend/internal/middleware"
	"workbridge_backend/internal/models"
	"workbridge_backend/internal/services"
	"workbridge_backend/internal/services/dto"
	"workbridge_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	*BaseHandler
	adminService services.AdminService
	signer       admin.Signer
	workflow     models.StatusWorkflow
	cvLinkTTL    time.Duration
}

func NewAdminHandler(base *BaseHandler, adminService services.AdminService, signer admin.Signer, workflow models.StatusWorkflow, cvLinkTTL time.Duration) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  base,
		adminService: adminService,
		signer:       signer,
		workflow:     workflow,
		cvLinkTTL:    cvLinkTTL,
	}
}

func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	adm := rg.Group("/admin", middleware.AdminOnly()...)
	{
		adm.GET("/dashboard", h.Dashboard)

		adm.GET("/jobs", h.ListJobs)
		adm.POST("/jobs", h.CreateJob)
		adm.PUT("/jobs/:id", h.UpdateJob)
		adm.DELETE("/jobs/:id", h.DeleteJob)

		adm.GET("/inquiries", h.ListInquiries)
		adm.GET("/inquiries/:id", h.GetInquiry)
		adm.DELETE("/inquiries/:id", h.DeleteInquiry)

		adm.GET("/candidates", h.ListCandidates)
		adm.GET("/candidates/:id", h.GetCandidate)
		adm.PATCH("/candidates/:id/status", h.UpdateCandidateStatus)
		adm.DELETE("/candidates/:id", h.DeleteCandidate)
		adm.GET("/candidates/:id/cv", h.CandidateCV)
	}
}

// manager binds a dashboard manager to this request's db. Deletes go
// through only with ?confirm=true.
func (h *AdminHandler) manager(c *gin.Context) *admin.Manager {
	confirmed, _ := strconv.ParseBool(c.Query("confirm"))
	return admin.NewManager(
		h.adminService.Store(h.GetDB(c)),
		h.signer,
		admin.WithConfirmer(admin.Confirmed(confirmed)),
		admin.WithWorkflow(h.workflow),
		admin.WithCVLinkTTL(h.cvLinkTTL),
	)
}

// AdminResult is the body of an admin mutation.
type AdminResult struct {
	Data    any            `json:"data,omitempty"`
	Notices []forms.Notice `json:"notices,omitempty"`
}

type dashboardQuery struct {
	listing.AdminJobFilter
	listing.InquiryFilter
	listing.CandidateFilter
}

type DashboardResponse struct {
	Jobs          admin.Collection[models.Job]        `json:"jobs"`
	Inquiries     admin.Collection[models.JobInquiry] `json:"inquiries"`
	Candidates    admin.Collection[models.Candidate]  `json:"candidates"`
	Nationalities []string                            `json:"nationalities"`
	Workflow      string                              `json:"workflow"`
	Notices       []forms.Notice                      `json:"notices,omitempty"`
}

// Dashboard godoc
// @Summary Admin dashboard
// @Description Jobs, inquiries and candidates loaded in parallel. A collection that fails to load is reported in its own state.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} DashboardResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Router /api/v1/admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	var q dashboardQuery
	if !h.BindAndValidate_Query(c, &q) {
		return
	}

	ctx := c.Request.Context()
	m := h.manager(c)
	if err := m.Load(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		logger.CtxWarn(ctx, "Dashboard loaded with errors", "error", err)
	}

	jobs := m.JobsCollection()
	jobs.Items = listing.FilterAdminJobs(jobs.Items, q.AdminJobFilter)
	inquiries := m.InquiriesCollection()
	inquiries.Items = listing.FilterInquiries(inquiries.Items, q.InquiryFilter)
	candidates := m.CandidatesCollection()
	candidates.Items = listing.FilterCandidates(candidates.Items, q.CandidateFilter)

	c.JSON(http.StatusOK, DashboardResponse{
		Jobs:          jobs,
		Inquiries:     inquiries,
		Candidates:    candidates,
		Nationalities: m.Nationalities(),
		Workflow:      m.Workflow().Name,
		Notices:       m.Notices(),
	})
}

// ListJobs godoc
// @Summary All jobs, active or not
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param job_search query string false "Title, company or location"
// @Param job_category query string false "Category or 'all'"
// @Param job_status query string false "active, inactive or all"
// @Success 200 {array} models.Job
// @Router /api/v1/admin/jobs [get]
func (h *AdminHandler) ListJobs(c *gin.Context) {
	var f listing.AdminJobFilter
	if !h.BindAndValidate_Query(c, &f) {
		return
	}
	m := h.manager(c)
	if err := m.LoadJobs(c.Request.Context()); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, m.Jobs(f))
}

// CreateJob godoc
// @Summary Create a job
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param job body dto.JobRequest true "Job"
// @Success 201 {object} models.Job
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /api/v1/admin/jobs [post]
func (h *AdminHandler) CreateJob(c *gin.Context) {
	h.saveJob(c, "", http.StatusCreated)
}

// UpdateJob godoc
// @Summary Update a job
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Param job body dto.JobRequest true "Job"
// @Success 200 {object} models.Job
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/v1/admin/jobs/{id} [put]
func (h *AdminHandler) UpdateJob(c *gin.Context) {
	h.saveJob(c, c.Param("id"), http.StatusOK)
}

func (h *AdminHandler) saveJob(c *gin.Context, id string, status int) {
	actorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	fields, _, ok := h.bindFormValues(c)
	if !ok {
		return
	}

	form := forms.NewJobEditorForm(h.validator, forms.WithResetDelay(0))
	if err := form.Load(fields, nil); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	m := h.manager(c)
	var saved *models.Job
	_, err := form.Submit(c.Request.Context(), func(ctx context.Context, in dto.JobInput, _ *forms.FileInfo) error {
		var err error
		saved, err = m.SaveJob(ctx, id, in, actorID)
		return err
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(status, AdminResult{Data: saved, Notices: m.Notices()})
}

// DeleteJob godoc
// @Summary Delete a job
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Param confirm query bool true "Must be true"
// @Success 200 {object} handlers.AdminResult
// @Failure 428 {object} apperrors.ErrorResponse
// @Router /api/v1/admin/jobs/{id} [delete]
func (h *AdminHandler) DeleteJob(c *gin.Context) {
	m := h.manager(c)
	h.finishDelete(c, m, "job", m.DeleteJob(c.Request.Context(), c.Param("id")))
}

func (h *AdminHandler) ListInquiries(c *gin.Context) {
	var f listing.InquiryFilter
	if !h.BindAndValidate_Query(c, &f) {
		return
	}
	m := h.manager(c)
	if err := m.LoadInquiries(c.Request.Context()); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, m.Inquiries(f))
}

func (h *AdminHandler) GetInquiry(c *gin.Context) {
	inquiry, err := h.adminService.GetInquiry(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, inquiry)
}

func (h *AdminHandler) DeleteInquiry(c *gin.Context) {
	m := h.manager(c)
	h.finishDelete(c, m, "inquiry", m.DeleteInquiry(c.Request.Context(), c.Param("id")))
}

func (h *AdminHandler) ListCandidates(c *gin.Context) {
	var f listing.CandidateFilter
	if !h.BindAndValidate_Query(c, &f) {
		return
	}
	m := h.manager(c)
	if err := m.LoadCandidates(c.Request.Context()); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"candidates":    m.Candidates(f),
		"nationalities": m.Nationalities(),
	})
}

func (h *AdminHandler) GetCandidate(c *gin.Context) {
	candidate, err := h.adminService.Store(h.GetDB(c)).GetCandidate(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"candidate":        candidate,
		"allowed_statuses": h.workflow.Next(candidate.Status),
	})
}

// UpdateCandidateStatus godoc
// @Summary Move a candidate to another status
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Candidate ID"
// @Param status body dto.CandidateStatusRequest true "New status"
// @Success 200 {object} handlers.AdminResult
// @Failure 409 {object} apperrors.ErrorResponse
// @Router /api/v1/admin/candidates/{id}/status [patch]
func (h *AdminHandler) UpdateCandidateStatus(c *gin.Context) {
	var req dto.CandidateStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	m := h.manager(c)
	if err := m.UpdateCandidateStatus(c.Request.Context(), c.Param("id"), models.CandidateStatus(req.Status)); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, AdminResult{Notices: m.Notices()})
}

func (h *AdminHandler) DeleteCandidate(c *gin.Context) {
	m := h.manager(c)
	h.finishDelete(c, m, "candidate", m.DeleteCandidate(c.Request.Context(), c.Param("id")))
}

// CandidateCV godoc
// @Summary Short-lived CV link
// @Description Signs a fresh link on every call.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Candidate ID"
// @Success 200 {object} dto.CVLinkResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/v1/admin/candidates/{id}/cv [get]
func (h *AdminHandler) CandidateCV(c *gin.Context) {
	m := h.manager(c)
	url, err := m.CVLink(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CVLinkResponse{
		URL:       url,
		ExpiresIn: int(m.CVLinkTTL().Seconds()),
	})
}

func (h *AdminHandler) finishDelete(c *gin.Context, m *admin.Manager, domain string, err error) {
	if err != nil {
		var nc *admin.NotConfirmedError
		if errors.As(err, &nc) {
			h.HandleServiceError(c, apperrors.ErrConfirmationRequired(domain, nc.Prompt))
			return
		}
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, AdminResult{Notices: m.Notices()})
}
