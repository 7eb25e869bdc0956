package handlers

import (
	"net/http"
	"time"

	"workbridge_backend/internal/middleware"
	"workbridge_backend/internal/services"
	"workbridge_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// defaultStatsDays is the window used when no date range is given.
const defaultStatsDays = 30

type AnalyticsHandler struct {
	*BaseHandler
	analyticsService services.AnalyticsService
	now              func() time.Time
}

func NewAnalyticsHandler(base *BaseHandler, analyticsService services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		BaseHandler:      base,
		analyticsService: analyticsService,
		now:              time.Now,
	}
}

func (h *AnalyticsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/admin/stats", append(middleware.AdminOnly(), h.GetStats)...)
}

// GetStats godoc
// @Summary Dashboard statistics
// @Description Candidate, job and inquiry totals plus applications per day. date_from and date_to take YYYY-MM-DD or RFC3339; the default is the last 30 days.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param date_from query string false "Start of the range"
// @Param date_to query string false "End of the range (exclusive)"
// @Success 200 {object} dto.AdminStats
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /api/v1/admin/stats [get]
func (h *AnalyticsHandler) GetStats(c *gin.Context) {
	from, to, err := h.parseDateRange(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	stats, err := h.analyticsService.Stats(c.Request.Context(), h.GetDB(c), from, to)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// parseDateRange defaults to the last 30 days ending tomorrow at midnight UTC,
// so today's applications are included.
func (h *AnalyticsHandler) parseDateRange(c *gin.Context) (time.Time, time.Time, error) {
	now := h.now().UTC()
	to := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, time.UTC)
	from := to.AddDate(0, 0, -defaultStatsDays)

	if v := c.Query("date_from"); v != "" {
		parsed, err := parseDate(v)
		if err != nil {
			return time.Time{}, time.Time{}, apperrors.ValidationError(map[string]string{"date_from": "Invalid date"})
		}
		from = parsed
	}
	if v := c.Query("date_to"); v != "" {
		parsed, err := parseDate(v)
		if err != nil {
			return time.Time{}, time.Time{}, apperrors.ValidationError(map[string]string{"date_to": "Invalid date"})
		}
		to = parsed
	}
	return from, to, nil
}

func parseDate(v string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, v)
}
