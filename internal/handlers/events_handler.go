package handlers

import (
	"net/http"

	"workbridge_backend/internal/events"
	"workbridge_backend/internal/logger"
	"workbridge_backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// EventsHandler streams admin events over a websocket.
type EventsHandler struct {
	*BaseHandler
	hub      *events.Hub
	upgrader websocket.Upgrader
}

func NewEventsHandler(base *BaseHandler, hub *events.Hub, allowedOrigins []string) *EventsHandler {
	return &EventsHandler{
		BaseHandler: base,
		hub:         hub,
		upgrader:    events.Upgrader(originChecker(allowedOrigins)),
	}
}

func (h *EventsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/admin/events", append(middleware.AdminOnly(middleware.AllowQueryToken()), h.Stream)...)
}

// Stream godoc
// @Summary Admin event stream
// @Description Websocket. The token may be passed as ?token= since browsers cannot set headers on upgrade.
// @Tags admin
// @Param token query string false "Access token"
// @Success 101
// @Router /api/v1/admin/events [get]
func (h *EventsHandler) Stream(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	if err := h.hub.ServeWS(h.upgrader, c.Writer, c.Request, userID); err != nil {
		// the upgrader has already written an error response
		logger.CtxWarn(c.Request.Context(), "Websocket upgrade failed", "error", err)
	}
}

// originChecker accepts the configured origins, or any origin when none are set.
func originChecker(allowed []string) func(*http.Request) bool {
	if len(allowed) == 0 || (len(allowed) == 1 && allowed[0] == "*") {
		return nil
	}
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		set[o] = struct{}{}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := set[origin]
		return ok
	}
}
