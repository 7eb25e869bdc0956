package handlers

import "github.com/gin-gonic/gin"

// RouteRegistrar is implemented by every handler.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// AppHandlers holds every handler of the API.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	JobHandler         *JobHandler
	ApplicationHandler *ApplicationHandler
	IntakeHandler      *IntakeHandler
	AdminHandler       *AdminHandler
	AnalyticsHandler   *AnalyticsHandler
	EventsHandler      *EventsHandler
	I18nHandler        *I18nHandler
	FileHandler        *FileHandler
}

// All lists the handlers in registration order.
func (h *AppHandlers) All() []RouteRegistrar {
	return []RouteRegistrar{
		h.AuthHandler,
		h.JobHandler,
		h.ApplicationHandler,
		h.IntakeHandler,
		h.AdminHandler,
		h.AnalyticsHandler,
		h.EventsHandler,
		h.I18nHandler,
		h.FileHandler,
	}
}
