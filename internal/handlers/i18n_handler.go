package handlers

import (
	"net/http"

	"workbridge_backend/internal/i18n"

	"github.com/gin-gonic/gin"
)

type I18nHandler struct{}

func NewI18nHandler() *I18nHandler {
	return &I18nHandler{}
}

func (h *I18nHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/i18n", h.Table)
	rg.GET("/i18n/languages", h.Languages)
}

type TranslationsResponse struct {
	Language     string     `json:"language"`
	Translations i18n.Table `json:"translations"`
}

// Table godoc
// @Summary Translation table
// @Description The table for ?lang=, or for the best Accept-Language match.
// @Tags i18n
// @Produce json
// @Param lang query string false "en, ro or pl"
// @Success 200 {object} TranslationsResponse
// @Router /api/v1/i18n [get]
func (h *I18nHandler) Table(c *gin.Context) {
	p := i18n.FromContext(c.Request.Context())
	c.JSON(http.StatusOK, TranslationsResponse{
		Language:     p.Language(),
		Translations: p.Table(),
	})
}

func (h *I18nHandler) Languages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"languages": i18n.Codes(),
		"default":   i18n.DefaultLanguage,
	})
}
