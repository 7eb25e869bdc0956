package handlers

import (
	"context"
	"net/http"

	"workbridge_backend/internal/forms"
	"workbridge_backend/internal/models"
	"workbridge_backend/internal/services"
	"workbridge_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// IntakeHandler takes employer inquiries and contact messages.
type IntakeHandler struct {
	*BaseHandler
	inquiryService services.InquiryService
	contactService services.ContactService
}

func NewIntakeHandler(base *BaseHandler, inquiryService services.InquiryService, contactService services.ContactService) *IntakeHandler {
	return &IntakeHandler{
		BaseHandler:    base,
		inquiryService: inquiryService,
		contactService: contactService,
	}
}

func (h *IntakeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/inquiries", h.SubmitInquiry)
	rg.POST("/contact", h.SendContact)
}

// SubmitInquiry godoc
// @Summary Request workers
// @Description An employer asks for staff. The recruitment inbox is notified by email.
// @Tags intake
// @Accept json
// @Produce json
// @Param inquiry body dto.InquiryRequest true "Inquiry"
// @Success 201 {object} dto.InquiryResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /api/v1/inquiries [post]
func (h *IntakeHandler) SubmitInquiry(c *gin.Context) {
	fields, _, ok := h.bindFormValues(c)
	if !ok {
		return
	}

	form := forms.NewInquiryForm(h.validator, forms.WithResetDelay(0))
	if err := form.Load(fields, nil); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	db := h.GetDB(c)
	var inquiry *models.JobInquiry
	_, err := form.Submit(c.Request.Context(), func(ctx context.Context, in dto.InquiryInput, _ *forms.FileInfo) error {
		var err error
		inquiry, err = h.inquiryService.Submit(ctx, db, in)
		return err
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respondForm(c, http.StatusCreated, form, dto.InquiryResponse{
		ID:      inquiry.ID,
		Message: form.Notice().Message,
	})
}

// SendContact godoc
// @Summary Send a contact message
// @Tags intake
// @Accept json
// @Produce json
// @Param message body dto.ContactRequest true "Message"
// @Success 200 {object} dto.ContactResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 502 {object} apperrors.ErrorResponse
// @Router /api/v1/contact [post]
func (h *IntakeHandler) SendContact(c *gin.Context) {
	fields, _, ok := h.bindFormValues(c)
	if !ok {
		return
	}

	form := forms.NewContactForm(h.validator, forms.WithResetDelay(0))
	if err := form.Load(fields, nil); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var resp *dto.ContactResponse
	_, err := form.Submit(c.Request.Context(), func(ctx context.Context, msg dto.ContactMessage, _ *forms.FileInfo) error {
		var err error
		resp, err = h.contactService.Send(ctx, msg)
		return err
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respondForm(c, http.StatusOK, form, resp)
}
