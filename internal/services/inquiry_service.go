package services

import (
	"context"
	"sync"
	"time"

	"workbridge_backend/internal/email"
	"workbridge_backend/internal/events"
	"workbridge_backend/internal/logger"
	"workbridge_backend/internal/models"
	"workbridge_backend/internal/repositories"
	"workbridge_backend/internal/services/dto"

	"gorm.io/gorm"
)

// NotifyTimeout bounds the inquiry notification email.
const NotifyTimeout = 30 * time.Second

type InquiryService interface {
	// Submit stores the inquiry and then notifies the inbox in the
	// background. Notification failures are logged, never returned.
	Submit(ctx context.Context, db *gorm.DB, in dto.InquiryInput) (*models.JobInquiry, error)

	// Wait blocks until pending notifications have finished.
	Wait()
}

type inquiryService struct {
	inquiryRepo repositories.InquiryRepository
	mailer      email.Provider
	publisher   events.Publisher
	inbox       string
	timeout     time.Duration

	wg sync.WaitGroup
}

func NewInquiryService(inquiryRepo repositories.InquiryRepository, mailer email.Provider, publisher events.Publisher, inbox string) InquiryService {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &inquiryService{
		inquiryRepo: inquiryRepo,
		mailer:      mailer,
		publisher:   publisher,
		inbox:       inbox,
		timeout:     NotifyTimeout,
	}
}

func (s *inquiryService) Submit(ctx context.Context, db *gorm.DB, in dto.InquiryInput) (*models.JobInquiry, error) {
	inquiry := &models.JobInquiry{
		CompanyName:   in.CompanyName,
		ContactPerson: in.ContactPerson,
		Email:         in.Email,
		Industry:      in.Industry,
		Positions:     in.Positions,
		Location:      in.Location,
		Country:       in.Country,
		JobDetails:    in.JobDetails,
	}
	if in.Phone != "" {
		p := in.Phone
		inquiry.Phone = &p
	}

	if err := s.inquiryRepo.Create(ctx, db, inquiry); err != nil {
		return nil, handleRepoError(err, "inquiry")
	}

	logger.CtxInfo(ctx, "Job inquiry received", "inquiry_id", inquiry.ID, "company", inquiry.CompanyName)
	s.publisher.Publish(events.New(events.InquiryCreated, inquiry.ID, map[string]any{
		"company_name": inquiry.CompanyName,
		"industry":     inquiry.Industry,
	}))

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.notify(logger.WithRequestID(context.Background(), logger.GetRequestID(ctx)), *inquiry)
	}()

	return inquiry, nil
}

func (s *inquiryService) notify(ctx context.Context, inquiry models.JobInquiry) {
	if s.mailer == nil || s.inbox == "" {
		logger.CtxDebug(ctx, "Inquiry notification skipped: no inbox configured", "inquiry_id", inquiry.ID)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	data := email.TemplateData{
		"CompanyName":   inquiry.CompanyName,
		"ContactPerson": inquiry.ContactPerson,
		"Email":         inquiry.Email,
		"Phone":         deref(inquiry.Phone),
		"Industry":      inquiry.Industry,
		"Positions":     inquiry.Positions,
		"Location":      inquiry.Location,
		"Country":       inquiry.Country,
		"JobDetails":    deref(inquiry.JobDetails),
		"ReceivedAt":    inquiry.CreatedAt.Format(time.RFC1123),
	}

	subject := "New job inquiry: " + inquiry.CompanyName
	err := s.mailer.SendTemplate(ctx, []string{s.inbox}, subject, email.TemplateInquiryNotification, data)
	if err != nil {
		logger.CtxWithError(ctx, "Inquiry notification failed", err, "inquiry_id", inquiry.ID)
		return
	}
	logger.CtxInfo(ctx, "Inquiry notification sent", "inquiry_id", inquiry.ID)
}

func (s *inquiryService) Wait() {
	s.wg.Wait()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
