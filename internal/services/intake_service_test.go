package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"workbridge_backend/internal/email"
	"workbridge_backend/internal/events"
	"workbridge_backend/internal/i18n"
	"workbridge_backend/internal/models"
	"workbridge_backend/internal/services/dto"
	"workbridge_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeInquiryRepo struct {
	createErr error
	created   []*models.JobInquiry
}

func (r *fakeInquiryRepo) Create(ctx context.Context, db *gorm.DB, in *models.JobInquiry) error {
	if r.createErr != nil {
		return r.createErr
	}
	in.ID = "inq-1"
	in.CreatedAt = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	r.created = append(r.created, in)
	return nil
}

func (r *fakeInquiryRepo) FindByID(ctx context.Context, db *gorm.DB, id string) (*models.JobInquiry, error) {
	return nil, errors.New("not used")
}

func (r *fakeInquiryRepo) List(ctx context.Context, db *gorm.DB) ([]models.JobInquiry, error) {
	return nil, nil
}

func (r *fakeInquiryRepo) Delete(ctx context.Context, db *gorm.DB, id string) error {
	return nil
}

func inquiryInput() dto.InquiryInput {
	details := "Two seasonal cooks"
	return dto.InquiryInput{
		CompanyName:   "Hotel Sol",
		ContactPerson: "Marta",
		Email:         "marta@sol.example",
		Phone:         "+48 600 100 200",
		Industry:      "hotels",
		Positions:     2,
		Location:      "Gdansk",
		Country:       "Poland",
		JobDetails:    &details,
	}
}

func TestInquirySubmit_NotifiesInboxWithEveryField(t *testing.T) {
	repo := &fakeInquiryRepo{}
	mailer := &fakeMailer{}
	rec := &events.Recorder{}
	svc := NewInquiryService(repo, mailer, rec, "inbox@joblink.example")

	inquiry, err := svc.Submit(context.Background(), nil, inquiryInput())
	require.NoError(t, err)
	svc.Wait()

	assert.Equal(t, "inq-1", inquiry.ID)
	require.Len(t, mailer.messages(), 1)
	msg := mailer.messages()[0]
	assert.Equal(t, []string{"inbox@joblink.example"}, msg.To)
	assert.Equal(t, email.TemplateInquiryNotification, msg.Template)
	assert.Equal(t, "Hotel Sol", msg.Data["CompanyName"])
	assert.Equal(t, 2, msg.Data["Positions"])
	assert.Equal(t, "Two seasonal cooks", msg.Data["JobDetails"])
	assert.Equal(t, "+48 600 100 200", msg.Data["Phone"])
	assert.Equal(t, []events.Type{events.InquiryCreated}, rec.Types())
}

func TestInquirySubmit_NotificationFailureIsNotReturned(t *testing.T) {
	mailer := &fakeMailer{tplErr: errors.New("smtp down")}
	svc := NewInquiryService(&fakeInquiryRepo{}, mailer, nil, "inbox@joblink.example")

	_, err := svc.Submit(context.Background(), nil, inquiryInput())
	svc.Wait()
	assert.NoError(t, err)
}

func TestInquirySubmit_InsertFailureSkipsNotification(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewInquiryService(&fakeInquiryRepo{createErr: errors.New("db down")}, mailer, nil, "inbox@joblink.example")

	_, err := svc.Submit(context.Background(), nil, inquiryInput())
	svc.Wait()

	require.Error(t, err)
	assert.Empty(t, mailer.messages())
}

func newContactService(t *testing.T, mailer *fakeMailer, inbox string) ContactService {
	t.Helper()
	tm, err := email.NewDefaultTemplateManager(nil)
	require.NoError(t, err)
	resolver, err := i18n.DefaultResolver()
	require.NoError(t, err)
	return NewContactService(mailer, tm, resolver, inbox)
}

func contactMessage(subject, body string) dto.ContactMessage {
	return dto.ContactMessage{
		Name:    "Ion",
		Email:   "ion@example.com",
		Subject: subject,
		Message: body,
	}
}

func TestContactSend_DeliversAndAutoReplies(t *testing.T) {
	mailer := &fakeMailer{}
	svc := newContactService(t, mailer, "inbox@joblink.example")

	resp, err := svc.Send(context.Background(), contactMessage(
		"Question about jobs",
		"Hello, I would like to know more about the construction jobs you have available and how quickly I could start working.",
	))
	require.NoError(t, err)

	assert.Equal(t, "en", resp.Language)
	assert.Equal(t, "Thank you for reaching out. We'll get back to you soon.", resp.Message)

	sent := mailer.messages()
	require.Len(t, sent, 2)
	assert.Equal(t, []string{"inbox@joblink.example"}, sent[0].To)
	assert.Equal(t, "ion@example.com", sent[0].ReplyTo)
	assert.Equal(t, []string{"ion@example.com"}, sent[1].To)
	assert.Equal(t, email.TemplateContactAutoReply, sent[1].Template)
	assert.Equal(t, "Message Sent!", sent[1].Subject)
}

func TestContactSend_DeliveryFailure(t *testing.T) {
	svc := newContactService(t, &fakeMailer{sendErr: errors.New("smtp down")}, "inbox@joblink.example")

	_, err := svc.Send(context.Background(), contactMessage("Hi", "Hello there"))
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeExternalServiceError, appErr.Code)
	assert.Equal(t, "Failed to send message", apperrors.UserMessage(err, "fallback"))
}

func TestContactSend_RequiresInbox(t *testing.T) {
	mailer := &fakeMailer{}
	svc := newContactService(t, mailer, "")

	_, err := svc.Send(context.Background(), contactMessage("Hi", "Hello there"))
	require.Error(t, err)
	assert.Empty(t, mailer.messages())
}

func TestDetectLanguage(t *testing.T) {
	assert.Equal(t, "pl", DetectLanguage(
		"Dzień dobry, chciałbym dowiedzieć się więcej o dostępnych ofertach pracy w budownictwie oraz o tym, kiedy mogę zacząć pracę.",
	))
	assert.Equal(t, "en", DetectLanguage(
		"Good morning, I would like to learn more about the available jobs in construction and when I could start.",
	))
	assert.Equal(t, i18n.DefaultLanguage, DetectLanguage(""))
}
