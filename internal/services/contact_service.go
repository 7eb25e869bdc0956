package services

import (
	"context"
	"fmt"

	"workbridge_backend/internal/email"
	"workbridge_backend/internal/i18n"
	"workbridge_backend/internal/logger"
	"workbridge_backend/internal/services/dto"
	"workbridge_backend/pkg/apperrors"

	"github.com/abadojack/whatlanggo"
)

// Brand signs outgoing mail.
const Brand = "JobLink"

type ContactService interface {
	// Send delivers the message to the site inbox and answers the sender
	// in the language the message was written in.
	Send(ctx context.Context, msg dto.ContactMessage) (*dto.ContactResponse, error)
}

type contactService struct {
	mailer   email.Provider
	renderer email.TemplateRenderer
	resolver *i18n.Resolver
	inbox    string
}

func NewContactService(mailer email.Provider, renderer email.TemplateRenderer, resolver *i18n.Resolver, inbox string) ContactService {
	return &contactService{mailer: mailer, renderer: renderer, resolver: resolver, inbox: inbox}
}

// DetectLanguage guesses the site language of text, falling back to the default.
func DetectLanguage(text string) string {
	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return i18n.DefaultLanguage
	}
	if lang, ok := i18n.Normalize(info.Lang.Iso6391()); ok {
		return lang
	}
	return i18n.DefaultLanguage
}

func (s *contactService) Send(ctx context.Context, msg dto.ContactMessage) (*dto.ContactResponse, error) {
	lang := DetectLanguage(msg.Subject + "\n" + msg.Message)
	table, _ := s.resolver.Table(lang)
	t := func(key string) string {
		if v, ok := table[key]; ok {
			return v
		}
		return key
	}

	if s.inbox == "" {
		return nil, apperrors.InternalError(fmt.Errorf("contact inbox is not configured"))
	}

	body, err := s.renderer.Render(email.TemplateContactMessage, email.TemplateData{
		"Subject":  msg.Subject,
		"Name":     msg.Name,
		"Email":    msg.Email,
		"Phone":    msg.Phone,
		"Language": lang,
		"Message":  msg.Message,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	err = s.mailer.Send(ctx, &email.Message{
		To:      []string{s.inbox},
		ReplyTo: msg.Email,
		Subject: "[Contact] " + msg.Subject,
		HTML:    body,
		Text:    msg.Message,
	})
	if err != nil {
		logger.CtxWithError(ctx, "Contact message delivery failed", err)
		return nil, apperrors.ErrExternalService(err, "contact", "Failed to send message")
	}

	s.autoReply(ctx, msg, t)

	return &dto.ContactResponse{
		Message:  t("contactPage.success.message"),
		Language: lang,
	}, nil
}

// autoReply is best effort; the inbox already has the message.
func (s *contactService) autoReply(ctx context.Context, msg dto.ContactMessage, t func(string) string) {
	err := s.mailer.SendTemplate(ctx, []string{msg.Email}, t("contactPage.success.title"), email.TemplateContactAutoReply, email.TemplateData{
		"Greeting":  msg.Name + ",",
		"Body":      t("contactPage.success.message"),
		"Signature": t("contactPage.info.email.description"),
		"Brand":     Brand,
	})
	if err != nil {
		logger.CtxWarn(ctx, "Contact auto-reply failed", "error", err)
	}
}
