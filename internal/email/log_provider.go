package email

import (
	"context"
	"strings"

	"workbridge_backend/internal/logger"
)

// LogProvider stands in for SMTP when email is disabled. It renders
// templates and logs the envelope.
type LogProvider struct {
	renderer TemplateRenderer
}

func NewLogProvider(renderer TemplateRenderer) *LogProvider {
	return &LogProvider{renderer: renderer}
}

func (p *LogProvider) Send(ctx context.Context, msg *Message) error {
	logger.CtxInfo(ctx, "Email not sent (delivery disabled)",
		"to", strings.Join(msg.To, ","),
		"reply_to", msg.ReplyTo,
		"subject", msg.Subject,
	)
	return nil
}

func (p *LogProvider) SendTemplate(ctx context.Context, to []string, subject, templateName string, data TemplateData) error {
	body, err := p.renderer.Render(templateName, data)
	if err != nil {
		return err
	}
	return p.Send(ctx, &Message{To: to, Subject: subject, HTML: body})
}

func (p *LogProvider) Validate() error { return nil }
