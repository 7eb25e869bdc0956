package email

import "context"

// Provider sends mail. Both implementations are safe for concurrent use.
type Provider interface {
	Send(ctx context.Context, msg *Message) error

	// SendTemplate renders templateName as the HTML body and sends it.
	SendTemplate(ctx context.Context, to []string, subject string, templateName string, data TemplateData) error

	Validate() error
}

type TemplateRenderer interface {
	Render(templateName string, data TemplateData) (string, error)
	AddTemplate(name string, template string) error
}
