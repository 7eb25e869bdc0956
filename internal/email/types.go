package email

import "errors"

var errNoRecipients = errors.New("email: no recipients")

// Message is one outgoing email. Text, when set, is sent as the plain
// alternative of HTML.
type Message struct {
	To      []string
	ReplyTo string
	Subject string
	HTML    string
	Text    string
}

// TemplateData is what a template is executed with.
type TemplateData map[string]interface{}
