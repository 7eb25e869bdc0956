package email

import "fmt"

type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

func DefaultConfig() *SMTPConfig {
	return &SMTPConfig{Host: "localhost", Port: 587}
}

// Validate reports the first setting that makes delivery impossible.
func (c *SMTPConfig) Validate() error {
	switch {
	case c.Host == "":
		return fmt.Errorf("SMTP host is required")
	case c.Port <= 0 || c.Port > 65535:
		return fmt.Errorf("invalid SMTP port: %d", c.Port)
	case c.FromEmail == "":
		return fmt.Errorf("sender address is required")
	}
	return nil
}
