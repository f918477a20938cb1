package messenger

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"strings"
)

var ErrSMTPConfig = errors.New("smtp host, port and sender are required")

// SMTPConfig configures the SMTP provider.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type smtpProvider struct {
	addr string
	from string
	auth smtp.Auth
}

// NewSMTPProvider returns a Provider that sends plain-text mail over SMTP.
// PLAIN auth is used when a username and password are configured.
func NewSMTPProvider(cfg SMTPConfig) (Provider, error) {
	if cfg.Host == "" || cfg.Port == 0 || cfg.From == "" {
		return nil, ErrSMTPConfig
	}

	var auth smtp.Auth
	if cfg.Username != "" && cfg.Password != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	return &smtpProvider{
		addr: fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		from: cfg.From,
		auth: auth,
	}, nil
}

func (p *smtpProvider) Send(ctx context.Context, msg Message) error {
	if msg.To == "" {
		return ErrNoRecipient
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := smtp.SendMail(p.addr, p.auth, p.from, []string{msg.To}, buildRFC822(p.from, msg)); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func buildRFC822(from string, msg Message) []byte {
	headers := []string{
		"From: " + from,
		"To: " + msg.To,
		"Subject: " + msg.Subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=UTF-8",
	}
	return []byte(strings.Join(headers, "\r\n") + "\r\n\r\n" + msg.Body)
}
