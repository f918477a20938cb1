package messenger

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

const (
	sendgridHost     = "https://api.sendgrid.com"
	sendgridEndpoint = "/v3/mail/send"
)

var ErrSendGridConfig = errors.New("sendgrid api key and sender are required")

// SendGridConfig configures the SendGrid provider. Host is only overridden in
// tests.
type SendGridConfig struct {
	APIKey   string
	From     string
	FromName string
	Host     string
}

type sendgridProvider struct {
	key  string
	host string
	from *sgmail.Email
}

// NewSendGridProvider returns a Provider backed by the SendGrid v3 mail API.
func NewSendGridProvider(cfg SendGridConfig) (Provider, error) {
	if cfg.APIKey == "" || cfg.From == "" {
		return nil, ErrSendGridConfig
	}
	host := cfg.Host
	if host == "" {
		host = sendgridHost
	}
	return &sendgridProvider{
		key:  cfg.APIKey,
		host: host,
		from: sgmail.NewEmail(cfg.FromName, cfg.From),
	}, nil
}

func (p *sendgridProvider) Send(ctx context.Context, msg Message) error {
	if msg.To == "" {
		return ErrNoRecipient
	}

	to := sgmail.NewPersonalization()
	to.AddTos(sgmail.NewEmail("", msg.To))

	m := sgmail.NewV3Mail()
	m.SetFrom(p.from)
	m.Subject = msg.Subject
	m.AddPersonalizations(to)
	m.AddContent(sgmail.NewContent("text/plain", msg.Body))

	req := sendgrid.GetRequest(p.key, sendgridEndpoint, p.host)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(m)

	res, err := sendgrid.MakeRequestWithContext(ctx, req)
	if err != nil {
		return fmt.Errorf("sendgrid request: %w", err)
	}
	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid status %d: %s", res.StatusCode, res.Body)
	}
	return nil
}
