// Package messenger delivers verification codes to users. Callers depend on
// Provider; the concrete transport is picked at startup.
package messenger

import (
	"context"
	"errors"
	"log/slog"
)

var ErrNoRecipient = errors.New("message has no recipient")

type Message struct {
	To      string
	Subject string
	Body    string
}

type Provider interface {
	Send(ctx context.Context, msg Message) error
}

type logProvider struct {
	logger *slog.Logger
}

// NewLogProvider returns a Provider that writes messages to the logger instead
// of delivering them. Meant for local development.
func NewLogProvider(logger *slog.Logger) Provider {
	return &logProvider{logger: logger}
}

func (p *logProvider) Send(ctx context.Context, msg Message) error {
	if msg.To == "" {
		return ErrNoRecipient
	}
	p.logger.InfoContext(ctx, "mail not delivered (log provider)",
		"to", msg.To, "subject", msg.Subject, "body", msg.Body)
	return nil
}
