package mailer

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridMailer delivers messages through the SendGrid API instead of a
// direct SMTP relay.
type SendGridMailer struct {
	APIKey   string
	FromName string
}

func NewSendGridMailer(apiKey, fromName string) *SendGridMailer {
	return &SendGridMailer{
		APIKey:   strings.TrimSpace(apiKey),
		FromName: strings.TrimSpace(fromName),
	}
}

func (s *SendGridMailer) Send(ctx context.Context, msg Message) error {
	if s.APIKey == "" || msg.From == "" {
		return ErrNotConfigured
	}

	from := mail.NewEmail(s.FromName, msg.From)
	to := mail.NewEmail("", msg.To)
	message := mail.NewSingleEmail(from, msg.Subject, to, msg.Body, "")

	client := sendgrid.NewSendClient(s.APIKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
	}
	return nil
}
