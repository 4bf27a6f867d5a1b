package mailer

import (
	"context"
	"fmt"
	"strings"
	"time"

	gomail "github.com/wneessen/go-mail"
)

// SMTPMailer delivers messages through an SMTP relay via go-mail.
type SMTPMailer struct {
	Host   string
	Port   int
	User   string
	Pass   string
	Secure bool // implicit TLS (465) instead of opportunistic STARTTLS
}

func NewSMTPMailer(host string, port int, user, pass string, secure bool) *SMTPMailer {
	return &SMTPMailer{
		Host:   strings.TrimSpace(host),
		Port:   port,
		User:   strings.TrimSpace(user),
		Pass:   pass,
		Secure: secure,
	}
}

func (s *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if s.Host == "" || msg.From == "" {
		return ErrNotConfigured
	}

	m := gomail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return fmt.Errorf("smtp from: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return fmt.Errorf("smtp to: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextPlain, msg.Body)

	opts := []gomail.Option{
		gomail.WithPort(s.Port),
		gomail.WithTimeout(15 * time.Second),
	}
	if s.Secure {
		opts = append(opts, gomail.WithSSL())
	} else {
		opts = append(opts, gomail.WithTLSPortPolicy(gomail.TLSOpportunistic))
	}
	if s.User != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(s.User),
			gomail.WithPassword(s.Pass),
		)
	}

	client, err := gomail.NewClient(s.Host, opts...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
