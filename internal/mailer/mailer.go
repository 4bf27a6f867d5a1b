package mailer

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned by a transport whose required settings are
// missing from the environment.
var ErrNotConfigured = errors.New("mail transport not configured")

// Message is a single outbound plaintext email.
type Message struct {
	From    string
	To      string
	Subject string
	Body    string
}

// Mailer hands a composed message to an outbound mail transport. One
// attempt per call; retry policy, if any, belongs to the transport.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
