package mailer

import (
	"context"
	"log"
)

// ConsoleMailer logs messages instead of sending them. Used in local
// development where no relay is available.
type ConsoleMailer struct{}

func NewConsoleMailer() *ConsoleMailer {
	return &ConsoleMailer{}
}

func (c *ConsoleMailer) Send(_ context.Context, msg Message) error {
	log.Printf("[MAIL] would send to %s (from %s): %s\n%s", msg.To, msg.From, msg.Subject, msg.Body)
	return nil
}
