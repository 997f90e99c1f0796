// Package notify delivers transactional emails to owners and the fleet team.
package notify

import (
	"context"
	"errors"
	"log"
)

var ErrNoRecipient = errors.New("notify: recipient address is empty")

type Message struct {
	To        string
	ToName    string
	Subject   string
	PlainText string
	HTML      string
}

type Notifier interface {
	Send(ctx context.Context, msg Message) error
}

// LogNotifier writes messages to the log; used when no mail provider is set.
type LogNotifier struct{}

func (LogNotifier) Send(_ context.Context, msg Message) error {
	if msg.To == "" {
		return ErrNoRecipient
	}
	log.Printf("notify_log to=%s subject=%q", msg.To, msg.Subject)
	return nil
}
