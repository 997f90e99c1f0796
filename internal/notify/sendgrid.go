package notify

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type SendGrid struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func NewSendGrid(apiKey, fromEmail, fromName string) *SendGrid {
	return &SendGrid{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

// NewSendGridWithHost points the client at another API host (tests, EU region).
func NewSendGridWithHost(apiKey, fromEmail, fromName, host string) *SendGrid {
	req := sendgrid.GetRequest(apiKey, "/v3/mail/send", host)
	req.Method = "POST"
	return &SendGrid{
		client:    &sendgrid.Client{Request: req},
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *SendGrid) Send(ctx context.Context, msg Message) error {
	if msg.To == "" {
		return ErrNoRecipient
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(msg.ToName, msg.To)
	message := mail.NewSingleEmail(from, msg.Subject, recipient, msg.PlainText, msg.HTML)

	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
