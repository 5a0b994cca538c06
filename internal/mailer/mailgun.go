package mailer

import (
	"context"
	"fmt"
	"time"

	mg "github.com/mailgun/mailgun-go/v4"
	"github.com/sbilibin2017/planetary-api/internal/logger"
)

const mailgunTimeout = 10 * time.Second

// MailgunSender sends mail through the Mailgun HTTP API.
type MailgunSender struct {
	client *mg.MailgunImpl
	sender string
}

// NewMailgunSender creates a sender for the given Mailgun domain.
func NewMailgunSender(domain, apiKey, sender string) *MailgunSender {
	return &MailgunSender{
		client: mg.NewMailgun(domain, apiKey),
		sender: sender,
	}
}

// SetAPIBase points the client at another Mailgun endpoint, e.g. the EU region.
func (m *MailgunSender) SetAPIBase(url string) {
	m.client.SetAPIBase(url)
}

// Send delivers a single plain text message.
func (m *MailgunSender) Send(ctx context.Context, to, subject, body string) error {
	msg := m.client.NewMessage(m.sender, subject, body, to)

	c, cancel := context.WithTimeout(ctx, mailgunTimeout)
	defer cancel()

	_, id, err := m.client.Send(c, msg)
	if err != nil {
		logger.Log.Errorw("failed to send email", "provider", "mailgun", "to", to, "err", err)
		return fmt.Errorf("mailgun send: %w", err)
	}

	logger.Log.Infow("email sent", "provider", "mailgun", "to", to, "id", id)
	return nil
}
