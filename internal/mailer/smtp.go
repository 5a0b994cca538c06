// Package mailer delivers outbound email through SMTP or Mailgun.
package mailer

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/sbilibin2017/planetary-api/internal/logger"
)

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPSender sends plain text mail through an SMTP relay.
type SMTPSender struct {
	host     string
	port     int
	username string
	password string
	sender   string
	sendMail sendMailFunc
}

// NewSMTPSender creates a sender for host:port. Auth is skipped when username is empty.
func NewSMTPSender(host string, port int, username, password, sender string) *SMTPSender {
	return &SMTPSender{
		host:     host,
		port:     port,
		username: username,
		password: password,
		sender:   sender,
		sendMail: smtp.SendMail,
	}
}

// Send delivers a single message. smtp.SendMail upgrades to STARTTLS when the server offers it.
func (s *SMTPSender) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var auth smtp.Auth
	if s.username != "" {
		auth = smtp.PlainAuth("", s.username, s.password, s.host)
	}

	addr := net.JoinHostPort(s.host, strconv.Itoa(s.port))
	if err := s.sendMail(addr, auth, s.sender, []string{to}, buildMessage(s.sender, to, subject, body)); err != nil {
		logger.Log.Errorw("failed to send email", "provider", "smtp", "to", to, "err", err)
		return fmt.Errorf("smtp send: %w", err)
	}

	logger.Log.Infow("email sent", "provider", "smtp", "to", to, "subject", subject)
	return nil
}

func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}
