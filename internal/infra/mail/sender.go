package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/xavierca1/admissions-api/internal/entity"
)

// EmailSender delivers lead notifications over SMTP.
type EmailSender struct {
	Host      string
	Port      int
	User      string
	Password  string
	From      string
	Recipient string

	dialer *gomail.Dialer
}

func NewEmailSender(host string, port int, user, password, from, recipient string) *EmailSender {
	return &EmailSender{
		Host:      host,
		Port:      port,
		User:      user,
		Password:  password,
		From:      from,
		Recipient: recipient,
		dialer:    gomail.NewDialer(host, port, user, password),
	}
}

func (s *EmailSender) NotifyLead(ctx context.Context, n entity.LeadNotification) error {
	msg, err := RenderLeadMessage(n)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.Recipient)
	if msg.ReplyTo != "" {
		m.SetHeader("Reply-To", msg.ReplyTo)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)

	// gomail has no context support; bail out early if the caller gave up.
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
