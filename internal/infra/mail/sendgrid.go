package mail

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/xavierca1/admissions-api/internal/entity"
)

const (
	sendgridHost     = "https://api.sendgrid.com"
	sendgridEndpoint = "/v3/mail/send"
)

type SendGridSender struct {
	key       string
	from      *sgmail.Email
	recipient *sgmail.Email
}

func NewSendGridSender(key, fromName, fromEmail, recipient string) *SendGridSender {
	return &SendGridSender{
		key:       key,
		from:      sgmail.NewEmail(fromName, fromEmail),
		recipient: sgmail.NewEmail("", recipient),
	}
}

func (s *SendGridSender) NotifyLead(ctx context.Context, n entity.LeadNotification) error {
	msg, err := RenderLeadMessage(n)
	if err != nil {
		return err
	}

	req := sendgrid.GetRequest(s.key, sendgridEndpoint, sendgridHost)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(s.prepare(msg))

	if err := ctx.Err(); err != nil {
		return err
	}
	res, err := sendgrid.API(req)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid send: status %d: %s", res.StatusCode, res.Body)
	}
	return nil
}

func (s *SendGridSender) prepare(msg *Message) *sgmail.SGMailV3 {
	p := sgmail.NewPersonalization()
	p.Subject = msg.Subject
	p.AddTos(s.recipient)

	m := sgmail.NewV3Mail()
	m.SetFrom(s.from)
	m.AddPersonalizations(p)
	if msg.ReplyTo != "" {
		m.SetReplyTo(sgmail.NewEmail("", msg.ReplyTo))
	}
	m.AddContent(sgmail.NewContent("text/html", msg.HTML))
	return m
}
