package mail

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/xavierca1/admissions-api/internal/entity"
)

//go:embed templates/*.html
var templateFS embed.FS

var leadTemplate = template.Must(template.ParseFS(templateFS, "templates/lead_notification.html"))

type LeadEmailData struct {
	LeadID      string
	StudentName string
	FatherName  string
	City        string
	State       string
	Phone       string
	Email       string
	Class       string
	Message     string
	SubmittedAt string
}

// Message is a rendered notification ready for any transport.
type Message struct {
	Subject string
	HTML    string
	ReplyTo string
}

func newLeadEmailData(n entity.LeadNotification) LeadEmailData {
	return LeadEmailData{
		LeadID:      n.LeadID,
		StudentName: n.StudentName,
		FatherName:  n.FatherName,
		City:        n.City,
		State:       n.State,
		Phone:       n.Phone,
		Email:       n.Email,
		Class:       n.Class,
		Message:     n.Message,
		SubmittedAt: n.SubmittedAt.UTC().Format("02 Jan 2006 15:04 MST"),
	}
}

// RenderLeadMessage builds the admin email for one lead.
func RenderLeadMessage(n entity.LeadNotification) (*Message, error) {
	var body bytes.Buffer
	if err := leadTemplate.Execute(&body, newLeadEmailData(n)); err != nil {
		return nil, fmt.Errorf("render lead template: %w", err)
	}

	return &Message{
		Subject: fmt.Sprintf("New admission inquiry: %s (class %s)", n.StudentName, n.Class),
		HTML:    body.String(),
		ReplyTo: n.Email,
	}, nil
}
