package usecase

import (
	"context"

	"github.com/xavierca1/admissions-api/internal/entity"
)

// LeadEventPublisher hands a stored lead to the notification boundary.
// Implementations must not block on delivery.
type LeadEventPublisher interface {
	PublishLeadSubmitted(ctx context.Context, n entity.LeadNotification) error
}

type SubmitLeadInput struct {
	StudentName string `json:"studentName" validate:"required,max=200"`
	FatherName  string `json:"fatherName" validate:"required,max=200"`
	City        string `json:"city" validate:"required,max=100"`
	State       string `json:"state" validate:"required,max=100"`
	Phone       string `json:"phone" validate:"required,max=30"`
	Email       string `json:"email" validate:"required,email"`
	Class       string `json:"class" validate:"required,max=100"`
	Message     string `json:"message" validate:"max=5000"`
}

func (in *SubmitLeadInput) normalize() {
	trim(&in.StudentName, &in.FatherName, &in.City, &in.State,
		&in.Phone, &in.Email, &in.Class, &in.Message)
}

type UpdateLeadStatusInput struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginOutput struct {
	Token string `json:"token"`
}

type NewsInput struct {
	Title     string `json:"title" validate:"required,max=300"`
	Type      string `json:"type" validate:"omitempty,oneof=news event"`
	Summary   string `json:"summary" validate:"max=1000"`
	Content   string `json:"content"`
	ImageURL  string `json:"imageUrl" validate:"omitempty,url"`
	EventDate string `json:"eventDate"`
	Published bool   `json:"published"`
}

func (in *NewsInput) normalize() {
	trim(&in.Title, &in.Type, &in.Summary, &in.ImageURL, &in.EventDate)
	if in.Type == "" {
		in.Type = entity.NewsTypeNews
	}
}

type ResultSessionInput struct {
	Label       string   `json:"label" validate:"required,max=200"`
	Year        int      `json:"year" validate:"omitempty,gte=1900"`
	Description string   `json:"description" validate:"max=2000"`
	Images      []string `json:"images" validate:"dive,url"`
}

func (in *ResultSessionInput) normalize() {
	trim(&in.Label, &in.Description)
	if in.Images == nil {
		in.Images = []string{}
	}
}
