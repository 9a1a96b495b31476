package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrLeadNotFound  = errors.New("lead not found")
	ErrInvalidStatus = errors.New("invalid lead status")
)

type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "New"
	LeadStatusContacted LeadStatus = "Contacted"
	LeadStatusAdmitted  LeadStatus = "Admitted"
	LeadStatusClosed    LeadStatus = "Closed"
)

// LeadStatuses lists every accepted status, in pipeline order.
var LeadStatuses = []LeadStatus{
	LeadStatusNew,
	LeadStatusContacted,
	LeadStatusAdmitted,
	LeadStatusClosed,
}

func (s LeadStatus) Valid() bool {
	for _, st := range LeadStatuses {
		if s == st {
			return true
		}
	}
	return false
}

func ParseLeadStatus(s string) (LeadStatus, error) {
	st := LeadStatus(s)
	if !st.Valid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

// Lead is one admission inquiry. ID and Date are set once on creation;
// Status is the only field an admin mutates afterwards.
type Lead struct {
	ID          string     `json:"id" bson:"_id"`
	StudentName string     `json:"studentName" bson:"studentName"`
	FatherName  string     `json:"fatherName" bson:"fatherName"`
	City        string     `json:"city" bson:"city"`
	State       string     `json:"state" bson:"state"`
	Phone       string     `json:"phone" bson:"phone"`
	Email       string     `json:"email" bson:"email"`
	Class       string     `json:"class" bson:"class"`
	Message     string     `json:"message,omitempty" bson:"message,omitempty"`
	Status      LeadStatus `json:"status" bson:"status"`
	Date        time.Time  `json:"date" bson:"date"`
}

// NewLead builds a fresh inquiry with a new id, status New and date now.
func NewLead(studentName, fatherName, city, state, phone, email, class, message string, now time.Time) *Lead {
	return &Lead{
		ID:          uuid.New().String(),
		StudentName: studentName,
		FatherName:  fatherName,
		City:        city,
		State:       state,
		Phone:       phone,
		Email:       email,
		Class:       class,
		Message:     message,
		Status:      LeadStatusNew,
		Date:        now.UTC(),
	}
}

// Notification returns the payload handed to the notification boundary.
func (l *Lead) Notification() LeadNotification {
	return LeadNotification{
		LeadID:      l.ID,
		StudentName: l.StudentName,
		FatherName:  l.FatherName,
		City:        l.City,
		State:       l.State,
		Phone:       l.Phone,
		Email:       l.Email,
		Class:       l.Class,
		Message:     l.Message,
		SubmittedAt: l.Date,
	}
}

// LeadNotification is the event published after a lead is stored.
type LeadNotification struct {
	LeadID      string    `json:"lead_id"`
	StudentName string    `json:"student_name"`
	FatherName  string    `json:"father_name"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Class       string    `json:"class"`
	Message     string    `json:"message,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *Lead) error
	// FindAll returns every lead, newest first.
	FindAll(ctx context.Context) ([]Lead, error)
	FindByID(ctx context.Context, id string) (*Lead, error)
	// UpdateStatus is last-writer-wins; it returns ErrLeadNotFound for unknown ids.
	UpdateStatus(ctx context.Context, id string, status LeadStatus) (*Lead, error)
	Count(ctx context.Context) (int64, error)
	// CountByStatus omits statuses with no leads.
	CountByStatus(ctx context.Context) (map[LeadStatus]int64, error)
	// FindByDateRange returns leads with from <= date <= to, oldest first.
	// A nil bound is open.
	FindByDateRange(ctx context.Context, from, to *time.Time) ([]Lead, error)
}
