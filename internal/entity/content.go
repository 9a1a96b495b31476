package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound     = errors.New("document not found")
	ErrDuplicateKey = errors.New("duplicate key")
)

const (
	NewsTypeNews  = "news"
	NewsTypeEvent = "event"
)

// NewsItem is a news post or an event shown on the public site.
type NewsItem struct {
	ID        string     `json:"id" bson:"_id"`
	Title     string     `json:"title" bson:"title"`
	Slug      string     `json:"slug" bson:"slug"`
	Type      string     `json:"type" bson:"type"`
	Summary   string     `json:"summary,omitempty" bson:"summary,omitempty"`
	Content   string     `json:"content,omitempty" bson:"content,omitempty"`
	ImageURL  string     `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	EventDate *time.Time `json:"eventDate,omitempty" bson:"eventDate,omitempty"`
	Published bool       `json:"published" bson:"published"`
	CreatedAt time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt" bson:"updatedAt"`
}

func NewNewsItem(now time.Time) *NewsItem {
	return &NewsItem{
		ID:        uuid.New().String(),
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}
}

// ResultSession groups board-result images for one academic session.
type ResultSession struct {
	ID          string    `json:"id" bson:"_id"`
	Label       string    `json:"label" bson:"label"`
	Slug        string    `json:"slug" bson:"slug"`
	Year        int       `json:"year,omitempty" bson:"year,omitempty"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Images      []string  `json:"images" bson:"images"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

func NewResultSession(now time.Time) *ResultSession {
	return &ResultSession{
		ID:        uuid.New().String(),
		Images:    []string{},
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}
}

type NewsRepositoryInterface interface {
	Create(ctx context.Context, item *NewsItem) error
	Update(ctx context.Context, item *NewsItem) error
	Delete(ctx context.Context, id string) error
	// FindAll and FindBySlug skip drafts when publishedOnly is set.
	FindAll(ctx context.Context, publishedOnly bool) ([]NewsItem, error)
	FindByID(ctx context.Context, id string) (*NewsItem, error)
	FindBySlug(ctx context.Context, slug string, publishedOnly bool) (*NewsItem, error)
	// SlugExists ignores the document with excludeID (empty for none).
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
}

type ResultSessionRepositoryInterface interface {
	Create(ctx context.Context, session *ResultSession) error
	Update(ctx context.Context, session *ResultSession) error
	Delete(ctx context.Context, id string) error
	FindAll(ctx context.Context) ([]ResultSession, error)
	FindByID(ctx context.Context, id string) (*ResultSession, error)
	FindBySlug(ctx context.Context, slug string) (*ResultSession, error)
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
}
