package usecase

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/xavierca1/admissions-api/internal/entity"
)

type NewsUseCase struct {
	Repo   entity.NewsRepositoryInterface
	Logger *zap.Logger
	Now    func() time.Time
}

func NewNewsUseCase(repo entity.NewsRepositoryInterface, logger *zap.Logger) *NewsUseCase {
	return &NewsUseCase{Repo: repo, Logger: logger, Now: time.Now}
}

// List returns published items only. ListAll includes drafts.
func (uc *NewsUseCase) List(ctx context.Context) ([]entity.NewsItem, error) {
	return uc.list(ctx, true)
}

func (uc *NewsUseCase) ListAll(ctx context.Context) ([]entity.NewsItem, error) {
	return uc.list(ctx, false)
}

func (uc *NewsUseCase) list(ctx context.Context, publishedOnly bool) ([]entity.NewsItem, error) {
	items, err := uc.Repo.FindAll(ctx, publishedOnly)
	if err != nil {
		return nil, storeError("failed to list news", err)
	}
	if items == nil {
		items = []entity.NewsItem{}
	}
	return items, nil
}

func (uc *NewsUseCase) GetBySlug(ctx context.Context, slug string) (*entity.NewsItem, error) {
	item, err := uc.Repo.FindBySlug(ctx, slug, true)
	if err != nil {
		return nil, passNotFound(err, "failed to load news item")
	}
	return item, nil
}

func (uc *NewsUseCase) Create(ctx context.Context, input NewsInput) (*entity.NewsItem, error) {
	input.normalize()
	eventDate, err := validateNews(input)
	if err != nil {
		return nil, err
	}

	slug, err := GenerateUniqueSlug(ctx, input.Title, uc.slugExists(""))
	if err != nil {
		return nil, slugError(err)
	}

	item := entity.NewNewsItem(uc.Now())
	applyNewsInput(item, input, eventDate)
	item.Slug = slug

	if err := uc.Repo.Create(ctx, item); err != nil {
		return nil, writeError(err, "failed to save news item")
	}
	uc.Logger.Info("news item created", zap.String("id", item.ID), zap.String("slug", item.Slug))
	return item, nil
}

// Update replaces the editable fields. The slug is regenerated only when the
// title changes, ignoring the item's own current slug.
func (uc *NewsUseCase) Update(ctx context.Context, id string, input NewsInput) (*entity.NewsItem, error) {
	input.normalize()
	eventDate, err := validateNews(input)
	if err != nil {
		return nil, err
	}

	item, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, passNotFound(err, "failed to load news item")
	}

	if input.Title != item.Title {
		slug, err := GenerateUniqueSlug(ctx, input.Title, uc.slugExists(item.ID))
		if err != nil {
			return nil, slugError(err)
		}
		item.Slug = slug
	}

	applyNewsInput(item, input, eventDate)
	item.UpdatedAt = uc.Now().UTC()

	if err := uc.Repo.Update(ctx, item); err != nil {
		return nil, writeError(err, "failed to update news item")
	}
	return item, nil
}

func (uc *NewsUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.Repo.Delete(ctx, id); err != nil {
		return passNotFound(err, "failed to delete news item")
	}
	uc.Logger.Info("news item deleted", zap.String("id", id))
	return nil
}

func (uc *NewsUseCase) slugExists(excludeID string) ExistsFunc {
	return func(ctx context.Context, candidate string) (bool, error) {
		return uc.Repo.SlugExists(ctx, candidate, excludeID)
	}
}

func validateNews(input NewsInput) (*time.Time, error) {
	if fields := validateStruct(input); len(fields) > 0 {
		return nil, newValidationError(fields)
	}
	if input.EventDate == "" {
		return nil, nil
	}
	t, _, err := parseISODate(input.EventDate)
	if err != nil {
		return nil, invalidDate("eventDate")
	}
	return &t, nil
}

func applyNewsInput(item *entity.NewsItem, input NewsInput, eventDate *time.Time) {
	item.Title = input.Title
	item.Type = input.Type
	item.Summary = input.Summary
	item.Content = input.Content
	item.ImageURL = input.ImageURL
	item.EventDate = eventDate
	item.Published = input.Published
}

func slugError(err error) error {
	if errors.Is(err, ErrEmptySlug) {
		return err
	}
	return storeError("failed to check slug uniqueness", err)
}

func passNotFound(err error, msg string) error {
	if errors.Is(err, entity.ErrNotFound) {
		return err
	}
	return storeError(msg, err)
}

// writeError turns a unique-index race on slug into a client-visible
// conflict; anything else is a store failure.
func writeError(err error, msg string) error {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		return err
	case errors.Is(err, entity.ErrDuplicateKey):
		return &DomainError{Code: CodeSlugConflict, Message: "slug already in use, retry"}
	default:
		return storeError(msg, err)
	}
}
