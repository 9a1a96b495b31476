package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/xavierca1/admissions-api/internal/entity"
)

type ResultSessionUseCase struct {
	Repo   entity.ResultSessionRepositoryInterface
	Logger *zap.Logger
	Now    func() time.Time
}

func NewResultSessionUseCase(repo entity.ResultSessionRepositoryInterface, logger *zap.Logger) *ResultSessionUseCase {
	return &ResultSessionUseCase{Repo: repo, Logger: logger, Now: time.Now}
}

func (uc *ResultSessionUseCase) List(ctx context.Context) ([]entity.ResultSession, error) {
	sessions, err := uc.Repo.FindAll(ctx)
	if err != nil {
		return nil, storeError("failed to list result sessions", err)
	}
	if sessions == nil {
		sessions = []entity.ResultSession{}
	}
	return sessions, nil
}

func (uc *ResultSessionUseCase) GetBySlug(ctx context.Context, slug string) (*entity.ResultSession, error) {
	s, err := uc.Repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, passNotFound(err, "failed to load result session")
	}
	return s, nil
}

func (uc *ResultSessionUseCase) Create(ctx context.Context, input ResultSessionInput) (*entity.ResultSession, error) {
	input.normalize()
	if fields := validateStruct(input); len(fields) > 0 {
		return nil, newValidationError(fields)
	}

	slug, err := GenerateUniqueSlug(ctx, input.Label, uc.slugExists(""))
	if err != nil {
		return nil, slugError(err)
	}

	s := entity.NewResultSession(uc.Now())
	applyResultInput(s, input)
	s.Slug = slug

	if err := uc.Repo.Create(ctx, s); err != nil {
		return nil, writeError(err, "failed to save result session")
	}
	uc.Logger.Info("result session created", zap.String("id", s.ID), zap.String("slug", s.Slug))
	return s, nil
}

func (uc *ResultSessionUseCase) Update(ctx context.Context, id string, input ResultSessionInput) (*entity.ResultSession, error) {
	input.normalize()
	if fields := validateStruct(input); len(fields) > 0 {
		return nil, newValidationError(fields)
	}

	s, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, passNotFound(err, "failed to load result session")
	}

	if input.Label != s.Label {
		slug, err := GenerateUniqueSlug(ctx, input.Label, uc.slugExists(s.ID))
		if err != nil {
			return nil, slugError(err)
		}
		s.Slug = slug
	}

	applyResultInput(s, input)
	s.UpdatedAt = uc.Now().UTC()

	if err := uc.Repo.Update(ctx, s); err != nil {
		return nil, writeError(err, "failed to update result session")
	}
	return s, nil
}

func (uc *ResultSessionUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.Repo.Delete(ctx, id); err != nil {
		return passNotFound(err, "failed to delete result session")
	}
	uc.Logger.Info("result session deleted", zap.String("id", id))
	return nil
}

func (uc *ResultSessionUseCase) slugExists(excludeID string) ExistsFunc {
	return func(ctx context.Context, candidate string) (bool, error) {
		return uc.Repo.SlugExists(ctx, candidate, excludeID)
	}
}

func applyResultInput(s *entity.ResultSession, input ResultSessionInput) {
	s.Label = input.Label
	s.Year = input.Year
	s.Description = input.Description
	s.Images = input.Images
}
