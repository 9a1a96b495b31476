package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/xavierca1/admissions-api/internal/entity"
)

type SubmitLeadUseCase struct {
	Repo   entity.LeadRepositoryInterface
	Events LeadEventPublisher
	Logger *zap.Logger
	Now    func() time.Time
}

func NewSubmitLeadUseCase(repo entity.LeadRepositoryInterface, events LeadEventPublisher, logger *zap.Logger) *SubmitLeadUseCase {
	return &SubmitLeadUseCase{
		Repo:   repo,
		Events: events,
		Logger: logger,
		Now:    time.Now,
	}
}

// Execute validates and stores an inquiry, then publishes the notification
// event. Publishing is best effort: its failure is logged and never returned.
func (uc *SubmitLeadUseCase) Execute(ctx context.Context, input SubmitLeadInput) (*entity.Lead, error) {
	input.normalize()
	if fields := validateStruct(input); len(fields) > 0 {
		return nil, newValidationError(fields)
	}

	lead := entity.NewLead(
		input.StudentName, input.FatherName, input.City, input.State,
		input.Phone, input.Email, input.Class, input.Message,
		uc.Now(),
	)

	if err := uc.Repo.Create(ctx, lead); err != nil {
		uc.Logger.Error("failed to persist lead", zap.Error(err))
		return nil, storeError("failed to save lead", err)
	}

	uc.Logger.Info("lead captured",
		zap.String("lead_id", lead.ID),
		zap.String("class", lead.Class),
	)

	if uc.Events != nil {
		// the request may finish before the broker answers
		pubCtx := context.WithoutCancel(ctx)
		if err := uc.Events.PublishLeadSubmitted(pubCtx, lead.Notification()); err != nil {
			uc.Logger.Warn("lead notification not published",
				zap.String("lead_id", lead.ID),
				zap.Error(err),
			)
		}
	}

	return lead, nil
}
