package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/xavierca1/admissions-api/internal/entity"
)

type ListLeadsUseCase struct {
	Repo entity.LeadRepositoryInterface
}

func NewListLeadsUseCase(repo entity.LeadRepositoryInterface) *ListLeadsUseCase {
	return &ListLeadsUseCase{Repo: repo}
}

func (uc *ListLeadsUseCase) Execute(ctx context.Context) ([]entity.Lead, error) {
	leads, err := uc.Repo.FindAll(ctx)
	if err != nil {
		return nil, storeError("failed to list leads", err)
	}
	if leads == nil {
		leads = []entity.Lead{}
	}
	return leads, nil
}

type UpdateLeadStatusUseCase struct {
	Repo   entity.LeadRepositoryInterface
	Logger *zap.Logger
}

func NewUpdateLeadStatusUseCase(repo entity.LeadRepositoryInterface, logger *zap.Logger) *UpdateLeadStatusUseCase {
	return &UpdateLeadStatusUseCase{Repo: repo, Logger: logger}
}

// Execute sets the status of one lead. Concurrent updates to the same lead
// are last-writer-wins.
func (uc *UpdateLeadStatusUseCase) Execute(ctx context.Context, input UpdateLeadStatusInput) (*entity.Lead, error) {
	status, err := entity.ParseLeadStatus(input.Status)
	if err != nil {
		return nil, &DomainError{
			Code:    CodeInvalidStatus,
			Message: "status must be one of New, Contacted, Admitted, Closed",
			Fields:  []ValidationError{{Field: "status", Message: "is invalid"}},
		}
	}

	lead, err := uc.Repo.UpdateStatus(ctx, input.ID, status)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return nil, err
		}
		uc.Logger.Error("failed to update lead status",
			zap.String("lead_id", input.ID),
			zap.Error(err),
		)
		return nil, storeError("failed to update lead", err)
	}

	uc.Logger.Info("lead status updated",
		zap.String("lead_id", lead.ID),
		zap.String("status", string(lead.Status)),
	)
	return lead, nil
}
