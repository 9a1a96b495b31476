package mail

import (
	"context"

	"go.uber.org/zap"

	"github.com/xavierca1/admissions-api/internal/entity"
)

// NopNotifier only logs. It is wired when no mail provider is configured.
type NopNotifier struct {
	Logger *zap.Logger
}

func (n NopNotifier) NotifyLead(ctx context.Context, ln entity.LeadNotification) error {
	n.Logger.Info("mail disabled, lead notification skipped",
		zap.String("lead_id", ln.LeadID),
		zap.String("class", ln.Class),
	)
	return nil
}
