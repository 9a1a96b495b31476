package worker

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/xavierca1/admissions-api/internal/entity"
)

var leadsByStatus = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "leads_by_status",
		Help: "Stored leads per pipeline status",
	},
	[]string{"status"},
)

// LeadGaugeWorker periodically recounts leads per status for the
// leads_by_status gauge.
type LeadGaugeWorker struct {
	repo         entity.LeadRepositoryInterface
	logger       *zap.Logger
	tickInterval time.Duration
	gauge        *prometheus.GaugeVec
}

func NewLeadGaugeWorker(repo entity.LeadRepositoryInterface, interval time.Duration, logger *zap.Logger) *LeadGaugeWorker {
	if interval <= 0 {
		interval = time.Minute
	}
	return &LeadGaugeWorker{
		repo:         repo,
		logger:       logger,
		tickInterval: interval,
		gauge:        leadsByStatus,
	}
}

func (w *LeadGaugeWorker) Start(ctx context.Context) {
	w.logger.Info("lead gauge worker started", zap.Duration("interval", w.tickInterval))

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("lead gauge worker stopped")
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *LeadGaugeWorker) refresh(ctx context.Context) {
	counts, err := w.repo.CountByStatus(ctx)
	if err != nil {
		w.logger.Warn("lead gauge refresh failed", zap.Error(err))
		return
	}

	for _, st := range entity.LeadStatuses {
		w.gauge.WithLabelValues(string(st)).Set(float64(counts[st]))
	}
}
