package queue

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/xavierca1/admissions-api/internal/entity"
)

var ErrQueueFull = errors.New("notification queue full")

// LocalDispatcher is the in-process alternative to RabbitMQ. Publishing
// never blocks: when the buffer is full the notification is dropped.
type LocalDispatcher struct {
	jobs     chan entity.LeadNotification
	notifier Notifier
	logger   *zap.Logger
	wg       sync.WaitGroup
}

func NewLocalDispatcher(notifier Notifier, buffer int, logger *zap.Logger) *LocalDispatcher {
	if buffer <= 0 {
		buffer = 100
	}
	return &LocalDispatcher{
		jobs:     make(chan entity.LeadNotification, buffer),
		notifier: notifier,
		logger:   logger,
	}
}

func (d *LocalDispatcher) PublishLeadSubmitted(ctx context.Context, n entity.LeadNotification) error {
	select {
	case d.jobs <- n:
		notificationsTotal.WithLabelValues(outcomeQueued).Inc()
		return nil
	default:
		notificationsTotal.WithLabelValues(outcomeDropped).Inc()
		return ErrQueueFull
	}
}

// Start launches the workers; they return once ctx is done.
func (d *LocalDispatcher) Start(ctx context.Context, workers int) {
	if workers <= 0 {
		workers = 1
	}
	for i := 0; i < workers; i++ {
		d.wg.Add(1)
		go d.run(ctx)
	}
}

// Wait blocks until every worker has returned.
func (d *LocalDispatcher) Wait() {
	d.wg.Wait()
}

func (d *LocalDispatcher) run(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case n := <-d.jobs:
			d.deliver(n)
		}
	}
}

func (d *LocalDispatcher) deliver(n entity.LeadNotification) {
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	if err := d.notifier.NotifyLead(ctx, n); err != nil {
		d.logger.Warn("lead notification failed",
			zap.String("lead_id", n.LeadID),
			zap.Error(err),
		)
		notificationsTotal.WithLabelValues(outcomeFailed).Inc()
		return
	}
	notificationsTotal.WithLabelValues(outcomeSent).Inc()
}
