package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/xavierca1/admissions-api/internal/entity"
)

const notifyTimeout = 15 * time.Second

// Notifier delivers one lead notification, typically by email.
type Notifier interface {
	NotifyLead(ctx context.Context, n entity.LeadNotification) error
}

// NotificationWorker consumes lead notifications from RabbitMQ.
// Failed deliveries are rejected without requeue and end up in the DLQ.
type NotificationWorker struct {
	Channel  *amqp.Channel
	Notifier Notifier
	Logger   *zap.Logger
}

func NewNotificationWorker(ch *amqp.Channel, notifier Notifier, logger *zap.Logger) *NotificationWorker {
	return &NotificationWorker{
		Channel:  ch,
		Notifier: notifier,
		Logger:   logger,
	}
}

// Start blocks until ctx is done or the delivery channel closes.
func (w *NotificationWorker) Start(ctx context.Context) error {
	msgs, err := w.Channel.ConsumeWithContext(ctx,
		QueueName,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("register consumer: %w", err)
	}

	w.Logger.Info("notification worker listening", zap.String("queue", QueueName))

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			if w.handle(ctx, d.Body) {
				d.Ack(false)
			} else {
				d.Nack(false, false)
			}
		}
	}
}

// handle reports whether the delivery should be acknowledged.
func (w *NotificationWorker) handle(ctx context.Context, body []byte) bool {
	var n entity.LeadNotification
	if err := json.Unmarshal(body, &n); err != nil {
		w.Logger.Error("malformed lead notification", zap.Error(err))
		notificationsTotal.WithLabelValues(outcomeFailed).Inc()
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, notifyTimeout)
	defer cancel()

	if err := w.Notifier.NotifyLead(ctx, n); err != nil {
		w.Logger.Warn("lead notification failed",
			zap.String("lead_id", n.LeadID),
			zap.Error(err),
		)
		notificationsTotal.WithLabelValues(outcomeFailed).Inc()
		return false
	}

	w.Logger.Info("lead notification sent", zap.String("lead_id", n.LeadID))
	notificationsTotal.WithLabelValues(outcomeSent).Inc()
	return true
}
