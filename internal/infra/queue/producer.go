package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/admissions-api/internal/entity"
)

const publishTimeout = 3 * time.Second

type RabbitMQProducer struct {
	Ch *amqp.Channel
}

func NewProducer(ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{Ch: ch}
}

func (p *RabbitMQProducer) PublishLeadSubmitted(ctx context.Context, n entity.LeadNotification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal lead notification: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    n.LeadID,
			Timestamp:    n.SubmittedAt,
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		notificationsTotal.WithLabelValues(outcomeFailed).Inc()
		return fmt.Errorf("publish lead notification: %w", err)
	}
	notificationsTotal.WithLabelValues(outcomeQueued).Inc()
	return nil
}
