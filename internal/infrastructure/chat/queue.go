package chat

import (
	"context"
	"time"

	"estimate_request_service/internal/logger"
	"estimate_request_service/internal/notification"

	"github.com/google/uuid"
)

const (
	ChatMessageType = "notification.chat.v1"
	routingKey      = "notification.chat.slack"
)

// Queue hands rendered chat payloads to the exchange; a separate worker
// posts them to the company webhook.
type Queue struct {
	pub      Publisher
	producer string
	now      func() time.Time
}

var _ notification.ChatPublisher = (*Queue)(nil)

func NewQueue(pub Publisher, producer string) *Queue {
	return &Queue{pub: pub, producer: producer, now: time.Now}
}

func (q *Queue) Publish(ctx context.Context, msg notification.ChatMessage) error {
	producer := q.producer
	env := Envelope{
		Meta: Meta{
			ID:       uuid.NewString(),
			Producer: &producer,
			Time:     q.now().UTC(),
			Type:     ChatMessageType,
		},
		Data: msg,
	}
	logger.ExternalServiceCall("rabbitmq", "publish", "key", routingKey, "company_id", msg.CompanyID)
	err := q.pub.Publish(ctx, routingKey, env)
	logger.ExternalServiceResult("rabbitmq", "publish", err, "message_id", env.Meta.ID)
	return err
}
