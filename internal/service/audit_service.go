package service

import (
	"context"
	"encoding/json"

	"legal-chat-be/internal/pkg/logger"
	"legal-chat-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IAuditService interface {
	PublishQueryAnswered(ctx context.Context, event events.QueryAnswered) error
	Consume(ctx context.Context) error
}

type auditService struct {
	pubSub *gochannel.GoChannel
	log    logger.ILogger
}

func NewAuditService(pubSub *gochannel.GoChannel, log logger.ILogger) IAuditService {
	return &auditService{
		pubSub: pubSub,
		log:    log,
	}
}

func (a *auditService) PublishQueryAnswered(ctx context.Context, event events.QueryAnswered) error {
	payload, err := json.Marshal(event.Payload())
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_type", event.EventType())
	return a.pubSub.Publish(events.TopicQueryAnswered, msg)
}

func (a *auditService) Consume(ctx context.Context) error {
	messages, err := a.pubSub.Subscribe(ctx, events.TopicQueryAnswered)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			a.processMessage(msg)
		}
	}()

	return nil
}

func (a *auditService) processMessage(msg *message.Message) {
	var payload map[string]interface{}
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		a.log.Error("audit", "failed to unmarshal audit event", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	a.log.Info("audit", "query answered", payload)
	msg.Ack()
}
