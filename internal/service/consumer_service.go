package service

import (
	"context"
	"encoding/json"

	"it-helpdesk-be/internal/pkg/logger"
	"it-helpdesk-be/internal/websocket"
	"it-helpdesk-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the activity topic and delivers events to the
// websocket hub feeding the dashboard activity panel.
type consumerService struct {
	pubSub *gochannel.GoChannel
	hub    *websocket.Hub
	logger logger.ILogger
}

func NewConsumerService(pubSub *gochannel.GoChannel, hub *websocket.Hub, log logger.ILogger) IConsumerService {
	return &consumerService{
		pubSub: pubSub,
		hub:    hub,
		logger: log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, ActivityTopic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var envelope activityEnvelope
	if err := json.Unmarshal(msg.Payload, &envelope); err != nil {
		cs.logger.Error("Consumer", "Failed to unmarshal activity event", map[string]interface{}{"error": err.Error()})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	cs.logger.Info("Consumer", "Activity event", map[string]interface{}{
		"type": envelope.Type,
		"data": envelope.Data,
	})

	cs.hub.Broadcast(events.BaseEvent{
		Type:       envelope.Type,
		Data:       envelope.Data,
		OccurredAt: envelope.Timestamp,
	})

	msg.Ack()
}
