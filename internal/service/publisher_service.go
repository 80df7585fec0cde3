package service

import (
	"context"
	"encoding/json"
	"time"

	"it-helpdesk-be/internal/pkg/logger"
	"it-helpdesk-be/pkg/events"
	pkgnats "it-helpdesk-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// ActivityTopic is the in-process watermill topic carrying dashboard
// activity events.
const ActivityTopic = "activity"

// activityEnvelope is the wire form of an event on the watermill topic.
type activityEnvelope struct {
	Type      string                 `json:"type"`
	Data      map[string]interface{} `json:"data"`
	Timestamp time.Time              `json:"timestamp"`
}

type IPublisherService interface {
	PublishActivity(ctx context.Context, event events.Event)
}

type publisherService struct {
	pubSub  *gochannel.GoChannel
	natsPub *pkgnats.Publisher // optional, nil when NATS is not configured
	logger  logger.ILogger
}

func NewPublisherService(pubSub *gochannel.GoChannel, natsPub *pkgnats.Publisher, log logger.ILogger) IPublisherService {
	return &publisherService{
		pubSub:  pubSub,
		natsPub: natsPub,
		logger:  log,
	}
}

// PublishActivity fans the event onto the in-process bus and, when NATS is
// connected, mirrors it there. Publishing is best-effort: a bus failure
// never fails the originating request.
func (ps *publisherService) PublishActivity(ctx context.Context, event events.Event) {
	payload, err := json.Marshal(activityEnvelope{
		Type:      event.EventType(),
		Data:      event.Payload(),
		Timestamp: event.Timestamp(),
	})
	if err != nil {
		ps.logger.Error("Publisher", "Failed to marshal activity event", map[string]interface{}{"error": err.Error()})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := ps.pubSub.Publish(ActivityTopic, msg); err != nil {
		ps.logger.Error("Publisher", "Failed to publish activity event", map[string]interface{}{"error": err.Error()})
	}

	if ps.natsPub != nil {
		if err := ps.natsPub.Publish(ctx, event); err != nil {
			ps.logger.Warn("Publisher", "NATS mirror failed", map[string]interface{}{"error": err.Error()})
		}
	}
}
