package events

import "time"

// Activity event codes pushed to the dashboard feed.
const (
	TypeChatHandled      = "CHAT_HANDLED"
	TypeIncidentAnalyzed = "INCIDENT_ANALYZED"
	TypeQuizGenerated    = "QUIZ_GENERATED"
	TypeFeedbackReceived = "FEEDBACK_RECEIVED"
)

// NewActivity builds a feed event stamped with the current time.
func NewActivity(eventType string, data map[string]interface{}) Event {
	return BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
}
