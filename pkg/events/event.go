package events

import (
	"encoding/json"
	"time"
)

const (
	TypeConversationCreated = "CONVERSATION_CREATED"
	TypeMessageExchanged    = "MESSAGE_EXCHANGED"
	TypeUserRegistered      = "USER_REGISTERED"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "MESSAGE_EXCHANGED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is also the wire form of every event on the bus.
type BaseEvent struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

func New(eventType string, data map[string]interface{}) BaseEvent {
	return BaseEvent{Type: eventType, Data: data, OccurredAt: time.Now().UTC()}
}

func Encode(e Event) ([]byte, error) {
	return json.Marshal(BaseEvent{Type: e.EventType(), Data: e.Payload(), OccurredAt: e.Timestamp()})
}

func Decode(payload []byte) (BaseEvent, error) {
	var e BaseEvent
	err := json.Unmarshal(payload, &e)
	return e, err
}
