package events

import "time"

// Event is anything published on the domain event stream.
type Event interface {
	// EventType is the stream suffix, e.g. "SESSION_STARTED".
	EventType() string
	Payload() map[string]interface{}
	Timestamp() time.Time
}

// Envelope is the concrete Event carried over NATS. Payload values are kept
// to strings so a decoded envelope matches the published one.
type Envelope struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e Envelope) EventType() string               { return e.Type }
func (e Envelope) Payload() map[string]interface{} { return e.Data }
func (e Envelope) Timestamp() time.Time            { return e.OccurredAt }

func newEnvelope(eventType string, at time.Time, data map[string]interface{}) Envelope {
	return Envelope{Type: eventType, Data: data, OccurredAt: at}
}
