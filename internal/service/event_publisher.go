package service

import (
	"context"

	"live-rooms-be/internal/pkg/logger"
	"live-rooms-be/pkg/events"
)

// IEventPublisher is satisfied by the NATS publisher. A nil publisher means
// the event bus is unavailable.
type IEventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// publishEvent never fails the caller; the event feed is auxiliary.
func publishEvent(ctx context.Context, publisher IEventPublisher, log logger.ILogger, event events.Event) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, event); err != nil {
		log.Warn("EVENTS", "Failed to publish event", map[string]interface{}{
			"type":  event.EventType(),
			"error": err.Error(),
		})
	}
}
