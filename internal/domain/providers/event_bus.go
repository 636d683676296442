package providers

import (
	"context"

	"github.com/propie/recommendation-engine/internal/domain/entities"
)

// EventBus defines the interface for publishing and consuming interaction
// events. Recording an interaction publishes an event; a retraining
// consumer subscribes and decides when to retrain.
type EventBus interface {
	// Publish publishes an event to all subscribers of the channel.
	Publish(ctx context.Context, channel string, event *entities.InteractionEvent) error

	// Subscribe subscribes to events on a channel.
	Subscribe(ctx context.Context, channel string) (<-chan *entities.InteractionEvent, error)

	// Unsubscribe closes a channel's subscription.
	Unsubscribe(ctx context.Context, channel string) error

	// Close shuts the bus down.
	Close() error
}
