package interfaces

import "context"

// EventPublisher pushes engine events to an external broker. The key groups
// events for the same client onto one partition so their order is preserved.
type EventPublisher interface {
	Publish(ctx context.Context, key string, event any) error
}
