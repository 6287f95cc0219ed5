package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/usecase")

// Locker serializes work on a key across goroutines and service instances.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

// EventPublisher delivers domain events. Delivery is best effort.
type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

// actorRef turns the caller id into the nullable audit user id.
// uuid.Nil stands for the system (scheduler) actor.
func actorRef(actorID uuid.UUID) *uuid.UUID {
	if actorID == uuid.Nil {
		return nil
	}
	return &actorID
}
