package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Routing keys
const (
	EventSlotsGenerated = "availability.slots_generated"
	EventSegmentRemoved = "availability.segment_removed"
)

type SlotsGeneratedEvent struct {
	PatternID uuid.UUID `json:"pattern_id"`
	CoachID   uuid.UUID `json:"coach_id"`
	Generated int64     `json:"generated"`
	Until     string    `json:"until"`
}

type SegmentRemovedEvent struct {
	SlotID        uuid.UUID  `json:"slot_id"`
	CoachID       uuid.UUID  `json:"coach_id"`
	Date          string     `json:"date"`
	Outcome       string     `json:"outcome"`
	CreatedSlotID *uuid.UUID `json:"created_slot_id,omitempty"`
}

// publishEvent runs after commit. A failed publish never fails the request.
func publishEvent(ctx context.Context, publisher EventPublisher, log *logrus.Logger, key string, event any) {
	if err := publisher.PublishJSON(context.WithoutCancel(ctx), key, event); err != nil {
		log.Warnf("Failed to publish %s event: %+v", key, err)
	}
}
