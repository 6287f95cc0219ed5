package entity

import (
	"time"

	"github.com/google/uuid"
)

// SlotFilter is a domain-level filter for querying time slots.
// Zero-valued bounds are ignored.
type SlotFilter struct {
	CoachID   uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}
