package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// Dates and times are checked by the usecase so that each malformed value
// maps to its own error code.
type GenerateSlotsRequest struct {
	GenerateUntilDate string `json:"generate_until_date" validate:"required"` // Format: YYYY-MM-DD
}

type RemoveSegmentRequest struct {
	SegmentDate      string `json:"segment_date" validate:"required"`       // Format: YYYY-MM-DD
	SegmentStartTime string `json:"segment_start_time" validate:"required"` // Format: HH:MM
	SegmentEndTime   string `json:"segment_end_time" validate:"required"`   // Format: HH:MM
}

type TimeSlotQuery struct {
	CoachID uuid.UUID
	StartAt string
	EndAt   string
}

// Response DTOs

type TimeSlotResponse struct {
	ID                  uuid.UUID  `json:"id"`
	CoachID             uuid.UUID  `json:"coach_id"`
	Date                string     `json:"date"`
	StartTime           string     `json:"start_time"`
	EndTime             string     `json:"end_time"`
	LocationID          uuid.UUID  `json:"location_id"`
	ServiceNames        []string   `json:"service_names"`
	BufferBefore        int        `json:"buffer_before"`
	BufferAfter         int        `json:"buffer_after"`
	IsAvailable         bool       `json:"is_available"`
	RecurrenceID        *uuid.UUID `json:"recurrence_id"`
	IsRecurringInstance bool       `json:"is_recurring_instance"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

type TimeSlotListResponse struct {
	Slots []TimeSlotResponse `json:"slots"`
	Total int                `json:"total"`
}

type GenerateSlotsResponse struct {
	Generated int64     `json:"generated"`
	PatternID uuid.UUID `json:"pattern_id"`
	Inactive  bool      `json:"-"`
}

type RemoveSegmentResponse struct {
	Outcome string             `json:"outcome"`
	Message string             `json:"-"`
	Slots   []TimeSlotResponse `json:"slots"`
}
