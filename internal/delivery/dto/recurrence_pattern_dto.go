package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateRecurrencePatternRequest struct {
	CoachID             uuid.UUID `json:"coach_id" validate:"required"`
	DayOfWeek           *int      `json:"day_of_week" validate:"required,min=0,max=6"` // 0=Sunday
	StartTime           string    `json:"start_time" validate:"required,clock"`
	EndTime             string    `json:"end_time" validate:"required,clock"`
	LocationID          uuid.UUID `json:"location_id" validate:"required"`
	ServiceNames        []string  `json:"service_names" validate:"omitempty,dive,required"`
	BufferBefore        int       `json:"buffer_before" validate:"min=0"`
	BufferAfter         int       `json:"buffer_after" validate:"min=0"`
	RecurrenceStartDate string    `json:"recurrence_start_date" validate:"required,isodate"`
	RecurrenceEndDate   string    `json:"recurrence_end_date" validate:"omitempty,isodate"`
	IsActive            *bool     `json:"is_active"`
}

// Response DTOs

type RecurrencePatternResponse struct {
	ID                  uuid.UUID `json:"id"`
	CoachID             uuid.UUID `json:"coach_id"`
	DayOfWeek           int       `json:"day_of_week"`
	StartTime           string    `json:"start_time"`
	EndTime             string    `json:"end_time"`
	LocationID          uuid.UUID `json:"location_id"`
	ServiceNames        []string  `json:"service_names"`
	BufferBefore        int       `json:"buffer_before"`
	BufferAfter         int       `json:"buffer_after"`
	RecurrenceStartDate string    `json:"recurrence_start_date"`
	RecurrenceEndDate   *string   `json:"recurrence_end_date"`
	IsActive            bool      `json:"is_active"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type RecurrencePatternListResponse struct {
	Patterns []RecurrencePatternResponse `json:"patterns"`
	Total    int                         `json:"total"`
}
