package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TimeSlot is one contiguous block of coach availability on a single date.
// RecurrenceID is a lookup reference to the generating pattern, not ownership.
type TimeSlot struct {
	ID                  uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CoachID             uuid.UUID                   `gorm:"type:uuid;not null;index:idx_time_slots_coach_date" json:"coach_id"`
	Date                time.Time                   `gorm:"type:date;not null;index:idx_time_slots_coach_date" json:"date"`
	StartTime           string                      `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime             string                      `gorm:"type:varchar(5);not null" json:"end_time"`
	LocationID          uuid.UUID                   `gorm:"type:uuid;not null" json:"location_id"`
	ServiceNames        datatypes.JSONSlice[string] `gorm:"type:jsonb;not null" json:"service_names"`
	BufferBefore        int                         `gorm:"not null" json:"buffer_before"`
	BufferAfter         int                         `gorm:"not null" json:"buffer_after"`
	IsAvailable         bool                        `gorm:"not null" json:"is_available"`
	RecurrenceID        *uuid.UUID                  `gorm:"type:uuid" json:"recurrence_id,omitempty"`
	IsRecurringInstance bool                        `gorm:"not null" json:"is_recurring_instance"`
	CreatedAt           time.Time                   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time                   `gorm:"autoUpdateTime" json:"updated_at"`
}

func (TimeSlot) TableName() string {
	return "time_slots"
}

// Detach clears the link to the generating pattern. A slot whose shape was
// edited no longer represents its pattern.
func (s *TimeSlot) Detach() {
	s.RecurrenceID = nil
	s.IsRecurringInstance = false
}

// IsGenerated reports whether the slot still tracks a recurrence pattern.
func (s *TimeSlot) IsGenerated() bool {
	return s.IsRecurringInstance && s.RecurrenceID != nil
}
