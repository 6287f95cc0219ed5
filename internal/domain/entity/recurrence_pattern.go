package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RecurrencePattern is a weekly availability rule for a coach.
// DayOfWeek follows time.Weekday: 0=Sunday .. 6=Saturday.
type RecurrencePattern struct {
	ID                  uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CoachID             uuid.UUID                   `gorm:"type:uuid;not null;index" json:"coach_id"`
	DayOfWeek           int                         `gorm:"not null" json:"day_of_week"`
	StartTime           string                      `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime             string                      `gorm:"type:varchar(5);not null" json:"end_time"`
	LocationID          uuid.UUID                   `gorm:"type:uuid;not null" json:"location_id"`
	ServiceNames        datatypes.JSONSlice[string] `gorm:"type:jsonb;not null" json:"service_names"`
	BufferBefore        int                         `gorm:"not null" json:"buffer_before"`
	BufferAfter         int                         `gorm:"not null" json:"buffer_after"`
	RecurrenceStartDate time.Time                   `gorm:"type:date;not null" json:"recurrence_start_date"`
	RecurrenceEndDate   *time.Time                  `gorm:"type:date" json:"recurrence_end_date,omitempty"`
	IsActive            bool                        `gorm:"not null;index" json:"is_active"`
	CreatedAt           time.Time                   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time                   `gorm:"autoUpdateTime" json:"updated_at"`
}

func (RecurrencePattern) TableName() string {
	return "recurrence_patterns"
}

// Weekday returns the pattern's day as a time.Weekday.
func (p *RecurrencePattern) Weekday() time.Weekday {
	return time.Weekday(p.DayOfWeek)
}
