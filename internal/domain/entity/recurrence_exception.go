package entity

import (
	"time"

	"github.com/google/uuid"
)

// RecurrenceException marks a date on which a pattern's generated slot was
// edited or removed. Generation skips these dates.
type RecurrenceException struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	RecurrenceID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_recurrence_exceptions_recurrence_date" json:"recurrence_id"`
	Date         time.Time `gorm:"type:date;not null;uniqueIndex:uq_recurrence_exceptions_recurrence_date" json:"date"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (RecurrenceException) TableName() string {
	return "recurrence_exceptions"
}
