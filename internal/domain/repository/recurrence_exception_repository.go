package repository

import (
	"time"

	"github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RecurrenceExceptionRepository interface {
	// Create is a no-op when the (recurrence_id, date) pair is already recorded.
	Create(db *gorm.DB, exception *entity.RecurrenceException) error
	FindDates(db *gorm.DB, recurrenceID uuid.UUID, from, to time.Time) ([]time.Time, error)
}
