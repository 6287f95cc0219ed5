package repository

import (
	"time"

	"github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TimeSlotRepository interface {
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.TimeSlot, error)
	// FindByIDForUpdate locks the row until the surrounding transaction ends.
	FindByIDForUpdate(db *gorm.DB, id uuid.UUID) (*entity.TimeSlot, error)
	FindByFilter(db *gorm.DB, filter *entity.SlotFilter) ([]entity.TimeSlot, error)
	// FindDatesByRecurrence returns the dates in [from, to] that already hold a
	// slot generated from recurrenceID.
	FindDatesByRecurrence(db *gorm.DB, recurrenceID uuid.UUID, from, to time.Time) ([]time.Time, error)
	// BulkCreate inserts slots, skipping any whose (recurrence_id, date) already
	// exists, and returns the number of rows actually inserted.
	BulkCreate(db *gorm.DB, slots []entity.TimeSlot) (int64, error)
	Create(db *gorm.DB, slot *entity.TimeSlot) error
	Update(db *gorm.DB, slot *entity.TimeSlot) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
