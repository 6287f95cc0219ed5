package repository

import (
	"errors"
	"time"

	"github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/domain/entity"
	domainRepo "github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// bulkCreateBatchSize bounds the number of rows per INSERT statement.
const bulkCreateBatchSize = 200

type timeSlotRepository struct{}

func NewTimeSlotRepository() domainRepo.TimeSlotRepository {
	return &timeSlotRepository{}
}

func (r *timeSlotRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.TimeSlot, error) {
	return r.first(db.Where("id = ?", id))
}

func (r *timeSlotRepository) FindByIDForUpdate(db *gorm.DB, id uuid.UUID) (*entity.TimeSlot, error) {
	return r.first(db.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id))
}

func (r *timeSlotRepository) first(query *gorm.DB) (*entity.TimeSlot, error) {
	var slot entity.TimeSlot
	err := query.First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &slot, nil
}

// FindByFilter uses the (coach_id, date) index.
func (r *timeSlotRepository) FindByFilter(db *gorm.DB, filter *entity.SlotFilter) ([]entity.TimeSlot, error) {
	query := db.Model(&entity.TimeSlot{})
	if filter != nil {
		if filter.CoachID != uuid.Nil {
			query = query.Where("coach_id = ?", filter.CoachID)
		}
		if !filter.StartDate.IsZero() {
			query = query.Where("date >= ?", filter.StartDate)
		}
		if !filter.EndDate.IsZero() {
			query = query.Where("date <= ?", filter.EndDate)
		}
	}

	var slots []entity.TimeSlot
	err := query.Order("date ASC, start_time ASC").Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *timeSlotRepository) FindDatesByRecurrence(db *gorm.DB, recurrenceID uuid.UUID, from, to time.Time) ([]time.Time, error) {
	var dates []time.Time
	err := db.Model(&entity.TimeSlot{}).
		Where("recurrence_id = ? AND date BETWEEN ? AND ?", recurrenceID, from, to).
		Order("date ASC").
		Pluck("date", &dates).Error
	if err != nil {
		return nil, err
	}
	return dates, nil
}

// BulkCreate relies on the uq_time_slots_recurrence_date constraint: rows that
// lose a race with a concurrent generator are skipped instead of duplicated.
func (r *timeSlotRepository) BulkCreate(db *gorm.DB, slots []entity.TimeSlot) (int64, error) {
	if len(slots) == 0 {
		return 0, nil
	}

	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "recurrence_id"}, {Name: "date"}},
		DoNothing: true,
	}).CreateInBatches(&slots, bulkCreateBatchSize)
	return result.RowsAffected, result.Error
}

func (r *timeSlotRepository) Create(db *gorm.DB, slot *entity.TimeSlot) error {
	return db.Create(slot).Error
}

func (r *timeSlotRepository) Update(db *gorm.DB, slot *entity.TimeSlot) error {
	return db.Save(slot).Error
}

func (r *timeSlotRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.TimeSlot{})
	return result.RowsAffected, result.Error
}
