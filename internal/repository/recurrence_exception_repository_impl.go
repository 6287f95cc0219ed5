package repository

import (
	"time"

	"github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/domain/entity"
	domainRepo "github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type recurrenceExceptionRepository struct{}

func NewRecurrenceExceptionRepository() domainRepo.RecurrenceExceptionRepository {
	return &recurrenceExceptionRepository{}
}

func (r *recurrenceExceptionRepository) Create(db *gorm.DB, exception *entity.RecurrenceException) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "recurrence_id"}, {Name: "date"}},
		DoNothing: true,
	}).Create(exception).Error
}

func (r *recurrenceExceptionRepository) FindDates(db *gorm.DB, recurrenceID uuid.UUID, from, to time.Time) ([]time.Time, error) {
	var dates []time.Time
	err := db.Model(&entity.RecurrenceException{}).
		Where("recurrence_id = ? AND date BETWEEN ? AND ?", recurrenceID, from, to).
		Pluck("date", &dates).Error
	if err != nil {
		return nil, err
	}
	return dates, nil
}
