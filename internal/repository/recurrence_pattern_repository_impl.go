package repository

import (
	"errors"

	"github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/domain/entity"
	domainRepo "github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type recurrencePatternRepository struct{}

func NewRecurrencePatternRepository() domainRepo.RecurrencePatternRepository {
	return &recurrencePatternRepository{}
}

func (r *recurrencePatternRepository) Create(db *gorm.DB, pattern *entity.RecurrencePattern) error {
	return db.Create(pattern).Error
}

func (r *recurrencePatternRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.RecurrencePattern, error) {
	var pattern entity.RecurrencePattern
	err := db.Where("id = ?", id).First(&pattern).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pattern, nil
}

func (r *recurrencePatternRepository) FindByCoachID(db *gorm.DB, coachID uuid.UUID) ([]entity.RecurrencePattern, error) {
	var patterns []entity.RecurrencePattern
	err := db.Where("coach_id = ?", coachID).
		Order("day_of_week ASC, start_time ASC").
		Find(&patterns).Error
	if err != nil {
		return nil, err
	}
	return patterns, nil
}

func (r *recurrencePatternRepository) FindActiveIDs(db *gorm.DB) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := db.Model(&entity.RecurrencePattern{}).
		Where("is_active = ?", true).
		Order("id").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
