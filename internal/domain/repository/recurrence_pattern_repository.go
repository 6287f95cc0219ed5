package repository

import (
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RecurrencePatternRepository interface {
	Create(db *gorm.DB, pattern *entity.RecurrencePattern) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.RecurrencePattern, error)
	FindByCoachID(db *gorm.DB, coachID uuid.UUID) ([]entity.RecurrencePattern, error)
	FindActiveIDs(db *gorm.DB) ([]uuid.UUID, error)
}
