package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/converter"
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/delivery/dto"
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/domain/entity"
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/domain/repository"
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/service"
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/pkg/timeofday"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidTimeRange = errors.New("start time must be before end time")
	ErrInvalidDateRange = errors.New("end date must not be before start date")
	ErrPatternConflict  = errors.New("an identical recurrence pattern already exists")
)

type RecurrencePatternUsecase interface {
	CreatePattern(ctx context.Context, req *dto.CreateRecurrencePatternRequest, actorID uuid.UUID) (*dto.RecurrencePatternResponse, error)
	GetPattern(ctx context.Context, patternID uuid.UUID) (*dto.RecurrencePatternResponse, error)
	GetPatternsByCoach(ctx context.Context, coachID uuid.UUID) (*dto.RecurrencePatternListResponse, error)
}

type recurrencePatternUsecase struct {
	tx           repository.Transactor
	log          *logrus.Logger
	patternRepo  repository.RecurrencePatternRepository
	auditService service.AuditService
}

func NewRecurrencePatternUsecase(
	tx repository.Transactor,
	log *logrus.Logger,
	patternRepo repository.RecurrencePatternRepository,
	auditService service.AuditService,
) RecurrencePatternUsecase {
	return &recurrencePatternUsecase{
		tx:           tx,
		log:          log,
		patternRepo:  patternRepo,
		auditService: auditService,
	}
}

func (u *recurrencePatternUsecase) CreatePattern(ctx context.Context, req *dto.CreateRecurrencePatternRequest, actorID uuid.UUID) (*dto.RecurrencePatternResponse, error) {
	hours, err := timeofday.ParseInterval(req.StartTime, req.EndTime)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}
	if !hours.Valid() {
		return nil, ErrInvalidTimeRange
	}

	startDate, err := timeofday.ParseDate(req.RecurrenceStartDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	var endDate *time.Time
	if req.RecurrenceEndDate != "" {
		end, err := timeofday.ParseDate(req.RecurrenceEndDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		if end.Before(startDate) {
			return nil, ErrInvalidDateRange
		}
		endDate = &end
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	serviceNames := make([]string, len(req.ServiceNames))
	copy(serviceNames, req.ServiceNames)

	pattern := &entity.RecurrencePattern{
		ID:                  uuid.New(),
		CoachID:             req.CoachID,
		DayOfWeek:           *req.DayOfWeek,
		StartTime:           hours.Start.String(),
		EndTime:             hours.End.String(),
		LocationID:          req.LocationID,
		ServiceNames:        serviceNames,
		BufferBefore:        req.BufferBefore,
		BufferAfter:         req.BufferAfter,
		RecurrenceStartDate: startDate,
		RecurrenceEndDate:   endDate,
		IsActive:            isActive,
	}

	err = u.tx.WithinTransaction(ctx, func(tx *gorm.DB) error {
		if err := u.patternRepo.Create(tx, pattern); err != nil {
			return err
		}
		return u.auditService.LogCreate(ctx, tx, actorRef(actorID), entity.AuditActionPatternCreate, "recurrence_pattern", pattern.ID.String(), converter.RecurrencePatternToResponse(pattern))
	})
	if err != nil {
		if isDuplicateKeyError(err, "uq_recurrence_patterns_coach_weekly") {
			return nil, ErrPatternConflict
		}
		u.log.Warnf("Failed to create recurrence pattern: %+v", err)
		return nil, err
	}

	return converter.RecurrencePatternToResponse(pattern), nil
}

func (u *recurrencePatternUsecase) GetPattern(ctx context.Context, patternID uuid.UUID) (*dto.RecurrencePatternResponse, error) {
	pattern, err := u.patternRepo.FindByID(u.tx.Conn(ctx), patternID)
	if err != nil {
		u.log.Warnf("Failed to find recurrence pattern: %+v", err)
		return nil, err
	}
	if pattern == nil {
		return nil, ErrPatternNotFound
	}

	return converter.RecurrencePatternToResponse(pattern), nil
}

func (u *recurrencePatternUsecase) GetPatternsByCoach(ctx context.Context, coachID uuid.UUID) (*dto.RecurrencePatternListResponse, error) {
	patterns, err := u.patternRepo.FindByCoachID(u.tx.Conn(ctx), coachID)
	if err != nil {
		u.log.Warnf("Failed to find recurrence patterns: %+v", err)
		return nil, err
	}

	return &dto.RecurrencePatternListResponse{
		Patterns: converter.RecurrencePatternsToResponses(patterns),
		Total:    len(patterns),
	}, nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation
// containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
