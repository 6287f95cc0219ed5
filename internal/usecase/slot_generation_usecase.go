package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/availability"
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/delivery/dto"
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/domain/entity"
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/domain/repository"
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/service"
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/pkg/timeofday"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

var (
	ErrPatternNotFound   = errors.New("recurrence pattern not found")
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
)

type SlotGenerationUsecase interface {
	// GenerateSlots materializes a pattern's slots up to the requested date.
	GenerateSlots(ctx context.Context, patternID uuid.UUID, req *dto.GenerateSlotsRequest, actorID uuid.UUID) (*dto.GenerateSlotsResponse, error)
	// Generate is GenerateSlots with a parsed horizon. A uuid.Nil actor is
	// recorded as the system.
	Generate(ctx context.Context, patternID uuid.UUID, horizon time.Time, actorID uuid.UUID) (*dto.GenerateSlotsResponse, error)
	ActivePatternIDs(ctx context.Context) ([]uuid.UUID, error)
}

type slotGenerationUsecase struct {
	tx            repository.Transactor
	log           *logrus.Logger
	patternRepo   repository.RecurrencePatternRepository
	slotRepo      repository.TimeSlotRepository
	exceptionRepo repository.RecurrenceExceptionRepository
	auditService  service.AuditService
	locker        Locker
	publisher     EventPublisher
}

func NewSlotGenerationUsecase(
	tx repository.Transactor,
	log *logrus.Logger,
	patternRepo repository.RecurrencePatternRepository,
	slotRepo repository.TimeSlotRepository,
	exceptionRepo repository.RecurrenceExceptionRepository,
	auditService service.AuditService,
	locker Locker,
	publisher EventPublisher,
) SlotGenerationUsecase {
	return &slotGenerationUsecase{
		tx:            tx,
		log:           log,
		patternRepo:   patternRepo,
		slotRepo:      slotRepo,
		exceptionRepo: exceptionRepo,
		auditService:  auditService,
		locker:        locker,
		publisher:     publisher,
	}
}

func (u *slotGenerationUsecase) GenerateSlots(ctx context.Context, patternID uuid.UUID, req *dto.GenerateSlotsRequest, actorID uuid.UUID) (*dto.GenerateSlotsResponse, error) {
	horizon, err := timeofday.ParseDate(req.GenerateUntilDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	return u.Generate(ctx, patternID, horizon, actorID)
}

func (u *slotGenerationUsecase) Generate(ctx context.Context, patternID uuid.UUID, horizon time.Time, actorID uuid.UUID) (*dto.GenerateSlotsResponse, error) {
	ctx, span := tracer.Start(ctx, "SlotGeneration.Generate", trace.WithAttributes(
		attribute.String("pattern.id", patternID.String()),
		attribute.String("horizon", timeofday.FormatDate(horizon)),
	))
	defer span.End()

	// Generators for one pattern run one at a time; the unique constraint
	// behind BulkCreate still guards against anything that slips past.
	unlock, err := u.locker.Lock(ctx, "recurrence:"+patternID.String())
	if err != nil {
		u.log.Warnf("Failed to lock pattern %s for generation: %+v", patternID, err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	defer unlock()

	var (
		pattern   *entity.RecurrencePattern
		generated int64
		until     time.Time
		inWindow  bool
	)

	err = u.tx.WithinTransaction(ctx, func(tx *gorm.DB) error {
		var err error
		pattern, err = u.patternRepo.FindByID(tx, patternID)
		if err != nil {
			return fmt.Errorf("find pattern %s: %w", patternID, err)
		}
		if pattern == nil {
			return ErrPatternNotFound
		}

		var from time.Time
		from, until, inWindow = availability.Window(pattern, horizon)
		if !inWindow {
			return nil
		}

		existing, err := u.slotRepo.FindDatesByRecurrence(tx, pattern.ID, from, until)
		if err != nil {
			return fmt.Errorf("find existing slot dates: %w", err)
		}
		exceptions, err := u.exceptionRepo.FindDates(tx, pattern.ID, from, until)
		if err != nil {
			return fmt.Errorf("find exception dates: %w", err)
		}

		dates, err := availability.ExpandDates(pattern, horizon, append(existing, exceptions...))
		if err != nil {
			return err
		}

		generated, err = u.slotRepo.BulkCreate(tx, availability.NewSlotsFromPattern(pattern, dates))
		if err != nil {
			return fmt.Errorf("insert generated slots: %w", err)
		}
		if generated == 0 {
			return nil
		}

		return u.auditService.LogCreate(ctx, tx, actorRef(actorID), entity.AuditActionSlotGenerate, "recurrence_pattern", pattern.ID.String(), map[string]interface{}{
			"generated": generated,
			"until":     timeofday.FormatDate(until),
		})
	})
	if err != nil {
		if !errors.Is(err, ErrPatternNotFound) {
			u.log.Warnf("Failed to generate slots for pattern %s: %+v", patternID, err)
			span.SetStatus(codes.Error, err.Error())
		}
		return nil, err
	}

	span.SetAttributes(attribute.Int64("slots.generated", generated))

	if generated > 0 {
		publishEvent(ctx, u.publisher, u.log, EventSlotsGenerated, SlotsGeneratedEvent{
			PatternID: pattern.ID,
			CoachID:   pattern.CoachID,
			Generated: generated,
			Until:     timeofday.FormatDate(until),
		})
	}

	u.log.WithFields(logrus.Fields{
		"pattern_id": patternID,
		"coach_id":   pattern.CoachID,
		"horizon":    timeofday.FormatDate(horizon),
		"active":     pattern.IsActive,
		"generated":  generated,
	}).Info("Slot generation finished")

	return &dto.GenerateSlotsResponse{
		Generated: generated,
		PatternID: patternID,
		Inactive:  !pattern.IsActive,
	}, nil
}

func (u *slotGenerationUsecase) ActivePatternIDs(ctx context.Context) ([]uuid.UUID, error) {
	ids, err := u.patternRepo.FindActiveIDs(u.tx.Conn(ctx))
	if err != nil {
		u.log.Warnf("Failed to find active patterns: %+v", err)
		return nil, err
	}
	return ids, nil
}
