package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/availability"
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/converter"
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
	ErrTimeSlotNotFound  = errors.New("time slot not found")
	ErrInvalidTimeFormat = errors.New("invalid time format, use HH:MM")
)

type SegmentRemovalUsecase interface {
	RemoveSegment(ctx context.Context, slotID uuid.UUID, req *dto.RemoveSegmentRequest, actorID uuid.UUID) (*dto.RemoveSegmentResponse, error)
}

type segmentRemovalUsecase struct {
	tx            repository.Transactor
	log           *logrus.Logger
	slotRepo      repository.TimeSlotRepository
	exceptionRepo repository.RecurrenceExceptionRepository
	auditService  service.AuditService
	publisher     EventPublisher
}

func NewSegmentRemovalUsecase(
	tx repository.Transactor,
	log *logrus.Logger,
	slotRepo repository.TimeSlotRepository,
	exceptionRepo repository.RecurrenceExceptionRepository,
	auditService service.AuditService,
	publisher EventPublisher,
) SegmentRemovalUsecase {
	return &segmentRemovalUsecase{
		tx:            tx,
		log:           log,
		slotRepo:      slotRepo,
		exceptionRepo: exceptionRepo,
		auditService:  auditService,
		publisher:     publisher,
	}
}

func (u *segmentRemovalUsecase) RemoveSegment(ctx context.Context, slotID uuid.UUID, req *dto.RemoveSegmentRequest, actorID uuid.UUID) (*dto.RemoveSegmentResponse, error) {
	seg, err := parseSegment(req)
	if err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "SegmentRemoval.RemoveSegment", trace.WithAttributes(
		attribute.String("slot.id", slotID.String()),
		attribute.String("segment", seg.Interval.String()),
	))
	defer span.End()

	var removal *availability.Removal

	// The row lock keeps concurrent removals on one slot from planning
	// against the same stale bounds.
	err = u.tx.WithinTransaction(ctx, func(tx *gorm.DB) error {
		slot, err := u.slotRepo.FindByIDForUpdate(tx, slotID)
		if err != nil {
			return fmt.Errorf("find slot %s: %w", slotID, err)
		}
		if slot == nil {
			return ErrTimeSlotNotFound
		}

		removal, err = availability.PlanRemoval(*slot, seg)
		if err != nil {
			return err
		}

		if err := u.apply(ctx, tx, removal, actorID); err != nil {
			return err
		}

		if slot.IsGenerated() {
			exception := &entity.RecurrenceException{RecurrenceID: *slot.RecurrenceID, Date: timeofday.Date(slot.Date)}
			if err := u.exceptionRepo.Create(tx, exception); err != nil {
				return fmt.Errorf("record recurrence exception: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrTimeSlotNotFound) && !availability.IsValidationError(err) {
			u.log.Warnf("Failed to remove segment from slot %s: %+v", slotID, err)
			span.SetStatus(codes.Error, err.Error())
		}
		return nil, err
	}

	span.SetAttributes(attribute.String("removal.outcome", string(removal.Outcome)))

	event := SegmentRemovedEvent{
		SlotID:  slotID,
		CoachID: removal.Original.CoachID,
		Date:    timeofday.FormatDate(removal.Original.Date),
		Outcome: string(removal.Outcome),
	}
	if removal.Created != nil {
		event.CreatedSlotID = &removal.Created.ID
	}
	publishEvent(ctx, u.publisher, u.log, EventSegmentRemoved, event)

	u.log.WithFields(logrus.Fields{
		"slot_id":  slotID,
		"coach_id": removal.Original.CoachID,
		"segment":  seg.Interval.String(),
		"outcome":  removal.Outcome,
	}).Info("Segment removed")

	return &dto.RemoveSegmentResponse{
		Outcome: string(removal.Outcome),
		Message: removal.Outcome.Message(),
		Slots:   converter.TimeSlotsToResponses(removal.Remaining()),
	}, nil
}

func parseSegment(req *dto.RemoveSegmentRequest) (availability.Segment, error) {
	date, err := timeofday.ParseDate(req.SegmentDate)
	if err != nil {
		return availability.Segment{}, ErrInvalidDateFormat
	}
	start, err := timeofday.ParseClock(req.SegmentStartTime)
	if err != nil {
		return availability.Segment{}, ErrInvalidTimeFormat
	}
	end, err := timeofday.ParseClock(req.SegmentEndTime)
	if err != nil {
		return availability.Segment{}, ErrInvalidTimeFormat
	}
	return availability.Segment{Date: date, Interval: timeofday.Interval{Start: start, End: end}}, nil
}

// apply writes the planned mutation and its audit entry.
func (u *segmentRemovalUsecase) apply(ctx context.Context, tx *gorm.DB, removal *availability.Removal, actorID uuid.UUID) error {
	original := converter.TimeSlotToResponse(&removal.Original)
	slotID := removal.Original.ID.String()
	actor := actorRef(actorID)

	switch removal.Outcome {
	case availability.OutcomeDeleted:
		rows, err := u.slotRepo.Delete(tx, removal.Original.ID)
		if err != nil {
			return fmt.Errorf("delete slot: %w", err)
		}
		if rows == 0 {
			return ErrTimeSlotNotFound
		}
		return u.auditService.LogDelete(ctx, tx, actor, entity.AuditActionSlotDelete, "time_slot", slotID, original)

	case availability.OutcomeTrimmedStart, availability.OutcomeTrimmedEnd:
		if err := u.slotRepo.Update(tx, removal.Updated); err != nil {
			return fmt.Errorf("update slot: %w", err)
		}
		action := entity.AuditActionSlotTrimStart
		if removal.Outcome == availability.OutcomeTrimmedEnd {
			action = entity.AuditActionSlotTrimEnd
		}
		return u.auditService.LogUpdate(ctx, tx, actor, action, "time_slot", slotID, original, converter.TimeSlotToResponse(removal.Updated))

	case availability.OutcomeSplit:
		if err := u.slotRepo.Update(tx, removal.Updated); err != nil {
			return fmt.Errorf("update slot: %w", err)
		}
		if err := u.slotRepo.Create(tx, removal.Created); err != nil {
			return fmt.Errorf("create split slot: %w", err)
		}
		return u.auditService.LogUpdate(ctx, tx, actor, entity.AuditActionSlotSplit, "time_slot", slotID, original, map[string]interface{}{
			"updated": converter.TimeSlotToResponse(removal.Updated),
			"created": converter.TimeSlotToResponse(removal.Created),
		})
	}

	return fmt.Errorf("unknown removal outcome %q", removal.Outcome)
}
