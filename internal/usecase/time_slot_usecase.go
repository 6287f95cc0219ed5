package usecase

import (
	"context"

	"github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/converter"
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/delivery/dto"
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/domain/entity"
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/domain/repository"
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/pkg/timeofday"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type TimeSlotUsecase interface {
	GetTimeSlot(ctx context.Context, slotID uuid.UUID) (*dto.TimeSlotResponse, error)
	GetTimeSlotsByCoach(ctx context.Context, query *dto.TimeSlotQuery) (*dto.TimeSlotListResponse, error)
}

type timeSlotUsecase struct {
	tx       repository.Transactor
	log      *logrus.Logger
	slotRepo repository.TimeSlotRepository
}

func NewTimeSlotUsecase(
	tx repository.Transactor,
	log *logrus.Logger,
	slotRepo repository.TimeSlotRepository,
) TimeSlotUsecase {
	return &timeSlotUsecase{
		tx:       tx,
		log:      log,
		slotRepo: slotRepo,
	}
}

func (u *timeSlotUsecase) GetTimeSlot(ctx context.Context, slotID uuid.UUID) (*dto.TimeSlotResponse, error) {
	slot, err := u.slotRepo.FindByID(u.tx.Conn(ctx), slotID)
	if err != nil {
		u.log.Warnf("Failed to find time slot: %+v", err)
		return nil, err
	}
	if slot == nil {
		return nil, ErrTimeSlotNotFound
	}

	return converter.TimeSlotToResponse(slot), nil
}

func (u *timeSlotUsecase) GetTimeSlotsByCoach(ctx context.Context, query *dto.TimeSlotQuery) (*dto.TimeSlotListResponse, error) {
	filter := &entity.SlotFilter{CoachID: query.CoachID}

	if query.StartAt != "" {
		start, err := timeofday.ParseDate(query.StartAt)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		filter.StartDate = start
	}
	if query.EndAt != "" {
		end, err := timeofday.ParseDate(query.EndAt)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		filter.EndDate = end
	}
	if !filter.StartDate.IsZero() && !filter.EndDate.IsZero() && filter.EndDate.Before(filter.StartDate) {
		return nil, ErrInvalidDateRange
	}

	slots, err := u.slotRepo.FindByFilter(u.tx.Conn(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to find time slots: %+v", err)
		return nil, err
	}

	return &dto.TimeSlotListResponse{
		Slots: converter.TimeSlotsToResponses(slots),
		Total: len(slots),
	}, nil
}
