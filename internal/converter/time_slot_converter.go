package converter

import (
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/delivery/dto"
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/domain/entity"
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/pkg/timeofday"
)

// TimeSlotToResponse converts a TimeSlot entity to TimeSlotResponse DTO
func TimeSlotToResponse(slot *entity.TimeSlot) *dto.TimeSlotResponse {
	if slot == nil {
		return nil
	}

	names := make([]string, len(slot.ServiceNames))
	copy(names, slot.ServiceNames)

	return &dto.TimeSlotResponse{
		ID:                  slot.ID,
		CoachID:             slot.CoachID,
		Date:                timeofday.FormatDate(slot.Date),
		StartTime:           slot.StartTime,
		EndTime:             slot.EndTime,
		LocationID:          slot.LocationID,
		ServiceNames:        names,
		BufferBefore:        slot.BufferBefore,
		BufferAfter:         slot.BufferAfter,
		IsAvailable:         slot.IsAvailable,
		RecurrenceID:        slot.RecurrenceID,
		IsRecurringInstance: slot.IsRecurringInstance,
		CreatedAt:           slot.CreatedAt,
		UpdatedAt:           slot.UpdatedAt,
	}
}

// TimeSlotsToResponses converts a slice of TimeSlot entities to slice of TimeSlotResponse DTOs
func TimeSlotsToResponses(slots []entity.TimeSlot) []dto.TimeSlotResponse {
	responses := make([]dto.TimeSlotResponse, len(slots))
	for i := range slots {
		responses[i] = *TimeSlotToResponse(&slots[i])
	}
	return responses
}
