package converter

import (
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/delivery/dto"
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/domain/entity"
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/pkg/timeofday"
)

// RecurrencePatternToResponse converts a RecurrencePattern entity to RecurrencePatternResponse DTO
func RecurrencePatternToResponse(pattern *entity.RecurrencePattern) *dto.RecurrencePatternResponse {
	if pattern == nil {
		return nil
	}

	names := make([]string, len(pattern.ServiceNames))
	copy(names, pattern.ServiceNames)

	response := &dto.RecurrencePatternResponse{
		ID:                  pattern.ID,
		CoachID:             pattern.CoachID,
		DayOfWeek:           pattern.DayOfWeek,
		StartTime:           pattern.StartTime,
		EndTime:             pattern.EndTime,
		LocationID:          pattern.LocationID,
		ServiceNames:        names,
		BufferBefore:        pattern.BufferBefore,
		BufferAfter:         pattern.BufferAfter,
		RecurrenceStartDate: timeofday.FormatDate(pattern.RecurrenceStartDate),
		IsActive:            pattern.IsActive,
		CreatedAt:           pattern.CreatedAt,
		UpdatedAt:           pattern.UpdatedAt,
	}

	if pattern.RecurrenceEndDate != nil {
		end := timeofday.FormatDate(*pattern.RecurrenceEndDate)
		response.RecurrenceEndDate = &end
	}

	return response
}

// RecurrencePatternsToResponses converts a slice of RecurrencePattern entities to slice of RecurrencePatternResponse DTOs
func RecurrencePatternsToResponses(patterns []entity.RecurrencePattern) []dto.RecurrencePatternResponse {
	responses := make([]dto.RecurrencePatternResponse, len(patterns))
	for i := range patterns {
		responses[i] = *RecurrencePatternToResponse(&patterns[i])
	}
	return responses
}
