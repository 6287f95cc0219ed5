package handler

import (
	"errors"
	"net/http"

	"github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/availability"
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/service"
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/usecase"
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/pkg/response"
)

// writeError maps usecase and engine errors to responses. Anything it does
// not recognize is a 500 with fallback as the message.
func writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrPatternNotFound):
		response.NotFound(w, "Recurrence pattern not found", response.CodePatternNotFound)
	case errors.Is(err, usecase.ErrTimeSlotNotFound):
		response.NotFound(w, "Time slot not found", response.CodeSlotNotFound)
	case errors.Is(err, usecase.ErrAuditLogNotFound):
		response.NotFound(w, "Audit log not found", "")
	case errors.Is(err, usecase.ErrInvalidDateFormat):
		response.BadRequest(w, "Invalid date format, use YYYY-MM-DD", response.CodeInvalidDate)
	case errors.Is(err, usecase.ErrInvalidDateRange):
		response.BadRequest(w, "End date must not be before start date", response.CodeInvalidDate)
	case errors.Is(err, usecase.ErrInvalidTimeFormat):
		response.BadRequest(w, "Invalid time format, use HH:MM", response.CodeInvalidTime)
	case errors.Is(err, usecase.ErrInvalidTimeRange), errors.Is(err, availability.ErrInvertedInterval):
		response.BadRequest(w, "Start time must be before end time", response.CodeInvertedInterval)
	case errors.Is(err, availability.ErrDateMismatch):
		response.BadRequest(w, "Segment date does not match time slot date", response.CodeDateMismatch)
	case errors.Is(err, availability.ErrOutOfBounds):
		response.BadRequest(w, "Segment must lie within the time slot", response.CodeOutOfBounds)
	case errors.Is(err, usecase.ErrPatternConflict):
		response.Conflict(w, "An identical recurrence pattern already exists", response.CodePatternConflict)
	case errors.Is(err, service.ErrLockTimeout):
		response.Error(w, http.StatusServiceUnavailable, "Another generation is in progress, try again", response.CodeLockTimeout)
	default:
		response.InternalServerError(w, fallback)
	}
}
