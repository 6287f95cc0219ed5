package handler

import (
	"encoding/json"
	"net/http"

	"github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/delivery/dto"
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/delivery/http/middleware"
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/usecase"
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/pkg/response"
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type TimeSlotHandler struct {
	slotUsecase    usecase.TimeSlotUsecase
	removalUsecase usecase.SegmentRemovalUsecase
	validator      *validator.CustomValidator
}

func NewTimeSlotHandler(
	slotUsecase usecase.TimeSlotUsecase,
	removalUsecase usecase.SegmentRemovalUsecase,
	validator *validator.CustomValidator,
) *TimeSlotHandler {
	return &TimeSlotHandler{
		slotUsecase:    slotUsecase,
		removalUsecase: removalUsecase,
		validator:      validator,
	}
}

func (h *TimeSlotHandler) GetTimeSlot(w http.ResponseWriter, r *http.Request) {
	slotID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid time slot ID", "")
		return
	}

	slot, err := h.slotUsecase.GetTimeSlot(r.Context(), slotID)
	if err != nil {
		writeError(w, err, "Failed to get time slot")
		return
	}

	response.Success(w, http.StatusOK, "Time slot retrieved successfully", slot)
}

func (h *TimeSlotHandler) GetTimeSlotsByCoach(w http.ResponseWriter, r *http.Request) {
	coachID, err := uuid.Parse(mux.Vars(r)["coachId"])
	if err != nil {
		response.BadRequest(w, "Invalid coach ID", "")
		return
	}

	query := &dto.TimeSlotQuery{
		CoachID: coachID,
		StartAt: r.URL.Query().Get("start_at"),
		EndAt:   r.URL.Query().Get("end_at"),
	}

	slots, err := h.slotUsecase.GetTimeSlotsByCoach(r.Context(), query)
	if err != nil {
		writeError(w, err, "Failed to get time slots")
		return
	}

	response.Success(w, http.StatusOK, "Time slots retrieved successfully", slots)
}

func (h *TimeSlotHandler) RemoveSegment(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	slotID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid time slot ID", "")
		return
	}

	var req dto.RemoveSegmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", "")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.removalUsecase.RemoveSegment(r.Context(), slotID, &req, actorID)
	if err != nil {
		writeError(w, err, "Failed to remove segment")
		return
	}

	response.Success(w, http.StatusOK, result.Message, result)
}
