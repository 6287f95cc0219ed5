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

type RecurrencePatternHandler struct {
	patternUsecase    usecase.RecurrencePatternUsecase
	generationUsecase usecase.SlotGenerationUsecase
	validator         *validator.CustomValidator
}

func NewRecurrencePatternHandler(
	patternUsecase usecase.RecurrencePatternUsecase,
	generationUsecase usecase.SlotGenerationUsecase,
	validator *validator.CustomValidator,
) *RecurrencePatternHandler {
	return &RecurrencePatternHandler{
		patternUsecase:    patternUsecase,
		generationUsecase: generationUsecase,
		validator:         validator,
	}
}

func (h *RecurrencePatternHandler) CreatePattern(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req dto.CreateRecurrencePatternRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", "")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	pattern, err := h.patternUsecase.CreatePattern(r.Context(), &req, actorID)
	if err != nil {
		writeError(w, err, "Failed to create recurrence pattern")
		return
	}

	response.Success(w, http.StatusCreated, "Recurrence pattern created successfully", pattern)
}

func (h *RecurrencePatternHandler) GetPattern(w http.ResponseWriter, r *http.Request) {
	patternID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid recurrence pattern ID", "")
		return
	}

	pattern, err := h.patternUsecase.GetPattern(r.Context(), patternID)
	if err != nil {
		writeError(w, err, "Failed to get recurrence pattern")
		return
	}

	response.Success(w, http.StatusOK, "Recurrence pattern retrieved successfully", pattern)
}

func (h *RecurrencePatternHandler) GetPatternsByCoach(w http.ResponseWriter, r *http.Request) {
	coachID, err := uuid.Parse(mux.Vars(r)["coachId"])
	if err != nil {
		response.BadRequest(w, "Invalid coach ID", "")
		return
	}

	patterns, err := h.patternUsecase.GetPatternsByCoach(r.Context(), coachID)
	if err != nil {
		writeError(w, err, "Failed to get recurrence patterns")
		return
	}

	response.Success(w, http.StatusOK, "Recurrence patterns retrieved successfully", patterns)
}

func (h *RecurrencePatternHandler) GenerateSlots(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	patternID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid recurrence pattern ID", "")
		return
	}

	var req dto.GenerateSlotsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", "")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.generationUsecase.GenerateSlots(r.Context(), patternID, &req, actorID)
	if err != nil {
		writeError(w, err, "Failed to generate slots")
		return
	}

	message := "Slots generated successfully"
	if result.Inactive {
		message = "Pattern is inactive"
	}
	response.Success(w, http.StatusOK, message, result)
}
