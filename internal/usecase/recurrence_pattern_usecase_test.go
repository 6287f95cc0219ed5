package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/delivery/dto"
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

func createPatternReq() *dto.CreateRecurrencePatternRequest {
	day := 1
	return &dto.CreateRecurrencePatternRequest{
		CoachID:             uuid.New(),
		DayOfWeek:           &day,
		StartTime:           "9:00",
		EndTime:             "12:00",
		LocationID:          uuid.New(),
		ServiceNames:        []string{"private"},
		BufferBefore:        5,
		RecurrenceStartDate: "2025-01-06",
		RecurrenceEndDate:   "2025-03-31",
	}
}

func TestCreatePattern(t *testing.T) {
	h := newHarness()
	req := createPatternReq()
	actor := uuid.New()

	res, err := h.patterns.CreatePattern(context.Background(), req, actor)
	if err != nil {
		t.Fatalf("CreatePattern() error = %v", err)
	}
	if res.StartTime != "09:00" || res.EndTime != "12:00" {
		t.Errorf("times = %s-%s, want normalized 09:00-12:00", res.StartTime, res.EndTime)
	}
	if !res.IsActive {
		t.Error("pattern should default to active")
	}
	if res.RecurrenceEndDate == nil || *res.RecurrenceEndDate != "2025-03-31" {
		t.Errorf("end date = %v", res.RecurrenceEndDate)
	}

	stored, ok := h.store.patterns[res.ID]
	if !ok {
		t.Fatal("pattern not stored")
	}
	if stored.CoachID != req.CoachID || stored.DayOfWeek != 1 {
		t.Errorf("stored = %+v", stored)
	}

	if len(h.store.audits) != 1 || h.store.audits[0].Action != entity.AuditActionPatternCreate {
		t.Errorf("audits = %+v", h.store.audits)
	}

	got, err := h.patterns.GetPattern(context.Background(), res.ID)
	if err != nil || got.ID != res.ID {
		t.Errorf("GetPattern() = %+v, %v", got, err)
	}

	list, err := h.patterns.GetPatternsByCoach(context.Background(), req.CoachID)
	if err != nil || list.Total != 1 {
		t.Errorf("GetPatternsByCoach() = %+v, %v", list, err)
	}
}

func TestCreatePatternValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *dto.CreateRecurrencePatternRequest)
		want   error
	}{
		{"bad start time", func(r *dto.CreateRecurrencePatternRequest) { r.StartTime = "nine" }, ErrInvalidTimeFormat},
		{"inverted hours", func(r *dto.CreateRecurrencePatternRequest) { r.StartTime = "13:00" }, ErrInvalidTimeRange},
		{"bad start date", func(r *dto.CreateRecurrencePatternRequest) { r.RecurrenceStartDate = "2025-13-01" }, ErrInvalidDateFormat},
		{"bad end date", func(r *dto.CreateRecurrencePatternRequest) { r.RecurrenceEndDate = "soon" }, ErrInvalidDateFormat},
		{"end before start", func(r *dto.CreateRecurrencePatternRequest) { r.RecurrenceEndDate = "2025-01-01" }, ErrInvalidDateRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness()
			req := createPatternReq()
			tt.mutate(req)

			if _, err := h.patterns.CreatePattern(context.Background(), req, uuid.Nil); !errors.Is(err, tt.want) {
				t.Fatalf("CreatePattern() error = %v, want %v", err, tt.want)
			}
			if len(h.store.patterns) != 0 || len(h.store.audits) != 0 {
				t.Error("rejected pattern was stored")
			}
		})
	}
}

func TestCreatePatternConflict(t *testing.T) {
	h := newHarness()
	h.store.failPatternCreate = fmt.Errorf("insert: %w", &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "uq_recurrence_patterns_coach_weekly",
	})

	if _, err := h.patterns.CreatePattern(context.Background(), createPatternReq(), uuid.Nil); !errors.Is(err, ErrPatternConflict) {
		t.Fatalf("CreatePattern() error = %v, want ErrPatternConflict", err)
	}
}

func TestGetPatternNotFound(t *testing.T) {
	h := newHarness()
	if _, err := h.patterns.GetPattern(context.Background(), uuid.New()); !errors.Is(err, ErrPatternNotFound) {
		t.Fatalf("GetPattern() error = %v, want ErrPatternNotFound", err)
	}
}
