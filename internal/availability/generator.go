package availability

import (
	"fmt"
	"time"

	"github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/domain/entity"
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/pkg/timeofday"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
)

// Window returns the inclusive date range a pattern covers up to horizon.
// ok is false when the pattern is inactive or the range is empty.
func Window(pattern *entity.RecurrencePattern, horizon time.Time) (from, to time.Time, ok bool) {
	if !pattern.IsActive {
		return time.Time{}, time.Time{}, false
	}

	from = timeofday.Date(pattern.RecurrenceStartDate)
	to = timeofday.Date(horizon)
	if pattern.RecurrenceEndDate != nil {
		if end := timeofday.Date(*pattern.RecurrenceEndDate); end.Before(to) {
			to = end
		}
	}

	if from.After(to) {
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

// ExpandDates lists every date in the pattern's window that falls on its
// weekday, excluding the dates in skip. Dates are midnight UTC, ascending.
func ExpandDates(pattern *entity.RecurrencePattern, horizon time.Time, skip []time.Time) ([]time.Time, error) {
	from, to, ok := Window(pattern, horizon)
	if !ok {
		return nil, nil
	}

	first := nextWeekday(from, pattern.Weekday())
	if first.After(to) {
		return nil, nil
	}

	// A weekly rule without BYDAY repeats on DTSTART's weekday.
	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:     rrule.WEEKLY,
		Interval: 1,
		Dtstart:  first,
		Until:    to,
	})
	if err != nil {
		return nil, fmt.Errorf("build weekly rule for pattern %s: %w", pattern.ID, err)
	}

	set := &rrule.Set{}
	set.RRule(rule)
	for _, d := range skip {
		set.ExDate(timeofday.Date(d))
	}

	return set.All(), nil
}

// nextWeekday returns the first date on or after d that falls on weekday.
func nextWeekday(d time.Time, weekday time.Weekday) time.Time {
	delta := (int(weekday) - int(d.Weekday()) + 7) % 7
	return d.AddDate(0, 0, delta)
}

// NewSlotsFromPattern materializes one available slot per date, linked back
// to the pattern.
func NewSlotsFromPattern(pattern *entity.RecurrencePattern, dates []time.Time) []entity.TimeSlot {
	if len(dates) == 0 {
		return nil
	}

	recurrenceID := pattern.ID
	slots := make([]entity.TimeSlot, len(dates))
	for i, date := range dates {
		slots[i] = entity.TimeSlot{
			ID:                  uuid.New(),
			CoachID:             pattern.CoachID,
			Date:                timeofday.Date(date),
			StartTime:           pattern.StartTime,
			EndTime:             pattern.EndTime,
			LocationID:          pattern.LocationID,
			ServiceNames:        cloneNames(pattern.ServiceNames),
			BufferBefore:        pattern.BufferBefore,
			BufferAfter:         pattern.BufferAfter,
			IsAvailable:         true,
			RecurrenceID:        &recurrenceID,
			IsRecurringInstance: true,
		}
	}
	return slots
}

func cloneNames(names []string) []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}
