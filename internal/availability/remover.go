package availability

import (
	"fmt"
	"time"

	"github.com/AdiSal73/jaguars-da-teamflow-sub005/internal/domain/entity"
	"github.com/AdiSal73/jaguars-da-teamflow-sub005/pkg/timeofday"

	"github.com/google/uuid"
)

// Outcome names the mutation a segment removal applies to its slot.
type Outcome string

const (
	OutcomeDeleted      Outcome = "deleted"
	OutcomeTrimmedStart Outcome = "trimmed_start"
	OutcomeTrimmedEnd   Outcome = "trimmed_end"
	OutcomeSplit        Outcome = "split"
)

func (o Outcome) Message() string {
	switch o {
	case OutcomeDeleted:
		return "Time slot deleted"
	case OutcomeTrimmedStart:
		return "Time slot start adjusted"
	case OutcomeTrimmedEnd:
		return "Time slot end adjusted"
	case OutcomeSplit:
		return "Time slot split and segment removed"
	default:
		return string(o)
	}
}

// Segment is a stretch of time to carve out of a slot.
type Segment struct {
	Date     time.Time
	Interval timeofday.Interval
}

// Removal is the planned result of removing a segment from a slot.
//
//	deleted        Updated == nil, Created == nil
//	trimmed_*      Updated holds the shortened slot
//	split          Updated is the left remainder, Created the right one
type Removal struct {
	Outcome  Outcome
	Original entity.TimeSlot
	Updated  *entity.TimeSlot
	Created  *entity.TimeSlot
}

// Remaining returns the slots that exist once the removal is applied.
func (r *Removal) Remaining() []entity.TimeSlot {
	var out []entity.TimeSlot
	if r.Updated != nil {
		out = append(out, *r.Updated)
	}
	if r.Created != nil {
		out = append(out, *r.Created)
	}
	return out
}

// PlanRemoval validates seg against slot and computes the single mutation
// that removes it. slot is not modified. Validation runs in a fixed order:
// date, interval direction, containment.
func PlanRemoval(slot entity.TimeSlot, seg Segment) (*Removal, error) {
	bounds, err := timeofday.ParseInterval(slot.StartTime, slot.EndTime)
	if err != nil || !bounds.Valid() {
		return nil, fmt.Errorf("%w: slot %s has %s-%s", ErrMalformedSlot, slot.ID, slot.StartTime, slot.EndTime)
	}

	if !timeofday.SameDate(seg.Date, slot.Date) {
		return nil, ErrDateMismatch
	}
	if !seg.Interval.Valid() {
		return nil, ErrInvertedInterval
	}
	if !bounds.Contains(seg.Interval) {
		return nil, ErrOutOfBounds
	}

	removal := &Removal{Original: slot}
	cut := seg.Interval

	switch {
	case cut.Start == bounds.Start && cut.End == bounds.End:
		removal.Outcome = OutcomeDeleted

	case cut.Start == bounds.Start:
		updated := detachedCopy(slot)
		updated.StartTime = cut.End.String()
		removal.Outcome = OutcomeTrimmedStart
		removal.Updated = &updated

	case cut.End == bounds.End:
		updated := detachedCopy(slot)
		updated.EndTime = cut.Start.String()
		removal.Outcome = OutcomeTrimmedEnd
		removal.Updated = &updated

	default:
		left := detachedCopy(slot)
		left.EndTime = cut.Start.String()

		right := detachedCopy(slot)
		right.ID = uuid.New()
		right.StartTime = cut.End.String()
		right.EndTime = bounds.End.String()
		right.CreatedAt = time.Time{}
		right.UpdatedAt = time.Time{}

		removal.Outcome = OutcomeSplit
		removal.Updated = &left
		removal.Created = &right
	}

	return removal, nil
}

func detachedCopy(slot entity.TimeSlot) entity.TimeSlot {
	out := slot
	out.ServiceNames = cloneNames(slot.ServiceNames)
	out.Detach()
	return out
}
