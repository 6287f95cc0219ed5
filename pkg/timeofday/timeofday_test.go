package timeofday

import (
	"errors"
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    Minutes
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "09:00", want: 540},
		{in: "10:30", want: 630},
		{in: "23:59", want: 1439},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "noon", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidClock) {
				t.Errorf("ParseClock(%q) error = %v, want ErrInvalidClock", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseClock(%q) unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tt.in, got, tt.want)
		}
		if got.String() != tt.in {
			t.Errorf("Minutes(%d).String() = %q, want %q", got, got.String(), tt.in)
		}
	}
}

func TestIntervalRelations(t *testing.T) {
	slot := Interval{Start: 540, End: 720} // 09:00-12:00

	if !slot.Contains(Interval{Start: 540, End: 720}) {
		t.Error("interval should contain itself")
	}
	if !slot.Contains(Interval{Start: 600, End: 630}) {
		t.Error("interior interval should be contained")
	}
	if slot.Contains(Interval{Start: 480, End: 600}) {
		t.Error("interval starting before slot should not be contained")
	}
	if slot.Contains(Interval{Start: 700, End: 750}) {
		t.Error("interval ending after slot should not be contained")
	}

	// Half-open: touching intervals do not overlap.
	if slot.Overlaps(Interval{Start: 720, End: 780}) {
		t.Error("adjacent intervals should not overlap")
	}
	if !slot.Overlaps(Interval{Start: 719, End: 780}) {
		t.Error("intervals sharing a minute should overlap")
	}

	if got := slot.Duration(); got != 180 {
		t.Errorf("Duration() = %d, want 180", got)
	}
	if got := (Interval{Start: 600, End: 600}).Duration(); got != 0 {
		t.Errorf("empty interval Duration() = %d, want 0", got)
	}
}

func TestParseInterval(t *testing.T) {
	iv, err := ParseInterval("10:00", "10:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if iv.String() != "10:00-10:30" {
		t.Errorf("String() = %q", iv.String())
	}

	inverted, err := ParseInterval("11:00", "10:00")
	if err != nil {
		t.Fatalf("inverted bounds should parse: %v", err)
	}
	if inverted.Valid() {
		t.Error("inverted interval should not be valid")
	}

	if _, err := ParseInterval("10:00", "1O:30"); !errors.Is(err, ErrInvalidClock) {
		t.Errorf("expected ErrInvalidClock, got %v", err)
	}
}

func TestDates(t *testing.T) {
	d, err := ParseDate("2025-06-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if FormatDate(d) != "2025-06-10" {
		t.Errorf("FormatDate = %q", FormatDate(d))
	}

	jakarta := time.FixedZone("WIB", 7*3600)
	local := time.Date(2025, 6, 10, 23, 30, 0, 0, jakarta)
	if !SameDate(d, local) {
		t.Error("dates should compare by calendar day in their own location")
	}
	if SameDate(d, d.AddDate(0, 0, 1)) {
		t.Error("different days should not match")
	}

	if _, err := ParseDate("10/06/2025"); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
}
