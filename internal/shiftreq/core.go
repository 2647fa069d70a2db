package shiftreq

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/yamato-estate/attendance/backend/internal/domain"
)

func parseClock(s string) (time.Time, error) {
	if t, err := time.Parse("15:04:05", s); err == nil {
		return t, nil
	}
	return time.Parse("15:04", s)
}

// IsValidTimeRange reports whether end is strictly after start. A plain
// string comparison is enough because both values are zero-padded 24-hour
// clock strings, so lexicographic and chronological order coincide.
func IsValidTimeRange(start, end string) bool {
	return end > start
}

// Hours returns the elapsed wall-clock duration between two times of day in
// hours, rounded to two decimal places. Only the clock values matter, the
// calendar date plays no part.
func Hours(start, end string) (float64, error) {
	s, err := parseClock(start)
	if err != nil {
		return 0, err
	}
	e, err := parseClock(end)
	if err != nil {
		return 0, err
	}
	return math.Round(e.Sub(s).Minutes()/60*100) / 100, nil
}

// overlaps reports whether the half-open intervals [a.Start, a.End) and
// [b.Start, b.End) intersect. Touching endpoints do not count.
func overlaps(a, b Entry) bool {
	return !(a.End <= b.Start || b.End <= a.Start)
}

// ValidateEntries runs the full pre-persistence validation: every entry must
// carry a date and parseable start/end times, every range must be strictly
// positive, and no two entries on the same date may overlap. The first
// violation is returned, nothing is evaluated past it.
func ValidateEntries(entries []Entry) error {
	for _, e := range entries {
		if e.Date == "" || e.Start == "" || e.End == "" {
			return ErrInvalidEntry
		}
		if _, err := parseClock(e.Start); err != nil {
			return fmt.Errorf("%w: unparseable start time %q", ErrInvalidEntry, e.Start)
		}
		if _, err := parseClock(e.End); err != nil {
			return fmt.Errorf("%w: unparseable end time %q", ErrInvalidEntry, e.End)
		}
		if !IsValidTimeRange(e.Start, e.End) {
			return fmt.Errorf("%w: %s-%s on %s", ErrInvalidTimeRange, e.Start, e.End, e.Date)
		}
	}

	// Group by date, keeping first-appearance order so the reported conflict
	// is deterministic for a given input order.
	order := make([]string, 0, len(entries))
	groups := make(map[string][]Entry)
	for _, e := range entries {
		if _, exists := groups[e.Date]; !exists {
			order = append(order, e.Date)
		}
		groups[e.Date] = append(groups[e.Date], e)
	}

	for _, date := range order {
		day := groups[date]
		for i := 0; i < len(day); i++ {
			for j := i + 1; j < len(day); j++ {
				if overlaps(day[i], day[j]) {
					return fmt.Errorf("%w on %s: %s-%s and %s-%s",
						ErrOverlappingEntries, date, day[i].Start, day[i].End, day[j].Start, day[j].End)
				}
			}
		}
	}

	return nil
}

// Submit validates an availability batch and persists it as one request
// header plus one detail row per entry. The two inserts are not a real
// transaction: if the detail insert fails, the freshly created header is
// deleted again so no half-written request stays visible. A crash between
// the two inserts can still leave an orphaned header, downstream readers
// must tolerate that.
func Submit(store Store, employeeID string, note string, entries []Entry) (*domain.ShiftRequest, error) {
	if employeeID == "" || len(entries) == 0 {
		return nil, ErrMissingFields
	}

	if err := ValidateEntries(entries); err != nil {
		return nil, err
	}

	req := &domain.ShiftRequest{
		EmployeeID:   employeeID,
		RequestType:  domain.RequestTypeAvailability,
		RequestScope: string(domain.RequestTypeAvailability),
		Status:       domain.RequestStatusPending,
	}
	if note != "" {
		req.Notes = &note
	}

	if err := store.CreateShiftRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCreateHeader, err)
	}

	details := make([]*domain.ShiftRequestDetail, len(entries))
	for i, e := range entries {
		hours, _ := Hours(e.Start, e.End) // entries already validated, cannot fail
		details[i] = &domain.ShiftRequestDetail{
			ShiftRequestID: req.ID,
			Date:           e.Date,
			StartTime:      e.Start,
			EndTime:        e.End,
			Hours:          hours,
		}
	}

	if err := store.CreateShiftRequestDetails(details); err != nil {
		// Best-effort compensation. A failed delete is logged, the caller
		// still gets the original insert error.
		if delErr := store.DeleteShiftRequest(req.ID); delErr != nil {
			slog.Error("failed to delete orphaned shift request header", "requestID", req.ID, "error", delErr)
		}
		return nil, fmt.Errorf("%w: %v", ErrCreateDetails, err)
	}

	req.Details = make([]domain.ShiftRequestDetail, len(details))
	for i, d := range details {
		req.Details[i] = *d
	}

	return req, nil
}
