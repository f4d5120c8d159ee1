// Package schedule holds the pure interval logic behind the calendar:
// overlap predicates shared by the store-side range filter and the
// per-day/per-slot views, plus the day-grid layout arithmetic.
package schedule

import (
	"time"

	"github.com/eventum-app/eventum-api/internal/models"
)

// OverlapsRange reports whether the event interval [eStart, eEnd]
// intersects the query interval [qStart, qEnd]. All comparisons are
// inclusive. The third clause is load-bearing: an event that begins before
// the window and ends after it has neither endpoint inside the window, yet
// still belongs to it.
func OverlapsRange(eStart, eEnd, qStart, qEnd time.Time) bool {
	if within(eStart, qStart, qEnd) {
		return true
	}
	if within(eEnd, qStart, qEnd) {
		return true
	}
	return !eStart.After(qStart) && !eEnd.Before(qEnd)
}

// OverlapsSlot reports whether the event interval intersects the hour slot
// [slotStart, slotEnd). The upper bound is exclusive for the start and the
// lower bound exclusive for the end, so an event starting exactly on the
// next slot boundary is not counted twice.
func OverlapsSlot(eStart, eEnd, slotStart, slotEnd time.Time) bool {
	if !eStart.Before(slotStart) && eStart.Before(slotEnd) {
		return true
	}
	if eEnd.After(slotStart) && !eEnd.After(slotEnd) {
		return true
	}
	return eStart.Before(slotStart) && eEnd.After(slotEnd)
}

// DayBounds returns the [00:00:00, 23:59:59.999999999] window of the day
// containing t, in t's location.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return start, end
}

// EffectiveInterval returns the interval used for filtering and layout.
// All-day events are normalized to span the full day(s) between their raw
// timestamps regardless of the times the caller stored.
func EffectiveInterval(e models.Event) (time.Time, time.Time) {
	if !e.AllDay {
		return e.StartTime, e.EndTime
	}
	start, _ := DayBounds(e.StartTime)
	_, end := DayBounds(e.EndTime)
	return start, end
}

// EventInRange applies the inclusive overlap predicate to an event's
// effective interval.
func EventInRange(e models.Event, qStart, qEnd time.Time) bool {
	eStart, eEnd := EffectiveInterval(e)
	return OverlapsRange(eStart, eEnd, qStart, qEnd)
}

// EventInSlot applies the half-open slot predicate to an event's effective
// interval.
func EventInSlot(e models.Event, slotStart, slotEnd time.Time) bool {
	eStart, eEnd := EffectiveInterval(e)
	return OverlapsSlot(eStart, eEnd, slotStart, slotEnd)
}

// FilterForDay returns the subset of events visible on the given day.
func FilterForDay(events []models.Event, day time.Time) []models.Event {
	dayStart, dayEnd := DayBounds(day)
	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		if EventInRange(e, dayStart, dayEnd) {
			out = append(out, e)
		}
	}
	return out
}

func within(t, lo, hi time.Time) bool {
	return !t.Before(lo) && !t.After(hi)
}
