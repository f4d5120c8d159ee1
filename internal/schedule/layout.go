package schedule

import (
	"time"

	"github.com/eventum-app/eventum-api/internal/models"
)

const (
	// PixelsPerHour is the height of one hour row on the time grid.
	PixelsPerHour = 60
	// MinEventHeight keeps very short events visible and clickable.
	MinEventHeight = 20
	// HoursPerDay is the number of slot rows on the grid.
	HoursPerDay = 24
)

// Box is the vertical placement of a timed event on the hour grid,
// in pixel units.
type Box struct {
	Top    int `json:"top"`
	Height int `json:"height"`
}

// PositionedEvent pairs an event with its computed grid geometry.
type PositionedEvent struct {
	Event models.Event `json:"event"`
	Box   Box          `json:"box"`
}

// SlotBucket lists the events intersecting one hour slot of the day.
type SlotBucket struct {
	Hour     int      `json:"hour"`
	EventIDs []string `json:"eventIds"`
}

// Grid is the full render geometry for one day: the all-day lane, the
// positioned timed events and the per-hour slot buckets.
type Grid struct {
	Date   string            `json:"date"`
	AllDay []models.Event    `json:"allDay"`
	Timed  []PositionedEvent `json:"timed"`
	Slots  []SlotBucket      `json:"slots"`
}

// Position computes the (top, height) box for an event on the given day.
// The event's effective interval is clamped to the day bounds first, so a
// multi-day event shows only its within-day portion. The second return is
// false for all-day events, which bypass the time grid.
func Position(e models.Event, day time.Time) (Box, bool) {
	if e.AllDay {
		return Box{}, false
	}

	dayStart, dayEnd := DayBounds(day)
	start := e.StartTime
	end := e.EndTime
	if start.Before(dayStart) {
		start = dayStart
	}
	if end.After(dayEnd) {
		end = dayEnd
	}

	top := start.Hour()*PixelsPerHour + start.Minute()
	height := end.Hour()*PixelsPerHour + end.Minute() - top
	if height < MinEventHeight {
		height = MinEventHeight
	}
	return Box{Top: top, Height: height}, true
}

// BuildGrid computes the complete day grid for a set of events. The input
// does not need to be pre-filtered; events outside the day are dropped.
// The result is a deterministic function of (events, day).
func BuildGrid(events []models.Event, day time.Time) Grid {
	dayStart, _ := DayBounds(day)
	visible := FilterForDay(events, day)

	grid := Grid{
		Date:   dayStart.Format("2006-01-02"),
		AllDay: []models.Event{},
		Timed:  []PositionedEvent{},
		Slots:  make([]SlotBucket, HoursPerDay),
	}

	for _, e := range visible {
		box, timed := Position(e, day)
		if !timed {
			grid.AllDay = append(grid.AllDay, e)
			continue
		}
		grid.Timed = append(grid.Timed, PositionedEvent{Event: e, Box: box})
	}

	for hour := 0; hour < HoursPerDay; hour++ {
		slotStart := dayStart.Add(time.Duration(hour) * time.Hour)
		slotEnd := slotStart.Add(time.Hour)
		bucket := SlotBucket{Hour: hour, EventIDs: []string{}}
		for _, pe := range grid.Timed {
			if EventInSlot(pe.Event, slotStart, slotEnd) {
				bucket.EventIDs = append(bucket.EventIDs, pe.Event.ID)
			}
		}
		grid.Slots[hour] = bucket
	}

	return grid
}
