package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventum-app/eventum-api/internal/models"
)

func ts(value string) time.Time {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func TestOverlapsRange(t *testing.T) {
	qStart := ts("2024-01-14T00:00:00Z")
	qEnd := ts("2024-01-16T00:00:00Z")

	cases := []struct {
		name   string
		eStart string
		eEnd   string
		want   bool
	}{
		{"start inside window", "2024-01-15T10:00:00Z", "2024-01-18T10:00:00Z", true},
		{"end inside window", "2024-01-12T10:00:00Z", "2024-01-14T10:00:00Z", true},
		{"fully inside window", "2024-01-14T08:00:00Z", "2024-01-14T09:00:00Z", true},
		{"spans entire window", "2024-01-10T00:00:00Z", "2024-01-20T00:00:00Z", true},
		{"ends before window", "2024-01-10T00:00:00Z", "2024-01-13T00:00:00Z", false},
		{"starts after window", "2024-01-17T00:00:00Z", "2024-01-18T00:00:00Z", false},
		{"start exactly on upper bound", "2024-01-16T00:00:00Z", "2024-01-17T00:00:00Z", true},
		{"end exactly on lower bound", "2024-01-13T00:00:00Z", "2024-01-14T00:00:00Z", true},
		{"interval equals window", "2024-01-14T00:00:00Z", "2024-01-16T00:00:00Z", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := OverlapsRange(ts(tc.eStart), ts(tc.eEnd), qStart, qEnd)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOverlapsSlotHalfOpenBoundaries(t *testing.T) {
	slotStart := ts("2024-01-15T10:00:00Z")
	slotEnd := ts("2024-01-15T11:00:00Z")

	cases := []struct {
		name   string
		eStart string
		eEnd   string
		want   bool
	}{
		{"starts within slot", "2024-01-15T10:30:00Z", "2024-01-15T12:00:00Z", true},
		{"ends within slot", "2024-01-15T09:30:00Z", "2024-01-15T10:30:00Z", true},
		{"contains slot", "2024-01-15T09:00:00Z", "2024-01-15T12:00:00Z", true},
		{"starts exactly at slot end", "2024-01-15T11:00:00Z", "2024-01-15T11:30:00Z", false},
		{"ends exactly at slot start", "2024-01-15T09:00:00Z", "2024-01-15T10:00:00Z", false},
		{"ends exactly at slot end", "2024-01-15T10:15:00Z", "2024-01-15T11:00:00Z", true},
		{"entirely before slot", "2024-01-15T08:00:00Z", "2024-01-15T09:00:00Z", false},
		{"entirely after slot", "2024-01-15T12:00:00Z", "2024-01-15T13:00:00Z", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := OverlapsSlot(ts(tc.eStart), ts(tc.eEnd), slotStart, slotEnd)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSlotBoundaryNotDoubleCounted(t *testing.T) {
	// An event starting exactly at 11:00 belongs to the 11:00 slot only.
	eStart := ts("2024-01-15T11:00:00Z")
	eEnd := ts("2024-01-15T11:45:00Z")

	assert.False(t, OverlapsSlot(eStart, eEnd, ts("2024-01-15T10:00:00Z"), ts("2024-01-15T11:00:00Z")))
	assert.True(t, OverlapsSlot(eStart, eEnd, ts("2024-01-15T11:00:00Z"), ts("2024-01-15T12:00:00Z")))
}

func TestDayBounds(t *testing.T) {
	start, end := DayBounds(ts("2024-01-15T13:45:12Z"))

	assert.Equal(t, ts("2024-01-15T00:00:00Z"), start)
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
	assert.True(t, end.Before(ts("2024-01-16T00:00:00Z")))
}

func TestEffectiveIntervalAllDayNormalization(t *testing.T) {
	event := models.Event{
		StartTime: ts("2024-01-15T09:30:00Z"),
		EndTime:   ts("2024-01-16T14:00:00Z"),
		AllDay:    true,
	}

	start, end := EffectiveInterval(event)
	assert.Equal(t, ts("2024-01-15T00:00:00Z"), start)
	assert.Equal(t, 16, end.Day())
	assert.Equal(t, 23, end.Hour())

	// Timed events keep their raw interval.
	event.AllDay = false
	start, end = EffectiveInterval(event)
	assert.Equal(t, event.StartTime, start)
	assert.Equal(t, event.EndTime, end)
}

func TestFilterForDay(t *testing.T) {
	day := ts("2024-01-15T00:00:00Z")
	events := []models.Event{
		{ID: "inside", StartTime: ts("2024-01-15T10:00:00Z"), EndTime: ts("2024-01-15T11:00:00Z")},
		{ID: "spanning", StartTime: ts("2024-01-10T00:00:00Z"), EndTime: ts("2024-01-20T00:00:00Z")},
		{ID: "before", StartTime: ts("2024-01-14T08:00:00Z"), EndTime: ts("2024-01-14T09:00:00Z")},
		{ID: "all-day elsewhere", StartTime: ts("2024-01-17T12:00:00Z"), EndTime: ts("2024-01-17T12:30:00Z"), AllDay: true},
	}

	visible := FilterForDay(events, day)
	require.Len(t, visible, 2)
	assert.Equal(t, "inside", visible[0].ID)
	assert.Equal(t, "spanning", visible[1].ID)
}
