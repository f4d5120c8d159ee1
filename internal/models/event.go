package models

import "time"

// Recurrence is an inert tag carried on an event. A stored record always
// represents only its own literal interval; occurrences are never expanded.
type Recurrence string

const (
	RecurrenceNone    Recurrence = "none"
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
	RecurrenceYearly  Recurrence = "yearly"
)

// Valid reports whether the tag is one of the known recurrence values.
func (r Recurrence) Valid() bool {
	switch r {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly, RecurrenceYearly:
		return true
	default:
		return false
	}
}

// DefaultColor is the palette token applied when a payload omits color.
const DefaultColor = "#3788d8"

// Palette is the fixed set of color tokens accepted on an event.
var Palette = []string{
	"#3788d8", // blue
	"#0e9f6e", // green
	"#e02424", // red
	"#c27803", // yellow
	"#7e3af2", // purple
	"#d61f69", // pink
	"#047481", // teal
	"#6b7280", // gray
}

// PaletteToken reports whether the token belongs to the fixed palette.
func PaletteToken(color string) bool {
	for _, token := range Palette {
		if token == color {
			return true
		}
	}
	return false
}

// Event represents a single calendar entry. StartTime/EndTime are UTC
// instants; the invariant EndTime > StartTime holds for every persisted row.
type Event struct {
	ID          string     `db:"id" json:"id"`
	Title       string     `db:"title" json:"title"`
	Description string     `db:"description" json:"description"`
	StartTime   time.Time  `db:"start_time" json:"startTime"`
	EndTime     time.Time  `db:"end_time" json:"endTime"`
	AllDay      bool       `db:"all_day" json:"allDay"`
	Color       string     `db:"color" json:"color"`
	Location    string     `db:"location" json:"location"`
	Recurring   Recurrence `db:"recurring" json:"recurring"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updatedAt"`
}

// EventFilter narrows down events for list queries. Start and End are
// always both set or both nil; the repository pushes the overlap predicate
// into the store instead of scanning rows.
type EventFilter struct {
	Start *time.Time
	End   *time.Time
}
