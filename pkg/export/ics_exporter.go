package export

import (
	ics "github.com/arran4/golang-ical"

	"github.com/eventum-app/eventum-api/internal/models"
)

// xRecurring carries the inert recurrence tag. The tag is metadata only:
// no RRULE is emitted, a record stands for its own literal interval.
const xRecurring = "X-RECURRING"

// ICSExporter renders events as an iCalendar document.
type ICSExporter struct {
	ProductID string
}

// NewICSExporter constructs an ICS exporter.
func NewICSExporter() *ICSExporter {
	return &ICSExporter{ProductID: "-//eventum//calendar//EN"}
}

// Render serializes the events into a VCALENDAR. All-day events are
// emitted with VALUE=DATE bounds; timed events with UTC date-times.
func (e *ICSExporter) Render(events []models.Event) ([]byte, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(e.ProductID)

	for _, event := range events {
		ve := cal.AddEvent(event.ID)
		ve.SetSummary(event.Title)
		if event.Description != "" {
			ve.SetDescription(event.Description)
		}
		if event.Location != "" {
			ve.SetLocation(event.Location)
		}
		if event.AllDay {
			ve.SetAllDayStartAt(event.StartTime.UTC())
			ve.SetAllDayEndAt(event.EndTime.UTC())
		} else {
			ve.SetStartAt(event.StartTime.UTC())
			ve.SetEndAt(event.EndTime.UTC())
		}
		ve.SetDtStampTime(event.UpdatedAt.UTC())
		ve.SetCreatedTime(event.CreatedAt.UTC())
		ve.SetModifiedAt(event.UpdatedAt.UTC())
		if event.Recurring != "" && event.Recurring != models.RecurrenceNone {
			ve.AddProperty(ics.ComponentProperty(xRecurring), string(event.Recurring))
		}
	}

	return []byte(cal.Serialize()), nil
}
