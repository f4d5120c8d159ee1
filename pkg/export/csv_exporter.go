// Package export renders event lists into downloadable formats.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/eventum-app/eventum-api/internal/models"
)

var csvHeaders = []string{"id", "title", "description", "start_time", "end_time", "all_day", "color", "location", "recurring"}

// CSVExporter renders events into CSV bytes.
type CSVExporter struct{}

// NewCSVExporter builds a CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Render produces CSV encoded bytes for the events, one row per record.
func (e *CSVExporter) Render(events []models.Event) ([]byte, error) {
	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)
	if err := writer.Write(csvHeaders); err != nil {
		return nil, fmt.Errorf("write csv headers: %w", err)
	}
	for _, event := range events {
		record := []string{
			event.ID,
			event.Title,
			event.Description,
			event.StartTime.UTC().Format(time.RFC3339),
			event.EndTime.UTC().Format(time.RFC3339),
			strconv.FormatBool(event.AllDay),
			event.Color,
			event.Location,
			string(event.Recurring),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
