package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/eventum-app/eventum-api/internal/models"
	appErrors "github.com/eventum-app/eventum-api/pkg/errors"
	"github.com/eventum-app/eventum-api/pkg/export"
)

type eventLister interface {
	List(ctx context.Context, filter models.EventFilter) ([]models.Event, error)
}

// ExportDocument is a rendered export ready to be served as an attachment.
type ExportDocument struct {
	Content     []byte
	ContentType string
	Filename    string
}

// ExportService renders range-filtered event lists into downloadable
// documents.
type ExportService struct {
	events eventLister
	csv    *export.CSVExporter
	pdf    *export.PDFExporter
	ics    *export.ICSExporter
	logger *zap.Logger
}

// NewExportService constructs the export service.
func NewExportService(events eventLister, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		events: events,
		csv:    export.NewCSVExporter(),
		pdf:    export.NewPDFExporter(),
		ics:    export.NewICSExporter(),
		logger: logger,
	}
}

// Export lists the events matching the filter and renders them in the
// requested format. Unknown formats are an invalid argument.
func (s *ExportService) Export(ctx context.Context, filter models.EventFilter, format string) (*ExportDocument, error) {
	events, err := s.events.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	stamp := time.Now().UTC().Format("20060102")
	var doc ExportDocument
	switch format {
	case "csv":
		content, err := s.csv.Render(events)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		doc = ExportDocument{Content: content, ContentType: "text/csv", Filename: fmt.Sprintf("events-%s.csv", stamp)}
	case "pdf":
		content, err := s.pdf.Render(events, "Events")
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		doc = ExportDocument{Content: content, ContentType: "application/pdf", Filename: fmt.Sprintf("events-%s.pdf", stamp)}
	case "ics":
		content, err := s.ics.Render(events)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render ics")
		}
		doc = ExportDocument{Content: content, ContentType: "text/calendar", Filename: fmt.Sprintf("events-%s.ics", stamp)}
	default:
		return nil, appErrors.Clone(appErrors.ErrInvalidArgument, "format must be one of csv, pdf, ics")
	}

	s.logger.Info("events exported", zap.String("format", format), zap.Int("count", len(events)))
	return &doc, nil
}
