package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/eventum-app/eventum-api/internal/models"
	"github.com/eventum-app/eventum-api/internal/schedule"
	appErrors "github.com/eventum-app/eventum-api/pkg/errors"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 1000
	maxLocationLen    = 200
)

type eventRepository interface {
	List(ctx context.Context, filter models.EventFilter) ([]models.Event, error)
	GetByID(ctx context.Context, id string) (*models.Event, error)
	Create(ctx context.Context, event *models.Event) error
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id string) (*models.Event, error)
}

// EventService manages calendar events. Partial updates are validated
// against the effective field pair (supplied value, else stored value) and
// are not guarded against concurrent writers: last write wins.
type EventService struct {
	repo      eventRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewEventService constructs the service and registers the palette and
// recurrence validation rules.
func NewEventService(repo eventRepository, validate *validator.Validate, logger *zap.Logger) *EventService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := &EventService{repo: repo, validator: validate, logger: logger}
	svc.validator.RegisterValidation("palette", func(fl validator.FieldLevel) bool {
		return models.PaletteToken(fl.Field().String())
	})
	svc.validator.RegisterValidation("recurring", func(fl validator.FieldLevel) bool {
		return models.Recurrence(fl.Field().String()).Valid()
	})
	return svc
}

// CreateEventRequest describes the create payload.
type CreateEventRequest struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description" validate:"max=1000"`
	StartTime   *time.Time `json:"startTime" validate:"required"`
	EndTime     *time.Time `json:"endTime" validate:"required"`
	AllDay      bool       `json:"allDay"`
	Color       string     `json:"color" validate:"omitempty,palette"`
	Location    string     `json:"location" validate:"max=200"`
	Recurring   string     `json:"recurring" validate:"omitempty,recurring"`
}

// UpdateEventRequest describes the partial update payload. Nil fields keep
// their stored values.
type UpdateEventRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	StartTime   *time.Time `json:"startTime"`
	EndTime     *time.Time `json:"endTime"`
	AllDay      *bool      `json:"allDay"`
	Color       *string    `json:"color"`
	Location    *string    `json:"location"`
	Recurring   *string    `json:"recurring"`
}

// ParseListRange turns raw startDate/endDate query values into a filter.
// Bounds must be supplied together; each accepts RFC 3339 or a bare
// YYYY-MM-DD date. An unparseable or inverted range is an invalid argument.
func ParseListRange(startRaw, endRaw string) (models.EventFilter, error) {
	var filter models.EventFilter
	if startRaw == "" && endRaw == "" {
		return filter, nil
	}
	if startRaw == "" || endRaw == "" {
		return filter, appErrors.Clone(appErrors.ErrInvalidArgument, "startDate and endDate must be provided together")
	}
	start, err := parseTimestamp(startRaw)
	if err != nil {
		return filter, appErrors.Clone(appErrors.ErrInvalidArgument, "invalid startDate")
	}
	end, err := parseTimestamp(endRaw)
	if err != nil {
		return filter, appErrors.Clone(appErrors.ErrInvalidArgument, "invalid endDate")
	}
	if end.Before(start) {
		return filter, appErrors.Clone(appErrors.ErrInvalidArgument, "endDate must not precede startDate")
	}
	filter.Start = &start
	filter.End = &end
	return filter, nil
}

// List returns events overlapping the filter range, ascending by start
// time.
func (s *EventService) List(ctx context.Context, filter models.EventFilter) ([]models.Event, error) {
	events, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list events")
	}
	if events == nil {
		events = []models.Event{}
	}
	return events, nil
}

// Get returns an event by id.
func (s *EventService) Get(ctx context.Context, id string) (*models.Event, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "event not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to get event")
	}
	return event, nil
}

// Create validates and persists a new event.
func (s *EventService) Create(ctx context.Context, req CreateEventRequest) (*models.Event, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "title must not be empty")
	}
	if len(title) > maxTitleLen {
		return nil, appErrors.Clone(appErrors.ErrValidation, "title must be at most 200 characters")
	}
	if !req.EndTime.After(*req.StartTime) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "endTime must be after startTime")
	}

	event := &models.Event{
		Title:       title,
		Description: req.Description,
		StartTime:   req.StartTime.UTC(),
		EndTime:     req.EndTime.UTC(),
		AllDay:      req.AllDay,
		Color:       req.Color,
		Location:    req.Location,
		Recurring:   models.Recurrence(req.Recurring),
	}
	if event.Color == "" {
		event.Color = models.DefaultColor
	}
	if event.Recurring == "" {
		event.Recurring = models.RecurrenceNone
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create event")
	}
	s.logger.Info("event created", zap.String("event_id", event.ID))
	return event, nil
}

// Update applies a partial update. The end-after-start invariant is checked
// against the effective pair: a supplied bound is combined with the stored
// value of the bound that was omitted.
func (s *EventService) Update(ctx context.Context, id string, req UpdateEventRequest) (*models.Event, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "event not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load event")
	}

	effectiveStart := event.StartTime
	effectiveEnd := event.EndTime
	if req.StartTime != nil {
		effectiveStart = req.StartTime.UTC()
	}
	if req.EndTime != nil {
		effectiveEnd = req.EndTime.UTC()
	}
	if !effectiveEnd.After(effectiveStart) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "endTime must be after startTime")
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, appErrors.Clone(appErrors.ErrValidation, "title must not be empty")
		}
		if len(title) > maxTitleLen {
			return nil, appErrors.Clone(appErrors.ErrValidation, "title must be at most 200 characters")
		}
		event.Title = title
	}
	if req.Description != nil {
		if len(*req.Description) > maxDescriptionLen {
			return nil, appErrors.Clone(appErrors.ErrValidation, "description must be at most 1000 characters")
		}
		event.Description = *req.Description
	}
	if req.Location != nil {
		if len(*req.Location) > maxLocationLen {
			return nil, appErrors.Clone(appErrors.ErrValidation, "location must be at most 200 characters")
		}
		event.Location = *req.Location
	}
	if req.Color != nil {
		if !models.PaletteToken(*req.Color) {
			return nil, appErrors.Clone(appErrors.ErrValidation, "color must be a palette token")
		}
		event.Color = *req.Color
	}
	if req.Recurring != nil {
		recurring := models.Recurrence(*req.Recurring)
		if !recurring.Valid() {
			return nil, appErrors.Clone(appErrors.ErrValidation, "recurring must be one of none, daily, weekly, monthly, yearly")
		}
		event.Recurring = recurring
	}
	if req.AllDay != nil {
		event.AllDay = *req.AllDay
	}
	event.StartTime = effectiveStart
	event.EndTime = effectiveEnd

	if err := s.repo.Update(ctx, event); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update event")
	}
	s.logger.Info("event updated", zap.String("event_id", event.ID))
	return event, nil
}

// Delete removes an event and returns its prior state so callers can show
// a confirmation or offer undo.
func (s *EventService) Delete(ctx context.Context, id string) (*models.Event, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	event, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "event not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete event")
	}
	s.logger.Info("event deleted", zap.String("event_id", event.ID))
	return event, nil
}

// DayGrid computes the render geometry for one day's events.
func (s *EventService) DayGrid(ctx context.Context, dateRaw string) (*schedule.Grid, error) {
	day, err := time.Parse("2006-01-02", dateRaw)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidArgument, "invalid date, expected YYYY-MM-DD")
	}
	dayStart, dayEnd := schedule.DayBounds(day)
	events, err := s.List(ctx, models.EventFilter{Start: &dayStart, End: &dayEnd})
	if err != nil {
		return nil, err
	}
	grid := schedule.BuildGrid(events, day)
	return &grid, nil
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return appErrors.Clone(appErrors.ErrInvalidArgument, "invalid event id")
	}
	return nil
}

func parseTimestamp(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
