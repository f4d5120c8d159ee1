package service

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventum-app/eventum-api/internal/models"
	appErrors "github.com/eventum-app/eventum-api/pkg/errors"
)

type eventRepoStub struct {
	events     map[string]models.Event
	lastFilter models.EventFilter
}

func newEventRepoStub(seed ...models.Event) *eventRepoStub {
	stub := &eventRepoStub{events: map[string]models.Event{}}
	for _, e := range seed {
		stub.events[e.ID] = e
	}
	return stub
}

func (s *eventRepoStub) List(ctx context.Context, filter models.EventFilter) ([]models.Event, error) {
	s.lastFilter = filter
	out := make([]models.Event, 0, len(s.events))
	for _, e := range s.events {
		out = append(out, e)
	}
	return out, nil
}

func (s *eventRepoStub) GetByID(ctx context.Context, id string) (*models.Event, error) {
	e, ok := s.events[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &e, nil
}

func (s *eventRepoStub) Create(ctx context.Context, event *models.Event) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	event.CreatedAt = now
	event.UpdatedAt = now
	s.events[event.ID] = *event
	return nil
}

func (s *eventRepoStub) Update(ctx context.Context, event *models.Event) error {
	event.UpdatedAt = time.Now().UTC()
	s.events[event.ID] = *event
	return nil
}

func (s *eventRepoStub) Delete(ctx context.Context, id string) (*models.Event, error) {
	e, ok := s.events[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	delete(s.events, id)
	return &e, nil
}

func timePtr(t time.Time) *time.Time { return &t }

func strPtr(v string) *string { return &v }

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

func TestParseListRange(t *testing.T) {
	t.Run("empty range matches everything", func(t *testing.T) {
		filter, err := ParseListRange("", "")
		require.NoError(t, err)
		assert.Nil(t, filter.Start)
		assert.Nil(t, filter.End)
	})

	t.Run("one-sided range rejected", func(t *testing.T) {
		_, err := ParseListRange("2024-01-01", "")
		require.Error(t, err)
		assert.Equal(t, appErrors.ErrInvalidArgument.Code, appErrors.FromError(err).Code)
	})

	t.Run("unparseable bound rejected", func(t *testing.T) {
		_, err := ParseListRange("bad", "2024-01-01")
		require.Error(t, err)
		assert.Equal(t, appErrors.ErrInvalidArgument.Code, appErrors.FromError(err).Code)
	})

	t.Run("inverted range rejected", func(t *testing.T) {
		_, err := ParseListRange("2024-02-01", "2024-01-01")
		require.Error(t, err)
		assert.Equal(t, appErrors.ErrInvalidArgument.Code, appErrors.FromError(err).Code)
	})

	t.Run("date-only and rfc3339 bounds accepted", func(t *testing.T) {
		filter, err := ParseListRange("2024-01-14", "2024-01-16T12:00:00Z")
		require.NoError(t, err)
		require.NotNil(t, filter.Start)
		require.NotNil(t, filter.End)
		assert.Equal(t, time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC), *filter.Start)
	})
}

func TestEventServiceCreate(t *testing.T) {
	repo := newEventRepoStub()
	svc := NewEventService(repo, nil, nil)

	event, err := svc.Create(context.Background(), CreateEventRequest{
		Title:     "Standup",
		StartTime: timePtr(mustTime(t, "2024-01-15T10:00:00Z")),
		EndTime:   timePtr(mustTime(t, "2024-01-15T10:30:00Z")),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, 30*time.Minute, event.EndTime.Sub(event.StartTime))
	assert.Equal(t, models.DefaultColor, event.Color)
	assert.Equal(t, models.RecurrenceNone, event.Recurring)
	assert.False(t, event.CreatedAt.IsZero())
	assert.Len(t, repo.events, 1)
}

func TestEventServiceCreateRejectsNonPositiveInterval(t *testing.T) {
	repo := newEventRepoStub()
	svc := NewEventService(repo, nil, nil)

	at := mustTime(t, "2024-01-15T10:00:00Z")
	_, err := svc.Create(context.Background(), CreateEventRequest{
		Title:     "Standup",
		StartTime: timePtr(at),
		EndTime:   timePtr(at),
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	assert.Empty(t, repo.events)
}

func TestEventServiceCreateTitleRules(t *testing.T) {
	repo := newEventRepoStub()
	svc := NewEventService(repo, nil, nil)
	start := timePtr(mustTime(t, "2024-01-15T10:00:00Z"))
	end := timePtr(mustTime(t, "2024-01-15T11:00:00Z"))

	_, err := svc.Create(context.Background(), CreateEventRequest{Title: "   ", StartTime: start, EndTime: end})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	_, err = svc.Create(context.Background(), CreateEventRequest{Title: strings.Repeat("x", 201), StartTime: start, EndTime: end})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	event, err := svc.Create(context.Background(), CreateEventRequest{Title: "  Review  ", StartTime: start, EndTime: end})
	require.NoError(t, err)
	assert.Equal(t, "Review", event.Title)
}

func TestEventServiceCreateRejectsUnknownColor(t *testing.T) {
	svc := NewEventService(newEventRepoStub(), nil, nil)

	_, err := svc.Create(context.Background(), CreateEventRequest{
		Title:     "Standup",
		StartTime: timePtr(mustTime(t, "2024-01-15T10:00:00Z")),
		EndTime:   timePtr(mustTime(t, "2024-01-15T11:00:00Z")),
		Color:     "#123456",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestEventServiceUpdateValidatesEffectivePair(t *testing.T) {
	existing := models.Event{
		ID:        uuid.NewString(),
		Title:     "Standup",
		StartTime: mustTime(t, "2024-01-15T10:00:00Z"),
		EndTime:   mustTime(t, "2024-01-15T11:00:00Z"),
		Color:     models.DefaultColor,
		Recurring: models.RecurrenceNone,
	}
	repo := newEventRepoStub(existing)
	svc := NewEventService(repo, nil, nil)

	// Moving only the start past the stored end must fail.
	_, err := svc.Update(context.Background(), existing.ID, UpdateEventRequest{
		StartTime: timePtr(mustTime(t, "2024-01-15T12:00:00Z")),
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	// Moving only the end before the stored start must fail.
	_, err = svc.Update(context.Background(), existing.ID, UpdateEventRequest{
		EndTime: timePtr(mustTime(t, "2024-01-15T09:00:00Z")),
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	// The stored record is untouched after the rejected updates.
	kept := repo.events[existing.ID]
	assert.Equal(t, existing.StartTime, kept.StartTime)
	assert.Equal(t, existing.EndTime, kept.EndTime)
}

func TestEventServiceUpdatePartialKeepsOmittedFields(t *testing.T) {
	existing := models.Event{
		ID:          uuid.NewString(),
		Title:       "Standup",
		Description: "daily sync",
		StartTime:   mustTime(t, "2024-01-15T10:00:00Z"),
		EndTime:     mustTime(t, "2024-01-15T11:00:00Z"),
		Color:       models.DefaultColor,
		Location:    "Room 1",
		Recurring:   models.RecurrenceDaily,
	}
	repo := newEventRepoStub(existing)
	svc := NewEventService(repo, nil, nil)

	updated, err := svc.Update(context.Background(), existing.ID, UpdateEventRequest{
		Title: strPtr("Planning"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Planning", updated.Title)
	assert.Equal(t, existing.Description, updated.Description)
	assert.Equal(t, existing.StartTime, updated.StartTime)
	assert.Equal(t, existing.EndTime, updated.EndTime)
	assert.Equal(t, existing.Location, updated.Location)
	assert.Equal(t, existing.Recurring, updated.Recurring)
}

func TestEventServiceUpdateNotFound(t *testing.T) {
	svc := NewEventService(newEventRepoStub(), nil, nil)

	_, err := svc.Update(context.Background(), uuid.NewString(), UpdateEventRequest{Title: strPtr("x")})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestEventServiceMalformedID(t *testing.T) {
	svc := NewEventService(newEventRepoStub(), nil, nil)

	_, err := svc.Get(context.Background(), "not-a-uuid")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidArgument.Code, appErrors.FromError(err).Code)

	_, err = svc.Delete(context.Background(), "not-a-uuid")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidArgument.Code, appErrors.FromError(err).Code)
}

func TestEventServiceDelete(t *testing.T) {
	existing := models.Event{
		ID:        uuid.NewString(),
		Title:     "Standup",
		StartTime: mustTime(t, "2024-01-15T10:00:00Z"),
		EndTime:   mustTime(t, "2024-01-15T11:00:00Z"),
	}
	repo := newEventRepoStub(existing)
	svc := NewEventService(repo, nil, nil)

	deleted, err := svc.Delete(context.Background(), existing.ID)
	require.NoError(t, err)
	assert.Equal(t, existing.Title, deleted.Title)
	assert.Empty(t, repo.events)

	_, err = svc.Delete(context.Background(), uuid.NewString())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestEventServiceDayGrid(t *testing.T) {
	repo := newEventRepoStub(models.Event{
		ID:        uuid.NewString(),
		Title:     "Standup",
		StartTime: mustTime(t, "2024-01-15T10:00:00Z"),
		EndTime:   mustTime(t, "2024-01-15T10:30:00Z"),
	})
	svc := NewEventService(repo, nil, nil)

	grid, err := svc.DayGrid(context.Background(), "2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", grid.Date)
	require.Len(t, grid.Timed, 1)
	assert.Equal(t, 600, grid.Timed[0].Box.Top)
	assert.Equal(t, 30, grid.Timed[0].Box.Height)

	// The day window was pushed down as a range filter.
	require.NotNil(t, repo.lastFilter.Start)
	require.NotNil(t, repo.lastFilter.End)
	assert.Equal(t, 15, repo.lastFilter.Start.Day())

	_, err = svc.DayGrid(context.Background(), "15-01-2024")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidArgument.Code, appErrors.FromError(err).Code)
}
