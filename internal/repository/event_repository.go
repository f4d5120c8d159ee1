package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/eventum-app/eventum-api/internal/models"
)

const eventColumns = "id, title, description, start_time, end_time, all_day, color, location, recurring, created_at, updated_at"

// EventRepository persists calendar events.
type EventRepository struct {
	db *sqlx.DB
}

// NewEventRepository constructs an event repository.
func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

// List returns events matching the filter, ordered by ascending start time
// with insertion order breaking ties. When a range is set the overlap
// predicate is pushed into the WHERE clause so the store can answer from
// its (start_time, end_time) index instead of a full scan:
// the event starts inside the window, ends inside it, or spans it entirely.
func (r *EventRepository) List(ctx context.Context, filter models.EventFilter) ([]models.Event, error) {
	where := []string{"1=1"}
	args := []interface{}{}
	if filter.Start != nil && filter.End != nil {
		clause := fmt.Sprintf(
			"((start_time BETWEEN $%d AND $%d) OR (end_time BETWEEN $%d AND $%d) OR (start_time <= $%d AND end_time >= $%d))",
			len(args)+1, len(args)+2, len(args)+1, len(args)+2, len(args)+1, len(args)+2)
		where = append(where, clause)
		args = append(args, *filter.Start, *filter.End)
	}
	whereClause := strings.Join(where, " AND ")

	query := fmt.Sprintf("SELECT %s FROM events WHERE %s ORDER BY start_time ASC, created_at ASC, id ASC", eventColumns, whereClause)
	var events []models.Event
	if err := r.db.SelectContext(ctx, &events, query, args...); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// GetByID fetches a single event. sql.ErrNoRows passes through for the
// service layer to map.
func (r *EventRepository) GetByID(ctx context.Context, id string) (*models.Event, error) {
	query := fmt.Sprintf("SELECT %s FROM events WHERE id = $1", eventColumns)
	var event models.Event
	if err := r.db.GetContext(ctx, &event, query, id); err != nil {
		return nil, err
	}
	return &event, nil
}

// Create inserts an event, assigning id and timestamps.
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	event.CreatedAt = now
	event.UpdatedAt = now
	query := `INSERT INTO events (id, title, description, start_time, end_time, all_day, color, location, recurring, created_at, updated_at)
VALUES (:id, :title, :description, :start_time, :end_time, :all_day, :color, :location, :recurring, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, event); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

// Update overwrites an event's mutable fields and refreshes updated_at.
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	event.UpdatedAt = time.Now().UTC()
	query := `UPDATE events SET title = :title, description = :description, start_time = :start_time, end_time = :end_time,
all_day = :all_day, color = :color, location = :location, recurring = :recurring, updated_at = :updated_at
WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, event); err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}

// Delete removes an event and returns its prior state in one atomic
// statement. sql.ErrNoRows passes through when the id does not exist.
func (r *EventRepository) Delete(ctx context.Context, id string) (*models.Event, error) {
	query := fmt.Sprintf("DELETE FROM events WHERE id = $1 RETURNING %s", eventColumns)
	var event models.Event
	if err := r.db.GetContext(ctx, &event, query, id); err != nil {
		return nil, err
	}
	return &event, nil
}
