package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/Jay-Lhomme/levelup-server/internal/domain"
)

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Date and start_time are DATE/TIME columns; they are selected back as text
// so the domain keeps the wire formats ("2006-01-02", "15:04").
const eventColumns = `id, description, date::text, to_char(start_time, 'HH24:MI'), game_id, organizer_id, created_at, updated_at`

func (r *EventRepository) Create(ctx context.Context, event *domain.Event) error {
	query := `INSERT INTO events (id, description, date, start_time, game_id, organizer_id, created_at, updated_at)
			  VALUES ($1, $2, $3::date, $4::time, $5, $6, $7, $8)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		event.ID, event.Description, event.Date, event.StartTime,
		event.GameID, event.OrganizerID, event.CreatedAt, event.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	var e domain.Event
	if err = row.Scan(
		&e.ID, &e.Description, &e.Date, &e.StartTime,
		&e.GameID, &e.OrganizerID, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return &e, nil
}

func (r *EventRepository) List(ctx context.Context, gameID string) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE ($1 = '' OR game_id::text = $1)
			  ORDER BY date, start_time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, gameID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

func scanEvents(rows *sql.Rows) ([]*domain.Event, error) {
	var res []*domain.Event
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(
			&e.ID, &e.Description, &e.Date, &e.StartTime,
			&e.GameID, &e.OrganizerID, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}

func (r *EventRepository) Update(ctx context.Context, event *domain.Event) error {
	query := `UPDATE events
			  SET description = $2, date = $3::date, start_time = $4::time,
			      game_id = $5, organizer_id = $6, updated_at = now()
			  WHERE id = $1`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		event.ID, event.Description, event.Date, event.StartTime,
		event.GameID, event.OrganizerID,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	return checkAffected(res, domain.ErrEventNotFound)
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM events WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	return checkAffected(res, domain.ErrEventNotFound)
}

func (r *EventRepository) ListUnreminded(ctx context.Context, window time.Duration) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE NOT reminder_sent
			    AND date + start_time >= now()
			    AND date + start_time <= now() + make_interval(secs => $1)
			  ORDER BY date, start_time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, window.Seconds())
	if err != nil {
		return nil, fmt.Errorf("list unreminded events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

func (r *EventRepository) MarkReminded(ctx context.Context, id string) error {
	query := `UPDATE events SET reminder_sent = true, updated_at = now() WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("mark event reminded: %w", err)
	}

	return checkAffected(res, domain.ErrEventNotFound)
}
