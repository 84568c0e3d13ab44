package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/Jay-Lhomme/levelup-server/internal/domain"
)

// AttendanceRepository manages the event_gamers join table. The table
// carries UNIQUE (event_id, gamer_id), so concurrent duplicate signups for
// the same pair collapse to a single row and the loser sees
// ErrAlreadyAttending.
type AttendanceRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAttendanceRepo(db *dbpg.DB) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *AttendanceRepository) Create(ctx context.Context, att *domain.Attendance) error {
	query := `INSERT INTO event_gamers (id, event_id, gamer_id, created_at)
			  VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, att.ID, att.EventID, att.GamerID, att.CreatedAt)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyAttending
		}
		return fmt.Errorf("insert attendance: %w", err)
	}

	return nil
}

func (r *AttendanceRepository) GetByID(ctx context.Context, id string) (*domain.Attendance, error) {
	query := `SELECT id, event_id, gamer_id, created_at
			  FROM event_gamers
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get attendance: %w", err)
	}

	var a domain.Attendance
	if err = row.Scan(&a.ID, &a.EventID, &a.GamerID, &a.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("scan attendance: %w", err)
	}

	return &a, nil
}

func (r *AttendanceRepository) List(ctx context.Context) ([]*domain.Attendance, error) {
	query := `SELECT id, event_id, gamer_id, created_at
			  FROM event_gamers
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list attendances: %w", err)
	}
	defer rows.Close()

	var res []*domain.Attendance
	for rows.Next() {
		var a domain.Attendance
		if err = rows.Scan(&a.ID, &a.EventID, &a.GamerID, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}
		res = append(res, &a)
	}

	return res, rows.Err()
}

func (r *AttendanceRepository) Update(ctx context.Context, att *domain.Attendance) error {
	query := `UPDATE event_gamers
			  SET event_id = $2, gamer_id = $3
			  WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, att.ID, att.EventID, att.GamerID)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyAttending
		}
		return fmt.Errorf("update attendance: %w", err)
	}

	return checkAffected(res, domain.ErrAttendanceNotFound)
}

func (r *AttendanceRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM event_gamers WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("delete attendance: %w", err)
	}

	return checkAffected(res, domain.ErrAttendanceNotFound)
}

func (r *AttendanceRepository) DeleteByEventAndGamer(ctx context.Context, eventID, gamerID string) error {
	query := `DELETE FROM event_gamers WHERE event_id = $1 AND gamer_id = $2`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, eventID, gamerID)
	if err != nil {
		return fmt.Errorf("delete attendance by pair: %w", err)
	}

	return checkAffected(res, domain.ErrAttendanceNotFound)
}

func (r *AttendanceRepository) IsAttending(ctx context.Context, gamerID, eventID string) (bool, error) {
	query := `SELECT EXISTS (
				  SELECT 1 FROM event_gamers WHERE gamer_id = $1 AND event_id = $2
			  )`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, gamerID, eventID)
	if err != nil {
		return false, fmt.Errorf("check attendance: %w", err)
	}

	var attending bool
	if err = row.Scan(&attending); err != nil {
		return false, fmt.Errorf("scan attendance check: %w", err)
	}

	return attending, nil
}

func (r *AttendanceRepository) ListEventIDsByGamer(ctx context.Context, gamerID string) ([]string, error) {
	query := `SELECT event_id FROM event_gamers WHERE gamer_id = $1`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, gamerID)
	if err != nil {
		return nil, fmt.Errorf("list event ids by gamer: %w", err)
	}
	defer rows.Close()

	return scanIDs(rows)
}

func (r *AttendanceRepository) ListGamerIDsByEvent(ctx context.Context, eventID string) ([]string, error) {
	query := `SELECT gamer_id FROM event_gamers WHERE event_id = $1`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list gamer ids by event: %w", err)
	}
	defer rows.Close()

	return scanIDs(rows)
}

func scanIDs(rows *sql.Rows) ([]string, error) {
	var res []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan id: %w", err)
		}
		res = append(res, id)
	}

	return res, rows.Err()
}
