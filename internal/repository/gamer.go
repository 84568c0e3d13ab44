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

type GamerRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewGamerRepo(db *dbpg.DB) *GamerRepository {
	return &GamerRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *GamerRepository) Create(ctx context.Context, gamer *domain.Gamer) error {
	query := `INSERT INTO gamers (id, uid, bio, telegram_chat_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		gamer.ID, gamer.UID, gamer.Bio, gamer.TelegramChatID,
		gamer.CreatedAt, gamer.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrUIDTaken
		}
		return fmt.Errorf("insert gamer: %w", err)
	}

	return nil
}

func (r *GamerRepository) GetByID(ctx context.Context, id string) (*domain.Gamer, error) {
	query := `SELECT id, uid, bio, telegram_chat_id, created_at, updated_at
			  FROM gamers
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get gamer: %w", err)
	}

	return scanGamer(row)
}

func (r *GamerRepository) GetByUID(ctx context.Context, uid string) (*domain.Gamer, error) {
	query := `SELECT id, uid, bio, telegram_chat_id, created_at, updated_at
			  FROM gamers
			  WHERE uid = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, uid)
	if err != nil {
		return nil, fmt.Errorf("get gamer by uid: %w", err)
	}

	return scanGamer(row)
}

func scanGamer(row *sql.Row) (*domain.Gamer, error) {
	var g domain.Gamer
	if err := row.Scan(&g.ID, &g.UID, &g.Bio, &g.TelegramChatID, &g.CreatedAt, &g.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrGamerNotFound
		}
		return nil, fmt.Errorf("scan gamer: %w", err)
	}

	return &g, nil
}

func (r *GamerRepository) List(ctx context.Context) ([]*domain.Gamer, error) {
	query := `SELECT id, uid, bio, telegram_chat_id, created_at, updated_at
			  FROM gamers
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list gamers: %w", err)
	}
	defer rows.Close()

	var res []*domain.Gamer
	for rows.Next() {
		var g domain.Gamer
		if err = rows.Scan(&g.ID, &g.UID, &g.Bio, &g.TelegramChatID, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan gamer: %w", err)
		}
		res = append(res, &g)
	}

	return res, rows.Err()
}

func (r *GamerRepository) Update(ctx context.Context, gamer *domain.Gamer) error {
	query := `UPDATE gamers
			  SET uid = $2, bio = $3, telegram_chat_id = $4, updated_at = now()
			  WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, gamer.ID, gamer.UID, gamer.Bio, gamer.TelegramChatID)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrUIDTaken
		}
		return fmt.Errorf("update gamer: %w", err)
	}

	return checkAffected(res, domain.ErrGamerNotFound)
}

func (r *GamerRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM gamers WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrInUse
		}
		return fmt.Errorf("delete gamer: %w", err)
	}

	return checkAffected(res, domain.ErrGamerNotFound)
}

func checkAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
