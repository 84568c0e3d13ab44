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

type GameTypeRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewGameTypeRepo(db *dbpg.DB) *GameTypeRepository {
	return &GameTypeRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *GameTypeRepository) Create(ctx context.Context, gt *domain.GameType) error {
	query := `INSERT INTO game_types (id, label, created_at, updated_at)
			  VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, gt.ID, gt.Label, gt.CreatedAt, gt.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert game type: %w", err)
	}

	return nil
}

func (r *GameTypeRepository) GetByID(ctx context.Context, id string) (*domain.GameType, error) {
	query := `SELECT id, label, created_at, updated_at
			  FROM game_types
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get game type: %w", err)
	}

	var gt domain.GameType
	if err = row.Scan(&gt.ID, &gt.Label, &gt.CreatedAt, &gt.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrGameTypeNotFound
		}
		return nil, fmt.Errorf("scan game type: %w", err)
	}

	return &gt, nil
}

func (r *GameTypeRepository) List(ctx context.Context) ([]*domain.GameType, error) {
	query := `SELECT id, label, created_at, updated_at
			  FROM game_types
			  ORDER BY label`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list game types: %w", err)
	}
	defer rows.Close()

	var res []*domain.GameType
	for rows.Next() {
		var gt domain.GameType
		if err = rows.Scan(&gt.ID, &gt.Label, &gt.CreatedAt, &gt.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan game type: %w", err)
		}
		res = append(res, &gt)
	}

	return res, rows.Err()
}

func (r *GameTypeRepository) Update(ctx context.Context, gt *domain.GameType) error {
	query := `UPDATE game_types
			  SET label = $2, updated_at = now()
			  WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, gt.ID, gt.Label)
	if err != nil {
		return fmt.Errorf("update game type: %w", err)
	}

	return checkAffected(res, domain.ErrGameTypeNotFound)
}

func (r *GameTypeRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM game_types WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrInUse
		}
		return fmt.Errorf("delete game type: %w", err)
	}

	return checkAffected(res, domain.ErrGameTypeNotFound)
}

type GameRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewGameRepo(db *dbpg.DB) *GameRepository {
	return &GameRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *GameRepository) Create(ctx context.Context, game *domain.Game) error {
	query := `INSERT INTO games (id, title, maker, number_of_players, skill_level, game_type_id, gamer_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		game.ID, game.Title, game.Maker, game.NumberOfPlayers,
		game.SkillLevel, game.GameTypeID, game.GamerID,
		game.CreatedAt, game.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert game: %w", err)
	}

	return nil
}

func (r *GameRepository) GetByID(ctx context.Context, id string) (*domain.Game, error) {
	query := `SELECT id, title, maker, number_of_players, skill_level, game_type_id, gamer_id, created_at, updated_at
			  FROM games
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get game: %w", err)
	}

	var g domain.Game
	if err = row.Scan(
		&g.ID, &g.Title, &g.Maker, &g.NumberOfPlayers, &g.SkillLevel,
		&g.GameTypeID, &g.GamerID, &g.CreatedAt, &g.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrGameNotFound
		}
		return nil, fmt.Errorf("scan game: %w", err)
	}

	return &g, nil
}

func (r *GameRepository) List(ctx context.Context) ([]*domain.Game, error) {
	query := `SELECT id, title, maker, number_of_players, skill_level, game_type_id, gamer_id, created_at, updated_at
			  FROM games
			  ORDER BY title`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	defer rows.Close()

	var res []*domain.Game
	for rows.Next() {
		var g domain.Game
		if err = rows.Scan(
			&g.ID, &g.Title, &g.Maker, &g.NumberOfPlayers, &g.SkillLevel,
			&g.GameTypeID, &g.GamerID, &g.CreatedAt, &g.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}
		res = append(res, &g)
	}

	return res, rows.Err()
}

func (r *GameRepository) Update(ctx context.Context, game *domain.Game) error {
	query := `UPDATE games
			  SET title = $2, maker = $3, number_of_players = $4, skill_level = $5,
			      game_type_id = $6, gamer_id = $7, updated_at = now()
			  WHERE id = $1`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		game.ID, game.Title, game.Maker, game.NumberOfPlayers,
		game.SkillLevel, game.GameTypeID, game.GamerID,
	)
	if err != nil {
		return fmt.Errorf("update game: %w", err)
	}

	return checkAffected(res, domain.ErrGameNotFound)
}

func (r *GameRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM games WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrInUse
		}
		return fmt.Errorf("delete game: %w", err)
	}

	return checkAffected(res, domain.ErrGameNotFound)
}
