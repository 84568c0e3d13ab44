package ports

import (
	"context"

	"github.com/Jay-Lhomme/levelup-server/internal/domain"
)

type GameTypeRepo interface {
	Create(ctx context.Context, gt *domain.GameType) error
	GetByID(ctx context.Context, id string) (*domain.GameType, error)
	List(ctx context.Context) ([]*domain.GameType, error)
	Update(ctx context.Context, gt *domain.GameType) error
	Delete(ctx context.Context, id string) error
}

type GameRepo interface {
	Create(ctx context.Context, game *domain.Game) error
	GetByID(ctx context.Context, id string) (*domain.Game, error)
	List(ctx context.Context) ([]*domain.Game, error)
	Update(ctx context.Context, game *domain.Game) error
	Delete(ctx context.Context, id string) error
}
