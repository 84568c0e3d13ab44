package ports

import (
	"context"

	"github.com/Jay-Lhomme/levelup-server/internal/domain"
)

type GamerRepo interface {
	Create(ctx context.Context, gamer *domain.Gamer) error
	GetByID(ctx context.Context, id string) (*domain.Gamer, error)
	GetByUID(ctx context.Context, uid string) (*domain.Gamer, error)
	List(ctx context.Context) ([]*domain.Gamer, error)
	Update(ctx context.Context, gamer *domain.Gamer) error
	Delete(ctx context.Context, id string) error
}
