package ports

import (
	"context"
	"time"

	"github.com/Jay-Lhomme/levelup-server/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, event *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	// List returns all events; gameID, when non-empty, filters by game.
	List(ctx context.Context, gameID string) ([]*domain.Event, error)
	Update(ctx context.Context, event *domain.Event) error
	Delete(ctx context.Context, id string) error
	// ListUnreminded returns events starting within the window that have not
	// had reminders sent yet.
	ListUnreminded(ctx context.Context, window time.Duration) ([]*domain.Event, error)
	MarkReminded(ctx context.Context, id string) error
}
