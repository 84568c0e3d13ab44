package ports

import (
	"context"

	"github.com/Jay-Lhomme/levelup-server/internal/domain"
)

type AttendanceRepo interface {
	Create(ctx context.Context, att *domain.Attendance) error
	GetByID(ctx context.Context, id string) (*domain.Attendance, error)
	List(ctx context.Context) ([]*domain.Attendance, error)
	Update(ctx context.Context, att *domain.Attendance) error
	Delete(ctx context.Context, id string) error
	DeleteByEventAndGamer(ctx context.Context, eventID, gamerID string) error
	IsAttending(ctx context.Context, gamerID, eventID string) (bool, error)
	ListEventIDsByGamer(ctx context.Context, gamerID string) ([]string, error)
	ListGamerIDsByEvent(ctx context.Context, eventID string) ([]string, error)
}
