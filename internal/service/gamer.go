package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Jay-Lhomme/levelup-server/internal/domain"
	"github.com/Jay-Lhomme/levelup-server/internal/service/ports"
)

type GamerService struct {
	repo ports.GamerRepo
}

func NewGamerService(repo ports.GamerRepo) *GamerService {
	return &GamerService{repo: repo}
}

// ResolveByUID maps the caller-supplied external identifier to a gamer.
// Every identity-scoped operation (listing with joined, signup, leave) goes
// through here before touching the attendance ledger.
func (s *GamerService) ResolveByUID(ctx context.Context, uid string) (*domain.Gamer, error) {
	if uid == "" {
		return nil, domain.ErrMissingIdentity
	}

	gamer, err := s.repo.GetByUID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("resolve gamer: %w", err)
	}

	return gamer, nil
}

func (s *GamerService) Register(ctx context.Context, input domain.CreateGamerInput) (*domain.Gamer, error) {
	if input.UID == "" {
		return nil, fmt.Errorf("%w: uid is required", domain.ErrValidation)
	}

	now := time.Now().UTC()
	gamer := &domain.Gamer{
		ID:             uuid.New().String(),
		UID:            input.UID,
		Bio:            input.Bio,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, gamer); err != nil {
		return nil, fmt.Errorf("create gamer: %w", err)
	}

	return gamer, nil
}

func (s *GamerService) GetByID(ctx context.Context, id string) (*domain.Gamer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *GamerService) List(ctx context.Context) ([]*domain.Gamer, error) {
	return s.repo.List(ctx)
}

func (s *GamerService) Update(ctx context.Context, id string, input domain.UpdateGamerInput) error {
	if input.UID == "" {
		return fmt.Errorf("%w: uid is required", domain.ErrValidation)
	}

	gamer := &domain.Gamer{
		ID:             id,
		UID:            input.UID,
		Bio:            input.Bio,
		TelegramChatID: input.TelegramChatID,
	}

	if err := s.repo.Update(ctx, gamer); err != nil {
		return fmt.Errorf("update gamer: %w", err)
	}

	return nil
}

func (s *GamerService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
