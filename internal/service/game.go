package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Jay-Lhomme/levelup-server/internal/domain"
	"github.com/Jay-Lhomme/levelup-server/internal/service/ports"
)

type GameTypeService struct {
	repo ports.GameTypeRepo
}

func NewGameTypeService(repo ports.GameTypeRepo) *GameTypeService {
	return &GameTypeService{repo: repo}
}

func (s *GameTypeService) Create(ctx context.Context, label string) (*domain.GameType, error) {
	if label == "" {
		return nil, fmt.Errorf("%w: label is required", domain.ErrValidation)
	}

	now := time.Now().UTC()
	gt := &domain.GameType{
		ID:        uuid.New().String(),
		Label:     label,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, gt); err != nil {
		return nil, fmt.Errorf("create game type: %w", err)
	}

	return gt, nil
}

func (s *GameTypeService) GetByID(ctx context.Context, id string) (*domain.GameType, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *GameTypeService) List(ctx context.Context) ([]*domain.GameType, error) {
	return s.repo.List(ctx)
}

func (s *GameTypeService) Update(ctx context.Context, id, label string) error {
	if label == "" {
		return fmt.Errorf("%w: label is required", domain.ErrValidation)
	}

	return s.repo.Update(ctx, &domain.GameType{ID: id, Label: label})
}

func (s *GameTypeService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

type GameService struct {
	repo         ports.GameRepo
	gameTypeRepo ports.GameTypeRepo
	gamerRepo    ports.GamerRepo
}

func NewGameService(repo ports.GameRepo, gameTypeRepo ports.GameTypeRepo, gamerRepo ports.GamerRepo) *GameService {
	return &GameService{
		repo:         repo,
		gameTypeRepo: gameTypeRepo,
		gamerRepo:    gamerRepo,
	}
}

func (s *GameService) Create(ctx context.Context, input domain.CreateGameInput) (*domain.Game, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}

	if err := s.checkRefs(ctx, input.GameTypeID, input.GamerID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	game := &domain.Game{
		ID:              uuid.New().String(),
		Title:           input.Title,
		Maker:           input.Maker,
		NumberOfPlayers: input.NumberOfPlayers,
		SkillLevel:      input.SkillLevel,
		GameTypeID:      input.GameTypeID,
		GamerID:         input.GamerID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, game); err != nil {
		return nil, fmt.Errorf("create game: %w", err)
	}

	return game, nil
}

func (s *GameService) GetByID(ctx context.Context, id string) (*domain.Game, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *GameService) List(ctx context.Context) ([]*domain.Game, error) {
	return s.repo.List(ctx)
}

func (s *GameService) Update(ctx context.Context, id string, input domain.UpdateGameInput) error {
	if input.Title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}

	if err := s.checkRefs(ctx, input.GameTypeID, input.GamerID); err != nil {
		return err
	}

	game := &domain.Game{
		ID:              id,
		Title:           input.Title,
		Maker:           input.Maker,
		NumberOfPlayers: input.NumberOfPlayers,
		SkillLevel:      input.SkillLevel,
		GameTypeID:      input.GameTypeID,
		GamerID:         input.GamerID,
	}

	if err := s.repo.Update(ctx, game); err != nil {
		return fmt.Errorf("update game: %w", err)
	}

	return nil
}

func (s *GameService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *GameService) checkRefs(ctx context.Context, gameTypeID, gamerID string) error {
	if _, err := s.gameTypeRepo.GetByID(ctx, gameTypeID); err != nil {
		return fmt.Errorf("check game type: %w", err)
	}
	if _, err := s.gamerRepo.GetByID(ctx, gamerID); err != nil {
		return fmt.Errorf("check gamer: %w", err)
	}
	return nil
}
