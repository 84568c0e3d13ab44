package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Jay-Lhomme/levelup-server/internal/domain"
	"github.com/Jay-Lhomme/levelup-server/internal/service/ports"
)

// AttendanceService exposes the event_gamers join table as a plain resource,
// on top of the same ledger the event signup/leave actions use.
type AttendanceService struct {
	repo      ports.AttendanceRepo
	eventRepo ports.EventRepo
	gamerRepo ports.GamerRepo
}

func NewAttendanceService(repo ports.AttendanceRepo, eventRepo ports.EventRepo, gamerRepo ports.GamerRepo) *AttendanceService {
	return &AttendanceService{
		repo:      repo,
		eventRepo: eventRepo,
		gamerRepo: gamerRepo,
	}
}

func (s *AttendanceService) Create(ctx context.Context, input domain.CreateAttendanceInput) (*domain.Attendance, error) {
	if err := s.checkRefs(ctx, input.EventID, input.GamerID); err != nil {
		return nil, err
	}

	att := &domain.Attendance{
		ID:        uuid.New().String(),
		EventID:   input.EventID,
		GamerID:   input.GamerID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, att); err != nil {
		return nil, fmt.Errorf("create attendance: %w", err)
	}

	return att, nil
}

func (s *AttendanceService) GetByID(ctx context.Context, id string) (*domain.Attendance, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *AttendanceService) List(ctx context.Context) ([]*domain.Attendance, error) {
	return s.repo.List(ctx)
}

func (s *AttendanceService) Update(ctx context.Context, id string, input domain.UpdateAttendanceInput) error {
	if err := s.checkRefs(ctx, input.EventID, input.GamerID); err != nil {
		return err
	}

	att := &domain.Attendance{
		ID:      id,
		EventID: input.EventID,
		GamerID: input.GamerID,
	}

	if err := s.repo.Update(ctx, att); err != nil {
		return fmt.Errorf("update attendance: %w", err)
	}

	return nil
}

func (s *AttendanceService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *AttendanceService) IsAttending(ctx context.Context, gamerID, eventID string) (bool, error) {
	return s.repo.IsAttending(ctx, gamerID, eventID)
}

func (s *AttendanceService) checkRefs(ctx context.Context, eventID, gamerID string) error {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return fmt.Errorf("check event: %w", err)
	}
	if _, err := s.gamerRepo.GetByID(ctx, gamerID); err != nil {
		return fmt.Errorf("check gamer: %w", err)
	}
	return nil
}
