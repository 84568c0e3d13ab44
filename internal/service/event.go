package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/Jay-Lhomme/levelup-server/internal/domain"
	"github.com/Jay-Lhomme/levelup-server/internal/service/ports"
)

type EventService struct {
	repo           ports.EventRepo
	attendanceRepo ports.AttendanceRepo
	gamerRepo      ports.GamerRepo
	gameRepo       ports.GameRepo
	notifier       ports.EventNotifier
	logger         logger.Logger
}

func NewEventService(
	repo ports.EventRepo,
	attendanceRepo ports.AttendanceRepo,
	gamerRepo ports.GamerRepo,
	gameRepo ports.GameRepo,
	notifier ports.EventNotifier,
	logger logger.Logger,
) *EventService {
	return &EventService{
		repo:           repo,
		attendanceRepo: attendanceRepo,
		gamerRepo:      gamerRepo,
		gameRepo:       gameRepo,
		notifier:       notifier,
		logger:         logger,
	}
}

// List returns all events, optionally filtered by game, each annotated with
// Joined for the gamer identified by uid. The identity must resolve before
// anything is listed.
func (s *EventService) List(ctx context.Context, gameID, uid string) ([]*domain.Event, error) {
	gamer, err := s.resolveGamer(ctx, uid)
	if err != nil {
		return nil, err
	}

	events, err := s.repo.List(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	attending, err := s.attendanceRepo.ListEventIDsByGamer(ctx, gamer.ID)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}

	joined := make(map[string]struct{}, len(attending))
	for _, id := range attending {
		joined[id] = struct{}{}
	}

	for _, e := range events {
		_, e.Joined = joined[e.ID]
	}

	return events, nil
}

// Get returns a single event with Joined populated the same way List does.
func (s *EventService) Get(ctx context.Context, id, uid string) (*domain.Event, error) {
	gamer, err := s.resolveGamer(ctx, uid)
	if err != nil {
		return nil, err
	}

	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	event.Joined, err = s.attendanceRepo.IsAttending(ctx, gamer.ID, event.ID)
	if err != nil {
		return nil, fmt.Errorf("check attendance: %w", err)
	}

	return event, nil
}

func (s *EventService) Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if err := validateEventInput(input); err != nil {
		return nil, err
	}

	if err := s.checkRefs(ctx, input.GameID, input.OrganizerID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	event := &domain.Event{
		ID:          uuid.New().String(),
		Description: input.Description,
		Date:        input.Date,
		StartTime:   input.StartTime,
		GameID:      input.GameID,
		OrganizerID: input.OrganizerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

func (s *EventService) Update(ctx context.Context, id string, input domain.UpdateEventInput) error {
	if err := validateEventInput(input); err != nil {
		return err
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.checkRefs(ctx, input.GameID, input.OrganizerID); err != nil {
		return err
	}

	event := &domain.Event{
		ID:          id,
		Description: input.Description,
		Date:        input.Date,
		StartTime:   input.StartTime,
		GameID:      input.GameID,
		OrganizerID: input.OrganizerID,
	}

	if err := s.repo.Update(ctx, event); err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	return nil
}

// Delete removes an event. Attendance rows go with it (FK cascade).
func (s *EventService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Signup records the acting gamer as attending the event. Duplicate signups
// are rejected by the store's uniqueness constraint.
func (s *EventService) Signup(ctx context.Context, eventID, uid string) (*domain.Attendance, error) {
	gamer, err := s.resolveGamer(ctx, uid)
	if err != nil {
		return nil, err
	}

	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	att := &domain.Attendance{
		ID:        uuid.New().String(),
		EventID:   event.ID,
		GamerID:   gamer.ID,
		CreatedAt: time.Now().UTC(),
	}

	if err = s.attendanceRepo.Create(ctx, att); err != nil {
		return nil, fmt.Errorf("add attendance: %w", err)
	}

	s.logger.Info("gamer signed up",
		logger.String("attendance_id", att.ID),
		logger.String("event_id", event.ID),
		logger.String("gamer_id", gamer.ID),
	)

	go s.notifyOrganizer(context.WithoutCancel(ctx), event, gamer, true)

	return att, nil
}

// Leave removes the acting gamer's attendance record for the event.
func (s *EventService) Leave(ctx context.Context, eventID, uid string) error {
	gamer, err := s.resolveGamer(ctx, uid)
	if err != nil {
		return err
	}

	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}

	if err = s.attendanceRepo.DeleteByEventAndGamer(ctx, event.ID, gamer.ID); err != nil {
		return fmt.Errorf("remove attendance: %w", err)
	}

	s.logger.Info("gamer left event",
		logger.String("event_id", event.ID),
		logger.String("gamer_id", gamer.ID),
	)

	go s.notifyOrganizer(context.WithoutCancel(ctx), event, gamer, false)

	return nil
}

// RemindUpcoming notifies attendees of events starting within the window and
// marks those events so they are reminded only once. Returns the number of
// notifications sent.
func (s *EventService) RemindUpcoming(ctx context.Context, window time.Duration) (int, error) {
	events, err := s.repo.ListUnreminded(ctx, window)
	if err != nil {
		return 0, fmt.Errorf("list upcoming events: %w", err)
	}

	sent := 0
	for _, event := range events {
		gamerIDs, err := s.attendanceRepo.ListGamerIDsByEvent(ctx, event.ID)
		if err != nil {
			return sent, fmt.Errorf("list attendees: %w", err)
		}

		for _, gamerID := range gamerIDs {
			gamer, err := s.gamerRepo.GetByID(ctx, gamerID)
			if err != nil {
				s.logger.Error("failed to get attendee for reminder",
					logger.String("gamer_id", gamerID),
					logger.String("error", err.Error()),
				)
				continue
			}
			s.notifier.NotifyUpcoming(ctx, gamer, event)
			sent++
		}

		if err = s.repo.MarkReminded(ctx, event.ID); err != nil {
			return sent, fmt.Errorf("mark reminded: %w", err)
		}
	}

	return sent, nil
}

func (s *EventService) resolveGamer(ctx context.Context, uid string) (*domain.Gamer, error) {
	if uid == "" {
		return nil, domain.ErrMissingIdentity
	}

	gamer, err := s.gamerRepo.GetByUID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("resolve gamer: %w", err)
	}

	return gamer, nil
}

func (s *EventService) checkRefs(ctx context.Context, gameID, organizerID string) error {
	if _, err := s.gameRepo.GetByID(ctx, gameID); err != nil {
		return fmt.Errorf("check game: %w", err)
	}
	if _, err := s.gamerRepo.GetByID(ctx, organizerID); err != nil {
		return fmt.Errorf("check organizer: %w", err)
	}
	return nil
}

func (s *EventService) notifyOrganizer(ctx context.Context, event *domain.Event, gamer *domain.Gamer, signup bool) {
	organizer, err := s.gamerRepo.GetByID(ctx, event.OrganizerID)
	if err != nil {
		s.logger.Error("failed to get organizer for notification",
			logger.String("organizer_id", event.OrganizerID),
			logger.String("error", err.Error()),
		)
		return
	}

	if signup {
		s.notifier.NotifySignup(ctx, organizer, gamer, event)
	} else {
		s.notifier.NotifyLeave(ctx, organizer, gamer, event)
	}
}

func validateEventInput(input domain.CreateEventInput) error {
	if input.Description == "" {
		return fmt.Errorf("%w: description is required", domain.ErrValidation)
	}
	if _, err := time.Parse(domain.DateLayout, input.Date); err != nil {
		return fmt.Errorf("%w: date must be in %s format", domain.ErrValidation, domain.DateLayout)
	}
	if _, err := time.Parse(domain.TimeLayout, input.StartTime); err != nil {
		return fmt.Errorf("%w: time must be in %s format", domain.ErrValidation, domain.TimeLayout)
	}
	return nil
}
