package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/Jay-Lhomme/levelup-server/internal/domain"
	"github.com/Jay-Lhomme/levelup-server/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type eventServiceMocks struct {
	eventRepo      *mocks.MockEventRepo
	attendanceRepo *mocks.MockAttendanceRepo
	gamerRepo      *mocks.MockGamerRepo
	gameRepo       *mocks.MockGameRepo
	notifier       *mocks.MockEventNotifier
}

func newEventService(t *testing.T) (*EventService, eventServiceMocks) {
	t.Helper()
	m := eventServiceMocks{
		eventRepo:      mocks.NewMockEventRepo(t),
		attendanceRepo: mocks.NewMockAttendanceRepo(t),
		gamerRepo:      mocks.NewMockGamerRepo(t),
		gameRepo:       mocks.NewMockGameRepo(t),
		notifier:       mocks.NewMockEventNotifier(t),
	}
	svc := NewEventService(m.eventRepo, m.attendanceRepo, m.gamerRepo, m.gameRepo, m.notifier, newTestLogger(t))
	return svc, m
}

func TestEventService_List_AnnotatesJoined(t *testing.T) {
	svc, m := newEventService(t)

	gamer := &domain.Gamer{ID: "g1", UID: "u1"}
	events := []*domain.Event{
		{ID: "e1", Description: "Friday night Catan"},
		{ID: "e2", Description: "Chess blitz"},
		{ID: "e3", Description: "D&D oneshot"},
	}

	m.gamerRepo.EXPECT().GetByUID(mock.Anything, "u1").Return(gamer, nil)
	m.eventRepo.EXPECT().List(mock.Anything, "").Return(events, nil)
	m.attendanceRepo.EXPECT().ListEventIDsByGamer(mock.Anything, "g1").Return([]string{"e1", "e3"}, nil)

	result, err := svc.List(context.Background(), "", "u1")

	require.NoError(t, err)
	require.Len(t, result, 3)
	assert.True(t, result[0].Joined)
	assert.False(t, result[1].Joined)
	assert.True(t, result[2].Joined)
}

func TestEventService_List_OtherGamerNotJoined(t *testing.T) {
	svc, m := newEventService(t)

	gamer := &domain.Gamer{ID: "g2", UID: "u2"}
	events := []*domain.Event{{ID: "e1"}}

	m.gamerRepo.EXPECT().GetByUID(mock.Anything, "u2").Return(gamer, nil)
	m.eventRepo.EXPECT().List(mock.Anything, "").Return(events, nil)
	m.attendanceRepo.EXPECT().ListEventIDsByGamer(mock.Anything, "g2").Return(nil, nil)

	result, err := svc.List(context.Background(), "", "u2")

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.False(t, result[0].Joined)
}

func TestEventService_List_GameFilterPassedThrough(t *testing.T) {
	svc, m := newEventService(t)

	gamer := &domain.Gamer{ID: "g1", UID: "u1"}

	m.gamerRepo.EXPECT().GetByUID(mock.Anything, "u1").Return(gamer, nil)
	m.eventRepo.EXPECT().List(mock.Anything, "game-7").Return(nil, nil)
	m.attendanceRepo.EXPECT().ListEventIDsByGamer(mock.Anything, "g1").Return(nil, nil)

	_, err := svc.List(context.Background(), "game-7", "u1")

	require.NoError(t, err)
}

func TestEventService_List_MissingIdentity(t *testing.T) {
	svc, _ := newEventService(t)

	_, err := svc.List(context.Background(), "", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingIdentity)
}

func TestEventService_List_UnknownIdentity(t *testing.T) {
	svc, m := newEventService(t)

	m.gamerRepo.EXPECT().GetByUID(mock.Anything, "ghost").Return(nil, domain.ErrGamerNotFound)

	_, err := svc.List(context.Background(), "", "ghost")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrGamerNotFound)
}

func TestEventService_Get_PopulatesJoined(t *testing.T) {
	svc, m := newEventService(t)

	gamer := &domain.Gamer{ID: "g1", UID: "u1"}
	event := &domain.Event{ID: "e1"}

	m.gamerRepo.EXPECT().GetByUID(mock.Anything, "u1").Return(gamer, nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.attendanceRepo.EXPECT().IsAttending(mock.Anything, "g1", "e1").Return(true, nil)

	result, err := svc.Get(context.Background(), "e1", "u1")

	require.NoError(t, err)
	assert.True(t, result.Joined)
}

func TestEventService_Get_NotFound(t *testing.T) {
	svc, m := newEventService(t)

	gamer := &domain.Gamer{ID: "g1", UID: "u1"}

	m.gamerRepo.EXPECT().GetByUID(mock.Anything, "u1").Return(gamer, nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.Get(context.Background(), "missing", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_Create_Success(t *testing.T) {
	svc, m := newEventService(t)

	m.gameRepo.EXPECT().GetByID(mock.Anything, "game-1").Return(&domain.Game{ID: "game-1"}, nil)
	m.gamerRepo.EXPECT().GetByID(mock.Anything, "g1").Return(&domain.Gamer{ID: "g1"}, nil)
	m.eventRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	input := domain.CreateEventInput{
		Description: "Friday night Catan",
		Date:        "2026-09-04",
		StartTime:   "19:00",
		GameID:      "game-1",
		OrganizerID: "g1",
	}

	event, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "Friday night Catan", event.Description)
	assert.Equal(t, "2026-09-04", event.Date)
	assert.Equal(t, "19:00", event.StartTime)
	assert.NotEmpty(t, event.ID)
	assert.False(t, event.Joined)
}

func TestEventService_Create_GameNotFound(t *testing.T) {
	svc, m := newEventService(t)

	m.gameRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrGameNotFound)

	input := domain.CreateEventInput{
		Description: "Test",
		Date:        "2026-09-04",
		StartTime:   "19:00",
		GameID:      "missing",
		OrganizerID: "g1",
	}

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrGameNotFound)
}

func TestEventService_Create_OrganizerNotFound(t *testing.T) {
	svc, m := newEventService(t)

	m.gameRepo.EXPECT().GetByID(mock.Anything, "game-1").Return(&domain.Game{ID: "game-1"}, nil)
	m.gamerRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrGamerNotFound)

	input := domain.CreateEventInput{
		Description: "Test",
		Date:        "2026-09-04",
		StartTime:   "19:00",
		GameID:      "game-1",
		OrganizerID: "missing",
	}

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrGamerNotFound)
}

func TestEventService_Create_BadDate(t *testing.T) {
	svc, _ := newEventService(t)

	input := domain.CreateEventInput{
		Description: "Test",
		Date:        "04.09.2026",
		StartTime:   "19:00",
		GameID:      "game-1",
		OrganizerID: "g1",
	}

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Update_EventNotFound(t *testing.T) {
	svc, m := newEventService(t)

	m.eventRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	input := domain.UpdateEventInput{
		Description: "Test",
		Date:        "2026-09-04",
		StartTime:   "19:00",
		GameID:      "game-1",
		OrganizerID: "g1",
	}

	err := svc.Update(context.Background(), "missing", input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_Signup_Success(t *testing.T) {
	svc, m := newEventService(t)

	gamer := &domain.Gamer{ID: "g1", UID: "u1"}
	organizer := &domain.Gamer{ID: "g9"}
	event := &domain.Event{ID: "e5", OrganizerID: "g9"}

	m.gamerRepo.EXPECT().GetByUID(mock.Anything, "u1").Return(gamer, nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e5").Return(event, nil)
	m.attendanceRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.gamerRepo.EXPECT().GetByID(mock.Anything, "g9").Return(organizer, nil)
	m.notifier.EXPECT().NotifySignup(mock.Anything, organizer, gamer, event).Return()

	att, err := svc.Signup(context.Background(), "e5", "u1")

	require.NoError(t, err)
	assert.Equal(t, "e5", att.EventID)
	assert.Equal(t, "g1", att.GamerID)
	assert.NotEmpty(t, att.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestEventService_Signup_MissingIdentity(t *testing.T) {
	svc, _ := newEventService(t)

	_, err := svc.Signup(context.Background(), "e5", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingIdentity)
}

func TestEventService_Signup_UnknownGamer(t *testing.T) {
	svc, m := newEventService(t)

	m.gamerRepo.EXPECT().GetByUID(mock.Anything, "ghost").Return(nil, domain.ErrGamerNotFound)

	_, err := svc.Signup(context.Background(), "e5", "ghost")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrGamerNotFound)
}

func TestEventService_Signup_EventNotFound(t *testing.T) {
	svc, m := newEventService(t)

	m.gamerRepo.EXPECT().GetByUID(mock.Anything, "u1").Return(&domain.Gamer{ID: "g1"}, nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.Signup(context.Background(), "missing", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_Signup_Duplicate(t *testing.T) {
	svc, m := newEventService(t)

	m.gamerRepo.EXPECT().GetByUID(mock.Anything, "u1").Return(&domain.Gamer{ID: "g1"}, nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e5").Return(&domain.Event{ID: "e5"}, nil)
	m.attendanceRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrAlreadyAttending)

	_, err := svc.Signup(context.Background(), "e5", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyAttending)
}

func TestEventService_Leave_Success(t *testing.T) {
	svc, m := newEventService(t)

	gamer := &domain.Gamer{ID: "g1", UID: "u1"}
	organizer := &domain.Gamer{ID: "g9"}
	event := &domain.Event{ID: "e5", OrganizerID: "g9"}

	m.gamerRepo.EXPECT().GetByUID(mock.Anything, "u1").Return(gamer, nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e5").Return(event, nil)
	m.attendanceRepo.EXPECT().DeleteByEventAndGamer(mock.Anything, "e5", "g1").Return(nil)
	m.gamerRepo.EXPECT().GetByID(mock.Anything, "g9").Return(organizer, nil)
	m.notifier.EXPECT().NotifyLeave(mock.Anything, organizer, gamer, event).Return()

	err := svc.Leave(context.Background(), "e5", "u1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestEventService_Leave_NotAttending(t *testing.T) {
	svc, m := newEventService(t)

	m.gamerRepo.EXPECT().GetByUID(mock.Anything, "u1").Return(&domain.Gamer{ID: "g1"}, nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e5").Return(&domain.Event{ID: "e5"}, nil)
	m.attendanceRepo.EXPECT().DeleteByEventAndGamer(mock.Anything, "e5", "g1").Return(domain.ErrAttendanceNotFound)

	err := svc.Leave(context.Background(), "e5", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAttendanceNotFound)
}

func TestEventService_RemindUpcoming_NotifiesAttendees(t *testing.T) {
	svc, m := newEventService(t)

	event := &domain.Event{ID: "e1", Description: "Catan night"}
	g1 := &domain.Gamer{ID: "g1"}
	g2 := &domain.Gamer{ID: "g2"}

	m.eventRepo.EXPECT().ListUnreminded(mock.Anything, 24*time.Hour).Return([]*domain.Event{event}, nil)
	m.attendanceRepo.EXPECT().ListGamerIDsByEvent(mock.Anything, "e1").Return([]string{"g1", "g2"}, nil)
	m.gamerRepo.EXPECT().GetByID(mock.Anything, "g1").Return(g1, nil)
	m.gamerRepo.EXPECT().GetByID(mock.Anything, "g2").Return(g2, nil)
	m.notifier.EXPECT().NotifyUpcoming(mock.Anything, g1, event).Return()
	m.notifier.EXPECT().NotifyUpcoming(mock.Anything, g2, event).Return()
	m.eventRepo.EXPECT().MarkReminded(mock.Anything, "e1").Return(nil)

	sent, err := svc.RemindUpcoming(context.Background(), 24*time.Hour)

	require.NoError(t, err)
	assert.Equal(t, 2, sent)
}

func TestEventService_RemindUpcoming_NoneDue(t *testing.T) {
	svc, m := newEventService(t)

	m.eventRepo.EXPECT().ListUnreminded(mock.Anything, 24*time.Hour).Return(nil, nil)

	sent, err := svc.RemindUpcoming(context.Background(), 24*time.Hour)

	require.NoError(t, err)
	assert.Zero(t, sent)
}

func TestEventService_RemindUpcoming_RepoError(t *testing.T) {
	svc, m := newEventService(t)

	m.eventRepo.EXPECT().ListUnreminded(mock.Anything, 24*time.Hour).Return(nil, errors.New("db error"))

	_, err := svc.RemindUpcoming(context.Background(), 24*time.Hour)

	require.Error(t, err)
}
