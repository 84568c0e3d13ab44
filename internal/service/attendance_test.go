package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Jay-Lhomme/levelup-server/internal/domain"
	"github.com/Jay-Lhomme/levelup-server/internal/service/ports/mocks"
)

func newAttendanceService(t *testing.T) (*AttendanceService, *mocks.MockAttendanceRepo, *mocks.MockEventRepo, *mocks.MockGamerRepo) {
	t.Helper()
	repo := mocks.NewMockAttendanceRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	gamerRepo := mocks.NewMockGamerRepo(t)
	return NewAttendanceService(repo, eventRepo, gamerRepo), repo, eventRepo, gamerRepo
}

func TestAttendanceService_Create_Success(t *testing.T) {
	svc, repo, eventRepo, gamerRepo := newAttendanceService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	gamerRepo.EXPECT().GetByID(mock.Anything, "g1").Return(&domain.Gamer{ID: "g1"}, nil)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	att, err := svc.Create(context.Background(), domain.CreateAttendanceInput{EventID: "e1", GamerID: "g1"})

	require.NoError(t, err)
	assert.Equal(t, "e1", att.EventID)
	assert.Equal(t, "g1", att.GamerID)
	assert.NotEmpty(t, att.ID)
}

func TestAttendanceService_Create_EventNotFound(t *testing.T) {
	svc, _, eventRepo, _ := newAttendanceService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.Create(context.Background(), domain.CreateAttendanceInput{EventID: "missing", GamerID: "g1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestAttendanceService_Create_GamerNotFound(t *testing.T) {
	svc, _, eventRepo, gamerRepo := newAttendanceService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	gamerRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrGamerNotFound)

	_, err := svc.Create(context.Background(), domain.CreateAttendanceInput{EventID: "e1", GamerID: "missing"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrGamerNotFound)
}

func TestAttendanceService_Create_Duplicate(t *testing.T) {
	svc, repo, eventRepo, gamerRepo := newAttendanceService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	gamerRepo.EXPECT().GetByID(mock.Anything, "g1").Return(&domain.Gamer{ID: "g1"}, nil)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrAlreadyAttending)

	_, err := svc.Create(context.Background(), domain.CreateAttendanceInput{EventID: "e1", GamerID: "g1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyAttending)
}

func TestAttendanceService_IsAttending(t *testing.T) {
	svc, repo, _, _ := newAttendanceService(t)

	repo.EXPECT().IsAttending(mock.Anything, "g1", "e1").Return(true, nil)

	attending, err := svc.IsAttending(context.Background(), "g1", "e1")

	require.NoError(t, err)
	assert.True(t, attending)
}

func TestAttendanceService_Delete_NotFound(t *testing.T) {
	svc, repo, _, _ := newAttendanceService(t)

	repo.EXPECT().Delete(mock.Anything, "missing").Return(domain.ErrAttendanceNotFound)

	err := svc.Delete(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAttendanceNotFound)
}
