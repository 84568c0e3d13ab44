package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Jay-Lhomme/levelup-server/internal/domain"
	"github.com/Jay-Lhomme/levelup-server/internal/service/ports/mocks"
)

func TestGamerService_ResolveByUID_Success(t *testing.T) {
	repo := mocks.NewMockGamerRepo(t)
	svc := NewGamerService(repo)

	expected := &domain.Gamer{ID: "g1", UID: "u1"}
	repo.EXPECT().GetByUID(mock.Anything, "u1").Return(expected, nil)

	gamer, err := svc.ResolveByUID(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, "g1", gamer.ID)
}

func TestGamerService_ResolveByUID_Missing(t *testing.T) {
	svc := NewGamerService(nil)

	_, err := svc.ResolveByUID(context.Background(), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingIdentity)
}

func TestGamerService_ResolveByUID_Unknown(t *testing.T) {
	repo := mocks.NewMockGamerRepo(t)
	svc := NewGamerService(repo)

	repo.EXPECT().GetByUID(mock.Anything, "ghost").Return(nil, domain.ErrGamerNotFound)

	_, err := svc.ResolveByUID(context.Background(), "ghost")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrGamerNotFound)
}

func TestGamerService_Register_Success(t *testing.T) {
	repo := mocks.NewMockGamerRepo(t)
	svc := NewGamerService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	gamer, err := svc.Register(context.Background(), domain.CreateGamerInput{UID: "u1", Bio: "loves Catan"})

	require.NoError(t, err)
	assert.Equal(t, "u1", gamer.UID)
	assert.Equal(t, "loves Catan", gamer.Bio)
	assert.NotEmpty(t, gamer.ID)
}

func TestGamerService_Register_EmptyUID(t *testing.T) {
	svc := NewGamerService(nil)

	_, err := svc.Register(context.Background(), domain.CreateGamerInput{Bio: "no uid"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGamerService_Register_UIDTaken(t *testing.T) {
	repo := mocks.NewMockGamerRepo(t)
	svc := NewGamerService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrUIDTaken)

	_, err := svc.Register(context.Background(), domain.CreateGamerInput{UID: "taken"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUIDTaken)
}

func TestGamerService_Update_EmptyUID(t *testing.T) {
	svc := NewGamerService(nil)

	err := svc.Update(context.Background(), "g1", domain.UpdateGamerInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGamerService_Update_NotFound(t *testing.T) {
	repo := mocks.NewMockGamerRepo(t)
	svc := NewGamerService(repo)

	repo.EXPECT().Update(mock.Anything, mock.Anything).Return(domain.ErrGamerNotFound)

	err := svc.Update(context.Background(), "missing", domain.UpdateGamerInput{UID: "u1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrGamerNotFound)
}

func TestGamerService_List_Error(t *testing.T) {
	repo := mocks.NewMockGamerRepo(t)
	svc := NewGamerService(repo)

	repo.EXPECT().List(mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.List(context.Background())

	require.Error(t, err)
}

func TestGamerService_Delete_Success(t *testing.T) {
	repo := mocks.NewMockGamerRepo(t)
	svc := NewGamerService(repo)

	repo.EXPECT().Delete(mock.Anything, "g1").Return(nil)

	require.NoError(t, svc.Delete(context.Background(), "g1"))
}
