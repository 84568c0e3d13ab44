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

func TestGameTypeService_Create_Success(t *testing.T) {
	repo := mocks.NewMockGameTypeRepo(t)
	svc := NewGameTypeService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	gt, err := svc.Create(context.Background(), "Tabletop")

	require.NoError(t, err)
	assert.Equal(t, "Tabletop", gt.Label)
	assert.NotEmpty(t, gt.ID)
}

func TestGameTypeService_Create_EmptyLabel(t *testing.T) {
	repo := mocks.NewMockGameTypeRepo(t)
	svc := NewGameTypeService(repo)

	_, err := svc.Create(context.Background(), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGameTypeService_Delete_InUse(t *testing.T) {
	repo := mocks.NewMockGameTypeRepo(t)
	svc := NewGameTypeService(repo)

	repo.EXPECT().Delete(mock.Anything, "gt1").Return(domain.ErrInUse)

	err := svc.Delete(context.Background(), "gt1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInUse)
}

func newGameService(t *testing.T) (*GameService, *mocks.MockGameRepo, *mocks.MockGameTypeRepo, *mocks.MockGamerRepo) {
	t.Helper()
	repo := mocks.NewMockGameRepo(t)
	gameTypeRepo := mocks.NewMockGameTypeRepo(t)
	gamerRepo := mocks.NewMockGamerRepo(t)
	return NewGameService(repo, gameTypeRepo, gamerRepo), repo, gameTypeRepo, gamerRepo
}

func TestGameService_Create_Success(t *testing.T) {
	svc, repo, gameTypeRepo, gamerRepo := newGameService(t)

	input := domain.CreateGameInput{
		Title:           "Settlers of Catan",
		Maker:           "Klaus Teuber",
		NumberOfPlayers: 4,
		SkillLevel:      3,
		GameTypeID:      "gt1",
		GamerID:         "g1",
	}

	gameTypeRepo.EXPECT().GetByID(mock.Anything, "gt1").Return(&domain.GameType{ID: "gt1"}, nil)
	gamerRepo.EXPECT().GetByID(mock.Anything, "g1").Return(&domain.Gamer{ID: "g1"}, nil)
	repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(g *domain.Game) bool {
		return g.Title == input.Title && g.GameTypeID == "gt1" && g.GamerID == "g1"
	})).Return(nil)

	game, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.NotEmpty(t, game.ID)
	assert.Equal(t, 4, game.NumberOfPlayers)
}

func TestGameService_Create_EmptyTitle(t *testing.T) {
	svc, _, _, _ := newGameService(t)

	_, err := svc.Create(context.Background(), domain.CreateGameInput{GameTypeID: "gt1", GamerID: "g1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGameService_Create_GameTypeNotFound(t *testing.T) {
	svc, _, gameTypeRepo, _ := newGameService(t)

	gameTypeRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrGameTypeNotFound)

	_, err := svc.Create(context.Background(), domain.CreateGameInput{
		Title:      "Chess",
		GameTypeID: "missing",
		GamerID:    "g1",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrGameTypeNotFound)
}

func TestGameService_Update_GamerNotFound(t *testing.T) {
	svc, _, gameTypeRepo, gamerRepo := newGameService(t)

	gameTypeRepo.EXPECT().GetByID(mock.Anything, "gt1").Return(&domain.GameType{ID: "gt1"}, nil)
	gamerRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrGamerNotFound)

	err := svc.Update(context.Background(), "game1", domain.UpdateGameInput{
		Title:      "Chess",
		GameTypeID: "gt1",
		GamerID:    "missing",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrGamerNotFound)
}

func TestGameService_Delete_NotFound(t *testing.T) {
	svc, repo, _, _ := newGameService(t)

	repo.EXPECT().Delete(mock.Anything, "missing").Return(domain.ErrGameNotFound)

	err := svc.Delete(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrGameNotFound)
}
