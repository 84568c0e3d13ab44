package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Jay-Lhomme/levelup-server/internal/domain"
	"github.com/Jay-Lhomme/levelup-server/internal/handler/dto"
	hmocks "github.com/Jay-Lhomme/levelup-server/internal/handler/mocks"
	"github.com/Jay-Lhomme/levelup-server/internal/router"
)

type handlerMocks struct {
	eventSvc      *hmocks.MockEventSvc
	gamerSvc      *hmocks.MockGamerSvc
	gameSvc       *hmocks.MockGameSvc
	gameTypeSvc   *hmocks.MockGameTypeSvc
	attendanceSvc *hmocks.MockAttendanceSvc
}

func setupRouter(t *testing.T) (handlerMocks, http.Handler) {
	t.Helper()
	m := handlerMocks{
		eventSvc:      hmocks.NewMockEventSvc(t),
		gamerSvc:      hmocks.NewMockGamerSvc(t),
		gameSvc:       hmocks.NewMockGameSvc(t),
		gameTypeSvc:   hmocks.NewMockGameTypeSvc(t),
		attendanceSvc: hmocks.NewMockAttendanceSvc(t),
	}

	h := NewHandler(m.eventSvc, m.gamerSvc, m.gameSvc, m.gameTypeSvc, m.attendanceSvc)

	return m, router.InitRouter("test", h)
}

// --- Events ---

func TestHandler_ListEvents_PassesIdentityAndFilter(t *testing.T) {
	m, r := setupRouter(t)

	events := []*domain.Event{
		{ID: "e1", Description: "Game night", Date: "2025-07-01", StartTime: "18:30", Joined: true, CreatedAt: time.Now()},
		{ID: "e2", Description: "Tournament", Date: "2025-07-02", StartTime: "12:00", CreatedAt: time.Now()},
	}
	m.eventSvc.EXPECT().List(mock.Anything, "game-1", "u1").Return(events, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events?game=game-1", nil)
	req.Header.Set("Authorization", "u1")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.True(t, resp[0].Joined)
	assert.False(t, resp[1].Joined)
}

func TestHandler_ListEvents_NoIdentity(t *testing.T) {
	m, r := setupRouter(t)

	m.eventSvc.EXPECT().List(mock.Anything, "", "").Return(nil, domain.ErrMissingIdentity)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	event := &domain.Event{
		ID:          eventID,
		Description: "Game night",
		Date:        "2025-07-01",
		StartTime:   "18:30",
		Joined:      true,
		CreatedAt:   time.Now(),
	}
	m.eventSvc.EXPECT().Get(mock.Anything, eventID, "u1").Return(event, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/"+eventID, nil)
	req.Header.Set("Authorization", "u1")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, eventID, resp.ID)
	assert.True(t, resp.Joined)
	assert.Equal(t, "18:30", resp.Time)
}

func TestHandler_GetEvent_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.eventSvc.EXPECT().Get(mock.Anything, eventID, "u1").Return(nil, domain.ErrEventNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/"+eventID, nil)
	req.Header.Set("Authorization", "u1")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CreateEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	event := &domain.Event{
		ID:          uuid.New().String(),
		Description: "Game night",
		Date:        "2025-07-01",
		StartTime:   "18:30",
		GameID:      uuid.New().String(),
		OrganizerID: uuid.New().String(),
		CreatedAt:   time.Now(),
	}
	m.eventSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(event, nil)

	body, _ := json.Marshal(dto.CreateEventRequest{
		Description: "Game night",
		Date:        "2025-07-01",
		Time:        "18:30",
		GameID:      event.GameID,
		OrganizerID: event.OrganizerID,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Game night", resp.Description)
}

func TestHandler_CreateEvent_BadRequest(t *testing.T) {
	_, r := setupRouter(t)

	body := []byte(`{"description":""}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.eventSvc.EXPECT().Update(mock.Anything, eventID, mock.Anything).Return(nil)

	body, _ := json.Marshal(dto.UpdateEventRequest{
		Description: "Rescheduled",
		Date:        "2025-07-08",
		Time:        "19:00",
		GameID:      uuid.New().String(),
		OrganizerID: uuid.New().String(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/events/"+eventID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_DeleteEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.eventSvc.EXPECT().Delete(mock.Anything, eventID).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/events/"+eventID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

// --- Signup / leave ---

func TestHandler_SignupEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	att := &domain.Attendance{
		ID:        uuid.New().String(),
		EventID:   eventID,
		GamerID:   uuid.New().String(),
		CreatedAt: time.Now(),
	}
	m.eventSvc.EXPECT().Signup(mock.Anything, eventID, "u1").Return(att, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/"+eventID+"/signup", nil)
	req.Header.Set("Authorization", "u1")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.AttendanceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, att.ID, resp.ID)
	assert.Equal(t, eventID, resp.EventID)
}

func TestHandler_SignupEvent_MissingIdentity(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.eventSvc.EXPECT().Signup(mock.Anything, eventID, "").Return(nil, domain.ErrMissingIdentity)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/"+eventID+"/signup", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SignupEvent_UnknownGamer(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.eventSvc.EXPECT().Signup(mock.Anything, eventID, "ghost").Return(nil, domain.ErrGamerNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/"+eventID+"/signup", nil)
	req.Header.Set("Authorization", "ghost")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_SignupEvent_Duplicate(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.eventSvc.EXPECT().Signup(mock.Anything, eventID, "u1").Return(nil, domain.ErrAlreadyAttending)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/"+eventID+"/signup", nil)
	req.Header.Set("Authorization", "u1")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_LeaveEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.eventSvc.EXPECT().Leave(mock.Anything, eventID, "u1").Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/events/"+eventID+"/leave", nil)
	req.Header.Set("Authorization", "u1")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_LeaveEvent_NotAttending(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.eventSvc.EXPECT().Leave(mock.Anything, eventID, "u1").Return(domain.ErrAttendanceNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/events/"+eventID+"/leave", nil)
	req.Header.Set("Authorization", "u1")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Gamers ---

func TestHandler_RegisterGamer_Success(t *testing.T) {
	m, r := setupRouter(t)

	gamer := &domain.Gamer{
		ID:        uuid.New().String(),
		UID:       "u1",
		Bio:       "dice goblin",
		CreatedAt: time.Now(),
	}
	m.gamerSvc.EXPECT().Register(mock.Anything, mock.Anything).Return(gamer, nil)

	body, _ := json.Marshal(dto.CreateGamerRequest{UID: "u1", Bio: "dice goblin"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.GamerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "u1", resp.UID)
}

func TestHandler_RegisterGamer_UIDTaken(t *testing.T) {
	m, r := setupRouter(t)

	m.gamerSvc.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domain.ErrUIDTaken)

	body, _ := json.Marshal(dto.CreateGamerRequest{UID: "taken"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/gamers", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_RegisterGamer_BadRequest(t *testing.T) {
	_, r := setupRouter(t)

	body := []byte(`{}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetGamer_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/gamers/bad-id", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DeleteGamer_Success(t *testing.T) {
	m, r := setupRouter(t)

	gamerID := uuid.New().String()
	m.gamerSvc.EXPECT().Delete(mock.Anything, gamerID).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/gamers/"+gamerID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

// --- Games and game types ---

func TestHandler_CreateGame_Success(t *testing.T) {
	m, r := setupRouter(t)

	game := &domain.Game{
		ID:         uuid.New().String(),
		Title:      "Catan",
		GameTypeID: uuid.New().String(),
		GamerID:    uuid.New().String(),
		CreatedAt:  time.Now(),
	}
	m.gameSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(game, nil)

	body, _ := json.Marshal(dto.CreateGameRequest{
		Title:      "Catan",
		GameTypeID: game.GameTypeID,
		GamerID:    game.GamerID,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/games", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.GameResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Catan", resp.Title)
}

func TestHandler_ListGames_Success(t *testing.T) {
	m, r := setupRouter(t)

	games := []*domain.Game{
		{ID: "g1", Title: "Catan", CreatedAt: time.Now()},
	}
	m.gameSvc.EXPECT().List(mock.Anything).Return(games, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/games", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.GameResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_DeleteGameType_InUse(t *testing.T) {
	m, r := setupRouter(t)

	gtID := uuid.New().String()
	m.gameTypeSvc.EXPECT().Delete(mock.Anything, gtID).Return(domain.ErrInUse)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/gametypes/"+gtID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateGameType_Success(t *testing.T) {
	m, r := setupRouter(t)

	gt := &domain.GameType{ID: uuid.New().String(), Label: "Tabletop"}
	m.gameTypeSvc.EXPECT().Create(mock.Anything, "Tabletop").Return(gt, nil)

	body, _ := json.Marshal(dto.GameTypeRequest{Label: "Tabletop"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/gametypes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.GameTypeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Tabletop", resp.Label)
}

// --- Attendances ---

func TestHandler_CreateAttendance_Success(t *testing.T) {
	m, r := setupRouter(t)

	att := &domain.Attendance{
		ID:        uuid.New().String(),
		EventID:   uuid.New().String(),
		GamerID:   uuid.New().String(),
		CreatedAt: time.Now(),
	}
	m.attendanceSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(att, nil)

	body, _ := json.Marshal(dto.CreateAttendanceRequest{EventID: att.EventID, GamerID: att.GamerID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/attendances", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CreateAttendance_Duplicate(t *testing.T) {
	m, r := setupRouter(t)

	m.attendanceSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrAlreadyAttending)

	body, _ := json.Marshal(dto.CreateAttendanceRequest{
		EventID: uuid.New().String(),
		GamerID: uuid.New().String(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/attendances", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.eventSvc.EXPECT().Get(mock.Anything, eventID, "u1").Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/"+eventID, nil)
	req.Header.Set("Authorization", "u1")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
