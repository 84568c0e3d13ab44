package dto

import (
	"time"

	"github.com/Jay-Lhomme/levelup-server/internal/domain"
)

type EventResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	GameID      string `json:"game_id"`
	OrganizerID string `json:"organizer_id"`
	Joined      bool   `json:"joined"`
	CreatedAt   string `json:"created_at"`
}

type GamerResponse struct {
	ID             string `json:"id"`
	UID            string `json:"uid"`
	Bio            string `json:"bio"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type GameResponse struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Maker           string `json:"maker"`
	NumberOfPlayers int    `json:"number_of_players"`
	SkillLevel      int    `json:"skill_level"`
	GameTypeID      string `json:"game_type_id"`
	GamerID         string `json:"gamer_id"`
	CreatedAt       string `json:"created_at"`
}

type GameTypeResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type AttendanceResponse struct {
	ID        string `json:"id"`
	EventID   string `json:"event_id"`
	GamerID   string `json:"gamer_id"`
	CreatedAt string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		Description: e.Description,
		Date:        e.Date,
		Time:        e.StartTime,
		GameID:      e.GameID,
		OrganizerID: e.OrganizerID,
		Joined:      e.Joined,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}

func ToGamerResponse(g *domain.Gamer) GamerResponse {
	return GamerResponse{
		ID:             g.ID,
		UID:            g.UID,
		Bio:            g.Bio,
		TelegramChatID: g.TelegramChatID,
		CreatedAt:      g.CreatedAt.Format(time.RFC3339),
	}
}

func ToGameResponse(g *domain.Game) GameResponse {
	return GameResponse{
		ID:              g.ID,
		Title:           g.Title,
		Maker:           g.Maker,
		NumberOfPlayers: g.NumberOfPlayers,
		SkillLevel:      g.SkillLevel,
		GameTypeID:      g.GameTypeID,
		GamerID:         g.GamerID,
		CreatedAt:       g.CreatedAt.Format(time.RFC3339),
	}
}

func ToGameTypeResponse(gt *domain.GameType) GameTypeResponse {
	return GameTypeResponse{
		ID:    gt.ID,
		Label: gt.Label,
	}
}

func ToAttendanceResponse(a *domain.Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:        a.ID,
		EventID:   a.EventID,
		GamerID:   a.GamerID,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}
