package dto

type CreateEventRequest struct {
	Description string `json:"description" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	GameID      string `json:"game_id" binding:"required,uuid"`
	OrganizerID string `json:"organizer_id" binding:"required,uuid"`
}

type UpdateEventRequest = CreateEventRequest

type CreateGamerRequest struct {
	UID            string `json:"uid" binding:"required"`
	Bio            string `json:"bio"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type UpdateGamerRequest = CreateGamerRequest

type CreateGameRequest struct {
	Title           string `json:"title" binding:"required"`
	Maker           string `json:"maker"`
	NumberOfPlayers int    `json:"number_of_players"`
	SkillLevel      int    `json:"skill_level"`
	GameTypeID      string `json:"game_type_id" binding:"required,uuid"`
	GamerID         string `json:"gamer_id" binding:"required,uuid"`
}

type UpdateGameRequest = CreateGameRequest

type GameTypeRequest struct {
	Label string `json:"label" binding:"required"`
}

type CreateAttendanceRequest struct {
	EventID string `json:"event_id" binding:"required,uuid"`
	GamerID string `json:"gamer_id" binding:"required,uuid"`
}

type UpdateAttendanceRequest = CreateAttendanceRequest
