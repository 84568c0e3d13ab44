package domain

import "time"

type GameType struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Game struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Maker           string    `json:"maker"`
	NumberOfPlayers int       `json:"number_of_players"`
	SkillLevel      int       `json:"skill_level"`
	GameTypeID      string    `json:"game_type_id"`
	GamerID         string    `json:"gamer_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type CreateGameInput struct {
	Title           string
	Maker           string
	NumberOfPlayers int
	SkillLevel      int
	GameTypeID      string
	GamerID         string
}

type UpdateGameInput = CreateGameInput
