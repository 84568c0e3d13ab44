package domain

import "time"

// Date and StartTime layouts accepted on input and produced on output.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Event is a scheduled gathering tied to a Game and organized by a Gamer.
// Joined is never persisted: it is recomputed on every read relative to the
// acting gamer resolved from the request.
type Event struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	StartTime   string    `json:"time"`
	GameID      string    `json:"game_id"`
	OrganizerID string    `json:"organizer_id"`
	Joined      bool      `json:"joined"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateEventInput struct {
	Description string
	Date        string
	StartTime   string
	GameID      string
	OrganizerID string
}

type UpdateEventInput = CreateEventInput
