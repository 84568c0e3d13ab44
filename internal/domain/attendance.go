package domain

import "time"

// Attendance is the join-table row linking a Gamer to an Event they attend.
// The store enforces at most one row per (event, gamer) pair.
type Attendance struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	GamerID   string    `json:"gamer_id"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateAttendanceInput struct {
	EventID string
	GamerID string
}

type UpdateAttendanceInput = CreateAttendanceInput
