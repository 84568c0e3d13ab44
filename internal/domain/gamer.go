package domain

import "time"

// Gamer is a registered profile. UID is the opaque external identifier
// supplied by the client in the Authorization header; it is unique and is
// how requests are attributed to a gamer.
type Gamer struct {
	ID             string    `json:"id"`
	UID            string    `json:"uid"`
	Bio            string    `json:"bio"`
	TelegramChatID *int64    `json:"telegram_chat_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type CreateGamerInput struct {
	UID            string
	Bio            string
	TelegramChatID *int64
}

type UpdateGamerInput struct {
	UID            string
	Bio            string
	TelegramChatID *int64
}
