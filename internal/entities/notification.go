package entities

import "time"

type Notification struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
