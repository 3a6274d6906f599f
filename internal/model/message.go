package model

import "time"

// Message is a row in the messages table. The table exists only so the
// overflow endpoint can provoke real constraint errors; this is still a pure
// domain model with no database-specific dependencies or tags.
type Message struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
