package models

import "time"

type JournalEntry struct {
	ID        ID        `json:"_id"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// JournalInput is the body of create and update; both fields are always sent.
type JournalInput struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}
