package models

import "time"

type Journal struct {
	ID        string    `json:"_id"`
	UserID    string    `json:"-"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
