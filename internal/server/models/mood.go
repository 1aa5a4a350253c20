package models

import "time"

type MoodType string

var MoodTypes = []MoodType{
	"happy", "sad", "angry", "anxious", "calm",
	"excited", "neutral", "stressed", "tired", "motivated",
}

func (m MoodType) Valid() bool {
	for _, t := range MoodTypes {
		if t == m {
			return true
		}
	}
	return false
}

type Mood struct {
	ID        string    `json:"_id"`
	UserID    string    `json:"-"`
	MoodType  MoodType  `json:"moodType"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type MoodStats struct {
	Total        int              `json:"total"`
	Counts       map[MoodType]int `json:"counts"`
	MostFrequent MoodType         `json:"mostFrequent,omitempty"`
}
