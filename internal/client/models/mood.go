package models

import (
	"fmt"
	"strings"
	"time"
)

// MoodType is one of the fixed moods a user can log.
type MoodType string

const (
	MoodHappy     MoodType = "happy"
	MoodSad       MoodType = "sad"
	MoodAngry     MoodType = "angry"
	MoodAnxious   MoodType = "anxious"
	MoodCalm      MoodType = "calm"
	MoodExcited   MoodType = "excited"
	MoodNeutral   MoodType = "neutral"
	MoodStressed  MoodType = "stressed"
	MoodTired     MoodType = "tired"
	MoodMotivated MoodType = "motivated"
)

// MoodTypes lists every valid mood in display order.
var MoodTypes = []MoodType{
	MoodHappy, MoodSad, MoodAngry, MoodAnxious, MoodCalm,
	MoodExcited, MoodNeutral, MoodStressed, MoodTired, MoodMotivated,
}

func (m MoodType) Valid() bool {
	for _, t := range MoodTypes {
		if t == m {
			return true
		}
	}
	return false
}

// ParseMoodType is case-insensitive.
func ParseMoodType(s string) (MoodType, error) {
	m := MoodType(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("unknown mood %q", s)
	}
	return m, nil
}

type MoodEntry struct {
	ID        ID        `json:"_id"`
	MoodType  MoodType  `json:"moodType"`
	CreatedAt time.Time `json:"createdAt"`
}

// MoodFilter narrows a mood listing. Zero fields are not sent.
type MoodFilter struct {
	From, To time.Time
	MoodType MoodType
}

// MoodStats summarises moods in a date window. Computed by the backend.
type MoodStats struct {
	Total        int              `json:"total"`
	Counts       map[MoodType]int `json:"counts"`
	MostFrequent MoodType         `json:"mostFrequent,omitempty"`
}
