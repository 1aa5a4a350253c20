package services

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/mindcase/mindcase/internal/server/models"
	"github.com/mindcase/mindcase/internal/server/repositories"
)

type MoodService struct {
	repo repositories.MoodRepository
	clock
}

func NewMoodService(repo repositories.MoodRepository) *MoodService {
	return &MoodService{repo: repo, clock: newClock()}
}

// MoodFilter narrows a listing. From and To are calendar days, inclusive;
// zero values leave that side open and an empty MoodType matches all.
type MoodFilter struct {
	From, To time.Time
	MoodType models.MoodType
}

func (f MoodFilter) match(m models.Mood) bool {
	if !f.From.IsZero() && m.CreatedAt.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && !m.CreatedAt.Before(f.To.AddDate(0, 0, 1)) {
		return false
	}
	return f.MoodType == "" || m.MoodType == f.MoodType
}

// List returns the user's moods newest first, narrowed by f.
func (s *MoodService) List(ctx context.Context, userID string, f MoodFilter) ([]models.Mood, error) {
	if f.MoodType != "" && !f.MoodType.Valid() {
		return nil, invalid("unknown mood type %q", f.MoodType)
	}
	moods, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(moods, func(m models.Mood) bool { return !f.match(m) }), nil
}

func (s *MoodService) Create(ctx context.Context, userID string, mood models.MoodType) (models.Mood, error) {
	if !mood.Valid() {
		return models.Mood{}, invalid("unknown mood type %q", mood)
	}
	now := s.now()
	return s.repo.Create(ctx, models.Mood{
		ID:        uuid.NewString(),
		UserID:    userID,
		MoodType:  mood,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *MoodService) Update(ctx context.Context, userID, id string, mood models.MoodType) (models.Mood, error) {
	if !mood.Valid() {
		return models.Mood{}, invalid("unknown mood type %q", mood)
	}
	now := s.now()
	return s.repo.Update(ctx, userID, id, func(m *models.Mood) {
		m.MoodType = mood
		m.UpdatedAt = now
	})
}

func (s *MoodService) Delete(ctx context.Context, userID, id string) error {
	return s.repo.Delete(ctx, userID, id)
}

// Stats counts moods created within [from, to]; both bounds are calendar
// days and either may be zero for an open end. Ties for MostFrequent go to
// the mood listed first in models.MoodTypes.
func (s *MoodService) Stats(ctx context.Context, userID string, from, to time.Time) (models.MoodStats, error) {
	moods, err := s.List(ctx, userID, MoodFilter{From: from, To: to})
	if err != nil {
		return models.MoodStats{}, err
	}

	stats := models.MoodStats{Counts: make(map[models.MoodType]int)}
	for _, m := range moods {
		stats.Counts[m.MoodType]++
		stats.Total++
	}

	best := 0
	for _, t := range models.MoodTypes {
		if c := stats.Counts[t]; c > best {
			best = c
			stats.MostFrequent = t
		}
	}
	return stats, nil
}

// ParseDay parses a YYYY-MM-DD query value in the service's zone. An empty
// string yields the zero time.
func (s *MoodService) ParseDay(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(dateLayout, v, s.loc)
	if err != nil {
		return time.Time{}, invalid("invalid date %q", v)
	}
	return t, nil
}
