package services

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/mindcase/mindcase/internal/client/client"
	"github.com/mindcase/mindcase/internal/client/models"
	"github.com/mindcase/mindcase/internal/timex"
)

// MoodOutcome says what SetToday did.
type MoodOutcome int

const (
	MoodUnchanged MoodOutcome = iota
	MoodCreated
	MoodUpdated
)

func (o MoodOutcome) String() string {
	switch o {
	case MoodCreated:
		return "created"
	case MoodUpdated:
		return "updated"
	default:
		return "unchanged"
	}
}

type MoodService interface {
	Load(ctx context.Context) error
	Items() []models.MoodEntry
	Create(ctx context.Context, mood models.MoodType) (models.MoodEntry, error)
	Update(ctx context.Context, id models.ID, mood models.MoodType) error
	Delete(ctx context.Context, id models.ID) error

	// Today returns the newest entry logged on now's calendar day.
	Today(now time.Time) (models.MoodEntry, bool)
	// SetToday records mood for today: no-op if already set to it, update
	// if another mood was logged today, create otherwise.
	SetToday(ctx context.Context, mood models.MoodType) (MoodOutcome, error)
	Stats(ctx context.Context, from, to time.Time) (models.MoodStats, error)

	Err() string
	Reset()
}

type moodService struct {
	errState

	client client.Client
	now    func() time.Time

	mu    sync.RWMutex
	items []models.MoodEntry
}

func NewMoodService(c client.Client) MoodService {
	return &moodService{client: c, now: time.Now}
}

func (s *moodService) Items() []models.MoodEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items)
}

func (s *moodService) Reset() {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()
	s.ClearErr()
}

func (s *moodService) Load(ctx context.Context) error {
	s.begin()
	items, err := s.client.ListMoods(ctx, models.MoodFilter{})
	if err != nil {
		return s.fail(fmt.Errorf("load moods: %w", err))
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

func validateMood(mood models.MoodType) error {
	var v validator
	v.check(mood.Valid(), "moodType", fmt.Sprintf("unknown mood %q", mood))
	return v.err()
}

func (s *moodService) Create(ctx context.Context, mood models.MoodType) (models.MoodEntry, error) {
	s.begin()
	if err := validateMood(mood); err != nil {
		return models.MoodEntry{}, s.fail(err)
	}
	entry, err := s.client.CreateMood(ctx, mood)
	if err != nil {
		return models.MoodEntry{}, s.fail(fmt.Errorf("create mood: %w", err))
	}
	s.mu.Lock()
	s.items = append([]models.MoodEntry{entry}, s.items...)
	s.mu.Unlock()
	return entry, nil
}

func (s *moodService) Update(ctx context.Context, id models.ID, mood models.MoodType) error {
	s.begin()
	if err := validateMood(mood); err != nil {
		return s.fail(err)
	}
	entry, err := s.client.UpdateMood(ctx, id, mood)
	if err != nil {
		return s.fail(fmt.Errorf("update mood: %w", err))
	}
	if entry.ID == "" {
		entry.ID = id
	}
	s.mu.Lock()
	if i := slices.IndexFunc(s.items, func(m models.MoodEntry) bool { return m.ID == id }); i >= 0 {
		if entry.CreatedAt.IsZero() {
			entry.CreatedAt = s.items[i].CreatedAt
		}
		if entry.MoodType == "" {
			entry.MoodType = mood
		}
		s.items[i] = entry
	}
	s.mu.Unlock()
	return nil
}

func (s *moodService) Delete(ctx context.Context, id models.ID) error {
	s.begin()
	if err := s.client.DeleteMood(ctx, id); err != nil {
		return s.fail(fmt.Errorf("delete mood: %w", err))
	}
	s.mu.Lock()
	s.items = slices.DeleteFunc(s.items, func(m models.MoodEntry) bool { return m.ID == id })
	s.mu.Unlock()
	return nil
}

func (s *moodService) Today(now time.Time) (models.MoodEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.items {
		if timex.SameDay(m.CreatedAt, now, now.Location()) {
			return m, true
		}
	}
	return models.MoodEntry{}, false
}

func (s *moodService) SetToday(ctx context.Context, mood models.MoodType) (MoodOutcome, error) {
	today, ok := s.Today(s.now())
	switch {
	case ok && today.MoodType == mood:
		s.begin()
		return MoodUnchanged, nil
	case ok:
		if err := s.Update(ctx, today.ID, mood); err != nil {
			return MoodUnchanged, err
		}
		return MoodUpdated, nil
	default:
		if _, err := s.Create(ctx, mood); err != nil {
			return MoodUnchanged, err
		}
		return MoodCreated, nil
	}
}

func (s *moodService) Stats(ctx context.Context, from, to time.Time) (models.MoodStats, error) {
	s.begin()
	st, err := s.client.MoodStats(ctx, from, to)
	if err != nil {
		return models.MoodStats{}, s.fail(fmt.Errorf("mood stats: %w", err))
	}
	return st, nil
}
