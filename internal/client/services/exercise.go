package services

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/mindcase/mindcase/internal/client/exercises"
	"github.com/mindcase/mindcase/internal/client/models"
)

// Catalog is satisfied by *exercises.Catalog.
type Catalog interface {
	Fetch(ctx context.Context, f exercises.Filter) (exercises.Result, error)
}

// ExerciseView is what the exercise list shows.
type ExerciseView struct {
	Items     []models.Exercise
	FromCache bool
	// Fallback is set when Items is the bundled list.
	Fallback bool
	// Empty is set when the catalog answered with no matches.
	Empty bool
}

type ExerciseService interface {
	Browse(ctx context.Context, f exercises.Filter) (ExerciseView, error)
	Current() ExerciseView
	Find(name string) (models.Exercise, bool)
	Err() string
}

type exerciseService struct {
	errState

	catalog Catalog

	mu      sync.RWMutex
	current ExerciseView
}

func NewExerciseService(c Catalog) ExerciseService {
	return &exerciseService{catalog: c}
}

func (s *exerciseService) Current() ExerciseView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v := s.current
	v.Items = slices.Clone(v.Items)
	return v
}

func (s *exerciseService) Find(name string) (models.Exercise, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexOf(s.current.Items, name); i >= 0 {
		return s.current.Items[i], true
	}
	return models.Exercise{}, false
}

// Browse fetches the catalog. When the upstream is down the bundled list is
// shown and no error is recorded; other failures are recorded and the
// bundled list is shown alongside them. An empty result also shows the
// bundled list.
func (s *exerciseService) Browse(ctx context.Context, f exercises.Filter) (ExerciseView, error) {
	s.begin()
	res, err := s.catalog.Fetch(ctx, f)
	if err != nil {
		view := ExerciseView{Items: exercises.Fallback(), Fallback: true}
		s.set(view)
		if exercises.IsRecoverable(err) {
			return view, nil
		}
		return view, s.fail(fmt.Errorf("browse exercises: %w", err))
	}
	view := ExerciseView{Items: res.Items, FromCache: res.FromCache}
	if len(view.Items) == 0 {
		view.Items, view.Fallback, view.Empty = exercises.Fallback(), true, true
	}
	s.set(view)
	return view, nil
}

func (s *exerciseService) set(v ExerciseView) {
	s.mu.Lock()
	s.current = v
	s.mu.Unlock()
}
