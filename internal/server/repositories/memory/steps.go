package memory

import (
	"context"
	"sync"
)

type stepsKey struct {
	userID string
	date   string
}

type StepsRepository struct {
	mu    sync.RWMutex
	steps map[stepsKey]int
}

func NewStepsRepository() *StepsRepository {
	return &StepsRepository{steps: make(map[stepsKey]int)}
}

func (r *StepsRepository) Get(_ context.Context, userID, date string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.steps[stepsKey{userID, date}], nil
}

func (r *StepsRepository) Set(_ context.Context, userID, date string, steps int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.steps[stepsKey{userID, date}] = steps
	return nil
}
