package services

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"github.com/mindcase/mindcase/internal/client/models"
	"github.com/mindcase/mindcase/internal/client/repositories/kv"
)

// FavoritesService keeps favorite exercises on this device only. The whole
// list is rewritten on every toggle; exercises are matched by Identity.
type FavoritesService interface {
	Load(ctx context.Context) error
	Toggle(ctx context.Context, ex models.Exercise) (added bool, err error)
	IsFavorite(name string) bool
	Items() []models.Exercise
	Err() string
}

type favoritesService struct {
	errState

	store kv.Repository

	mu    sync.RWMutex
	items []models.Exercise
}

func NewFavoritesService(store kv.Repository) FavoritesService {
	return &favoritesService{store: store}
}

func (s *favoritesService) Items() []models.Exercise {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items)
}

func (s *favoritesService) IsFavorite(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return indexOf(s.items, name) >= 0
}

func indexOf(items []models.Exercise, name string) int {
	return slices.IndexFunc(items, func(e models.Exercise) bool { return e.Identity() == name })
}

// Load reads the persisted list. A missing or unreadable value yields an
// empty list; only store failures are reported.
func (s *favoritesService) Load(ctx context.Context) error {
	s.begin()
	raw, ok, err := s.store.Get(ctx, kv.KeyFavorites)
	if err != nil {
		s.replace(nil)
		return s.fail(fmt.Errorf("load favorites: %w", err))
	}
	var items []models.Exercise
	if ok {
		if err := json.Unmarshal([]byte(raw), &items); err != nil {
			items = nil
		}
	}
	s.replace(items)
	return nil
}

func (s *favoritesService) replace(items []models.Exercise) {
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
}

func (s *favoritesService) Toggle(ctx context.Context, ex models.Exercise) (bool, error) {
	s.begin()
	id := ex.Identity()
	if id == "" {
		return false, s.fail(&ValidationError{Fields: map[string]string{"name": "exercise has no name"}})
	}

	s.mu.Lock()
	next := slices.Clone(s.items)
	added := false
	if i := indexOf(next, id); i >= 0 {
		next = slices.Delete(next, i, i+1)
	} else {
		next = append(next, ex)
		added = true
	}
	s.items = next
	s.mu.Unlock()

	b, err := json.Marshal(next)
	if err == nil {
		err = s.store.Set(ctx, kv.KeyFavorites, string(b))
	}
	if err != nil {
		return added, s.fail(fmt.Errorf("save favorites: %w", err))
	}
	return added, nil
}
