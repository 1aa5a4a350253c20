package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/mindcase/mindcase/internal/client/client"
	"github.com/mindcase/mindcase/internal/client/models"
)

type JournalService interface {
	Load(ctx context.Context) error
	Items() []models.JournalEntry
	Get(id models.ID) (models.JournalEntry, bool)
	Create(ctx context.Context, in models.JournalInput) (models.JournalEntry, error)
	Update(ctx context.Context, id models.ID, in models.JournalInput) error
	Delete(ctx context.Context, id models.ID) error
	Err() string
	Reset()
}

type journalService struct {
	errState

	client client.Client

	mu    sync.RWMutex
	items []models.JournalEntry
}

func NewJournalService(c client.Client) JournalService {
	return &journalService{client: c}
}

func (s *journalService) Items() []models.JournalEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items)
}

func (s *journalService) Get(id models.ID) (models.JournalEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, j := range s.items {
		if j.ID == id {
			return j, true
		}
	}
	return models.JournalEntry{}, false
}

func (s *journalService) Reset() {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()
	s.ClearErr()
}

func (s *journalService) Load(ctx context.Context) error {
	s.begin()
	items, err := s.client.ListJournals(ctx)
	if err != nil {
		return s.fail(fmt.Errorf("load journals: %w", err))
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

func validateJournal(in models.JournalInput) error {
	var v validator
	v.check(!blank(in.Title), "title", "title is required")
	return v.err()
}

func (s *journalService) Create(ctx context.Context, in models.JournalInput) (models.JournalEntry, error) {
	s.begin()
	in.Title = strings.TrimSpace(in.Title)
	if err := validateJournal(in); err != nil {
		return models.JournalEntry{}, s.fail(err)
	}
	entry, err := s.client.CreateJournal(ctx, in)
	if err != nil {
		return models.JournalEntry{}, s.fail(fmt.Errorf("create journal: %w", err))
	}
	s.mu.Lock()
	s.items = append([]models.JournalEntry{entry}, s.items...)
	s.mu.Unlock()
	return entry, nil
}

func (s *journalService) Update(ctx context.Context, id models.ID, in models.JournalInput) error {
	s.begin()
	in.Title = strings.TrimSpace(in.Title)
	if err := validateJournal(in); err != nil {
		return s.fail(err)
	}
	entry, err := s.client.UpdateJournal(ctx, id, in)
	if err != nil {
		return s.fail(fmt.Errorf("update journal: %w", err))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.items, func(j models.JournalEntry) bool { return j.ID == id })
	if i < 0 {
		return nil
	}
	if entry.ID == "" {
		// backend answered without the record; apply the sent fields
		entry = s.items[i]
		entry.Title, entry.Text = in.Title, in.Text
	}
	s.items[i] = entry
	return nil
}

func (s *journalService) Delete(ctx context.Context, id models.ID) error {
	s.begin()
	if err := s.client.DeleteJournal(ctx, id); err != nil {
		return s.fail(fmt.Errorf("delete journal: %w", err))
	}
	s.mu.Lock()
	s.items = slices.DeleteFunc(s.items, func(j models.JournalEntry) bool { return j.ID == id })
	s.mu.Unlock()
	return nil
}
