package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/mindcase/mindcase/internal/server/models"
	"github.com/mindcase/mindcase/internal/server/repositories"
)

// JournalInput is the body of POST and PUT /journals.
type JournalInput struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

type JournalService struct {
	repo repositories.JournalRepository
	clock
}

func NewJournalService(repo repositories.JournalRepository) *JournalService {
	return &JournalService{repo: repo, clock: newClock()}
}

func (s *JournalService) List(ctx context.Context, userID string) ([]models.Journal, error) {
	return s.repo.List(ctx, userID)
}

func (s *JournalService) Create(ctx context.Context, userID string, in JournalInput) (models.Journal, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return models.Journal{}, invalid("title is required")
	}
	now := s.now()
	return s.repo.Create(ctx, models.Journal{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		Text:      in.Text,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *JournalService) Update(ctx context.Context, userID, id string, in JournalInput) (models.Journal, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return models.Journal{}, invalid("title is required")
	}
	now := s.now()
	return s.repo.Update(ctx, userID, id, func(j *models.Journal) {
		j.Title = title
		j.Text = in.Text
		j.UpdatedAt = now
	})
}

func (s *JournalService) Delete(ctx context.Context, userID, id string) error {
	return s.repo.Delete(ctx, userID, id)
}
