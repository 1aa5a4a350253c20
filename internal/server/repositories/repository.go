// Package repositories declares the storage contracts of the development
// backend. Every per-user lookup takes the owner id; records that belong to
// someone else are reported as common.ErrNotFound.
package repositories

import (
	"context"
	"time"

	"github.com/mindcase/mindcase/internal/server/models"
)

type UserRepository interface {
	// Create fails with common.ErrAlreadyExists when the email is taken.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

type MoodRepository interface {
	Create(ctx context.Context, m models.Mood) (models.Mood, error)
	// List returns the user's moods, newest first.
	List(ctx context.Context, userID string) ([]models.Mood, error)
	Update(ctx context.Context, userID, id string, fn func(*models.Mood)) (models.Mood, error)
	Delete(ctx context.Context, userID, id string) error
}

type JournalRepository interface {
	Create(ctx context.Context, j models.Journal) (models.Journal, error)
	List(ctx context.Context, userID string) ([]models.Journal, error)
	Update(ctx context.Context, userID, id string, fn func(*models.Journal)) (models.Journal, error)
	Delete(ctx context.Context, userID, id string) error
}

type FoodRepository interface {
	Create(ctx context.Context, f models.Food) (models.Food, error)
	// ListBetween returns foods logged in [from, to), oldest first.
	ListBetween(ctx context.Context, userID string, from, to time.Time) ([]models.Food, error)
	Delete(ctx context.Context, userID, id string) (models.Food, error)
}

type StepsRepository interface {
	// Get returns 0 for a day with no record.
	Get(ctx context.Context, userID, date string) (int, error)
	Set(ctx context.Context, userID, date string, steps int) error
}

type ChatRepository interface {
	Create(ctx context.Context, c models.Chat) (models.Chat, error)
	// List returns the user's chats, most recently updated first.
	List(ctx context.Context, userID string) ([]models.Chat, error)
	Get(ctx context.Context, userID, id string) (models.Chat, error)
	Update(ctx context.Context, userID, id string, fn func(*models.Chat)) (models.Chat, error)
	Delete(ctx context.Context, userID, id string) error
}

// Manager hands out the repositories of one storage backend.
type Manager interface {
	Users() UserRepository
	Moods() MoodRepository
	Journals() JournalRepository
	Foods() FoodRepository
	Steps() StepsRepository
	Chats() ChatRepository
}
