package client

import (
	"context"
	"time"

	"github.com/mindcase/mindcase/internal/client/models"
)

// Client is the backend contract used by the state services.
type Client interface {
	Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error)
	Signup(ctx context.Context, reg models.Registration) (models.AuthResponse, error)

	ListMoods(ctx context.Context, f models.MoodFilter) ([]models.MoodEntry, error)
	CreateMood(ctx context.Context, mood models.MoodType) (models.MoodEntry, error)
	UpdateMood(ctx context.Context, id models.ID, mood models.MoodType) (models.MoodEntry, error)
	DeleteMood(ctx context.Context, id models.ID) error
	MoodStats(ctx context.Context, from, to time.Time) (models.MoodStats, error)

	ListJournals(ctx context.Context) ([]models.JournalEntry, error)
	CreateJournal(ctx context.Context, in models.JournalInput) (models.JournalEntry, error)
	UpdateJournal(ctx context.Context, id models.ID, in models.JournalInput) (models.JournalEntry, error)
	DeleteJournal(ctx context.Context, id models.ID) error

	AddFood(ctx context.Context, in models.FoodInput) (models.FoodAdded, error)
	TodayFoods(ctx context.Context) ([]models.FoodRecord, error)
	TodayNutrition(ctx context.Context) (models.DailyNutrition, error)
	UpdateSteps(ctx context.Context, in models.StepsInput) (models.DailyNutrition, error)
	WeeklyNutrition(ctx context.Context) (models.WeeklyNutrition, error)
	DeleteFood(ctx context.Context, id models.ID) (models.DailyNutrition, error)

	SendChatMessage(ctx context.Context, chatID models.ID, message string) (models.ChatReply, error)
	NewChat(ctx context.Context) (models.Chat, error)
	ListChats(ctx context.Context) ([]models.Chat, error)
	GetChat(ctx context.Context, id models.ID) (models.Chat, error)
	DeleteChat(ctx context.Context, id models.ID) error
	ClearChat(ctx context.Context, id models.ID) error
}
