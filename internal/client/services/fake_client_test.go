package services

import (
	"context"
	"sync"
	"time"

	"github.com/mindcase/mindcase/internal/client/client"
	"github.com/mindcase/mindcase/internal/client/models"
)

// fakeClient implements client.Client for service unit tests. Results and
// errors are preset per endpoint; Calls records endpoint names in order.
type fakeClient struct {
	mu    sync.Mutex
	Calls []string

	AuthRet   models.AuthResponse
	LoginErr  error
	SignupErr error
	LastCreds models.Credentials
	LastReg   models.Registration

	MoodsRet       []models.MoodEntry
	MoodsErr       error
	CreateMoodRet  models.MoodEntry
	CreateMoodErr  error
	UpdateMoodRet  models.MoodEntry
	UpdateMoodErr  error
	DeleteMoodErr  error
	StatsRet       models.MoodStats
	StatsErr       error
	LastMoodID     models.ID
	LastMood       models.MoodType
	LastMoodFilter models.MoodFilter

	JournalsRet      []models.JournalEntry
	JournalsErr      error
	CreateJournalRet models.JournalEntry
	CreateJournalErr error
	UpdateJournalRet models.JournalEntry
	UpdateJournalErr error
	DeleteJournalErr error
	LastJournal      models.JournalInput

	AddFoodRet      models.FoodAdded
	AddFoodErr      error
	FoodsRet        []models.FoodRecord
	FoodsErr        error
	TodayRet        models.DailyNutrition
	TodayErr        error
	StepsRet        models.DailyNutrition
	StepsErr        error
	WeeklyRet       models.WeeklyNutrition
	WeeklyErr       error
	DeleteFoodRet   models.DailyNutrition
	DeleteFoodErr   error
	LastFood        models.FoodInput
	LastSteps       models.StepsInput
	LastDeletedFood models.ID

	SendRet       models.ChatReply
	SendErr       error
	LastChatID    models.ID
	LastMessage   string
	NewChatRet    models.Chat
	NewChatErr    error
	ChatsRet      []models.Chat
	ChatsErr      error
	GetChatRet    models.Chat
	GetChatErr    error
	DeleteChatErr error
	ClearChatErr  error
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) record(name string) {
	f.mu.Lock()
	f.Calls = append(f.Calls, name)
	f.mu.Unlock()
}

func (f *fakeClient) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.Calls...)
}

func (f *fakeClient) Login(_ context.Context, creds models.Credentials) (models.AuthResponse, error) {
	f.record("Login")
	f.LastCreds = creds
	return f.AuthRet, f.LoginErr
}

func (f *fakeClient) Signup(_ context.Context, reg models.Registration) (models.AuthResponse, error) {
	f.record("Signup")
	f.LastReg = reg
	return f.AuthRet, f.SignupErr
}

func (f *fakeClient) ListMoods(_ context.Context, flt models.MoodFilter) ([]models.MoodEntry, error) {
	f.record("ListMoods")
	f.LastMoodFilter = flt
	return f.MoodsRet, f.MoodsErr
}

func (f *fakeClient) CreateMood(_ context.Context, mood models.MoodType) (models.MoodEntry, error) {
	f.record("CreateMood")
	f.LastMood = mood
	return f.CreateMoodRet, f.CreateMoodErr
}

func (f *fakeClient) UpdateMood(_ context.Context, id models.ID, mood models.MoodType) (models.MoodEntry, error) {
	f.record("UpdateMood")
	f.LastMoodID, f.LastMood = id, mood
	return f.UpdateMoodRet, f.UpdateMoodErr
}

func (f *fakeClient) DeleteMood(_ context.Context, id models.ID) error {
	f.record("DeleteMood")
	f.LastMoodID = id
	return f.DeleteMoodErr
}

func (f *fakeClient) MoodStats(context.Context, time.Time, time.Time) (models.MoodStats, error) {
	f.record("MoodStats")
	return f.StatsRet, f.StatsErr
}

func (f *fakeClient) ListJournals(context.Context) ([]models.JournalEntry, error) {
	f.record("ListJournals")
	return f.JournalsRet, f.JournalsErr
}

func (f *fakeClient) CreateJournal(_ context.Context, in models.JournalInput) (models.JournalEntry, error) {
	f.record("CreateJournal")
	f.LastJournal = in
	return f.CreateJournalRet, f.CreateJournalErr
}

func (f *fakeClient) UpdateJournal(_ context.Context, _ models.ID, in models.JournalInput) (models.JournalEntry, error) {
	f.record("UpdateJournal")
	f.LastJournal = in
	return f.UpdateJournalRet, f.UpdateJournalErr
}

func (f *fakeClient) DeleteJournal(context.Context, models.ID) error {
	f.record("DeleteJournal")
	return f.DeleteJournalErr
}

func (f *fakeClient) AddFood(_ context.Context, in models.FoodInput) (models.FoodAdded, error) {
	f.record("AddFood")
	f.LastFood = in
	return f.AddFoodRet, f.AddFoodErr
}

func (f *fakeClient) TodayFoods(context.Context) ([]models.FoodRecord, error) {
	f.record("TodayFoods")
	return f.FoodsRet, f.FoodsErr
}

func (f *fakeClient) TodayNutrition(context.Context) (models.DailyNutrition, error) {
	f.record("TodayNutrition")
	return f.TodayRet, f.TodayErr
}

func (f *fakeClient) UpdateSteps(_ context.Context, in models.StepsInput) (models.DailyNutrition, error) {
	f.record("UpdateSteps")
	f.LastSteps = in
	return f.StepsRet, f.StepsErr
}

func (f *fakeClient) WeeklyNutrition(context.Context) (models.WeeklyNutrition, error) {
	f.record("WeeklyNutrition")
	return f.WeeklyRet, f.WeeklyErr
}

func (f *fakeClient) DeleteFood(_ context.Context, id models.ID) (models.DailyNutrition, error) {
	f.record("DeleteFood")
	f.LastDeletedFood = id
	return f.DeleteFoodRet, f.DeleteFoodErr
}

func (f *fakeClient) SendChatMessage(_ context.Context, chatID models.ID, message string) (models.ChatReply, error) {
	f.record("SendChatMessage")
	f.LastChatID, f.LastMessage = chatID, message
	return f.SendRet, f.SendErr
}

func (f *fakeClient) NewChat(context.Context) (models.Chat, error) {
	f.record("NewChat")
	return f.NewChatRet, f.NewChatErr
}

func (f *fakeClient) ListChats(context.Context) ([]models.Chat, error) {
	f.record("ListChats")
	return f.ChatsRet, f.ChatsErr
}

func (f *fakeClient) GetChat(context.Context, models.ID) (models.Chat, error) {
	f.record("GetChat")
	return f.GetChatRet, f.GetChatErr
}

func (f *fakeClient) DeleteChat(context.Context, models.ID) error {
	f.record("DeleteChat")
	return f.DeleteChatErr
}

func (f *fakeClient) ClearChat(context.Context, models.ID) error {
	f.record("ClearChat")
	return f.ClearChatErr
}
