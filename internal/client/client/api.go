package client

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/mindcase/mindcase/internal/client/models"
)

const dateLayout = "2006-01-02"

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error) {
	var out models.AuthResponse
	err := c.Do(ctx, http.MethodPost, "/auth/login", creds, &out)
	return out, err
}

func (c *HTTPClient) Signup(ctx context.Context, reg models.Registration) (models.AuthResponse, error) {
	var out models.AuthResponse
	err := c.Do(ctx, http.MethodPost, "/auth/signup", reg, &out)
	return out, err
}

// dateWindow encodes from/to as startDate/endDate (YYYY-MM-DD); zero times
// are omitted.
func dateWindow(from, to time.Time) url.Values {
	q := url.Values{}
	if !from.IsZero() {
		q.Set("startDate", from.Format(dateLayout))
	}
	if !to.IsZero() {
		q.Set("endDate", to.Format(dateLayout))
	}
	return q
}

func withQuery(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

func (c *HTTPClient) ListMoods(ctx context.Context, f models.MoodFilter) ([]models.MoodEntry, error) {
	q := dateWindow(f.From, f.To)
	if f.MoodType != "" {
		q.Set("moodType", string(f.MoodType))
	}
	var out []models.MoodEntry
	err := c.Do(ctx, http.MethodGet, withQuery("/moods", q), nil, &out)
	return out, err
}

type moodBody struct {
	MoodType models.MoodType `json:"moodType"`
}

func (c *HTTPClient) CreateMood(ctx context.Context, mood models.MoodType) (models.MoodEntry, error) {
	var out models.MoodEntry
	err := c.Do(ctx, http.MethodPost, "/moods", moodBody{MoodType: mood}, &out)
	return out, err
}

func (c *HTTPClient) UpdateMood(ctx context.Context, id models.ID, mood models.MoodType) (models.MoodEntry, error) {
	var out models.MoodEntry
	err := c.Do(ctx, http.MethodPut, "/moods/"+escape(id), moodBody{MoodType: mood}, &out)
	return out, err
}

func (c *HTTPClient) DeleteMood(ctx context.Context, id models.ID) error {
	return c.Do(ctx, http.MethodDelete, "/moods/"+escape(id), nil, nil)
}

func (c *HTTPClient) MoodStats(ctx context.Context, from, to time.Time) (models.MoodStats, error) {
	var out models.MoodStats
	err := c.Do(ctx, http.MethodGet, withQuery("/moods/stats", dateWindow(from, to)), nil, &out)
	return out, err
}

func (c *HTTPClient) ListJournals(ctx context.Context) ([]models.JournalEntry, error) {
	var out []models.JournalEntry
	err := c.Do(ctx, http.MethodGet, "/journals", nil, &out)
	return out, err
}

func (c *HTTPClient) CreateJournal(ctx context.Context, in models.JournalInput) (models.JournalEntry, error) {
	var out models.JournalEntry
	err := c.Do(ctx, http.MethodPost, "/journals", in, &out)
	return out, err
}

func (c *HTTPClient) UpdateJournal(ctx context.Context, id models.ID, in models.JournalInput) (models.JournalEntry, error) {
	var out models.JournalEntry
	err := c.Do(ctx, http.MethodPut, "/journals/"+escape(id), in, &out)
	return out, err
}

func (c *HTTPClient) DeleteJournal(ctx context.Context, id models.ID) error {
	return c.Do(ctx, http.MethodDelete, "/journals/"+escape(id), nil, nil)
}

func (c *HTTPClient) AddFood(ctx context.Context, in models.FoodInput) (models.FoodAdded, error) {
	var out models.FoodAdded
	err := c.Do(ctx, http.MethodPost, "/nutrition/foods", in, &out)
	return out, err
}

func (c *HTTPClient) TodayFoods(ctx context.Context) ([]models.FoodRecord, error) {
	var out []models.FoodRecord
	err := c.Do(ctx, http.MethodGet, "/nutrition/foods/today", nil, &out)
	return out, err
}

func (c *HTTPClient) TodayNutrition(ctx context.Context) (models.DailyNutrition, error) {
	var out models.DailyNutrition
	err := c.Do(ctx, http.MethodGet, "/nutrition/today", nil, &out)
	return out, err
}

func (c *HTTPClient) UpdateSteps(ctx context.Context, in models.StepsInput) (models.DailyNutrition, error) {
	var out models.DailyNutrition
	err := c.Do(ctx, http.MethodPut, "/nutrition/steps", in, &out)
	return out, err
}

func (c *HTTPClient) WeeklyNutrition(ctx context.Context) (models.WeeklyNutrition, error) {
	var out models.WeeklyNutrition
	err := c.Do(ctx, http.MethodGet, "/nutrition/weekly", nil, &out)
	return out, err
}

func (c *HTTPClient) DeleteFood(ctx context.Context, id models.ID) (models.DailyNutrition, error) {
	var out models.DailyNutrition
	err := c.Do(ctx, http.MethodDelete, "/nutrition/foods/"+escape(id), nil, &out)
	return out, err
}

type chatMessageBody struct {
	Message string    `json:"message"`
	ChatID  models.ID `json:"chatId,omitempty"`
}

// SendChatMessage continues chatID, or starts a new chat when it is empty.
func (c *HTTPClient) SendChatMessage(ctx context.Context, chatID models.ID, message string) (models.ChatReply, error) {
	var out models.ChatReply
	err := c.Do(ctx, http.MethodPost, "/chat/message", chatMessageBody{Message: message, ChatID: chatID}, &out)
	return out, err
}

func (c *HTTPClient) NewChat(ctx context.Context) (models.Chat, error) {
	var out models.Chat
	err := c.Do(ctx, http.MethodPost, "/chat/new", nil, &out)
	return out, err
}

func (c *HTTPClient) ListChats(ctx context.Context) ([]models.Chat, error) {
	var out []models.Chat
	err := c.Do(ctx, http.MethodGet, "/chat", nil, &out)
	return out, err
}

func (c *HTTPClient) GetChat(ctx context.Context, id models.ID) (models.Chat, error) {
	var out models.Chat
	err := c.Do(ctx, http.MethodGet, "/chat/"+escape(id), nil, &out)
	return out, err
}

func (c *HTTPClient) DeleteChat(ctx context.Context, id models.ID) error {
	return c.Do(ctx, http.MethodDelete, "/chat/"+escape(id), nil, nil)
}

func (c *HTTPClient) ClearChat(ctx context.Context, id models.ID) error {
	return c.Do(ctx, http.MethodDelete, "/chat/"+escape(id)+"/messages", nil, nil)
}

func escape(id models.ID) string {
	return url.PathEscape(string(id))
}
