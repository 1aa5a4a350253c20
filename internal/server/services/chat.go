package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/mindcase/mindcase/internal/server/models"
	"github.com/mindcase/mindcase/internal/server/repositories"
)

const (
	newChatTitle  = "New Chat"
	maxTitleRunes = 40
)

type cannedReply struct {
	keywords []string
	text     string
}

var cannedReplies = []cannedReply{
	{[]string{"anxious", "anxiety", "panic", "worried"},
		"That sounds hard. Try a slow breath in for four counts and out for six. What is weighing on you most right now?"},
	{[]string{"sad", "down", "lonely", "cry"},
		"I'm sorry you're feeling low. It's okay to feel this way. Would it help to write a few lines about it in your journal?"},
	{[]string{"stress", "overwhelm", "busy", "pressure"},
		"It sounds like a lot is on your plate. What is one small thing you could set down for today?"},
	{[]string{"tired", "sleep", "exhausted"},
		"Rest matters. A short walk or a few minutes away from screens can help you recharge."},
	{[]string{"happy", "great", "good", "excited"},
		"That's wonderful to hear! What made today feel good?"},
}

const defaultReply = "Thank you for sharing. I'm here to listen. Tell me more about how you're feeling."

// Reply picks a supportive canned answer for message.
func Reply(message string) string {
	lower := strings.ToLower(message)
	for _, r := range cannedReplies {
		for _, k := range r.keywords {
			if strings.Contains(lower, k) {
				return r.text
			}
		}
	}
	return defaultReply
}

// SendInput is the body of POST /chat/message. An empty ChatID starts a new
// chat titled after the message.
type SendInput struct {
	Message string `json:"message"`
	ChatID  string `json:"chatId"`
}

type ChatService struct {
	repo repositories.ChatRepository
	clock
}

func NewChatService(repo repositories.ChatRepository) *ChatService {
	return &ChatService{repo: repo, clock: newClock()}
}

func (s *ChatService) Send(ctx context.Context, userID string, in SendInput) (models.ChatReply, error) {
	text := strings.TrimSpace(in.Message)
	if text == "" {
		return models.ChatReply{}, invalid("message is required")
	}

	chatID := in.ChatID
	if chatID == "" {
		c, err := s.create(ctx, userID, title(text))
		if err != nil {
			return models.ChatReply{}, err
		}
		chatID = c.ID
	}

	now := s.now()
	reply := models.ChatMessage{Role: models.RoleAssistant, Content: Reply(text), Timestamp: now}
	_, err := s.repo.Update(ctx, userID, chatID, func(c *models.Chat) {
		if len(c.Messages) == 0 && c.Title == newChatTitle {
			c.Title = title(text)
		}
		c.Messages = append(c.Messages,
			models.ChatMessage{Role: models.RoleUser, Content: text, Timestamp: now},
			reply,
		)
		c.UpdatedAt = now
	})
	if err != nil {
		return models.ChatReply{}, err
	}
	return models.ChatReply{ChatID: chatID, Message: reply}, nil
}

func (s *ChatService) New(ctx context.Context, userID string) (models.Chat, error) {
	return s.create(ctx, userID, newChatTitle)
}

func (s *ChatService) List(ctx context.Context, userID string) ([]models.Chat, error) {
	return s.repo.List(ctx, userID)
}

func (s *ChatService) Get(ctx context.Context, userID, id string) (models.Chat, error) {
	return s.repo.Get(ctx, userID, id)
}

func (s *ChatService) Delete(ctx context.Context, userID, id string) error {
	return s.repo.Delete(ctx, userID, id)
}

// Clear drops the messages but keeps the chat.
func (s *ChatService) Clear(ctx context.Context, userID, id string) error {
	now := s.now()
	_, err := s.repo.Update(ctx, userID, id, func(c *models.Chat) {
		c.Messages = []models.ChatMessage{}
		c.UpdatedAt = now
	})
	return err
}

func (s *ChatService) create(ctx context.Context, userID, t string) (models.Chat, error) {
	now := s.now()
	return s.repo.Create(ctx, models.Chat{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     t,
		Messages:  []models.ChatMessage{},
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func title(message string) string {
	if utf8.RuneCountInString(message) <= maxTitleRunes {
		return message
	}
	return string([]rune(message)[:maxTitleRunes]) + "..."
}
