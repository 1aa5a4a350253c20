package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/mindcase/mindcase/internal/client/client"
	"github.com/mindcase/mindcase/internal/client/models"
)

// ChatService holds the chat list and the open conversation.
type ChatService interface {
	// Send continues the active chat, or starts one when none is open.
	Send(ctx context.Context, message string) (models.ChatMessage, error)
	NewChat(ctx context.Context) (models.Chat, error)
	LoadChats(ctx context.Context) error
	Open(ctx context.Context, id models.ID) (models.Chat, error)
	Delete(ctx context.Context, id models.ID) error
	Clear(ctx context.Context, id models.ID) error

	Chats() []models.Chat
	Active() (models.Chat, bool)
	Err() string
	Reset()
}

type chatService struct {
	errState

	client client.Client

	mu     sync.RWMutex
	chats  []models.Chat
	active *models.Chat
}

func NewChatService(c client.Client) ChatService {
	return &chatService{client: c}
}

func (s *chatService) Chats() []models.Chat {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.chats)
}

func (s *chatService) Active() (models.Chat, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.active == nil {
		return models.Chat{}, false
	}
	c := *s.active
	c.Messages = slices.Clone(c.Messages)
	return c, true
}

func (s *chatService) Reset() {
	s.mu.Lock()
	s.chats, s.active = nil, nil
	s.mu.Unlock()
	s.ClearErr()
}

func (s *chatService) activeID() models.ID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.active == nil {
		return ""
	}
	return s.active.ID
}

func (s *chatService) Send(ctx context.Context, message string) (models.ChatMessage, error) {
	s.begin()
	message = strings.TrimSpace(message)
	if message == "" {
		return models.ChatMessage{}, s.fail(&ValidationError{Fields: map[string]string{"message": "message is required"}})
	}

	sentTo := s.activeID()
	reply, err := s.client.SendChatMessage(ctx, sentTo, message)
	if err != nil {
		return models.ChatMessage{}, s.fail(fmt.Errorf("send message: %w", err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil || s.active.ID != reply.ChatID {
		s.active = &models.Chat{ID: reply.ChatID}
	}
	if !slices.ContainsFunc(s.chats, func(c models.Chat) bool { return c.ID == reply.ChatID }) {
		now := time.Now()
		s.chats = append([]models.Chat{{
			ID:        reply.ChatID,
			Title:     chatTitle(message),
			CreatedAt: now,
			UpdatedAt: now,
		}}, s.chats...)
	}
	s.active.Messages = append(s.active.Messages,
		models.ChatMessage{Role: models.RoleUser, Content: message},
		reply.Message,
	)
	return reply.Message, nil
}

// chatTitle mirrors the title the backend gives a chat started by message.
func chatTitle(message string) string {
	const maxRunes = 40
	if utf8.RuneCountInString(message) <= maxRunes {
		return message
	}
	return string([]rune(message)[:maxRunes]) + "..."
}

func (s *chatService) NewChat(ctx context.Context) (models.Chat, error) {
	s.begin()
	chat, err := s.client.NewChat(ctx)
	if err != nil {
		return models.Chat{}, s.fail(fmt.Errorf("new chat: %w", err))
	}
	s.mu.Lock()
	c := chat
	c.Messages = slices.Clone(chat.Messages)
	s.active = &c
	s.chats = append([]models.Chat{chat}, s.chats...)
	s.mu.Unlock()
	return chat, nil
}

func (s *chatService) LoadChats(ctx context.Context) error {
	s.begin()
	chats, err := s.client.ListChats(ctx)
	if err != nil {
		return s.fail(fmt.Errorf("load chats: %w", err))
	}
	s.mu.Lock()
	s.chats = chats
	s.mu.Unlock()
	return nil
}

func (s *chatService) Open(ctx context.Context, id models.ID) (models.Chat, error) {
	s.begin()
	chat, err := s.client.GetChat(ctx, id)
	if err != nil {
		return models.Chat{}, s.fail(fmt.Errorf("open chat: %w", err))
	}
	s.mu.Lock()
	c := chat
	c.Messages = slices.Clone(chat.Messages)
	s.active = &c
	s.mu.Unlock()
	return chat, nil
}

func (s *chatService) Delete(ctx context.Context, id models.ID) error {
	s.begin()
	if err := s.client.DeleteChat(ctx, id); err != nil {
		return s.fail(fmt.Errorf("delete chat: %w", err))
	}
	s.mu.Lock()
	s.chats = slices.DeleteFunc(s.chats, func(c models.Chat) bool { return c.ID == id })
	if s.active != nil && s.active.ID == id {
		s.active = nil
	}
	s.mu.Unlock()
	return nil
}

func (s *chatService) Clear(ctx context.Context, id models.ID) error {
	s.begin()
	if err := s.client.ClearChat(ctx, id); err != nil {
		return s.fail(fmt.Errorf("clear chat: %w", err))
	}
	s.mu.Lock()
	for i := range s.chats {
		if s.chats[i].ID == id {
			s.chats[i].Messages = nil
		}
	}
	if s.active != nil && s.active.ID == id {
		s.active.Messages = nil
	}
	s.mu.Unlock()
	return nil
}
