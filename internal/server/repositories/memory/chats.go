package memory

import (
	"context"
	"slices"

	"github.com/mindcase/mindcase/internal/server/models"
)

type ChatRepository struct {
	t *table[models.Chat]
}

func NewChatRepository() *ChatRepository {
	return &ChatRepository{t: newTable(
		func(c *models.Chat) string { return c.ID },
		func(c *models.Chat) string { return c.UserID },
		func(c models.Chat) models.Chat {
			c.Messages = append([]models.ChatMessage{}, c.Messages...)
			return c
		},
	)}
}

func (r *ChatRepository) Create(_ context.Context, c models.Chat) (models.Chat, error) {
	return r.t.insert(c), nil
}

func (r *ChatRepository) List(_ context.Context, userID string) ([]models.Chat, error) {
	out := r.t.list(userID, nil)
	slices.SortStableFunc(out, func(a, b models.Chat) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})
	return out, nil
}

func (r *ChatRepository) Get(_ context.Context, userID, id string) (models.Chat, error) {
	return r.t.get(userID, id)
}

func (r *ChatRepository) Update(_ context.Context, userID, id string, fn func(*models.Chat)) (models.Chat, error) {
	return r.t.update(userID, id, fn)
}

func (r *ChatRepository) Delete(_ context.Context, userID, id string) error {
	_, err := r.t.remove(userID, id)
	return err
}
