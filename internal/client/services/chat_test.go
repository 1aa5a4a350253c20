package services

import (
	"context"
	"strings"
	"testing"

	"github.com/mindcase/mindcase/internal/client/client"
	"github.com/mindcase/mindcase/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChat_SendStartsThenContinues(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{SendRet: models.ChatReply{
		ChatID:  "c1",
		Message: models.ChatMessage{Role: models.RoleAssistant, Content: "I'm here."},
	}}
	svc := NewChatService(fc)

	reply, err := svc.Send(ctx, " hello ")
	require.NoError(t, err)
	assert.Equal(t, "I'm here.", reply.Content)
	assert.Equal(t, models.ID(""), fc.LastChatID)
	assert.Equal(t, "hello", fc.LastMessage)

	_, err = svc.Send(ctx, "again")
	require.NoError(t, err)
	assert.Equal(t, models.ID("c1"), fc.LastChatID)

	active, ok := svc.Active()
	require.True(t, ok)
	require.Len(t, active.Messages, 4)
	assert.Equal(t, models.RoleUser, active.Messages[0].Role)
	assert.Equal(t, "again", active.Messages[2].Content)
}

func TestChat_SendListsNewChat(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{
		ChatsRet: []models.Chat{{ID: "old"}},
		SendRet:  models.ChatReply{ChatID: "c1", Message: models.ChatMessage{Role: models.RoleAssistant}},
	}
	svc := NewChatService(fc)
	require.NoError(t, svc.LoadChats(ctx))

	long := strings.Repeat("a", 45)
	_, err := svc.Send(ctx, long)
	require.NoError(t, err)
	chats := svc.Chats()
	require.Len(t, chats, 2)
	assert.Equal(t, models.ID("c1"), chats[0].ID)
	assert.Equal(t, strings.Repeat("a", 40)+"...", chats[0].Title)

	_, err = svc.Send(ctx, "again")
	require.NoError(t, err)
	assert.Len(t, svc.Chats(), 2)
}

func TestChat_SendValidationAndFailure(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{}
	svc := NewChatService(fc)

	_, err := svc.Send(ctx, "   ")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, fc.calls())

	fc.SendErr = &client.APIError{Status: 500, Message: "Failed to send message"}
	_, err = svc.Send(ctx, "hi")
	require.Error(t, err)
	_, ok := svc.Active()
	assert.False(t, ok)
	assert.Contains(t, svc.Err(), "Failed to send message")
}

func TestChat_ListOpenClearDelete(t *testing.T) {
	ctx := context.Background()
	msgs := []models.ChatMessage{{Role: models.RoleUser, Content: "x"}}
	fc := &fakeClient{
		ChatsRet:   []models.Chat{{ID: "c1", Messages: msgs}, {ID: "c2"}},
		GetChatRet: models.Chat{ID: "c1", Messages: msgs},
		NewChatRet: models.Chat{ID: "c3"},
	}
	svc := NewChatService(fc)

	require.NoError(t, svc.LoadChats(ctx))
	assert.Len(t, svc.Chats(), 2)

	_, err := svc.Open(ctx, "c1")
	require.NoError(t, err)
	active, _ := svc.Active()
	assert.Len(t, active.Messages, 1)

	require.NoError(t, svc.Clear(ctx, "c1"))
	active, _ = svc.Active()
	assert.Empty(t, active.Messages)
	assert.Empty(t, svc.Chats()[0].Messages)

	require.NoError(t, svc.Delete(ctx, "c1"))
	_, ok := svc.Active()
	assert.False(t, ok)
	assert.Len(t, svc.Chats(), 1)

	_, err = svc.NewChat(ctx)
	require.NoError(t, err)
	active, ok = svc.Active()
	require.True(t, ok)
	assert.Equal(t, models.ID("c3"), active.ID)
	assert.Equal(t, models.ID("c3"), svc.Chats()[0].ID)

	fc.DeleteChatErr = &client.APIError{Status: 404, Message: "Chat not found"}
	require.Error(t, svc.Delete(ctx, "c3"))
	assert.Len(t, svc.Chats(), 2)

	svc.Reset()
	assert.Empty(t, svc.Chats())
}
