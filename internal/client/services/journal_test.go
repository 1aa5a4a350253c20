package services

import (
	"context"
	"errors"
	"testing"

	"github.com/mindcase/mindcase/internal/client/client"
	"github.com/mindcase/mindcase/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournal_CRUD(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{JournalsRet: []models.JournalEntry{{ID: "1", Title: "old", Text: "t"}}}
	svc := NewJournalService(fc)
	require.NoError(t, svc.Load(ctx))

	fc.CreateJournalRet = models.JournalEntry{ID: "2", Title: "new", Text: "body"}
	_, err := svc.Create(ctx, models.JournalInput{Title: "  new ", Text: "body"})
	require.NoError(t, err)
	assert.Equal(t, "new", fc.LastJournal.Title)
	items := svc.Items()
	require.Len(t, items, 2)
	assert.Equal(t, models.ID("2"), items[0].ID)

	fc.UpdateJournalRet = models.JournalEntry{ID: "1", Title: "edited", Text: "t2"}
	require.NoError(t, svc.Update(ctx, "1", models.JournalInput{Title: "edited", Text: "t2"}))
	got, ok := svc.Get("1")
	require.True(t, ok)
	assert.Equal(t, "edited", got.Title)

	require.NoError(t, svc.Delete(ctx, "2"))
	_, ok = svc.Get("2")
	assert.False(t, ok)
	assert.Len(t, svc.Items(), 1)
}

func TestJournal_UpdateWithEmptyResponseAppliesInput(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{JournalsRet: []models.JournalEntry{{ID: "1", Title: "old", Text: "t"}}}
	svc := NewJournalService(fc)
	require.NoError(t, svc.Load(ctx))

	require.NoError(t, svc.Update(ctx, "1", models.JournalInput{Title: "new", Text: "t2"}))
	got, _ := svc.Get("1")
	assert.Equal(t, models.JournalEntry{ID: "1", Title: "new", Text: "t2"}, got)
}

func TestJournal_ValidationAndFailures(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{}
	svc := NewJournalService(fc)

	_, err := svc.Create(ctx, models.JournalInput{Title: "   ", Text: "x"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "title")
	assert.Empty(t, fc.calls())

	fc.CreateJournalErr = &client.NetworkError{Op: "POST /journals", Err: errors.New("offline")}
	_, err = svc.Create(ctx, models.JournalInput{Title: "t"})
	require.ErrorIs(t, err, client.ErrNetwork)
	assert.Empty(t, svc.Items())
	assert.NotEmpty(t, svc.Err())

	svc.Reset()
	assert.Empty(t, svc.Err())
}
