package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mindcase/mindcase/internal/client/client"
	"github.com/mindcase/mindcase/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	day     = time.Date(2026, 10, 19, 15, 0, 0, 0, time.UTC)
	morning = time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	before  = time.Date(2026, 10, 18, 22, 0, 0, 0, time.UTC)
)

func newMoodService(fc *fakeClient) *moodService {
	s := NewMoodService(fc).(*moodService)
	s.now = func() time.Time { return day }
	return s
}

func TestMood_LoadReplacesAndKeepsOnFailure(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{MoodsRet: []models.MoodEntry{{ID: "1", MoodType: models.MoodCalm, CreatedAt: morning}}}
	svc := newMoodService(fc)

	require.NoError(t, svc.Load(ctx))
	assert.Len(t, svc.Items(), 1)
	assert.Zero(t, fc.LastMoodFilter)

	fc.MoodsErr = &client.NetworkError{Op: "GET /moods", Err: errors.New("offline")}
	require.Error(t, svc.Load(ctx))
	assert.Len(t, svc.Items(), 1)
	assert.Contains(t, svc.Err(), "offline")

	fc.MoodsErr = nil
	fc.MoodsRet = nil
	require.NoError(t, svc.Load(ctx))
	assert.Empty(t, svc.Items())
	assert.Empty(t, svc.Err(), "error is cleared when the next operation starts")
}

func TestMood_CreatePrepends(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{MoodsRet: []models.MoodEntry{{ID: "1", MoodType: models.MoodSad, CreatedAt: before}}}
	svc := newMoodService(fc)
	require.NoError(t, svc.Load(ctx))

	fc.CreateMoodRet = models.MoodEntry{ID: "2", MoodType: models.MoodHappy, CreatedAt: morning}
	_, err := svc.Create(ctx, models.MoodHappy)
	require.NoError(t, err)

	items := svc.Items()
	require.Len(t, items, 2)
	assert.Equal(t, models.ID("2"), items[0].ID)
}

func TestMood_CreateRejectsUnknownType(t *testing.T) {
	fc := &fakeClient{}
	svc := newMoodService(fc)

	_, err := svc.Create(context.Background(), models.MoodType("ecstatic"))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, fc.calls())
}

func TestMood_UpdateUnknownIDIsNoop(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{MoodsRet: []models.MoodEntry{{ID: "1", MoodType: models.MoodSad, CreatedAt: morning}}}
	svc := newMoodService(fc)
	require.NoError(t, svc.Load(ctx))

	fc.UpdateMoodRet = models.MoodEntry{ID: "99", MoodType: models.MoodCalm}
	require.NoError(t, svc.Update(ctx, "99", models.MoodCalm))
	assert.Equal(t, fc.MoodsRet, svc.Items())
}

func TestMood_DeleteFailureLeavesCollection(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{MoodsRet: []models.MoodEntry{{ID: "1", MoodType: models.MoodSad}}}
	svc := newMoodService(fc)
	require.NoError(t, svc.Load(ctx))

	fc.DeleteMoodErr = &client.APIError{Status: 500, Message: "boom"}
	require.Error(t, svc.Delete(ctx, "1"))
	assert.Len(t, svc.Items(), 1)

	fc.DeleteMoodErr = nil
	require.NoError(t, svc.Delete(ctx, "1"))
	assert.Empty(t, svc.Items())
}

func TestMood_Today(t *testing.T) {
	fc := &fakeClient{MoodsRet: []models.MoodEntry{
		{ID: "3", MoodType: models.MoodHappy, CreatedAt: morning.Add(2 * time.Hour)},
		{ID: "2", MoodType: models.MoodSad, CreatedAt: morning},
		{ID: "1", MoodType: models.MoodCalm, CreatedAt: before},
	}}
	svc := newMoodService(fc)
	require.NoError(t, svc.Load(context.Background()))

	got, ok := svc.Today(day)
	require.True(t, ok)
	assert.Equal(t, models.ID("3"), got.ID, "newest same-day entry wins")

	_, ok = svc.Today(day.AddDate(0, 0, 1))
	assert.False(t, ok)
}

func TestMood_SetToday(t *testing.T) {
	ctx := context.Background()

	t.Run("unchanged makes no call", func(t *testing.T) {
		fc := &fakeClient{MoodsRet: []models.MoodEntry{{ID: "1", MoodType: models.MoodCalm, CreatedAt: morning}}}
		svc := newMoodService(fc)
		require.NoError(t, svc.Load(ctx))

		out, err := svc.SetToday(ctx, models.MoodCalm)
		require.NoError(t, err)
		assert.Equal(t, MoodUnchanged, out)
		assert.Equal(t, []string{"ListMoods"}, fc.calls())
	})

	t.Run("different mood updates today's entry", func(t *testing.T) {
		fc := &fakeClient{MoodsRet: []models.MoodEntry{{ID: "1", MoodType: models.MoodCalm, CreatedAt: morning}}}
		svc := newMoodService(fc)
		require.NoError(t, svc.Load(ctx))

		fc.UpdateMoodRet = models.MoodEntry{ID: "1", MoodType: models.MoodTired}
		out, err := svc.SetToday(ctx, models.MoodTired)
		require.NoError(t, err)
		assert.Equal(t, MoodUpdated, out)
		assert.Equal(t, models.ID("1"), fc.LastMoodID)

		items := svc.Items()
		require.Len(t, items, 1)
		assert.Equal(t, models.MoodTired, items[0].MoodType)
		assert.True(t, items[0].CreatedAt.Equal(morning), "creation time survives a sparse update response")
	})

	t.Run("no entry today creates", func(t *testing.T) {
		fc := &fakeClient{MoodsRet: []models.MoodEntry{{ID: "1", MoodType: models.MoodCalm, CreatedAt: before}}}
		svc := newMoodService(fc)
		require.NoError(t, svc.Load(ctx))

		fc.CreateMoodRet = models.MoodEntry{ID: "2", MoodType: models.MoodHappy, CreatedAt: day}
		out, err := svc.SetToday(ctx, models.MoodHappy)
		require.NoError(t, err)
		assert.Equal(t, MoodCreated, out)
		assert.Len(t, svc.Items(), 2)
	})

	t.Run("failure is reported", func(t *testing.T) {
		fc := &fakeClient{CreateMoodErr: &client.APIError{Status: 500, Message: "down"}}
		svc := newMoodService(fc)

		out, err := svc.SetToday(ctx, models.MoodHappy)
		require.Error(t, err)
		assert.Equal(t, MoodUnchanged, out)
		assert.Empty(t, svc.Items())
		assert.Contains(t, svc.Err(), "down")
	})
}

func TestMood_Stats(t *testing.T) {
	fc := &fakeClient{StatsRet: models.MoodStats{Total: 2, MostFrequent: models.MoodCalm}}
	svc := newMoodService(fc)

	st, err := svc.Stats(context.Background(), before, day)
	require.NoError(t, err)
	assert.Equal(t, 2, st.Total)
}

func TestMood_Reset(t *testing.T) {
	fc := &fakeClient{MoodsRet: []models.MoodEntry{{ID: "1"}}}
	svc := newMoodService(fc)
	require.NoError(t, svc.Load(context.Background()))

	svc.Reset()
	assert.Empty(t, svc.Items())
}
