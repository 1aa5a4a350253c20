package memory

import (
	"context"
	"slices"
	"time"

	"github.com/mindcase/mindcase/internal/server/models"
)

type MoodRepository struct {
	t *table[models.Mood]
}

func NewMoodRepository() *MoodRepository {
	return &MoodRepository{t: newTable(
		func(m *models.Mood) string { return m.ID },
		func(m *models.Mood) string { return m.UserID },
		nil,
	)}
}

func (r *MoodRepository) Create(_ context.Context, m models.Mood) (models.Mood, error) {
	return r.t.insert(m), nil
}

func (r *MoodRepository) List(_ context.Context, userID string) ([]models.Mood, error) {
	out := r.t.list(userID, nil)
	slices.Reverse(out)
	return out, nil
}

func (r *MoodRepository) Update(_ context.Context, userID, id string, fn func(*models.Mood)) (models.Mood, error) {
	return r.t.update(userID, id, fn)
}

func (r *MoodRepository) Delete(_ context.Context, userID, id string) error {
	_, err := r.t.remove(userID, id)
	return err
}

type JournalRepository struct {
	t *table[models.Journal]
}

func NewJournalRepository() *JournalRepository {
	return &JournalRepository{t: newTable(
		func(j *models.Journal) string { return j.ID },
		func(j *models.Journal) string { return j.UserID },
		nil,
	)}
}

func (r *JournalRepository) Create(_ context.Context, j models.Journal) (models.Journal, error) {
	return r.t.insert(j), nil
}

func (r *JournalRepository) List(_ context.Context, userID string) ([]models.Journal, error) {
	out := r.t.list(userID, nil)
	slices.Reverse(out)
	return out, nil
}

func (r *JournalRepository) Update(_ context.Context, userID, id string, fn func(*models.Journal)) (models.Journal, error) {
	return r.t.update(userID, id, fn)
}

func (r *JournalRepository) Delete(_ context.Context, userID, id string) error {
	_, err := r.t.remove(userID, id)
	return err
}

type FoodRepository struct {
	t *table[models.Food]
}

func NewFoodRepository() *FoodRepository {
	return &FoodRepository{t: newTable(
		func(f *models.Food) string { return f.ID },
		func(f *models.Food) string { return f.UserID },
		nil,
	)}
}

func (r *FoodRepository) Create(_ context.Context, f models.Food) (models.Food, error) {
	return r.t.insert(f), nil
}

func (r *FoodRepository) ListBetween(_ context.Context, userID string, from, to time.Time) ([]models.Food, error) {
	return r.t.list(userID, func(f *models.Food) bool {
		return !f.CreatedAt.Before(from) && f.CreatedAt.Before(to)
	}), nil
}

func (r *FoodRepository) Delete(_ context.Context, userID, id string) (models.Food, error) {
	return r.t.remove(userID, id)
}
