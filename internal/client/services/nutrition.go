package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/mindcase/mindcase/internal/client/client"
	"github.com/mindcase/mindcase/internal/client/models"
	"github.com/mindcase/mindcase/internal/logging"
	"golang.org/x/sync/errgroup"
)

// NutritionService tracks today's foods and steps. Every figure in
// DailyNutrition comes from the backend; after each mutation the day
// summary is fetched again. A failed re-fetch after a successful mutation
// is logged and the summary returned by the mutation is kept.
type NutritionService interface {
	LoadToday(ctx context.Context) error
	Today() (models.DailyNutrition, bool)
	Foods() []models.FoodRecord
	AddFood(ctx context.Context, in models.FoodInput) (models.FoodRecord, error)
	DeleteFood(ctx context.Context, id models.ID) error
	UpdateSteps(ctx context.Context, steps int, addToExisting bool) error
	LoadWeekly(ctx context.Context) (models.WeeklyNutrition, error)
	Weekly() (models.WeeklyNutrition, bool)
	Err() string
	Reset()
}

type nutritionService struct {
	errState

	client client.Client
	logger logging.Logger

	mu     sync.RWMutex
	today  *models.DailyNutrition
	foods  []models.FoodRecord
	weekly *models.WeeklyNutrition
}

func NewNutritionService(c client.Client, logger logging.Logger) NutritionService {
	return &nutritionService{client: c, logger: logger}
}

func (s *nutritionService) Today() (models.DailyNutrition, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.today == nil {
		return models.DailyNutrition{}, false
	}
	return *s.today, true
}

func (s *nutritionService) Weekly() (models.WeeklyNutrition, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.weekly == nil {
		return models.WeeklyNutrition{}, false
	}
	return *s.weekly, true
}

func (s *nutritionService) Foods() []models.FoodRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.foods)
}

func (s *nutritionService) Reset() {
	s.mu.Lock()
	s.today, s.foods, s.weekly = nil, nil, nil
	s.mu.Unlock()
	s.ClearErr()
}

// LoadToday fetches the day summary and the food list in parallel. Local
// state is replaced only when both requests succeed.
func (s *nutritionService) LoadToday(ctx context.Context) error {
	s.begin()

	var (
		today models.DailyNutrition
		foods []models.FoodRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		today, err = s.client.TodayNutrition(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		foods, err = s.client.TodayFoods(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return s.fail(fmt.Errorf("load today: %w", err))
	}

	s.mu.Lock()
	s.today = &today
	s.foods = foods
	s.mu.Unlock()
	return nil
}

// refreshToday re-reads the day summary after a mutation the backend has
// already applied. Failure leaves the mutation's summary in place.
func (s *nutritionService) refreshToday(ctx context.Context) {
	today, err := s.client.TodayNutrition(ctx)
	if err != nil {
		s.logger.Warn(ctx, "refresh today failed", "error", err)
		return
	}
	s.setToday(today)
}

func (s *nutritionService) setToday(d models.DailyNutrition) {
	s.mu.Lock()
	s.today = &d
	s.mu.Unlock()
}

func validateFood(in models.FoodInput) error {
	var v validator
	v.check(!blank(in.Name), "name", "food name is required")
	v.check(in.Calories > 0, "calories", "calories must be positive")
	v.check(in.Quantity >= 0, "quantity", "quantity must not be negative")
	return v.err()
}

// AddFood logs a food; a zero quantity means one serving.
func (s *nutritionService) AddFood(ctx context.Context, in models.FoodInput) (models.FoodRecord, error) {
	s.begin()
	in.Name = strings.TrimSpace(in.Name)
	if err := validateFood(in); err != nil {
		return models.FoodRecord{}, s.fail(err)
	}
	if in.Quantity == 0 {
		in.Quantity = 1
	}

	added, err := s.client.AddFood(ctx, in)
	if err != nil {
		return models.FoodRecord{}, s.fail(fmt.Errorf("add food: %w", err))
	}
	s.mu.Lock()
	s.foods = append(s.foods, added.Food)
	s.today = &added.DailyNutrition
	s.mu.Unlock()

	s.refreshToday(ctx)
	return added.Food, nil
}

func (s *nutritionService) DeleteFood(ctx context.Context, id models.ID) error {
	s.begin()
	daily, err := s.client.DeleteFood(ctx, id)
	if err != nil {
		return s.fail(fmt.Errorf("delete food: %w", err))
	}
	s.mu.Lock()
	s.foods = slices.DeleteFunc(s.foods, func(f models.FoodRecord) bool { return f.ID == id })
	s.today = &daily
	s.mu.Unlock()

	s.refreshToday(ctx)
	return nil
}

func (s *nutritionService) UpdateSteps(ctx context.Context, steps int, addToExisting bool) error {
	s.begin()
	var v validator
	v.check(steps >= 0, "steps", "steps must not be negative")
	if err := v.err(); err != nil {
		return s.fail(err)
	}

	daily, err := s.client.UpdateSteps(ctx, models.StepsInput{Steps: steps, AddToExisting: addToExisting})
	if err != nil {
		return s.fail(fmt.Errorf("update steps: %w", err))
	}
	s.setToday(daily)

	s.refreshToday(ctx)
	return nil
}

func (s *nutritionService) LoadWeekly(ctx context.Context) (models.WeeklyNutrition, error) {
	s.begin()
	w, err := s.client.WeeklyNutrition(ctx)
	if err != nil {
		return models.WeeklyNutrition{}, s.fail(fmt.Errorf("load weekly: %w", err))
	}
	s.mu.Lock()
	s.weekly = &w
	s.mu.Unlock()
	return w, nil
}
