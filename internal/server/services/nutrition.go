package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mindcase/mindcase/internal/server/config"
	"github.com/mindcase/mindcase/internal/server/models"
	"github.com/mindcase/mindcase/internal/server/repositories"
)

// CaloriesPerStep is the energy credited per walked step; stepsPerCalorie
// is its inverse.
const (
	CaloriesPerStep = 0.04
	stepsPerCalorie = 25
)

// FoodInput is the body of POST /nutrition/foods. A zero quantity means one.
type FoodInput struct {
	Name     string `json:"name"`
	Calories int    `json:"calories"`
	Quantity int    `json:"quantity"`
}

// StepsInput is the body of PUT /nutrition/steps.
type StepsInput struct {
	Steps         int  `json:"steps"`
	AddToExisting bool `json:"addToExisting"`
}

// Summarize derives the daily view from the foods eaten and steps walked
// on date.
func Summarize(date string, foods []models.Food, steps, budget int) models.DailyNutrition {
	total := 0
	for _, f := range foods {
		total += f.Calories * f.Quantity
	}
	burned := int(math.Round(float64(steps) * CaloriesPerStep))

	needed := 0
	if over := total - budget; over > 0 {
		needed = over * stepsPerCalorie
	}

	return models.DailyNutrition{
		Date:              date,
		TotalCalories:     total,
		StepsWalked:       steps,
		CaloriesBurned:    burned,
		RemainingCalories: budget - total + burned,
		StepsNeeded:       needed,
		CalorieBudget:     budget,
	}
}

// NutritionService logs food and steps and aggregates them per calendar day
// in the server's zone.
type NutritionService struct {
	foods  repositories.FoodRepository
	steps  repositories.StepsRepository
	budget int
	clock
}

func NewNutritionService(foods repositories.FoodRepository, steps repositories.StepsRepository, cfg *config.Config) *NutritionService {
	return &NutritionService{foods: foods, steps: steps, budget: cfg.CalorieBudget, clock: newClock()}
}

func (s *NutritionService) AddFood(ctx context.Context, userID string, in FoodInput) (models.FoodAdded, error) {
	name := strings.TrimSpace(in.Name)
	switch {
	case name == "":
		return models.FoodAdded{}, invalid("food name is required")
	case in.Calories <= 0:
		return models.FoodAdded{}, invalid("calories must be positive")
	case in.Quantity < 0:
		return models.FoodAdded{}, invalid("quantity must not be negative")
	}
	if in.Quantity == 0 {
		in.Quantity = 1
	}

	food, err := s.foods.Create(ctx, models.Food{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      name,
		Calories:  in.Calories,
		Quantity:  in.Quantity,
		CreatedAt: s.now(),
	})
	if err != nil {
		return models.FoodAdded{}, fmt.Errorf("error saving food: %w", err)
	}

	day, err := s.Today(ctx, userID)
	if err != nil {
		return models.FoodAdded{}, err
	}
	return models.FoodAdded{Food: food, DailyNutrition: day}, nil
}

func (s *NutritionService) TodayFoods(ctx context.Context, userID string) ([]models.Food, error) {
	start := s.today()
	return s.foods.ListBetween(ctx, userID, start, start.AddDate(0, 0, 1))
}

func (s *NutritionService) Today(ctx context.Context, userID string) (models.DailyNutrition, error) {
	return s.day(ctx, userID, s.today())
}

func (s *NutritionService) UpdateSteps(ctx context.Context, userID string, in StepsInput) (models.DailyNutrition, error) {
	if in.Steps < 0 {
		return models.DailyNutrition{}, invalid("steps must not be negative")
	}
	date := s.today().Format(dateLayout)

	steps := in.Steps
	if in.AddToExisting {
		current, err := s.steps.Get(ctx, userID, date)
		if err != nil {
			return models.DailyNutrition{}, err
		}
		steps += current
	}
	if err := s.steps.Set(ctx, userID, date, steps); err != nil {
		return models.DailyNutrition{}, err
	}
	return s.Today(ctx, userID)
}

// DeleteFood removes the record and returns the recomputed summary of today.
func (s *NutritionService) DeleteFood(ctx context.Context, userID, id string) (models.DailyNutrition, error) {
	if _, err := s.foods.Delete(ctx, userID, id); err != nil {
		return models.DailyNutrition{}, err
	}
	return s.Today(ctx, userID)
}

// Weekly reports the seven days ending today, oldest first, with totals and
// rounded averages.
func (s *NutritionService) Weekly(ctx context.Context, userID string) (models.WeeklyNutrition, error) {
	today := s.today()
	var w models.WeeklyNutrition
	for i := 6; i >= 0; i-- {
		d, err := s.day(ctx, userID, today.AddDate(0, 0, -i))
		if err != nil {
			return models.WeeklyNutrition{}, err
		}
		w.WeeklyData = append(w.WeeklyData, d)
		w.Totals.TotalCalories += d.TotalCalories
		w.Totals.TotalSteps += d.StepsWalked
		w.Totals.TotalCaloriesBurned += d.CaloriesBurned
	}

	n := float64(len(w.WeeklyData))
	w.Averages = models.WeeklyAverages{
		AvgCalories:       int(math.Round(float64(w.Totals.TotalCalories) / n)),
		AvgSteps:          int(math.Round(float64(w.Totals.TotalSteps) / n)),
		AvgCaloriesBurned: int(math.Round(float64(w.Totals.TotalCaloriesBurned) / n)),
	}
	return w, nil
}

func (s *NutritionService) day(ctx context.Context, userID string, start time.Time) (models.DailyNutrition, error) {
	date := start.Format(dateLayout)
	foods, err := s.foods.ListBetween(ctx, userID, start, start.AddDate(0, 0, 1))
	if err != nil {
		return models.DailyNutrition{}, err
	}
	steps, err := s.steps.Get(ctx, userID, date)
	if err != nil {
		return models.DailyNutrition{}, err
	}
	return Summarize(date, foods, steps, s.budget), nil
}
