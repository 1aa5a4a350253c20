package services

import (
	"context"
	"errors"
	"testing"

	"github.com/mindcase/mindcase/internal/client/client"
	"github.com/mindcase/mindcase/internal/client/models"
	"github.com/mindcase/mindcase/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNutrition_LoadToday(t *testing.T) {
	fc := &fakeClient{
		TodayRet: models.DailyNutrition{TotalCalories: 500, RemainingCalories: 1500},
		FoodsRet: []models.FoodRecord{{ID: "f1", Name: "Egg", Calories: 72, Quantity: 2}},
	}
	svc := NewNutritionService(fc, logging.Nop())

	require.NoError(t, svc.LoadToday(context.Background()))
	today, ok := svc.Today()
	require.True(t, ok)
	assert.Equal(t, 500, today.TotalCalories)
	assert.Len(t, svc.Foods(), 1)
	assert.ElementsMatch(t, []string{"TodayNutrition", "TodayFoods"}, fc.calls())
}

func TestNutrition_LoadTodayFailureKeepsState(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{TodayRet: models.DailyNutrition{TotalCalories: 100}}
	svc := NewNutritionService(fc, logging.Nop())
	require.NoError(t, svc.LoadToday(ctx))

	fc.FoodsErr = &client.APIError{Status: 500, Message: "boom"}
	fc.TodayRet = models.DailyNutrition{TotalCalories: 999}
	require.Error(t, svc.LoadToday(ctx))
	today, _ := svc.Today()
	assert.Equal(t, 100, today.TotalCalories)
	assert.Equal(t, "load today: boom", svc.Err())
}

func TestNutrition_AddFoodRefetchesToday(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{
		AddFoodRet: models.FoodAdded{
			Food:           models.FoodRecord{ID: "f1", Name: "Egg", Calories: 72, Quantity: 1},
			DailyNutrition: models.DailyNutrition{TotalCalories: 72},
		},
		TodayRet: models.DailyNutrition{TotalCalories: 72, RemainingCalories: 1928},
	}
	svc := NewNutritionService(fc, logging.Nop())

	food, err := svc.AddFood(ctx, models.FoodInput{Name: " Egg ", Calories: 72})
	require.NoError(t, err)
	assert.Equal(t, models.ID("f1"), food.ID)
	assert.Equal(t, models.FoodInput{Name: "Egg", Calories: 72, Quantity: 1}, fc.LastFood)
	assert.Equal(t, []string{"AddFood", "TodayNutrition"}, fc.calls())

	today, _ := svc.Today()
	assert.Equal(t, 1928, today.RemainingCalories)
	assert.Len(t, svc.Foods(), 1)
}

func TestNutrition_AddFoodValidation(t *testing.T) {
	fc := &fakeClient{}
	svc := NewNutritionService(fc, logging.Nop())

	_, err := svc.AddFood(context.Background(), models.FoodInput{Name: "", Calories: 0, Quantity: -1})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 3)
	assert.Empty(t, fc.calls())
}

func TestNutrition_DeleteFood(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{
		FoodsRet:      []models.FoodRecord{{ID: "f1"}, {ID: "f2"}},
		DeleteFoodRet: models.DailyNutrition{TotalCalories: 10},
		TodayRet:      models.DailyNutrition{TotalCalories: 10},
	}
	svc := NewNutritionService(fc, logging.Nop())
	require.NoError(t, svc.LoadToday(ctx))

	require.NoError(t, svc.DeleteFood(ctx, "f1"))
	assert.Equal(t, models.ID("f1"), fc.LastDeletedFood)
	foods := svc.Foods()
	require.Len(t, foods, 1)
	assert.Equal(t, models.ID("f2"), foods[0].ID)
}

func TestNutrition_UpdateSteps(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{
		StepsRet: models.DailyNutrition{StepsWalked: 5000, CaloriesBurned: 200},
		TodayRet: models.DailyNutrition{StepsWalked: 5000, CaloriesBurned: 200},
	}
	svc := NewNutritionService(fc, logging.Nop())

	require.NoError(t, svc.UpdateSteps(ctx, 5000, true))
	assert.Equal(t, models.StepsInput{Steps: 5000, AddToExisting: true}, fc.LastSteps)
	assert.Equal(t, []string{"UpdateSteps", "TodayNutrition"}, fc.calls())
	today, _ := svc.Today()
	assert.Equal(t, 200, today.CaloriesBurned)

	require.Error(t, svc.UpdateSteps(ctx, -1, false))
	assert.Len(t, fc.calls(), 2)
}

func TestNutrition_AddFoodSucceedsWhenRefreshFails(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{
		AddFoodRet: models.FoodAdded{
			Food:           models.FoodRecord{ID: "f1", Name: "Egg", Calories: 72, Quantity: 1},
			DailyNutrition: models.DailyNutrition{TotalCalories: 72},
		},
		TodayErr: errors.New("boom"),
	}
	svc := NewNutritionService(fc, logging.Nop())

	food, err := svc.AddFood(ctx, models.FoodInput{Name: "Egg", Calories: 72})
	require.NoError(t, err)
	assert.Equal(t, models.ID("f1"), food.ID)
	assert.Empty(t, svc.Err())
	assert.Equal(t, []string{"AddFood", "TodayNutrition"}, fc.calls())

	today, ok := svc.Today()
	require.True(t, ok)
	assert.Equal(t, 72, today.TotalCalories)
	assert.Len(t, svc.Foods(), 1)
}

func TestNutrition_UpdateStepsSucceedsWhenRefreshFails(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{
		StepsRet: models.DailyNutrition{StepsWalked: 3000, CaloriesBurned: 120},
		TodayErr: errors.New("boom"),
	}
	svc := NewNutritionService(fc, logging.Nop())

	require.NoError(t, svc.UpdateSteps(ctx, 3000, true))
	assert.Empty(t, svc.Err())
	today, ok := svc.Today()
	require.True(t, ok)
	assert.Equal(t, 3000, today.StepsWalked)
	assert.Equal(t, 120, today.CaloriesBurned)
}

func TestNutrition_DeleteFoodSucceedsWhenRefreshFails(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{
		FoodsRet:      []models.FoodRecord{{ID: "f1"}},
		DeleteFoodRet: models.DailyNutrition{TotalCalories: 0},
	}
	svc := NewNutritionService(fc, logging.Nop())
	require.NoError(t, svc.LoadToday(ctx))

	fc.TodayErr = errors.New("boom")
	require.NoError(t, svc.DeleteFood(ctx, "f1"))
	assert.Empty(t, svc.Err())
	assert.Empty(t, svc.Foods())
}

func TestNutrition_Weekly(t *testing.T) {
	fc := &fakeClient{WeeklyRet: models.WeeklyNutrition{Totals: models.WeeklyTotals{TotalSteps: 7000}}}
	svc := NewNutritionService(fc, logging.Nop())

	_, ok := svc.Weekly()
	assert.False(t, ok)

	w, err := svc.LoadWeekly(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7000, w.Totals.TotalSteps)
	cached, ok := svc.Weekly()
	require.True(t, ok)
	assert.Equal(t, w, cached)

	svc.Reset()
	_, ok = svc.Weekly()
	assert.False(t, ok)
}
