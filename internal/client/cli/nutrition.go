package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mindcase/mindcase/internal/client/models"
)

func (a *App) Today(ctx context.Context) error {
	if err := a.state.Nutrition.LoadToday(ctx); err != nil {
		return err
	}
	d, _ := a.state.Nutrition.Today()
	a.printDay(d)
	foods := a.state.Nutrition.Foods()
	if len(foods) == 0 {
		a.printf("No foods logged today.\n")
		return nil
	}
	for _, f := range foods {
		a.printf("%-10s %-30s %4d kcal x%d\n", f.ID, f.Name, f.Calories, f.Quantity)
	}
	return nil
}

func (a *App) printDay(d models.DailyNutrition) {
	a.printf("Calories: %d eaten, %d burned, %d remaining (budget %d)\n",
		d.TotalCalories, d.CaloriesBurned, d.RemainingCalories, d.CalorieBudget)
	a.printf("Steps: %d", d.StepsWalked)
	if d.StepsNeeded > 0 {
		a.printf(" (%d more to balance today)", d.StepsNeeded)
	}
	a.printf("\n")
}

func (a *App) AddFood(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Food name", a.out)
	if err != nil {
		return err
	}
	cal, err := a.askInt("Calories per serving", 0)
	if err != nil {
		return err
	}
	qty, err := a.askInt("Quantity [1]", 1)
	if err != nil {
		return err
	}

	if _, err := a.state.Nutrition.AddFood(ctx, models.FoodInput{Name: name, Calories: cal, Quantity: qty}); err != nil {
		return err
	}
	d, _ := a.state.Nutrition.Today()
	a.printDay(d)
	return nil
}

func (a *App) askInt(prompt string, def int) (int, error) {
	s, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return 0, err
	}
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return n, nil
}

func (a *App) DeleteFood(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: delfood <id>")
	}
	if err := a.state.Nutrition.DeleteFood(ctx, models.ID(args[0])); err != nil {
		return err
	}
	d, _ := a.state.Nutrition.Today()
	a.printDay(d)
	return nil
}

// Steps adds to today's count; "steps =N" replaces it.
func (a *App) Steps(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: steps <n> | steps =<n>")
	}
	raw, add := args[0], true
	if strings.HasPrefix(raw, "=") {
		raw, add = raw[1:], false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("%q is not a number", raw)
	}
	if err := a.state.Nutrition.UpdateSteps(ctx, n, add); err != nil {
		return err
	}
	d, _ := a.state.Nutrition.Today()
	a.printDay(d)
	return nil
}

func (a *App) Weekly(ctx context.Context) error {
	w, err := a.state.Nutrition.LoadWeekly(ctx)
	if err != nil {
		return err
	}
	for _, d := range w.Days {
		a.printf("%s  %5d kcal  %6d steps  %4d burned\n", d.Date, d.TotalCalories, d.StepsWalked, d.CaloriesBurned)
	}
	a.printf("Total:   %d kcal, %d steps, %d burned\n", w.Totals.TotalCalories, w.Totals.TotalSteps, w.Totals.TotalCaloriesBurned)
	a.printf("Average: %d kcal, %d steps, %d burned\n", w.Averages.AvgCalories, w.Averages.AvgSteps, w.Averages.AvgCaloriesBurned)
	return nil
}
