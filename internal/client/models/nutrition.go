package models

import "time"

// FoodRecord is one logged food for today. Calories are per serving.
type FoodRecord struct {
	ID       ID        `json:"_id"`
	Name     string    `json:"name"`
	Calories int       `json:"calories"`
	Quantity int       `json:"quantity"`
	LoggedAt time.Time `json:"createdAt"`
}

// TotalCalories is calories times quantity.
func (f FoodRecord) TotalCalories() int {
	return f.Calories * f.Quantity
}

type FoodInput struct {
	Name     string `json:"name"`
	Calories int    `json:"calories"`
	Quantity int    `json:"quantity"`
}

// StepsInput replaces the day's step count, or adds to it when AddToExisting.
type StepsInput struct {
	Steps         int  `json:"steps"`
	AddToExisting bool `json:"addToExisting"`
}

// DailyNutrition is derived server-side; the client never recomputes it.
type DailyNutrition struct {
	Date              string `json:"date"`
	TotalCalories     int    `json:"totalCalories"`
	StepsWalked       int    `json:"stepsWalked"`
	CaloriesBurned    int    `json:"caloriesBurned"`
	RemainingCalories int    `json:"remainingCalories"`
	StepsNeeded       int    `json:"stepsNeeded"`
	CalorieBudget     int    `json:"calorieBudget"`
}

type WeeklyTotals struct {
	TotalCalories       int `json:"totalCalories"`
	TotalSteps          int `json:"totalSteps"`
	TotalCaloriesBurned int `json:"totalCaloriesBurned"`
}

type WeeklyAverages struct {
	AvgCalories       int `json:"avgCalories"`
	AvgSteps          int `json:"avgSteps"`
	AvgCaloriesBurned int `json:"avgCaloriesBurned"`
}

type WeeklyNutrition struct {
	Days     []DailyNutrition `json:"weeklyData"`
	Totals   WeeklyTotals     `json:"totals"`
	Averages WeeklyAverages   `json:"averages"`
}

// FoodAdded is returned by POST /nutrition/foods.
type FoodAdded struct {
	Food           FoodRecord     `json:"food"`
	DailyNutrition DailyNutrition `json:"dailyNutrition"`
}
