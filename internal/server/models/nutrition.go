package models

import "time"

type Food struct {
	ID        string    `json:"_id"`
	UserID    string    `json:"-"`
	Name      string    `json:"name"`
	Calories  int       `json:"calories"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
}

// Steps is the step count of one user on one calendar day (YYYY-MM-DD).
type Steps struct {
	UserID string
	Date   string
	Steps  int
}

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
	WeeklyData []DailyNutrition `json:"weeklyData"`
	Totals     WeeklyTotals     `json:"totals"`
	Averages   WeeklyAverages   `json:"averages"`
}

type FoodAdded struct {
	Food           Food           `json:"food"`
	DailyNutrition DailyNutrition `json:"dailyNutrition"`
}
