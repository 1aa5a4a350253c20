package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mindcase/mindcase/internal/server/services"
)

func (s *HTTPServer) addFood(w http.ResponseWriter, r *http.Request) {
	var req services.FoodInput
	if err := decode(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	res, err := s.svc.Nutrition.AddFood(r.Context(), userIDFrom(r.Context()), req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeData(w, http.StatusCreated, res)
}

func (s *HTTPServer) todayFoods(w http.ResponseWriter, r *http.Request) {
	foods, err := s.svc.Nutrition.TodayFoods(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeData(w, http.StatusOK, foods)
}

func (s *HTTPServer) todayNutrition(w http.ResponseWriter, r *http.Request) {
	day, err := s.svc.Nutrition.Today(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeData(w, http.StatusOK, day)
}

func (s *HTTPServer) updateSteps(w http.ResponseWriter, r *http.Request) {
	var req services.StepsInput
	if err := decode(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	day, err := s.svc.Nutrition.UpdateSteps(r.Context(), userIDFrom(r.Context()), req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeData(w, http.StatusOK, day)
}

func (s *HTTPServer) weeklyNutrition(w http.ResponseWriter, r *http.Request) {
	week, err := s.svc.Nutrition.Weekly(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeData(w, http.StatusOK, week)
}

func (s *HTTPServer) deleteFood(w http.ResponseWriter, r *http.Request) {
	day, err := s.svc.Nutrition.DeleteFood(r.Context(), userIDFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeData(w, http.StatusOK, day)
}
