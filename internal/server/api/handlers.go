package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mindcase/mindcase/internal/server/models"
	"github.com/mindcase/mindcase/internal/server/services"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *HTTPServer) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	res, err := s.svc.Users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeData(w, http.StatusOK, res)
}

func (s *HTTPServer) signup(w http.ResponseWriter, r *http.Request) {
	var req services.SignupInput
	if err := decode(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	res, err := s.svc.Users.Register(r.Context(), req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeData(w, http.StatusCreated, res)
}

type moodRequest struct {
	MoodType models.MoodType `json:"moodType"`
}

// moodFilter reads startDate, endDate and moodType from the query.
func (s *HTTPServer) moodFilter(r *http.Request) (services.MoodFilter, error) {
	q := r.URL.Query()
	from, err := s.svc.Moods.ParseDay(q.Get("startDate"))
	if err != nil {
		return services.MoodFilter{}, err
	}
	to, err := s.svc.Moods.ParseDay(q.Get("endDate"))
	if err != nil {
		return services.MoodFilter{}, err
	}
	return services.MoodFilter{From: from, To: to, MoodType: models.MoodType(q.Get("moodType"))}, nil
}

func (s *HTTPServer) listMoods(w http.ResponseWriter, r *http.Request) {
	f, err := s.moodFilter(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	moods, err := s.svc.Moods.List(r.Context(), userIDFrom(r.Context()), f)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeData(w, http.StatusOK, moods)
}

func (s *HTTPServer) createMood(w http.ResponseWriter, r *http.Request) {
	var req moodRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	m, err := s.svc.Moods.Create(r.Context(), userIDFrom(r.Context()), req.MoodType)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeData(w, http.StatusCreated, m)
}

func (s *HTTPServer) updateMood(w http.ResponseWriter, r *http.Request) {
	var req moodRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	m, err := s.svc.Moods.Update(r.Context(), userIDFrom(r.Context()), chi.URLParam(r, "id"), req.MoodType)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeData(w, http.StatusOK, m)
}

func (s *HTTPServer) deleteMood(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Moods.Delete(r.Context(), userIDFrom(r.Context()), chi.URLParam(r, "id")); err != nil {
		s.fail(w, r, err)
		return
	}
	writeMessage(w, "mood deleted")
}

func (s *HTTPServer) moodStats(w http.ResponseWriter, r *http.Request) {
	f, err := s.moodFilter(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	stats, err := s.svc.Moods.Stats(r.Context(), userIDFrom(r.Context()), f.From, f.To)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeData(w, http.StatusOK, stats)
}

func (s *HTTPServer) listJournals(w http.ResponseWriter, r *http.Request) {
	js, err := s.svc.Journals.List(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeData(w, http.StatusOK, js)
}

func (s *HTTPServer) createJournal(w http.ResponseWriter, r *http.Request) {
	var req services.JournalInput
	if err := decode(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	j, err := s.svc.Journals.Create(r.Context(), userIDFrom(r.Context()), req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeData(w, http.StatusCreated, j)
}

func (s *HTTPServer) updateJournal(w http.ResponseWriter, r *http.Request) {
	var req services.JournalInput
	if err := decode(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	j, err := s.svc.Journals.Update(r.Context(), userIDFrom(r.Context()), chi.URLParam(r, "id"), req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeData(w, http.StatusOK, j)
}

func (s *HTTPServer) deleteJournal(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Journals.Delete(r.Context(), userIDFrom(r.Context()), chi.URLParam(r, "id")); err != nil {
		s.fail(w, r, err)
		return
	}
	writeMessage(w, "journal deleted")
}
