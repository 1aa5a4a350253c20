// Package api exposes the development backend over JSON/HTTP. Every
// response uses the envelope {success, data, message}; routes other than
// /auth/* require "Authorization: Bearer <token>".
package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mindcase/mindcase/internal/logging"
	"github.com/mindcase/mindcase/internal/server/config"
	"github.com/mindcase/mindcase/internal/server/repositories"
	"github.com/mindcase/mindcase/internal/server/services"
)

// BasePath prefixes every route.
const BasePath = "/api"

const shutdownTimeout = 5 * time.Second

// Services bundles the business logic the handlers call into.
type Services struct {
	Users     *services.UserService
	Moods     *services.MoodService
	Journals  *services.JournalService
	Nutrition *services.NutritionService
	Chat      *services.ChatService
}

// NewServices wires the services onto the repositories of m.
func NewServices(m repositories.Manager, cfg *config.Config) Services {
	return Services{
		Users:     services.NewUserService(m.Users(), cfg),
		Moods:     services.NewMoodService(m.Moods()),
		Journals:  services.NewJournalService(m.Journals()),
		Nutrition: services.NewNutritionService(m.Foods(), m.Steps(), cfg),
		Chat:      services.NewChatService(m.Chats()),
	}
}

type HTTPServer struct {
	address string
	svc     Services
	logger  logging.Logger
}

func NewHTTPServer(address string, l logging.Logger, svc Services) *HTTPServer {
	return &HTTPServer{
		address: address,
		svc:     svc,
		logger:  l.With("module", "http_server"),
	}
}

// Handler builds the router.
func (s *HTTPServer) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)

	r.Route(BasePath, func(r chi.Router) {
		r.Post("/auth/login", s.login)
		r.Post("/auth/signup", s.signup)

		r.Group(func(r chi.Router) {
			r.Use(s.authenticate)

			r.Get("/moods", s.listMoods)
			r.Post("/moods", s.createMood)
			r.Get("/moods/stats", s.moodStats)
			r.Put("/moods/{id}", s.updateMood)
			r.Delete("/moods/{id}", s.deleteMood)

			r.Get("/journals", s.listJournals)
			r.Post("/journals", s.createJournal)
			r.Put("/journals/{id}", s.updateJournal)
			r.Delete("/journals/{id}", s.deleteJournal)

			r.Post("/nutrition/foods", s.addFood)
			r.Get("/nutrition/foods/today", s.todayFoods)
			r.Delete("/nutrition/foods/{id}", s.deleteFood)
			r.Get("/nutrition/today", s.todayNutrition)
			r.Put("/nutrition/steps", s.updateSteps)
			r.Get("/nutrition/weekly", s.weeklyNutrition)

			r.Post("/chat/message", s.sendChatMessage)
			r.Post("/chat/new", s.newChat)
			r.Get("/chat", s.listChats)
			r.Get("/chat/{id}", s.getChat)
			r.Delete("/chat/{id}", s.deleteChat)
			r.Delete("/chat/{id}/messages", s.clearChat)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeFailure(w, http.StatusNotFound, "route not found")
	})

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown failed", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
