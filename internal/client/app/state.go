// Package app is the client's composition root. State wires the local
// store, the backend client, the exercise catalog and every state service,
// and Bootstrap restores what a previous run left behind.
package app

import (
	"context"
	"io"
	"net/http"

	"github.com/mindcase/mindcase/internal/client/client"
	"github.com/mindcase/mindcase/internal/client/config"
	"github.com/mindcase/mindcase/internal/client/exercises"
	"github.com/mindcase/mindcase/internal/client/repositories/kv"
	"github.com/mindcase/mindcase/internal/client/services"
	"github.com/mindcase/mindcase/internal/logging"
	"golang.org/x/sync/errgroup"
)

type State struct {
	Store  kv.Repository
	Client client.Client

	Session   services.SessionService
	Moods     services.MoodService
	Journals  services.JournalService
	Nutrition services.NutritionService
	Favorites services.FavoritesService
	Exercises services.ExerciseService
	Chat      services.ChatService

	logger logging.Logger
	closer io.Closer
}

// New opens the local store (falling back to memory) and builds every
// service. It does not touch the network.
func New(ctx context.Context, cfg *config.Config, logger logging.Logger) *State {
	store, closer := kv.Open(ctx, cfg.DBPath, logger)
	api := client.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout, store, logger.With("module", "api"))
	catalog := &exercises.Catalog{
		APIKey:     cfg.ExercisesAPIKey,
		BaseURL:    cfg.ExercisesBaseURL,
		TTL:        cfg.CacheTTL,
		HTTPClient: &http.Client{Timeout: cfg.RequestTimeout},
		Store:      store,
		Logger:     logger.With("module", "exercises"),
	}
	s := NewWith(store, api, catalog, logger)
	s.closer = closer
	return s
}

// NewWith builds a State over already constructed dependencies.
func NewWith(store kv.Repository, api client.Client, catalog services.Catalog, logger logging.Logger) *State {
	return &State{
		Store:     store,
		Client:    api,
		Session:   services.NewSessionService(api, store),
		Moods:     services.NewMoodService(api),
		Journals:  services.NewJournalService(api),
		Nutrition: services.NewNutritionService(api, logger.With("module", "nutrition")),
		Favorites: services.NewFavoritesService(store),
		Exercises: services.NewExerciseService(catalog),
		Chat:      services.NewChatService(api),
		logger:    logger,
	}
}

// Bootstrap restores the session and loads favorites concurrently. Failures
// only degrade the result (signed out, no favorites); it never returns an
// error.
func (s *State) Bootstrap(ctx context.Context) {
	var g errgroup.Group
	g.Go(func() error {
		if _, _, err := s.Session.Restore(ctx); err != nil {
			s.logger.Warn(ctx, "session restore failed", "error", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := s.Favorites.Load(ctx); err != nil {
			s.logger.Warn(ctx, "favorites load failed", "error", err)
		}
		return nil
	})
	_ = g.Wait()

	if sess, ok := s.Session.Current(); ok {
		s.logger.Info(ctx, "session restored", "user", sess.DisplayName)
	}
}

func (s *State) Authenticated() bool {
	_, ok := s.Session.Current()
	return ok
}

// Logout ends the session and drops every per-user collection. Favorites
// belong to the device and are kept.
func (s *State) Logout(ctx context.Context) error {
	err := s.Session.Logout(ctx)
	s.Moods.Reset()
	s.Journals.Reset()
	s.Nutrition.Reset()
	s.Chat.Reset()
	return err
}

func (s *State) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
