package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mindcase/mindcase/internal/client/client"
	"github.com/mindcase/mindcase/internal/client/models"
	"github.com/mindcase/mindcase/internal/client/repositories/kv"
)

// SessionService owns sign-in state.
//
// Contract:
//   - Login / Register: authenticate against the backend and persist the
//     token and profile atomically. Register signs in with the returned token.
//   - Restore: rebuild the session from the local store without contacting
//     the backend (the token is trusted until a call is rejected).
//   - Logout: wipe the persisted session.
type SessionService interface {
	Login(ctx context.Context, email, password string) (models.Session, error)
	Register(ctx context.Context, reg models.Registration) (models.Session, error)
	Restore(ctx context.Context) (models.Session, bool, error)
	Logout(ctx context.Context) error
	Current() (models.Session, bool)
	Err() string
}

type sessionService struct {
	errState

	client client.Client
	store  kv.Repository
	now    func() time.Time

	mu      sync.RWMutex
	current *models.Session
}

func NewSessionService(c client.Client, store kv.Repository) SessionService {
	return &sessionService{client: c, store: store, now: time.Now}
}

func (s *sessionService) Current() (models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return models.Session{}, false
	}
	return *s.current, true
}

func (s *sessionService) set(sess *models.Session) {
	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()
}

func validateCredentials(email, password string) error {
	var v validator
	v.check(!blank(email), "email", "email is required")
	v.check(emailRe.MatchString(strings.TrimSpace(email)), "email", "email is invalid")
	v.check(password != "", "password", "password is required")
	return v.err()
}

func validateRegistration(r models.Registration) error {
	var v validator
	v.check(len(strings.TrimSpace(r.Username)) >= 3, "username", "username must be at least 3 characters")
	v.check(!blank(r.Email), "email", "email is required")
	v.check(emailRe.MatchString(strings.TrimSpace(r.Email)), "email", "email is invalid")
	v.check(!blank(r.FirstName), "firstName", "first name is required")
	v.check(!blank(r.LastName), "lastName", "last name is required")
	v.check(len(r.Password) >= 6, "password", "password must be at least 6 characters")
	return v.err()
}

func (s *sessionService) Login(ctx context.Context, email, password string) (models.Session, error) {
	s.begin()
	if err := validateCredentials(email, password); err != nil {
		return models.Session{}, s.fail(err)
	}

	resp, err := s.client.Login(ctx, models.Credentials{Email: strings.TrimSpace(email), Password: password})
	if err != nil {
		return models.Session{}, s.fail(fmt.Errorf("login: %w", err))
	}
	return s.establish(ctx, resp)
}

func (s *sessionService) Register(ctx context.Context, reg models.Registration) (models.Session, error) {
	s.begin()
	if err := validateRegistration(reg); err != nil {
		return models.Session{}, s.fail(err)
	}
	reg.Username = strings.TrimSpace(reg.Username)
	reg.Email = strings.TrimSpace(reg.Email)

	resp, err := s.client.Signup(ctx, reg)
	if err != nil {
		return models.Session{}, s.fail(fmt.Errorf("register: %w", err))
	}
	return s.establish(ctx, resp)
}

// establish persists token and profile together, then publishes the session.
func (s *sessionService) establish(ctx context.Context, resp models.AuthResponse) (models.Session, error) {
	if resp.Token == "" {
		return models.Session{}, s.fail(errors.New("backend returned no token"))
	}

	sess := models.Session{
		UserID:      resp.User.ID,
		DisplayName: resp.User.DisplayName(),
		Email:       resp.User.Email,
		Token:       resp.Token,
		IssuedAt:    s.issuedAt(resp.Token),
	}
	profile, err := json.Marshal(sess)
	if err != nil {
		return models.Session{}, s.fail(fmt.Errorf("encode session: %w", err))
	}

	if err := s.store.SetMany(ctx, map[string]string{
		kv.KeyAuthToken: resp.Token,
		kv.KeyAuthUser:  string(profile),
	}); err != nil {
		return models.Session{}, s.fail(fmt.Errorf("persist session: %w", err))
	}

	s.set(&sess)
	return sess, nil
}

// issuedAt reads the token's iat claim without verifying the signature;
// tokens that are not JWTs fall back to the local clock.
func (s *sessionService) issuedAt(token string) time.Time {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err == nil && claims.IssuedAt != nil {
		return claims.IssuedAt.Time
	}
	return s.now()
}

func (s *sessionService) Restore(ctx context.Context) (models.Session, bool, error) {
	s.begin()

	token, ok, err := s.store.Get(ctx, kv.KeyAuthToken)
	if err != nil {
		return models.Session{}, false, s.fail(fmt.Errorf("read token: %w", err))
	}
	if !ok || token == "" {
		s.set(nil)
		return models.Session{}, false, nil
	}

	raw, ok, err := s.store.Get(ctx, kv.KeyAuthUser)
	if err != nil {
		return models.Session{}, false, s.fail(fmt.Errorf("read profile: %w", err))
	}
	if !ok {
		s.set(nil)
		return models.Session{}, false, nil
	}

	var sess models.Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		s.set(nil)
		return models.Session{}, false, s.fail(fmt.Errorf("decode profile: %w", err))
	}
	sess.Token = token

	s.set(&sess)
	return sess, true, nil
}

// Logout always drops the in-memory session, even when the store fails.
func (s *sessionService) Logout(ctx context.Context) error {
	s.begin()
	s.set(nil)
	if err := s.store.DeleteMany(ctx, kv.KeyAuthToken, kv.KeyAuthUser); err != nil {
		return s.fail(fmt.Errorf("logout: %w", err))
	}
	return nil
}
