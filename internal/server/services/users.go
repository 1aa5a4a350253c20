package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mindcase/mindcase/internal/common"
	"github.com/mindcase/mindcase/internal/server/auth"
	"github.com/mindcase/mindcase/internal/server/config"
	"github.com/mindcase/mindcase/internal/server/models"
	"github.com/mindcase/mindcase/internal/server/repositories"
)

// SignupInput is the body of POST /auth/signup.
type SignupInput struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"`
}

// UserService registers users and issues bearer tokens.
type UserService struct {
	repo      repositories.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
	clock
}

func NewUserService(repo repositories.UserRepository, cfg *config.Config) *UserService {
	return &UserService{
		repo:      repo,
		jwtSecret: []byte(cfg.SecretKey),
		tokenTTL:  cfg.TokenTTL,
		clock:     newClock(),
	}
}

// Register creates the account and logs it in. A taken email yields
// common.ErrAlreadyExists.
func (s *UserService) Register(ctx context.Context, in SignupInput) (*models.AuthResult, error) {
	in.Email = strings.TrimSpace(in.Email)
	in.Username = strings.TrimSpace(in.Username)
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return nil, invalid("invalid email address")
	}
	if in.Username == "" {
		return nil, invalid("username is required")
	}
	if len(in.Password) < 6 {
		return nil, invalid("password must be at least 6 characters")
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.Create(ctx, &models.User{
		ID:           uuid.NewString(),
		Username:     in.Username,
		Email:        in.Email,
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		PasswordHash: hash,
		CreatedAt:    s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return s.issue(user)
}

// Login checks the credentials. Unknown email and wrong password both yield
// common.ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.AuthResult, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}
	if !auth.CheckPasswordHash(password, user.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}
	return s.issue(user)
}

// Authenticate resolves a bearer token to a user id.
func (s *UserService) Authenticate(token string) (string, error) {
	return auth.GetUserIDFromToken(token, s.jwtSecret)
}

func (s *UserService) issue(user *models.User) (*models.AuthResult, error) {
	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return nil, err
	}
	return &models.AuthResult{Token: token, User: *user}, nil
}
