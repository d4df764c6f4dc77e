package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"chatvault/backend/internal/auth"
	app_errors "chatvault/backend/internal/errors"
	"chatvault/backend/internal/model"
	"chatvault/backend/internal/repository"
	"chatvault/backend/internal/validation"
)

// RegisterRequest is the payload for creating an account.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3" example:"demo"`
	Email    string `json:"email" validate:"required,email" example:"demo@example.com"`
	Password string `json:"password" validate:"required,min=6" example:"demo123"`
}

// LoginRequest carries either a username or an email in Username.
type LoginRequest struct {
	Username string `json:"username" validate:"required" example:"demo"`
	Password string `json:"password" validate:"required" example:"demo123"`
}

// UpdateThemeRequest is the payload for changing the UI theme.
type UpdateThemeRequest struct {
	Theme string `json:"theme" validate:"required,oneof=light dark" example:"dark"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string             `json:"token"`
	User  *model.UserProfile `json:"user"`
}

// errInvalidCredentials is shared by the unknown-user and wrong-password
// paths so the two cannot be told apart.
var errInvalidCredentials = fmt.Errorf("%w: invalid credentials", app_errors.ErrUnauthorized)

type AuthService struct {
	users  repository.UserRepository
	hasher *auth.PasswordHasher
	tokens *auth.TokenService
	now    func() time.Time

	dummyOnce sync.Once
	dummyHash string
}

func NewAuthService(users repository.UserRepository, hasher *auth.PasswordHasher, tokens *auth.TokenService) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens, now: time.Now}
}

// Register creates an account with the default light theme and returns a
// token for it.
func (s *AuthService) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	exists, err := s.users.UserExists(ctx, req.Username, req.Email)
	if err != nil {
		return nil, fmt.Errorf("could not check existing users: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: username or email already exists", app_errors.ErrConflict)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %w", err)
	}

	now := s.now().UTC()
	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Theme:        model.ThemeLight,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	// A concurrent registration can still win the race after UserExists;
	// the UNIQUE constraints turn that into ErrConflict here.
	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, fmt.Errorf("%w: username or email already exists", app_errors.ErrConflict)
		}
		return nil, fmt.Errorf("could not create user: %w", err)
	}
	slog.Info("Registered user", "user_id", user.ID, "username", user.Username)

	return s.issue(user)
}

// Login verifies a username-or-email and password pair.
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	user, err := s.users.GetUserByLogin(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Burn a comparable amount of time so unknown users are not
			// distinguishable by latency.
			_, _ = s.hasher.Compare(s.dummy(), req.Password)
			return nil, errInvalidCredentials
		}
		return nil, fmt.Errorf("could not look up user: %w", err)
	}

	ok, err := s.hasher.Compare(user.PasswordHash, req.Password)
	if err != nil {
		return nil, fmt.Errorf("could not verify password: %w", err)
	}
	if !ok {
		return nil, errInvalidCredentials
	}

	return s.issue(user)
}

// Authenticate validates a bearer token and returns the identity it carries.
func (s *AuthService) Authenticate(token string) (*auth.Claims, error) {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid or expired token", app_errors.ErrPermission)
	}
	return claims, nil
}

func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*model.UserProfile, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, translate("get user", err)
	}
	return user.Profile(), nil
}

// UpdateTheme sets the user's theme. Setting the current value again is not
// an error.
func (s *AuthService) UpdateTheme(ctx context.Context, userID int64, req *UpdateThemeRequest) error {
	if err := validation.Struct(req); err != nil {
		return err
	}
	if err := s.users.UpdateUserTheme(ctx, userID, req.Theme); err != nil {
		return translate("update theme", err)
	}
	slog.Info("Updated theme", "user_id", userID, "theme", req.Theme)
	return nil
}

func (s *AuthService) issue(user *model.User) (*AuthResponse, error) {
	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, User: user.Profile()}, nil
}

func (s *AuthService) dummy() string {
	s.dummyOnce.Do(func() {
		hash, err := s.hasher.Hash("timing-equalizer")
		if err != nil {
			slog.Error("Failed to build dummy password hash", "error", err)
			return
		}
		s.dummyHash = hash
	})
	return s.dummyHash
}
