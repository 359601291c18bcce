package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/mkravets/storefront/internal/hash"
	"github.com/mkravets/storefront/internal/logging"
	"github.com/mkravets/storefront/internal/models"
	"github.com/mkravets/storefront/internal/mykafka"
	"github.com/mkravets/storefront/internal/repo"
	"github.com/mkravets/storefront/internal/transport"
)

type AuthService struct {
	Repo     *repo.GormRepo
	Producer *mykafka.Producer
}

func (s *AuthService) Register(ctx context.Context, req transport.RegisterRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: valid email required", ErrValidation)
	}
	if len(req.Password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name required", ErrValidation)
	}

	passwordHash, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Provider:     "credentials",
		Role:         models.RoleUser,
	}
	if err := s.Repo.CreateUser(ctx, user); err != nil {
		if repo.IsDuplicate(err) {
			return nil, fmt.Errorf("%w: email already registered", ErrConflict)
		}
		return nil, err
	}

	s.publishUserEvent(ctx, user, "user_registered")
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, req transport.LoginRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.Repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if user.PasswordHash == "" || !hash.CheckPassword(user.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	s.publishUserEvent(ctx, user, "user_logged_in")
	return user, nil
}

// ProviderLogin establishes a session after a third-party identity
// provider flow. The user is upserted by email and the role is ALWAYS
// re-read from the users table; any role hinted at by the provider
// payload is ignored so a stale or attacker-influenced claim never ends
// up inside a minted token.
func (s *AuthService) ProviderLogin(ctx context.Context, req transport.ProviderLoginRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: valid email required", ErrValidation)
	}
	if strings.TrimSpace(req.Provider) == "" {
		return nil, fmt.Errorf("%w: provider required", ErrValidation)
	}

	user, err := s.Repo.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		user.Provider = req.Provider
		if req.Name != "" {
			user.Name = req.Name
		}
		if req.Image != "" {
			user.Image = req.Image
		}
		if err := s.Repo.UpdateUser(ctx, user); err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = &models.User{
			Email:    email,
			Name:     req.Name,
			Image:    req.Image,
			Provider: req.Provider,
			Role:     models.RoleUser,
		}
		if err := s.Repo.CreateUser(ctx, user); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	// Source-of-truth role: never trust what came back from the upsert
	// path above once another request may have changed privileges.
	fresh, err := s.Repo.GetUserByID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	s.publishUserEvent(ctx, fresh, "user_logged_in")
	return fresh, nil
}

func (s *AuthService) publishUserEvent(ctx context.Context, user *models.User, kind string) {
	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	event := map[string]any{
		"type":    kind,
		"user_id": user.ID,
		"email":   user.Email,
	}
	if err := s.Producer.PublishEvent(pubCtx, "user_events", fmt.Sprint(user.ID), event); err != nil {
		logging.FromContext(ctx).Error("kafka publish error", "error", err)
	}
}
