package user

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nucleobets/backend/internal/dependencies/clock"
	"github.com/nucleobets/backend/internal/model"
	"github.com/nucleobets/backend/internal/services/auth"
	"github.com/nucleobets/backend/internal/storage"
)

// Service handles admin-side account management
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger

	membershipTTL time.Duration
}

// New creates a new user management service
func New(storage storage.Storage, clk clock.Clock, membershipTTL time.Duration, logger *slog.Logger) *Service {
	return &Service{
		storage:       storage,
		clock:         clk,
		logger:        logger,
		membershipTTL: membershipTTL,
	}
}

// List returns all accounts, oldest first
func (s *Service) List(ctx context.Context) ([]*model.User, error) {
	return s.storage.ListUsers(ctx)
}

// Create creates an account on behalf of an admin. Unlike
// self-registration these accounts may start pre-approved. Non-admin
// accounts still receive the membership expiry.
func (s *Service) Create(ctx context.Context, username, email, password string, role model.Role, approved bool) (*model.User, error) {
	if err := s.checkDuplicate(ctx, username, email); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	user := &model.User{
		ID:              model.UserID(uuid.NewString()),
		Username:        username,
		Email:           email,
		PasswordHash:    hash,
		Role:            role,
		IsActive:        true,
		ApprovedByAdmin: approved,
		CreatedAt:       now,
	}
	if role != model.RoleAdmin {
		expires := now.Add(s.membershipTTL)
		user.ExpiresAt = &expires
	}

	if err := s.storage.SaveUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Approve marks an account as admin-approved and reactivates it
func (s *Service) Approve(ctx context.Context, id model.UserID) (*model.User, error) {
	user, err := s.storage.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	user.ApprovedByAdmin = true
	user.IsActive = true
	if err := s.storage.SaveUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Deactivate disables an account without deleting it
func (s *Service) Deactivate(ctx context.Context, id model.UserID) (*model.User, error) {
	user, err := s.storage.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	user.IsActive = false
	if err := s.storage.SaveUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes an account. The acting admin cannot delete themselves,
// and admin-role accounts cannot be deleted at all, which keeps the
// canonical admin safe regardless of who is acting.
func (s *Service) Delete(ctx context.Context, actor *model.User, id model.UserID) error {
	if actor.ID == id {
		return model.ErrSelfDelete
	}

	target, err := s.storage.GetUser(ctx, id)
	if err != nil {
		return err
	}
	if target.IsAdmin() {
		return model.ErrAdminDelete
	}

	return s.storage.DeleteUser(ctx, id)
}

// EnsureAdmin seeds the canonical admin account if no admin exists yet.
// Safe to call on every startup.
func (s *Service) EnsureAdmin(ctx context.Context, username, email, password string) error {
	users, err := s.storage.ListUsers(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		if u.IsAdmin() {
			return nil
		}
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &model.User{
		ID:              model.UserID(uuid.NewString()),
		Username:        username,
		Email:           email,
		PasswordHash:    hash,
		Role:            model.RoleAdmin,
		IsActive:        true,
		ApprovedByAdmin: true,
		CreatedAt:       s.clock.Now().UTC(),
	}

	if err := s.storage.SaveUser(ctx, admin); err != nil {
		return err
	}

	s.logger.Info("seeded admin account", slog.String("username", username))
	return nil
}

func (s *Service) checkDuplicate(ctx context.Context, username, email string) error {
	if _, err := s.storage.GetUserByUsername(ctx, username); err == nil {
		return model.ErrUserExists
	} else if !errors.Is(err, model.ErrUserNotFound) {
		return err
	}
	if email != "" {
		if _, err := s.storage.GetUserByEmail(ctx, email); err == nil {
			return model.ErrUserExists
		} else if !errors.Is(err, model.ErrUserNotFound) {
			return err
		}
	}
	return nil
}
