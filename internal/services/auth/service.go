package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nucleobets/backend/internal/dependencies/clock"
	"github.com/nucleobets/backend/internal/model"
	"github.com/nucleobets/backend/internal/storage"
)

// Service handles registration, login and the account lifecycle guard
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	tokens  *TokenIssuer
	logger  *slog.Logger

	loginTTL      time.Duration
	membershipTTL time.Duration
}

// Config holds configuration for the auth service
type Config struct {
	// Secret signs bearer tokens. Required; there is no default.
	Secret string
	// TokenTTL is the default token lifetime
	TokenTTL time.Duration
	// LoginTokenTTL is the lifetime of tokens issued by Login
	LoginTokenTTL time.Duration
	// MembershipTTL is how long a self-registered account stays usable
	// before the expiry sweep catches it
	MembershipTTL time.Duration
}

// DefaultConfig returns default auth configuration (minus the secret,
// which must always be provided)
func DefaultConfig() Config {
	return Config{
		TokenTTL:      15 * time.Minute,
		LoginTokenTTL: 30 * time.Minute,
		MembershipTTL: 31 * 24 * time.Hour,
	}
}

// New creates a new auth service
func New(storage storage.Storage, clk clock.Clock, cfg Config, logger *slog.Logger) (*Service, error) {
	if cfg.Secret == "" {
		return nil, errors.New("auth: signing secret must not be empty")
	}
	def := DefaultConfig()
	if cfg.TokenTTL == 0 {
		cfg.TokenTTL = def.TokenTTL
	}
	if cfg.LoginTokenTTL == 0 {
		cfg.LoginTokenTTL = def.LoginTokenTTL
	}
	if cfg.MembershipTTL == 0 {
		cfg.MembershipTTL = def.MembershipTTL
	}

	return &Service{
		storage:       storage,
		clock:         clk,
		tokens:        NewTokenIssuer(cfg.Secret, cfg.TokenTTL, clk),
		logger:        logger,
		loginTTL:      cfg.LoginTokenTTL,
		membershipTTL: cfg.MembershipTTL,
	}, nil
}

// Tokens exposes the token issuer (used by tests and the login handler)
func (s *Service) Tokens() *TokenIssuer {
	return s.tokens
}

// Register creates a self-registered account. The account cannot log in
// until an admin approves it, and it carries a membership expiry.
func (s *Service) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	if err := s.checkDuplicate(ctx, username, email); err != nil {
		return nil, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	expires := now.Add(s.membershipTTL)

	user := &model.User{
		ID:              model.UserID(uuid.NewString()),
		Username:        username,
		Email:           email,
		PasswordHash:    hash,
		Role:            model.RoleUser,
		IsActive:        true,
		ApprovedByAdmin: false,
		CreatedAt:       now,
		ExpiresAt:       &expires,
	}

	if err := s.storage.SaveUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates credentials and issues a bearer token.
// Order of checks: credentials, membership expiry, admin approval,
// active flag. An approved-but-deactivated account fails with a
// different reason than a never-approved one.
func (s *Service) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	user, err := s.storage.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return "", nil, model.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !CheckPassword(password, user.PasswordHash) {
		return "", nil, model.ErrInvalidCredentials
	}

	if err := s.evictIfExpired(ctx, user); err != nil {
		return "", nil, err
	}

	if !user.ApprovedByAdmin {
		return "", nil, model.ErrNotApproved
	}
	if !user.IsActive {
		return "", nil, model.ErrAccountDeactivated
	}

	token, err := s.tokens.Issue(user.ID, s.loginTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Authenticate is the per-request lifecycle guard: it verifies the bearer
// token, resolves the account and enforces the expiry and active
// invariants. It runs on every authenticated request, so an account that
// expires mid-session is rejected on its very next call even while the
// token itself is still within its TTL.
func (s *Service) Authenticate(ctx context.Context, token string) (*model.User, error) {
	userID, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := s.storage.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.ErrInvalidToken
		}
		return nil, err
	}

	// Expiry is checked before the active flag so that an account the
	// reaper already deactivated still reports the expired reason.
	if err := s.evictIfExpired(ctx, user); err != nil {
		return nil, err
	}

	if !user.IsActive {
		return nil, model.ErrAccountDeactivated
	}

	return user, nil
}

// ChangePassword verifies the current password and stores a new hash
func (s *Service) ChangePassword(ctx context.Context, userID model.UserID, current, updated string) error {
	user, err := s.storage.GetUser(ctx, userID)
	if err != nil {
		return err
	}

	if !CheckPassword(current, user.PasswordHash) {
		return model.ErrWrongPassword
	}

	hash, err := HashPassword(updated)
	if err != nil {
		return err
	}

	user.PasswordHash = hash
	return s.storage.SaveUser(ctx, user)
}

// evictIfExpired deactivates a lapsed non-admin account in place and
// fails with ErrAccountExpired. Admin accounts are never evicted.
// This is idempotent and races harmlessly with the periodic reaper:
// both converge on the same deactivated state.
func (s *Service) evictIfExpired(ctx context.Context, user *model.User) error {
	if !user.Expired(s.clock.Now()) {
		return nil
	}

	if user.IsActive {
		user.IsActive = false
		if err := s.storage.SaveUser(ctx, user); err != nil {
			s.logger.Error("failed to deactivate expired account",
				slog.String("user_id", string(user.ID)),
				slog.String("error", err.Error()),
			)
		} else {
			s.logger.Info("deactivated expired account",
				slog.String("user_id", string(user.ID)),
				slog.String("username", user.Username),
			)
		}
	}

	return model.ErrAccountExpired
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

// RequireAdmin is the role gate: it rejects accounts without the admin role
func RequireAdmin(user *model.User) error {
	if !user.IsAdmin() {
		return model.ErrAdminOnly
	}
	return nil
}
