package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/nucleobets/backend/internal/dependencies/mocks"
	"github.com/nucleobets/backend/internal/model"
	"github.com/nucleobets/backend/internal/storage/memory"
	"github.com/nucleobets/backend/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	cfg := DefaultConfig()
	cfg.Secret = "test-signing-secret"
	service, err := New(s.storage, s.clock, cfg, testutil.NopLogger())
	s.Require().NoError(err)
	s.service = service
	s.ctx = context.Background()
}

// register creates an account and optionally approves it
func (s *ServiceSuite) register(username string, approve bool) *model.User {
	user, err := s.service.Register(s.ctx, username, username+"@example.com", "password123")
	s.Require().NoError(err)
	if approve {
		user.ApprovedByAdmin = true
		s.Require().NoError(s.storage.SaveUser(s.ctx, user))
	}
	return user
}

func (s *ServiceSuite) TestNewFailsWithoutSecret() {
	_, err := New(s.storage, s.clock, DefaultConfig(), testutil.NopLogger())
	s.Error(err)
}

// Register tests

func (s *ServiceSuite) TestRegisterSucceeds() {
	user, err := s.service.Register(s.ctx, "joao", "joao@example.com", "password123")
	s.Require().NoError(err)

	s.NotEmpty(user.ID)
	s.Equal("joao", user.Username)
	s.Equal(model.RoleUser, user.Role)
	s.True(user.IsActive)
	s.False(user.ApprovedByAdmin)
}

func (s *ServiceSuite) TestRegisterHashesPassword() {
	user, _ := s.service.Register(s.ctx, "joao", "joao@example.com", "password123")

	s.NotEqual("password123", user.PasswordHash)
	s.True(CheckPassword("password123", user.PasswordHash))
}

func (s *ServiceSuite) TestRegisterSetsMembershipExpiry() {
	user, _ := s.service.Register(s.ctx, "joao", "joao@example.com", "password123")

	s.Require().NotNil(user.ExpiresAt)
	s.Equal(s.clock.Now().UTC().Add(31*24*time.Hour), *user.ExpiresAt)
}

func (s *ServiceSuite) TestRegisterFailsOnDuplicateUsername() {
	s.register("joao", false)

	_, err := s.service.Register(s.ctx, "joao", "other@example.com", "password123")
	s.ErrorIs(err, model.ErrUserExists)
}

func (s *ServiceSuite) TestRegisterFailsOnDuplicateEmail() {
	s.register("joao", false)

	_, err := s.service.Register(s.ctx, "maria", "joao@example.com", "password123")
	s.ErrorIs(err, model.ErrUserExists)
}

// Login tests

func (s *ServiceSuite) TestLoginSucceedsForApprovedUser() {
	s.register("joao", true)

	token, user, err := s.service.Login(s.ctx, "joao", "password123")
	s.Require().NoError(err)
	s.NotEmpty(token)
	s.Equal("joao", user.Username)
}

func (s *ServiceSuite) TestLoginFailsBeforeApproval() {
	s.register("joao", false)

	_, _, err := s.service.Login(s.ctx, "joao", "password123")
	s.ErrorIs(err, model.ErrNotApproved)
}

func (s *ServiceSuite) TestLoginFailsWithWrongPassword() {
	s.register("joao", true)

	_, _, err := s.service.Login(s.ctx, "joao", "wrong")
	s.ErrorIs(err, model.ErrInvalidCredentials)
}

func (s *ServiceSuite) TestLoginFailsWithUnknownUser() {
	_, _, err := s.service.Login(s.ctx, "nobody", "password123")
	s.ErrorIs(err, model.ErrInvalidCredentials)
}

func (s *ServiceSuite) TestLoginFailsForDeactivatedUser() {
	user := s.register("joao", true)
	user.IsActive = false
	s.Require().NoError(s.storage.SaveUser(s.ctx, user))

	_, _, err := s.service.Login(s.ctx, "joao", "password123")
	s.ErrorIs(err, model.ErrAccountDeactivated)
}

func (s *ServiceSuite) TestLoginFailsForExpiredUser() {
	s.register("joao", true)

	s.clock.Advance(32 * 24 * time.Hour)

	_, _, err := s.service.Login(s.ctx, "joao", "password123")
	s.ErrorIs(err, model.ErrAccountExpired)
}

func (s *ServiceSuite) TestLoginDeactivatesExpiredUser() {
	user := s.register("joao", true)

	s.clock.Advance(32 * 24 * time.Hour)
	_, _, _ = s.service.Login(s.ctx, "joao", "password123")

	stored, err := s.storage.GetUser(s.ctx, user.ID)
	s.Require().NoError(err)
	s.False(stored.IsActive)
}

// Authenticate tests

func (s *ServiceSuite) TestAuthenticateSucceeds() {
	user := s.register("joao", true)
	token, _, err := s.service.Login(s.ctx, "joao", "password123")
	s.Require().NoError(err)

	authed, err := s.service.Authenticate(s.ctx, token)
	s.Require().NoError(err)
	s.Equal(user.ID, authed.ID)
}

func (s *ServiceSuite) TestAuthenticateFailsWithExpiredToken() {
	s.register("joao", true)
	token, _, err := s.service.Login(s.ctx, "joao", "password123")
	s.Require().NoError(err)

	s.clock.Advance(31 * time.Minute)

	_, err = s.service.Authenticate(s.ctx, token)
	s.ErrorIs(err, model.ErrInvalidToken)
}

func (s *ServiceSuite) TestAuthenticateFailsWhenAccountExpiresMidSession() {
	user := s.register("joao", true)

	// Place the login right before the membership expiry so the token
	// outlives the account
	s.clock.Advance(31*24*time.Hour - 10*time.Minute)
	token, _, err := s.service.Login(s.ctx, "joao", "password123")
	s.Require().NoError(err)

	s.clock.Advance(15 * time.Minute)

	_, err = s.service.Authenticate(s.ctx, token)
	s.ErrorIs(err, model.ErrAccountExpired)

	stored, err := s.storage.GetUser(s.ctx, user.ID)
	s.Require().NoError(err)
	s.False(stored.IsActive)
}

func (s *ServiceSuite) TestAuthenticateReportsExpiredAfterReaperDeactivation() {
	user := s.register("joao", true)
	token, _, err := s.service.Login(s.ctx, "joao", "password123")
	s.Require().NoError(err)

	// Simulate the sweep having already deactivated the account; the
	// session token is kept alive so only the account state matters
	s.clock.Advance(25 * time.Minute)
	user.IsActive = false
	s.Require().NoError(s.storage.SaveUser(s.ctx, user))
	expired := s.clock.Now().Add(-time.Minute)
	user.ExpiresAt = &expired
	s.Require().NoError(s.storage.SaveUser(s.ctx, user))

	_, err = s.service.Authenticate(s.ctx, token)
	s.ErrorIs(err, model.ErrAccountExpired)
}

func (s *ServiceSuite) TestAuthenticateFailsForDeletedUser() {
	user := s.register("joao", true)
	token, _, err := s.service.Login(s.ctx, "joao", "password123")
	s.Require().NoError(err)

	s.Require().NoError(s.storage.DeleteUser(s.ctx, user.ID))

	_, err = s.service.Authenticate(s.ctx, token)
	s.ErrorIs(err, model.ErrInvalidToken)
}

func (s *ServiceSuite) TestAdminNeverExpires() {
	user := s.register("boss", true)
	user.Role = model.RoleAdmin
	s.Require().NoError(s.storage.SaveUser(s.ctx, user))

	s.clock.Advance(365 * 24 * time.Hour)

	_, _, err := s.service.Login(s.ctx, "boss", "password123")
	s.NoError(err)
}

// ChangePassword tests

func (s *ServiceSuite) TestChangePasswordSucceeds() {
	user := s.register("joao", true)

	err := s.service.ChangePassword(s.ctx, user.ID, "password123", "newpassword")
	s.Require().NoError(err)

	_, _, err = s.service.Login(s.ctx, "joao", "newpassword")
	s.NoError(err)
	_, _, err = s.service.Login(s.ctx, "joao", "password123")
	s.ErrorIs(err, model.ErrInvalidCredentials)
}

func (s *ServiceSuite) TestChangePasswordFailsWithWrongCurrent() {
	user := s.register("joao", true)

	err := s.service.ChangePassword(s.ctx, user.ID, "wrong", "newpassword")
	s.ErrorIs(err, model.ErrWrongPassword)
}

// RequireAdmin tests

func (s *ServiceSuite) TestRequireAdminRejectsRegularUser() {
	user := s.register("joao", true)
	s.ErrorIs(RequireAdmin(user), model.ErrAdminOnly)
}

func (s *ServiceSuite) TestRequireAdminAcceptsAdmin() {
	user := s.register("boss", true)
	user.Role = model.RoleAdmin
	s.NoError(RequireAdmin(user))
}
