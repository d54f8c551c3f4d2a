package user

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
	s.service = New(s.storage, s.clock, 31*24*time.Hour, testutil.NopLogger())
	s.ctx = context.Background()
}

// Create tests

func (s *ServiceSuite) TestCreateUserSucceeds() {
	user, err := s.service.Create(s.ctx, "joao", "joao@example.com", "password123", model.RoleUser, true)
	s.Require().NoError(err)

	s.Equal("joao", user.Username)
	s.Equal(model.RoleUser, user.Role)
	s.True(user.IsActive)
	s.True(user.ApprovedByAdmin)
}

func (s *ServiceSuite) TestCreateUserSetsExpiryForRegularUsers() {
	user, err := s.service.Create(s.ctx, "joao", "joao@example.com", "password123", model.RoleUser, true)
	s.Require().NoError(err)

	s.Require().NotNil(user.ExpiresAt)
	s.Equal(s.clock.Now().UTC().Add(31*24*time.Hour), *user.ExpiresAt)
}

func (s *ServiceSuite) TestCreateAdminHasNoExpiry() {
	admin, err := s.service.Create(s.ctx, "boss", "boss@example.com", "password123", model.RoleAdmin, true)
	s.Require().NoError(err)

	s.Nil(admin.ExpiresAt)
}

func (s *ServiceSuite) TestCreateUnapprovedUser() {
	user, err := s.service.Create(s.ctx, "joao", "joao@example.com", "password123", model.RoleUser, false)
	s.Require().NoError(err)

	s.False(user.ApprovedByAdmin)
}

func (s *ServiceSuite) TestCreateFailsOnDuplicateUsername() {
	_, err := s.service.Create(s.ctx, "joao", "joao@example.com", "password123", model.RoleUser, true)
	s.Require().NoError(err)

	_, err = s.service.Create(s.ctx, "joao", "other@example.com", "password123", model.RoleUser, true)
	s.ErrorIs(err, model.ErrUserExists)
}

// List tests

func (s *ServiceSuite) TestListReturnsUsersOldestFirst() {
	_, _ = s.service.Create(s.ctx, "first", "first@example.com", "pw", model.RoleUser, true)
	s.clock.Advance(time.Minute)
	_, _ = s.service.Create(s.ctx, "second", "second@example.com", "pw", model.RoleUser, true)

	users, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(users, 2)
	s.Equal("first", users[0].Username)
	s.Equal("second", users[1].Username)
}

// Approve tests

func (s *ServiceSuite) TestApproveSetsBothFlags() {
	user, _ := s.service.Create(s.ctx, "joao", "joao@example.com", "pw", model.RoleUser, false)
	user.IsActive = false
	s.Require().NoError(s.storage.SaveUser(s.ctx, user))

	approved, err := s.service.Approve(s.ctx, user.ID)
	s.Require().NoError(err)
	s.True(approved.ApprovedByAdmin)
	s.True(approved.IsActive)
}

func (s *ServiceSuite) TestApproveFailsForUnknownUser() {
	_, err := s.service.Approve(s.ctx, "missing")
	s.ErrorIs(err, model.ErrUserNotFound)
}

// Deactivate tests

func (s *ServiceSuite) TestDeactivateClearsActiveFlag() {
	user, _ := s.service.Create(s.ctx, "joao", "joao@example.com", "pw", model.RoleUser, true)

	deactivated, err := s.service.Deactivate(s.ctx, user.ID)
	s.Require().NoError(err)
	s.False(deactivated.IsActive)
}

// Delete tests

func (s *ServiceSuite) TestDeleteSucceeds() {
	admin, _ := s.service.Create(s.ctx, "boss", "boss@example.com", "pw", model.RoleAdmin, true)
	user, _ := s.service.Create(s.ctx, "joao", "joao@example.com", "pw", model.RoleUser, true)

	err := s.service.Delete(s.ctx, admin, user.ID)
	s.Require().NoError(err)

	_, err = s.storage.GetUser(s.ctx, user.ID)
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *ServiceSuite) TestDeleteRejectsSelf() {
	admin, _ := s.service.Create(s.ctx, "boss", "boss@example.com", "pw", model.RoleAdmin, true)

	err := s.service.Delete(s.ctx, admin, admin.ID)
	s.ErrorIs(err, model.ErrSelfDelete)
}

func (s *ServiceSuite) TestDeleteRejectsAdminTarget() {
	admin, _ := s.service.Create(s.ctx, "boss", "boss@example.com", "pw", model.RoleAdmin, true)
	other, _ := s.service.Create(s.ctx, "boss2", "boss2@example.com", "pw", model.RoleAdmin, true)

	err := s.service.Delete(s.ctx, admin, other.ID)
	s.ErrorIs(err, model.ErrAdminDelete)
}

// EnsureAdmin tests

func (s *ServiceSuite) TestEnsureAdminSeedsWhenNoAdminExists() {
	err := s.service.EnsureAdmin(s.ctx, "admin", "admin@nucleobets.com", "admin123")
	s.Require().NoError(err)

	admin, err := s.storage.GetUserByUsername(s.ctx, "admin")
	s.Require().NoError(err)
	s.True(admin.IsAdmin())
	s.True(admin.ApprovedByAdmin)
	s.Nil(admin.ExpiresAt)
}

func (s *ServiceSuite) TestEnsureAdminIsIdempotent() {
	s.Require().NoError(s.service.EnsureAdmin(s.ctx, "admin", "admin@nucleobets.com", "admin123"))
	s.Require().NoError(s.service.EnsureAdmin(s.ctx, "admin", "admin@nucleobets.com", "admin123"))

	users, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Len(users, 1)
}

func (s *ServiceSuite) TestEnsureAdminSkipsWhenAnyAdminExists() {
	_, _ = s.service.Create(s.ctx, "boss", "boss@example.com", "pw", model.RoleAdmin, true)

	s.Require().NoError(s.service.EnsureAdmin(s.ctx, "admin", "admin@nucleobets.com", "admin123"))

	_, err := s.storage.GetUserByUsername(s.ctx, "admin")
	s.ErrorIs(err, model.ErrUserNotFound)
}
