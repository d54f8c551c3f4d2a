package reaper

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

type ReaperSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	reaper  *Reaper
	ctx     context.Context
}

func TestReaperSuite(t *testing.T) {
	suite.Run(t, new(ReaperSuite))
}

func (s *ReaperSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.reaper = New(s.storage, s.clock, time.Hour, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ReaperSuite) addUser(username string, role model.Role, active bool, expiresIn time.Duration) *model.User {
	user := &model.User{
		ID:              model.UserID("id-" + username),
		Username:        username,
		Role:            role,
		IsActive:        active,
		ApprovedByAdmin: true,
		CreatedAt:       s.clock.Now().UTC(),
	}
	if expiresIn != 0 {
		expires := s.clock.Now().Add(expiresIn)
		user.ExpiresAt = &expires
	}
	s.Require().NoError(s.storage.SaveUser(s.ctx, user))
	return user
}

func (s *ReaperSuite) TestSweepDeactivatesExpiredUsers() {
	s.addUser("lapsed", model.RoleUser, true, -time.Hour)
	s.addUser("current", model.RoleUser, true, time.Hour)

	swept, err := s.reaper.Sweep(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, swept)

	lapsed, _ := s.storage.GetUserByUsername(s.ctx, "lapsed")
	s.False(lapsed.IsActive)
	current, _ := s.storage.GetUserByUsername(s.ctx, "current")
	s.True(current.IsActive)
}

func (s *ReaperSuite) TestSweepNeverTouchesAdmins() {
	// Even a stored expiry on an admin row is ignored
	s.addUser("boss", model.RoleAdmin, true, -time.Hour)

	swept, err := s.reaper.Sweep(s.ctx)
	s.Require().NoError(err)
	s.Equal(0, swept)

	boss, _ := s.storage.GetUserByUsername(s.ctx, "boss")
	s.True(boss.IsActive)
}

func (s *ReaperSuite) TestSweepSkipsAlreadyInactive() {
	s.addUser("lapsed", model.RoleUser, false, -time.Hour)

	swept, err := s.reaper.Sweep(s.ctx)
	s.Require().NoError(err)
	s.Equal(0, swept)
}

func (s *ReaperSuite) TestSweepIsIdempotent() {
	s.addUser("lapsed", model.RoleUser, true, -time.Hour)

	first, err := s.reaper.Sweep(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, first)

	second, err := s.reaper.Sweep(s.ctx)
	s.Require().NoError(err)
	s.Equal(0, second)
}

func (s *ReaperSuite) TestSweepCatchesUsersAsClockAdvances() {
	s.addUser("fresh", model.RoleUser, true, 30*time.Minute)

	swept, err := s.reaper.Sweep(s.ctx)
	s.Require().NoError(err)
	s.Equal(0, swept)

	s.clock.Advance(time.Hour)

	swept, err = s.reaper.Sweep(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, swept)
}

func (s *ReaperSuite) TestSweepIgnoresUsersWithoutExpiry() {
	s.addUser("permanent", model.RoleUser, true, 0)

	s.clock.Advance(365 * 24 * time.Hour)

	swept, err := s.reaper.Sweep(s.ctx)
	s.Require().NoError(err)
	s.Equal(0, swept)
}
