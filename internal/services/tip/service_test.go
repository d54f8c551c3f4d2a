package tip

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
	s.service = New(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) create(title string) *model.ValuableTip {
	tip, err := s.service.Create(s.ctx, CreateParams{
		Title:           title,
		Description:     "Weekend accumulator",
		Games:           "Flamengo vs Palmeiras; Santos vs Grêmio",
		TotalOdds:       "3.40",
		StakeSuggestion: "2% of bankroll",
	})
	s.Require().NoError(err)
	return tip
}

func (s *ServiceSuite) TestCreatePersists() {
	tip := s.create("Weekend combo")

	stored, err := s.storage.GetTip(s.ctx, tip.ID)
	s.Require().NoError(err)
	s.Equal("Weekend combo", stored.Title)
	s.Equal("3.40", stored.TotalOdds)
	s.Equal(s.clock.Now().UTC(), stored.CreatedAt)
}

func (s *ServiceSuite) TestListNewestFirst() {
	s.create("older")
	s.clock.Advance(time.Minute)
	s.create("newer")

	tips, err := s.service.List(s.ctx, 0)
	s.Require().NoError(err)
	s.Require().Len(tips, 2)
	s.Equal("newer", tips[0].Title)
	s.Equal("older", tips[1].Title)
}

func (s *ServiceSuite) TestListHonorsLimit() {
	for i := 0; i < 4; i++ {
		s.create("tip")
		s.clock.Advance(time.Minute)
	}

	tips, err := s.service.List(s.ctx, 2)
	s.Require().NoError(err)
	s.Len(tips, 2)
}

func (s *ServiceSuite) TestUpdateAppliesOnlyProvidedFields() {
	tip := s.create("original")

	odds := "4.10"
	updated, err := s.service.Update(s.ctx, tip.ID, UpdateParams{TotalOdds: &odds})
	s.Require().NoError(err)

	s.Equal("4.10", updated.TotalOdds)
	s.Equal("original", updated.Title)
	s.Equal("2% of bankroll", updated.StakeSuggestion)
}

func (s *ServiceSuite) TestUpdateFailsForMissingTip() {
	title := "t"
	_, err := s.service.Update(s.ctx, "missing", UpdateParams{Title: &title})
	s.ErrorIs(err, model.ErrTipNotFound)
}

func (s *ServiceSuite) TestDeleteRemovesTip() {
	tip := s.create("doomed")

	s.Require().NoError(s.service.Delete(s.ctx, tip.ID))

	_, err := s.storage.GetTip(s.ctx, tip.ID)
	s.ErrorIs(err, model.ErrTipNotFound)
}
