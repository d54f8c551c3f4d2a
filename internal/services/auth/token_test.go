package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/nucleobets/backend/internal/dependencies/mocks"
	"github.com/nucleobets/backend/internal/model"
)

type TokenSuite struct {
	suite.Suite
	clock  *mocks.MockClock
	issuer *TokenIssuer
}

func TestTokenSuite(t *testing.T) {
	suite.Run(t, new(TokenSuite))
}

func (s *TokenSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.issuer = NewTokenIssuer("test-signing-secret", 15*time.Minute, s.clock)
}

func (s *TokenSuite) TestIssueAndVerifyRoundTrip() {
	token, err := s.issuer.Issue("user-1", 0)
	s.Require().NoError(err)
	s.NotEmpty(token)

	userID, err := s.issuer.Verify(token)
	s.Require().NoError(err)
	s.Equal(model.UserID("user-1"), userID)
}

func (s *TokenSuite) TestVerifyFailsAfterExpiry() {
	token, err := s.issuer.Issue("user-1", 0)
	s.Require().NoError(err)

	s.clock.Advance(16 * time.Minute)

	_, err = s.issuer.Verify(token)
	s.ErrorIs(err, model.ErrInvalidToken)
}

func (s *TokenSuite) TestVerifySucceedsJustBeforeExpiry() {
	token, err := s.issuer.Issue("user-1", 0)
	s.Require().NoError(err)

	s.clock.Advance(14 * time.Minute)

	_, err = s.issuer.Verify(token)
	s.NoError(err)
}

func (s *TokenSuite) TestExplicitTTLOverridesDefault() {
	token, err := s.issuer.Issue("user-1", time.Hour)
	s.Require().NoError(err)

	s.clock.Advance(59 * time.Minute)
	_, err = s.issuer.Verify(token)
	s.NoError(err)

	s.clock.Advance(2 * time.Minute)
	_, err = s.issuer.Verify(token)
	s.ErrorIs(err, model.ErrInvalidToken)
}

func (s *TokenSuite) TestVerifyRejectsTamperedToken() {
	token, err := s.issuer.Issue("user-1", 0)
	s.Require().NoError(err)

	tampered := token[:len(token)-2] + "xx"
	_, err = s.issuer.Verify(tampered)
	s.ErrorIs(err, model.ErrInvalidToken)
}

func (s *TokenSuite) TestVerifyRejectsTokenFromDifferentSecret() {
	other := NewTokenIssuer("a-different-secret", 15*time.Minute, s.clock)
	token, err := other.Issue("user-1", 0)
	s.Require().NoError(err)

	_, err = s.issuer.Verify(token)
	s.ErrorIs(err, model.ErrInvalidToken)
}

func (s *TokenSuite) TestVerifyRejectsGarbage() {
	_, err := s.issuer.Verify("not.a.jwt")
	s.ErrorIs(err, model.ErrInvalidToken)

	_, err = s.issuer.Verify("")
	s.ErrorIs(err, model.ErrInvalidToken)
}
