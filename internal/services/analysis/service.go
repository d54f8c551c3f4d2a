package analysis

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/nucleobets/backend/internal/dependencies/clock"
	"github.com/nucleobets/backend/internal/model"
	"github.com/nucleobets/backend/internal/storage"
)

// PublicLimit caps how many analyses non-admin readers see
const PublicLimit = 50

// Validation errors surfaced as bad requests
var (
	ErrInvalidBetType = errors.New("invalid bet type")
	ErrInvalidOutcome = errors.New("invalid outcome")
)

// Service handles analysis publishing and statistics
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new analysis service
func New(storage storage.Storage, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clk,
		logger:  logger,
	}
}

// CreateParams holds the fields of a new analysis
type CreateParams struct {
	Title            string
	MatchInfo        string
	BetType          model.BetType
	Confidence       float64
	DetailedAnalysis string
	Odds             string
	MatchDate        time.Time
}

// Create publishes a new analysis with a pending outcome
func (s *Service) Create(ctx context.Context, p CreateParams) (*model.Analysis, error) {
	if !p.BetType.Valid() {
		return nil, ErrInvalidBetType
	}

	analysis := &model.Analysis{
		ID:               model.AnalysisID(uuid.NewString()),
		Title:            p.Title,
		MatchInfo:        p.MatchInfo,
		BetType:          p.BetType,
		Confidence:       p.Confidence,
		DetailedAnalysis: p.DetailedAnalysis,
		Odds:             p.Odds,
		MatchDate:        p.MatchDate,
		CreatedAt:        s.clock.Now().UTC(),
		Outcome:          model.OutcomePending,
	}

	if err := s.storage.SaveAnalysis(ctx, analysis); err != nil {
		return nil, err
	}
	return analysis, nil
}

// Get returns a single analysis
func (s *Service) Get(ctx context.Context, id model.AnalysisID) (*model.Analysis, error) {
	return s.storage.GetAnalysis(ctx, id)
}

// List returns analyses newest-first. limit <= 0 means all.
func (s *Service) List(ctx context.Context, limit int) ([]*model.Analysis, error) {
	return s.storage.ListAnalyses(ctx, limit)
}

// UpdateParams holds a partial update; nil fields are left untouched
type UpdateParams struct {
	Title            *string
	MatchInfo        *string
	BetType          *model.BetType
	Confidence       *float64
	DetailedAnalysis *string
	Odds             *string
	MatchDate        *time.Time
	Outcome          *model.Outcome
}

// Update applies only the supplied fields to an existing analysis.
// Settling an analysis is just an update that sets the outcome.
func (s *Service) Update(ctx context.Context, id model.AnalysisID, p UpdateParams) (*model.Analysis, error) {
	analysis, err := s.storage.GetAnalysis(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.BetType != nil && !p.BetType.Valid() {
		return nil, ErrInvalidBetType
	}
	if p.Outcome != nil && !p.Outcome.Valid() {
		return nil, ErrInvalidOutcome
	}

	if p.Title != nil {
		analysis.Title = *p.Title
	}
	if p.MatchInfo != nil {
		analysis.MatchInfo = *p.MatchInfo
	}
	if p.BetType != nil {
		analysis.BetType = *p.BetType
	}
	if p.Confidence != nil {
		analysis.Confidence = *p.Confidence
	}
	if p.DetailedAnalysis != nil {
		analysis.DetailedAnalysis = *p.DetailedAnalysis
	}
	if p.Odds != nil {
		analysis.Odds = *p.Odds
	}
	if p.MatchDate != nil {
		analysis.MatchDate = *p.MatchDate
	}
	if p.Outcome != nil {
		analysis.Outcome = *p.Outcome
	}

	if err := s.storage.SaveAnalysis(ctx, analysis); err != nil {
		return nil, err
	}
	return analysis, nil
}

// Delete removes an analysis
func (s *Service) Delete(ctx context.Context, id model.AnalysisID) error {
	return s.storage.DeleteAnalysis(ctx, id)
}

// Stats aggregates outcomes over every analysis.
// Accuracy considers settled analyses only and is rounded to two
// decimal places; it is zero while nothing has settled.
func (s *Service) Stats(ctx context.Context) (*model.Stats, error) {
	analyses, err := s.storage.ListAnalyses(ctx, 0)
	if err != nil {
		return nil, err
	}

	stats := &model.Stats{Total: len(analyses)}
	for _, a := range analyses {
		switch a.Outcome {
		case model.OutcomeWon:
			stats.Won++
		case model.OutcomeLost:
			stats.Lost++
		default:
			stats.Pending++
		}
	}

	if settled := stats.Won + stats.Lost; settled > 0 {
		accuracy := float64(stats.Won) / float64(settled) * 100
		stats.Accuracy = math.Round(accuracy*100) / 100
	}

	return stats, nil
}
