package tip

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nucleobets/backend/internal/dependencies/clock"
	"github.com/nucleobets/backend/internal/model"
	"github.com/nucleobets/backend/internal/storage"
)

// PublicLimit caps how many tips non-admin readers see
const PublicLimit = 10

// Service handles valuable-tip publishing
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new tip service
func New(storage storage.Storage, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clk,
		logger:  logger,
	}
}

// CreateParams holds the fields of a new valuable tip
type CreateParams struct {
	Title           string
	Description     string
	Games           string
	TotalOdds       string
	StakeSuggestion string
}

// Create publishes a new valuable tip
func (s *Service) Create(ctx context.Context, p CreateParams) (*model.ValuableTip, error) {
	tip := &model.ValuableTip{
		ID:              model.TipID(uuid.NewString()),
		Title:           p.Title,
		Description:     p.Description,
		Games:           p.Games,
		TotalOdds:       p.TotalOdds,
		StakeSuggestion: p.StakeSuggestion,
		CreatedAt:       s.clock.Now().UTC(),
	}

	if err := s.storage.SaveTip(ctx, tip); err != nil {
		return nil, err
	}
	return tip, nil
}

// Get returns a single tip
func (s *Service) Get(ctx context.Context, id model.TipID) (*model.ValuableTip, error) {
	return s.storage.GetTip(ctx, id)
}

// List returns tips newest-first. limit <= 0 means all.
func (s *Service) List(ctx context.Context, limit int) ([]*model.ValuableTip, error) {
	return s.storage.ListTips(ctx, limit)
}

// UpdateParams holds a partial update; nil fields are left untouched
type UpdateParams struct {
	Title           *string
	Description     *string
	Games           *string
	TotalOdds       *string
	StakeSuggestion *string
}

// Update applies only the supplied fields to an existing tip
func (s *Service) Update(ctx context.Context, id model.TipID, p UpdateParams) (*model.ValuableTip, error) {
	tip, err := s.storage.GetTip(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.Title != nil {
		tip.Title = *p.Title
	}
	if p.Description != nil {
		tip.Description = *p.Description
	}
	if p.Games != nil {
		tip.Games = *p.Games
	}
	if p.TotalOdds != nil {
		tip.TotalOdds = *p.TotalOdds
	}
	if p.StakeSuggestion != nil {
		tip.StakeSuggestion = *p.StakeSuggestion
	}

	if err := s.storage.SaveTip(ctx, tip); err != nil {
		return nil, err
	}
	return tip, nil
}

// Delete removes a tip
func (s *Service) Delete(ctx context.Context, id model.TipID) error {
	return s.storage.DeleteTip(ctx, id)
}
