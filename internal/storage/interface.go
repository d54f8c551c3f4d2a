package storage

import (
	"context"

	"github.com/nucleobets/backend/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// User operations
	SaveUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id model.UserID) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	ListUsers(ctx context.Context) ([]*model.User, error)
	DeleteUser(ctx context.Context, id model.UserID) error

	// Analysis operations
	SaveAnalysis(ctx context.Context, analysis *model.Analysis) error
	GetAnalysis(ctx context.Context, id model.AnalysisID) (*model.Analysis, error)
	// ListAnalyses returns analyses newest-first. limit <= 0 means all.
	ListAnalyses(ctx context.Context, limit int) ([]*model.Analysis, error)
	DeleteAnalysis(ctx context.Context, id model.AnalysisID) error

	// Valuable tip operations
	SaveTip(ctx context.Context, tip *model.ValuableTip) error
	GetTip(ctx context.Context, id model.TipID) (*model.ValuableTip, error)
	// ListTips returns tips newest-first. limit <= 0 means all.
	ListTips(ctx context.Context, limit int) ([]*model.ValuableTip, error)
	DeleteTip(ctx context.Context, id model.TipID) error
}
