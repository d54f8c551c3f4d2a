package factory

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/nucleobets/backend/internal/dependencies/clock"
	"github.com/nucleobets/backend/internal/services/analysis"
	"github.com/nucleobets/backend/internal/services/auth"
	"github.com/nucleobets/backend/internal/services/reaper"
	"github.com/nucleobets/backend/internal/services/tip"
	"github.com/nucleobets/backend/internal/services/user"
	"github.com/nucleobets/backend/internal/storage"
	"github.com/nucleobets/backend/internal/storage/memory"
	redisstorage "github.com/nucleobets/backend/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock

	// Services
	AuthService     *auth.Service
	UserService     *user.Service
	AnalysisService *analysis.Service
	TipService      *tip.Service
	Reaper          *reaper.Reaper
}

// Config holds configuration for the application factory
type Config struct {
	// AuthConfig holds configuration for the auth service.
	// The signing secret is required.
	AuthConfig auth.Config
	// ReapInterval is how often the expiry sweep runs (optional)
	ReapInterval time.Duration
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	return newWithDependencies(store, clock.New(), cfg, logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, cfg Config, logger *slog.Logger) (*App, error) {
	authService, err := auth.New(store, clk, cfg.AuthConfig, logger)
	if err != nil {
		return nil, err
	}

	membershipTTL := cfg.AuthConfig.MembershipTTL
	if membershipTTL == 0 {
		membershipTTL = auth.DefaultConfig().MembershipTTL
	}

	return &App{
		Storage:         store,
		Clock:           clk,
		AuthService:     authService,
		UserService:     user.New(store, clk, membershipTTL, logger),
		AnalysisService: analysis.New(store, clk, logger),
		TipService:      tip.New(store, clk, logger),
		Reaper:          reaper.New(store, clk, cfg.ReapInterval, logger),
	}, nil
}
