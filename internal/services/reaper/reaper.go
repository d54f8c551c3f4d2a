package reaper

import (
	"context"
	"log/slog"
	"time"

	"github.com/nucleobets/backend/internal/dependencies/clock"
	"github.com/nucleobets/backend/internal/storage"
)

// DefaultInterval is how often the sweep runs when not configured
const DefaultInterval = time.Hour

// Reaper periodically deactivates non-admin accounts whose membership
// expiry has passed. It runs independently of request handling and
// races harmlessly with the login-time lazy eviction: both converge on
// the same deactivated state. Sweep failures are logged and never
// propagate; the next scheduled sweep always runs.
type Reaper struct {
	storage  storage.Storage
	clock    clock.Clock
	logger   *slog.Logger
	interval time.Duration
}

// New creates a reaper. interval <= 0 falls back to DefaultInterval.
func New(storage storage.Storage, clk clock.Clock, interval time.Duration, logger *slog.Logger) *Reaper {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Reaper{
		storage:  storage,
		clock:    clk,
		logger:   logger,
		interval: interval,
	}
}

// Start launches the background sweep loop. One sweep runs immediately,
// then one per interval until ctx is cancelled.
func (r *Reaper) Start(ctx context.Context) {
	go r.run(ctx)
}

func (r *Reaper) run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.sweepAndLog(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.sweepAndLog(ctx)
		}
	}
}

func (r *Reaper) sweepAndLog(ctx context.Context) {
	swept, err := r.Sweep(ctx)
	if err != nil {
		r.logger.Error("expiry sweep failed", slog.String("error", err.Error()))
		return
	}
	if swept > 0 {
		r.logger.Info("expiry sweep deactivated accounts", slog.Int("count", swept))
	}
}

// Sweep deactivates every expired non-admin account and returns how many
// it touched. Admin accounts are skipped regardless of any stored expiry.
// A failure on one account is logged and does not stop the sweep.
func (r *Reaper) Sweep(ctx context.Context) (int, error) {
	users, err := r.storage.ListUsers(ctx)
	if err != nil {
		return 0, err
	}

	now := r.clock.Now()
	swept := 0
	for _, user := range users {
		if !user.Expired(now) || !user.IsActive {
			continue
		}

		user.IsActive = false
		if err := r.storage.SaveUser(ctx, user); err != nil {
			r.logger.Error("failed to deactivate expired account",
				slog.String("user_id", string(user.ID)),
				slog.String("error", err.Error()),
			)
			continue
		}
		swept++
	}

	return swept, nil
}
