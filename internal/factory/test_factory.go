package factory

import (
	"io"
	"log/slog"

	"github.com/nucleobets/backend/internal/dependencies/clock"
	"github.com/nucleobets/backend/internal/services/auth"
	"github.com/nucleobets/backend/internal/storage/memory"
)

// NewForTest creates an App backed by in-memory storage and the given
// clock, so tests can control time. The zero auth config gets a fixed
// test secret.
func NewForTest(clk clock.Clock, authCfg auth.Config) (*App, error) {
	if authCfg.Secret == "" {
		authCfg.Secret = "test-signing-secret"
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return newWithDependencies(memory.New(), clk, Config{AuthConfig: authCfg}, logger)
}
