// Package config holds the process wide settings of subspace.
//
// Settings are read from the environment once, at start up,
// and are immutable afterwards.
package config

import (
	"context"
	"os"

	"go.llib.dev/frameless/pkg/env"
	"go.llib.dev/frameless/pkg/logging"
)

const EnvKeyOverflowChecks = "SUBSPACE_OVERFLOW_CHECKS"

type Config struct {
	// OverflowChecks decides what the default integer operators do on overflow.
	// When enabled they panic, otherwise they wrap around.
	OverflowChecks bool `env:"SUBSPACE_OVERFLOW_CHECKS" default:"true"`
}

// Default is the configuration used when the environment has nothing to say.
var Default = Config{OverflowChecks: true}

// Logger is used while loading the configuration.
// Only problems are reported unless the level is lowered.
var Logger = &logging.Logger{Out: os.Stderr, Level: logging.LevelWarn}

// Load reads the configuration from the environment.
//
// An invalid value never fails the process:
// it is reported as a warning and the default configuration is kept.
func Load(ctx context.Context, logger *logging.Logger) Config {
	c := Default
	if err := env.Load(&c); err != nil {
		logger.Warn(ctx, "invalid subspace configuration in the environment, using defaults",
			logging.Field("key", EnvKeyOverflowChecks),
			logging.Field("value", os.Getenv(EnvKeyOverflowChecks)),
			logging.ErrField(err))
		return Default
	}
	logger.Debug(ctx, "subspace configuration loaded",
		logging.Field("overflow_checks", c.OverflowChecks))
	return c
}
