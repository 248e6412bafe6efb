package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// parseEnv overlays cfg with TASKMAN_* environment variables. Unset
// variables leave the current values alone.
func parseEnv(cfg *Config) error {
	if err := envconfig.Process(context.Background(), cfg); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	return nil
}
