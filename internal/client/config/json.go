package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/taskmanhq/taskman-cli/internal/flagx"
)

// jsonConfig is the file-format DTO. The timeout is a Go duration string
// ("15s", "1m30s") so the file stays readable.
type jsonConfig struct {
	ServerURL      string `json:"server_url"`
	RequestTimeout string `json:"request_timeout"`
	DatabasePath   string `json:"database_path"`
	LogLevel       string `json:"log_level"`
	LogPretty      *bool  `json:"log_pretty"`
}

// parseJSON overlays cfg with values from the JSON file named by -c/-config.
// No flag, no file, no overlay. Absent keys leave the current value alone.
func parseJSON(cfg *Config) error {
	path := flagx.JSONConfigFlags()
	if path == "" {
		return nil
	}
	return parseJSONFile(cfg, path)
}

func parseJSONFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	if jc.ServerURL != "" {
		cfg.ServerURL = jc.ServerURL
	}
	if jc.RequestTimeout != "" {
		d, err := time.ParseDuration(jc.RequestTimeout)
		if err != nil {
			return fmt.Errorf("parse request_timeout: %w", err)
		}
		cfg.RequestTimeout = d
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.LogPretty != nil {
		cfg.LogPretty = *jc.LogPretty
	}
	return nil
}
