// Package config loads runtime settings for the TaskManager CLI. Sources are
// layered, later ones winning: built-in defaults, a JSON file (-c/-config),
// TASKMAN_* environment variables, command-line flags.
package config

import "time"

// Config holds the runtime settings of the client.
type Config struct {
	// ServerURL is the base URL of the TaskManager API.
	ServerURL string `env:"TASKMAN_SERVER_URL, overwrite"`
	// RequestTimeout bounds every single gateway call.
	RequestTimeout time.Duration `env:"TASKMAN_REQUEST_TIMEOUT, overwrite"`
	// DatabasePath is where the durable session record lives.
	DatabasePath string `env:"TASKMAN_DB_PATH, overwrite"`
	// LogLevel is the minimum level emitted: debug, info, warn, error.
	LogLevel string `env:"TASKMAN_LOG_LEVEL, overwrite"`
	// LogPretty switches from JSON logs to the console format.
	LogPretty bool `env:"TASKMAN_LOG_PRETTY, overwrite"`
}

// LoadDefaults populates c with the built-in defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:8080"
	c.RequestTimeout = 15 * time.Second
	c.DatabasePath = "taskman.db"
	c.LogLevel = "info"
	c.LogPretty = true
}

// LoadConfig builds a Config from all sources. args is the raw command line
// (usually os.Args[1:]).
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
