package config

import (
	"flag"
	"time"

	"github.com/taskmanhq/taskman-cli/internal/flagx"
)

// parseFlags overlays cfg with command-line flags:
//
//	-a string   base URL of the TaskManager API
//	-t int      request timeout in seconds
//	-d string   path to the local database
//
// Only the flags above are consumed; everything else in args is left for
// other packages (flagx.FilterArgs).
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-t", "-d"})

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the TaskManager API")
	timeoutSec := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout in seconds")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local database")

	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg.RequestTimeout = time.Duration(*timeoutSec) * time.Second
	return nil
}
