package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/outreach/internal/flagx"
)

// parseFlags overlays cfg with command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the REST API, resource paths are appended to it
//	-t int      per-request timeout in seconds (default from Config)
//	-j string   SQLite file of the action journal
//	-l string   log level: debug, info, warn or error
//	-auth       require a non-expired token before opening a view
//
// os.Args is filtered through flagx.FilterArgs first, so -c/-config and any
// flag meant for another component never reach this FlagSet.
func parseFlags(cfg *Config) {
	// -auth is boolean and takes no value.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-j", "-l"}, "-auth")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the REST API")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.JournalPath, "j", cfg.JournalPath, "action journal database path")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.BoolVar(&cfg.AuthRequired, "auth", cfg.AuthRequired, "require a valid token to open views")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
