package config

import (
	"flag"
	"os"
	"time"

	"github.com/dstepanovs/notedesk/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the notes service (default from Config)
//	-d string   path to the local state database
//	-t int      request timeout in seconds, 0 for none
//
// The function filters os.Args to only the flags it knows about, via
// flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the notes service")
	fs.StringVar(&cfg.StateDBPath, "d", cfg.StateDBPath, "path to the local state database")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout in seconds (0 = none)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
