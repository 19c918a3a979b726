package main

import (
	"time"

	"github.com/xyproto/env/v2"
)

// config holds the driver settings that come from the environment.
// Command line flags take precedence over them.
type config struct {
	verbose   bool          // SMC_VERBOSE
	outputExt string        // SMC_OUTPUT_EXT
	debounce  time.Duration // SMC_WATCH_DEBOUNCE_MS
}

// loadConfig reads the environment as it is now. env caches variables on
// first use, so the cache is refreshed before reading.
func loadConfig() config {
	env.Load()

	cfg := config{
		verbose:   env.Bool("SMC_VERBOSE"),
		outputExt: env.Str("SMC_OUTPUT_EXT", ".sm"),
		debounce:  time.Duration(env.Int("SMC_WATCH_DEBOUNCE_MS", 100)) * time.Millisecond,
	}
	if cfg.outputExt == "" {
		cfg.outputExt = ".sm"
	}
	if cfg.debounce < 0 {
		cfg.debounce = 0
	}
	return cfg
}
