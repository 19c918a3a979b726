package main

import (
	"context"
	"fmt"
	"os"
)

// runWatch compiles filename once and again every time it is written,
// until ctx is cancelled.
func runWatch(ctx context.Context, filename, out string, cfg config) int {
	w, err := newWatcher(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer w.close()

	rebuild := func() {
		if runCompile(filename, out, cfg) == 0 {
			fmt.Fprintf(os.Stderr, "%s -> %s: ok\n", filename, out)
		}
	}

	fmt.Fprintf(os.Stderr, "watching %s\n", filename)
	rebuild()

	if err := w.run(ctx, cfg.debounce, rebuild); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
