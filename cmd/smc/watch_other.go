//go:build !linux

package main

import (
	"context"
	"errors"
	"time"
)

type watcher struct{}

func newWatcher(path string) (*watcher, error) {
	return nil, errors.New("watch mode is only supported on linux")
}

func (w *watcher) run(ctx context.Context, debounce time.Duration, onChange func()) error {
	return nil
}

func (w *watcher) close() error {
	return nil
}
