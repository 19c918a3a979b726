//go:build linux

package main

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"
)

// pollInterval bounds how long the watcher waits before it checks for
// cancellation or a due rebuild.
const pollInterval = 50 * time.Millisecond

// watcher reports writes to one file through inotify. It watches the
// containing directory so that editors which replace the file by renaming
// a new one over it are noticed too.
type watcher struct {
	fd   int
	dir  string
	name string
}

func newWatcher(path string) (*watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fd, err := unix.InotifyInit1(unix.IN_NONBLOCK | unix.IN_CLOEXEC)
	if err != nil {
		return nil, fmt.Errorf("inotify_init failed: %v", err)
	}

	w := &watcher{fd: fd, dir: filepath.Dir(abs), name: filepath.Base(abs)}
	if _, err := unix.InotifyAddWatch(fd, w.dir, unix.IN_CLOSE_WRITE|unix.IN_MOVED_TO); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("failed to watch %s: %v", w.dir, err)
	}
	return w, nil
}

// run calls onChange, on the calling goroutine, once the watched file has
// been quiet for debounce after a write. It returns when ctx is done.
func (w *watcher) run(ctx context.Context, debounce time.Duration, onChange func()) error {
	buf := make([]byte, 64*(unix.SizeofInotifyEvent+unix.NAME_MAX+1))
	fds := []unix.PollFd{{Fd: int32(w.fd), Events: unix.POLLIN}}

	var due time.Time // zero when no rebuild is pending

	for {
		if ctx.Err() != nil {
			return nil
		}
		if !due.IsZero() && !time.Now().Before(due) {
			due = time.Time{}
			onChange()
		}

		fds[0].Revents = 0
		n, err := unix.Poll(fds, int(pollInterval/time.Millisecond))
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return fmt.Errorf("poll: %v", err)
		}
		if n == 0 {
			continue
		}

		nr, err := unix.Read(w.fd, buf)
		if err == unix.EAGAIN || err == unix.EINTR {
			continue
		}
		if err != nil {
			return fmt.Errorf("reading inotify events: %v", err)
		}

		if w.touched(buf[:nr]) {
			due = time.Now().Add(debounce)
		}
	}
}

// touched reports whether any event in buf names the watched file.
func (w *watcher) touched(buf []byte) bool {
	found := false
	for off := 0; off+unix.SizeofInotifyEvent <= len(buf); {
		ev := (*unix.InotifyEvent)(unsafe.Pointer(&buf[off]))
		nameStart := off + unix.SizeofInotifyEvent
		nameEnd := nameStart + int(ev.Len)
		if nameEnd > len(buf) {
			break
		}
		name := string(bytes.TrimRight(buf[nameStart:nameEnd], "\x00"))
		if ev.Mask&(unix.IN_CLOSE_WRITE|unix.IN_MOVED_TO) != 0 && name == w.name {
			found = true
		}
		off = nameEnd
	}
	return found
}

func (w *watcher) close() error {
	return unix.Close(w.fd)
}
