// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

// Package dlog wires up the slog handlers the dock demo runs with: a
// discard handler for headless test runs, a historical ring buffer so a
// debug pane can show recent log lines inside the TUI itself (logging to
// stderr would just corrupt the terminal), and a panic catcher so a crash
// while the alt-screen is active leaves a readable dump behind instead of
// a garbled terminal.
package dlog

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"sync"
	"time"
)

// Discard is a [slog.Handler] that drops every record. Used in tests and
// any other context where the dock engine's OnMinSizeChanged/OnVisibilityChanged
// churn shouldn't reach a real sink.
type Discard struct{}

// NewDiscard returns a handler that discards all records.
func NewDiscard() slog.Handler { return Discard{} }

func (Discard) Enabled(context.Context, slog.Level) bool  { return false }
func (Discard) Handle(context.Context, slog.Record) error { return nil }
func (h Discard) WithAttrs([]slog.Attr) slog.Handler       { return h }
func (h Discard) WithGroup(string) slog.Handler            { return h }

var _ slog.Handler = (*Historical)(nil)

// Historical wraps another handler and keeps the last maxEntries records
// in memory, so a running TUI can render its own recent log history (a
// separator drag or a min-size cascade is easiest to debug by watching
// the last dozen or so events, not by tailing a file in another window).
type Historical struct {
	handler    slog.Handler
	maxEntries int
	minLevel   slog.Level

	mu      sync.RWMutex
	entries []slog.Record
	onAdded func()
}

// NewHistorical creates a Historical handler that retains up to
// maxEntries records at or above minLevel, forwarding every record
// (regardless of level) to handler.
func NewHistorical(maxEntries int, minLevel slog.Level, handler slog.Handler) *Historical {
	return &Historical{
		handler:    handler,
		maxEntries: maxEntries,
		minLevel:   minLevel,
		entries:    make([]slog.Record, 0, maxEntries),
	}
}

// WithOnAdded registers a callback invoked (in a new goroutine) whenever a
// record is retained, so a bubbletea program can dispatch a Cmd to redraw
// the debug pane on new log activity rather than polling.
func (h *Historical) WithOnAdded(fn func()) *Historical {
	h.mu.Lock()
	h.onAdded = fn
	h.mu.Unlock()
	return h
}

func (h *Historical) Enabled(ctx context.Context, l slog.Level) bool {
	return h.handler.Enabled(ctx, l)
}

func (h *Historical) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= h.minLevel {
		cloned := r.Clone()
		h.mu.Lock()
		h.entries = append(h.entries, cloned)
		if len(h.entries) > h.maxEntries {
			h.entries = h.entries[len(h.entries)-h.maxEntries:]
		}
		fn := h.onAdded
		h.mu.Unlock()
		if fn != nil {
			go fn()
		}
	}
	return h.handler.Handle(ctx, r)
}

func (h *Historical) WithAttrs(attrs []slog.Attr) slog.Handler {
	return NewHistorical(h.maxEntries, h.minLevel, h.handler.WithAttrs(attrs))
}

func (h *Historical) WithGroup(name string) slog.Handler {
	return NewHistorical(h.maxEntries, h.minLevel, h.handler.WithGroup(name))
}

// Entries returns the retained records, oldest first. Callers must not
// mutate the returned slice.
func (h *Historical) Entries() []slog.Record {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.entries
}

var _ slog.Handler = (*levelOverride)(nil)

type levelOverride struct {
	min     slog.Level
	handler slog.Handler
}

// NewLevelOverride returns a handler that only lets records at or above
// min through to handler, letting a -v flag raise or lower verbosity
// without rebuilding the logger.
func NewLevelOverride(min slog.Level, handler slog.Handler) slog.Handler {
	return &levelOverride{min: min, handler: handler}
}

func (h *levelOverride) Enabled(_ context.Context, l slog.Level) bool { return l >= h.min }
func (h *levelOverride) Handle(ctx context.Context, r slog.Record) error {
	return h.handler.Handle(ctx, r)
}
func (h *levelOverride) WithAttrs(attrs []slog.Attr) slog.Handler {
	return NewLevelOverride(h.min, h.handler.WithAttrs(attrs))
}
func (h *levelOverride) WithGroup(name string) slog.Handler {
	return NewLevelOverride(h.min, h.handler.WithGroup(name))
}

// PanicLogPath builds "<dir>/panic-<app>-<timestamp>.log".
func PanicLogPath(dir, app string) string {
	return filepath.Join(dir, fmt.Sprintf("panic-%s-%s.log", app, time.Now().Format("20060102-150405")))
}

// CatchPanics arranges for an unrecovered panic to be written to path
// instead of interleaving with (and corrupting) the alt-screen terminal
// output. The returned closer must run via defer in main, after the
// terminal has been restored; it removes the file if nothing was
// written to it.
func CatchPanics(path string) (closer func(), err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, err
	}
	if err := debug.SetCrashOutput(f, debug.CrashOptions{}); err != nil {
		_ = f.Close()
		return nil, err
	}
	_ = f.Close() // SetCrashOutput dup'd the fd; safe to close our handle now.

	size := func() int64 {
		st, err := os.Stat(path)
		if err != nil {
			return -1
		}
		return st.Size()
	}

	return func() {
		_ = debug.SetCrashOutput(nil, debug.CrashOptions{})
		if r := recover(); r != nil && size() <= 0 {
			stack := debug.Stack()
			if f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0o600); err == nil {
				fmt.Fprintf(f, "panic: %v\n%s", r, stack)
				_ = f.Close()
			}
		}
		if size() <= 0 {
			_ = os.Remove(path)
			return
		}
		fmt.Fprintf(os.Stderr, "\npanic occurred, wrote dump to %s\n", path)
	}, nil
}
