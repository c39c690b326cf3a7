// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

// Command dockdemo is a terminal demo of the recursive docking layout
// engine: three panes (a sidebar, an editor, and a console) hosted in a
// single tree, their separators draggable with the mouse.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	tea "charm.land/bubbletea/v2"
	"golang.org/x/sync/errgroup"

	"github.com/klardock/docklayout/internal/dlog"
	"github.com/klardock/docklayout/pkg/dock"
	"github.com/klardock/docklayout/pkg/geometry"
)

func main() {
	verbose := flag.Bool("v", false, "enable debug logging")
	savePath := flag.String("save", "", "path to periodically write the layout to, as JSON (disabled if empty)")
	sepThickness := flag.Int("separator-thickness", dock.DefaultSeparatorThickness, "pixel gap rendered between neighbouring panes")
	minFloorW := flag.Int("min-width", dock.DefaultMinSize.W, "minimum width floor a pane can be shrunk to")
	minFloorH := flag.Int("min-height", dock.DefaultMinSize.H, "minimum height floor a pane can be shrunk to")
	lazyDrag := flag.Bool("lazy-drag", false, "defer separator drags until release instead of applying them on every pointer move")
	flag.Parse()

	closer, err := dlog.CatchPanics(dlog.PanicLogPath(os.TempDir(), "dockdemo"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "dockdemo: setting up panic capture:", err)
		os.Exit(1)
	}
	defer closer()

	minLevel := slog.LevelInfo
	if *verbose {
		minLevel = slog.LevelDebug
	}
	history := dlog.NewHistorical(200, minLevel, dlog.NewDiscard())
	log := slog.New(dlog.NewLevelOverride(minLevel, history))

	dragMode := dock.EagerDrag
	if *lazyDrag {
		dragMode = dock.LazyDrag
	}
	m := newModel(log, modelConfig{
		separatorThickness: *sepThickness,
		minFloor:           geometry.Size{W: *minFloorW, H: *minFloorH},
		dragMode:           dragMode,
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	program := tea.NewProgram(m)
	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		_, err := program.Run()
		cancel()
		return err
	})

	if *savePath != "" {
		group.Go(func() error {
			return autosave(ctx, program, *savePath, log)
		})
	}

	if err := group.Wait(); err != nil {
		fmt.Fprintln(os.Stderr, "dockdemo:", err)
		os.Exit(1)
	}
}

// autosave periodically asks the running program to serialize its layout
// and writes the result to path, until ctx is cancelled (on quit or
// interrupt). It round-trips through the bubbletea event loop via
// saveRequestedMsg rather than reaching into the model directly, since
// the model isn't safe to read from outside its own Update goroutine.
func autosave(ctx context.Context, program *tea.Program, path string, log *slog.Logger) error {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			reply := make(chan []byte, 1)
			program.Send(saveRequestedMsg{reply: reply})

			var data []byte
			select {
			case data = <-reply:
			case <-ctx.Done():
				return nil
			}
			if data == nil {
				continue
			}
			if err := os.WriteFile(path, data, 0o600); err != nil {
				log.Error("autosave", "error", err, "path", path)
			}
		}
	}
}
