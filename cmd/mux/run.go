package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dflemstr/mux/internal/argstream"
	"github.com/dflemstr/mux/internal/muxloop"
	"github.com/dflemstr/mux/internal/ptyproc"
	"github.com/dflemstr/mux/internal/tui"
)

const (
	childRows          = 24
	childCols          = 80
	resizePollInterval = 10 * time.Millisecond
)

func runMux(cmd *cobra.Command, opts *options, args []string) error {
	logger, logClose, err := openSessionLog()
	if err != nil {
		return fmt.Errorf("opening session log: %w", err)
	}
	defer logClose()

	if opts.showLimits {
		fmt.Fprintln(cmd.OutOrStdout(), "mux: no platform argument/environment limit is enforced")
		return nil
	}

	delim, err := resolveDelimiter(opts)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	tokens, err := readTokens(opts, delim)
	if err != nil {
		return fmt.Errorf("reading arguments: %w", err)
	}
	if len(tokens) == 0 && opts.noRunIfEmpty {
		return nil
	}

	template := argstream.Template{Initial: args, Replace: opts.replace}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	screen.EnableMouse()
	defer screen.Fini()

	panes := make([]*tui.ProcessPane, 0, len(tokens))
	procs := make([]*ptyproc.Process, 0, len(tokens))
	for i, token := range tokens {
		argv := template.Expand(token)
		if logger != nil && opts.verbose {
			logger.Printf("spawning child %d: %v", i, argv)
		}
		proc, err := ptyproc.Spawn(i, argv, childRows, childCols)
		if err != nil {
			return fmt.Errorf("spawning %q: %w", token, err)
		}
		procs = append(procs, proc)

		pane := tui.NewProcessPane(i, token)
		panes = append(panes, pane)
	}

	if len(procs) == 0 {
		return nil
	}

	controller := tui.NewController(screen, panes)
	controller.State.Draw(screen)
	screen.Show()

	sources := []<-chan muxloop.Event{
		muxloop.UserInputSource(screen),
		muxloop.ResizeSource(screen, resizePollInterval),
	}
	for _, p := range procs {
		sources = append(sources, muxloop.ProcessOutputSource(p.Index, p.Output()))
		sources = append(sources, muxloop.ProcessExitSource(p.Index, p.Exited()))
	}
	events := muxloop.Merge(sources...)

	outcome := muxloop.Run(events, len(procs), func(ev muxloop.Event) {
		for _, action := range controller.HandleEvent(ev) {
			dispatchAction(procs, action)
		}
	})

	if outcome.ExitCode != 0 {
		return fmt.Errorf("child %d exited with code %d", outcome.Index, outcome.ExitCode)
	}
	return nil
}

func dispatchAction(procs []*ptyproc.Process, action muxloop.Action) {
	for _, p := range procs {
		if action.MatchesIndex(p.Index) {
			switch a := action.(type) {
			case muxloop.ProcessInput:
				_, _ = p.Input().Write(a.Data)
			case muxloop.ProcessInputAll:
				_, _ = p.Input().Write(a.Data)
			case muxloop.ProcessTermResize:
				_ = p.Resize(a.Height, a.Width)
			}
		}
	}
}

func resolveDelimiter(opts *options) (argstream.Delimiter, error) {
	if opts.null {
		zero := byte(0)
		return argstream.Delimiter{Byte: &zero}, nil
	}
	if opts.delimiter == "" {
		return argstream.Delimiter{}, nil
	}
	return argstream.ParseDelimiter(opts.delimiter)
}

func readTokens(opts *options, delim argstream.Delimiter) ([]string, error) {
	src := argstream.Source{File: opts.argFile}
	rc, err := src.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	scanner := argstream.NewScanner(rc, delim)
	var tokens []string
	for {
		raw, err := scanner.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, argstream.DecodeUTF8Lossy([]byte(raw)))
	}
	return tokens, nil
}

func openSessionLog() (*log.Logger, func(), error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return nil, func() {}, err
	}
	dir := filepath.Join(cacheDir, "mux")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, func() {}, err
	}
	f, err := os.OpenFile(filepath.Join(dir, "session.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, func() {}, err
	}
	logger := log.New(f, "", log.LstdFlags)
	logger.Printf("session %s starting", uuid.NewString())
	return logger, func() { f.Close() }, nil
}
