package main

import (
	"github.com/spf13/cobra"
)

// options collects every CLI flag from §6 of the spec this binary
// implements. Several xargs-parity flags are accepted for compatibility
// but have no effect on mux's single-shot, all-at-once spawn model (there
// is no batching across invocations the way xargs batches argument
// groups); those are called out below.
type options struct {
	null            bool
	argFile         string
	delimiter       string
	eof             string // accepted for compatibility, unused
	replace         string
	maxLines        int    // accepted for compatibility, unused: mux reads the whole stream
	maxArgs         int    // accepted for compatibility, unused: one child per token, always
	maxProcs        int    // accepted for compatibility, unused: all children run concurrently
	interactive     bool   // accepted for compatibility, unused: mux is always interactive
	processSlotVar  string // accepted for compatibility, unused: no subprocess env var substitution
	noRunIfEmpty    bool
	maxChars        int // accepted for compatibility, unused
	showLimits      bool
	verbose         bool
	exitOnFirstFail bool // accepted for compatibility, unused
}

// newRootCmd builds the mux command: COMMAND [INITIAL-ARGS...], following
// the one-New*Cmd-per-command, flags-bound-in-constructor pattern the
// corpus's cobra-based CLIs use.
func newRootCmd() *cobra.Command {
	opts := &options{delimiter: "", replace: "{}"}

	cmd := &cobra.Command{
		Use:   "mux COMMAND [INITIAL-ARGS...]",
		Short: "Run one command per input token, each in its own PTY, multiplexed into one terminal UI",
		Long: `mux reads a stream of tokens from standard input (or a file), spawns one
PTY-attached child per token by expanding COMMAND's template with that
token, and renders every child's output in a tabbed terminal UI. Keystrokes
and mouse events are routed either to every child (broadcast) or to the
currently focused one.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMux(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.null, "null", "0", false, "delimiter is byte 0x00")
	flags.StringVarP(&opts.argFile, "arg-file", "a", "", "read tokens from FILE instead of stdin")
	flags.StringVarP(&opts.delimiter, "delimiter", "d", "", "single ASCII byte used as the token delimiter")
	flags.StringVarP(&opts.eof, "eof", "e", "", "accepted for compatibility")
	flags.StringVarP(&opts.replace, "replace", "i", "{}", "placeholder string substituted into COMMAND's template")
	flags.IntVarP(&opts.maxLines, "max-lines", "L", 0, "accepted for compatibility")
	flags.IntVarP(&opts.maxArgs, "max-args", "n", 0, "accepted for compatibility")
	flags.IntVarP(&opts.maxProcs, "max-procs", "P", 0, "accepted for compatibility")
	flags.BoolVarP(&opts.interactive, "interactive", "p", false, "accepted for compatibility")
	flags.StringVar(&opts.processSlotVar, "process-slot-var", "", "accepted for compatibility")
	flags.BoolVarP(&opts.noRunIfEmpty, "no-run-if-empty", "r", false, "do not spawn anything if no tokens are read")
	flags.IntVarP(&opts.maxChars, "max-chars", "s", 0, "accepted for compatibility")
	flags.BoolVar(&opts.showLimits, "show-limits", false, "print platform argument/environment limits and exit")
	flags.BoolVarP(&opts.verbose, "verbose", "t", false, "log each spawned command")
	flags.BoolVarP(&opts.exitOnFirstFail, "exit", "x", false, "accepted for compatibility")

	return cmd
}
