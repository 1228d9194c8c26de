// Package muxloop merges user input, per-child output, per-child exit, and
// resize ticks into a single Event stream and turns per-event UI decisions
// into Action records that the caller fans out to child input sinks. It is
// the Go reinterpretation of ui/mod.rs's event/Action plumbing, with the
// cooperative-scheduler/futures machinery replaced by goroutines and
// channels merged through internal/streamset.
package muxloop

import "github.com/gdamore/tcell/v2"

// Event is one item out of the merged event stream.
type Event interface{ isEvent() }

// UserInput carries a decoded terminal input event (key or mouse) plus the
// byte sequence rebuilt from it (EncodeKey for keys; nil for mouse events
// and for keys EncodeKey does not cover), which is what gets forwarded to
// children.
type UserInput struct {
	TcellEvent tcell.Event
	Raw        []byte
}

// EndOfUserInput is the synthetic sentinel emitted once the user-input
// source is exhausted (the screen stopped yielding events, e.g. after Fini).
type EndOfUserInput struct{}

// ProcessOutput carries bytes read from child Index's PTY.
type ProcessOutput struct {
	Index int
	Data  []byte
}

// ProcessExit reports that child Index has terminated.
type ProcessExit struct {
	Index    int
	ExitCode int
	Err      error
}

// Resized is emitted when the controlling terminal's size changes,
// observed via polling rather than a signal.
type Resized struct{}

// ProcessOutputError reports that reading child Index's PTY failed with
// something other than end-of-stream (io.EOF). ProcessOutputSource still
// closes its channel right after emitting this, since the read loop cannot
// continue past a genuine error either way, but the caller gets a chance
// to surface it instead of it vanishing silently.
type ProcessOutputError struct {
	Index int
	Err   error
}

func (UserInput) isEvent()          {}
func (EndOfUserInput) isEvent()     {}
func (ProcessOutput) isEvent()      {}
func (ProcessExit) isEvent()        {}
func (Resized) isEvent()            {}
func (ProcessOutputError) isEvent() {}

// Action is one outcome of processing an Event: bytes to deliver to one or
// all children, or a per-child resize request (ProcessTermResize, matching
// the original's variant of that name; nothing in this revision produces
// one).
type Action interface {
	isAction()
	// MatchesIndex reports whether this action targets child index i —
	// true for every ProcessInputAll and for ProcessInput/ProcessTermResize
	// with a matching index.
	MatchesIndex(i int) bool
}

// ProcessInput delivers data to exactly one child.
type ProcessInput struct {
	Index int
	Data  []byte
}

// ProcessInputAll delivers data to every child (broadcast mode).
type ProcessInputAll struct {
	Data []byte
}

// ProcessTermResize requests child Index's PTY be resized. Reserved for a
// future revision; nothing in this package currently produces it.
type ProcessTermResize struct {
	Index  int
	Width  int
	Height int
}

func (ProcessInput) isAction()      {}
func (ProcessInputAll) isAction()   {}
func (ProcessTermResize) isAction() {}

func (a ProcessInput) MatchesIndex(i int) bool      { return a.Index == i }
func (ProcessInputAll) MatchesIndex(int) bool       { return true }
func (a ProcessTermResize) MatchesIndex(i int) bool { return a.Index == i }
