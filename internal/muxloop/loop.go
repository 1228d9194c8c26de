package muxloop

import "github.com/dflemstr/mux/internal/streamset"

// Merge fans every source into one Event channel via streamset, so the
// caller can range over a single stream regardless of how many children
// or ancillary sources feed it.
func Merge(sources ...<-chan Event) <-chan Event {
	set := streamset.New[Event](0)
	for _, src := range sources {
		set.Add(src)
	}
	set.Close()
	return set.Out()
}

// Outcome is the first-failure summary required once every child has
// exited: ExitCode is nonzero if any child exited unsuccessfully, and
// Index names the first such child.
type Outcome struct {
	ExitCode int
	Index    int
}

// Run consumes events, invoking onEvent for each, until EndOfUserInput is
// observed (still passed to onEvent once). After that point, per spec,
// consumption does not abort — remaining ProcessOutput/ProcessExit events
// for all numProcesses children continue to be drained until every child
// has reported its exit, since in-flight child-exit futures are awaited to
// completion even after the user-input path has ended.
func Run(events <-chan Event, numProcesses int, onEvent func(Event)) Outcome {
	seenExit := make(map[int]bool, numProcesses)
	var outcome Outcome
	recordExit := func(e ProcessExit) {
		if seenExit[e.Index] {
			return
		}
		seenExit[e.Index] = true
		if e.ExitCode != 0 && outcome.ExitCode == 0 {
			outcome.ExitCode = e.ExitCode
			outcome.Index = e.Index
		}
	}

	endOfInput := false
	for ev := range events {
		onEvent(ev)
		switch e := ev.(type) {
		case EndOfUserInput:
			endOfInput = true
		case ProcessExit:
			recordExit(e)
		}
		if endOfInput && len(seenExit) >= numProcesses {
			break
		}
	}

	return outcome
}
