package muxloop

import (
	"io"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dflemstr/mux/internal/ptyproc"
)

// UserInputSource polls screen for key/mouse events and turns each into a
// UserInput event, followed by a single EndOfUserInput once the screen
// stops yielding events (it was finalized, e.g. on shutdown). For a key
// event Raw holds the byte sequence a real terminal would have sent,
// reconstructed via EncodeKey, since children expect raw terminal protocol
// bytes rather than tcell's decoded representation; mouse events carry no
// Raw bytes.
func UserInputSource(screen tcell.Screen) <-chan Event {
	out := make(chan Event)
	go func() {
		defer close(out)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				out <- EndOfUserInput{}
				return
			}
			switch e := ev.(type) {
			case *tcell.EventKey:
				out <- UserInput{TcellEvent: e, Raw: EncodeKey(e)}
			case *tcell.EventMouse:
				out <- UserInput{TcellEvent: e, Raw: nil}
			case *tcell.EventResize:
				out <- Resized{}
			}
		}
	}()
	return out
}

// ProcessOutputSource reads from r in chunks and emits a ProcessOutput
// event per read, until r returns an error, at which point the channel is
// closed — the owning child's ProcessExit, delivered separately via
// ProcessExitSource, is what the event loop keys its shutdown bookkeeping
// on. A non-io.EOF error is surfaced as a ProcessOutputError before the
// channel closes, rather than being swallowed the way io.EOF is; r is
// expected to translate a closed-PTY EIO into io.EOF itself (see
// ptyproc.Output.Read), so anything else reaching here is a genuine I/O
// failure.
func ProcessOutputSource(index int, r io.Reader) <-chan Event {
	out := make(chan Event)
	go func() {
		defer close(out)
		buf := make([]byte, 4096)
		for {
			n, err := r.Read(buf)
			if n > 0 {
				data := make([]byte, n)
				copy(data, buf[:n])
				out <- ProcessOutput{Index: index, Data: data}
			}
			if err != nil {
				if err != io.EOF {
					out <- ProcessOutputError{Index: index, Err: err}
				}
				return
			}
		}
	}()
	return out
}

// ProcessExitSource forwards a child's single exit result as a ProcessExit
// event, then closes.
func ProcessExitSource(index int, exited <-chan ptyproc.ExitResult) <-chan Event {
	out := make(chan Event)
	go func() {
		defer close(out)
		result, ok := <-exited
		if !ok {
			return
		}
		out <- ProcessExit{Index: result.Index, ExitCode: result.ExitCode, Err: result.Err}
	}()
	return out
}

// ResizeSource polls screen's size every interval and emits Resized only
// when it changes from the last observed size, matching the original's
// 10ms size-comparison interval (tokio::timer::Interval in ui.rs).
func ResizeSource(screen tcell.Screen, interval time.Duration) <-chan Event {
	out := make(chan Event)
	go func() {
		defer close(out)
		lastW, lastH := screen.Size()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			w, h := screen.Size()
			if w != lastW || h != lastH {
				lastW, lastH = w, h
				out <- Resized{}
			}
		}
	}()
	return out
}
