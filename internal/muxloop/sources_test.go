package muxloop

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dflemstr/mux/internal/ptyproc"
)

func TestUserInputSourceEmitsKeyThenEndOfInput(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	screen.SetSize(80, 24)

	events := UserInputSource(screen)

	if err := screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone)); err != nil {
		t.Fatalf("post event: %v", err)
	}

	select {
	case ev := <-events:
		ui, ok := ev.(UserInput)
		if !ok {
			t.Fatalf("expected UserInput, got %T", ev)
		}
		if string(ui.Raw) != "a" {
			t.Errorf("expected raw 'a', got %q", ui.Raw)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for UserInput event")
	}

	screen.Fini()

	select {
	case ev := <-events:
		if _, ok := ev.(EndOfUserInput); !ok {
			t.Errorf("expected EndOfUserInput after screen finalization, got %T", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for EndOfUserInput")
	}
}

func TestProcessOutputSourceEmitsChunks(t *testing.T) {
	r, w := io.Pipe()
	events := ProcessOutputSource(5, r)

	go func() {
		w.Write([]byte("chunk"))
		w.Close()
	}()

	select {
	case ev := <-events:
		po, ok := ev.(ProcessOutput)
		if !ok {
			t.Fatalf("expected ProcessOutput, got %T", ev)
		}
		if po.Index != 5 || string(po.Data) != "chunk" {
			t.Errorf("expected index 5 data 'chunk', got %+v", po)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for ProcessOutput")
	}

	select {
	case _, ok := <-events:
		if ok {
			t.Error("expected channel to close once the reader is exhausted")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for channel close")
	}
}

// erroringReader returns a fixed non-EOF error on every Read.
type erroringReader struct{ err error }

func (r erroringReader) Read(p []byte) (int, error) { return 0, r.err }

func TestProcessOutputSourceSurfacesNonEOFError(t *testing.T) {
	want := errors.New("device disconnected")
	events := ProcessOutputSource(2, erroringReader{err: want})

	select {
	case ev := <-events:
		poe, ok := ev.(ProcessOutputError)
		if !ok {
			t.Fatalf("expected ProcessOutputError, got %T", ev)
		}
		if poe.Index != 2 || !errors.Is(poe.Err, want) {
			t.Errorf("expected index 2 err %v, got %+v", want, poe)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for ProcessOutputError")
	}

	select {
	case _, ok := <-events:
		if ok {
			t.Error("expected channel to close after surfacing the error")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for channel close")
	}
}

func TestProcessOutputSourceSwallowsPlainEOF(t *testing.T) {
	events := ProcessOutputSource(2, erroringReader{err: io.EOF})

	select {
	case ev, ok := <-events:
		if ok {
			t.Errorf("expected no event for a plain io.EOF, got %T", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for channel close")
	}
}

func TestProcessExitSourceForwardsResult(t *testing.T) {
	exited := make(chan ptyproc.ExitResult, 1)
	exited <- ptyproc.ExitResult{Index: 3, ExitCode: 1}
	close(exited)

	events := ProcessExitSource(3, exited)

	select {
	case ev := <-events:
		pe, ok := ev.(ProcessExit)
		if !ok {
			t.Fatalf("expected ProcessExit, got %T", ev)
		}
		if pe.Index != 3 || pe.ExitCode != 1 {
			t.Errorf("expected index 3 code 1, got %+v", pe)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for ProcessExit")
	}
}

func TestResizeSourceEmitsOnSizeChange(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	screen.SetSize(80, 24)
	defer screen.Fini()

	events := ResizeSource(screen, 5*time.Millisecond)

	screen.SetSize(100, 40)

	select {
	case ev := <-events:
		if _, ok := ev.(Resized); !ok {
			t.Errorf("expected Resized, got %T", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for Resized event")
	}
}
