package term

import (
	"github.com/dflemstr/mux/internal/ansi"
	"github.com/dflemstr/mux/internal/vte"
)

// Writer pairs a Terminal with the vte/ansi decoding pipeline that drives
// it. One Writer is created per child process; feeding it the child's raw
// PTY output is the only way bytes reach the Terminal's grid.
type Writer struct {
	term *Terminal
	proc *ansi.Processor
	vte  vte.Parser
}

// NewWriter returns a Writer that decodes bytes written to it and applies
// them to term.
func NewWriter(term *Terminal) *Writer {
	return &Writer{term: term, proc: ansi.NewProcessor(term)}
}

func (w *Writer) Write(p []byte) (int, error) {
	w.vte.AdvanceBytes(w.proc, p)
	return len(p), nil
}

// Write decodes p as ANSI-laden terminal output and applies it to t through
// an internally-owned Writer, created on the first call and reused by every
// later one, so parser state carries over between calls. Concurrent calls
// from several goroutines are not synchronized.
func (t *Terminal) Write(p []byte) (int, error) {
	if t.w == nil {
		t.w = NewWriter(t)
	}
	return t.w.Write(p)
}
