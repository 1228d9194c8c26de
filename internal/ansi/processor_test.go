package ansi

import (
	"testing"

	"github.com/dflemstr/mux/internal/vte"
)

// fakeHandler records the calls a Processor makes so tests can assert on
// semantic dispatch without pulling in internal/term.
type fakeHandler struct {
	input     []rune
	goto_     [2]int
	attrs     []CharAttribute
	colors    []colorCall
	modesSet  []TerminalMode
	modesUnset []TerminalMode
	title     string
	pushed    int
	popped    int
	cleared   []ClearMode
}

type colorCall struct {
	attr  CharAttribute
	color Color
}

func (f *fakeHandler) Input(r rune)            { f.input = append(f.input, r) }
func (f *fakeHandler) Goto(line, col int)      { f.goto_ = [2]int{line, col} }
func (f *fakeHandler) GotoLine(line int)       {}
func (f *fakeHandler) GotoCol(col int)         {}
func (f *fakeHandler) MoveUp(n int)            {}
func (f *fakeHandler) MoveDown(n int)          {}
func (f *fakeHandler) MoveForward(n int)       {}
func (f *fakeHandler) MoveBackward(n int)      {}
func (f *fakeHandler) MoveUpAndCR(n int)       {}
func (f *fakeHandler) MoveDownAndCR(n int)     {}
func (f *fakeHandler) PutTab(count int)        {}
func (f *fakeHandler) Backspace()              {}
func (f *fakeHandler) CarriageReturn()         {}
func (f *fakeHandler) Linefeed()               {}
func (f *fakeHandler) Bell()                   {}
func (f *fakeHandler) Substitute()              {}
func (f *fakeHandler) NewLine()                {}
func (f *fakeHandler) SetHorizontalTabStop()   {}
func (f *fakeHandler) ClearTabs(TabulationClearMode) {}
func (f *fakeHandler) InsertBlank(n int)       {}
func (f *fakeHandler) DeleteChars(n int)       {}
func (f *fakeHandler) EraseChars(n int)        {}
func (f *fakeHandler) InsertLines(n int)       {}
func (f *fakeHandler) DeleteLines(n int)       {}
func (f *fakeHandler) ClearLine(LineClearMode) {}
func (f *fakeHandler) ClearScreen(m ClearMode) { f.cleared = append(f.cleared, m) }
func (f *fakeHandler) ScrollUp(n int)          {}
func (f *fakeHandler) ScrollDown(n int)        {}
func (f *fakeHandler) SetScrollingRegion(top, bottom int) {}
func (f *fakeHandler) SaveCursorPosition()     {}
func (f *fakeHandler) RestoreCursorPosition()  {}
func (f *fakeHandler) SetCharAttribute(a CharAttribute, c Color) {}
func (f *fakeHandler) TerminalAttribute(a CharAttribute) { f.attrs = append(f.attrs, a) }
func (f *fakeHandler) SetColor(a CharAttribute, c Color) {
	f.colors = append(f.colors, colorCall{a, c})
}
func (f *fakeHandler) SetMode(m TerminalMode)   { f.modesSet = append(f.modesSet, m) }
func (f *fakeHandler) UnsetMode(m TerminalMode) { f.modesUnset = append(f.modesUnset, m) }
func (f *fakeHandler) ReportMode(m TerminalMode) {}
func (f *fakeHandler) SetKeypadApplicationMode()   {}
func (f *fakeHandler) UnsetKeypadApplicationMode() {}
func (f *fakeHandler) SetTitle(title string)       { f.title = title }
func (f *fakeHandler) PushTitle()                  { f.pushed++ }
func (f *fakeHandler) PopTitle()                   { f.popped++ }
func (f *fakeHandler) SetHyperlink(h *Hyperlink)   {}
func (f *fakeHandler) ConfigureCharset(CharsetIndex, Charset) {}
func (f *fakeHandler) SetActiveCharset(CharsetIndex)          {}
func (f *fakeHandler) IdentifyTerminal()                      {}
func (f *fakeHandler) DeviceStatus(arg int)                   {}
func (f *fakeHandler) SetCursorStyle(CursorStyle)             {}
func (f *fakeHandler) TextArea(w, h int)                      {}
func (f *fakeHandler) Decaln()                                {}
func (f *fakeHandler) Bracketed(paste bool, data []byte)      {}
func (f *fakeHandler) Dectsr()                                {}

var _ Handler = (*fakeHandler)(nil)

func run(t *testing.T, h *fakeHandler, s string) {
	t.Helper()
	var parser vte.Parser
	proc := NewProcessor(h)
	parser.AdvanceBytes(proc, []byte(s))
}

func TestProcessorPrint(t *testing.T) {
	var h fakeHandler
	run(t, &h, "ab")

	if string(h.input) != "ab" {
		t.Errorf("expected 'ab', got %q", string(h.input))
	}
}

func TestProcessorSGRBasicAttributes(t *testing.T) {
	var h fakeHandler
	run(t, &h, "\x1b[1;4m")

	if len(h.attrs) != 2 || h.attrs[0] != AttrBold || h.attrs[1] != AttrUnderline {
		t.Errorf("expected [Bold Underline], got %v", h.attrs)
	}
}

func TestProcessorSGRNamedForeground(t *testing.T) {
	var h fakeHandler
	run(t, &h, "\x1b[31m")

	if len(h.colors) != 1 {
		t.Fatalf("expected 1 color call, got %d", len(h.colors))
	}
	c := h.colors[0]
	if c.attr != AttrForeground || c.color.Kind != ColorNamed || c.color.Named != NamedRed {
		t.Errorf("expected foreground=NamedRed, got %+v", c)
	}
}

func TestProcessorSGRExtendedColorSemicolon(t *testing.T) {
	var h fakeHandler
	run(t, &h, "\x1b[38;2;10;20;30m")

	if len(h.colors) != 1 {
		t.Fatalf("expected 1 color call, got %d", len(h.colors))
	}
	c := h.colors[0].color
	if c.Kind != ColorSpec || c.R != 10 || c.G != 20 || c.B != 30 {
		t.Errorf("expected RGB(10,20,30), got %+v", c)
	}
}

func TestProcessorSGRExtendedColorColon(t *testing.T) {
	var h fakeHandler
	run(t, &h, "\x1b[38:2:10:20:30m")

	if len(h.colors) != 1 {
		t.Fatalf("expected 1 color call, got %d", len(h.colors))
	}
	c := h.colors[0].color
	if c.Kind != ColorSpec || c.R != 10 || c.G != 20 || c.B != 30 {
		t.Errorf("expected RGB(10,20,30), got %+v", c)
	}
}

func TestProcessorSGRIndexedColor(t *testing.T) {
	var h fakeHandler
	run(t, &h, "\x1b[48;5;196m")

	if len(h.colors) != 1 {
		t.Fatalf("expected 1 color call, got %d", len(h.colors))
	}
	c := h.colors[0]
	if c.attr != AttrBackground || c.color.Kind != ColorIndexed || c.color.Index != 196 {
		t.Errorf("expected background indexed 196, got %+v", c)
	}
}

func TestProcessorModeSetAndUnset(t *testing.T) {
	var h fakeHandler
	run(t, &h, "\x1b[?25h\x1b[?25l")

	if len(h.modesSet) != 1 || h.modesSet[0] != ModeShowCursor {
		t.Errorf("expected ModeShowCursor set, got %v", h.modesSet)
	}
	if len(h.modesUnset) != 1 || h.modesUnset[0] != ModeShowCursor {
		t.Errorf("expected ModeShowCursor unset, got %v", h.modesUnset)
	}
}

func TestProcessorOSCTitle(t *testing.T) {
	var h fakeHandler
	run(t, &h, "\x1b]0;my title\x07")

	if h.title != "my title" {
		t.Errorf("expected title 'my title', got %q", h.title)
	}
}

func TestProcessorWindowTitleStack(t *testing.T) {
	var h fakeHandler
	run(t, &h, "\x1b[22t\x1b[23t")

	if h.pushed != 1 {
		t.Errorf("expected PushTitle called once, got %d", h.pushed)
	}
	if h.popped != 1 {
		t.Errorf("expected PopTitle called once, got %d", h.popped)
	}
}

func TestProcessorClearScreen(t *testing.T) {
	var h fakeHandler
	run(t, &h, "\x1b[2J")

	if len(h.cleared) != 1 || h.cleared[0] != ClearModeAll {
		t.Errorf("expected ClearModeAll, got %v", h.cleared)
	}
}

func TestProcessorOSC52ClipboardIgnored(t *testing.T) {
	var h fakeHandler
	run(t, &h, "\x1b]52;c;aGVsbG8=\x07")

	if h.title != "" {
		t.Errorf("expected OSC 52 to have no effect on title, got %q", h.title)
	}
}
