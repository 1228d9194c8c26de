package tui

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dflemstr/mux/internal/term"
)

// doubleClickWindow bounds how long between two clicks on the same cell
// still counts as a double-click for word selection, matching the
// click-timing/position tracking tuios's Window struct keeps
// (LastClickTime/LastClickX/LastClickY) for its own word/line selection.
const doubleClickWindow = 500 * time.Millisecond

// ProcessPane owns one child's terminal emulator plus the UI-facing state
// (title, exit status) that ui/mod.rs's ProcessState tracked per process.
type ProcessPane struct {
	Index      int
	Title      string
	Term       *term.Terminal
	ExitCode   *int
	ExitedWith error

	// response accumulates bytes the emulator writes back (device status
	// reports, OSC color query replies) during ProcessOutput handling,
	// mirroring ProcessState.input in ui/mod.rs.
	response *bytes.Buffer

	lastClickAt                time.Time
	lastClickRow, lastClickCol int
}

// NewProcessPane builds a pane for child index with the given initial tab
// title, wiring the emulator's response provider to this pane's pending
// input buffer.
func NewProcessPane(index int, initialTitle string) *ProcessPane {
	resp := &bytes.Buffer{}
	p := &ProcessPane{Index: index, Title: initialTitle, response: resp}
	p.Term = term.New(term.WithResponse(resp), term.WithTitle(p))
	p.Term.SetSemanticEscapeChars(" \t")
	return p
}

// SetTitle implements term.TitleProvider, mirroring
// ProcessState::from_settings's initial terminal_emulator.set_title call
// and every subsequent OSC-driven title change.
func (p *ProcessPane) SetTitle(title string) { p.Title = title }

// TakePendingInput drains and returns any response bytes the emulator
// produced since the last call, mirroring ProcessState::take_process_input.
func (p *ProcessPane) TakePendingInput() []byte {
	if p.response.Len() == 0 {
		return nil
	}
	data := make([]byte, p.response.Len())
	copy(data, p.response.Bytes())
	p.response.Reset()
	return data
}

// HandleMouseClick records a click at (col, row) in the pane's own grid
// coordinates and, when it lands on the same cell as the previous click
// within doubleClickWindow, selects the word under it by expanding
// outward with the emulator's semantic search. Returns true when a
// selection was made.
func (p *ProcessPane) HandleMouseClick(col, row int, now time.Time) bool {
	isDoubleClick := row == p.lastClickRow && col == p.lastClickCol &&
		now.Sub(p.lastClickAt) <= doubleClickWindow

	p.lastClickAt, p.lastClickRow, p.lastClickCol = now, row, col

	if !isDoubleClick {
		p.Term.ClearSelection()
		return false
	}

	left := p.Term.SemanticSearchLeft(row, col)
	right := p.Term.SemanticSearchRight(row, col)
	right.Col++
	p.Term.SetSelection(left, right)
	return true
}

// TabTitle renders this pane's tab-column entry, mirroring
// ProcessState::tab_title.
func (p *ProcessPane) TabTitle() TabTitle {
	title := TabTitle{Text: p.Title, Style: tcell.StyleDefault}
	if p.ExitCode == nil {
		return title
	}
	if *p.ExitCode == 0 {
		title.Symbol = fmt.Sprintf("✓ %d", *p.ExitCode)
		title.Style = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	} else {
		title.Symbol = fmt.Sprintf("✗ %d", *p.ExitCode)
		title.Style = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	}
	return title
}

// Draw paints the pane's emulator grid into area, reserving one trailing
// row for the exit-status banner once the child has exited, mirroring
// ProcessState's tui::widgets::Widget impl.
func (p *ProcessPane) Draw(screen tcell.Screen, area Rect) {
	mainHeight := area.Height
	if p.ExitCode != nil {
		mainHeight--
	}
	main := Rect{X: area.X, Y: area.Y, Width: area.Width, Height: mainHeight}

	for _, cell := range p.Term.RenderableCells() {
		if cell.Col >= main.Width || cell.Row >= main.Height {
			continue
		}
		style := convertFlags(tcell.StyleDefault, cell.Flags).
			Foreground(convertColor(cell.Fg, true)).
			Background(convertColor(cell.Bg, false))
		if p.Term.InSelection(cell.Row, cell.Col) {
			style = style.Reverse(true)
		}
		ch := cell.Char
		if ch == 0 {
			ch = ' '
		}
		screen.SetContent(main.X+cell.Col, main.Y+cell.Row, ch, nil, style)
	}

	if p.ExitCode == nil {
		return
	}
	statusRow := area.Y + mainHeight
	var style tcell.Style
	if *p.ExitCode == 0 {
		style = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen).Bold(true).Dim(true)
	} else {
		style = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorRed).Bold(true).Dim(true)
	}
	msg := fmt.Sprintf("exited with code %d", *p.ExitCode)
	for x := area.X; x < area.Right(); x++ {
		screen.SetContent(x, statusRow, ' ', nil, style)
	}
	putString(screen, area.X, statusRow, msg, style)
}
