// Package term implements a headless VT220/xterm-compatible terminal grid:
// a Terminal owns a primary and alternate Buffer, a Cursor, and the SGR/mode
// state that ANSI sequences mutate. It implements internal/ansi.Handler, so
// an internal/vte.Parser feeding an internal/ansi.Processor drives it
// directly from raw child output.
package term

import (
	"fmt"
	"image/color"
	"strings"
	"sync"

	"github.com/dflemstr/mux/internal/ansi"
)

const (
	DefaultRows = 24
	DefaultCols = 80
)

// Mode is a bitmask of the subset of ansi.TerminalMode values Terminal
// tracks as on/off state (as opposed to those, like ModeInsert, that are
// only ever read back through ReportMode).
type Mode uint32

func bit(m ansi.TerminalMode) Mode { return 1 << Mode(m) }

// Selection marks a text range for copy; Start/End are in the same
// coordinate space as Position (row 0 is the top of the visible screen).
// Only on-screen rows hold text: a row outside the screen, including a
// negative one, contributes no text to GetSelectedText.
type Selection struct {
	Start, End Position
	Active     bool
}

// Terminal is a headless terminal emulator: it has no display of its own,
// only a Buffer pair a caller renders from.
type Terminal struct {
	mu sync.RWMutex

	rows, cols int

	primary   *Buffer
	alternate *Buffer
	active    *Buffer

	cursor      *Cursor
	savedCursor map[bool]*SavedCursor // keyed by isAlternate, mirrors xterm's per-screen DECSC slot

	template      CellTemplate
	charsets      [4]Charset
	activeCharset CharsetIndex

	scrollTop, scrollBottom int

	// inputNeedsWrap defers the line-wrap decision to the *next* printable
	// write, mirroring the original emulator's Term::input: a char landing
	// on the last column never wraps immediately, so cursor.Col always
	// stays a valid grid index without per-use clamping.
	inputNeedsWrap bool

	modes Mode

	title      string
	titleStack []string

	currentHyperlink *Hyperlink

	selection Selection

	semanticEscapeChars string

	response ResponseProvider
	bell     BellProvider
	titleP   TitleProvider

	w *Writer // lazily created by Write; owned by the single goroutine that calls it
}

// Option configures a Terminal at construction time.
type Option func(*Terminal)

func WithSize(rows, cols int) Option {
	return func(t *Terminal) { t.rows, t.cols = rows, cols }
}

func WithScrollback(storage ScrollbackProvider) Option {
	return func(t *Terminal) {
		if t.primary != nil {
			t.primary.SetScrollbackProvider(storage)
		}
	}
}

func WithResponse(w ResponseProvider) Option {
	return func(t *Terminal) { t.response = w }
}

func WithBell(b BellProvider) Option {
	return func(t *Terminal) { t.bell = b }
}

func WithTitle(tp TitleProvider) Option {
	return func(t *Terminal) { t.titleP = tp }
}

// New creates a Terminal. Without WithSize it defaults to 24x80.
func New(opts ...Option) *Terminal {
	t := &Terminal{
		rows: DefaultRows, cols: DefaultCols,
		response: NoopResponse{},
		bell:     NoopBell{},
		titleP:   NoopTitle{},
	}
	for _, opt := range opts {
		opt(t)
	}
	t.primary = NewBuffer(t.rows, t.cols)
	t.alternate = NewBuffer(t.rows, t.cols)
	t.active = t.primary
	t.cursor = NewCursor()
	t.savedCursor = map[bool]*SavedCursor{}
	t.template = NewCellTemplate()
	t.scrollTop, t.scrollBottom = 0, t.rows
	t.modes = bit(ansi.ModeLineWrap) | bit(ansi.ModeShowCursor)
	t.semanticEscapeChars = ",│`|:\"' ()[]{}<>\t"
	for _, opt := range opts {
		opt(t)
	}
	return t
}

var _ ansi.Handler = (*Terminal)(nil)

func (t *Terminal) Rows() int { t.mu.RLock(); defer t.mu.RUnlock(); return t.rows }
func (t *Terminal) Cols() int { t.mu.RLock(); defer t.mu.RUnlock(); return t.cols }

func (t *Terminal) IsAlternateScreen() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.active == t.alternate
}

func (t *Terminal) Cell(row, col int) *Cell {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.active.Cell(row, col)
}

func (t *Terminal) HasDirty() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.active.HasDirty()
}

func (t *Terminal) DirtyCells() []Position {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.active.DirtyCells()
}

func (t *Terminal) ClearDirty() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.active.ClearAllDirty()
}

func (t *Terminal) HasMode(m ansi.TerminalMode) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.modes&bit(m) != 0
}

func (t *Terminal) LineContent(row int) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.active.LineContent(row)
}

func (t *Terminal) ScrollbackLen() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.active.ScrollbackLen()
}

func (t *Terminal) ScrollbackLine(i int) []Cell {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.active.ScrollbackLine(i)
}

// Title returns the current window title.
func (t *Terminal) Title() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.title
}

// --- ansi.Handler: text and cursor movement ---

func (t *Terminal) Input(r rune) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.inputLocked(r)
}

func (t *Terminal) inputLocked(r rune) {
	r = t.translateCharset(r)
	width := runeWidth(r)

	if width == 0 {
		t.appendCombining(r)
		return
	}

	if t.inputNeedsWrap {
		if t.modes&bit(ansi.ModeLineWrap) == 0 {
			return
		}
		if wrapCell := t.active.Cell(t.cursor.Row, t.cursor.Col); wrapCell != nil {
			wrapCell.SetFlag(CellFlagWrapLine)
			wrapCell.MarkDirty()
		}
		t.active.SetWrapped(t.cursor.Row, true)
		t.lineFeedLocked()
		t.cursor.Col = 0
		t.inputNeedsWrap = false
	}

	cell := t.template.Cell
	cell.Char = r
	if width == 2 {
		cell.SetFlag(CellFlagWideChar)
	}
	cell.Hyperlink = t.currentHyperlink
	t.active.SetCell(t.cursor.Row, t.cursor.Col, cell)

	if width == 2 && t.cursor.Col+1 < t.cols {
		t.cursor.Col++
		spacer := NewCell()
		spacer.SetFlag(CellFlagWideCharSpacer)
		t.active.SetCell(t.cursor.Row, t.cursor.Col, spacer)
	}

	if t.cursor.Col+1 < t.cols {
		t.cursor.Col++
	} else {
		t.inputNeedsWrap = true
	}
}

// appendCombining handles a zero-width rune (e.g. a combining accent). The
// rune is dropped: no cell is written or changed, and the previous cell
// does not keep it.
func (t *Terminal) appendCombining(r rune) {
	col := t.cursor.Col - 1
	row := t.cursor.Row
	if col < 0 {
		return
	}
	if cell := t.active.Cell(row, col); cell != nil && cell.IsWideSpacer() {
		col--
	}
	// Cells store a single rune; a headless emulator that only renders
	// plain text treats a combining mark as a no-op rather than growing a
	// grapheme cluster buffer per cell.
	_ = r
}

func (t *Terminal) translateCharset(r rune) rune {
	if t.charsets[t.activeCharset] != CharsetLineDrawing {
		return r
	}
	if mapped, ok := lineDrawingTable[r]; ok {
		return mapped
	}
	return r
}

var lineDrawingTable = map[rune]rune{
	'`': '◆', 'a': '▒', 'f': '°', 'g': '±',
	'j': '┘', 'k': '┐', 'l': '┌', 'm': '└',
	'n': '┼', 'o': '⎺', 'p': '⎻', 'q': '─',
	'r': '⎼', 's': '⎽', 't': '├', 'u': '┤',
	'v': '┴', 'w': '┬', 'x': '│', 'y': '≤',
	'z': '≥', '{': 'π', '|': '≠', '}': '£', '~': '·',
}

func (t *Terminal) Goto(row, col int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.gotoLocked(row, col)
}

func (t *Terminal) gotoLocked(row, col int) {
	top, bottom := 0, t.rows
	if t.modes&bit(ansi.ModeOrigin) != 0 {
		top, bottom = t.scrollTop, t.scrollBottom
	}
	if row < 0 {
		row = 0
	}
	row += top
	if row >= bottom {
		row = bottom - 1
	}
	if col < 0 {
		col = 0
	}
	if col >= t.cols {
		col = t.cols - 1
	}
	t.cursor.Row, t.cursor.Col = row, col
	t.inputNeedsWrap = false
}

func (t *Terminal) GotoLine(row int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.gotoLocked(row, t.cursor.Col)
}

func (t *Terminal) GotoCol(col int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.gotoLocked(t.cursor.Row, col)
}

func (t *Terminal) MoveUp(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.gotoLocked(t.cursor.Row-t.scrollTop-n, t.cursor.Col)
}

func (t *Terminal) MoveDown(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.gotoLocked(t.cursor.Row-t.scrollTop+n, t.cursor.Col)
}

func (t *Terminal) MoveForward(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.gotoLocked(t.cursor.Row-t.scrollTop, t.cursor.Col+n)
}

func (t *Terminal) MoveBackward(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.gotoLocked(t.cursor.Row-t.scrollTop, t.cursor.Col-n)
}

func (t *Terminal) MoveUpAndCR(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.gotoLocked(t.cursor.Row-t.scrollTop-n, 0)
}

func (t *Terminal) MoveDownAndCR(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.gotoLocked(t.cursor.Row-t.scrollTop+n, 0)
}

func (t *Terminal) PutTab(count int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for ; count > 0; count-- {
		next := t.active.NextTabStop(t.cursor.Col)
		if next <= t.cursor.Col {
			break
		}
		t.cursor.Col = next
	}
	t.inputNeedsWrap = false
}

func (t *Terminal) Backspace() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cursor.Col > 0 {
		t.cursor.Col--
		t.inputNeedsWrap = false
	}
}

func (t *Terminal) CarriageReturn() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cursor.Col = 0
	t.inputNeedsWrap = false
}

func (t *Terminal) Linefeed() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lineFeedLocked()
	if t.modes&bit(ansi.ModeLineFeedNewLine) != 0 {
		t.cursor.Col = 0
	}
}

func (t *Terminal) lineFeedLocked() {
	if t.cursor.Row+1 == t.scrollBottom {
		t.active.ScrollUp(t.scrollTop, t.scrollBottom, 1)
	} else if t.cursor.Row+1 < t.rows {
		t.cursor.Row++
	}
}

func (t *Terminal) NewLine() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lineFeedLocked()
	t.cursor.Col = 0
}

func (t *Terminal) Bell() {
	t.mu.RLock()
	b := t.bell
	t.mu.RUnlock()
	b.Ring()
}

func (t *Terminal) Substitute() {
	t.mu.Lock()
	defer t.mu.Unlock()
	cell := t.template.Cell
	cell.Char = '?'
	t.active.SetCell(t.cursor.Row, t.cursor.Col, cell)
}

func (t *Terminal) SetHorizontalTabStop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.active.SetTabStop(t.cursor.Col)
}

func (t *Terminal) ClearTabs(mode ansi.TabulationClearMode) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if mode == ansi.TabulationClearAll {
		t.active.ClearAllTabStops()
	} else {
		t.active.ClearTabStop(t.cursor.Col)
	}
}

// --- erase / insert / delete ---

func (t *Terminal) InsertBlank(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.active.InsertBlanks(t.cursor.Row, t.cursor.Col, n)
}

func (t *Terminal) DeleteChars(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.active.DeleteChars(t.cursor.Row, t.cursor.Col, n)
}

func (t *Terminal) EraseChars(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	end := t.cursor.Col + n
	if end > t.cols {
		end = t.cols
	}
	t.active.ClearRowRange(t.cursor.Row, t.cursor.Col, end)
}

func (t *Terminal) InsertLines(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.active.InsertLines(t.cursor.Row, n, t.scrollTop, t.scrollBottom)
}

func (t *Terminal) DeleteLines(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.active.DeleteLines(t.cursor.Row, n, t.scrollTop, t.scrollBottom)
}

func (t *Terminal) ClearLine(mode ansi.LineClearMode) {
	t.mu.Lock()
	defer t.mu.Unlock()
	switch mode {
	case ansi.LineClearRight:
		t.active.ClearRowRange(t.cursor.Row, t.cursor.Col, t.cols)
	case ansi.LineClearLeft:
		t.active.ClearRowRange(t.cursor.Row, 0, t.cursor.Col+1)
	case ansi.LineClearAll:
		t.active.ClearRow(t.cursor.Row)
	}
}

func (t *Terminal) ClearScreen(mode ansi.ClearMode) {
	t.mu.Lock()
	defer t.mu.Unlock()
	switch mode {
	case ansi.ClearModeBelow:
		t.active.ClearRowRange(t.cursor.Row, t.cursor.Col, t.cols)
		for row := t.cursor.Row + 1; row < t.rows; row++ {
			t.active.ClearRow(row)
		}
	case ansi.ClearModeAbove:
		t.active.ClearRowRange(t.cursor.Row, 0, t.cursor.Col+1)
		for row := 0; row < t.cursor.Row; row++ {
			t.active.ClearRow(row)
		}
	case ansi.ClearModeAll:
		t.active.ClearAll()
	case ansi.ClearModeSaved:
		t.active.ClearScrollback()
	}
}

func (t *Terminal) ScrollUp(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.active.ScrollUp(t.scrollTop, t.scrollBottom, n)
}

func (t *Terminal) ScrollDown(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.active.ScrollDown(t.scrollTop, t.scrollBottom, n)
}

func (t *Terminal) SetScrollingRegion(top, bottom int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if bottom <= 0 || bottom > t.rows {
		bottom = t.rows
	}
	if top < 0 {
		top = 0
	}
	if top >= bottom {
		return
	}
	t.scrollTop, t.scrollBottom = top, bottom
	t.gotoLocked(-t.scrollTop, 0)
}

// --- cursor save/restore ---

func (t *Terminal) SaveCursorPosition() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.savedCursor[t.active == t.alternate] = &SavedCursor{
		Row: t.cursor.Row, Col: t.cursor.Col,
		Attrs:        t.template,
		OriginMode:   t.modes&bit(ansi.ModeOrigin) != 0,
		CharsetIndex: t.activeCharset,
		Charsets:     t.charsets,
	}
}

func (t *Terminal) RestoreCursorPosition() {
	t.mu.Lock()
	defer t.mu.Unlock()
	saved, ok := t.savedCursor[t.active == t.alternate]
	if !ok {
		t.cursor.Row, t.cursor.Col = 0, 0
		return
	}
	t.cursor.Row, t.cursor.Col = saved.Row, saved.Col
	t.template = saved.Attrs
	t.activeCharset = saved.CharsetIndex
	t.charsets = saved.Charsets
	if saved.OriginMode {
		t.modes |= bit(ansi.ModeOrigin)
	} else {
		t.modes &^= bit(ansi.ModeOrigin)
	}
}

// --- SGR attributes / colors ---

func (t *Terminal) SetCharAttribute(attr ansi.CharAttribute, c ansi.Color) {
	t.TerminalAttribute(attr)
}

func (t *Terminal) TerminalAttribute(attr ansi.CharAttribute) {
	t.mu.Lock()
	defer t.mu.Unlock()
	cell := &t.template.Cell
	switch attr {
	case ansi.AttrReset:
		cell.Reset()
	case ansi.AttrBold:
		cell.SetFlag(CellFlagBold)
	case ansi.AttrCancelBold, ansi.AttrCancelBoldDim:
		cell.ClearFlag(CellFlagBold | CellFlagDim)
	case ansi.AttrDim:
		cell.SetFlag(CellFlagDim)
	case ansi.AttrItalic:
		cell.SetFlag(CellFlagItalic)
	case ansi.AttrCancelItalic:
		cell.ClearFlag(CellFlagItalic)
	case ansi.AttrUnderline:
		cell.ClearFlag(underlineFlags)
		cell.SetFlag(CellFlagUnderline)
	case ansi.AttrDoubleUnderline:
		cell.ClearFlag(underlineFlags)
		cell.SetFlag(CellFlagDoubleUnderline)
	case ansi.AttrCurlyUnderline:
		cell.ClearFlag(underlineFlags)
		cell.SetFlag(CellFlagCurlyUnderline)
	case ansi.AttrDottedUnderline:
		cell.ClearFlag(underlineFlags)
		cell.SetFlag(CellFlagDottedUnderline)
	case ansi.AttrDashedUnderline:
		cell.ClearFlag(underlineFlags)
		cell.SetFlag(CellFlagDashedUnderline)
	case ansi.AttrCancelUnderline:
		cell.ClearFlag(underlineFlags)
	case ansi.AttrBlinkSlow:
		cell.SetFlag(CellFlagBlinkSlow)
	case ansi.AttrBlinkFast:
		cell.SetFlag(CellFlagBlinkFast)
	case ansi.AttrCancelBlink:
		cell.ClearFlag(CellFlagBlinkSlow | CellFlagBlinkFast)
	case ansi.AttrReverse:
		cell.SetFlag(CellFlagReverse)
	case ansi.AttrCancelReverse:
		cell.ClearFlag(CellFlagReverse)
	case ansi.AttrHidden:
		cell.SetFlag(CellFlagHidden)
	case ansi.AttrCancelHidden:
		cell.ClearFlag(CellFlagHidden)
	case ansi.AttrStrike:
		cell.SetFlag(CellFlagStrike)
	case ansi.AttrCancelStrike:
		cell.ClearFlag(CellFlagStrike)
	}
}

const underlineFlags = CellFlagUnderline | CellFlagDoubleUnderline | CellFlagCurlyUnderline | CellFlagDottedUnderline | CellFlagDashedUnderline

func (t *Terminal) SetColor(attr ansi.CharAttribute, c ansi.Color) {
	t.mu.Lock()
	defer t.mu.Unlock()
	resolved := colorFromAnsi(c)
	switch attr {
	case ansi.AttrForeground:
		t.template.Fg = resolved
	case ansi.AttrBackground:
		t.template.Bg = resolved
	case ansi.AttrUnderlineColor:
		t.template.UnderlineColor = resolved
	}
}

func colorFromAnsi(c ansi.Color) color.Color {
	switch c.Kind {
	case ansi.ColorIndexed:
		return &IndexedColor{Index: c.Index}
	case ansi.ColorSpec:
		return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
	default:
		return &NamedColor{Name: int(c.Named)}
	}
}

// --- modes ---

func (t *Terminal) SetMode(m ansi.TerminalMode) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.modes |= bit(m)
	switch m {
	case ansi.ModeSwapScreenAndSetRestoreCursor:
		t.swapScreenLocked(true)
	}
}

func (t *Terminal) UnsetMode(m ansi.TerminalMode) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.modes &^= bit(m)
	switch m {
	case ansi.ModeSwapScreenAndSetRestoreCursor:
		t.swapScreenLocked(false)
	}
}

func (t *Terminal) swapScreenLocked(toAlternate bool) {
	if toAlternate && t.active != t.alternate {
		t.active = t.alternate
		t.active.ClearAll()
	} else if !toAlternate && t.active != t.primary {
		t.active = t.primary
	}
}

func (t *Terminal) ReportMode(m ansi.TerminalMode) {
	t.mu.RLock()
	set := t.modes&bit(m) != 0
	w := t.response
	t.mu.RUnlock()
	state := 2
	if set {
		state = 1
	}
	fmt.Fprintf(w, "\x1b[?%d;%d$y", int(m), state)
}

func (t *Terminal) SetKeypadApplicationMode() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.modes |= bit(ansi.ModeKeypadApplication)
}

func (t *Terminal) UnsetKeypadApplicationMode() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.modes &^= bit(ansi.ModeKeypadApplication)
}

// --- title / hyperlink / charset ---

func (t *Terminal) SetTitle(title string) {
	t.mu.Lock()
	t.title = title
	tp := t.titleP
	t.mu.Unlock()
	tp.SetTitle(title)
}

func (t *Terminal) PushTitle() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.titleStack = append(t.titleStack, t.title)
}

func (t *Terminal) PopTitle() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.titleStack) == 0 {
		return
	}
	t.title = t.titleStack[len(t.titleStack)-1]
	t.titleStack = t.titleStack[:len(t.titleStack)-1]
}

func (t *Terminal) SetHyperlink(h *ansi.Hyperlink) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if h == nil {
		t.currentHyperlink = nil
		return
	}
	t.currentHyperlink = &Hyperlink{ID: h.ID, URI: h.URI}
}

func (t *Terminal) ConfigureCharset(index ansi.CharsetIndex, cs ansi.Charset) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if cs == ansi.CharsetLineDrawing {
		t.charsets[index] = CharsetLineDrawing
	} else {
		t.charsets[index] = CharsetASCII
	}
}

func (t *Terminal) SetActiveCharset(index ansi.CharsetIndex) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.activeCharset = CharsetIndex(index)
}

// --- device status / identification ---

func (t *Terminal) IdentifyTerminal() {
	t.mu.RLock()
	w := t.response
	t.mu.RUnlock()
	fmt.Fprint(w, "\x1b[?6c")
}

func (t *Terminal) DeviceStatus(arg int) {
	t.mu.RLock()
	w := t.response
	row, col := t.cursor.Row, t.cursor.Col
	t.mu.RUnlock()
	switch arg {
	case 5:
		fmt.Fprint(w, "\x1b[0n")
	case 6:
		fmt.Fprintf(w, "\x1b[%d;%dR", row+1, col+1)
	case 1010:
		// OSC 10 (foreground) query, forwarded here by internal/ansi.
		fmt.Fprintf(w, "\x1b]10;%s\x07", rgbString(DefaultForeground))
	case 1011:
		fmt.Fprintf(w, "\x1b]11;%s\x07", rgbString(DefaultBackground))
	}
}

func rgbString(c color.RGBA) string {
	return fmt.Sprintf("rgb:%02x%02x/%02x%02x/%02x%02x", c.R, c.R, c.G, c.G, c.B, c.B)
}

func (t *Terminal) Dectsr() {
	t.DeviceStatus(6)
}

func (t *Terminal) SetCursorStyle(style ansi.CursorStyle) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cursor.Style = CursorStyle(style)
}

func (t *Terminal) TextArea(w, h int) {
	t.mu.RLock()
	writer := t.response
	t.mu.RUnlock()
	fmt.Fprintf(writer, "\x1b[8;%d;%dt", h, w)
}

func (t *Terminal) Decaln() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.active.FillWithE()
}

// Bracketed handles bracketed-paste payloads: data arrives wrapped between
// CSI 200~ and CSI 201~ by the PTY layer's input path, not via ANSI output
// parsing, so this is a no-op on the output side; kept to satisfy Handler.
func (t *Terminal) Bracketed(paste bool, data []byte) {}

// --- resize ---

// Resize changes the terminal's dimensions, preserving on-screen content in
// both buffers and re-clamping the scroll region and cursor.
func (t *Terminal) Resize(rows, cols int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if rows == t.rows && cols == t.cols {
		return
	}
	t.primary.Resize(rows, cols)
	t.alternate.Resize(rows, cols)
	t.rows, t.cols = rows, cols
	t.scrollTop, t.scrollBottom = 0, rows
	if t.cursor.Row >= rows {
		t.cursor.Row = rows - 1
	}
	if t.cursor.Col >= cols {
		t.cursor.Col = cols - 1
	}
	t.inputNeedsWrap = false
}

// WriteString feeds s, as raw PTY output, through Write into this Terminal;
// a helper for simple single-writer use.
func (t *Terminal) WriteString(s string) { t.Write([]byte(s)) }

func (t *Terminal) String() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var b strings.Builder
	for row := 0; row < t.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(t.active.LineContent(row))
	}
	return b.String()
}
