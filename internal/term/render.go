package term

import "github.com/dflemstr/mux/internal/ansi"

// RenderableCell is one cell plus its absolute grid position, as produced
// by RenderableCells. IsCursor marks the cell under a visible cursor, which
// RenderableCells also flags CellFlagReverse, so a renderer never
// special-cases the cursor separately from ordinary cells. A wide character
// under the cursor yields one cell; its spacer cell is not produced.
type RenderableCell struct {
	Position
	Cell
	IsCursor bool
}

// RenderableCells returns every on-screen cell in reading order, except
// wide-character spacer cells, with the cursor cell's Reverse flag
// synthesized in when the cursor is visible.
func (t *Terminal) RenderableCells() []RenderableCell {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]RenderableCell, 0, t.rows*t.cols)
	showCursor := t.modes&bit(ansi.ModeShowCursor) != 0
	for row := 0; row < t.rows; row++ {
		for col := 0; col < t.cols; col++ {
			cell := *t.active.Cell(row, col)
			if cell.IsWideSpacer() {
				continue
			}
			rc := RenderableCell{Position: Position{Row: row, Col: col}, Cell: cell}
			if showCursor && row == t.cursor.Row && col == t.cursor.Col {
				rc.IsCursor = true
				rc.Cell.SetFlag(CellFlagReverse)
			}
			out = append(out, rc)
		}
	}
	return out
}

// Search returns the positions of every on-screen occurrence of needle.
func (t *Terminal) Search(needle string) []Position {
	if needle == "" {
		return nil
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	var out []Position
	nr := []rune(needle)
	for row := 0; row < t.rows; row++ {
		line := []rune(t.active.LineContent(row))
		for col := 0; col+len(nr) <= len(line); col++ {
			if runesEqual(line[col:col+len(nr)], nr) {
				out = append(out, Position{Row: row, Col: col})
			}
		}
	}
	return out
}

func runesEqual(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// SetSemanticEscapeChars configures the characters that bound a semantic
// selection (word/path) expansion in SemanticSearchLeft/Right.
func (t *Terminal) SetSemanticEscapeChars(chars string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.semanticEscapeChars = chars
}

// SemanticSearchLeft walks left from (row, col) until it crosses a
// semantic-escape character or an unwrapped line boundary, returning the
// position just after the boundary. Mirrors alacritty_terminal's
// Search::semantic_search_left.
func (t *Terminal) SemanticSearchLeft(row, col int) Position {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.semanticSearch(row, col, -1)
}

// SemanticSearchRight is the mirror image of SemanticSearchLeft.
func (t *Terminal) SemanticSearchRight(row, col int) Position {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.semanticSearch(row, col, 1)
}

func (t *Terminal) semanticSearch(row, col, dir int) Position {
	last := Position{Row: row, Col: col}
	for {
		nextCol := col + dir
		if nextCol < 0 || nextCol >= t.cols {
			if dir < 0 && row == 0 {
				return last
			}
			if dir > 0 && row == t.rows-1 {
				return last
			}
			wrapped := t.active.IsWrapped(row)
			if dir > 0 && !wrapped {
				return last
			}
			if dir < 0 && !t.active.IsWrapped(row-1) {
				return last
			}
			row += dir
			if dir < 0 {
				nextCol = t.cols - 1
			} else {
				nextCol = 0
			}
		}
		cell := t.active.Cell(row, nextCol)
		if cell == nil {
			return last
		}
		if isSemanticBoundary(cell.Char, t.semanticEscapeChars) {
			return last
		}
		col = nextCol
		last = Position{Row: row, Col: col}
	}
}

// SetSelection marks [start, end) as selected.
func (t *Terminal) SetSelection(start, end Position) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.selection = Selection{Start: start, End: end, Active: true}
}

// ClearSelection deactivates the current selection.
func (t *Terminal) ClearSelection() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.selection.Active = false
}

// SelectionRange returns the active selection's bounds, ordered so Start
// never sorts after End, for a renderer to highlight. ok is false when
// there is no active selection.
func (t *Terminal) SelectionRange() (start, end Position, ok bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if !t.selection.Active {
		return Position{}, Position{}, false
	}
	start, end = t.selection.Start, t.selection.End
	if end.Before(start) {
		start, end = end, start
	}
	return start, end, true
}

// InSelection reports whether (row, col) falls within the active
// selection, mirroring the highlight test GetSelectedText applies when
// copying.
func (t *Terminal) InSelection(row, col int) bool {
	start, end, ok := t.SelectionRange()
	if !ok {
		return false
	}
	p := Position{Row: row, Col: col}
	if start.Row == end.Row {
		return row == start.Row && col >= start.Col && col < end.Col
	}
	if row == start.Row {
		return col >= start.Col
	}
	if row == end.Row {
		return col < end.Col
	}
	return p.Row > start.Row && p.Row < end.Row
}

// GetSelectedText returns the text covered by the active selection.
func (t *Terminal) GetSelectedText() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if !t.selection.Active {
		return ""
	}
	start, end := t.selection.Start, t.selection.End
	if end.Before(start) {
		start, end = end, start
	}
	if start.Row == end.Row {
		line := []rune(t.active.LineContent(start.Row))
		lo, hi := clamp(start.Col, 0, len(line)), clamp(end.Col, 0, len(line))
		if lo > hi {
			lo, hi = hi, lo
		}
		return string(line[lo:hi])
	}
	var b []rune
	for row := start.Row; row <= end.Row; row++ {
		line := []rune(t.active.LineContent(row))
		lo, hi := 0, len(line)
		if row == start.Row {
			lo = clamp(start.Col, 0, len(line))
		}
		if row == end.Row {
			hi = clamp(end.Col, 0, len(line))
		}
		if lo < hi {
			b = append(b, line[lo:hi]...)
		}
		if row != end.Row {
			b = append(b, '\n')
		}
	}
	return string(b)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func isSemanticBoundary(r rune, escapes string) bool {
	for _, e := range escapes {
		if r == e {
			return true
		}
	}
	return false
}
