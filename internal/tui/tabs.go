package tui

import (
	"github.com/gdamore/tcell/v2"
)

// TabTitle is one entry in the vertical tab column: a label plus an
// optional trailing exit-status glyph, mirroring vertical_tabs.rs's Title.
type TabTitle struct {
	Text   string
	Symbol string
	Style  tcell.Style
}

// MouseAction is the outcome of a mouse event inside the tab column,
// mirroring vertical_tabs.rs's MouseAction enum.
type MouseAction int

const (
	MouseActionNone MouseAction = iota
	MouseActionSelect
	MouseActionScrollUp
	MouseActionScrollDown
)

// VerticalTabs lays a scrollable column of TabTitle entries into area,
// with scroll-up/scroll-down indicator rows at the top/bottom when the
// titles overflow the available height. Grounded on vertical_tabs.rs's
// layout/draw pair.
type VerticalTabs struct {
	Titles         []TabTitle
	Selected       int
	Scroll         int
	Style          tcell.Style
	HighlightStyle tcell.Style
}

type tabsLayout struct {
	scrollUp, selectArea, scrollDown Rect
}

func (v *VerticalTabs) hasScrollUp() bool { return v.Scroll > 0 }

func (v *VerticalTabs) hasScrollDown(area Rect) bool {
	return len(v.Titles) > v.Scroll+area.Height-2
}

func (v *VerticalTabs) layout(area Rect) tabsLayout {
	upOffset, downOffset := 0, 0
	if v.hasScrollUp() {
		upOffset = 1
	}
	if v.hasScrollDown(area) {
		downOffset = 1
	}
	return tabsLayout{
		scrollUp:   Rect{X: area.X, Y: area.Y, Width: area.Width, Height: upOffset},
		selectArea: Rect{X: area.X, Y: area.Y + upOffset, Width: area.Width, Height: area.Height - upOffset - downOffset},
		scrollDown: Rect{X: area.X, Y: area.Y + area.Height - downOffset, Width: area.Width, Height: downOffset},
	}
}

// OnMouseEvent resolves a click within area (already known to contain x,y)
// into a MouseAction, mirroring vertical_tabs.rs's on_mouse_event.
func (v *VerticalTabs) OnMouseEvent(area Rect, x, y int) (MouseAction, int) {
	l := v.layout(area)
	switch {
	case l.scrollUp.Contains(x, y):
		return MouseActionScrollUp, 0
	case l.scrollDown.Contains(x, y):
		return MouseActionScrollDown, 0
	case l.selectArea.Contains(x, y):
		idx := v.Scroll + y - l.selectArea.Y
		if idx > len(v.Titles)-1 {
			idx = len(v.Titles) - 1
		}
		if idx < 0 {
			idx = 0
		}
		return MouseActionSelect, idx
	default:
		return MouseActionNone, 0
	}
}

// Draw paints the tab column onto screen within area.
func (v *VerticalTabs) Draw(screen tcell.Screen, area Rect) {
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			screen.SetContent(x, y, ' ', nil, v.Style)
		}
	}
	// right-hand border, matching the original's Borders::RIGHT block.
	for y := area.Y; y < area.Bottom(); y++ {
		screen.SetContent(area.Right()-1, y, tcell.RuneVLine, nil, v.Style)
	}

	l := v.layout(Rect{X: area.X, Y: area.Y, Width: area.Width - 1, Height: area.Height})

	if l.scrollUp.Area() > 0 {
		v.drawIndicator(screen, l.scrollUp, '▲')
	}
	if l.scrollDown.Area() > 0 {
		v.drawIndicator(screen, l.scrollDown, '▼')
	}
	if l.selectArea.Area() == 0 {
		return
	}

	for i, title := range v.Titles {
		row := l.selectArea.Y + (i - v.Scroll)
		if row < l.selectArea.Y || row >= l.selectArea.Bottom() {
			continue
		}
		style := v.Style
		if i == v.Selected {
			style = v.HighlightStyle
		}
		v.drawTitle(screen, Rect{X: l.selectArea.X, Y: row, Width: l.selectArea.Width, Height: 1}, title, style)
	}
}

func (v *VerticalTabs) drawIndicator(screen tcell.Screen, area Rect, glyph rune) {
	indicatorStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray)
	for x := area.X; x < area.Right(); x++ {
		screen.SetContent(x, area.Y, ' ', nil, indicatorStyle)
	}
	screen.SetContent(area.X+area.Width/2, area.Y, glyph, nil, indicatorStyle.Foreground(tcell.ColorGray))
}

func (v *VerticalTabs) drawTitle(screen tcell.Screen, area Rect, title TabTitle, style tcell.Style) {
	width := area.Width
	if title.Symbol != "" {
		symRunes := []rune(title.Symbol)
		x := area.Right() - len(symRunes)
		if x >= area.X {
			putString(screen, x, area.Y, title.Symbol, title.Style)
		}
		width -= len(symRunes) + 1
	}

	text := []rune(title.Text)
	if len(text) <= width {
		putRunes(screen, area.X, area.Y, text, style)
	} else if width > 0 {
		putRunes(screen, area.X, area.Y, text[:width-1], style)
		screen.SetContent(area.X+width-1, area.Y, '…', nil, style)
	}
}

func putString(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	putRunes(screen, x, y, []rune(s), style)
}

func putRunes(screen tcell.Screen, x, y int, runes []rune, style tcell.Style) {
	for i, r := range runes {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
