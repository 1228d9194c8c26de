package tui

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dflemstr/mux/internal/muxloop"
)

// tabColumnWidth is the fixed width of the vertical tab sidebar, matching
// ui/mod.rs's State::layout (Constraint::Length(40)).
const tabColumnWidth = 40

// State is the UI's single piece of shared mutable state: every child's
// pane plus which tab is focused and how far the tab column is scrolled.
// Mirrors ui/mod.rs's State.
type State struct {
	Panes    []*ProcessPane
	Selected int
	Scroll   int
}

// NewState builds a State with one pane per process, in index order.
func NewState(panes []*ProcessPane) *State {
	return &State{Panes: panes}
}

func (s *State) Layout(width, height int) (tabsArea, paneArea Rect) {
	w := tabColumnWidth
	if w > width {
		w = width
	}
	return Rect{X: 0, Y: 0, Width: w, Height: height},
		Rect{X: w, Y: 0, Width: width - w, Height: height}
}

func (s *State) tabs() *VerticalTabs {
	titles := make([]TabTitle, len(s.Panes))
	for i, p := range s.Panes {
		titles[i] = p.TabTitle()
	}
	return &VerticalTabs{
		Titles:         titles,
		Selected:       s.Selected,
		Scroll:         s.Scroll,
		Style:          tcell.StyleDefault,
		HighlightStyle: tcell.StyleDefault.Bold(true).Underline(true),
	}
}

// Draw paints the tab column and the focused pane into the whole screen.
func (s *State) Draw(screen tcell.Screen) {
	width, height := screen.Size()
	tabsArea, paneArea := s.Layout(width, height)
	s.tabs().Draw(screen, tabsArea)
	if s.Selected >= 0 && s.Selected < len(s.Panes) {
		s.Panes[s.Selected].Draw(screen, paneArea)
	}
}

// OnUserInput dispatches one decoded input event, mirroring
// ui/mod.rs's State::on_user_input. It returns true when the UI consumed
// the event itself (any mouse event inside the tab column or the pane
// area), meaning the raw bytes must NOT be broadcast to children.
func (s *State) OnUserInput(width, height int, ev tcell.Event) bool {
	mouse, ok := ev.(*tcell.EventMouse)
	if !ok {
		// Keystrokes are never consumed by the UI chrome; they always
		// fall through to ProcessInputAll broadcast.
		return false
	}

	tabsArea, paneArea := s.Layout(width, height)
	x, y := mouse.Position()

	switch {
	case tabsArea.Contains(x, y):
		action, idx := s.tabs().OnMouseEvent(tabsArea, x, y)
		switch action {
		case MouseActionSelect:
			s.Selected = idx
		case MouseActionScrollUp:
			if s.Scroll > 0 {
				s.Scroll--
			}
		case MouseActionScrollDown:
			maxScroll := len(s.Panes) - height + 2
			if maxScroll < 0 {
				maxScroll = 0
			}
			if s.Scroll < maxScroll {
				s.Scroll++
			}
		}
		return true
	case paneArea.Contains(x, y):
		if mouse.Buttons()&tcell.Button1 != 0 && s.Selected >= 0 && s.Selected < len(s.Panes) {
			s.Panes[s.Selected].HandleMouseClick(x-paneArea.X, y-paneArea.Y, time.Now())
		}
		return true
	default:
		return false
	}
}

// OnExit records a child's exit status onto its pane so the next Draw call
// reflects it, mirroring ProcessState::on_exit.
func (s *State) OnExit(e muxloop.ProcessExit) {
	if e.Index < 0 || e.Index >= len(s.Panes) {
		return
	}
	code := e.ExitCode
	s.Panes[e.Index].ExitCode = &code
	s.Panes[e.Index].ExitedWith = e.Err
}
