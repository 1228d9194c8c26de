package tui

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dflemstr/mux/internal/muxloop"
)

func newStateWithPanes(n int) *State {
	panes := make([]*ProcessPane, n)
	for i := range panes {
		panes[i] = NewProcessPane(i, "pane")
	}
	return NewState(panes)
}

func TestStateLayoutNarrowerThanTabColumn(t *testing.T) {
	s := newStateWithPanes(1)

	tabsArea, paneArea := s.Layout(20, 10)

	if tabsArea.Width != 20 {
		t.Errorf("expected tab column to shrink to the full width (20), got %d", tabsArea.Width)
	}
	if paneArea.Width != 0 {
		t.Errorf("expected no room left for the pane area, got %d", paneArea.Width)
	}
}

func TestStateLayoutWideEnough(t *testing.T) {
	s := newStateWithPanes(1)

	tabsArea, paneArea := s.Layout(100, 10)

	if tabsArea.Width != tabColumnWidth {
		t.Errorf("expected tab column width %d, got %d", tabColumnWidth, tabsArea.Width)
	}
	if paneArea.X != tabColumnWidth || paneArea.Width != 100-tabColumnWidth {
		t.Errorf("expected pane area to start after the tab column, got %+v", paneArea)
	}
}

func TestStateOnExitSetsPaneStatus(t *testing.T) {
	s := newStateWithPanes(2)

	s.OnExit(muxloop.ProcessExit{Index: 1, ExitCode: 3, Err: errors.New("boom")})

	if s.Panes[1].ExitCode == nil || *s.Panes[1].ExitCode != 3 {
		t.Fatalf("expected pane 1 exit code 3, got %+v", s.Panes[1].ExitCode)
	}
	if s.Panes[1].ExitedWith == nil {
		t.Error("expected ExitedWith to be recorded")
	}
	if s.Panes[0].ExitCode != nil {
		t.Error("expected pane 0 to remain unaffected")
	}
}

func TestStateOnExitIgnoresOutOfRangeIndex(t *testing.T) {
	s := newStateWithPanes(1)

	s.OnExit(muxloop.ProcessExit{Index: 5, ExitCode: 1})

	if s.Panes[0].ExitCode != nil {
		t.Error("expected out-of-range exit to be ignored without panicking")
	}
}

func TestStateOnUserInputKeystrokeNeverConsumed(t *testing.T) {
	s := newStateWithPanes(3)

	consumed := s.OnUserInput(100, 24, tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone))

	if consumed {
		t.Error("expected keystrokes to never be consumed by UI chrome")
	}
}

func TestStateOnUserInputSelectsTabViaMouse(t *testing.T) {
	s := newStateWithPanes(5)

	ev := tcell.NewEventMouse(2, 2, tcell.Button1, tcell.ModNone)
	consumed := s.OnUserInput(100, 24, ev)

	if !consumed {
		t.Error("expected a click inside the tab column to be consumed")
	}
	if s.Selected != 2 {
		t.Errorf("expected selection to move to tab 2, got %d", s.Selected)
	}
}

func TestStateOnUserInputClickInPaneAreaIsConsumed(t *testing.T) {
	s := newStateWithPanes(2)

	ev := tcell.NewEventMouse(60, 5, tcell.Button1, tcell.ModNone)
	consumed := s.OnUserInput(100, 24, ev)

	if !consumed {
		t.Error("expected a click inside the pane area to be consumed (swallowed)")
	}
}

func TestStateOnUserInputOutsideAnyAreaIsNotConsumed(t *testing.T) {
	s := newStateWithPanes(1)

	ev := tcell.NewEventMouse(500, 500, tcell.Button1, tcell.ModNone)
	consumed := s.OnUserInput(100, 24, ev)

	if consumed {
		t.Error("expected a click outside both areas to be left unconsumed")
	}
}

func TestStateDrawDoesNotPanic(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(80, 24)

	s := newStateWithPanes(3)
	s.Draw(screen)
}
