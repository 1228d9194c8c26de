package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dflemstr/mux/internal/muxloop"
)

func newTestController(t *testing.T, n int) (*Controller, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	screen.SetSize(80, 24)

	panes := make([]*ProcessPane, n)
	for i := range panes {
		panes[i] = NewProcessPane(i, "pane")
	}
	return NewController(screen, panes), screen
}

func TestControllerProcessOutputFeedsTerm(t *testing.T) {
	c, screen := newTestController(t, 2)
	defer screen.Fini()

	c.HandleEvent(muxloop.ProcessOutput{Index: 1, Data: []byte("hi")})

	if got := c.State.Panes[1].Term.LineContent(0); got != "hi" {
		t.Errorf("expected child output written into pane 1's terminal, got %q", got)
	}
}

func TestControllerProcessExitRecordsStatus(t *testing.T) {
	c, screen := newTestController(t, 1)
	defer screen.Fini()

	c.HandleEvent(muxloop.ProcessExit{Index: 0, ExitCode: 4})

	if c.State.Panes[0].ExitCode == nil || *c.State.Panes[0].ExitCode != 4 {
		t.Fatalf("expected exit code 4 recorded, got %+v", c.State.Panes[0].ExitCode)
	}
}

func TestControllerBroadcastsUnconsumedKeystroke(t *testing.T) {
	c, screen := newTestController(t, 2)
	defer screen.Fini()

	ev := muxloop.UserInput{
		TcellEvent: tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone),
		Raw:        []byte("x"),
	}
	actions := c.HandleEvent(ev)

	if len(actions) != 1 {
		t.Fatalf("expected exactly one action, got %d", len(actions))
	}
	all, ok := actions[0].(muxloop.ProcessInputAll)
	if !ok {
		t.Fatalf("expected ProcessInputAll, got %T", actions[0])
	}
	if string(all.Data) != "x" {
		t.Errorf("expected broadcast data 'x', got %q", all.Data)
	}
}

func TestControllerSwallowsTabColumnMouseClick(t *testing.T) {
	c, screen := newTestController(t, 3)
	defer screen.Fini()

	ev := muxloop.UserInput{
		TcellEvent: tcell.NewEventMouse(2, 2, tcell.Button1, tcell.ModNone),
		Raw:        []byte{0},
	}
	actions := c.HandleEvent(ev)

	for _, a := range actions {
		if _, ok := a.(muxloop.ProcessInputAll); ok {
			t.Error("expected a tab-column click to not be broadcast to children")
		}
	}
	if c.State.Selected != 2 {
		t.Errorf("expected selection to move to tab 2, got %d", c.State.Selected)
	}
}

func TestControllerDrainsPendingResponsesAsActions(t *testing.T) {
	c, screen := newTestController(t, 2)
	defer screen.Fini()

	c.State.Panes[1].Term.WriteString("\x1b[6n")

	actions := c.HandleEvent(muxloop.ProcessExit{Index: 0, ExitCode: 0})

	var found bool
	for _, a := range actions {
		if pi, ok := a.(muxloop.ProcessInput); ok && pi.Index == 1 {
			found = true
			if len(pi.Data) == 0 {
				t.Error("expected nonempty response data")
			}
		}
	}
	if !found {
		t.Error("expected a ProcessInput action draining pane 1's queued response")
	}
}
