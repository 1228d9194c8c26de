package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dflemstr/mux/internal/muxloop"
)

// Controller wires a State to a tcell.Screen and a muxloop Event stream,
// performing the per-event processing described in ui/mod.rs's
// Ui::on_event: feed child output into its emulator, record exits, route
// user input either to the UI chrome or to a broadcast action, then drain
// every pane's pending response bytes into ProcessInput actions.
type Controller struct {
	Screen tcell.Screen
	State  *State
}

// NewController builds a Controller over screen and panes, in index order.
func NewController(screen tcell.Screen, panes []*ProcessPane) *Controller {
	return &Controller{Screen: screen, State: NewState(panes)}
}

// HandleEvent processes one event, redraws the screen, and returns the
// Actions it produced (process input to broadcast or to deliver to
// specific children).
func (c *Controller) HandleEvent(ev muxloop.Event) []muxloop.Action {
	width, height := c.Screen.Size()

	var actions []muxloop.Action

	switch e := ev.(type) {
	case muxloop.ProcessOutput:
		if e.Index >= 0 && e.Index < len(c.State.Panes) {
			_, _ = c.State.Panes[e.Index].Term.Write(e.Data)
		}
	case muxloop.ProcessExit:
		c.State.OnExit(e)
	case muxloop.ProcessOutputError:
		if e.Index >= 0 && e.Index < len(c.State.Panes) {
			c.State.Panes[e.Index].ExitedWith = e.Err
		}
	case muxloop.UserInput:
		handled := c.State.OnUserInput(width, height, e.TcellEvent)
		if !handled && len(e.Raw) > 0 {
			actions = append(actions, muxloop.ProcessInputAll{Data: e.Raw})
		}
	case muxloop.Resized:
		c.Screen.Sync()
	}

	c.State.Draw(c.Screen)
	c.Screen.Show()

	for _, p := range c.State.Panes {
		if data := p.TakePendingInput(); data != nil {
			actions = append(actions, muxloop.ProcessInput{Index: p.Index, Data: data})
		}
	}

	return actions
}
