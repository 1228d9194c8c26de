// Package tui renders a set of per-child terminal emulators into a single
// tcell screen, laid out as a fixed-width vertical tab column beside the
// focused child's pane. It is the Go reinterpretation of ui/mod.rs and
// ui/vertical_tabs.rs, with tui-rs's immediate-mode Buffer/Widget traits
// replaced by direct tcell.Screen.SetContent calls.
package tui

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/dflemstr/mux/internal/term"
)

// convertColor resolves c (possibly a NamedColor/IndexedColor sentinel) to
// a concrete tcell color, mirroring ui.rs's convert_color but collapsing
// its many NamedColor arms into one RGBA resolution step since
// internal/term already owns the palette.
func convertColor(c color.Color, fg bool) tcell.Color {
	rgba := term.ResolveDefaultColor(c, fg)
	return tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))
}

// convertFlags maps cell attribute flags onto a tcell.Style, mirroring
// ui.rs's convert_flags.
func convertFlags(style tcell.Style, flags term.CellFlags) tcell.Style {
	if flags&term.CellFlagReverse != 0 {
		style = style.Reverse(true)
	}
	if flags&term.CellFlagBold != 0 {
		style = style.Bold(true)
	}
	if flags&term.CellFlagItalic != 0 {
		style = style.Italic(true)
	}
	if flags&(term.CellFlagUnderline|term.CellFlagDoubleUnderline|term.CellFlagCurlyUnderline|
		term.CellFlagDottedUnderline|term.CellFlagDashedUnderline) != 0 {
		style = style.Underline(true)
	}
	if flags&term.CellFlagDim != 0 {
		style = style.Dim(true)
	}
	if flags&(term.CellFlagBlinkSlow|term.CellFlagBlinkFast) != 0 {
		style = style.Blink(true)
	}
	if flags&term.CellFlagStrike != 0 {
		style = style.StrikeThrough(true)
	}
	return style
}
