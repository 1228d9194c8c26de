package term

import "image/color"

// CellFlags is a bitmask of cell rendering attributes.
type CellFlags uint16

const (
	CellFlagBold CellFlags = 1 << iota
	CellFlagDim
	CellFlagItalic
	CellFlagUnderline
	CellFlagDoubleUnderline
	CellFlagCurlyUnderline
	CellFlagDottedUnderline
	CellFlagDashedUnderline
	CellFlagBlinkSlow
	CellFlagBlinkFast
	CellFlagReverse
	CellFlagHidden
	CellFlagStrike
	CellFlagWideChar
	CellFlagWideCharSpacer
	CellFlagDirty
	CellFlagWrapLine
)

// Hyperlink associates a cell with a clickable link set via OSC 8.
type Hyperlink struct {
	ID  string
	URI string
}

// Cell stores the character, colors and formatting attributes for one grid
// position. Wide characters occupy two columns; the second column holds a
// spacer cell flagged with CellFlagWideCharSpacer.
type Cell struct {
	Char           rune
	Fg             color.Color
	Bg             color.Color
	UnderlineColor color.Color
	Flags          CellFlags
	Hyperlink      *Hyperlink
}

// NewCell returns a cell holding a space with the default foreground and
// background colors.
func NewCell() Cell {
	return Cell{
		Char: ' ',
		Fg:   &NamedColor{Name: NamedColorForeground},
		Bg:   &NamedColor{Name: NamedColorBackground},
	}
}

// Reset restores the cell to its default state.
func (c *Cell) Reset() {
	c.Char = ' '
	c.Fg = &NamedColor{Name: NamedColorForeground}
	c.Bg = &NamedColor{Name: NamedColorBackground}
	c.UnderlineColor = nil
	c.Flags = 0
	c.Hyperlink = nil
}

func (c *Cell) HasFlag(flag CellFlags) bool { return c.Flags&flag != 0 }
func (c *Cell) SetFlag(flag CellFlags)      { c.Flags |= flag }
func (c *Cell) ClearFlag(flag CellFlags)    { c.Flags &^= flag }

func (c *Cell) IsDirty() bool    { return c.HasFlag(CellFlagDirty) }
func (c *Cell) MarkDirty()       { c.SetFlag(CellFlagDirty) }
func (c *Cell) ClearDirty()      { c.ClearFlag(CellFlagDirty) }
func (c *Cell) IsWide() bool     { return c.HasFlag(CellFlagWideChar) }
func (c *Cell) IsWideSpacer() bool { return c.HasFlag(CellFlagWideCharSpacer) }

// Copy returns a shallow copy of the cell (colors and hyperlink pointers are
// shared, which is safe since both are treated as immutable once set).
func (c *Cell) Copy() Cell {
	return Cell{
		Char:           c.Char,
		Fg:             c.Fg,
		Bg:             c.Bg,
		UnderlineColor: c.UnderlineColor,
		Flags:          c.Flags,
		Hyperlink:      c.Hyperlink,
	}
}
