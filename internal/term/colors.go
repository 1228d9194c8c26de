package term

import "image/color"

// NamedColor indices. These deliberately share ordinal values with
// internal/ansi.NamedColor so that colorFromAnsi can convert by a plain
// int(...) cast instead of a lookup table.
const (
	NamedColorBlack = iota
	NamedColorRed
	NamedColorGreen
	NamedColorYellow
	NamedColorBlue
	NamedColorMagenta
	NamedColorCyan
	NamedColorWhite
	NamedColorBrightBlack
	NamedColorBrightRed
	NamedColorBrightGreen
	NamedColorBrightYellow
	NamedColorBrightBlue
	NamedColorBrightMagenta
	NamedColorBrightCyan
	NamedColorBrightWhite
	NamedColorForeground
	NamedColorBackground
	NamedColorCursor
	NamedColorDimBlack
	NamedColorDimRed
	NamedColorDimGreen
	NamedColorDimYellow
	NamedColorDimBlue
	NamedColorDimMagenta
	NamedColorDimCyan
	NamedColorDimWhite
	NamedColorBrightForeground
	NamedColorDimForeground
)

// NamedColor is a color.Color that resolves lazily against the active
// palette/default colors, rather than a fixed RGBA value.
type NamedColor struct {
	Name int
}

func (n *NamedColor) RGBA() (r, g, b, a uint32) {
	return resolveNamedColor(n.Name, true).RGBA()
}

// IndexedColor is a color.Color referring to a slot in DefaultPalette.
type IndexedColor struct {
	Index uint8
}

func (c *IndexedColor) RGBA() (r, g, b, a uint32) {
	return DefaultPalette[c.Index].RGBA()
}

// DefaultPalette holds the 256-color ANSI palette: 16 named colors, a 6x6x6
// color cube, and a 24-step grayscale ramp.
var DefaultPalette [256]color.RGBA

var (
	DefaultForeground color.RGBA = color.RGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}
	DefaultBackground color.RGBA = color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xff}
	DefaultCursorColor color.RGBA = color.RGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}
)

func init() {
	base := [16]color.RGBA{
		{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
		{R: 0xcd, G: 0x00, B: 0x00, A: 0xff},
		{R: 0x00, G: 0xcd, B: 0x00, A: 0xff},
		{R: 0xcd, G: 0xcd, B: 0x00, A: 0xff},
		{R: 0x00, G: 0x00, B: 0xee, A: 0xff},
		{R: 0xcd, G: 0x00, B: 0xcd, A: 0xff},
		{R: 0x00, G: 0xcd, B: 0xcd, A: 0xff},
		{R: 0xe5, G: 0xe5, B: 0xe5, A: 0xff},
		{R: 0x7f, G: 0x7f, B: 0x7f, A: 0xff},
		{R: 0xff, G: 0x00, B: 0x00, A: 0xff},
		{R: 0x00, G: 0xff, B: 0x00, A: 0xff},
		{R: 0xff, G: 0xff, B: 0x00, A: 0xff},
		{R: 0x5c, G: 0x5c, B: 0xff, A: 0xff},
		{R: 0xff, G: 0x00, B: 0xff, A: 0xff},
		{R: 0x00, G: 0xff, B: 0xff, A: 0xff},
		{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}
	for i, c := range base {
		DefaultPalette[i] = c
	}

	steps := [6]uint8{0x00, 0x5f, 0x87, 0xaf, 0xd7, 0xff}
	idx := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				DefaultPalette[idx] = color.RGBA{R: steps[r], G: steps[g], B: steps[b], A: 0xff}
				idx++
			}
		}
	}

	for i := 0; i < 24; i++ {
		v := uint8(8 + i*10)
		DefaultPalette[232+i] = color.RGBA{R: v, G: v, B: v, A: 0xff}
	}
}

// resolveNamedColor maps a NamedColor index to a concrete RGBA value.
func resolveNamedColor(name int, fg bool) color.RGBA {
	switch name {
	case NamedColorForeground:
		return DefaultForeground
	case NamedColorBackground:
		return DefaultBackground
	case NamedColorCursor:
		return DefaultCursorColor
	case NamedColorBrightForeground:
		return dim(DefaultForeground, 1.2)
	case NamedColorDimForeground:
		return dim(DefaultForeground, 0.66)
	}
	if name >= NamedColorDimBlack && name <= NamedColorDimWhite {
		base := DefaultPalette[name-NamedColorDimBlack]
		return dim(base, 0.66)
	}
	if name >= 0 && name <= NamedColorBrightWhite {
		return DefaultPalette[name]
	}
	if fg {
		return DefaultForeground
	}
	return DefaultBackground
}

func dim(c color.RGBA, factor float64) color.RGBA {
	scale := func(v uint8) uint8 {
		f := float64(v) * factor
		if f > 255 {
			f = 255
		}
		if f < 0 {
			f = 0
		}
		return uint8(f)
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}

// ResolveDefaultColor converts any color.Color (nil, IndexedColor, NamedColor
// or a generic color.Color) into a concrete RGBA, resolving against the
// active defaults when the color is a lazily-resolved placeholder.
func ResolveDefaultColor(c color.Color, fg bool) color.RGBA {
	switch v := c.(type) {
	case nil:
		if fg {
			return DefaultForeground
		}
		return DefaultBackground
	case color.RGBA:
		return v
	case *IndexedColor:
		return DefaultPalette[v.Index]
	case *NamedColor:
		return resolveNamedColor(v.Name, fg)
	default:
		r, g, b, a := c.RGBA()
		return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
	}
}
