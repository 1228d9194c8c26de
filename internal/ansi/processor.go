package ansi

import (
	"strconv"

	"github.com/dflemstr/mux/internal/vte"
)

// Processor implements vte.Perform, translating decoded escape/control
// sequences into calls on a [Handler]. One Processor is paired with exactly
// one vte.Parser and one Handler (typically an internal/term.Terminal).
type Processor struct {
	handler Handler

	dcsIntermediates []byte
	dcsAction        byte
	dcsBuf           []byte
}

// NewProcessor returns a Processor that dispatches decoded sequences to h.
func NewProcessor(h Handler) *Processor {
	return &Processor{handler: h}
}

var _ vte.Perform = (*Processor)(nil)

func (p *Processor) Print(r rune) { p.handler.Input(r) }

func (p *Processor) Execute(b byte) {
	switch b {
	case '\a':
		p.handler.Bell()
	case '\b':
		p.handler.Backspace()
	case '\t':
		p.handler.PutTab(1)
	case '\n', '\v', '\f':
		p.handler.Linefeed()
	case '\r':
		p.handler.CarriageReturn()
	case 0x1a: // SUB
		p.handler.Substitute()
	}
}

func (p *Processor) Hook(params []int64, intermediates []byte, ignore bool, action byte) {
	p.dcsIntermediates = append(p.dcsIntermediates[:0], intermediates...)
	p.dcsAction = action
	p.dcsBuf = p.dcsBuf[:0]
}

func (p *Processor) Put(b byte) {
	p.dcsBuf = append(p.dcsBuf, b)
}

func (p *Processor) Unhook() {
	// Device control strings beyond what mux reports (DECRQSS, etc.) are
	// intentionally not acted on; the buffer is simply discarded.
	p.dcsBuf = p.dcsBuf[:0]
}

func (p *Processor) OscDispatch(params [][]byte, bellTerminated bool) {
	_ = bellTerminated
	if len(params) == 0 {
		return
	}
	op, err := strconv.Atoi(string(params[0]))
	if err != nil {
		return
	}
	switch op {
	case 0, 1, 2:
		if len(params) > 1 {
			p.handler.SetTitle(string(params[1]))
		}
	case 8:
		if len(params) > 2 {
			uri := string(params[2])
			if uri == "" {
				p.handler.SetHyperlink(nil)
			} else {
				id := string(params[1])
				p.handler.SetHyperlink(&Hyperlink{ID: id, URI: uri})
			}
		}
	case 10, 11:
		// Foreground/background color queries; forwarded as DeviceStatus
		// 1010/1011, which internal/term answers with its default colors.
		p.handler.DeviceStatus(1000 + op)
	case 133:
		// Shell integration marks: not acted on.
	case 52:
		// Clipboard access: intentionally unsupported (no-goal), ignored.
	}
}

func (p *Processor) CsiDispatch(params []int64, subParams [][]int64, intermediates []byte, ignore bool, action byte) {
	priv := len(intermediates) > 0 && (intermediates[0] == '?' || intermediates[0] == '>' || intermediates[0] == '=')
	get := func(i int, def int64) int64 {
		if i >= len(params) || params[i] == 0 {
			return def
		}
		return params[i]
	}
	n := func(def int) int {
		return int(get(0, int64(def)))
	}

	switch action {
	case 'A':
		p.handler.MoveUp(n(1))
	case 'B', 'e':
		p.handler.MoveDown(n(1))
	case 'C', 'a':
		p.handler.MoveForward(n(1))
	case 'D':
		p.handler.MoveBackward(n(1))
	case 'E':
		p.handler.MoveDownAndCR(n(1))
	case 'F':
		p.handler.MoveUpAndCR(n(1))
	case 'G', '`':
		p.handler.GotoCol(n(1) - 1)
	case 'd':
		p.handler.GotoLine(n(1) - 1)
	case 'H', 'f':
		row := int(get(0, 1)) - 1
		col := int(get(1, 1)) - 1
		p.handler.Goto(row, col)
	case 'I':
		p.handler.PutTab(n(1))
	case 'J':
		p.handler.ClearScreen(clearModeFor(n(0)))
	case 'K':
		p.handler.ClearLine(lineClearModeFor(n(0)))
	case 'L':
		p.handler.InsertLines(n(1))
	case 'M':
		p.handler.DeleteLines(n(1))
	case 'P':
		p.handler.DeleteChars(n(1))
	case 'S':
		p.handler.ScrollUp(n(1))
	case 'T':
		p.handler.ScrollDown(n(1))
	case 'X':
		p.handler.EraseChars(n(1))
	case '@':
		p.handler.InsertBlank(n(1))
	case 'Z':
		p.handler.ClearTabs(TabulationClearCurrent)
	case 'g':
		if n(0) == 3 {
			p.handler.ClearTabs(TabulationClearAll)
		} else {
			p.handler.ClearTabs(TabulationClearCurrent)
		}
	case 'm':
		p.dispatchSGR(params, subParams)
	case 'r':
		top := int(get(0, 1)) - 1
		bottom := int(get(1, 0))
		p.handler.SetScrollingRegion(top, bottom)
	case 's':
		if priv {
			return
		}
		p.handler.SaveCursorPosition()
	case 'u':
		if priv {
			return
		}
		p.handler.RestoreCursorPosition()
	case 'h':
		p.dispatchModeSet(params, priv, true)
	case 'l':
		p.dispatchModeSet(params, priv, false)
	case 'n':
		p.handler.DeviceStatus(n(0))
	case 'c':
		p.handler.IdentifyTerminal()
	case 'q':
		if len(intermediates) > 0 && intermediates[0] == ' ' {
			p.handler.SetCursorStyle(cursorStyleFor(n(0)))
		}
	case 't':
		if len(params) >= 3 && params[0] == 8 {
			p.handler.TextArea(int(params[2]), int(params[1]))
			return
		}
		if len(params) >= 1 && params[0] == 22 {
			p.handler.PushTitle()
		}
		if len(params) >= 1 && params[0] == 23 {
			p.handler.PopTitle()
		}
	}
}

func (p *Processor) dispatchModeSet(params []int64, priv, set bool) {
	for _, raw := range params {
		mode, ok := terminalModeFor(int(raw), priv)
		if !ok {
			continue
		}
		if mode == ModeKeypadApplication {
			if set {
				p.handler.SetKeypadApplicationMode()
			} else {
				p.handler.UnsetKeypadApplicationMode()
			}
			continue
		}
		if set {
			p.handler.SetMode(mode)
		} else {
			p.handler.UnsetMode(mode)
		}
	}
}

func terminalModeFor(code int, priv bool) (TerminalMode, bool) {
	if !priv {
		switch code {
		case 4:
			return ModeInsert, true
		case 20:
			return ModeLineFeedNewLine, true
		}
		return 0, false
	}
	switch code {
	case 1:
		return ModeCursorKeys, true
	case 3:
		return ModeColumnMode, true
	case 6:
		return ModeOrigin, true
	case 7:
		return ModeLineWrap, true
	case 12:
		return ModeBlinkingCursor, true
	case 25:
		return ModeShowCursor, true
	case 1000:
		return ModeReportMouseClicks, true
	case 1002:
		return ModeReportCellMouseMotion, true
	case 1003:
		return ModeReportAllMouseMotion, true
	case 1004:
		return ModeReportFocusInOut, true
	case 1005:
		return ModeUTF8Mouse, true
	case 1006:
		return ModeSGRMouse, true
	case 1007:
		return ModeAlternateScroll, true
	case 1042:
		return ModeUrgencyHints, true
	case 1049:
		return ModeSwapScreenAndSetRestoreCursor, true
	case 2004:
		return ModeBracketedPaste, true
	case 66:
		return ModeKeypadApplication, true
	}
	return 0, false
}

func clearModeFor(n int) ClearMode {
	switch n {
	case 1:
		return ClearModeAbove
	case 2:
		return ClearModeAll
	case 3:
		return ClearModeSaved
	default:
		return ClearModeBelow
	}
}

func lineClearModeFor(n int) LineClearMode {
	switch n {
	case 1:
		return LineClearLeft
	case 2:
		return LineClearAll
	default:
		return LineClearRight
	}
}

func cursorStyleFor(n int) CursorStyle {
	switch n {
	case 0, 1:
		return CursorStyleBlinkingBlock
	case 2:
		return CursorStyleSteadyBlock
	case 3:
		return CursorStyleBlinkingUnderline
	case 4:
		return CursorStyleSteadyUnderline
	case 5:
		return CursorStyleBlinkingBar
	case 6:
		return CursorStyleSteadyBar
	default:
		return CursorStyleBlinkingBlock
	}
}

func (p *Processor) dispatchSGR(params []int64, subParams [][]int64) {
	if len(params) == 0 {
		p.handler.TerminalAttribute(AttrReset)
		return
	}
	for i := 0; i < len(params); i++ {
		v := params[i]
		switch {
		case v == 0:
			p.handler.TerminalAttribute(AttrReset)
		case v == 1:
			p.handler.TerminalAttribute(AttrBold)
		case v == 2:
			p.handler.TerminalAttribute(AttrDim)
		case v == 3:
			p.handler.TerminalAttribute(AttrItalic)
		case v == 4:
			p.handler.TerminalAttribute(AttrUnderline)
		case v == 5:
			p.handler.TerminalAttribute(AttrBlinkSlow)
		case v == 6:
			p.handler.TerminalAttribute(AttrBlinkFast)
		case v == 7:
			p.handler.TerminalAttribute(AttrReverse)
		case v == 8:
			p.handler.TerminalAttribute(AttrHidden)
		case v == 9:
			p.handler.TerminalAttribute(AttrStrike)
		case v == 21:
			p.handler.TerminalAttribute(AttrDoubleUnderline)
		case v == 22:
			p.handler.TerminalAttribute(AttrCancelBoldDim)
		case v == 23:
			p.handler.TerminalAttribute(AttrCancelItalic)
		case v == 24:
			p.handler.TerminalAttribute(AttrCancelUnderline)
		case v == 25:
			p.handler.TerminalAttribute(AttrCancelBlink)
		case v == 27:
			p.handler.TerminalAttribute(AttrCancelReverse)
		case v == 28:
			p.handler.TerminalAttribute(AttrCancelHidden)
		case v == 29:
			p.handler.TerminalAttribute(AttrCancelStrike)
		case v >= 30 && v <= 37:
			p.handler.SetColor(AttrForeground, Color{Kind: ColorNamed, Named: NamedColor(v - 30)})
		case v == 38:
			color, consumed := p.extendedColor(params, subParams, i)
			p.handler.SetColor(AttrForeground, color)
			i += consumed
		case v == 39:
			p.handler.SetColor(AttrForeground, Color{Kind: ColorNamed, Named: NamedForeground})
		case v >= 40 && v <= 47:
			p.handler.SetColor(AttrBackground, Color{Kind: ColorNamed, Named: NamedColor(v - 40)})
		case v == 48:
			color, consumed := p.extendedColor(params, subParams, i)
			p.handler.SetColor(AttrBackground, color)
			i += consumed
		case v == 49:
			p.handler.SetColor(AttrBackground, Color{Kind: ColorNamed, Named: NamedBackground})
		case v == 58:
			color, consumed := p.extendedColor(params, subParams, i)
			p.handler.SetColor(AttrUnderlineColor, color)
			i += consumed
		case v == 59:
			p.handler.SetColor(AttrUnderlineColor, Color{Kind: ColorNamed, Named: NamedForeground})
		case v >= 90 && v <= 97:
			p.handler.SetColor(AttrForeground, Color{Kind: ColorNamed, Named: NamedColor(v - 90 + int64(NamedBrightBlack))})
		case v >= 100 && v <= 107:
			p.handler.SetColor(AttrBackground, Color{Kind: ColorNamed, Named: NamedColor(v - 100 + int64(NamedBrightBlack))})
		}
	}
}

// extendedColor parses the 38/48/58 "extended color" sub-sequence starting
// at params[i+1], supporting both colon sub-parameters (38:2:r:g:b) and the
// legacy semicolon form (38;2;r;g;b). It returns the color and the number of
// additional top-level params consumed (0 when colon sub-params were used).
func (p *Processor) extendedColor(params []int64, subParams [][]int64, i int) (Color, int) {
	if i < len(subParams) && len(subParams[i]) > 1 {
		// subParams[i] holds the whole colon group; its first entry is the
		// 38/48/58 itself.
		sub := subParams[i][1:]
		switch sub[0] {
		case 2:
			if len(sub) >= 4 {
				return Color{Kind: ColorSpec, R: u8(sub[len(sub)-3]), G: u8(sub[len(sub)-2]), B: u8(sub[len(sub)-1])}, 0
			}
		case 5:
			if len(sub) >= 2 {
				return Color{Kind: ColorIndexed, Index: u8(sub[1])}, 0
			}
		}
		return Color{}, 0
	}
	if i+1 >= len(params) {
		return Color{}, 0
	}
	switch params[i+1] {
	case 2:
		if i+4 < len(params) {
			return Color{Kind: ColorSpec, R: u8(params[i+2]), G: u8(params[i+3]), B: u8(params[i+4])}, 4
		}
	case 5:
		if i+2 < len(params) {
			return Color{Kind: ColorIndexed, Index: u8(params[i+2])}, 2
		}
	}
	return Color{}, 1
}

func u8(v int64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func (p *Processor) EscDispatch(intermediates []byte, ignore bool, b byte) {
	switch {
	case len(intermediates) == 0 && b == 'D':
		p.handler.Linefeed()
	case len(intermediates) == 0 && b == 'E':
		p.handler.NewLine()
	case len(intermediates) == 0 && b == 'H':
		p.handler.SetHorizontalTabStop()
	case len(intermediates) == 0 && b == 'M':
		p.handler.ScrollUp(1)
	case len(intermediates) == 0 && b == 'c':
		p.handler.ClearScreen(ClearModeAll)
	case len(intermediates) == 0 && b == '7':
		p.handler.SaveCursorPosition()
	case len(intermediates) == 0 && b == '8':
		p.handler.RestoreCursorPosition()
	case len(intermediates) == 1 && intermediates[0] == '#' && b == '8':
		p.handler.Decaln()
	case len(intermediates) == 1 && (intermediates[0] == '(' || intermediates[0] == ')') && isCharsetFinal(b):
		idx := CharsetG0
		if intermediates[0] == ')' {
			idx = CharsetG1
		}
		p.handler.ConfigureCharset(idx, charsetFor(b))
	}
}

func isCharsetFinal(b byte) bool {
	return b == 'B' || b == '0' || b == 'A'
}

func charsetFor(b byte) Charset {
	if b == '0' {
		return CharsetLineDrawing
	}
	return CharsetASCII
}
