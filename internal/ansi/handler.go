// Package ansi turns the byte-level events produced by internal/vte into
// semantic terminal operations, dispatched against a [Handler]
// implementation. It plays the role that github.com/danielgatis/go-ansicode
// plays for the teacher package, but is written from scratch here because
// go-ansicode (and its internal go-vte) cannot be fetched from this module's
// dependency set.
package ansi

// Color is a tagged union mirroring the three ways an SGR parameter can name
// a color: one of the 16 named slots, an index into the 256-color table, or
// a direct 24-bit value.
type Color struct {
	Kind ColorKind
	// Named holds the NamedColor when Kind == ColorNamed.
	Named NamedColor
	// Index holds the palette index when Kind == ColorIndexed.
	Index uint8
	// R, G, B hold the components when Kind == ColorSpec.
	R, G, B uint8
}

type ColorKind int

const (
	ColorNamed ColorKind = iota
	ColorIndexed
	ColorSpec
)

type NamedColor int

const (
	NamedBlack NamedColor = iota
	NamedRed
	NamedGreen
	NamedYellow
	NamedBlue
	NamedMagenta
	NamedCyan
	NamedWhite
	NamedBrightBlack
	NamedBrightRed
	NamedBrightGreen
	NamedBrightYellow
	NamedBrightBlue
	NamedBrightMagenta
	NamedBrightCyan
	NamedBrightWhite
	NamedForeground
	NamedBackground
	NamedCursor
	NamedDimBlack
	NamedDimRed
	NamedDimGreen
	NamedDimYellow
	NamedDimBlue
	NamedDimMagenta
	NamedDimCyan
	NamedDimWhite
	NamedBrightForeground
	NamedDimForeground
)

// CharAttribute is an SGR text attribute (bold, italic, ...). Cancel*
// variants reverse the corresponding set operation.
type CharAttribute int

const (
	AttrReset CharAttribute = iota
	AttrBold
	AttrCancelBold
	AttrDim
	AttrCancelBoldDim
	AttrItalic
	AttrCancelItalic
	AttrUnderline
	AttrDoubleUnderline
	AttrCurlyUnderline
	AttrDottedUnderline
	AttrDashedUnderline
	AttrCancelUnderline
	AttrBlinkSlow
	AttrBlinkFast
	AttrCancelBlink
	AttrReverse
	AttrCancelReverse
	AttrHidden
	AttrCancelHidden
	AttrStrike
	AttrCancelStrike
	AttrForeground
	AttrBackground
	AttrUnderlineColor
	AttrCancelUnderlineColor
)

type Charset int

const (
	CharsetASCII Charset = iota
	CharsetLineDrawing
)

type CharsetIndex int

const (
	CharsetG0 CharsetIndex = iota
	CharsetG1
	CharsetG2
	CharsetG3
)

type ClearMode int

const (
	ClearModeBelow ClearMode = iota
	ClearModeAbove
	ClearModeAll
	ClearModeSaved
)

type LineClearMode int

const (
	LineClearRight LineClearMode = iota
	LineClearLeft
	LineClearAll
)

type TabulationClearMode int

const (
	TabulationClearCurrent TabulationClearMode = iota
	TabulationClearAll
)

type CursorStyle int

const (
	CursorStyleBlinkingBlock CursorStyle = iota
	CursorStyleSteadyBlock
	CursorStyleBlinkingUnderline
	CursorStyleSteadyUnderline
	CursorStyleBlinkingBar
	CursorStyleSteadyBar
)

// TerminalMode is the DEC private/ANSI mode set controlled by CSI ?h/?l and
// CSI h/l.
type TerminalMode int

const (
	ModeCursorKeys TerminalMode = iota
	ModeColumnMode
	ModeInsert
	ModeOrigin
	ModeLineWrap
	ModeBlinkingCursor
	ModeLineFeedNewLine
	ModeShowCursor
	ModeReportMouseClicks
	ModeReportCellMouseMotion
	ModeReportAllMouseMotion
	ModeReportFocusInOut
	ModeUTF8Mouse
	ModeSGRMouse
	ModeAlternateScroll
	ModeUrgencyHints
	ModeSwapScreenAndSetRestoreCursor
	ModeBracketedPaste
	ModeKeypadApplication
)

type KeyboardModeBehavior int

const (
	KeyboardModeNoMode KeyboardModeBehavior = iota
	KeyboardModeDifference
	KeyboardModeReplace
	KeyboardModeUnion
)

type KeyboardMode int

type Hyperlink struct {
	ID  string
	URI string
}

// Handler receives semantic terminal operations decoded by [Processor]. A
// terminal emulator (internal/term.Terminal) implements this to mutate its
// grid and cursor state.
type Handler interface {
	Input(r rune)
	Goto(line, col int)
	GotoLine(line int)
	GotoCol(col int)
	MoveUp(n int)
	MoveDown(n int)
	MoveForward(n int)
	MoveBackward(n int)
	MoveUpAndCR(n int)
	MoveDownAndCR(n int)
	PutTab(count int)
	Backspace()
	CarriageReturn()
	Linefeed()
	Bell()
	Substitute()

	NewLine()
	SetHorizontalTabStop()
	ClearTabs(TabulationClearMode)

	InsertBlank(n int)
	DeleteChars(n int)
	EraseChars(n int)
	InsertLines(n int)
	DeleteLines(n int)

	ClearLine(LineClearMode)
	ClearScreen(ClearMode)

	ScrollUp(n int)
	ScrollDown(n int)
	SetScrollingRegion(top, bottom int)

	SaveCursorPosition()
	RestoreCursorPosition()

	SetCharAttribute(CharAttribute, Color)
	TerminalAttribute(CharAttribute)
	SetColor(CharAttribute, Color)

	SetMode(TerminalMode)
	UnsetMode(TerminalMode)
	ReportMode(TerminalMode)

	SetKeypadApplicationMode()
	UnsetKeypadApplicationMode()

	SetTitle(string)
	PushTitle()
	PopTitle()

	SetHyperlink(*Hyperlink)

	ConfigureCharset(CharsetIndex, Charset)
	SetActiveCharset(CharsetIndex)

	IdentifyTerminal()
	DeviceStatus(arg int)

	SetCursorStyle(CursorStyle)

	TextArea(w, h int)

	Decaln()

	Bracketed(paste bool, data []byte)

	Dectsr()
}
