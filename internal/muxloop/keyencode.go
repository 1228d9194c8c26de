package muxloop

import "github.com/gdamore/tcell/v2"

// EncodeKey reconstructs the byte sequence a raw terminal would have sent
// for ev, since the broadcast/focused child on the other end of the PTY
// expects terminal protocol bytes, not tcell's decoded representation.
// tcell itself decodes in the opposite direction (bytes -> EventKey); this
// is its mirror for runes (Alt-prefixed with ESC) and the keys listed in
// ctrlBytes and csiSequences; any other key encodes to nil.
func EncodeKey(ev *tcell.EventKey) []byte {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if ev.Modifiers()&tcell.ModAlt != 0 {
			return append([]byte{0x1b}, []byte(string(r))...)
		}
		return []byte(string(r))
	}

	if b, ok := ctrlBytes[ev.Key()]; ok {
		return []byte{b}
	}
	if seq, ok := csiSequences[ev.Key()]; ok {
		return []byte(seq)
	}

	return nil
}

// ctrlBytes covers the C0 control codes tcell surfaces as named keys
// (Ctrl-A..Z plus the handful of punctuation controls), each one byte.
var ctrlBytes = map[tcell.Key]byte{
	tcell.KeyCtrlA: 0x01, tcell.KeyCtrlB: 0x02, tcell.KeyCtrlC: 0x03,
	tcell.KeyCtrlD: 0x04, tcell.KeyCtrlE: 0x05, tcell.KeyCtrlF: 0x06,
	tcell.KeyCtrlG: 0x07, tcell.KeyBackspace: 0x08, tcell.KeyTab: 0x09,
	tcell.KeyCtrlJ: 0x0a, tcell.KeyCtrlK: 0x0b, tcell.KeyCtrlL: 0x0c,
	tcell.KeyEnter: 0x0d, tcell.KeyCtrlN: 0x0e, tcell.KeyCtrlO: 0x0f,
	tcell.KeyCtrlP: 0x10, tcell.KeyCtrlQ: 0x11, tcell.KeyCtrlR: 0x12,
	tcell.KeyCtrlS: 0x13, tcell.KeyCtrlT: 0x14, tcell.KeyCtrlU: 0x15,
	tcell.KeyCtrlV: 0x16, tcell.KeyCtrlW: 0x17, tcell.KeyCtrlX: 0x18,
	tcell.KeyCtrlY: 0x19, tcell.KeyCtrlZ: 0x1a, tcell.KeyEscape: 0x1b,
	tcell.KeyCtrlBackslash: 0x1c, tcell.KeyCtrlRightSq: 0x1d,
	tcell.KeyCtrlCarat: 0x1e, tcell.KeyCtrlUnderscore: 0x1f,
	tcell.KeyBackspace2: 0x7f,
}

// csiSequences covers the cursor/navigation/function keys tcell decodes
// from multi-byte CSI/SS3 sequences; values are the canonical VT220/xterm
// encodings (no application-cursor-mode variants, since mode tracking per
// child lives in internal/term, not here).
var csiSequences = map[tcell.Key]string{
	tcell.KeyUp:     "\x1b[A",
	tcell.KeyDown:    "\x1b[B",
	tcell.KeyRight:   "\x1b[C",
	tcell.KeyLeft:    "\x1b[D",
	tcell.KeyHome:    "\x1b[H",
	tcell.KeyEnd:     "\x1b[F",
	tcell.KeyInsert:  "\x1b[2~",
	tcell.KeyDelete:  "\x1b[3~",
	tcell.KeyPgUp:    "\x1b[5~",
	tcell.KeyPgDn:    "\x1b[6~",
	tcell.KeyF1:      "\x1bOP",
	tcell.KeyF2:      "\x1bOQ",
	tcell.KeyF3:      "\x1bOR",
	tcell.KeyF4:      "\x1bOS",
	tcell.KeyF5:      "\x1b[15~",
	tcell.KeyF6:      "\x1b[17~",
	tcell.KeyF7:      "\x1b[18~",
	tcell.KeyF8:      "\x1b[19~",
	tcell.KeyF9:      "\x1b[20~",
	tcell.KeyF10:     "\x1b[21~",
	tcell.KeyF11:     "\x1b[23~",
	tcell.KeyF12:     "\x1b[24~",
}
