// Package argstream reads the whitespace- or custom-delimiter-separated
// tokens that name each child process to spawn, and expands a command
// template against each token.
package argstream

import (
	"bufio"
	"bytes"
	"io"
)

// Delimiter splits a byte stream into tokens. A nil Byte means "any ASCII
// whitespace run", matching the original's default of splitting on
// whitespace when no --delimiter flag is given; a non-nil Byte splits on
// exactly that byte, like the original's DelimiterCodec.
type Delimiter struct {
	Byte *byte
}

// Scanner reads delimiter-separated, non-empty tokens from r, skipping
// runs of empty tokens the way the original's decode loop does.
type Scanner struct {
	r     *bufio.Reader
	delim Delimiter
}

// NewScanner wraps r for token-at-a-time reading.
func NewScanner(r io.Reader, delim Delimiter) *Scanner {
	return &Scanner{r: bufio.NewReaderSize(r, 64*1024), delim: delim}
}

// Next returns the next non-empty token, or io.EOF once the stream is
// exhausted (including a final unterminated token, mirroring the
// original's decode_eof flush).
func (s *Scanner) Next() (string, error) {
	for {
		tok, err := s.nextRaw()
		if len(tok) > 0 {
			return string(tok), nil
		}
		if err != nil {
			return "", err
		}
	}
}

func (s *Scanner) nextRaw() ([]byte, error) {
	if s.delim.Byte != nil {
		return s.readUntilByte(*s.delim.Byte)
	}
	return s.readUntilWhitespace()
}

func (s *Scanner) readUntilByte(b byte) ([]byte, error) {
	tok, err := s.r.ReadBytes(b)
	if err != nil {
		if err == io.EOF {
			if len(tok) == 0 {
				return nil, io.EOF
			}
			return tok, nil
		}
		return nil, err
	}
	return tok[:len(tok)-1], nil
}

func (s *Scanner) readUntilWhitespace() ([]byte, error) {
	var buf bytes.Buffer
	for {
		c, err := s.r.ReadByte()
		if err != nil {
			if err == io.EOF {
				if buf.Len() == 0 {
					return nil, io.EOF
				}
				return buf.Bytes(), nil
			}
			return nil, err
		}
		if isWhitespace(c) {
			if buf.Len() == 0 {
				continue
			}
			return buf.Bytes(), nil
		}
		buf.WriteByte(c)
	}
}

func isWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

// ParseDelimiter validates a --delimiter flag value: empty means
// whitespace-splitting, otherwise it must name exactly one ASCII byte.
func ParseDelimiter(s string) (Delimiter, error) {
	if s == "" {
		return Delimiter{}, nil
	}
	if len(s) != 1 {
		return Delimiter{}, errInvalidDelimiter(s)
	}
	b := s[0]
	return Delimiter{Byte: &b}, nil
}

type errInvalidDelimiter string

func (e errInvalidDelimiter) Error() string {
	return "delimiter must be exactly one character, got " + string(e)
}
