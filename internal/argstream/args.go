package argstream

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Source names where tokens come from: an argument file, or stdin.
type Source struct {
	File string // empty means stdin
}

// Open returns a reader for the source and a closer to release it.
func (s Source) Open() (io.ReadCloser, error) {
	if s.File == "" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(s.File)
	if err != nil {
		return nil, fmt.Errorf("opening argument file %q: %w", s.File, err)
	}
	return f, nil
}

// Template is a command line with an optional placeholder; each token
// read from the stream is expanded against it to produce one child's
// argv.
type Template struct {
	// Initial is the command and its literal arguments, as given on mux's
	// own command line (the COMMAND and INITIAL-ARGS positional arguments).
	Initial []string
	// Replace is the placeholder string substituted with the token
	// ("{}" by default, like the original's parse_arg_template).
	Replace string
}

// Expand returns the argv for one child, given the token read from the
// stream. Initial is split into segments on elements *exactly equal* to
// Replace (an argv element like "ITEM:{}" is not a placeholder and passes
// through untouched); with no placeholder found, token is appended as a
// new element, and with one or more found, token is interleaved as its
// own element between segments, matching the original's
// parse_arg_template/generate_final_args.
func (t Template) Expand(token string) []string {
	segments := splitOnPlaceholder(t.Initial, t.Replace)

	if len(segments) == 1 {
		out := make([]string, len(segments[0])+1)
		copy(out, segments[0])
		out[len(segments[0])] = token
		return out
	}

	var out []string
	for i, seg := range segments {
		if i > 0 {
			out = append(out, token)
		}
		out = append(out, seg...)
	}
	return out
}

// splitOnPlaceholder splits parts into segments at each element exactly
// equal to placeholder, the way parse_arg_template splits the command
// line into command_parts.
func splitOnPlaceholder(parts []string, placeholder string) [][]string {
	segments := [][]string{nil}
	for _, part := range parts {
		if part == placeholder {
			segments = append(segments, nil)
			continue
		}
		last := len(segments) - 1
		segments[last] = append(segments[last], part)
	}
	return segments
}

// DecodeUTF8Lossy converts raw token bytes to a string, substituting the
// replacement character for invalid sequences rather than failing, like
// Rust's String::from_utf8_lossy.
func DecodeUTF8Lossy(b []byte) string {
	return strings.ToValidUTF8(string(b), "�")
}
