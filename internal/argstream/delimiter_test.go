package argstream

import (
	"io"
	"strings"
	"testing"
)

func TestScannerWhitespaceDelimited(t *testing.T) {
	s := NewScanner(strings.NewReader("one two  three\nfour"), Delimiter{})

	var got []string
	for {
		tok, err := s.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got = append(got, tok)
	}

	want := []string{"one", "two", "three", "four"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestScannerCustomByteDelimiter(t *testing.T) {
	zero := byte(0)
	s := NewScanner(strings.NewReader("a\x00b\x00\x00c\x00"), Delimiter{Byte: &zero})

	var got []string
	for {
		tok, err := s.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got = append(got, tok)
	}

	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestScannerUnterminatedFinalToken(t *testing.T) {
	s := NewScanner(strings.NewReader("only"), Delimiter{})

	tok, err := s.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok != "only" {
		t.Errorf("expected 'only', got %q", tok)
	}

	if _, err := s.Next(); err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestScannerEmptyStreamIsEOF(t *testing.T) {
	s := NewScanner(strings.NewReader(""), Delimiter{})
	if _, err := s.Next(); err != io.EOF {
		t.Errorf("expected io.EOF for empty stream, got %v", err)
	}
}

func TestParseDelimiter(t *testing.T) {
	d, err := ParseDelimiter("")
	if err != nil || d.Byte != nil {
		t.Errorf("expected empty string to mean whitespace splitting, got %+v, %v", d, err)
	}

	d, err = ParseDelimiter(":")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Byte == nil || *d.Byte != ':' {
		t.Errorf("expected delimiter ':' , got %+v", d)
	}

	if _, err := ParseDelimiter("ab"); err == nil {
		t.Error("expected an error for a multi-character delimiter")
	}
}
