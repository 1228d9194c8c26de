package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveDelimiterNullFlag(t *testing.T) {
	opts := &options{null: true}

	delim, err := resolveDelimiter(opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if delim.Byte == nil || *delim.Byte != 0 {
		t.Errorf("expected the null byte delimiter, got %+v", delim)
	}
}

func TestResolveDelimiterDefaultIsWhitespace(t *testing.T) {
	opts := &options{}

	delim, err := resolveDelimiter(opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if delim.Byte != nil {
		t.Errorf("expected a nil byte for whitespace splitting, got %v", *delim.Byte)
	}
}

func TestResolveDelimiterExplicitByte(t *testing.T) {
	opts := &options{delimiter: ","}

	delim, err := resolveDelimiter(opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if delim.Byte == nil || *delim.Byte != ',' {
		t.Errorf("expected comma delimiter, got %+v", delim)
	}
}

func TestReadTokensFromArgFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tokens.txt")
	if err := os.WriteFile(path, []byte("one two\nthree"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	opts := &options{argFile: path}
	delim, err := resolveDelimiter(opts)
	if err != nil {
		t.Fatalf("resolveDelimiter: %v", err)
	}

	tokens, err := readTokens(opts, delim)
	if err != nil {
		t.Fatalf("readTokens: %v", err)
	}
	want := []string{"one", "two", "three"}
	if len(tokens) != len(want) {
		t.Fatalf("expected %v, got %v", want, tokens)
	}
	for i, w := range want {
		if tokens[i] != w {
			t.Errorf("token %d: expected %q, got %q", i, w, tokens[i])
		}
	}
}

func TestReadTokensMissingArgFile(t *testing.T) {
	opts := &options{argFile: filepath.Join(t.TempDir(), "does-not-exist")}
	delim, _ := resolveDelimiter(opts)

	if _, err := readTokens(opts, delim); err == nil {
		t.Error("expected an error opening a nonexistent arg file")
	}
}
