package detect

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolve_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "textsum_example.txt")
	if err := os.WriteFile(path, []byte("a b c d d d da a a a a"), 0o600); err != nil {
		t.Fatal(err)
	}

	in, err := Resolve([]string{path}, nil, true, 0)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if in.Kind != File {
		t.Errorf("Kind = %v, want file", in.Kind)
	}
	if in.Name != "textsum_example.txt" {
		t.Errorf("Name = %q, want base name", in.Name)
	}
	if in.Text != "a b c d d d da a a a a" {
		t.Errorf("Text = %q", in.Text)
	}
}

func TestResolve_LiteralText(t *testing.T) {
	in, err := Resolve([]string{"abc abc abc"}, nil, true, 0)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if in.Kind != Literal || in.Text != "abc abc abc" {
		t.Errorf("got %+v, want literal text", in)
	}
}

func TestResolve_MultipleArgsJoined(t *testing.T) {
	in, err := Resolve([]string{"a", "b", "c"}, strings.NewReader("ignored"), false, 0)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if in.Text != "a b c" {
		t.Errorf("Text = %q, want %q", in.Text, "a b c")
	}
}

func TestResolve_DirectoryIsText(t *testing.T) {
	dir := t.TempDir()
	in, err := Resolve([]string{dir}, nil, true, 0)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if in.Kind != Literal {
		t.Errorf("Kind = %v, want text for a directory argument", in.Kind)
	}
}

func TestResolve_Stdin(t *testing.T) {
	in, err := Resolve(nil, strings.NewReader("piped words"), false, 0)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if in.Kind != Stdin || in.Text != "piped words" || in.Name != "stdin" {
		t.Errorf("got %+v, want stdin input", in)
	}
}

func TestResolve_NoInput(t *testing.T) {
	if _, err := Resolve(nil, strings.NewReader("x"), true, 0); !errors.Is(err, ErrNoInput) {
		t.Errorf("terminal stdin: err = %v, want ErrNoInput", err)
	}
	if _, err := Resolve(nil, nil, false, 0); !errors.Is(err, ErrNoInput) {
		t.Errorf("nil stdin: err = %v, want ErrNoInput", err)
	}
}

func TestResolve_TooLarge(t *testing.T) {
	if _, err := Resolve(nil, strings.NewReader("0123456789"), false, 5); !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("stdin: err = %v, want ErrInputTooLarge", err)
	}
	if _, err := Resolve([]string{"0123456789"}, nil, true, 5); !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("literal: err = %v, want ErrInputTooLarge", err)
	}

	path := filepath.Join(t.TempDir(), "big.txt")
	if err := os.WriteFile(path, []byte(strings.Repeat("x", 64)), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Resolve([]string{path}, nil, true, 10); !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("file: err = %v, want ErrInputTooLarge", err)
	}
	if _, err := Resolve([]string{path}, nil, true, 64); err != nil {
		t.Errorf("file at the limit: err = %v", err)
	}
}

func TestKind_String(t *testing.T) {
	for k, want := range map[Kind]string{Literal: "text", File: "file", Stdin: "stdin"} {
		if got := k.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", k, got, want)
		}
	}
}
