// Package detect works out where textsum's input text comes from: a file
// named on the command line, the command-line words themselves, or stdin.
package detect

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Kind identifies the origin of the input text.
type Kind int

const (
	Literal Kind = iota // words given on the command line
	File                // a single argument naming a readable file
	Stdin               // piped standard input
)

func (k Kind) String() string {
	switch k {
	case File:
		return "file"
	case Stdin:
		return "stdin"
	default:
		return "text"
	}
}

var (
	// ErrNoInput means there were no arguments and stdin is a terminal.
	ErrNoInput = errors.New("no text given")
	// ErrInputTooLarge means the input exceeds the configured byte limit.
	ErrInputTooLarge = errors.New("input too large")
)

// Input is resolved input text and a short name describing where it came from.
type Input struct {
	Kind Kind
	Name string
	Text string
}

// Resolve picks the input source from the command-line arguments.
//
// A single argument that names an existing regular file is read as a file.
// Any other arguments are joined with single spaces and used as the text.
// With no arguments, stdin is read unless it is a terminal. maxBytes <= 0
// disables the size limit.
func Resolve(args []string, stdin io.Reader, stdinIsTTY bool, maxBytes int64) (Input, error) {
	switch {
	case len(args) == 1 && isRegularFile(args[0]):
		return readFile(args[0], maxBytes)
	case len(args) > 0:
		text := strings.Join(args, " ")
		if maxBytes > 0 && int64(len(text)) > maxBytes {
			return Input{}, fmt.Errorf("%w: %d bytes of text (limit %d)", ErrInputTooLarge, len(text), maxBytes)
		}
		return Input{Kind: Literal, Name: text, Text: text}, nil
	case stdin == nil || stdinIsTTY:
		return Input{}, ErrNoInput
	}

	data, err := readLimited(stdin, maxBytes)
	if err != nil {
		return Input{}, fmt.Errorf("reading stdin: %w", err)
	}
	return Input{Kind: Stdin, Name: "stdin", Text: string(data)}, nil
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func readFile(path string, maxBytes int64) (Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return Input{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	data, err := readLimited(f, maxBytes)
	if err != nil {
		return Input{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return Input{Kind: File, Name: filepath.Base(path), Text: string(data)}, nil
}

// readLimited reads all of r, failing once more than maxBytes arrive.
func readLimited(r io.Reader, maxBytes int64) ([]byte, error) {
	if maxBytes <= 0 {
		return io.ReadAll(r)
	}
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrInputTooLarge, maxBytes)
	}
	return data, nil
}
