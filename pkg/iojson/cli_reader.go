package iojson

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// ErrNoInput is returned when input would be read from an interactive terminal.
var ErrNoInput = errors.New("no input provided (stdin is a terminal); use -f flag or pipe input")

// Stdin describes where piped input comes from. The zero value reads
// [os.Stdin] and checks it with [term.IsTerminal].
type Stdin struct {
	Reader     io.Reader
	IsTerminal func() bool
}

func (s Stdin) open() (io.Reader, error) {
	isTerm := s.IsTerminal
	if isTerm == nil {
		isTerm = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
	}
	if isTerm() {
		return nil, ErrNoInput
	}
	if s.Reader != nil {
		return s.Reader, nil
	}
	return os.Stdin, nil
}

// Lines returns the non-blank, trimmed lines of piped stdin.
func (s Stdin) Lines() ([]string, error) {
	r, err := s.open()
	if err != nil {
		return nil, err
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return lines, nil
}

// FileReader decodes a JSON value of type T from the file named by its flag,
// or from piped stdin when the flag is unset.
type FileReader[T any] struct {
	Stdin         Stdin
	fileFlagValue string
}

// Flag returns the --file/-f flag bound to the reader.
func (fr *FileReader[T]) Flag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "file",
		Aliases:     []string{"f"},
		Usage:       "path to JSON file (reads from stdin if not provided)",
		Destination: &fr.fileFlagValue,
	}
}

// Read decodes the input.
func (fr *FileReader[T]) Read() (T, error) {
	var input T

	var reader io.Reader
	if fr.fileFlagValue != "" {
		f, err := os.Open(fr.fileFlagValue)
		if err != nil {
			return input, fmt.Errorf("open file: %w", err)
		}
		defer func() { _ = f.Close() }()
		reader = f
	} else {
		r, err := fr.Stdin.open()
		if err != nil {
			return input, err
		}
		reader = r
	}

	if err := json.NewDecoder(reader).Decode(&input); err != nil {
		return input, fmt.Errorf("decode JSON: %w", err)
	}

	return input, nil
}
