// Package iojson holds helpers for JSON input and output of CLI commands.
package iojson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// Error is the JSON shape written to stderr when a command fails.
type Error struct {
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

func jsonError(msg string, jsonErr error) string {
	// Use json.Marshal to properly escape strings
	msgBytes, _ := json.Marshal(msg)
	errBytes, _ := json.Marshal(jsonErr.Error())
	return fmt.Sprintf(`{"message":%s,"data":{"json_error":%s}}`, msgBytes, errBytes)
}

// MarshalError renders an Error as indented JSON. If marshaling fails the
// result is still valid JSON carrying the marshal error.
func MarshalError(msg string, data map[string]any) string {
	bits, err := json.MarshalIndent(Error{Message: msg, Data: data}, "", "  ")
	if err != nil {
		return jsonError(msg, err)
	}
	return string(bits)
}

// WriteErrorTo writes msg as a JSON Error to w and returns an error carrying
// msg, so commands can `return iojson.WriteErrorTo(...)` and still exit
// non-zero.
func WriteErrorTo(w io.Writer, msg string, data map[string]any) error {
	if _, err := fmt.Fprintln(w, MarshalError(msg, data)); err != nil {
		return fmt.Errorf("write error output: %w", err)
	}
	return errors.New(msg)
}

// WriteError calls WriteErrorTo with [os.Stderr].
func WriteError(msg string, data map[string]any) error {
	return WriteErrorTo(os.Stderr, msg, data)
}

// WriteWith writes obj as indented JSON to w. Marshal failures are reported
// on ew.
func WriteWith(w io.Writer, ew io.Writer, obj any) error {
	bits, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		errStr := jsonError("error marshaling in iojson.Write", err)
		_, err = fmt.Fprintln(ew, errStr)
		return err
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}

// Write calls WriteWith with [os.Stdout] and [os.Stderr].
func Write(obj any) error {
	return WriteWith(os.Stdout, os.Stderr, obj)
}
