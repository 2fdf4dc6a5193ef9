package client

import (
	"fmt"
	"strings"
)

// SpawnError reports that the status command could not be launched at all
// (missing binary, permission denied). It is never retried: a binary that
// is not there now will not be there one second from now.
type SpawnError struct {
	Command string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to spawn '%s status': %v", e.Command, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// CommandError reports that the status command ran but kept exiting
// non-zero until the retry budget was exhausted. Stderr holds the captured
// standard error of the final attempt; earlier attempts are discarded.
type CommandError struct {
	Command  string
	Attempts int
	Stderr   string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("running '%s status' failed after %d attempts: %s",
		e.Command, e.Attempts, strings.TrimSpace(e.Stderr))
}

// DecodeError reports that the status command's stdout was not valid JSON
// matching the expected schema.
type DecodeError struct {
	Command string
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to parse '%s status' output: %v", e.Command, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
