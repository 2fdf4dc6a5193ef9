package client

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"
)

// attemptResult is the outcome of one execution of the status command. A
// spawn failure is reported through the runner's error return instead, so
// an attemptResult always describes a process that ran to completion.
type attemptResult struct {
	stdout  []byte
	stderr  []byte
	success bool
}

// commandRunner executes one attempt of the status command.
type commandRunner interface {
	run(ctx context.Context) (attemptResult, error)
}

// execRunner runs the real status binary with the two fixed arguments
// requesting a JSON status report.
type execRunner struct {
	command string
}

func (r *execRunner) run(ctx context.Context) (attemptResult, error) {
	cmd := exec.CommandContext(ctx, r.command, "status", "--json")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	// Run waits for the process and drains both pipes, so nothing leaks
	// across retry iterations.
	err := cmd.Run()
	if err == nil {
		return attemptResult{stdout: stdout.Bytes(), stderr: stderr.Bytes(), success: true}, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return attemptResult{stdout: stdout.Bytes(), stderr: stderr.Bytes()}, nil
	}
	return attemptResult{}, err
}

// sleepContext pauses for d or until ctx is cancelled.
func sleepContext(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// runStatus invokes the status command, retrying non-zero exits up to the
// configured attempt budget with a fixed pause between attempts. The
// underlying system service may be mid-activation and briefly unable to
// serve a synchronous status request, so the transient window is short and
// a fixed interval without backoff is enough.
func (c *Client) runStatus(ctx context.Context) ([]byte, error) {
	var last attemptResult
	for attempt := 1; attempt <= c.opts.MaxAttempts; attempt++ {
		res, err := c.runner.run(ctx)
		if err != nil {
			return nil, &SpawnError{Command: c.opts.Command, Err: err}
		}
		if res.success {
			return res.stdout, nil
		}
		last = res
		if attempt == c.opts.MaxAttempts {
			break
		}
		if err := c.opts.Sleep(ctx, c.opts.Pause); err != nil {
			return nil, err
		}
	}
	return nil, &CommandError{
		Command:  c.opts.Command,
		Attempts: c.opts.MaxAttempts,
		Stderr:   string(last.stderr),
	}
}
