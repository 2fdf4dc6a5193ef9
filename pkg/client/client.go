// Package client queries the rpm-ostree status of the local system.
// It supports read-only introspection only: the status command is invoked
// with retry on transient failures and its JSON output is decoded into the
// model in pkg/types.
//
//	status, err := client.QueryStatus()
//	if err != nil {
//		return err
//	}
//	for _, d := range status.Deployments {
//		fmt.Println(d.Checksum)
//	}
package client

import (
	"context"
	"errors"
	"time"

	"github.com/bootstate-dev/bootstate/pkg/types"
)

// Defaults for Options. The retry budget covers the short window during
// which the rpm-ostree daemon is activating and briefly refuses status
// requests, see https://github.com/coreos/rpm-ostree/issues/2531.
const (
	DefaultCommand     = "rpm-ostree"
	DefaultMaxAttempts = 10
	DefaultPause       = 1 * time.Second
)

// SleepFunc pauses between retry attempts. It returns early with ctx.Err()
// if the context is cancelled during the pause.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Options configures a Client. The zero value selects the defaults above.
type Options struct {
	// Command is the status binary to invoke.
	Command string
	// MaxAttempts is the total number of executions before giving up on
	// non-zero exits.
	MaxAttempts int
	// Pause is the fixed delay between attempts. No backoff, no jitter:
	// the expected transient window is short and bounded.
	Pause time.Duration
	// Sleep replaces the pause implementation, letting tests retry
	// without real delays.
	Sleep SleepFunc
}

// Client queries system deployment status. It holds no mutable state;
// concurrent queries each run their own process and retry loop.
type Client struct {
	opts   Options
	runner commandRunner
}

// New returns a Client with defaults applied for any unset option.
func New(opts Options) *Client {
	if opts.Command == "" {
		opts.Command = DefaultCommand
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}
	if opts.Pause <= 0 {
		opts.Pause = DefaultPause
	}
	if opts.Sleep == nil {
		opts.Sleep = sleepContext
	}
	return &Client{
		opts:   opts,
		runner: &execRunner{command: opts.Command},
	}
}

// Query gathers a snapshot of the system deployment status. Failures keep
// their classification: *SpawnError, *CommandError, and *DecodeError are
// all matchable with errors.As.
func (c *Client) Query(ctx context.Context) (*types.Status, error) {
	out, err := c.runStatus(ctx)
	if err != nil {
		return nil, err
	}
	return decodeStatus(c.opts.Command, out)
}

// QueryStatus is the collapsed form of Query: any failure is reduced to a
// single displayable error whose text preserves what went wrong. Callers
// needing to distinguish spawn, exit, and decode failures use Query.
func (c *Client) QueryStatus(ctx context.Context) (*types.Status, error) {
	st, err := c.Query(ctx)
	if err != nil {
		return nil, errors.New(err.Error())
	}
	return st, nil
}

// QueryStatus gathers a snapshot of the system deployment status using the
// default options, blocking until the query succeeds or the retry budget
// is exhausted.
func QueryStatus() (*types.Status, error) {
	return New(Options{}).QueryStatus(context.Background())
}
