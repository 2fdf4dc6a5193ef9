package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppliesDefaults(t *testing.T) {
	c := New(Options{})
	assert.Equal(t, DefaultCommand, c.opts.Command)
	assert.Equal(t, DefaultMaxAttempts, c.opts.MaxAttempts)
	assert.Equal(t, DefaultPause, c.opts.Pause)
	assert.NotNil(t, c.opts.Sleep)
}

func TestNewKeepsOverrides(t *testing.T) {
	c := New(Options{
		Command:     "ostree-status",
		MaxAttempts: 3,
		Pause:       250 * time.Millisecond,
	})
	assert.Equal(t, "ostree-status", c.opts.Command)
	assert.Equal(t, 3, c.opts.MaxAttempts)
	assert.Equal(t, 250*time.Millisecond, c.opts.Pause)
}

func TestQueryStatusCollapsesTaxonomy(t *testing.T) {
	c := New(Options{
		MaxAttempts: 2,
		Sleep: func(ctx context.Context, d time.Duration) error {
			return nil
		},
	})
	c.runner = runnerFunc(func(ctx context.Context) (attemptResult, error) {
		return attemptResult{stderr: []byte("daemon unavailable")}, nil
	})

	_, err := c.QueryStatus(context.Background())
	require.Error(t, err)

	// The facade keeps the text but drops the matchable kind.
	var cmdErr *CommandError
	assert.False(t, errors.As(err, &cmdErr))
	assert.Contains(t, err.Error(), "failed after 2 attempts")
	assert.Contains(t, err.Error(), "daemon unavailable")
}

func TestQueryStatusSuccess(t *testing.T) {
	c := New(Options{})
	c.runner = runnerFunc(func(ctx context.Context) (attemptResult, error) {
		return attemptResult{stdout: []byte(statusJSON), success: true}, nil
	})

	status, err := c.QueryStatus(context.Background())
	require.NoError(t, err)
	require.Len(t, status.Deployments, 1)

	booted, ok := status.BootedDeployment()
	require.True(t, ok)
	assert.Equal(t, "abc123", booted.Checksum)
}

func TestQueryDecodeFailure(t *testing.T) {
	c := New(Options{})
	c.runner = runnerFunc(func(ctx context.Context) (attemptResult, error) {
		return attemptResult{stdout: []byte("not json"), success: true}, nil
	})

	_, err := c.Query(context.Background())
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
}
