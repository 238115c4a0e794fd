// ABOUTME: Tests for the request lifecycle controller state machine
// ABOUTME: Uses blocking send functions to hold requests in the Sending state

package request

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauromedda/qnachat/internal/api"
)

// blockingSend returns a SendFunc that waits for release or cancellation.
func blockingSend(release <-chan struct{}) SendFunc {
	return func(ctx context.Context, p Payload) (*api.ChatResponse, error) {
		select {
		case <-release:
			return &api.ChatResponse{Response: "echo: " + p.Message}, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

func waitFor(t *testing.T, h *Handle) Outcome {
	t.Helper()
	select {
	case <-h.Done():
		return h.Wait()
	case <-time.After(2 * time.Second):
		t.Fatal("request did not resolve")
		return Outcome{}
	}
}

func TestController_CompletesAndReturnsIdle(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	c := NewController(blockingSend(release))
	h, err := c.Start(context.Background(), Payload{Message: "hi"})
	require.NoError(t, err)
	assert.NotEmpty(t, h.ID)
	assert.Equal(t, Sending, c.State())

	close(release)
	out, ok := c.Finish(h, waitFor(t, h))
	require.True(t, ok)
	assert.Equal(t, Completed, out.Status)
	assert.Equal(t, "echo: hi", out.Response.Response)
	assert.Empty(t, out.Advisory())
	assert.Equal(t, Idle, c.State())
}

func TestController_StartWhileActive(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	defer close(release)
	c := NewController(blockingSend(release))
	_, err := c.Start(context.Background(), Payload{Message: "one"})
	require.NoError(t, err)

	h, err := c.Start(context.Background(), Payload{Message: "two"})
	assert.Nil(t, h)
	assert.ErrorIs(t, err, ErrAlreadyActive)
}

func TestController_CancelIdleIsNoop(t *testing.T) {
	t.Parallel()

	c := NewController(blockingSend(nil))
	_, ok := c.Cancel()
	assert.False(t, ok)
	assert.Equal(t, Idle, c.State())
}

func TestController_CancelIgnoresLateResult(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	c := NewController(blockingSend(release))
	h, err := c.Start(context.Background(), Payload{Message: "slow"})
	require.NoError(t, err)

	out, ok := c.Cancel()
	require.True(t, ok)
	assert.Equal(t, Cancelled, out.Status)
	assert.Equal(t, CancelledAdvisory, out.Advisory())
	assert.Equal(t, Idle, c.State(), "cancel returns to idle without waiting")
	assert.True(t, h.Token().Cancelled())

	late := waitFor(t, h)
	assert.Equal(t, Cancelled, late.Status)
	_, ok = c.Finish(h, late)
	assert.False(t, ok, "a cancelled request's response must be ignored")

	// A new request may start right away.
	h2, err := c.Start(context.Background(), Payload{Message: "again"})
	require.NoError(t, err)
	close(release)
	_, ok = c.Finish(h, late)
	assert.False(t, ok, "old handle never finishes the new request")
	out, ok = c.Finish(h2, waitFor(t, h2))
	require.True(t, ok)
	assert.Equal(t, Completed, out.Status)
}

func TestController_FailureAdvisories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload Payload
		send    SendFunc
		want    string
	}{
		{
			name:    "network error",
			payload: Payload{Message: "hi"},
			send: func(context.Context, Payload) (*api.ChatResponse, error) {
				return nil, errors.New("connection refused")
			},
			want: FailedAdvisory,
		},
		{
			name:    "fallback error",
			payload: Payload{Message: "hi", ForceLLM: true},
			send: func(context.Context, Payload) (*api.ChatResponse, error) {
				return nil, &api.StatusError{StatusCode: 500}
			},
			want: FallbackFailedAdvisory,
		},
		{
			name:    "nil response",
			payload: Payload{Message: "hi"},
			send: func(context.Context, Payload) (*api.ChatResponse, error) {
				return nil, nil
			},
			want: FailedAdvisory,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(tt.send)
			h, err := c.Start(context.Background(), tt.payload)
			require.NoError(t, err)
			out, ok := c.Finish(h, waitFor(t, h))
			require.True(t, ok)
			assert.Equal(t, Failed, out.Status)
			assert.Error(t, out.Err)
			assert.Equal(t, tt.want, out.Advisory())
			assert.Equal(t, Idle, c.State())
		})
	}
}

func TestController_FinishNilHandle(t *testing.T) {
	t.Parallel()

	c := NewController(blockingSend(nil))
	_, ok := c.Finish(nil, Outcome{})
	assert.False(t, ok)
}
