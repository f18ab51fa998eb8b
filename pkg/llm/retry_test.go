package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedClient struct {
	responses []func() (string, error)
	calls     int
}

func (s *scriptedClient) Generate(_ context.Context, _ string) (string, error) {
	i := s.calls
	s.calls++
	if i >= len(s.responses) {
		i = len(s.responses) - 1
	}
	return s.responses[i]()
}

func rateLimited() (string, error) { return "", &RateLimitError{} }
func succeed() (string, error)     { return "ok", nil }

func newTestRetry(c Client, sleeps *[]time.Duration) *Retry {
	r := NewRetry(c)
	r.JitterMax = 0
	r.sleep = func(_ context.Context, d time.Duration) error {
		*sleeps = append(*sleeps, d)
		return nil
	}
	return r
}

func TestRetry_RecoversFromRateLimit(t *testing.T) {
	client := &scriptedClient{responses: []func() (string, error){rateLimited, rateLimited, succeed}}
	var sleeps []time.Duration
	r := newTestRetry(client, &sleeps)

	text, err := r.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
	assert.Equal(t, 3, client.calls)
	// Doubling schedule: 2s then 4s.
	assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second}, sleeps)
}

func TestRetry_ExhaustsAfterFiveAttempts(t *testing.T) {
	client := &scriptedClient{responses: []func() (string, error){rateLimited}}
	var sleeps []time.Duration
	r := newTestRetry(client, &sleeps)

	_, err := r.Generate(context.Background(), "prompt")
	require.Error(t, err)
	assert.True(t, IsRateLimit(err))
	assert.Equal(t, 5, client.calls)
	assert.Equal(t, []time.Duration{
		2 * time.Second, 4 * time.Second, 8 * time.Second, 16 * time.Second,
	}, sleeps)
}

func TestRetry_NonRateLimitSurfacesImmediately(t *testing.T) {
	boom := errors.New("model returned garbage")
	client := &scriptedClient{responses: []func() (string, error){
		func() (string, error) { return "", boom },
	}}
	var sleeps []time.Duration
	r := newTestRetry(client, &sleeps)

	_, err := r.Generate(context.Background(), "prompt")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, client.calls)
	assert.Empty(t, sleeps)
}

func TestRetry_ContextCancelDuringBackoff(t *testing.T) {
	client := &scriptedClient{responses: []func() (string, error){rateLimited}}
	r := NewRetry(client)
	r.JitterMax = 0
	r.sleep = func(ctx context.Context, _ time.Duration) error {
		return context.Canceled
	}

	_, err := r.Generate(context.Background(), "prompt")
	assert.ErrorIs(t, err, context.Canceled)
}
