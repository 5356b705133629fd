package clock_test

import (
	"context"
	"testing"
	"time"

	"github.com/DanielPopoola/cxtrauma-orders/internal/adapters/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimerDelay_WaitsConfiguredDuration(t *testing.T) {
	d := clock.NewTimerDelay(20 * time.Millisecond)

	start := time.Now()
	err := d.Wait(context.Background())

	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestTimerDelay_StopsOnCancel(t *testing.T) {
	d := clock.NewTimerDelay(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.Wait(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestFixed_Now(t *testing.T) {
	at := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

	assert.Equal(t, at, clock.Fixed(at).Now())
}

func TestNoDelay_ReturnsImmediately(t *testing.T) {
	assert.NoError(t, clock.NoDelay{}.Wait(context.Background()))
}
