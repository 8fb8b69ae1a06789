package clock_test

import (
	"testing"
	"time"

	"tracking/internal/adapters/out/clock"
	"tracking/internal/core/ports"

	"github.com/stretchr/testify/assert"
)

var (
	_ ports.Clock = clock.SystemClock{}
	_ ports.Clock = (*clock.FixedClock)(nil)
)

func TestSystemClock_Now(t *testing.T) {
	before := time.Now()

	now := clock.NewSystemClock().Now()

	assert.Equal(t, time.UTC, now.Location())
	assert.False(t, now.Before(before))
}

func TestFixedClock(t *testing.T) {
	start := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
	c := clock.NewFixedClock(start)

	assert.Equal(t, start, c.Now())

	c.Advance(11 * time.Second)
	assert.Equal(t, start.Add(11*time.Second), c.Now())
}
