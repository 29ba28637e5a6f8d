package clock_test

import (
	"testing"
	"time"
	"todoList/internal/clock"

	"github.com/stretchr/testify/assert"
)

func TestUTC(t *testing.T) {
	before := time.Now().Add(-time.Microsecond)
	now := clock.UTC{}.Now()

	assert.Equal(t, time.UTC, now.Location())
	assert.Zero(t, now.Nanosecond()%1000)
	assert.False(t, now.Before(before))
}

func TestFixed(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	at := time.Date(2024, 1, 2, 15, 4, 5, 0, loc)

	now := clock.Fixed(at).Now()

	assert.True(t, at.Equal(now))
	assert.Equal(t, time.UTC, now.Location())
}
