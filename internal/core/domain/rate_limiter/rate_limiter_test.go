package ratelimiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWindowKey(t *testing.T) {
	assert := require.New(t)
	now := time.Date(2022, 6, 15, 15, 30, 30, 0, time.UTC)

	assert.Equal("log-in::test::h15", Hour.WindowKey("log-in::test", now))
	assert.Equal("log-in::test::m30", Minute.WindowKey("log-in::test", now))
}

func TestWindowKeyInvalidInterval(t *testing.T) {
	assert := require.New(t)

	assert.Panics(func() {
		Interval{}.WindowKey("key", time.Now())
	})
}

func TestDuration(t *testing.T) {
	assert := require.New(t)

	assert.Equal(time.Hour, Hour.Duration())
	assert.Equal(time.Minute, Minute.Duration())
}
