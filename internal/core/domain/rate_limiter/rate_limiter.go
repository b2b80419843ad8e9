package ratelimiter

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var ErrRateLimitExceeded = errors.New("rate limit exceeded")

// Interval is a fixed rate limiting window. Counters are kept per
// calendar window (current minute or current hour), not per sliding
// window.
type Interval struct {
	duration time.Duration
}

var (
	Minute = Interval{duration: time.Minute}
	Hour   = Interval{duration: time.Hour}
)

func (i Interval) Duration() time.Duration {
	return i.duration
}

// WindowKey derives the storage key for the window that t falls into.
func (i Interval) WindowKey(key string, t time.Time) string {
	switch i.duration {
	case time.Hour:
		return fmt.Sprintf("%s::h%d", key, t.Hour())
	case time.Minute:
		return fmt.Sprintf("%s::m%d", key, t.Minute())
	default:
		panic("invalid rate limiting interval")
	}
}

type Limit struct {
	Value    uint16
	Interval Interval
}

type Result struct {
	IsAllowed bool
}

func Allowed() Result {
	return Result{IsAllowed: true}
}

func NotAllowed() Result {
	return Result{IsAllowed: false}
}

type RateLimiter interface {
	CheckLimit(ctx context.Context, key string, limit Limit) Result
}
