package gallery

import (
	"context"
	"time"
)

// Throttle is a fixed pause between request batches. It only spaces out
// calls to stay under the remote API's rate limit; it does not adapt to
// responses. For sustained load use the client's token bucket instead
// (met.Options.RateLimit).
type Throttle time.Duration

// Wait sleeps for the pause or until ctx is done.
func (t Throttle) Wait(ctx context.Context) error {
	if t <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(time.Duration(t))
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// batches splits ids into consecutive chunks of at most size.
func batches(ids []int, size int) [][]int {
	if size <= 0 {
		size = len(ids)
	}
	var out [][]int
	for start := 0; start < len(ids); start += size {
		out = append(out, ids[start:min(start+size, len(ids))])
	}
	return out
}
