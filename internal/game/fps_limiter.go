package game

import (
	"time"

	"cardboard/internal/config"
)

// idleFPS paces the loop while nothing is animating so it keeps draining
// host events without spinning.
const idleFPS = 30

// FPSLimiter paces the event loop
type FPSLimiter struct {
	next  time.Time
	limit func() int
}

// NewFPSLimiter creates a limiter that follows the configured frame cap
func NewFPSLimiter() *FPSLimiter {
	return &FPSLimiter{limit: config.GetFPSLimit}
}

// Wait blocks until the next iteration is due. While active it follows the
// configured cap, 0 meaning no wait. While idle it holds the loop to idleFPS.
// Sleeps most of the interval and spins the last 200µs.
func (f *FPSLimiter) Wait(active bool) {
	effectiveLimit := f.limit()
	if !active {
		effectiveLimit = idleFPS
	}

	if effectiveLimit <= 0 {
		f.next = time.Time{}
		return
	}

	target := time.Second / time.Duration(effectiveLimit)

	if f.next.IsZero() {
		f.next = time.Now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		remaining := time.Until(f.next)
		if remaining <= 0 {
			break
		}
		if remaining > 200*time.Microsecond {
			time.Sleep(remaining - 200*time.Microsecond)
		}
		if time.Until(f.next) <= 0 {
			break
		}
	}

	// resync after a hitch instead of racing to catch up
	if late := -time.Until(f.next); late > target {
		f.next = time.Now().Add(target)
	}
}
