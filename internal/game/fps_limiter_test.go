package game

import (
	"testing"
	"time"
)

func TestFPSLimiterUnlimited(t *testing.T) {
	f := &FPSLimiter{limit: func() int { return 0 }}
	start := time.Now()
	for range 100 {
		f.Wait(true)
	}
	if d := time.Since(start); d > 50*time.Millisecond {
		t.Errorf("unlimited waits took %v", d)
	}
}

func TestFPSLimiterPaces(t *testing.T) {
	f := &FPSLimiter{limit: func() int { return 200 }}
	start := time.Now()
	for range 10 {
		f.Wait(true)
	}
	if d := time.Since(start); d < 45*time.Millisecond {
		t.Errorf("10 frames at 200 fps took %v", d)
	}
}

func TestFPSLimiterIdle(t *testing.T) {
	f := &FPSLimiter{limit: func() int { return 0 }}
	start := time.Now()
	f.Wait(false)
	f.Wait(false)
	if d := time.Since(start); d < 60*time.Millisecond {
		t.Errorf("two idle waits took %v", d)
	}
}
