package quiz

import (
	"sync/atomic"
	"testing"
	"time"

	"quizgen/internal/testutil"
)

// TestBandFor verifies the band boundaries.
func TestBandFor(t *testing.T) {
	cases := map[int]Band{3600: BandNormal, 601: BandNormal, 600: BandWarning, 301: BandWarning, 300: BandCritical, 0: BandCritical}
	for seconds, want := range cases {
		if got := BandFor(seconds); got != want {
			t.Fatalf("BandFor(%d) = %s, want %s", seconds, got, want)
		}
	}
}

// TestFormatClock verifies mm:ss output.
func TestFormatClock(t *testing.T) {
	cases := map[int]string{3600: "60:00", 599: "09:59", 61: "01:01", 0: "00:00", -5: "00:00"}
	for seconds, want := range cases {
		if got := FormatClock(seconds); got != want {
			t.Fatalf("FormatClock(%d) = %q, want %q", seconds, got, want)
		}
	}
}

// TestTickerSchedulerStops verifies the wall-clock scheduler ticks and stops.
func TestTickerSchedulerStops(t *testing.T) {
	var count atomic.Int32
	stop := TickerScheduler{}.Every(5*time.Millisecond, func() { count.Add(1) })
	testutil.Eventually(t, time.Second, time.Millisecond, func() bool { return count.Load() >= 2 }, "expected ticks")
	stop()
	stop()
	time.Sleep(20 * time.Millisecond)
	settled := count.Load()
	time.Sleep(30 * time.Millisecond)
	if count.Load() != settled {
		t.Fatalf("expected no ticks after stop, went from %d to %d", settled, count.Load())
	}
}
