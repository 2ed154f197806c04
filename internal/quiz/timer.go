package quiz

import (
	"fmt"
	"sync"
	"time"
)

// Band classifies the remaining time for display.
type Band string

const (
	BandNormal   Band = "normal"
	BandWarning  Band = "warning"
	BandCritical Band = "critical"
)

// Remaining-time thresholds at which the clock changes band.
const (
	WarningSeconds  = 600
	CriticalSeconds = 300
)

// BandFor returns the display band for seconds remaining.
func BandFor(seconds int) Band {
	switch {
	case seconds <= CriticalSeconds:
		return BandCritical
	case seconds <= WarningSeconds:
		return BandWarning
	default:
		return BandNormal
	}
}

// FormatClock renders seconds as mm:ss. Minutes are not wrapped into hours.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// Scheduler runs fn repeatedly every interval until the returned stop
// function is called. A tick already in flight may still run after stop.
type Scheduler interface {
	Every(interval time.Duration, fn func()) (stop func())
}

// TickerScheduler is a Scheduler backed by time.Ticker.
type TickerScheduler struct{}

// Every starts a ticker goroutine. Stop never blocks on fn.
func (TickerScheduler) Every(interval time.Duration, fn func()) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				select {
				case <-done:
					return
				default:
				}
				fn()
			}
		}
	}()
	var once sync.Once
	return func() {
		once.Do(func() { close(done) })
	}
}
