// Package util holds small helpers shared across the scan pipeline.
package util

import "time"

// Timer measures how long a scan run takes. The zero value reports zero
// elapsed time.
type Timer struct {
	start time.Time
}

// StartTimer returns a Timer running from now.
func StartTimer() Timer {
	return Timer{start: time.Now()}
}

// ElapsedMs reports whole milliseconds since StartTimer.
func (t Timer) ElapsedMs() int64 {
	if t.start.IsZero() {
		return 0
	}
	return time.Since(t.start).Milliseconds()
}
