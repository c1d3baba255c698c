package retry

import "time"

// FixedInterval waits the same duration between every pair of attempts.
type FixedInterval struct {
	// maxAttempts is the total number of attempts, including the first one
	maxAttempts int

	// interval is the wait between two consecutive attempts
	interval time.Duration
}

// NewFixedInterval creates a strategy allowing maxAttempts attempts spaced by interval.
// maxAttempts below 1 is raised to 1 and a negative interval is treated as zero.
func NewFixedInterval(maxAttempts int, interval time.Duration) *FixedInterval {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	if interval < 0 {
		interval = 0
	}
	return &FixedInterval{
		maxAttempts: maxAttempts,
		interval:    interval,
	}
}

// NextDelay returns the configured interval regardless of the attempt number.
func (b *FixedInterval) NextDelay(attempt int) time.Duration {
	return b.interval
}

// MaxAttempts returns the total number of attempts allowed.
func (b *FixedInterval) MaxAttempts() int {
	return b.maxAttempts
}

// Interval returns the wait between attempts for tests and debugging.
func (b *FixedInterval) Interval() time.Duration {
	return b.interval
}
