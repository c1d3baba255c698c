package retry

import (
	"testing"
	"time"
)

func TestFixedInterval_NextDelayIsConstant(t *testing.T) {
	strategy := NewFixedInterval(5, 4*time.Second)

	for attempt := 0; attempt < 10; attempt++ {
		if delay := strategy.NextDelay(attempt); delay != 4*time.Second {
			t.Errorf("NextDelay(%d) = %v, want 4s", attempt, delay)
		}
	}
}

func TestFixedInterval_Values(t *testing.T) {
	strategy := NewFixedInterval(3, 250*time.Millisecond)

	if strategy.MaxAttempts() != 3 {
		t.Errorf("Expected MaxAttempts=3, got %d", strategy.MaxAttempts())
	}
	if strategy.Interval() != 250*time.Millisecond {
		t.Errorf("Expected Interval=250ms, got %v", strategy.Interval())
	}
}

func TestFixedInterval_ClampsInvalidInput(t *testing.T) {
	tests := []struct {
		maxAttempts      int
		interval         time.Duration
		expectedAttempts int
		expectedInterval time.Duration
	}{
		{maxAttempts: 0, interval: time.Second, expectedAttempts: 1, expectedInterval: time.Second},
		{maxAttempts: -1, interval: time.Second, expectedAttempts: 1, expectedInterval: time.Second},
		{maxAttempts: 2, interval: -time.Second, expectedAttempts: 2, expectedInterval: 0},
	}

	for _, tt := range tests {
		strategy := NewFixedInterval(tt.maxAttempts, tt.interval)
		if strategy.MaxAttempts() != tt.expectedAttempts {
			t.Errorf("NewFixedInterval(%d, %v).MaxAttempts() = %d, want %d",
				tt.maxAttempts, tt.interval, strategy.MaxAttempts(), tt.expectedAttempts)
		}
		if strategy.Interval() != tt.expectedInterval {
			t.Errorf("NewFixedInterval(%d, %v).Interval() = %v, want %v",
				tt.maxAttempts, tt.interval, strategy.Interval(), tt.expectedInterval)
		}
	}
}
