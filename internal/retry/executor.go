package retry

import (
	"context"
	"fmt"
	"time"

	"github.com/vvka-141/rfconn/pkg/rfconn"
)

// SleepFunc waits for d or until ctx is done, whichever comes first.
type SleepFunc func(ctx context.Context, d time.Duration) error

// ExhaustedError is returned when an operation kept failing with transient
// errors until no attempt was left, or the context ended while waiting.
type ExhaustedError struct {
	// Attempts is the number of times the operation ran.
	Attempts int

	// Err is the last transient error, or the context error joined with it.
	Err error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("gave up after %d attempt(s): %v", e.Attempts, e.Err)
}

func (e *ExhaustedError) Unwrap() error {
	return e.Err
}

// Executor orchestrates attempts with backoff and error classification.
//
// Thread Safety:
// The Executor itself is safe for concurrent use when calling Execute().
// WithOnRetry() and WithSleep() return a NEW instance, the receiver is never
// modified.
type Executor struct {
	classifier rfconn.ErrorClassifier
	strategy   rfconn.BackoffStrategy
	sleep      SleepFunc
	onRetry    func(attempt int, err error, delay time.Duration)
}

// NewExecutor creates a new retry executor with the given configuration.
// Panics if classifier or strategy is nil.
func NewExecutor(
	classifier rfconn.ErrorClassifier,
	strategy rfconn.BackoffStrategy,
) *Executor {
	if classifier == nil {
		panic("classifier cannot be nil")
	}
	if strategy == nil {
		panic("strategy cannot be nil")
	}
	return &Executor{
		classifier: classifier,
		strategy:   strategy,
		sleep:      Sleep,
	}
}

// WithOnRetry returns a new Executor with the specified retry callback.
// The callback runs after a transient failure, before the wait; attempt is
// the 1-based number of the attempt that just failed.
//
// Example:
//
//	executor := retry.NewExecutor(classifier, strategy)
//	executor1 := executor.WithOnRetry(callback1) // New instance
//	executor2 := executor.WithOnRetry(callback2) // Another new instance
func (e *Executor) WithOnRetry(callback func(attempt int, err error, delay time.Duration)) *Executor {
	clone := *e
	clone.onRetry = callback
	return &clone
}

// WithSleep returns a new Executor that waits between attempts using sleep.
func (e *Executor) WithSleep(sleep SleepFunc) *Executor {
	clone := *e
	if sleep == nil {
		sleep = Sleep
	}
	clone.sleep = sleep
	return &clone
}

// Execute runs the operation until it succeeds, fails permanently, or the
// attempt budget is spent.
//
// A permanent error is returned as is. Running out of attempts (or the context
// ending between attempts) yields an *ExhaustedError.
func (e *Executor) Execute(ctx context.Context, operation func(ctx context.Context) error) error {
	maxAttempts := e.strategy.MaxAttempts()

	for attempt := 1; ; attempt++ {
		lastErr := operation(ctx)
		if lastErr == nil {
			return nil
		}

		if !e.classifier.IsTransient(lastErr) {
			return lastErr
		}

		if attempt >= maxAttempts {
			return &ExhaustedError{Attempts: attempt, Err: lastErr}
		}

		if err := ctx.Err(); err != nil {
			return &ExhaustedError{Attempts: attempt, Err: fmt.Errorf("%w: %w", err, lastErr)}
		}

		delay := e.strategy.NextDelay(attempt - 1)

		if e.onRetry != nil {
			e.onRetry(attempt, lastErr, delay)
		}

		if err := e.sleep(ctx, delay); err != nil {
			return &ExhaustedError{Attempts: attempt, Err: fmt.Errorf("%w: %w", err, lastErr)}
		}
	}
}

// Sleep waits for d, returning early with ctx.Err() if ctx is done first.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
