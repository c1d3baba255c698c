// Package retry provides bounded retry logic for transient Redfish connection
// failures.
//
// The package supports pluggable error classification and backoff strategies.
//
// # Example Usage
//
//	classifier := retry.NewRedfishErrorClassifier()
//	strategy := retry.NewFixedInterval(settings.ConnectionAttempts, settings.ConnectionRetryInterval)
//	executor := retry.NewExecutor(classifier, strategy)
//
//	err := executor.Execute(ctx, func(ctx context.Context) error {
//	    return fetchSystem(ctx)
//	})
//
// # Error Classification
//
// The ErrorClassifier interface sorts errors into two buckets: transient
// (retryable) and permanent. The RedfishErrorClassifier treats connection
// failures reported by the Redfish client and network-level errors as
// transient; everything else, resource-not-found included, is permanent.
//
// # Exhaustion
//
// When every attempt failed with a transient error, Execute returns an
// *ExhaustedError carrying the attempt count and the last error.
//
// # Thread Safety
//
// Executor instances are safe for concurrent use. Use WithOnRetry() to create
// independent configurations per goroutine.
package retry
