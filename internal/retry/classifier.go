package retry

import (
	"errors"
	"io"
	"net"
	"syscall"

	"github.com/vvka-141/rfconn/pkg/rfconn"
)

// RedfishErrorClassifier implements ErrorClassifier for errors returned by
// Redfish clients.
//
// Only two outcomes exist: transient (retry) and permanent (give up).
// Resource-not-found is always permanent, even when wrapped together with a
// transport error.
type RedfishErrorClassifier struct{}

// NewRedfishErrorClassifier creates a new Redfish error classifier.
func NewRedfishErrorClassifier() *RedfishErrorClassifier {
	return &RedfishErrorClassifier{}
}

// IsTransient determines if an error is temporary and retryable.
func (c *RedfishErrorClassifier) IsTransient(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, rfconn.ErrResourceNotFound) {
		return false
	}

	if errors.Is(err, rfconn.ErrConnectionFailure) {
		return true
	}

	// Check for network-level errors
	if c.isNetworkError(err) {
		return true
	}

	return false
}

// isNetworkError checks for network-level errors.
func (c *RedfishErrorClassifier) isNetworkError(err error) bool {
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return true
	}

	// DNS errors
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		// Temporary DNS failures are retryable
		return dnsErr.Temporary() || dnsErr.Timeout()
	}

	// Network operation errors
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		if opErr.Timeout() {
			return true
		}

		if opErr.Err != nil {
			switch {
			case errors.Is(opErr.Err, syscall.ECONNREFUSED),
				errors.Is(opErr.Err, syscall.ECONNRESET),
				errors.Is(opErr.Err, syscall.ENETUNREACH),
				errors.Is(opErr.Err, syscall.EHOSTUNREACH):
				return true
			}
		}
	}

	// Anything else that reports a timeout (e.g. http.Client timeouts)
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	return false
}
