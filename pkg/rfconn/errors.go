package rfconn

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the failure taxonomy.
// These enable callers to distinguish error kinds using errors.Is().
//
// Example usage:
//
//	system, err := manager.GetSystem(ctx, info)
//	if errors.Is(err, rfconn.ErrRedfishConnection) {
//	    // BMC unreachable, try again later
//	}
var (
	// ErrMissingParameter indicates required driver info fields are absent or empty.
	ErrMissingParameter = errors.New("missing parameter")

	// ErrInvalidParameter indicates a driver info field holds an invalid value.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrRedfish indicates the Redfish service reported a permanent failure.
	ErrRedfish = errors.New("redfish error")

	// ErrRedfishConnection indicates the Redfish service could not be reached
	// within the configured number of attempts.
	ErrRedfishConnection = errors.New("redfish connection failed")

	// ErrInvalidConfig indicates the process settings are invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Errors reported by RedfishClient implementations.
var (
	// ErrResourceNotFound indicates the requested resource does not exist on the service.
	ErrResourceNotFound = errors.New("resource not found")

	// ErrConnectionFailure indicates a transport-level failure talking to the service.
	ErrConnectionFailure = errors.New("connection failure")
)

// MissingParameterError lists the required fields a node is missing.
type MissingParameterError struct {
	Node   string
	Fields []string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing the following Redfish properties in node %s driver_info: %s",
		e.Node, strings.Join(e.Fields, ", "))
}

func (e *MissingParameterError) Is(target error) bool {
	return target == ErrMissingParameter
}

// InvalidParameterError reports a driver info field with an unusable value.
type InvalidParameterError struct {
	Node    string
	Field   string
	Value   any
	Message string
}

func (e *InvalidParameterError) Error() string {
	return e.Message
}

func (e *InvalidParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}

// RedfishError is a permanent failure reported while fetching a system.
type RedfishError struct {
	Node     string
	SystemID string
	Err      error
}

func (e *RedfishError) Error() string {
	if errors.Is(e.Err, ErrResourceNotFound) {
		return fmt.Sprintf("redfish system %q was not found for node %s: %v", e.SystemID, e.Node, e.Err)
	}
	return fmt.Sprintf("redfish error for node %s fetching system %q: %v", e.Node, e.SystemID, e.Err)
}

func (e *RedfishError) Unwrap() error {
	return e.Err
}

func (e *RedfishError) Is(target error) bool {
	return target == ErrRedfish
}

// RedfishConnectionError is returned once every attempt to reach the service failed.
type RedfishConnectionError struct {
	Node     string
	Address  string
	Attempts int
	Err      error
}

func (e *RedfishConnectionError) Error() string {
	return fmt.Sprintf("redfish connection failed for node %s at %s after %d attempt(s): %v",
		e.Node, e.Address, e.Attempts, e.Err)
}

func (e *RedfishConnectionError) Unwrap() error {
	return e.Err
}

func (e *RedfishConnectionError) Is(target error) bool {
	return target == ErrRedfishConnection
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrMissingParameter),
		errors.Is(err, ErrInvalidParameter),
		errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrRedfishConnection):
		return ExitConnectionError
	case errors.Is(err, ErrRedfish):
		return ExitRedfishError
	}

	// cobra reports usage problems as plain errors
	errStr := err.Error()
	for _, prefix := range []string{
		"unknown flag",
		"unknown shorthand flag",
		"unknown command",
		"accepts ",
		"requires at least",
		"required flag",
		"invalid argument",
		"missing required argument",
	} {
		if strings.HasPrefix(errStr, prefix) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
