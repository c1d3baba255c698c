package rfconn

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Command completed successfully
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid configuration or driver parameters
	ExitConnectionError = 11 // Redfish service unreachable after all attempts
	ExitRedfishError    = 12 // Redfish service reported a permanent failure
)

// Driver info field names as stored in a node's configuration.
const (
	FieldAddress  = "redfish_address"
	FieldSystemID = "redfish_system_id"
	FieldUsername = "redfish_username"
	FieldPassword = "redfish_password"
	FieldVerifyCA = "redfish_verify_ca"
)

// RequiredFields lists the driver info fields that must be present and non-empty,
// in the order they are reported when missing.
var RequiredFields = []string{FieldAddress, FieldSystemID, FieldUsername, FieldPassword}

const (
	// DefaultScheme is prepended to addresses that carry no URL scheme.
	DefaultScheme = "https"

	// DefaultConnectionAttempts is the default maximum number of attempts
	// to connect to the Redfish service.
	DefaultConnectionAttempts = 5

	// DefaultConnectionRetryInterval is the default wait between attempts.
	DefaultConnectionRetryInterval = 4 * time.Second
)
