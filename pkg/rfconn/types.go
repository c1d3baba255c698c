package rfconn

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// VerifyCA is the resolved TLS verification policy for a BMC connection.
//
// It is either a plain boolean (CABundle empty) or a path to a CA bundle file
// or directory, in which case Enabled is always true.
type VerifyCA struct {
	Enabled  bool
	CABundle string
}

// VerifyBool returns a boolean verification policy.
func VerifyBool(enabled bool) VerifyCA {
	return VerifyCA{Enabled: enabled}
}

// VerifyPath returns a policy that verifies against the CA bundle at path.
func VerifyPath(path string) VerifyCA {
	return VerifyCA{Enabled: true, CABundle: path}
}

// IsPath reports whether the policy points at a CA bundle.
func (v VerifyCA) IsPath() bool {
	return v.CABundle != ""
}

// String returns the path when set, otherwise "true" or "false".
func (v VerifyCA) String() string {
	if v.IsPath() {
		return v.CABundle
	}
	return strconv.FormatBool(v.Enabled)
}

// DriverInfo is the validated set of parameters needed to reach a node's BMC.
type DriverInfo struct {
	// Address is the absolute URL of the Redfish service, e.g. https://bmc.example.com:8443
	Address string

	// SystemID is the resource path of the ComputerSystem, e.g. /redfish/v1/Systems/1
	SystemID string

	Username string
	Password string

	// VerifyCA controls TLS certificate verification
	VerifyCA VerifyCA

	// NodeID identifies the node that owns this configuration.
	// Used in messages only, never for connecting.
	NodeID string
}

// ConnectOptions returns the options used to open a connection for this node.
func (d *DriverInfo) ConnectOptions() ConnectOptions {
	return ConnectOptions{
		Address:  d.Address,
		Username: d.Username,
		Password: d.Password,
		VerifyCA: d.VerifyCA,
	}
}

// String renders the descriptor with the password redacted.
func (d *DriverInfo) String() string {
	password := ""
	if d.Password != "" {
		password = "***"
	}
	return fmt.Sprintf("node=%s address=%s system_id=%s username=%s password=%s verify_ca=%s",
		d.NodeID, d.Address, d.SystemID, d.Username, password, d.VerifyCA)
}

// System is a snapshot of a Redfish ComputerSystem resource.
type System struct {
	ODataID      string
	ID           string
	Name         string
	UUID         string
	Manufacturer string
	Model        string
	SerialNumber string
	SKU          string
	BIOSVersion  string
	HostName     string
	PowerState   string
	Health       string
	State        string
}

// NodeInfo gives read access to a node's identifier and raw driver configuration.
type NodeInfo interface {
	// Identifier returns the node's identifier (typically a UUID string).
	Identifier() string

	// Get returns the raw value stored for field and whether it was present.
	Get(field string) (any, bool)
}

// PathChecker reports whether a filesystem path exists.
type PathChecker interface {
	Exists(path string) bool
}

// Settings holds the process-wide connection settings.
type Settings struct {
	// ConnectionAttempts is the maximum number of attempts, including the first one.
	ConnectionAttempts int

	// ConnectionRetryInterval is the wait between two consecutive attempts.
	ConnectionRetryInterval time.Duration
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		ConnectionAttempts:      DefaultConnectionAttempts,
		ConnectionRetryInterval: DefaultConnectionRetryInterval,
	}
}

// Validate checks that the settings can drive a connection loop.
// It returns a multi-error if multiple validation failures occur.
func (s Settings) Validate() error {
	var errs []error

	if s.ConnectionAttempts < 1 {
		errs = append(errs, fmt.Errorf("connection_attempts must be at least 1, got %d: %w",
			s.ConnectionAttempts, ErrInvalidConfig))
	}

	if s.ConnectionRetryInterval < 0 {
		errs = append(errs, fmt.Errorf("connection_retry_interval cannot be negative, got %v: %w",
			s.ConnectionRetryInterval, ErrInvalidConfig))
	}

	return errors.Join(errs...)
}
