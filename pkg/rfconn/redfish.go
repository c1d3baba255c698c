package rfconn

import "context"

// ConnectOptions carries everything a RedfishClient needs to open a session
// with a BMC.
type ConnectOptions struct {
	Address  string
	Username string
	Password string
	VerifyCA VerifyCA
}

// RedfishClient opens connections to a Redfish service.
//
// Connect may fail with an error wrapping ErrConnectionFailure when the
// service cannot be reached.
type RedfishClient interface {
	Connect(ctx context.Context, opts ConnectOptions) (RedfishConnection, error)
}

// RedfishConnection is an open connection to a Redfish service.
type RedfishConnection interface {
	// GetSystem fetches the ComputerSystem at the given resource path.
	// Errors wrap ErrResourceNotFound when the service reports the resource
	// does not exist and ErrConnectionFailure on transport-level failures.
	GetSystem(ctx context.Context, systemID string) (*System, error)

	// Close releases the connection (and logs out of any session).
	Close()
}
