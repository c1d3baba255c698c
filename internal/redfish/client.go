package redfish

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/stmcginnis/gofish"
	"github.com/stmcginnis/gofish/redfish"

	"github.com/vvka-141/rfconn/internal/files/filesystem"
	"github.com/vvka-141/rfconn/pkg/rfconn"
)

// DefaultRequestTimeout bounds a single HTTP request to the BMC.
const DefaultRequestTimeout = 60 * time.Second

// Client opens gofish sessions against Redfish services.
type Client struct {
	fs      filesystem.Provider
	timeout time.Duration
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithRequestTimeout overrides DefaultRequestTimeout. Zero disables the timeout.
func WithRequestTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = d
	}
}

// NewClient creates a Client that reads CA bundles through fsProvider.
func NewClient(fsProvider filesystem.Provider, opts ...ClientOption) *Client {
	if fsProvider == nil {
		panic("filesystem provider cannot be nil")
	}
	c := &Client{
		fs:      fsProvider,
		timeout: DefaultRequestTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ rfconn.RedfishClient = (*Client)(nil)

// Connect fetches the service root using HTTP basic authentication.
func (c *Client) Connect(ctx context.Context, opts rfconn.ConnectOptions) (rfconn.RedfishConnection, error) {
	tlsConfig, err := buildTLSConfig(c.fs, opts.VerifyCA)
	if err != nil {
		return nil, err
	}

	transport := cleanhttp.DefaultTransport()
	transport.TLSClientConfig = tlsConfig

	api, err := gofish.ConnectContext(ctx, gofish.ClientConfig{
		Endpoint:   opts.Address,
		Username:   opts.Username,
		Password:   opts.Password,
		Insecure:   !opts.VerifyCA.Enabled,
		HTTPClient: &http.Client{Transport: transport, Timeout: c.timeout},
		BasicAuth:  true,
	})
	if err != nil {
		return nil, translateError(fmt.Errorf("failed to connect to %s: %w", opts.Address, err))
	}

	return &connection{api: api}, nil
}

type connection struct {
	api *gofish.APIClient
}

// GetSystem fetches the ComputerSystem at systemID.
func (c *connection) GetSystem(ctx context.Context, systemID string) (*rfconn.System, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sys, err := redfish.GetComputerSystem(c.api, systemID)
	if err != nil {
		return nil, translateError(fmt.Errorf("failed to get system %s: %w", systemID, err))
	}

	return toSystem(sys), nil
}

// Close logs out of the session.
func (c *connection) Close() {
	c.api.Logout()
}

func toSystem(sys *redfish.ComputerSystem) *rfconn.System {
	return &rfconn.System{
		ODataID:      sys.ODataID,
		ID:           sys.ID,
		Name:         sys.Name,
		UUID:         sys.UUID,
		Manufacturer: sys.Manufacturer,
		Model:        sys.Model,
		SerialNumber: sys.SerialNumber,
		SKU:          sys.SKU,
		BIOSVersion:  sys.BIOSVersion,
		HostName:     sys.HostName,
		PowerState:   string(sys.PowerState),
		Health:       string(sys.Status.Health),
		State:        string(sys.Status.State),
	}
}
