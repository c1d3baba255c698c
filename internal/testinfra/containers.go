package testinfra

import (
	"context"
	"fmt"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	// RedfishMockupImage serves the DMTF public-rackmount1 mockup over plain HTTP.
	RedfishMockupImage = "dmtf/redfish-mockup-server:latest"

	// MockupSystemID is the ComputerSystem exposed by the default mockup.
	MockupSystemID = "/redfish/v1/Systems/437XR1138R2"

	mockupPort = "8000/tcp"
)

type RedfishMockupContainer struct {
	testcontainers.Container
	Address string
}

// StartRedfishMockup starts the DMTF Redfish mockup server and waits until the
// service root answers.
func StartRedfishMockup(ctx context.Context) (*RedfishMockupContainer, error) {
	ctr, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        RedfishMockupImage,
			ExposedPorts: []string{mockupPort},
			WaitingFor: wait.ForHTTP("/redfish/v1/").
				WithPort(mockupPort).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("start redfish mockup: %w", err)
	}

	host, err := ctr.Host(ctx)
	if err != nil {
		ctr.Terminate(ctx) //nolint:errcheck
		return nil, fmt.Errorf("get mockup host: %w", err)
	}

	port, err := ctr.MappedPort(ctx, mockupPort)
	if err != nil {
		ctr.Terminate(ctx) //nolint:errcheck
		return nil, fmt.Errorf("get mockup port: %w", err)
	}

	return &RedfishMockupContainer{
		Container: ctr,
		Address:   fmt.Sprintf("http://%s:%s", host, port.Port()),
	}, nil
}
