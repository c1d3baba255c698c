// Package testing holds helpers shared by integration tests.
package testing

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/vvka-141/rfconn/internal/testinfra"
)

var (
	mockupOnce    sync.Once
	mockupAddress string
	mockupErr     error
)

func getOrStartMockup() (string, error) {
	mockupOnce.Do(func() {
		container, err := testinfra.StartRedfishMockup(context.Background())
		if err != nil {
			mockupErr = err
			return
		}
		mockupAddress = container.Address
	})
	return mockupAddress, mockupErr
}

// GetTestRedfishAddress returns the address of a Redfish mockup service.
// Priority: RFCONN_TEST_REDFISH_ADDRESS env var > auto-started testcontainer > skip test.
func GetTestRedfishAddress(t *testing.T) string {
	t.Helper()

	if address := os.Getenv("RFCONN_TEST_REDFISH_ADDRESS"); address != "" {
		return address
	}

	address, err := getOrStartMockup()
	if err != nil {
		t.Skipf("RFCONN_TEST_REDFISH_ADDRESS not set and Docker unavailable: %v", err)
	}
	return address
}

// SkipIfShort skips the test if running in short mode (-short flag).
func SkipIfShort(t *testing.T) {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
}

// RequireRedfish combines SkipIfShort and GetTestRedfishAddress for convenience.
func RequireRedfish(t *testing.T) string {
	t.Helper()

	SkipIfShort(t)
	return GetTestRedfishAddress(t)
}
