package bmc_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/rfconn/internal/bmc"
	"github.com/vvka-141/rfconn/internal/files/filesystem"
	"github.com/vvka-141/rfconn/internal/node"
	"github.com/vvka-141/rfconn/internal/redfish"
	testhelpers "github.com/vvka-141/rfconn/internal/testing"
	"github.com/vvka-141/rfconn/internal/testinfra"
	"github.com/vvka-141/rfconn/pkg/rfconn"
)

func newMockupManager(t *testing.T) *bmc.Manager {
	t.Helper()
	fsys := filesystem.NewOSFileSystem()
	settings := rfconn.Settings{ConnectionAttempts: 2, ConnectionRetryInterval: 100 * time.Millisecond}

	m, err := bmc.NewManager(redfish.NewClient(fsys), settings, bmc.WithPathChecker(fsys))
	require.NoError(t, err)
	return m
}

func mockupNode(address, systemID string) node.Fields {
	return node.Fields{ID: "mockup-node", Values: map[string]any{
		rfconn.FieldAddress:  address,
		rfconn.FieldSystemID: systemID,
		rfconn.FieldUsername: "root",
		rfconn.FieldPassword: "calvin",
	}}
}

func TestIntegration_GetNodeSystem(t *testing.T) {
	address := testhelpers.RequireRedfish(t)
	m := newMockupManager(t)

	sys, err := m.GetNodeSystem(context.Background(), mockupNode(address, testinfra.MockupSystemID))
	require.NoError(t, err)

	assert.Equal(t, "437XR1138R2", sys.ID)
	assert.NotEmpty(t, sys.PowerState)
}

func TestIntegration_SystemNotFound(t *testing.T) {
	address := testhelpers.RequireRedfish(t)
	m := newMockupManager(t)

	_, err := m.GetNodeSystem(context.Background(), mockupNode(address, "/redfish/v1/Systems/missing"))

	assert.ErrorIs(t, err, rfconn.ErrRedfish)
	assert.ErrorIs(t, err, rfconn.ErrResourceNotFound)
}
