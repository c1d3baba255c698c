package node_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/rfconn/internal/files/filesystem"
	"github.com/vvka-141/rfconn/internal/node"
)

func TestLoad(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/nodes")
	mfs.AddFile("compute-01.yaml", `
uuid: 1be26c0b-03f2-4d2e-ae87-c02d7f33c123
name: compute-01
driver: redfish
driver_info:
  redfish_address: bmc.example.com:8443
  redfish_system_id: /redfish/v1/Systems/1
  redfish_username: admin
  redfish_password: secret
  redfish_verify_ca: false
`)

	n, err := node.Load(mfs, "compute-01.yaml")
	require.NoError(t, err)

	assert.Equal(t, "1be26c0b-03f2-4d2e-ae87-c02d7f33c123", n.Identifier())
	assert.Equal(t, "compute-01", n.Name)
	assert.Equal(t, "redfish", n.Driver)

	v, ok := n.Get("redfish_address")
	assert.True(t, ok)
	assert.Equal(t, "bmc.example.com:8443", v)

	v, ok = n.Get("redfish_verify_ca")
	assert.True(t, ok)
	assert.Equal(t, false, v)

	_, ok = n.Get("redfish_missing")
	assert.False(t, ok)
}

func TestLoad_NotFound(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/nodes")

	_, err := node.Load(mfs, "absent.yaml")
	assert.ErrorIs(t, err, node.ErrNodeNotFound)
}

func TestParse_FallbackID(t *testing.T) {
	n, err := node.Parse([]byte("name: compute-02\n"))
	require.NoError(t, err)

	assert.Equal(t, node.FallbackID("compute-02"), n.UUID)
	assert.Equal(t, uuid.Version(5), n.UUID.Version())
	assert.NotNil(t, n.DriverInfo)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "no identity", data: "driver: redfish\n"},
		{name: "bad uuid", data: "uuid: not-a-uuid\nname: x\n"},
		{name: "bad yaml", data: "driver_info: [unterminated\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := node.Parse([]byte(tt.data))
			assert.ErrorIs(t, err, node.ErrInvalidNode)
		})
	}
}

func TestFallbackID_Normalization(t *testing.T) {
	assert.Equal(t, node.FallbackID("compute-01"), node.FallbackID("  Compute-01 "))
	assert.NotEqual(t, node.FallbackID("compute-01"), node.FallbackID("compute-02"))
}

func TestFields(t *testing.T) {
	f := node.Fields{ID: "n1", Values: map[string]any{"a": 1}}

	assert.Equal(t, "n1", f.Identifier())
	v, ok := f.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}
