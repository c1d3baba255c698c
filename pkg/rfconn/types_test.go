package rfconn_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vvka-141/rfconn/pkg/rfconn"
)

func TestVerifyCA_String(t *testing.T) {
	assert.Equal(t, "true", rfconn.VerifyBool(true).String())
	assert.Equal(t, "false", rfconn.VerifyBool(false).String())
	assert.Equal(t, "/etc/ssl/ca.pem", rfconn.VerifyPath("/etc/ssl/ca.pem").String())

	assert.True(t, rfconn.VerifyPath("/etc/ssl/ca.pem").Enabled)
	assert.True(t, rfconn.VerifyPath("/etc/ssl/ca.pem").IsPath())
	assert.False(t, rfconn.VerifyBool(true).IsPath())
}

func TestDriverInfo_StringRedactsPassword(t *testing.T) {
	info := &rfconn.DriverInfo{
		Address:  "https://example.com",
		SystemID: "/redfish/v1/Systems/1",
		Username: "admin",
		Password: "hunter2",
		VerifyCA: rfconn.VerifyBool(true),
		NodeID:   "node-1",
	}

	s := info.String()
	assert.NotContains(t, s, "hunter2")
	assert.Contains(t, s, "password=***")
	assert.Contains(t, s, "address=https://example.com")
}

func TestDriverInfo_ConnectOptions(t *testing.T) {
	info := &rfconn.DriverInfo{
		Address:  "https://example.com",
		SystemID: "/redfish/v1/Systems/1",
		Username: "admin",
		Password: "secret",
		VerifyCA: rfconn.VerifyPath("/ca.pem"),
		NodeID:   "node-1",
	}

	assert.Equal(t, rfconn.ConnectOptions{
		Address:  "https://example.com",
		Username: "admin",
		Password: "secret",
		VerifyCA: rfconn.VerifyPath("/ca.pem"),
	}, info.ConnectOptions())
}

func TestSettings_Validate(t *testing.T) {
	require.NoError(t, rfconn.DefaultSettings().Validate())
	require.NoError(t, rfconn.Settings{ConnectionAttempts: 1}.Validate())

	err := rfconn.Settings{ConnectionAttempts: 0, ConnectionRetryInterval: -time.Second}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, rfconn.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "connection_attempts")
	assert.Contains(t, err.Error(), "connection_retry_interval")
}
