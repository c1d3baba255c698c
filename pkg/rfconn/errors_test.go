package rfconn_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vvka-141/rfconn/pkg/rfconn"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, rfconn.ExitSuccess},
		{"general error", errors.New("something went wrong"), rfconn.ExitGeneralError},
		{"unknown flag", errors.New("unknown flag --foo"), rfconn.ExitUsageError},
		{"accepts args", errors.New("accepts 1 arg(s), received 0"), rfconn.ExitUsageError},
		{"missing parameter", &rfconn.MissingParameterError{Node: "n1", Fields: []string{rfconn.FieldAddress}}, rfconn.ExitConfigError},
		{"invalid parameter", &rfconn.InvalidParameterError{Field: rfconn.FieldAddress}, rfconn.ExitConfigError},
		{"invalid config", fmt.Errorf("load: %w", rfconn.ErrInvalidConfig), rfconn.ExitConfigError},
		{"connection error", &rfconn.RedfishConnectionError{Node: "n1", Attempts: 3}, rfconn.ExitConnectionError},
		{"redfish error", &rfconn.RedfishError{Node: "n1", Err: rfconn.ErrResourceNotFound}, rfconn.ExitRedfishError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rfconn.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestMissingParameterError_Message(t *testing.T) {
	err := &rfconn.MissingParameterError{
		Node:   "node-1",
		Fields: []string{rfconn.FieldAddress, rfconn.FieldPassword},
	}

	assert.ErrorIs(t, err, rfconn.ErrMissingParameter)
	assert.NotErrorIs(t, err, rfconn.ErrInvalidParameter)
	assert.Contains(t, err.Error(), "node-1")
	assert.Contains(t, err.Error(), "redfish_address, redfish_password")
}

func TestRedfishError_WrapsCause(t *testing.T) {
	cause := fmt.Errorf("GET /redfish/v1/Systems/1: %w", rfconn.ErrResourceNotFound)
	err := fmt.Errorf("fetch: %w", &rfconn.RedfishError{Node: "node-1", SystemID: "/redfish/v1/Systems/1", Err: cause})

	assert.ErrorIs(t, err, rfconn.ErrRedfish)
	assert.ErrorIs(t, err, rfconn.ErrResourceNotFound)
	assert.Contains(t, err.Error(), "was not found for node node-1")

	var rfErr *rfconn.RedfishError
	if assert.ErrorAs(t, err, &rfErr) {
		assert.Equal(t, "/redfish/v1/Systems/1", rfErr.SystemID)
	}
}

func TestRedfishError_GenericMessage(t *testing.T) {
	err := &rfconn.RedfishError{Node: "node-1", SystemID: "/redfish/v1/Systems/1", Err: errors.New("401 Unauthorized")}

	assert.Contains(t, err.Error(), "redfish error for node node-1")
	assert.NotErrorIs(t, err, rfconn.ErrResourceNotFound)
}

func TestRedfishConnectionError_Message(t *testing.T) {
	cause := fmt.Errorf("dial tcp: %w", rfconn.ErrConnectionFailure)
	err := &rfconn.RedfishConnectionError{Node: "node-1", Address: "https://bmc", Attempts: 3, Err: cause}

	assert.ErrorIs(t, err, rfconn.ErrRedfishConnection)
	assert.ErrorIs(t, err, rfconn.ErrConnectionFailure)
	assert.NotErrorIs(t, err, rfconn.ErrRedfish)
	assert.Contains(t, err.Error(), "node-1")
	assert.Contains(t, err.Error(), "after 3 attempt(s)")
}
