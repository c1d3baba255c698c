package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeyValuePairs(t *testing.T) {
	tests := []struct {
		name        string
		input       []string
		expected    map[string]string
		expectError bool
		errorMsg    string
	}{
		{
			name:     "Empty input",
			input:    []string{},
			expected: map[string]string{},
		},
		{
			name:  "Short and full keys",
			input: []string{"address=10.0.0.5", "redfish_username=admin"},
			expected: map[string]string{
				"redfish_address":  "10.0.0.5",
				"redfish_username": "admin",
			},
		},
		{
			name:     "Value containing equals sign",
			input:    []string{"password=a=b=c"},
			expected: map[string]string{"redfish_password": "a=b=c"},
		},
		{
			name:     "Empty value is kept",
			input:    []string{"system_id="},
			expected: map[string]string{"redfish_system_id": ""},
		},
		{
			name:     "Keys are case-insensitive",
			input:    []string{"VERIFY_CA=false"},
			expected: map[string]string{"redfish_verify_ca": "false"},
		},
		{
			name:     "Last value wins",
			input:    []string{"address=a", "redfish_address=b"},
			expected: map[string]string{"redfish_address": "b"},
		},
		{
			name:        "Missing equals sign",
			input:       []string{"address"},
			expectError: true,
			errorMsg:    "not in key=value format",
		},
		{
			name:        "Empty key",
			input:       []string{"=value"},
			expectError: true,
			errorMsg:    "empty key",
		},
		{
			name:        "Unknown field",
			input:       []string{"ipmi_address=10.0.0.5"},
			expectError: true,
			errorMsg:    `unknown driver_info field "redfish_ipmi_address"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseKeyValuePairs(tt.input)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestApply(t *testing.T) {
	info := map[string]any{
		"redfish_address":   "https://old",
		"redfish_verify_ca": true,
	}

	got := Apply(info, map[string]string{"redfish_address": "https://new", "redfish_username": "admin"})

	assert.Equal(t, map[string]any{
		"redfish_address":   "https://new",
		"redfish_username":  "admin",
		"redfish_verify_ca": true,
	}, got)
}

func TestApply_NilDriverInfo(t *testing.T) {
	got := Apply(nil, map[string]string{"redfish_password": "secret"})
	assert.Equal(t, map[string]any{"redfish_password": "secret"}, got)
}

func TestMerge(t *testing.T) {
	fromFile := map[string]string{"redfish_address": "file", "redfish_username": "file"}
	fromFlags := map[string]string{"redfish_address": "flag"}

	assert.Equal(t, map[string]string{
		"redfish_address":  "flag",
		"redfish_username": "file",
	}, Merge(fromFile, fromFlags))
	assert.Empty(t, Merge())
}
