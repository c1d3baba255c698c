package params

import (
	"fmt"
	"strings"

	"github.com/vvka-141/rfconn/pkg/rfconn"
)

const fieldPrefix = "redfish_"

var knownFields = map[string]bool{
	rfconn.FieldAddress:  true,
	rfconn.FieldSystemID: true,
	rfconn.FieldUsername: true,
	rfconn.FieldPassword: true,
	rfconn.FieldVerifyCA: true,
}

// ParseKeyValuePairs converts a slice of "key=value" strings into driver_info
// overrides keyed by the full field name.
//
// Example:
//
//	overrides, err := ParseKeyValuePairs([]string{"address=10.0.0.5", "redfish_username=admin"})
//	// Returns: map[string]string{"redfish_address": "10.0.0.5", "redfish_username": "admin"}
func ParseKeyValuePairs(pairs []string) (map[string]string, error) {
	result := make(map[string]string, len(pairs))

	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("override %q is not in key=value format (example: --set address=10.0.0.5)", pair)
		}

		field, err := CanonicalField(key)
		if err != nil {
			return nil, err
		}
		result[field] = value
	}

	return result, nil
}

// CanonicalField maps an override key to its driver_info field name.
func CanonicalField(key string) (string, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return "", fmt.Errorf("override has empty key")
	}
	if !strings.HasPrefix(key, fieldPrefix) {
		key = fieldPrefix + key
	}
	if !knownFields[key] {
		return "", fmt.Errorf("unknown driver_info field %q", key)
	}
	return key, nil
}

// Apply writes overrides into driverInfo, allocating it when nil, and returns
// the resulting map.
func Apply(driverInfo map[string]any, overrides map[string]string) map[string]any {
	if driverInfo == nil {
		driverInfo = make(map[string]any, len(overrides))
	}
	for field, value := range overrides {
		driverInfo[field] = value
	}
	return driverInfo
}

// Merge returns a new map with the entries of each layer, later layers
// taking precedence.
func Merge(layers ...map[string]string) map[string]string {
	result := make(map[string]string)
	for _, layer := range layers {
		for k, v := range layer {
			result[k] = v
		}
	}
	return result
}
