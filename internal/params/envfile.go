package params

import (
	"fmt"

	"github.com/joho/godotenv"

	"github.com/vvka-141/rfconn/internal/files/filesystem"
)

// ParseEnvFile parses override file content in .env format. Keys follow the
// same rules as --set keys and are matched case-insensitively, so both
// REDFISH_ADDRESS and address are accepted.
func ParseEnvFile(content []byte) (map[string]string, error) {
	raw, err := godotenv.Unmarshal(string(content))
	if err != nil {
		return nil, fmt.Errorf("invalid override file: %w", err)
	}

	result := make(map[string]string, len(raw))
	for key, value := range raw {
		field, err := CanonicalField(key)
		if err != nil {
			return nil, err
		}
		result[field] = value
	}
	return result, nil
}

// LoadEnvFile reads and parses an override file through fsProvider.
func LoadEnvFile(fsProvider filesystem.Provider, path string) (map[string]string, error) {
	content, err := fsProvider.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read override file %s: %w", path, err)
	}
	overrides, err := ParseEnvFile(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return overrides, nil
}
