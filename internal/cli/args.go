package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RequireNodeFile validates that exactly one node_file argument is provided.
// Returns a helpful error message with usage and examples if missing or too many.
func RequireNodeFile(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <node_file>

Usage: %s

Example:
  %s ./nodes/compute-01.yaml`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}
