package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rfconn",
	Short: "Redfish BMC driver info validator and system client",
	Long: `rfconn validates the Redfish settings stored in a node's driver_info and
fetches the node's ComputerSystem from its BMC, retrying while the BMC is
unreachable.

Settings are read from rfconn.yaml in the config directory, a .env file in the
working directory and RFCONN_* environment variables, in increasing priority.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or driver_info parameters
  11 - Redfish service unreachable after all attempts
  12 - Redfish service reported an error (e.g. system not found)`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolP("verbose", "v", false, "Enable verbose output for all commands")
	flags.StringVar(&globals.configDir, "config-dir", ".", "Directory containing rfconn.yaml")
	flags.StringVar(&globals.logFormat, "log-format", "", "Log format: console, text or json (overrides rfconn.yaml)")
	flags.StringVar(&globals.logLevel, "log-level", "", "Log level for text and json formats (overrides rfconn.yaml)")

	_ = rootCmd.RegisterFlagCompletionFunc("log-format", completeFrom(logFormats))
	_ = rootCmd.RegisterFlagCompletionFunc("log-level", completeFrom(logLevels))
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
