package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/rfconn/internal/driverinfo"
	"github.com/vvka-141/rfconn/internal/logging"
)

var (
	logFormats = []string{logging.FormatConsole, logging.FormatText, logging.FormatJSON}
	logLevels  = []string{"trace", "debug", "info", "warning", "error"}
)

func completeFrom(values []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var matches []string
		for _, v := range values {
			if strings.HasPrefix(v, toComplete) {
				matches = append(matches, v)
			}
		}
		return matches, cobra.ShellCompDirectiveNoFileComp
	}
}

// completeNodeFiles restricts file completion to YAML node files.
func completeNodeFiles(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{"yaml", "yml"}, cobra.ShellCompDirectiveFilterFileExt
}

// overrideKeys lists "field=" prefixes for --set completion.
func overrideKeys() []string {
	props := driverinfo.Properties()
	keys := make([]string, 0, len(props))
	for _, p := range props {
		keys = append(keys, p.Name+"=")
	}
	return keys
}
