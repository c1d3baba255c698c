package cli

import (
	"github.com/spf13/cobra"

	"github.com/vvka-141/rfconn/internal/driverinfo"
)

var propertiesCmd = &cobra.Command{
	Use:   "properties",
	Short: "List the supported Redfish driver_info properties",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printProperties(cmd)
	},
}

func init() {
	rootCmd.AddCommand(propertiesCmd)
}

func printProperties(cmd *cobra.Command) {
	r := newRenderer(cmd)
	r.Title("Redfish driver_info properties")
	for _, p := range driverinfo.Properties() {
		name := p.Name
		if p.Required {
			name += " (required)"
		}
		r.List(name, p.Description)
	}
}
