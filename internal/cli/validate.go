package cli

import (
	"github.com/spf13/cobra"

	"github.com/vvka-141/rfconn/internal/driverinfo"
	"github.com/vvka-141/rfconn/internal/files/filesystem"
)

var validateCmd = &cobra.Command{
	Use:   "validate <node_file>",
	Short: "Validate the Redfish driver_info of a node",
	Long: `Validate parses the driver_info section of a node file exactly as the system
command does, without contacting the BMC. Addresses without a scheme are shown
with https:// prepended and CA bundle paths are checked for existence.`,
	Example: `  rfconn validate ./nodes/compute-01.yaml
  rfconn validate ./nodes/compute-01.yaml --verbose`,
	Args:              RequireNodeFile,
	ValidArgsFunction: completeNodeFiles,
	RunE:              runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
	addOverrideFlags(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cmd, cfg)

	n, err := loadNode(args[0])
	if err != nil {
		return err
	}

	info, err := driverinfo.ParseDriverInfo(n, filesystem.NewOSFileSystem())
	if err != nil {
		return err
	}
	logger.Verbose("Parsed driver info: %s", info)

	r := newRenderer(cmd)
	r.Title("Redfish driver info")
	r.Fields(driverInfoFields(info))
	r.Success("driver_info of node %s is valid", n.Identifier())
	return nil
}
