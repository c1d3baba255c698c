package cli

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/rfconn/internal/config"
	"github.com/vvka-141/rfconn/internal/files/filesystem"
	"github.com/vvka-141/rfconn/internal/logging"
	"github.com/vvka-141/rfconn/internal/node"
	"github.com/vvka-141/rfconn/internal/params"
	"github.com/vvka-141/rfconn/internal/ui"
	"github.com/vvka-141/rfconn/pkg/rfconn"
)

// globalOptions holds the persistent flag values shared by all commands.
type globalOptions struct {
	configDir string
	logFormat string
	logLevel  string
}

var globals = globalOptions{configDir: "."}

// overrideOptions holds driver_info overrides shared by the node commands.
type overrideOptions struct {
	set  []string
	file string
}

var overrides overrideOptions

func addOverrideFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&overrides.set, "set", nil, "Override a driver_info field (key=value, repeatable)")
	cmd.Flags().StringVar(&overrides.file, "driver-info-file", "", "Read driver_info overrides from a .env style file")
	_ = cmd.RegisterFlagCompletionFunc("set", completeFrom(overrideKeys()))
}

// loadConfig loads .env, then the effective configuration. Logging flags
// take precedence over the file and the environment.
func loadConfig() (*config.Config, error) {
	_ = godotenv.Load()

	cfg, err := config.Resolve(globals.configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}

	if globals.logFormat != "" {
		cfg.Logging.Format = globals.logFormat
	}
	if globals.logLevel != "" {
		cfg.Logging.Level = globals.logLevel
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command, cfg *config.Config) rfconn.Logger {
	return logging.New(cmd.ErrOrStderr(), cfg.Logging.Format, cfg.Logging.Level, getVerboseFlag(cmd))
}

func newRenderer(cmd *cobra.Command) *ui.Renderer {
	return ui.NewRenderer(cmd.OutOrStdout(), ui.DetectMode())
}

// loadNode reads a node file and applies the --driver-info-file and --set
// overrides, in that order.
func loadNode(path string) (*node.Node, error) {
	fsys := filesystem.NewOSFileSystem()
	n, err := node.Load(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load node: %w", err)
	}

	var fromFile map[string]string
	if overrides.file != "" {
		if fromFile, err = params.LoadEnvFile(fsys, overrides.file); err != nil {
			return nil, err
		}
	}
	fromFlags, err := params.ParseKeyValuePairs(overrides.set)
	if err != nil {
		return nil, err
	}

	n.DriverInfo = params.Apply(n.DriverInfo, params.Merge(fromFile, fromFlags))
	return n, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func driverInfoFields(info *rfconn.DriverInfo) []ui.Field {
	password := ""
	if info.Password != "" {
		password = "***"
	}
	return []ui.Field{
		{Label: "Node", Value: info.NodeID},
		{Label: "Address", Value: info.Address},
		{Label: "System ID", Value: info.SystemID},
		{Label: "Username", Value: info.Username},
		{Label: "Password", Value: password},
		{Label: "Verify CA", Value: info.VerifyCA.String()},
	}
}

func systemFields(sys *rfconn.System) []ui.Field {
	return []ui.Field{
		{Label: "Resource", Value: sys.ODataID},
		{Label: "ID", Value: sys.ID},
		{Label: "Name", Value: sys.Name},
		{Label: "UUID", Value: sys.UUID},
		{Label: "Manufacturer", Value: sys.Manufacturer},
		{Label: "Model", Value: sys.Model},
		{Label: "Serial Number", Value: sys.SerialNumber},
		{Label: "SKU", Value: sys.SKU},
		{Label: "BIOS Version", Value: sys.BIOSVersion},
		{Label: "Host Name", Value: sys.HostName},
		{Label: "Power State", Value: sys.PowerState},
		{Label: "Health", Value: sys.Health},
		{Label: "State", Value: sys.State},
	}
}
