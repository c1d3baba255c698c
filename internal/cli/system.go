package cli

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/vvka-141/rfconn/internal/bmc"
	"github.com/vvka-141/rfconn/internal/files/filesystem"
	"github.com/vvka-141/rfconn/internal/metrics"
	"github.com/vvka-141/rfconn/internal/redfish"
)

type systemOptions struct {
	attempts      int
	retryInterval time.Duration
	timeout       time.Duration
	metricsFile   string
}

var systemFlags systemOptions

var systemCmd = &cobra.Command{
	Use:   "system <node_file>",
	Short: "Fetch the Redfish ComputerSystem of a node",
	Long: `System validates the node's driver_info, connects to its BMC and prints the
ComputerSystem resource named by redfish_system_id.

Connection failures are retried up to connection_attempts times, waiting
connection_retry_interval seconds between attempts. A missing system is
reported immediately.`,
	Example: `  rfconn system ./nodes/compute-01.yaml
  rfconn system ./nodes/compute-01.yaml --attempts 1 --metrics-file /var/lib/node_exporter/rfconn.prom`,
	Args:              RequireNodeFile,
	ValidArgsFunction: completeNodeFiles,
	RunE:              runSystem,
}

func init() {
	rootCmd.AddCommand(systemCmd)
	addOverrideFlags(systemCmd)

	systemCmd.Flags().IntVar(&systemFlags.attempts, "attempts", 0, "Maximum connection attempts (overrides connection_attempts)")
	systemCmd.Flags().DurationVar(&systemFlags.retryInterval, "retry-interval", 0, "Wait between attempts (overrides connection_retry_interval)")
	systemCmd.Flags().DurationVar(&systemFlags.timeout, "timeout", redfish.DefaultRequestTimeout, "Timeout of a single HTTP request to the BMC")
	systemCmd.Flags().StringVar(&systemFlags.metricsFile, "metrics-file", "", "Write Prometheus metrics to this file in textfile collector format")
}

func runSystem(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cmd, cfg)

	settings := cfg.Settings()
	if cmd.Flags().Changed("attempts") {
		settings.ConnectionAttempts = systemFlags.attempts
	}
	if cmd.Flags().Changed("retry-interval") {
		settings.ConnectionRetryInterval = systemFlags.retryInterval
	}

	n, err := loadNode(args[0])
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	recorder, err := metrics.New(registry)
	if err != nil {
		return err
	}
	if systemFlags.metricsFile != "" {
		defer func() {
			if werr := metrics.WriteTextfile(systemFlags.metricsFile, registry); werr != nil {
				logger.Warn("Failed to write metrics to %s: %v", systemFlags.metricsFile, werr)
			}
		}()
	}

	fsys := filesystem.NewOSFileSystem()
	client := redfish.NewClient(fsys, redfish.WithRequestTimeout(systemFlags.timeout))
	manager, err := bmc.NewManager(client, settings,
		bmc.WithLogger(logger),
		bmc.WithMetrics(recorder),
		bmc.WithPathChecker(fsys),
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Verbose("Fetching Redfish system for node %s (%d attempt(s), %s apart)",
		n.Identifier(), settings.ConnectionAttempts, settings.ConnectionRetryInterval)

	sys, err := manager.GetNodeSystem(ctx, n)
	if err != nil {
		return err
	}

	r := newRenderer(cmd)
	r.Title("Redfish system")
	r.Fields(systemFields(sys))
	return nil
}
