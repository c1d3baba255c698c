package bmc

import (
	"context"
	"errors"
	"time"

	"github.com/vvka-141/rfconn/internal/driverinfo"
	"github.com/vvka-141/rfconn/internal/files/filesystem"
	"github.com/vvka-141/rfconn/internal/logging"
	"github.com/vvka-141/rfconn/internal/metrics"
	"github.com/vvka-141/rfconn/internal/retry"
	"github.com/vvka-141/rfconn/pkg/rfconn"
)

// Metrics receives per-attempt and per-call observations.
type Metrics interface {
	ObserveAttempt(result string)
	ObserveRequest(outcome string, elapsed time.Duration)
}

// Manager fetches systems from Redfish services.
// It holds no per-call state and is safe for concurrent use.
type Manager struct {
	client     rfconn.RedfishClient
	settings   rfconn.Settings
	classifier rfconn.ErrorClassifier
	executor   *retry.Executor
	parser     *driverinfo.Parser
	logger     rfconn.Logger
	metrics    Metrics
	sleep      retry.SleepFunc
	paths      rfconn.PathChecker
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger. Defaults to a NullLogger.
func WithLogger(logger rfconn.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithMetrics sets the metrics sink. Defaults to discarding observations.
func WithMetrics(metrics Metrics) Option {
	return func(m *Manager) {
		m.metrics = metrics
	}
}

// WithSleep replaces the wait between attempts.
func WithSleep(sleep retry.SleepFunc) Option {
	return func(m *Manager) {
		m.sleep = sleep
	}
}

// WithPathChecker sets the checker used to validate CA bundle paths in
// GetNodeSystem. Defaults to the OS filesystem.
func WithPathChecker(paths rfconn.PathChecker) Option {
	return func(m *Manager) {
		m.paths = paths
	}
}

// NewManager creates a Manager using client to reach Redfish services.
// Panics if client is nil; returns an error wrapping rfconn.ErrInvalidConfig
// if settings are invalid.
func NewManager(client rfconn.RedfishClient, settings rfconn.Settings, opts ...Option) (*Manager, error) {
	if client == nil {
		panic("redfish client cannot be nil")
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	m := &Manager{
		client:     client,
		settings:   settings,
		classifier: retry.NewRedfishErrorClassifier(),
		logger:     logging.NewNullLogger(),
		metrics:    discardMetrics{},
		sleep:      retry.Sleep,
		paths:      filesystem.NewOSFileSystem(),
	}
	for _, opt := range opts {
		opt(m)
	}

	strategy := retry.NewFixedInterval(settings.ConnectionAttempts, settings.ConnectionRetryInterval)
	m.executor = retry.NewExecutor(m.classifier, strategy).WithSleep(m.sleep)
	m.parser = driverinfo.NewParser(m.paths)

	return m, nil
}

// GetNodeSystem parses the node's driver info and fetches its system.
func (m *Manager) GetNodeSystem(ctx context.Context, node rfconn.NodeInfo) (*rfconn.System, error) {
	info, err := m.parser.Parse(node)
	if err != nil {
		return nil, err
	}
	return m.GetSystem(ctx, info)
}

// GetSystem fetches the system described by info.
func (m *Manager) GetSystem(ctx context.Context, info *rfconn.DriverInfo) (*rfconn.System, error) {
	start := time.Now()
	maxAttempts := m.settings.ConnectionAttempts

	executor := m.executor.WithOnRetry(func(attempt int, err error, delay time.Duration) {
		m.logger.Warn("Unable to connect to Redfish at %s for node %s (attempt %d of %d), retrying in %s: %v",
			info.Address, info.NodeID, attempt, maxAttempts, delay, err)
	})

	var system *rfconn.System
	attempts := 0
	err := executor.Execute(ctx, func(ctx context.Context) error {
		attempts++
		sys, err := m.fetch(ctx, info)
		m.metrics.ObserveAttempt(m.attemptResult(err))
		if err != nil {
			return err
		}
		system = sys
		return nil
	})

	outcome, err := m.translate(ctx, info, attempts, err)
	m.metrics.ObserveRequest(outcome, time.Since(start))
	if err != nil {
		return nil, err
	}

	m.logger.Verbose("Fetched Redfish system %s for node %s", info.SystemID, info.NodeID)
	return system, nil
}

func (m *Manager) fetch(ctx context.Context, info *rfconn.DriverInfo) (*rfconn.System, error) {
	m.logger.Verbose("Connecting to Redfish at %s for node %s", info.Address, info.NodeID)

	conn, err := m.client.Connect(ctx, info.ConnectOptions())
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	return conn.GetSystem(ctx, info.SystemID)
}

func (m *Manager) attemptResult(err error) string {
	switch {
	case err == nil:
		return metrics.ResultSuccess
	case m.classifier.IsTransient(err):
		return metrics.ResultTransient
	default:
		return metrics.ResultPermanent
	}
}

// translate maps the executor's result onto the rfconn error kinds.
func (m *Manager) translate(ctx context.Context, info *rfconn.DriverInfo, attempts int, err error) (string, error) {
	if err == nil {
		return metrics.OutcomeSuccess, nil
	}

	var exhausted *retry.ExhaustedError
	if errors.As(err, &exhausted) {
		m.logger.Error("Unable to connect to Redfish at %s for node %s after %d attempt(s): %v",
			info.Address, info.NodeID, exhausted.Attempts, exhausted.Err)
		return metrics.OutcomeConnectionError, &rfconn.RedfishConnectionError{
			Node:     info.NodeID,
			Address:  info.Address,
			Attempts: exhausted.Attempts,
			Err:      exhausted.Err,
		}
	}

	// the connection layer gave up on a cancelled context
	if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
		m.logger.Error("Gave up connecting to Redfish at %s for node %s: %v", info.Address, info.NodeID, err)
		return metrics.OutcomeConnectionError, &rfconn.RedfishConnectionError{
			Node:     info.NodeID,
			Address:  info.Address,
			Attempts: attempts,
			Err:      err,
		}
	}

	if errors.Is(err, rfconn.ErrResourceNotFound) {
		m.logger.Error("The Redfish System %q was not found on node %s: %v", info.SystemID, info.NodeID, err)
		return metrics.OutcomeNotFound, &rfconn.RedfishError{Node: info.NodeID, SystemID: info.SystemID, Err: err}
	}

	m.logger.Error("Redfish error fetching system %s for node %s: %v", info.SystemID, info.NodeID, err)
	return metrics.OutcomeRedfishError, &rfconn.RedfishError{Node: info.NodeID, SystemID: info.SystemID, Err: err}
}

type discardMetrics struct{}

func (discardMetrics) ObserveAttempt(string)                {}
func (discardMetrics) ObserveRequest(string, time.Duration) {}
