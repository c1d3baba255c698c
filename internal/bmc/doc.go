// Package bmc fetches Redfish ComputerSystem resources for nodes, retrying
// transient connection failures a bounded number of times.
//
// Each call to Manager.GetSystem connects, fetches the system and closes the
// connection. Transient failures (as decided by retry.RedfishErrorClassifier)
// are retried after a fixed wait until the attempt budget in rfconn.Settings
// is spent. A missing system, or any other permanent failure, stops
// immediately.
//
// Failures are always reported as one of:
//   - *rfconn.RedfishConnectionError when every attempt failed transiently
//   - *rfconn.RedfishError for permanent failures
//   - the driver info errors of package driverinfo (GetNodeSystem only)
package bmc
