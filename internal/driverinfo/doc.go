// Package driverinfo turns a node's raw Redfish driver configuration into a
// validated rfconn.DriverInfo.
//
// Validation fails fast with errors from the rfconn taxonomy:
// *rfconn.MissingParameterError when required fields are absent or empty, and
// *rfconn.InvalidParameterError when a present field cannot be used.
//
// # Example Usage
//
//	parser := driverinfo.NewParser(filesystem.NewOSFileSystem())
//	info, err := parser.Parse(node)
//	if err != nil {
//	    return err
//	}
package driverinfo
