// Package params parses driver_info overrides supplied outside the node file.
//
// Overrides come from repeated --set key=value flags or from a .env style
// file passed with --driver-info-file. Keys name a driver_info field either
// in full (redfish_address) or without the redfish_ prefix (address).
// Values given on the command line win over values from the file, which in
// turn win over the node file itself.
//
//	overrides, err := params.ParseKeyValuePairs([]string{"address=10.0.0.5", "verify_ca=false"})
//	if err != nil {
//	    return err
//	}
//	params.Apply(n.DriverInfo, overrides)
//
// All values are applied as strings. The driver info parser accepts string
// forms for every field, including Boolean strings for redfish_verify_ca.
package params
