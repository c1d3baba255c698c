package driverinfo

import (
	"sort"

	"github.com/vvka-141/rfconn/pkg/rfconn"
)

// Property documents a single driver info field.
type Property struct {
	Name        string
	Description string
	Required    bool
}

var commonProperties = map[string]string{
	rfconn.FieldAddress: "The URL address to the Redfish controller. It must include the authority " +
		"portion of the URL, and can optionally include the scheme. If the scheme is missing, " +
		"https is assumed. For example: https://mgmt.vendor.com",
	rfconn.FieldSystemID: "The canonical path to the ComputerSystem resource that the driver will " +
		"interact with. It should include the root service, version and the unique resource path " +
		"to the ComputerSystem within the same authority as the redfish_address property. " +
		"For example: /redfish/v1/Systems/1",
	rfconn.FieldUsername: "User account with admin/server-profile access privilege",
	rfconn.FieldPassword: "User account password",
	rfconn.FieldVerifyCA: "Either a Boolean value, a path to a CA_BUNDLE file or directory with " +
		"certificates of trusted CAs. If set to True the driver will verify the host certificates; " +
		"if False the driver will ignore verifying the SSL certificate. If it's a path the driver " +
		"will use the specified certificate or one of the certificates in the directory. " +
		"Defaults to True. Optional",
}

// Properties returns every supported driver info field, required fields first,
// each group sorted by name.
func Properties() []Property {
	required := make(map[string]bool, len(rfconn.RequiredFields))
	for _, f := range rfconn.RequiredFields {
		required[f] = true
	}

	props := make([]Property, 0, len(commonProperties))
	for name, desc := range commonProperties {
		props = append(props, Property{Name: name, Description: desc, Required: required[name]})
	}

	sort.Slice(props, func(i, j int) bool {
		if props[i].Required != props[j].Required {
			return props[i].Required
		}
		return props[i].Name < props[j].Name
	})
	return props
}
