package driverinfo

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/vvka-141/rfconn/pkg/rfconn"
)

// Parser validates driver info, checking CA bundle paths through paths.
// A Parser holds no per-node state and is safe for concurrent use.
type Parser struct {
	paths rfconn.PathChecker
}

// NewParser creates a Parser. Panics if paths is nil.
func NewParser(paths rfconn.PathChecker) *Parser {
	if paths == nil {
		panic("path checker cannot be nil")
	}
	return &Parser{paths: paths}
}

// ParseDriverInfo is a convenience wrapper around NewParser(paths).Parse(node).
func ParseDriverInfo(node rfconn.NodeInfo, paths rfconn.PathChecker) (*rfconn.DriverInfo, error) {
	return NewParser(paths).Parse(node)
}

// Parse builds a DriverInfo from the node's current configuration.
func (p *Parser) Parse(node rfconn.NodeInfo) (*rfconn.DriverInfo, error) {
	nodeID := node.Identifier()

	var missing []string
	for _, field := range rfconn.RequiredFields {
		if isBlank(node, field) {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, &rfconn.MissingParameterError{Node: nodeID, Fields: missing}
	}

	rawAddress, _ := node.Get(rfconn.FieldAddress)
	address, err := normalizeAddress(nodeID, rawAddress)
	if err != nil {
		return nil, err
	}

	systemID, err := stringField(node, rfconn.FieldSystemID)
	if err != nil {
		return nil, err
	}
	username, err := stringField(node, rfconn.FieldUsername)
	if err != nil {
		return nil, err
	}
	password, err := stringField(node, rfconn.FieldPassword)
	if err != nil {
		return nil, err
	}

	verifyCA, err := p.resolveVerifyCA(node)
	if err != nil {
		return nil, err
	}

	return &rfconn.DriverInfo{
		Address:  address,
		SystemID: systemID,
		Username: username,
		Password: password,
		VerifyCA: verifyCA,
		NodeID:   nodeID,
	}, nil
}

// isBlank reports whether field is absent, nil or an empty string.
func isBlank(node rfconn.NodeInfo, field string) bool {
	value, ok := node.Get(field)
	if !ok || value == nil {
		return true
	}
	if s, isString := value.(string); isString && s == "" {
		return true
	}
	return false
}

func stringField(node rfconn.NodeInfo, field string) (string, error) {
	value, _ := node.Get(field)
	s, ok := value.(string)
	if !ok {
		return "", &rfconn.InvalidParameterError{
			Node:  node.Identifier(),
			Field: field,
			Value: value,
			Message: fmt.Sprintf("Invalid value type set in driver_info/%s on node %s: expected a string, not %T",
				field, node.Identifier(), value),
		}
	}
	return s, nil
}

// normalizeAddress prepends the default scheme when none is given and checks
// that the result is an absolute URL with a host.
func normalizeAddress(nodeID string, raw any) (string, error) {
	invalid := &rfconn.InvalidParameterError{
		Node:    nodeID,
		Field:   rfconn.FieldAddress,
		Value:   raw,
		Message: fmt.Sprintf("Invalid Redfish address %v set in driver_info/%s on node %s", raw, rfconn.FieldAddress, nodeID),
	}

	address, ok := raw.(string)
	if !ok {
		return "", invalid
	}

	if !strings.Contains(address, "://") {
		address = rfconn.DefaultScheme + "://" + address
	}

	u, err := url.Parse(address)
	if err != nil || u.Scheme == "" || u.Hostname() == "" || u.Opaque != "" {
		return "", invalid
	}

	if port := u.Port(); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil || n < 1 || n > 65535 {
			return "", invalid
		}
	}

	return address, nil
}

// resolveVerifyCA maps redfish_verify_ca to a verification policy.
//
// Absent means verify with system roots. Booleans, and strings that spell a
// boolean, are used as is. Any other string must name an existing CA bundle
// file or directory.
func (p *Parser) resolveVerifyCA(node rfconn.NodeInfo) (rfconn.VerifyCA, error) {
	value, ok := node.Get(rfconn.FieldVerifyCA)
	if !ok || value == nil {
		return rfconn.VerifyBool(true), nil
	}

	switch v := value.(type) {
	case bool:
		return rfconn.VerifyBool(v), nil
	case string:
		if b, isBool := parseStrictBool(v); isBool {
			return rfconn.VerifyBool(b), nil
		}
		if !p.paths.Exists(v) {
			return rfconn.VerifyCA{}, &rfconn.InvalidParameterError{
				Node:  node.Identifier(),
				Field: rfconn.FieldVerifyCA,
				Value: v,
				Message: fmt.Sprintf("Invalid value %q set in driver_info/%s on node %s: "+
					"the value should be a Boolean or the path to a CA bundle file/directory",
					v, rfconn.FieldVerifyCA, node.Identifier()),
			}
		}
		return rfconn.VerifyPath(v), nil
	default:
		return rfconn.VerifyCA{}, &rfconn.InvalidParameterError{
			Node:  node.Identifier(),
			Field: rfconn.FieldVerifyCA,
			Value: value,
			Message: fmt.Sprintf("Invalid value type set in driver_info/%s on node %s: "+
				"the value should be a Boolean or the path to a CA bundle file/directory, not %q",
				rfconn.FieldVerifyCA, node.Identifier(), fmt.Sprint(value)),
		}
	}
}

// parseStrictBool recognizes the usual spellings of true and false.
func parseStrictBool(s string) (value bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "t", "true", "on", "y", "yes":
		return true, true
	case "0", "f", "false", "off", "n", "no":
		return false, true
	}
	return false, false
}
