// Package node loads node records and exposes their driver configuration
// through the rfconn.NodeInfo accessor.
package node

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/rfconn/internal/files/filesystem"
	"github.com/vvka-141/rfconn/pkg/rfconn"
)

var (
	// ErrNodeNotFound is returned when the node file does not exist.
	ErrNodeNotFound = errors.New("node file not found")

	// ErrInvalidNode is returned when a node file cannot be decoded or lacks identity.
	ErrInvalidNode = errors.New("invalid node file")
)

// Node is a bare-metal node record holding the configuration of its driver.
type Node struct {
	UUID       uuid.UUID
	Name       string
	Driver     string
	DriverInfo map[string]any
}

type nodeFile struct {
	UUID       string         `yaml:"uuid"`
	Name       string         `yaml:"name"`
	Driver     string         `yaml:"driver"`
	DriverInfo map[string]any `yaml:"driver_info"`
}

var _ rfconn.NodeInfo = (*Node)(nil)

// Identifier returns the node UUID in canonical form.
func (n *Node) Identifier() string {
	return n.UUID.String()
}

// Get returns the raw driver_info value stored for field.
func (n *Node) Get(field string) (any, bool) {
	v, ok := n.DriverInfo[field]
	return v, ok
}

// Load reads a node record from a YAML file.
//
// Expected layout:
//
//	uuid: 4f3a3b1e-...   # optional, derived from name when absent
//	name: compute-01
//	driver: redfish
//	driver_info:
//	  redfish_address: bmc.example.com
//	  redfish_system_id: /redfish/v1/Systems/1
func Load(fsProvider filesystem.Provider, path string) (*Node, error) {
	data, err := fsProvider.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, path)
		}
		return nil, fmt.Errorf("failed to read node file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a node record from YAML.
func Parse(data []byte) (*Node, error) {
	var raw nodeFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidNode, err)
	}

	n := &Node{
		Name:       strings.TrimSpace(raw.Name),
		Driver:     raw.Driver,
		DriverInfo: raw.DriverInfo,
	}
	if n.DriverInfo == nil {
		n.DriverInfo = map[string]any{}
	}

	switch {
	case strings.TrimSpace(raw.UUID) != "":
		id, err := uuid.Parse(strings.TrimSpace(raw.UUID))
		if err != nil {
			return nil, fmt.Errorf("%w: uuid %q: %v", ErrInvalidNode, raw.UUID, err)
		}
		n.UUID = id
	case n.Name != "":
		n.UUID = FallbackID(n.Name)
	default:
		return nil, fmt.Errorf("%w: either uuid or name is required", ErrInvalidNode)
	}

	return n, nil
}

// Fields is an rfconn.NodeInfo over a plain map, for callers that already
// hold driver info in memory.
type Fields struct {
	ID     string
	Values map[string]any
}

var _ rfconn.NodeInfo = Fields{}

// Identifier returns f.ID.
func (f Fields) Identifier() string { return f.ID }

// Get returns the value stored for field.
func (f Fields) Get(field string) (any, bool) {
	v, ok := f.Values[field]
	return v, ok
}
