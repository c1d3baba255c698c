package node

import (
	"strings"

	"github.com/google/uuid"
)

// NamespaceNodeIdentity is the UUID v5 namespace for deriving node identifiers
// from node names. It is the URL namespace hashed with "rfconn/node-identity/v1".
var NamespaceNodeIdentity = uuid.NewSHA1(uuid.NameSpaceURL, []byte("rfconn/node-identity/v1"))

// FallbackID returns a deterministic UUID v5 for a node that has no UUID of
// its own. Names are compared case-insensitively and ignore surrounding space,
// so "Node-1" and " node-1 " map to the same identifier.
func FallbackID(name string) uuid.UUID {
	normalized := strings.ToLower(strings.TrimSpace(name))
	return uuid.NewSHA1(NamespaceNodeIdentity, []byte(normalized))
}
