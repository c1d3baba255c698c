// Package redfish implements rfconn.RedfishClient on top of gofish.
//
// The adapter owns the translation from gofish and net/http failures to the
// rfconn error kinds: HTTP 404 becomes rfconn.ErrResourceNotFound, while
// transport failures and HTTP 503 become rfconn.ErrConnectionFailure. Every
// other error is returned unchanged and is treated as permanent by callers.
package redfish
