// Package files groups file access helpers.
//
// The filesystem sub-package abstracts reads of node files, override files
// and CA bundles behind filesystem.Provider, with an OS implementation for
// production and an in-memory one for tests.
//
//	import "github.com/vvka-141/rfconn/internal/files/filesystem"
//
//	fsys := filesystem.NewOSFileSystem()
//	data, err := fsys.ReadFile("nodes/compute-01.yaml")
package files
