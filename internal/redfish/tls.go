package redfish

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"path/filepath"

	"github.com/vvka-141/rfconn/internal/files/filesystem"
	"github.com/vvka-141/rfconn/pkg/rfconn"
)

// buildTLSConfig turns a verification policy into a client TLS config.
// A CA bundle may be a PEM file or a directory of PEM files; in both cases
// it replaces the system roots.
func buildTLSConfig(fsProvider filesystem.Provider, verify rfconn.VerifyCA) (*tls.Config, error) {
	cfg := &tls.Config{MinVersion: tls.VersionTLS12}

	if !verify.Enabled {
		cfg.InsecureSkipVerify = true
		return cfg, nil
	}
	if !verify.IsPath() {
		return cfg, nil
	}

	pool, err := loadCABundle(fsProvider, verify.CABundle)
	if err != nil {
		return nil, err
	}
	cfg.RootCAs = pool
	return cfg, nil
}

func loadCABundle(fsProvider filesystem.Provider, bundle string) (*x509.CertPool, error) {
	info, err := fsProvider.Stat(bundle)
	if err != nil {
		return nil, fmt.Errorf("failed to read CA bundle %s: %w", bundle, err)
	}

	files := []string{bundle}
	if info.IsDir() {
		entries, err := fsProvider.ReadDir(bundle)
		if err != nil {
			return nil, fmt.Errorf("failed to read CA directory %s: %w", bundle, err)
		}
		files = files[:0]
		for _, entry := range entries {
			if !entry.IsDir() {
				files = append(files, filepath.Join(bundle, entry.Name()))
			}
		}
	}

	pool := x509.NewCertPool()
	loaded := 0
	for _, f := range files {
		data, err := fsProvider.ReadFile(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read CA bundle %s: %w", f, err)
		}
		if pool.AppendCertsFromPEM(data) {
			loaded++
		}
	}

	if loaded == 0 {
		return nil, fmt.Errorf("no PEM certificates found in CA bundle %s", bundle)
	}
	return pool, nil
}
