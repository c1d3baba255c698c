package redfish

import (
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"

	"github.com/stmcginnis/gofish/common"

	"github.com/vvka-141/rfconn/pkg/rfconn"
)

// translateError maps a gofish or transport error onto the rfconn error kinds.
// The original error stays in the chain.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *common.Error
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPReturnedStatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("%w: %w", rfconn.ErrResourceNotFound, err)
		case http.StatusServiceUnavailable:
			return fmt.Errorf("%w: service unavailable: %w", rfconn.ErrConnectionFailure, err)
		}
		return err
	}

	var urlErr *url.Error
	var netErr net.Error
	if errors.As(err, &urlErr) || errors.As(err, &netErr) ||
		errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %w", rfconn.ErrConnectionFailure, err)
	}

	return err
}
