//go:build !unix && !windows

package vmem

import "errors"

// Address-space reservation without backing has no portable equivalent, so
// unsupported platforms fail every call instead of emulating with committed
// memory.
var errUnsupported = errors.New("vmem: virtual memory reservation not supported on this platform")

func Reserve(size int) ([]byte, error) { return nil, errUnsupported }

func Commit(region []byte, newTotal, additional int) error { return errUnsupported }

func Decommit(sub []byte) error { return errUnsupported }

func Release(region []byte) error { return errUnsupported }
