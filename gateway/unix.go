//go:build !windows

package gateway

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/mistepien/libratbag/ratbag"
)

// Unix opens device nodes directly with open(2). Handles are file
// descriptors (int). Suitable for embedding applications that already run
// with enough privilege to open hidraw nodes themselves.
type Unix struct{}

func (Unix) OpenRestricted(path string, flags int) (ratbag.Handle, error) {
	fd, err := unix.Open(path, flags, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return fd, nil
}

func (Unix) CloseRestricted(h ratbag.Handle) {
	if fd, ok := h.(int); ok {
		_ = unix.Close(fd)
	}
}
