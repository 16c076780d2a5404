// Package gateway provides ready-made privileged I/O implementations for
// ratbag.Interface. An embedding application with its own privilege
// separation or sandboxing supplies its own implementation instead.
package gateway

import (
	"fmt"

	"github.com/sstallion/go-hid"

	"github.com/mistepien/libratbag/ratbag"
)

// HID opens device nodes through hidapi. Handles are *hid.Device. The
// open(2)-style flags are ignored; hidapi always opens read/write.
type HID struct{}

func (HID) OpenRestricted(path string, _ int) (ratbag.Handle, error) {
	d, err := hid.OpenPath(path)
	if err != nil {
		return nil, fmt.Errorf("hid open %s: %w", path, err)
	}
	return d, nil
}

func (HID) CloseRestricted(h ratbag.Handle) {
	if d, ok := h.(*hid.Device); ok {
		_ = d.Close()
	}
}
