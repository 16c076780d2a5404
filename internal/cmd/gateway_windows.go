//go:build windows

package cmd

import (
	"fmt"

	"github.com/mistepien/libratbag/gateway"
	"github.com/mistepien/libratbag/ratbag"
)

func newGateway(kind string) (ratbag.Interface, error) {
	switch kind {
	case "hidapi":
		return gateway.HID{}, nil
	case "unix":
		return nil, fmt.Errorf("the unix gateway is not available on windows")
	default:
		return nil, fmt.Errorf("unknown gateway %q", kind)
	}
}
