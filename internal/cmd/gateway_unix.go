//go:build !windows

package cmd

import (
	"fmt"

	"github.com/mistepien/libratbag/gateway"
	"github.com/mistepien/libratbag/ratbag"
)

func newGateway(kind string) (ratbag.Interface, error) {
	switch kind {
	case "unix":
		return gateway.Unix{}, nil
	case "hidapi":
		return gateway.HID{}, nil
	default:
		return nil, fmt.Errorf("unknown gateway %q", kind)
	}
}
