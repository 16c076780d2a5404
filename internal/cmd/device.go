package cmd

import (
	"fmt"

	"github.com/mistepien/libratbag/internal/log"
	"github.com/mistepien/libratbag/ratbag"
)

// DeviceFlags names the hardware node and identity of the device a command
// operates on. Device enumeration is out of scope for the library, so the
// caller supplies both explicitly.
type DeviceFlags struct {
	Name    string `help:"Display name for the device" default:"mouse"`
	Devnode string `help:"Input device node" default:""`
	Hidraw  string `required:"" help:"hidraw node of the device"`
	Bus     HexID  `help:"Bus type id (0xffff matches any)" default:"0x0003"`
	Vendor  HexID  `required:"" help:"USB vendor id"`
	Product HexID  `required:"" help:"USB product id"`
	Version HexID  `help:"Device version" default:"0"`
	Gateway string `help:"Privileged I/O backend" enum:"hidapi,unix" default:"hidapi"`
}

func (f *DeviceFlags) id() ratbag.DeviceID {
	return ratbag.DeviceID{
		Bus:     uint16(f.Bus),
		Vendor:  uint16(f.Vendor),
		Product: uint16(f.Product),
		Version: uint16(f.Version),
	}
}

// Open builds a library context wired to the CLI's logging and binds the
// device described by the flags.
func (f *DeviceFlags) Open(rt *Runtime) (*ratbag.Device, error) {
	iface, err := newGateway(f.Gateway)
	if err != nil {
		return nil, err
	}
	ctx, err := ratbag.New(iface,
		ratbag.WithLogHandler(rt.Handler),
		ratbag.WithLogPriority(log.Priority(rt.Level)),
	)
	if err != nil {
		return nil, err
	}
	dev, err := ctx.NewDevice(f.Name, f.Devnode, f.Hidraw, f.id())
	if err != nil {
		return nil, fmt.Errorf("bind %s: %w", f.Hidraw, err)
	}
	return dev, nil
}

// nopInterface backs commands that need a context but never touch hardware.
type nopInterface struct{}

func (nopInterface) OpenRestricted(path string, flags int) (ratbag.Handle, error) {
	return nil, fmt.Errorf("open %s: no hardware access in this command", path)
}

func (nopInterface) CloseRestricted(h ratbag.Handle) {}
