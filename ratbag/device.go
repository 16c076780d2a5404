package ratbag

import (
	"errors"
	"fmt"
)

// Device is one physical peripheral bound to exactly one driver. The binding
// is decided by probing at creation time and never changes afterwards.
type Device struct {
	ctx        *Context
	name       string
	devNode    string
	hidrawNode string
	id         DeviceID

	hidraw     Handle
	hidrawOpen bool

	driver Driver

	numProfiles int
	profiles    []*Profile
	numButtons  int
	buttons     []*Button // devices without profiles only

	drvData any
	closed  bool
}

// NewDevice creates a device for the hardware node at devNode, with
// hidrawNode as its raw HID channel, and probes the registered drivers for
// one that claims it.
//
// Each driver whose match table covers id is probed in registration order.
// A driver declining with ErrNoSuchDevice passes the device on to the next;
// any other probe error aborts and is returned as is, wrapped with the
// driver name. When no driver accepts, NewDevice fails with
// ErrNoDriverAvailable.
func (c *Context) NewDevice(name, devNode, hidrawNode string, id DeviceID) (*Device, error) {
	d := &Device{
		ctx:        c,
		name:       name,
		devNode:    devNode,
		hidrawNode: hidrawNode,
		id:         id,
	}
	if err := d.bind(id); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Device) bind(id DeviceID) error {
	for _, drv := range d.ctx.drivers {
		m, ok := Match(drv, id)
		if !ok {
			continue
		}
		err := drv.Probe(d, m)
		if err == nil {
			d.driver = drv
			d.ctx.logger.Debug("device bound",
				"device", d.name, "driver", drv.Name())
			return nil
		}
		if errors.Is(err, ErrNoSuchDevice) {
			d.ctx.logger.Debug("driver declined device",
				"device", d.name, "driver", drv.Name())
			continue
		}
		return fmt.Errorf("probe %s: %w", drv.Name(), err)
	}
	d.ctx.logger.Info("no driver found", "device", d.name,
		"vendor", fmt.Sprintf("%04x", id.Vendor),
		"product", fmt.Sprintf("%04x", id.Product))
	return ErrNoDriverAvailable
}

// Close releases the device: the driver's Remove hook runs exactly once,
// then any handle still open is released through the context's Interface.
// Profiles and buttons of the device must not be used afterwards.
func (d *Device) Close() error {
	if d.closed {
		d.ctx.LogBugClient("Close on already closed device", "device", d.name)
		return ErrDeviceClosed
	}
	d.closed = true
	if d.driver != nil {
		d.driver.Remove(d)
	}
	if d.hidrawOpen {
		d.ctx.iface.CloseRestricted(d.hidraw)
		d.hidraw = nil
		d.hidrawOpen = false
	}
	d.profiles = nil
	d.buttons = nil
	return nil
}

// Name returns the device's display name.
func (d *Device) Name() string { return d.name }

// ID returns the identity tuple the hardware reported at creation.
func (d *Device) ID() DeviceID { return d.id }

// Context returns the owning context.
func (d *Device) Context() *Context { return d.ctx }

// Driver returns the driver bound to this device.
func (d *Device) Driver() Driver { return d.driver }

// DevNode returns the device node path supplied at creation.
func (d *Device) DevNode() string { return d.devNode }

// HidrawNode returns the raw HID node path supplied at creation.
func (d *Device) HidrawNode() string { return d.hidrawNode }

// OpenHidraw opens the device's hidraw node through the privileged
// interface and keeps the handle on the device, where Close releases it.
// Typically called by the driver during Probe.
func (d *Device) OpenHidraw(flags int) (Handle, error) {
	if d.closed {
		return nil, ErrDeviceClosed
	}
	h, err := d.ctx.iface.OpenRestricted(d.hidrawNode, flags)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", d.hidrawNode, err)
	}
	if d.hidrawOpen {
		d.ctx.iface.CloseRestricted(d.hidraw)
	}
	d.hidraw = h
	d.hidrawOpen = true
	return h, nil
}

// Hidraw returns the open hidraw handle, if any.
func (d *Device) Hidraw() (Handle, bool) {
	return d.hidraw, d.hidrawOpen
}

// OpenPath opens an arbitrary node through the privileged interface. The
// caller owns the handle and releases it with ClosePath. Drivers use this
// for auxiliary nodes beyond the device's own hidraw.
func (d *Device) OpenPath(path string, flags int) (Handle, error) {
	return d.ctx.iface.OpenRestricted(path, flags)
}

// ClosePath releases a handle obtained with OpenPath.
func (d *Device) ClosePath(h Handle) {
	d.ctx.iface.CloseRestricted(h)
}

// SetProfileCount declares how many profiles the device stores. Called by
// the driver during Probe; profiles already materialized survive up to the
// new count.
func (d *Device) SetProfileCount(n int) {
	if n < 0 {
		d.ctx.LogBugLibratbag("negative profile count", "device", d.name, "count", n)
		return
	}
	profiles := make([]*Profile, n)
	copy(profiles, d.profiles)
	d.numProfiles = n
	d.profiles = profiles
}

// NumProfiles returns the number of profiles the device stores. Zero means
// the device has no profile concept; buttons then hang off the device
// directly.
func (d *Device) NumProfiles() int { return d.numProfiles }

// SetButtonCount declares how many physical buttons the device has, shared
// across all profiles. Called by the driver during Probe.
func (d *Device) SetButtonCount(n int) {
	if n < 0 {
		d.ctx.LogBugLibratbag("negative button count", "device", d.name, "count", n)
		return
	}
	d.numButtons = n
}

// NumButtons returns the number of physical buttons on the device.
func (d *Device) NumButtons() int { return d.numButtons }

// SetDriverData attaches driver-private state to the device. Only the bound
// driver interprets it; it is dropped in the driver's Remove hook.
func (d *Device) SetDriverData(data any) { d.drvData = data }

// DriverData returns the driver-private state attached with SetDriverData.
func (d *Device) DriverData() any { return d.drvData }

// HasCapability reports whether the bound driver supports the capability
// for this device. Pure query, no hardware I/O.
func (d *Device) HasCapability(c Capability) bool {
	if d.driver == nil {
		return false
	}
	return d.driver.HasCapability(d, c)
}

// ActiveProfile queries which profile the hardware currently considers
// active. The result is advisory: the device may switch profiles at any
// time, so callers re-verify before acting on it.
func (d *Device) ActiveProfile() (int, error) {
	if d.closed {
		return 0, ErrDeviceClosed
	}
	return d.driver.ActiveProfile(d)
}

// SetActiveProfile makes the profile at index the active one. The profile
// must have been committed with Profile.Write beforehand; the driver does
// not re-send its contents.
func (d *Device) SetActiveProfile(index int) error {
	if d.closed {
		return ErrDeviceClosed
	}
	if index < 0 || index >= d.numProfiles {
		d.ctx.LogBugClient("SetActiveProfile index out of range",
			"device", d.name, "index", index, "profiles", d.numProfiles)
		return fmt.Errorf("profile %d: %w", index, ErrIndexOutOfRange)
	}
	return d.driver.SetActiveProfile(d, index)
}
