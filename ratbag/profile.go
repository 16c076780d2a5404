package ratbag

import "fmt"

// Profile is one configuration slot on a device, addressed by a dense
// zero-based index. Profiles are materialized lazily: the first access to an
// index asks the driver to populate it from its cached device state.
// Nothing is written back implicitly; changes reach the hardware only
// through Write.
type Profile struct {
	device *Device
	index  int

	buttons []*Button

	dpi      int
	drvData  any
	userData any
}

// Profile returns the profile at index, creating and populating it on first
// access. Indices outside [0, NumProfiles) are rejected without side
// effects.
func (d *Device) Profile(index int) (*Profile, error) {
	if d.closed {
		return nil, ErrDeviceClosed
	}
	if index < 0 || index >= d.numProfiles {
		d.ctx.LogBugClient("profile index out of range",
			"device", d.name, "index", index, "profiles", d.numProfiles)
		return nil, fmt.Errorf("profile %d: %w", index, ErrIndexOutOfRange)
	}
	if p := d.profiles[index]; p != nil {
		return p, nil
	}
	p := &Profile{
		device:  d,
		index:   index,
		buttons: make([]*Button, d.numButtons),
	}
	d.driver.ReadProfile(p, index)
	d.profiles[index] = p
	return p, nil
}

// Index returns the profile's index on its device.
func (p *Profile) Index() int { return p.index }

// Device returns the owning device.
func (p *Profile) Device() *Device { return p.device }

// CurrentDPI returns the sensor resolution cached for this profile. The
// cache is filled by the driver when the profile is read and updated on a
// successful SetResolutionDPI.
func (p *Profile) CurrentDPI() int { return p.dpi }

// SetCurrentDPI updates the cached sensor resolution. Called by drivers
// while populating or committing a profile; it does not touch hardware.
func (p *Profile) SetCurrentDPI(dpi int) { p.dpi = dpi }

// SetResolutionDPI commits a new sensor resolution for this profile to the
// hardware immediately, independent of Write. The device must advertise
// CapSwitchableResolution.
func (p *Profile) SetResolutionDPI(dpi int) error {
	d := p.device
	if d.closed {
		return ErrDeviceClosed
	}
	if !d.driver.HasCapability(d, CapSwitchableResolution) {
		return fmt.Errorf("driver %s: %w", d.driver.Name(), ErrCapabilityMissing)
	}
	w, ok := d.driver.(ResolutionWriter)
	if !ok {
		// Advertising the capability obliges the driver to implement
		// ResolutionWriter.
		d.ctx.LogBugClient("driver advertises switchable-resolution but does not implement it",
			"driver", d.driver.Name())
		return fmt.Errorf("driver %s: %w", d.driver.Name(), ErrCapabilityMissing)
	}
	if err := w.WriteResolutionDPI(p, dpi); err != nil {
		return err
	}
	p.dpi = dpi
	return nil
}

// Write commits the in-memory profile, including buttons staged into it, to
// the hardware in one transaction.
func (p *Profile) Write() error {
	if p.device.closed {
		return ErrDeviceClosed
	}
	return p.device.driver.WriteProfile(p)
}

// SetActive makes this profile the active one on the device. Commit pending
// changes with Write first.
func (p *Profile) SetActive() error {
	return p.device.SetActiveProfile(p.index)
}

// SetDriverData attaches driver-private state to the profile.
func (p *Profile) SetDriverData(data any) { p.drvData = data }

// DriverData returns the driver-private state attached with SetDriverData.
func (p *Profile) DriverData() any { return p.drvData }

// SetUserData attaches caller-owned state to the profile. The library never
// touches it.
func (p *Profile) SetUserData(data any) { p.userData = data }

// UserData returns the caller-owned state attached with SetUserData.
func (p *Profile) UserData() any { return p.userData }
