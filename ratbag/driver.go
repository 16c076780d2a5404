package ratbag

import "sync"

// Wildcard values for DeviceID fields. A match entry holding one of these
// accepts any value in the corresponding field.
const (
	BusAny     uint16 = 0xffff
	VendorAny  uint16 = 0xffff
	ProductAny uint16 = 0xffff
	VersionAny uint16 = 0xffff
)

// DeviceID is the identity tuple a hardware node reports: which bus it sits
// on and the vendor/product/version triple from its descriptor.
type DeviceID struct {
	Bus     uint16
	Vendor  uint16
	Product uint16
	Version uint16
}

// DeviceMatch is one entry of a driver's supported-device table. Data is a
// driver-private tag carried through to Probe, typically used to select a
// protocol variant shared by several entries.
type DeviceMatch struct {
	ID   DeviceID
	Data uint64
}

func fieldMatches(want, got uint16) bool {
	return want == 0xffff || want == got
}

func (m DeviceMatch) matches(id DeviceID) bool {
	return fieldMatches(m.ID.Bus, id.Bus) &&
		fieldMatches(m.ID.Vendor, id.Vendor) &&
		fieldMatches(m.ID.Product, id.Product) &&
		fieldMatches(m.ID.Version, id.Version)
}

// Match scans the driver's table in order and returns the first entry whose
// fields each equal the corresponding identity field or hold a wildcard.
// A driver listing both a specific and a catch-all entry for the same device
// must list the specific one first; the scan does not reorder.
func Match(drv Driver, id DeviceID) (DeviceMatch, bool) {
	for _, m := range drv.DeviceMatches() {
		if m.matches(id) {
			return m, true
		}
	}
	return DeviceMatch{}, false
}

// Driver is a vendor-protocol implementation. One driver instance is shared
// by every device it binds; per-device state belongs in the device's driver
// data slot, attached during Probe.
type Driver interface {
	// Name returns the human-readable driver name.
	Name() string

	// DeviceMatches returns the ordered table of devices this driver
	// supports. The table is immutable after registration.
	DeviceMatches() []DeviceMatch

	// Probe decides whether this driver handles the device. Return nil to
	// accept the binding, ErrNoSuchDevice to decline and let other drivers
	// probe, or any other error to stop the probe sequence entirely.
	Probe(d *Device, m DeviceMatch) error

	// Remove is called exactly once, right before the device releases its
	// hardware handles. Driver state attached in Probe should be dropped
	// here.
	Remove(d *Device)

	// ReadProfile populates the profile from the driver's cached device
	// state. Buttons are not populated here; they are read lazily when the
	// caller asks for them.
	ReadProfile(p *Profile, index int)

	// WriteProfile commits the in-memory profile, including any buttons
	// staged into it, to the hardware.
	WriteProfile(p *Profile) error

	// ActiveProfile returns the index of the profile the hardware currently
	// considers active. It is fundamentally racy: the device may switch
	// profiles between the query and any use of the result.
	ActiveProfile(d *Device) (int, error)

	// SetActiveProfile marks a previously written profile as active. The
	// caller commits the profile with WriteProfile first; there is no need
	// to re-send its contents here.
	SetActiveProfile(d *Device, index int) error

	// HasCapability reports whether the device supports the capability.
	// Answered from state cached at probe time, without hardware I/O.
	HasCapability(d *Device, c Capability) bool

	// ReadButton fills in the button from the driver's cached state. For
	// devices without profiles the button's Profile() is nil.
	ReadButton(b *Button)

	// WriteButton stages the button into its owning profile's
	// representation. It never touches hardware on its own; the staged data
	// becomes durable with the next WriteProfile.
	WriteButton(b *Button) error
}

// ResolutionWriter is implemented by drivers advertising
// CapSwitchableResolution. WriteResolutionDPI commits the new sensor
// resolution to the hardware immediately, independent of WriteProfile.
type ResolutionWriter interface {
	WriteResolutionDPI(p *Profile, dpi int) error
}

var (
	registryMu sync.Mutex
	registry   []Driver
)

// Register adds a driver to the default driver set picked up by New.
// Driver packages call this from their init functions; registration order
// is probe order.
func Register(d Driver) {
	if d == nil {
		panic("ratbag: Register called with nil driver")
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = append(registry, d)
}

func registeredDrivers() []Driver {
	registryMu.Lock()
	defer registryMu.Unlock()
	out := make([]Driver, len(registry))
	copy(out, registry)
	return out
}
