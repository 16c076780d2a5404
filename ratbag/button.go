package ratbag

import "fmt"

// Button is one control slot, addressed by a dense zero-based index shared
// across all profiles of a device. Buttons belong to a profile, except on
// devices without profiles, where they hang off the device and Profile()
// returns nil.
type Button struct {
	profile *Profile // nil for devices without profiles
	device  *Device
	index   int

	typ    ButtonType
	action ActionType
}

// Button returns the button at index within this profile, creating and
// populating it on first access.
func (p *Profile) Button(index int) (*Button, error) {
	d := p.device
	if d.closed {
		return nil, ErrDeviceClosed
	}
	if index < 0 || index >= d.numButtons {
		d.ctx.LogBugClient("button index out of range",
			"device", d.name, "index", index, "buttons", d.numButtons)
		return nil, fmt.Errorf("button %d: %w", index, ErrIndexOutOfRange)
	}
	if b := p.buttons[index]; b != nil {
		return b, nil
	}
	b := &Button{profile: p, device: d, index: index}
	d.driver.ReadButton(b)
	p.buttons[index] = b
	return b, nil
}

// Button returns the button at index for a device without profiles. Devices
// that store profiles address buttons through Profile.Button instead.
func (d *Device) Button(index int) (*Button, error) {
	if d.closed {
		return nil, ErrDeviceClosed
	}
	if d.numProfiles > 0 {
		d.ctx.LogBugClient("device stores profiles; address buttons through a profile",
			"device", d.name)
		return nil, fmt.Errorf("button %d: %w", index, ErrIndexOutOfRange)
	}
	if index < 0 || index >= d.numButtons {
		d.ctx.LogBugClient("button index out of range",
			"device", d.name, "index", index, "buttons", d.numButtons)
		return nil, fmt.Errorf("button %d: %w", index, ErrIndexOutOfRange)
	}
	if d.buttons == nil {
		d.buttons = make([]*Button, d.numButtons)
	}
	if b := d.buttons[index]; b != nil {
		return b, nil
	}
	b := &Button{device: d, index: index}
	d.driver.ReadButton(b)
	d.buttons[index] = b
	return b, nil
}

// Index returns the button's index.
func (b *Button) Index() int { return b.index }

// Profile returns the owning profile, or nil on devices without profiles.
func (b *Button) Profile() *Profile { return b.profile }

// Device returns the device the button ultimately belongs to.
func (b *Button) Device() *Device { return b.device }

// Type returns the physical classification of the button.
func (b *Button) Type() ButtonType { return b.typ }

// SetType sets the physical classification. Called by drivers while
// populating the button.
func (b *Button) SetType(t ButtonType) { b.typ = t }

// ActionType returns what the button is currently mapped to do.
func (b *Button) ActionType() ActionType { return b.action }

// SetActionType sets the button's mapping classification.
func (b *Button) SetActionType(t ActionType) { b.action = t }

// Write stages the button into its owning profile's representation. The
// staged mapping reaches the hardware only with the profile's next Write;
// dropping the profile without committing discards it.
func (b *Button) Write() error {
	if b.device.closed {
		return ErrDeviceClosed
	}
	return b.device.driver.WriteButton(b)
}
