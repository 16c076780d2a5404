// Package testing provides shared mocks for exercising the core against
// scripted drivers and a recording privileged I/O interface.
package testing

import (
	"github.com/mistepien/libratbag/ratbag"
)

// MockDriver is a scriptable ratbag.Driver. Unset hooks fall back to benign
// defaults: Probe accepts, reads are no-ops, writes succeed.
type MockDriver struct {
	DriverName string
	Table      []ratbag.DeviceMatch

	OnProbe            func(d *ratbag.Device, m ratbag.DeviceMatch) error
	OnRemove           func(d *ratbag.Device)
	OnReadProfile      func(p *ratbag.Profile, index int)
	OnWriteProfile     func(p *ratbag.Profile) error
	OnActiveProfile    func(d *ratbag.Device) (int, error)
	OnSetActiveProfile func(d *ratbag.Device, index int) error
	OnHasCapability    func(d *ratbag.Device, c ratbag.Capability) bool
	OnReadButton       func(b *ratbag.Button)
	OnWriteButton      func(b *ratbag.Button) error
}

func (m *MockDriver) Name() string {
	if m.DriverName == "" {
		return "mock"
	}
	return m.DriverName
}

func (m *MockDriver) DeviceMatches() []ratbag.DeviceMatch { return m.Table }

func (m *MockDriver) Probe(d *ratbag.Device, match ratbag.DeviceMatch) error {
	if m.OnProbe != nil {
		return m.OnProbe(d, match)
	}
	return nil
}

func (m *MockDriver) Remove(d *ratbag.Device) {
	if m.OnRemove != nil {
		m.OnRemove(d)
	}
}

func (m *MockDriver) ReadProfile(p *ratbag.Profile, index int) {
	if m.OnReadProfile != nil {
		m.OnReadProfile(p, index)
	}
}

func (m *MockDriver) WriteProfile(p *ratbag.Profile) error {
	if m.OnWriteProfile != nil {
		return m.OnWriteProfile(p)
	}
	return nil
}

func (m *MockDriver) ActiveProfile(d *ratbag.Device) (int, error) {
	if m.OnActiveProfile != nil {
		return m.OnActiveProfile(d)
	}
	return 0, nil
}

func (m *MockDriver) SetActiveProfile(d *ratbag.Device, index int) error {
	if m.OnSetActiveProfile != nil {
		return m.OnSetActiveProfile(d, index)
	}
	return nil
}

func (m *MockDriver) HasCapability(d *ratbag.Device, c ratbag.Capability) bool {
	if m.OnHasCapability != nil {
		return m.OnHasCapability(d, c)
	}
	return false
}

func (m *MockDriver) ReadButton(b *ratbag.Button) {
	if m.OnReadButton != nil {
		m.OnReadButton(b)
	}
}

func (m *MockDriver) WriteButton(b *ratbag.Button) error {
	if m.OnWriteButton != nil {
		return m.OnWriteButton(b)
	}
	return nil
}

// MockResolutionDriver adds the optional resolution writer to MockDriver so
// tests can cover drivers that advertise switchable resolution.
type MockResolutionDriver struct {
	MockDriver
	OnWriteResolutionDPI func(p *ratbag.Profile, dpi int) error
}

func (m *MockResolutionDriver) WriteResolutionDPI(p *ratbag.Profile, dpi int) error {
	if m.OnWriteResolutionDPI != nil {
		return m.OnWriteResolutionDPI(p, dpi)
	}
	return nil
}

// RecordingInterface is a ratbag.Interface that hands out fake handles and
// records every open and close in order.
type RecordingInterface struct {
	Opens   []string
	Flags   []int
	Closes  []ratbag.Handle
	OpenErr error

	next int
}

func (r *RecordingInterface) OpenRestricted(path string, flags int) (ratbag.Handle, error) {
	if r.OpenErr != nil {
		return nil, r.OpenErr
	}
	r.next++
	r.Opens = append(r.Opens, path)
	r.Flags = append(r.Flags, flags)
	return r.next, nil
}

func (r *RecordingInterface) CloseRestricted(h ratbag.Handle) {
	r.Closes = append(r.Closes, h)
}
