// Package testdriver implements a hardware-free driver for exercising the
// configuration core end to end. It speaks no wire protocol: the "hardware"
// is an in-memory store keyed by the device's hidraw node, so reconnecting
// a device under the same node observes previously committed state.
package testdriver

import (
	"fmt"
	"sync"

	"github.com/mistepien/libratbag/ratbag"
)

// Identities the simulated devices report. ProductSingle is a variant with
// a single profile, selected through the match tag.
const (
	Vendor        uint16 = 0x00aa
	Product       uint16 = 0x00ab
	ProductSingle uint16 = 0x00ac
)

const (
	defaultProfiles = 3
	numButtons      = 8
	defaultDPI      = 800

	minDPI = 100
	maxDPI = 16000
)

type buttonState struct {
	typ    ratbag.ButtonType
	action ratbag.ActionType
}

type profileState struct {
	dpi     int
	buttons []buttonState
}

func (p profileState) clone() profileState {
	out := profileState{dpi: p.dpi, buttons: make([]buttonState, len(p.buttons))}
	copy(out.buttons, p.buttons)
	return out
}

// hardware is the durable state of one simulated device. Committed only;
// staged edits live on the device binding.
type hardware struct {
	active   int
	profiles []profileState
}

func newHardware(numProfiles int) *hardware {
	hw := &hardware{profiles: make([]profileState, numProfiles)}
	for i := range hw.profiles {
		hw.profiles[i].dpi = defaultDPI
		hw.profiles[i].buttons = make([]buttonState, numButtons)
		for j := range hw.profiles[i].buttons {
			hw.profiles[i].buttons[j] = defaultButton(j)
		}
	}
	return hw
}

func defaultButton(index int) buttonState {
	typ := ratbag.ButtonTypeExtra
	switch index {
	case 0:
		typ = ratbag.ButtonTypeLeft
	case 1:
		typ = ratbag.ButtonTypeMiddle
	case 2:
		typ = ratbag.ButtonTypeRight
	case 3:
		typ = ratbag.ButtonTypeThumb
	case 4:
		typ = ratbag.ButtonTypeThumb2
	}
	return buttonState{typ: typ, action: ratbag.ActionTypeButton}
}

// deviceData is the per-binding driver state: the backing store entry plus
// the staged profile edits not yet committed by a profile write.
type deviceData struct {
	hw      *hardware
	pending []profileState
}

// Driver is the test driver. The store simulating device memory is shared
// by every binding and guarded by mu; it is the one piece of deliberately
// global driver state.
type Driver struct {
	mu    sync.Mutex
	store map[string]*hardware
}

// New returns a test driver with an empty backing store.
func New() *Driver {
	return &Driver{store: make(map[string]*hardware)}
}

func init() {
	ratbag.Register(New())
}

func (drv *Driver) Name() string { return "test_driver" }

// DeviceMatches lists the simulated devices on any bus. The match tag, when
// nonzero, overrides the profile count, so one probe implementation serves
// both device shapes.
func (drv *Driver) DeviceMatches() []ratbag.DeviceMatch {
	return []ratbag.DeviceMatch{
		{ID: ratbag.DeviceID{
			Bus:     ratbag.BusAny,
			Vendor:  Vendor,
			Product: Product,
			Version: ratbag.VersionAny,
		}},
		{ID: ratbag.DeviceID{
			Bus:     ratbag.BusAny,
			Vendor:  Vendor,
			Product: ProductSingle,
			Version: ratbag.VersionAny,
		}, Data: 1},
	}
}

func (drv *Driver) Probe(d *ratbag.Device, m ratbag.DeviceMatch) error {
	numProfiles := defaultProfiles
	if m.Data > 0 {
		numProfiles = int(m.Data)
	}

	drv.mu.Lock()
	hw, ok := drv.store[d.HidrawNode()]
	if !ok {
		hw = newHardware(numProfiles)
		drv.store[d.HidrawNode()] = hw
	}
	drv.mu.Unlock()

	dd := &deviceData{
		hw:      hw,
		pending: make([]profileState, len(hw.profiles)),
	}
	for i := range hw.profiles {
		dd.pending[i] = hw.profiles[i].clone()
	}

	d.SetDriverData(dd)
	d.SetProfileCount(len(hw.profiles))
	d.SetButtonCount(numButtons)
	return nil
}

func (drv *Driver) Remove(d *ratbag.Device) {
	d.SetDriverData(nil)
}

func data(d *ratbag.Device) (*deviceData, bool) {
	dd, ok := d.DriverData().(*deviceData)
	return dd, ok
}

func (drv *Driver) ReadProfile(p *ratbag.Profile, index int) {
	dd, ok := data(p.Device())
	if !ok {
		p.Device().Context().LogBugLibratbag("read profile without driver data",
			"device", p.Device().Name())
		return
	}
	drv.mu.Lock()
	p.SetCurrentDPI(dd.hw.profiles[index].dpi)
	drv.mu.Unlock()
}

func (drv *Driver) WriteProfile(p *ratbag.Profile) error {
	dd, ok := data(p.Device())
	if !ok {
		return fmt.Errorf("test_driver: device %s has no driver data", p.Device().Name())
	}
	drv.mu.Lock()
	dd.hw.profiles[p.Index()] = dd.pending[p.Index()].clone()
	drv.mu.Unlock()
	return nil
}

func (drv *Driver) ActiveProfile(d *ratbag.Device) (int, error) {
	dd, ok := data(d)
	if !ok {
		return 0, fmt.Errorf("test_driver: device %s has no driver data", d.Name())
	}
	drv.mu.Lock()
	defer drv.mu.Unlock()
	return dd.hw.active, nil
}

func (drv *Driver) SetActiveProfile(d *ratbag.Device, index int) error {
	dd, ok := data(d)
	if !ok {
		return fmt.Errorf("test_driver: device %s has no driver data", d.Name())
	}
	drv.mu.Lock()
	dd.hw.active = index
	drv.mu.Unlock()
	return nil
}

func (drv *Driver) HasCapability(d *ratbag.Device, c ratbag.Capability) bool {
	switch c {
	case ratbag.CapQueryConfiguration,
		ratbag.CapSwitchableResolution,
		ratbag.CapSwitchableProfile,
		ratbag.CapButtonKey:
		return true
	}
	return false
}

func (drv *Driver) ReadButton(b *ratbag.Button) {
	dd, ok := data(b.Device())
	if !ok {
		b.Device().Context().LogBugLibratbag("read button without driver data",
			"device", b.Device().Name())
		return
	}
	profileIndex := 0
	if b.Profile() != nil {
		profileIndex = b.Profile().Index()
	}
	drv.mu.Lock()
	st := dd.hw.profiles[profileIndex].buttons[b.Index()]
	drv.mu.Unlock()
	b.SetType(st.typ)
	b.SetActionType(st.action)
}

func (drv *Driver) WriteButton(b *ratbag.Button) error {
	dd, ok := data(b.Device())
	if !ok {
		return fmt.Errorf("test_driver: device %s has no driver data", b.Device().Name())
	}
	profileIndex := 0
	if b.Profile() != nil {
		profileIndex = b.Profile().Index()
	}
	// Stage only; durable with the next profile write.
	dd.pending[profileIndex].buttons[b.Index()] = buttonState{
		typ:    b.Type(),
		action: b.ActionType(),
	}
	return nil
}

// WriteResolutionDPI commits the resolution immediately, bypassing the
// profile write transaction.
func (drv *Driver) WriteResolutionDPI(p *ratbag.Profile, dpi int) error {
	if dpi < minDPI || dpi > maxDPI {
		return fmt.Errorf("test_driver: dpi %d out of range [%d, %d]", dpi, minDPI, maxDPI)
	}
	dd, ok := data(p.Device())
	if !ok {
		return fmt.Errorf("test_driver: device %s has no driver data", p.Device().Name())
	}
	drv.mu.Lock()
	dd.hw.profiles[p.Index()].dpi = dpi
	dd.pending[p.Index()].dpi = dpi
	drv.mu.Unlock()
	return nil
}
