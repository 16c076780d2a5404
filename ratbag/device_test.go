package ratbag_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mocks "github.com/mistepien/libratbag/internal/testing"
	"github.com/mistepien/libratbag/ratbag"
)

var anyID = ratbag.DeviceID{
	Bus:     ratbag.BusAny,
	Vendor:  ratbag.VendorAny,
	Product: ratbag.ProductAny,
	Version: ratbag.VersionAny,
}

func newContext(t *testing.T, drivers ...ratbag.Driver) (*ratbag.Context, *mocks.RecordingInterface) {
	t.Helper()
	iface := &mocks.RecordingInterface{}
	ctx, err := ratbag.New(iface)
	require.NoError(t, err)
	for _, d := range drivers {
		ctx.RegisterDriver(d)
	}
	return ctx, iface
}

func TestNewDeviceProbeOrder(t *testing.T) {
	var order []string
	probe := func(name string, result error) *mocks.MockDriver {
		return &mocks.MockDriver{
			DriverName: name,
			Table:      []ratbag.DeviceMatch{{ID: anyID}},
			OnProbe: func(d *ratbag.Device, m ratbag.DeviceMatch) error {
				order = append(order, name)
				return result
			},
		}
	}

	t.Run("stops at first acceptance", func(t *testing.T) {
		order = nil
		ctx, _ := newContext(t,
			probe("a", ratbag.ErrNoSuchDevice),
			probe("b", nil),
			probe("c", nil),
		)
		dev, err := ctx.NewDevice("m", "", "hidraw0", ratbag.DeviceID{})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, order)
		assert.Equal(t, "b", dev.Driver().Name())
	})

	t.Run("declination continues probing", func(t *testing.T) {
		order = nil
		ctx, _ := newContext(t,
			probe("a", ratbag.ErrNoSuchDevice),
			probe("b", ratbag.ErrNoSuchDevice),
		)
		_, err := ctx.NewDevice("m", "", "hidraw0", ratbag.DeviceID{})
		assert.ErrorIs(t, err, ratbag.ErrNoDriverAvailable)
		assert.Equal(t, []string{"a", "b"}, order)
	})

	t.Run("hard error aborts probing", func(t *testing.T) {
		order = nil
		boom := errors.New("bus stalled")
		ctx, _ := newContext(t,
			probe("a", boom),
			probe("b", nil),
		)
		_, err := ctx.NewDevice("m", "", "hidraw0", ratbag.DeviceID{})
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, []string{"a"}, order)
	})

	t.Run("non-matching drivers are never probed", func(t *testing.T) {
		order = nil
		noMatch := probe("never", nil)
		noMatch.Table = []ratbag.DeviceMatch{
			{ID: ratbag.DeviceID{Bus: 0x5, Vendor: 0x5, Product: 0x5, Version: 0x5}},
		}
		ctx, _ := newContext(t, noMatch, probe("yes", nil))
		dev, err := ctx.NewDevice("m", "", "hidraw0", ratbag.DeviceID{Bus: 1, Vendor: 2, Product: 3, Version: 4})
		require.NoError(t, err)
		assert.Equal(t, []string{"yes"}, order)
		assert.Equal(t, "yes", dev.Driver().Name())
	})
}

// The driver-table scenario from the probe protocol: a vendor-specific
// driver listed before a catch-all one is tried first, and its declination
// hands the device to the catch-all.
func TestNewDeviceSpecificThenCatchAll(t *testing.T) {
	var order []string
	driverA := &mocks.MockDriver{
		DriverName: "a",
		Table: []ratbag.DeviceMatch{
			{ID: ratbag.DeviceID{Bus: ratbag.BusAny, Vendor: 0x1, Product: ratbag.ProductAny, Version: ratbag.VersionAny}},
		},
		OnProbe: func(d *ratbag.Device, m ratbag.DeviceMatch) error {
			order = append(order, "a")
			return ratbag.ErrNoSuchDevice
		},
	}
	driverB := &mocks.MockDriver{
		DriverName: "b",
		Table:      []ratbag.DeviceMatch{{ID: anyID}},
		OnProbe: func(d *ratbag.Device, m ratbag.DeviceMatch) error {
			order = append(order, "b")
			return nil
		},
	}

	ctx, _ := newContext(t, driverA, driverB)
	dev, err := ctx.NewDevice("m", "", "hidraw0", ratbag.DeviceID{Vendor: 0x1, Product: 0x2})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, order)
	assert.Equal(t, "b", dev.Driver().Name())
}

func TestDeviceCloseOrdering(t *testing.T) {
	iface := &mocks.RecordingInterface{}
	removeCalls := 0
	drv := &mocks.MockDriver{
		Table: []ratbag.DeviceMatch{{ID: anyID}},
		OnProbe: func(d *ratbag.Device, m ratbag.DeviceMatch) error {
			_, err := d.OpenHidraw(0)
			return err
		},
		OnRemove: func(d *ratbag.Device) {
			removeCalls++
			// The handle is still held when Remove runs; the gateway close
			// comes after.
			assert.Empty(t, iface.Closes)
		},
	}
	ctx, err := ratbag.New(iface)
	require.NoError(t, err)
	ctx.RegisterDriver(drv)

	dev, err := ctx.NewDevice("m", "", "/dev/hidraw3", ratbag.DeviceID{})
	require.NoError(t, err)
	assert.Equal(t, []string{"/dev/hidraw3"}, iface.Opens)

	require.NoError(t, dev.Close())
	assert.Equal(t, 1, removeCalls)
	assert.Len(t, iface.Closes, 1)

	// A second close is rejected and does not run Remove again.
	assert.ErrorIs(t, dev.Close(), ratbag.ErrDeviceClosed)
	assert.Equal(t, 1, removeCalls)
	assert.Len(t, iface.Closes, 1)
}

func TestDeviceClosedOperationsFail(t *testing.T) {
	drv := &mocks.MockDriver{
		Table: []ratbag.DeviceMatch{{ID: anyID}},
		OnProbe: func(d *ratbag.Device, m ratbag.DeviceMatch) error {
			d.SetProfileCount(1)
			return nil
		},
	}
	ctx, _ := newContext(t, drv)
	dev, err := ctx.NewDevice("m", "", "hidraw0", ratbag.DeviceID{})
	require.NoError(t, err)
	require.NoError(t, dev.Close())

	_, err = dev.Profile(0)
	assert.ErrorIs(t, err, ratbag.ErrDeviceClosed)
	_, err = dev.ActiveProfile()
	assert.ErrorIs(t, err, ratbag.ErrDeviceClosed)
	assert.ErrorIs(t, dev.SetActiveProfile(0), ratbag.ErrDeviceClosed)
}

func TestDeviceProfileIndexBounds(t *testing.T) {
	reads := 0
	drv := &mocks.MockDriver{
		Table: []ratbag.DeviceMatch{{ID: anyID}},
		OnProbe: func(d *ratbag.Device, m ratbag.DeviceMatch) error {
			d.SetProfileCount(3)
			return nil
		},
		OnReadProfile: func(p *ratbag.Profile, index int) { reads++ },
	}
	ctx, _ := newContext(t, drv)
	dev, err := ctx.NewDevice("m", "", "hidraw0", ratbag.DeviceID{})
	require.NoError(t, err)

	_, err = dev.Profile(5)
	assert.ErrorIs(t, err, ratbag.ErrIndexOutOfRange)
	_, err = dev.Profile(-1)
	assert.ErrorIs(t, err, ratbag.ErrIndexOutOfRange)
	// The rejected accesses had no side effects.
	assert.Zero(t, reads)

	p, err := dev.Profile(2)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Index())
	assert.Equal(t, 1, reads)
}

func TestDeviceProfilesDense(t *testing.T) {
	drv := &mocks.MockDriver{
		Table: []ratbag.DeviceMatch{{ID: anyID}},
		OnProbe: func(d *ratbag.Device, m ratbag.DeviceMatch) error {
			d.SetProfileCount(4)
			return nil
		},
	}
	ctx, _ := newContext(t, drv)
	dev, err := ctx.NewDevice("m", "", "hidraw0", ratbag.DeviceID{})
	require.NoError(t, err)

	// Materialize out of order; indices stay dense and stable.
	for _, i := range []int{3, 0, 2, 1} {
		p, err := dev.Profile(i)
		require.NoError(t, err)
		assert.Equal(t, i, p.Index())
	}
	for i := 0; i < 4; i++ {
		p, err := dev.Profile(i)
		require.NoError(t, err)
		assert.Equal(t, i, p.Index())
		assert.Same(t, dev, p.Device())
	}
}

func TestDeviceActiveProfileIsPureQuery(t *testing.T) {
	var setCalls int
	drv := &mocks.MockDriver{
		Table: []ratbag.DeviceMatch{{ID: anyID}},
		OnProbe: func(d *ratbag.Device, m ratbag.DeviceMatch) error {
			d.SetProfileCount(2)
			return nil
		},
		OnActiveProfile:    func(d *ratbag.Device) (int, error) { return 1, nil },
		OnSetActiveProfile: func(d *ratbag.Device, index int) error { setCalls++; return nil },
	}
	ctx, _ := newContext(t, drv)
	dev, err := ctx.NewDevice("m", "", "hidraw0", ratbag.DeviceID{})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		active, err := dev.ActiveProfile()
		require.NoError(t, err)
		assert.Equal(t, 1, active)
	}
	assert.Zero(t, setCalls)
}

func TestDeviceSetActiveProfileBounds(t *testing.T) {
	drv := &mocks.MockDriver{
		Table: []ratbag.DeviceMatch{{ID: anyID}},
		OnProbe: func(d *ratbag.Device, m ratbag.DeviceMatch) error {
			d.SetProfileCount(2)
			return nil
		},
	}
	ctx, _ := newContext(t, drv)
	dev, err := ctx.NewDevice("m", "", "hidraw0", ratbag.DeviceID{})
	require.NoError(t, err)

	assert.ErrorIs(t, dev.SetActiveProfile(2), ratbag.ErrIndexOutOfRange)
	assert.NoError(t, dev.SetActiveProfile(1))
}

func TestDeviceDriverData(t *testing.T) {
	type state struct{ n int }
	drv := &mocks.MockDriver{
		Table: []ratbag.DeviceMatch{{ID: anyID}},
		OnProbe: func(d *ratbag.Device, m ratbag.DeviceMatch) error {
			d.SetDriverData(&state{n: 42})
			return nil
		},
		OnRemove: func(d *ratbag.Device) {
			d.SetDriverData(nil)
		},
	}
	ctx, _ := newContext(t, drv)
	dev, err := ctx.NewDevice("m", "", "hidraw0", ratbag.DeviceID{})
	require.NoError(t, err)

	st, ok := dev.DriverData().(*state)
	require.True(t, ok)
	assert.Equal(t, 42, st.n)

	require.NoError(t, dev.Close())
	assert.Nil(t, dev.DriverData())
}

func TestNewDeviceMatchTagReachesProbe(t *testing.T) {
	var got uint64
	drv := &mocks.MockDriver{
		Table: []ratbag.DeviceMatch{
			{ID: ratbag.DeviceID{Bus: ratbag.BusAny, Vendor: 0x2, Product: ratbag.ProductAny, Version: ratbag.VersionAny}, Data: 10},
			{ID: anyID, Data: 20},
		},
		OnProbe: func(d *ratbag.Device, m ratbag.DeviceMatch) error {
			got = m.Data
			return nil
		},
	}
	ctx, _ := newContext(t, drv)
	_, err := ctx.NewDevice("m", "", "hidraw0", ratbag.DeviceID{Vendor: 0x2})
	require.NoError(t, err)
	assert.Equal(t, uint64(10), got)
}
