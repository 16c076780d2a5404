package ratbag

import "errors"

// Sentinel errors returned by the core. Drivers return ErrNoSuchDevice from
// Probe to decline a device without aborting the probe sequence; any other
// error from Probe stops it.
var (
	// ErrNoSuchDevice is the declination signal: the driver does not handle
	// this device and probing should continue with the next driver.
	ErrNoSuchDevice = errors.New("no such device")

	// ErrNoDriverAvailable is returned when every registered driver either
	// did not match or declined the device.
	ErrNoDriverAvailable = errors.New("no driver available")

	// ErrIndexOutOfRange is returned for profile or button indices outside
	// the range the bound driver reported for the device.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrCapabilityMissing is returned when an operation requires a
	// capability the bound driver does not advertise (or advertises but
	// fails to implement).
	ErrCapabilityMissing = errors.New("capability not supported")

	// ErrDeviceClosed is returned for operations on a device after Close.
	ErrDeviceClosed = errors.New("device is closed")
)
