// Package ratbag configures vendor gaming mice through pluggable
// protocol drivers.
//
// An embedding application creates a Context with an Interface that
// mediates all hardware handle access, registers one driver per vendor
// protocol, and then binds candidate hardware nodes with NewDevice. A bound
// device exposes its configuration as profiles and buttons, read and written
// through the driver that claimed it.
package ratbag

import (
	"errors"
	"log/slog"
	"os"
)

// Handle is an open hardware handle as produced by the context's Interface.
// The core never interprets it; only drivers do.
type Handle = any

// Interface is the privileged I/O boundary supplied by the embedding
// application. Every hardware node the core or a driver opens goes through
// it, so the application can interpose privilege separation, sandboxing or
// mock I/O. Any policy state lives on the implementation itself.
type Interface interface {
	// OpenRestricted opens the node at path with open(2)-style flags.
	OpenRestricted(path string, flags int) (Handle, error)

	// CloseRestricted releases a handle previously returned by
	// OpenRestricted.
	CloseRestricted(h Handle)
}

// Context is the library root. It owns the registered driver set and the
// diagnostics configuration. A context must outlive every device created
// under it.
//
// A context and the objects below it are not safe for concurrent use; a
// multithreaded application serializes access itself.
type Context struct {
	iface    Interface
	drivers  []Driver
	logLevel *slog.LevelVar
	handler  slog.Handler
	logger   *slog.Logger
}

// Option configures a Context at construction time.
type Option func(*Context)

// WithLogHandler replaces the default stderr text sink. The context's
// priority threshold still applies in front of the handler.
func WithLogHandler(h slog.Handler) Option {
	return func(c *Context) { c.handler = h }
}

// WithLogPriority sets the initial log threshold. The default is
// PriorityError.
func WithLogPriority(p LogPriority) Option {
	return func(c *Context) { c.logLevel.Set(p.level()) }
}

// New creates a context using iface for all privileged I/O. Drivers added
// with Register before the call are picked up in registration order; more
// can be added per context with RegisterDriver.
func New(iface Interface, opts ...Option) (*Context, error) {
	if iface == nil {
		return nil, errors.New("ratbag: no privileged I/O interface supplied")
	}
	c := &Context{
		iface:    iface,
		logLevel: new(slog.LevelVar),
	}
	c.logLevel.Set(PriorityError.level())
	for _, opt := range opts {
		opt(c)
	}
	if c.handler == nil {
		// Wide open; the threshold gate in front is the only filter.
		c.handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	c.logger = slog.New(thresholdHandler{min: c.logLevel, h: c.handler})
	c.drivers = registeredDrivers()
	return c, nil
}

// RegisterDriver appends a driver to this context's probe order, after any
// drivers picked up from the default set.
func (c *Context) RegisterDriver(d Driver) {
	if d == nil {
		c.LogBugClient("RegisterDriver called with nil driver")
		return
	}
	c.drivers = append(c.drivers, d)
}

// Drivers returns the context's drivers in probe order.
func (c *Context) Drivers() []Driver {
	out := make([]Driver, len(c.drivers))
	copy(out, c.drivers)
	return out
}
