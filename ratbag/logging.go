package ratbag

import (
	"context"
	"log/slog"
	"strings"
)

// LogPriority is the context-wide diagnostics threshold. Values follow the
// usual syslog-ish ordering; messages below the threshold are dropped before
// they reach the sink.
type LogPriority int

const (
	PriorityDebug LogPriority = 10
	PriorityInfo  LogPriority = 20
	PriorityError LogPriority = 30
)

func (p LogPriority) String() string {
	switch p {
	case PriorityDebug:
		return "debug"
	case PriorityInfo:
		return "info"
	case PriorityError:
		return "error"
	default:
		return "unknown"
	}
}

func (p LogPriority) level() slog.Level {
	switch p {
	case PriorityDebug:
		return slog.LevelDebug
	case PriorityInfo:
		return slog.LevelInfo
	default:
		return slog.LevelError
	}
}

// thresholdHandler gates a sink behind the context's mutable priority
// threshold, so SetLogPriority takes effect without rebuilding the logger.
type thresholdHandler struct {
	min *slog.LevelVar
	h   slog.Handler
}

func (t thresholdHandler) Enabled(ctx context.Context, level slog.Level) bool {
	if level < t.min.Level() {
		return false
	}
	return t.h.Enabled(ctx, level)
}

func (t thresholdHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level < t.min.Level() {
		return nil
	}
	return t.h.Handle(ctx, r)
}

func (t thresholdHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return thresholdHandler{min: t.min, h: t.h.WithAttrs(attrs)}
}

func (t thresholdHandler) WithGroup(name string) slog.Handler {
	return thresholdHandler{min: t.min, h: t.h.WithGroup(name)}
}

// SetLogPriority changes the diagnostics threshold for this context and all
// objects below it.
func (c *Context) SetLogPriority(p LogPriority) {
	c.logLevel.Set(p.level())
}

// LogPriority returns the current diagnostics threshold.
func (c *Context) LogPriority() LogPriority {
	switch c.logLevel.Level() {
	case slog.LevelDebug:
		return PriorityDebug
	case slog.LevelInfo:
		return PriorityInfo
	default:
		return PriorityError
	}
}

// Logger returns the context's logger. Drivers use it for their own
// diagnostics so driver output honors the context threshold and sink.
func (c *Context) Logger() *slog.Logger {
	return c.logger
}

// LogBuffer logs a hex dump of buf under the given header. Used by drivers
// to trace raw reports going to and coming from the hardware.
func (c *Context) LogBuffer(p LogPriority, header string, buf []byte) {
	c.logger.Log(context.Background(), p.level(), header,
		"len", len(buf), "hex", hexDump(buf))
}

// The three bug variants resolve to the same error priority but carry
// distinct prefixes for triage: unexpected hardware/firmware responses,
// internal contract violations, and caller misuse.

// LogBugKernel reports an unexpected response from the kernel or the device
// firmware.
func (c *Context) LogBugKernel(msg string, args ...any) {
	c.logger.Error("kernel bug: "+msg, args...)
}

// LogBugLibratbag reports an internal contract violation in the library or
// a driver.
func (c *Context) LogBugLibratbag(msg string, args ...any) {
	c.logger.Error("libratbag bug: "+msg, args...)
}

// LogBugClient reports misuse of the library by the embedding application.
func (c *Context) LogBugClient(msg string, args ...any) {
	c.logger.Error("client bug: "+msg, args...)
}

func hexDump(buf []byte) string {
	const hexdigits = "0123456789abcdef"
	var b strings.Builder
	b.Grow(len(buf) * 3)
	for i, v := range buf {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(hexdigits[v>>4])
		b.WriteByte(hexdigits[v&0x0f])
	}
	return b.String()
}
