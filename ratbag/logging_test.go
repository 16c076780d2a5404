package ratbag_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mocks "github.com/mistepien/libratbag/internal/testing"
	"github.com/mistepien/libratbag/ratbag"
)

func newLoggedContext(t *testing.T) (*ratbag.Context, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	ctx, err := ratbag.New(&mocks.RecordingInterface{}, ratbag.WithLogHandler(handler))
	require.NoError(t, err)
	return ctx, &buf
}

func TestLogPriorityThreshold(t *testing.T) {
	ctx, buf := newLoggedContext(t)

	// Default threshold is error.
	assert.Equal(t, ratbag.PriorityError, ctx.LogPriority())
	ctx.Logger().Debug("hidden")
	ctx.Logger().Info("hidden too")
	assert.Empty(t, buf.String())

	ctx.SetLogPriority(ratbag.PriorityDebug)
	assert.Equal(t, ratbag.PriorityDebug, ctx.LogPriority())
	ctx.Logger().Debug("visible")
	assert.Contains(t, buf.String(), "visible")

	buf.Reset()
	ctx.SetLogPriority(ratbag.PriorityInfo)
	ctx.Logger().Debug("hidden again")
	ctx.Logger().Info("shown")
	out := buf.String()
	assert.NotContains(t, out, "hidden again")
	assert.Contains(t, out, "shown")
}

func TestLogBuffer(t *testing.T) {
	ctx, buf := newLoggedContext(t)
	ctx.SetLogPriority(ratbag.PriorityDebug)

	ctx.LogBuffer(ratbag.PriorityDebug, "feature report", []byte{0x00, 0x8a, 0xff})
	out := buf.String()
	assert.Contains(t, out, "feature report")
	assert.Contains(t, out, "00 8a ff")
	assert.Contains(t, out, "len=3")
}

func TestLogBufferRespectsThreshold(t *testing.T) {
	ctx, buf := newLoggedContext(t)
	ctx.LogBuffer(ratbag.PriorityDebug, "quiet", []byte{0x01})
	assert.Empty(t, buf.String())
	ctx.LogBuffer(ratbag.PriorityError, "loud", []byte{0x01})
	assert.Contains(t, buf.String(), "loud")
}

func TestBugPrefixes(t *testing.T) {
	ctx, buf := newLoggedContext(t)

	ctx.LogBugKernel("report id mismatch", "got", 3)
	ctx.LogBugLibratbag("profile list corrupt")
	ctx.LogBugClient("index misuse")

	out := buf.String()
	// All three log at error priority with distinct prefixes for triage.
	assert.Contains(t, out, "kernel bug: report id mismatch")
	assert.Contains(t, out, "libratbag bug: profile list corrupt")
	assert.Contains(t, out, "client bug: index misuse")
	assert.Equal(t, 3, bytes.Count(buf.Bytes(), []byte("level=ERROR")))
}

func TestLogPriorityString(t *testing.T) {
	assert.Equal(t, "debug", ratbag.PriorityDebug.String())
	assert.Equal(t, "info", ratbag.PriorityInfo.String())
	assert.Equal(t, "error", ratbag.PriorityError.String())
}
