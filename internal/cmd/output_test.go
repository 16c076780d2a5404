package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mistepien/libratbag/ratbag"
)

func TestIDField(t *testing.T) {
	assert.Equal(t, "0x00aa", idField(0x00aa))
	assert.Equal(t, "any", idField(0xffff))
}

func TestMatchInfo(t *testing.T) {
	m := ratbag.DeviceMatch{
		ID: ratbag.DeviceID{
			Bus:     0x0003,
			Vendor:  0x1b1c,
			Product: ratbag.ProductAny,
			Version: ratbag.VersionAny,
		},
		Data: 2,
	}
	info := matchInfo(m)
	assert.Equal(t, MatchInfo{
		Bus:     "0x0003",
		Vendor:  "0x1b1c",
		Product: "any",
		Version: "any",
		Tag:     2,
	}, info)
}

func TestRenderFormats(t *testing.T) {
	in := ProfileInfo{Index: 1, DPI: 1600}

	tests := []struct {
		format string
		want   string
	}{
		{format: "json", want: `"dpi": 1600`},
		{format: "yaml", want: "dpi: 1600"},
		{format: "toml", want: `dpi = 1600`},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			f := FormatFlag{Format: tt.format}
			require.NoError(t, f.render(&buf, in))
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestParseAction(t *testing.T) {
	assert.Equal(t, ratbag.ActionTypeKey, parseAction("key"))
	assert.Equal(t, ratbag.ActionTypeNone, parseAction("none"))
	assert.Equal(t, ratbag.ActionTypeMacro, parseAction("macro"))
	assert.Equal(t, ratbag.ActionTypeUnknown, parseAction("bogus"))
}

func TestHexIDUnmarshal(t *testing.T) {
	var h HexID
	require.NoError(t, h.UnmarshalText([]byte("0x1b1c")))
	assert.Equal(t, HexID(0x1b1c), h)
	require.NoError(t, h.UnmarshalText([]byte("4660")))
	assert.Equal(t, HexID(4660), h)
	assert.Error(t, h.UnmarshalText([]byte("mouse")))
}
