package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	toml "github.com/pelletier/go-toml"
	"golang.org/x/term"
	yaml "gopkg.in/yaml.v3"

	"github.com/mistepien/libratbag/ratbag"
)

// FormatFlag selects the output encoding. "auto" renders YAML on a
// terminal and JSON when output is piped.
type FormatFlag struct {
	Format string `help:"Output format" enum:"auto,json,yaml,toml" default:"auto"`
}

func (f FormatFlag) resolve() string {
	if f.Format != "auto" {
		return f.Format
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return "yaml"
	}
	return "json"
}

func (f FormatFlag) render(w io.Writer, v any) error {
	switch f.resolve() {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(v)
	case "toml":
		b, err := toml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	default:
		return fmt.Errorf("unsupported format %q", f.Format)
	}
}

// Output DTOs shared by the commands.

type MatchInfo struct {
	Bus     string `json:"bus" yaml:"bus" toml:"bus"`
	Vendor  string `json:"vendor" yaml:"vendor" toml:"vendor"`
	Product string `json:"product" yaml:"product" toml:"product"`
	Version string `json:"version" yaml:"version" toml:"version"`
	Tag     uint64 `json:"tag,omitempty" yaml:"tag,omitempty" toml:"tag,omitempty"`
}

type DriverInfo struct {
	Name    string      `json:"name" yaml:"name" toml:"name"`
	Matches []MatchInfo `json:"matches" yaml:"matches" toml:"matches"`
}

type ButtonInfo struct {
	Index  int    `json:"index" yaml:"index" toml:"index"`
	Type   string `json:"type" yaml:"type" toml:"type"`
	Action string `json:"action" yaml:"action" toml:"action"`
}

type ProfileInfo struct {
	Index   int          `json:"index" yaml:"index" toml:"index"`
	DPI     int          `json:"dpi" yaml:"dpi" toml:"dpi"`
	Buttons []ButtonInfo `json:"buttons" yaml:"buttons" toml:"buttons"`
}

type DeviceInfo struct {
	Name          string        `json:"name" yaml:"name" toml:"name"`
	Driver        string        `json:"driver" yaml:"driver" toml:"driver"`
	Vendor        string        `json:"vendor" yaml:"vendor" toml:"vendor"`
	Product       string        `json:"product" yaml:"product" toml:"product"`
	NumProfiles   int           `json:"numProfiles" yaml:"numProfiles" toml:"numProfiles"`
	NumButtons    int           `json:"numButtons" yaml:"numButtons" toml:"numButtons"`
	ActiveProfile int           `json:"activeProfile" yaml:"activeProfile" toml:"activeProfile"`
	Profiles      []ProfileInfo `json:"profiles,omitempty" yaml:"profiles,omitempty" toml:"profiles,omitempty"`
}

func idField(v uint16) string {
	if v == 0xffff {
		return "any"
	}
	return fmt.Sprintf("0x%04x", v)
}

func matchInfo(m ratbag.DeviceMatch) MatchInfo {
	return MatchInfo{
		Bus:     idField(m.ID.Bus),
		Vendor:  idField(m.ID.Vendor),
		Product: idField(m.ID.Product),
		Version: idField(m.ID.Version),
		Tag:     m.Data,
	}
}

func buttonInfo(b *ratbag.Button) ButtonInfo {
	return ButtonInfo{
		Index:  b.Index(),
		Type:   b.Type().String(),
		Action: b.ActionType().String(),
	}
}
