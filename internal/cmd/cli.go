// Package cmd holds the kong command structs behind ratbagctl.
package cmd

import (
	"log/slog"
	"strconv"
)

// CLI is the root command line. Values come from flags, environment
// variables and configuration files, in that priority order.
type CLI struct {
	Log    LogFlags `embed:"" prefix:"log."`
	Config string   `help:"Path to a configuration file" env:"RATBAGCTL_CONFIG"`

	Drivers DriversCmd `cmd:"" help:"List registered drivers and their match tables"`
	Show    ShowCmd    `cmd:"" help:"Bind a device and show its full configuration"`
	Profile ProfileCmd `cmd:"" help:"Query or switch the device's active profile"`
	DPI     DPICmd     `cmd:"" name:"dpi" help:"Get or set a profile's sensor resolution"`
	Button  ButtonCmd  `cmd:"" help:"Show or remap a button"`
}

type LogFlags struct {
	Level string `help:"Log level (debug, info, warn, error)" default:"warn" env:"RATBAGCTL_LOG_LEVEL"`
	File  string `help:"Also write logs to this file" env:"RATBAGCTL_LOG_FILE"`
}

// Runtime carries the assembled logging state into command Run methods via
// kong's binding mechanism.
type Runtime struct {
	Logger  *slog.Logger
	Handler slog.Handler
	Level   slog.Level
}

// HexID is a 16-bit identity field accepting decimal or 0x-prefixed input.
type HexID uint16

func (h *HexID) UnmarshalText(text []byte) error {
	v, err := strconv.ParseUint(string(text), 0, 16)
	if err != nil {
		return err
	}
	*h = HexID(v)
	return nil
}
