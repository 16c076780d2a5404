package cmd

import (
	"fmt"
	"os"
)

// DPICmd groups resolution subcommands.
type DPICmd struct {
	Get DPIGet `cmd:"" help:"Print the cached sensor resolution of a profile"`
	Set DPISet `cmd:"" help:"Write a new sensor resolution to the hardware"`
}

type DPIGet struct {
	DeviceFlags `embed:""`
	FormatFlag  `embed:""`
	ProfileIdx  int `name:"profile" help:"Profile index" default:"0"`
}

func (c *DPIGet) Run(rt *Runtime) error {
	dev, err := c.Open(rt)
	if err != nil {
		return err
	}
	defer dev.Close()

	p, err := dev.Profile(c.ProfileIdx)
	if err != nil {
		return err
	}
	return c.render(os.Stdout, map[string]int{"profile": c.ProfileIdx, "dpi": p.CurrentDPI()})
}

type DPISet struct {
	DeviceFlags `embed:""`
	FormatFlag  `embed:""`
	ProfileIdx  int `name:"profile" help:"Profile index" default:"0"`
	DPI         int `arg:"" help:"New sensor resolution in DPI"`
}

func (c *DPISet) Run(rt *Runtime) error {
	dev, err := c.Open(rt)
	if err != nil {
		return err
	}
	defer dev.Close()

	p, err := dev.Profile(c.ProfileIdx)
	if err != nil {
		return err
	}
	if err := p.SetResolutionDPI(c.DPI); err != nil {
		return fmt.Errorf("set %d dpi on profile %d: %w", c.DPI, c.ProfileIdx, err)
	}
	return c.render(os.Stdout, map[string]int{"profile": c.ProfileIdx, "dpi": p.CurrentDPI()})
}
