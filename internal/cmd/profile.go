package cmd

import (
	"fmt"
	"os"
)

// ProfileCmd groups profile-related subcommands.
type ProfileCmd struct {
	Active ProfileActive `cmd:"" help:"Query or set the active profile"`
}

// ProfileActive without an index prints which profile the hardware reports
// active; the result is advisory, the device may switch at any time. With
// an index it commits that profile and marks it active.
type ProfileActive struct {
	DeviceFlags `embed:""`
	FormatFlag  `embed:""`
	Index       *int `arg:"" optional:"" help:"Profile index to activate"`
}

func (c *ProfileActive) Run(rt *Runtime) error {
	dev, err := c.Open(rt)
	if err != nil {
		return err
	}
	defer dev.Close()

	if c.Index == nil {
		active, err := dev.ActiveProfile()
		if err != nil {
			return fmt.Errorf("query active profile: %w", err)
		}
		return c.render(os.Stdout, map[string]int{"activeProfile": active})
	}

	p, err := dev.Profile(*c.Index)
	if err != nil {
		return err
	}
	// The driver contract wants the profile committed before activation.
	if err := p.Write(); err != nil {
		return fmt.Errorf("write profile %d: %w", *c.Index, err)
	}
	if err := p.SetActive(); err != nil {
		return fmt.Errorf("activate profile %d: %w", *c.Index, err)
	}
	return c.render(os.Stdout, map[string]int{"activeProfile": *c.Index})
}
