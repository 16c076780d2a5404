package cmd

import (
	"fmt"
	"os"

	"github.com/mistepien/libratbag/ratbag"
)

// ButtonCmd groups button subcommands.
type ButtonCmd struct {
	Show ButtonShow `cmd:"" help:"Show a button's classification and mapping"`
	Set  ButtonSet  `cmd:"" help:"Remap a button and commit the profile"`
}

type ButtonShow struct {
	DeviceFlags `embed:""`
	FormatFlag  `embed:""`
	ProfileIdx  int `name:"profile" help:"Profile index" default:"0"`
	Index       int `arg:"" help:"Button index"`
}

func (c *ButtonShow) Run(rt *Runtime) error {
	dev, err := c.Open(rt)
	if err != nil {
		return err
	}
	defer dev.Close()

	b, err := deviceButton(dev, c.ProfileIdx, c.Index)
	if err != nil {
		return err
	}
	return c.render(os.Stdout, buttonInfo(b))
}

type ButtonSet struct {
	DeviceFlags `embed:""`
	FormatFlag  `embed:""`
	ProfileIdx  int    `name:"profile" help:"Profile index" default:"0"`
	Index       int    `arg:"" help:"Button index"`
	Action      string `arg:"" help:"New action" enum:"none,button,key,special,macro"`
}

func (c *ButtonSet) Run(rt *Runtime) error {
	dev, err := c.Open(rt)
	if err != nil {
		return err
	}
	defer dev.Close()

	b, err := deviceButton(dev, c.ProfileIdx, c.Index)
	if err != nil {
		return err
	}
	b.SetActionType(parseAction(c.Action))
	// Stage the button, then commit its profile: button writes alone are
	// not durable.
	if err := b.Write(); err != nil {
		return fmt.Errorf("write button %d: %w", c.Index, err)
	}
	if p := b.Profile(); p != nil {
		if err := p.Write(); err != nil {
			return fmt.Errorf("commit profile %d: %w", p.Index(), err)
		}
	}
	return c.render(os.Stdout, buttonInfo(b))
}

// deviceButton resolves a button either through a profile or, for devices
// without profiles, directly on the device.
func deviceButton(dev *ratbag.Device, profileIdx, index int) (*ratbag.Button, error) {
	if dev.NumProfiles() == 0 {
		return dev.Button(index)
	}
	p, err := dev.Profile(profileIdx)
	if err != nil {
		return nil, err
	}
	return p.Button(index)
}

func parseAction(s string) ratbag.ActionType {
	switch s {
	case "none":
		return ratbag.ActionTypeNone
	case "button":
		return ratbag.ActionTypeButton
	case "key":
		return ratbag.ActionTypeKey
	case "special":
		return ratbag.ActionTypeSpecial
	case "macro":
		return ratbag.ActionTypeMacro
	default:
		return ratbag.ActionTypeUnknown
	}
}
