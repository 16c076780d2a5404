package cmd

import (
	"fmt"
	"os"
)

// ShowCmd binds the device and dumps its configuration: every profile with
// its resolution and button mappings.
type ShowCmd struct {
	DeviceFlags `embed:""`
	FormatFlag  `embed:""`
}

func (c *ShowCmd) Run(rt *Runtime) error {
	dev, err := c.Open(rt)
	if err != nil {
		return err
	}
	defer dev.Close()

	active, err := dev.ActiveProfile()
	if err != nil {
		return fmt.Errorf("query active profile: %w", err)
	}

	info := DeviceInfo{
		Name:          dev.Name(),
		Driver:        dev.Driver().Name(),
		Vendor:        idField(dev.ID().Vendor),
		Product:       idField(dev.ID().Product),
		NumProfiles:   dev.NumProfiles(),
		NumButtons:    dev.NumButtons(),
		ActiveProfile: active,
	}
	for i := 0; i < dev.NumProfiles(); i++ {
		p, err := dev.Profile(i)
		if err != nil {
			return err
		}
		pi := ProfileInfo{Index: i, DPI: p.CurrentDPI()}
		for j := 0; j < dev.NumButtons(); j++ {
			b, err := p.Button(j)
			if err != nil {
				return err
			}
			pi.Buttons = append(pi.Buttons, buttonInfo(b))
		}
		info.Profiles = append(info.Profiles, pi)
	}
	return c.render(os.Stdout, info)
}
