package cmd

import (
	"os"

	"github.com/mistepien/libratbag/ratbag"
)

// DriversCmd lists the registered drivers in probe order, with their
// supported-device tables.
type DriversCmd struct {
	FormatFlag `embed:""`
}

func (c *DriversCmd) Run(rt *Runtime) error {
	ctx, err := ratbag.New(nopInterface{}, ratbag.WithLogHandler(rt.Handler))
	if err != nil {
		return err
	}
	var out []DriverInfo
	for _, drv := range ctx.Drivers() {
		info := DriverInfo{Name: drv.Name()}
		for _, m := range drv.DeviceMatches() {
			info.Matches = append(info.Matches, matchInfo(m))
		}
		out = append(out, info)
	}
	return c.render(os.Stdout, out)
}
