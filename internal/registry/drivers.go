package registry

import (
	_ "github.com/mistepien/libratbag/drivers/testdriver" // Register the hardware-free test driver
)
