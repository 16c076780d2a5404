package ratbag

// Capability describes an optional feature a driver may support for a
// bound device. Drivers answer HasCapability from state cached at probe
// time; no hardware I/O is expected.
type Capability int

const (
	CapNone Capability = iota
	// CapQueryConfiguration: the device's current configuration can be read
	// back, not only written.
	CapQueryConfiguration
	// CapSwitchableResolution: the sensor resolution can be changed. Drivers
	// advertising this must implement ResolutionWriter.
	CapSwitchableResolution
	// CapSwitchableProfile: the device stores multiple profiles and can
	// switch between them.
	CapSwitchableProfile
	// CapButtonKey: buttons can be remapped to keyboard keys.
	CapButtonKey
	// CapButtonMacros: buttons can be bound to macros.
	CapButtonMacros
)

func (c Capability) String() string {
	switch c {
	case CapNone:
		return "none"
	case CapQueryConfiguration:
		return "query-configuration"
	case CapSwitchableResolution:
		return "switchable-resolution"
	case CapSwitchableProfile:
		return "switchable-profile"
	case CapButtonKey:
		return "button-key"
	case CapButtonMacros:
		return "button-macros"
	default:
		return "unknown"
	}
}

// ButtonType describes the physical location of a button on the device.
type ButtonType int

const (
	ButtonTypeUnknown ButtonType = iota
	ButtonTypeLeft
	ButtonTypeMiddle
	ButtonTypeRight
	ButtonTypeThumb
	ButtonTypeThumb2
	ButtonTypeThumb3
	ButtonTypeThumb4
	ButtonTypeWheelLeft
	ButtonTypeWheelRight
	ButtonTypeWheelClick
	ButtonTypeWheelUp
	ButtonTypeWheelDown
	ButtonTypeExtra
	ButtonTypeSide
	ButtonTypePinkie
	ButtonTypeResolutionCycleUp
	ButtonTypeResolutionUp
	ButtonTypeResolutionDown
	ButtonTypeProfileCycleUp
	ButtonTypeProfileUp
	ButtonTypeProfileDown
)

var buttonTypeNames = map[ButtonType]string{
	ButtonTypeUnknown:           "unknown",
	ButtonTypeLeft:              "left",
	ButtonTypeMiddle:            "middle",
	ButtonTypeRight:             "right",
	ButtonTypeThumb:             "thumb",
	ButtonTypeThumb2:            "thumb2",
	ButtonTypeThumb3:            "thumb3",
	ButtonTypeThumb4:            "thumb4",
	ButtonTypeWheelLeft:         "wheel-left",
	ButtonTypeWheelRight:        "wheel-right",
	ButtonTypeWheelClick:        "wheel-click",
	ButtonTypeWheelUp:           "wheel-up",
	ButtonTypeWheelDown:         "wheel-down",
	ButtonTypeExtra:             "extra",
	ButtonTypeSide:              "side",
	ButtonTypePinkie:            "pinkie",
	ButtonTypeResolutionCycleUp: "resolution-cycle-up",
	ButtonTypeResolutionUp:      "resolution-up",
	ButtonTypeResolutionDown:    "resolution-down",
	ButtonTypeProfileCycleUp:    "profile-cycle-up",
	ButtonTypeProfileUp:         "profile-up",
	ButtonTypeProfileDown:       "profile-down",
}

func (t ButtonType) String() string {
	if s, ok := buttonTypeNames[t]; ok {
		return s
	}
	return "unknown"
}

// ActionType describes what a button is currently mapped to do.
type ActionType int

const (
	ActionTypeNone ActionType = iota
	ActionTypeButton
	ActionTypeKey
	ActionTypeSpecial
	ActionTypeMacro
	ActionTypeUnknown
)

func (t ActionType) String() string {
	switch t {
	case ActionTypeNone:
		return "none"
	case ActionTypeButton:
		return "button"
	case ActionTypeKey:
		return "key"
	case ActionTypeSpecial:
		return "special"
	case ActionTypeMacro:
		return "macro"
	default:
		return "unknown"
	}
}
