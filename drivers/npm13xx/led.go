package npm13xx

import (
	"npmcore-go/errcode"
)

// LEDMode selects what drives one LED pin.
type LEDMode uint8

const (
	LEDModeError    LEDMode = iota // charger error indicator
	LEDModeCharging                // charging indicator
	LEDModeHost                    // manual control via LEDSet

	ledModeCount
)

func (m LEDMode) String() string {
	switch m {
	case LEDModeError:
		return "error"
	case LEDModeCharging:
		return "charging"
	case LEDModeHost:
		return "host"
	default:
		return "unknown"
	}
}

func (d *Device) LEDModeSet(idx uint8, m LEDMode) error {
	if idx >= LEDCount {
		return ErrNoSuchInstance
	}
	if m >= ledModeCount {
		return errcode.InvalidParam
	}
	return d.writeByte(regLEDModeBase+uint16(idx), byte(m))
}

func (d *Device) LEDModeGet(idx uint8) (LEDMode, error) {
	if idx >= LEDCount {
		return 0, ErrNoSuchInstance
	}
	v, err := d.readByte(regLEDModeBase + uint16(idx))
	if err != nil {
		return 0, err
	}
	if LEDMode(v) >= ledModeCount {
		return 0, errcode.InvalidMeasurement
	}
	return LEDMode(v), nil
}

// LEDSet drives an LED that is in host mode.
func (d *Device) LEDSet(idx uint8, on bool) error {
	if idx >= LEDCount {
		return ErrNoSuchInstance
	}
	reg := regLEDSetBase + uint16(idx)
	if !on {
		reg = regLEDClrBase + uint16(idx)
	}
	return d.writeByte(reg, 1)
}
