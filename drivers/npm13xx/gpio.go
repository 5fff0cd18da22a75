package npm13xx

import (
	"npmcore-go/errcode"
)

// GPIOMode configures one device-side GPIO.
type GPIOMode uint8

const (
	GPIOModeInput GPIOMode = iota
	GPIOModeInputRisingEdge
	GPIOModeInputFallingEdge
	GPIOModeOutputIRQ
	GPIOModeOutputReset
	GPIOModeOutputPowerLossWarning
	GPIOModeOutputHigh
	GPIOModeOutputLow

	gpioModeCount
)

func (m GPIOMode) String() string {
	switch m {
	case GPIOModeInput:
		return "input"
	case GPIOModeInputRisingEdge:
		return "input rising edge"
	case GPIOModeInputFallingEdge:
		return "input falling edge"
	case GPIOModeOutputIRQ:
		return "interrupt output"
	case GPIOModeOutputReset:
		return "reset output"
	case GPIOModeOutputPowerLossWarning:
		return "power-loss warning output"
	case GPIOModeOutputHigh:
		return "output high"
	case GPIOModeOutputLow:
		return "output low"
	default:
		return "unknown"
	}
}

func (d *Device) GPIOModeSet(pin uint8, m GPIOMode) error {
	if pin >= GPIOCount {
		return ErrNoSuchInstance
	}
	if m >= gpioModeCount {
		return errcode.InvalidParam
	}
	return d.writeByte(regGPIOModeBase+uint16(pin), byte(m))
}

func (d *Device) GPIOModeGet(pin uint8) (GPIOMode, error) {
	if pin >= GPIOCount {
		return 0, ErrNoSuchInstance
	}
	v, err := d.readByte(regGPIOModeBase + uint16(pin))
	if err != nil {
		return 0, err
	}
	if GPIOMode(v) >= gpioModeCount {
		return 0, errcode.InvalidMeasurement
	}
	return GPIOMode(v), nil
}

// GPIOPull selects the pin's resistor.
type GPIOPull uint8

const (
	GPIOPullNone GPIOPull = iota
	GPIOPullUp
	GPIOPullDown
)

func (d *Device) GPIOPullSet(pin uint8, p GPIOPull) error {
	if pin >= GPIOCount {
		return ErrNoSuchInstance
	}
	var up, down byte
	switch p {
	case GPIOPullNone:
	case GPIOPullUp:
		up = 1
	case GPIOPullDown:
		down = 1
	default:
		return errcode.InvalidParam
	}
	if err := d.writeByte(regGPIOPullUp+uint16(pin), up); err != nil {
		return err
	}
	return d.writeByte(regGPIOPullDown+uint16(pin), down)
}

func (d *Device) GPIOPullGet(pin uint8) (GPIOPull, error) {
	if pin >= GPIOCount {
		return 0, ErrNoSuchInstance
	}
	up, err := d.readByte(regGPIOPullUp + uint16(pin))
	if err != nil {
		return 0, err
	}
	if up&1 != 0 {
		return GPIOPullUp, nil
	}
	down, err := d.readByte(regGPIOPullDown + uint16(pin))
	if err != nil {
		return 0, err
	}
	if down&1 != 0 {
		return GPIOPullDown, nil
	}
	return GPIOPullNone, nil
}

// GPIODriveSet selects the pin drive strength, 1 or 6 mA.
func (d *Device) GPIODriveSet(pin uint8, mA uint8) error {
	if pin >= GPIOCount {
		return ErrNoSuchInstance
	}
	var v byte
	switch mA {
	case 1:
	case 6:
		v = 1
	default:
		return errcode.InvalidParam
	}
	return d.writeByte(regGPIODriveBase+uint16(pin), v)
}

func (d *Device) GPIODriveGet(pin uint8) (uint8, error) {
	if pin >= GPIOCount {
		return 0, ErrNoSuchInstance
	}
	v, err := d.readByte(regGPIODriveBase + uint16(pin))
	if err != nil {
		return 0, err
	}
	if v&1 != 0 {
		return 6, nil
	}
	return 1, nil
}
