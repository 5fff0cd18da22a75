package npm13xx

import (
	"npmcore-go/errcode"
)

// LDSWMode selects whether a load switch passes its input through or
// regulates it as an LDO.
type LDSWMode uint8

const (
	LDSWModeSwitch LDSWMode = iota
	LDSWModeLDO
)

// ldswStatusMask covers both power-up bits of one instance; the switch and
// LDO bits are exclusive, so either one means the output is up.
func ldswStatusMask(idx uint8) byte {
	return 0x03 << (2 * idx)
}

// LDSWEnable starts or stops one load switch.
func (d *Device) LDSWEnable(idx uint8, on bool) error {
	if idx >= LDSWCount {
		return ErrNoSuchInstance
	}
	reg := regLdswEnaBase + uint16(idx)*2
	if !on {
		reg++ // CLR task
	}
	return d.writeByte(reg, 1)
}

// LDSWStatus reports whether the switch's output is up, in either mode.
func (d *Device) LDSWStatus(idx uint8) (bool, error) {
	if idx >= LDSWCount {
		return false, ErrNoSuchInstance
	}
	v, err := d.readByte(regLdswStatus)
	if err != nil {
		return false, err
	}
	return v&ldswStatusMask(idx) != 0, nil
}

// LDSWModeSet selects load-switch or LDO operation. The selection only takes
// effect across an enable cycle, so the instance is bounced through its
// disable and enable tasks after the write.
func (d *Device) LDSWModeSet(idx uint8, mode LDSWMode) error {
	if idx >= LDSWCount {
		return ErrNoSuchInstance
	}
	if mode > LDSWModeLDO {
		return errcode.InvalidParam
	}
	var set, clear byte
	if mode == LDSWModeLDO {
		set = 1 << idx
	} else {
		clear = 1 << idx
	}
	if err := d.modifyByte(regLdswLDOSel, set, clear); err != nil {
		return err
	}
	if err := d.LDSWEnable(idx, false); err != nil {
		return err
	}
	return d.LDSWEnable(idx, true)
}

func (d *Device) LDSWModeGet(idx uint8) (LDSWMode, error) {
	if idx >= LDSWCount {
		return 0, ErrNoSuchInstance
	}
	v, err := d.readByte(regLdswLDOSel)
	if err != nil {
		return 0, err
	}
	if v&(1<<idx) != 0 {
		return LDSWModeLDO, nil
	}
	return LDSWModeSwitch, nil
}

// LDSWVoltageSet programs the LDO output target. The register holds the code
// regardless of the current mode; it matters once the instance runs as LDO.
func (d *Device) LDSWVoltageSet(idx uint8, mV int32) error {
	if idx >= LDSWCount {
		return ErrNoSuchInstance
	}
	code := LDSWVoltageFromMillivolts(mV)
	if code == LDSWVoltageInvalid {
		return errcode.InvalidParam
	}
	return d.writeByte(regLdswVOutBase+uint16(idx), byte(code))
}

// LDSWVoltageGet reads back the programmed LDO target in millivolts.
func (d *Device) LDSWVoltageGet(idx uint8) (int32, error) {
	if idx >= LDSWCount {
		return 0, ErrNoSuchInstance
	}
	v, err := d.readByte(regLdswVOutBase + uint16(idx))
	if err != nil {
		return 0, err
	}
	mV, ok := LDSWVoltage(v).Millivolts()
	if !ok {
		return 0, errcode.InvalidMeasurement
	}
	return mV, nil
}

// LDSWActiveDischargeSet enables draining the output when the switch turns
// off.
func (d *Device) LDSWActiveDischargeSet(idx uint8, on bool) error {
	if idx >= LDSWCount {
		return ErrNoSuchInstance
	}
	if on {
		return d.modifyByte(regLdswConfig, 1<<idx, 0)
	}
	return d.modifyByte(regLdswConfig, 0, 1<<idx)
}

func (d *Device) LDSWActiveDischargeGet(idx uint8) (bool, error) {
	if idx >= LDSWCount {
		return false, ErrNoSuchInstance
	}
	v, err := d.readByte(regLdswConfig)
	if err != nil {
		return false, err
	}
	return v&(1<<idx) != 0, nil
}

// LDSWSoftStartEnableSet ramps the output current limit at turn-on instead
// of connecting the load hard.
func (d *Device) LDSWSoftStartEnableSet(idx uint8, on bool) error {
	if idx >= LDSWCount {
		return ErrNoSuchInstance
	}
	bit := byte(1) << (ldswConfigSoftStartPos + idx)
	if on {
		return d.modifyByte(regLdswConfig, bit, 0)
	}
	return d.modifyByte(regLdswConfig, 0, bit)
}

func (d *Device) LDSWSoftStartEnableGet(idx uint8) (bool, error) {
	if idx >= LDSWCount {
		return false, ErrNoSuchInstance
	}
	v, err := d.readByte(regLdswConfig)
	if err != nil {
		return false, err
	}
	return v&(1<<(ldswConfigSoftStartPos+idx)) != 0, nil
}

// LDSWSoftStartCurrentSet programs the soft-start ramp current limit.
func (d *Device) LDSWSoftStartCurrentSet(idx uint8, mA int32) error {
	if idx >= LDSWCount {
		return ErrNoSuchInstance
	}
	code := SoftStartCurrentFromMilliamps(mA)
	if code == SoftStartCurrentInvalid {
		return errcode.InvalidParam
	}
	return d.writeByte(regLdswSoftStartBase+uint16(idx), byte(code))
}

func (d *Device) LDSWSoftStartCurrentGet(idx uint8) (int32, error) {
	if idx >= LDSWCount {
		return 0, ErrNoSuchInstance
	}
	v, err := d.readByte(regLdswSoftStartBase + uint16(idx))
	if err != nil {
		return 0, err
	}
	mA, ok := SoftStartCurrent(v).Milliamps()
	if !ok {
		return 0, errcode.InvalidMeasurement
	}
	return mA, nil
}

// LDSWGPIOConfig routes an external pin to a load switch on/off input.
// Pin -1 disconnects.
type LDSWGPIOConfig struct {
	Pin      int8
	Inverted bool
}

func (d *Device) LDSWGPIOSet(idx uint8, cfg LDSWGPIOConfig) error {
	if idx >= LDSWCount {
		return ErrNoSuchInstance
	}
	var v byte
	switch {
	case cfg.Pin == -1:
		v = 0 // not connected
	case cfg.Pin >= 0 && cfg.Pin < GPIOCount:
		v = byte(cfg.Pin) + 1
	default:
		return errcode.InvalidParam
	}
	if cfg.Inverted {
		v |= ldswGPIOInvertBit
	}
	return d.writeByte(regLdswGPIOBase+uint16(idx), v)
}

func (d *Device) LDSWGPIOGet(idx uint8) (LDSWGPIOConfig, error) {
	if idx >= LDSWCount {
		return LDSWGPIOConfig{}, ErrNoSuchInstance
	}
	v, err := d.readByte(regLdswGPIOBase + uint16(idx))
	if err != nil {
		return LDSWGPIOConfig{}, err
	}
	cfg := LDSWGPIOConfig{Pin: int8(v&^ldswGPIOInvertBit) - 1, Inverted: v&ldswGPIOInvertBit != 0}
	return cfg, nil
}
