package npm13xx

import (
	"npmcore-go/errcode"
)

// BuckVoltageKind selects which output target an accessor pair operates on.
// One enum-dispatched routine serves both targets; they differ only in the
// register they address.
type BuckVoltageKind uint8

const (
	BuckVoltageNormal BuckVoltageKind = iota
	BuckVoltageRetention
)

func buckVOutReg(idx uint8, kind BuckVoltageKind) uint16 {
	reg := regBuckVOutBase + uint16(idx)*2
	if kind == BuckVoltageRetention {
		reg++
	}
	return reg
}

// BuckEnable starts or stops one buck converter.
func (d *Device) BuckEnable(idx uint8, on bool) error {
	if idx >= BuckCount {
		return ErrNoSuchInstance
	}
	reg := regBuckEnaBase + uint16(idx)*2
	if !on {
		reg++ // CLR task
	}
	return d.writeByte(reg, 1)
}

// BuckStatus reports whether the converter's output is up.
func (d *Device) BuckStatus(idx uint8) (bool, error) {
	if idx >= BuckCount {
		return false, ErrNoSuchInstance
	}
	v, err := d.readByte(regBuckStatus)
	if err != nil {
		return false, err
	}
	return v&(1<<idx) != 0, nil
}

// BuckVoltageSet programs the normal or retention output target and hands
// target selection to software control so the written value takes effect.
func (d *Device) BuckVoltageSet(idx uint8, kind BuckVoltageKind, mV int32) error {
	if idx >= BuckCount {
		return ErrNoSuchInstance
	}
	code := BuckVoltageFromMillivolts(mV)
	if code == BuckVoltageInvalid {
		return errcode.InvalidParam
	}
	if err := d.writeByte(buckVOutReg(idx, kind), byte(code)); err != nil {
		return err
	}
	return d.modifyByte(regBuckSwCtrlSel, 1<<idx, 0)
}

// BuckVoltageGet reads back the programmed target in millivolts.
func (d *Device) BuckVoltageGet(idx uint8, kind BuckVoltageKind) (int32, error) {
	if idx >= BuckCount {
		return 0, ErrNoSuchInstance
	}
	v, err := d.readByte(buckVOutReg(idx, kind))
	if err != nil {
		return 0, err
	}
	mV, ok := BuckVoltage(v).Millivolts()
	if !ok {
		return 0, errcode.InvalidMeasurement
	}
	return mV, nil
}

// BuckActiveDischargeSet enables draining the output when the converter
// turns off.
func (d *Device) BuckActiveDischargeSet(idx uint8, on bool) error {
	if idx >= BuckCount {
		return ErrNoSuchInstance
	}
	if on {
		return d.modifyByte(regBuckCtrl0, 1<<idx, 0)
	}
	return d.modifyByte(regBuckCtrl0, 0, 1<<idx)
}

func (d *Device) BuckActiveDischargeGet(idx uint8) (bool, error) {
	if idx >= BuckCount {
		return false, ErrNoSuchInstance
	}
	v, err := d.readByte(regBuckCtrl0)
	if err != nil {
		return false, err
	}
	return v&(1<<idx) != 0, nil
}

// BuckGPIOConfig routes an external pin to a buck control input.
// Pin -1 disconnects.
type BuckGPIOConfig struct {
	Pin      int8
	Inverted bool
}

func (d *Device) BuckGPIOSet(idx uint8, cfg BuckGPIOConfig) error {
	if idx >= BuckCount {
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
		v |= buckGPIOInvertBit
	}
	return d.writeByte(regBuckGPIOBase+uint16(idx), v)
}

func (d *Device) BuckGPIOGet(idx uint8) (BuckGPIOConfig, error) {
	if idx >= BuckCount {
		return BuckGPIOConfig{}, ErrNoSuchInstance
	}
	v, err := d.readByte(regBuckGPIOBase + uint16(idx))
	if err != nil {
		return BuckGPIOConfig{}, err
	}
	cfg := BuckGPIOConfig{Pin: int8(v&^buckGPIOInvertBit) - 1, Inverted: v&buckGPIOInvertBit != 0}
	return cfg, nil
}
