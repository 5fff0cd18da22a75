package npm13xx

import (
	"npmcore-go/errcode"
)

// ShipConfig controls the ship-hold button behaviour.
type ShipConfig struct {
	Time_ms        uint32 // button hold time, see ShipTimeFromMilliseconds
	InvertPolarity bool
}

const shipInvertBit = 0x08

func (d *Device) ShipConfigSet(cfg ShipConfig) error {
	code := ShipTimeFromMilliseconds(cfg.Time_ms)
	if code == ShipTimeInvalid {
		return errcode.InvalidParam
	}
	v := byte(code)
	if cfg.InvertPolarity {
		v |= shipInvertBit
	}
	return d.writeByte(regShipConfig, v)
}

func (d *Device) ShipConfigGet() (ShipConfig, error) {
	v, err := d.readByte(regShipConfig)
	if err != nil {
		return ShipConfig{}, err
	}
	ms, ok := ShipTime(v &^ shipInvertBit).Milliseconds()
	if !ok {
		return ShipConfig{}, errcode.InvalidMeasurement
	}
	return ShipConfig{Time_ms: ms, InvertPolarity: v&shipInvertBit != 0}, nil
}

// ShipResetConfig controls the long-press reset behaviour.
type ShipResetConfig struct {
	LongPress  bool
	TwoButtons bool
}

const (
	shipResetLongPressBit  = 0x01
	shipResetTwoButtonsBit = 0x02
)

func (d *Device) ShipResetConfigSet(cfg ShipResetConfig) error {
	var v byte
	if cfg.LongPress {
		v |= shipResetLongPressBit
	}
	if cfg.TwoButtons {
		v |= shipResetTwoButtonsBit
	}
	return d.writeByte(regShipLPResetConfig, v)
}

func (d *Device) ShipResetConfigGet() (ShipResetConfig, error) {
	v, err := d.readByte(regShipLPResetConfig)
	if err != nil {
		return ShipResetConfig{}, err
	}
	return ShipResetConfig{
		LongPress:  v&shipResetLongPressBit != 0,
		TwoButtons: v&shipResetTwoButtonsBit != 0,
	}, nil
}

// EnterShipMode powers the device down to ship mode. The bus goes away with
// it; expect no reply after a successful write.
func (d *Device) EnterShipMode() error {
	return d.writeByte(regShipTaskShip, 1)
}

// EnterHibernate powers down with the wake-up timer left running.
func (d *Device) EnterHibernate() error {
	return d.writeByte(regShipTaskHibernate, 1)
}
