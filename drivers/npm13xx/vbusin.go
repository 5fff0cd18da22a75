package npm13xx

import (
	"npmcore-go/errcode"
)

// VBUSCurrentLimitSet programs the input current limit and strobes the
// update task so the new limit takes effect immediately.
func (d *Device) VBUSCurrentLimitSet(mA int32) error {
	code := VBUSCurrentLimitFromMilliamps(mA)
	if code == VBUSCurrentLimitInvalid {
		return errcode.InvalidParam
	}
	if err := d.writeByte(regVBUSILim, byte(code)); err != nil {
		return err
	}
	return d.writeByte(regVBUSTaskUpdateILim, 1)
}

func (d *Device) VBUSCurrentLimitGet() (int32, error) {
	v, err := d.readByte(regVBUSILim)
	if err != nil {
		return 0, err
	}
	mA, ok := VBUSCurrentLimit(v).Milliamps()
	if !ok {
		return 0, errcode.InvalidMeasurement
	}
	return mA, nil
}

// VBUSStatus bits.
type VBUSStatus uint8

const (
	VBUSStatusConnected    VBUSStatus = 1 << 0
	VBUSStatusCC1          VBUSStatus = 1 << 1
	VBUSStatusCC2          VBUSStatus = 1 << 2
	VBUSStatusOvervoltage  VBUSStatus = 1 << 3
	VBUSStatusUndervoltage VBUSStatus = 1 << 4
	VBUSStatusSuspended    VBUSStatus = 1 << 5
)

func (s VBUSStatus) Has(flag VBUSStatus) bool { return s&flag != 0 }

func (d *Device) VBUSStatusGet() (VBUSStatus, error) {
	v, err := d.readByte(regVBUSStatus)
	return VBUSStatus(v), err
}
