package npm13xx

import (
	"npmcore-go/errcode"
)

// Power-fail comparator configuration.
type POFConfig struct {
	Enable       bool
	Polarity     Polarity // level the warning pin drives when tripping
	Threshold_mV uint32   // supply threshold, see POFThresholdFromMillivolts
}

// RegisterPOFHandler configures the power-fail comparator, routes the
// device-side warning pin, and arms the dedicated host line. cb runs
// synchronously in interrupt context when the comparator trips; it must be
// minimal and must not block, as only milliseconds of power may remain.
//
// Independent of the event dispatcher by design: a power-fail condition must
// preempt and suppress ordinary event processing, not queue behind it.
func (d *Device) RegisterPOFHandler(line IRQLine, cfg POFConfig, cb func(*Device)) error {
	if d.pofPin < 0 {
		return ErrPOFPinNotWired
	}
	if line == nil {
		return ErrPOFLineNotWired
	}
	if cb == nil {
		return ErrNilCallback
	}

	code := POFThresholdFromMillivolts(cfg.Threshold_mV)
	if code == POFThresholdInvalid {
		return errcode.InvalidParam
	}
	v := byte(code) << pofThresholdPos
	if cfg.Enable {
		v |= pofEnableMask
	}
	if cfg.Polarity == PolarityHigh {
		v |= pofPolarityMask
	}
	if err := d.writeByte(regPOFConfig, v); err != nil {
		return err
	}
	if err := d.GPIOModeSet(uint8(d.pofPin), GPIOModeOutputPowerLossWarning); err != nil {
		return err
	}

	d.pofCB = cb
	d.pofLine = line
	if err := line.SetIRQ(d.pofISR); err != nil {
		return err
	}
	return line.EnableIRQ(cfg.Polarity)
}

// POFConfigGet reads the comparator configuration back from the device.
func (d *Device) POFConfigGet() (POFConfig, error) {
	v, err := d.readByte(regPOFConfig)
	if err != nil {
		return POFConfig{}, err
	}
	mV, ok := POFThreshold(v >> pofThresholdPos).Millivolts()
	if !ok {
		return POFConfig{}, errcode.InvalidMeasurement
	}
	cfg := POFConfig{
		Enable:       v&pofEnableMask != 0,
		Threshold_mV: mV,
	}
	if v&pofPolarityMask != 0 {
		cfg.Polarity = PolarityHigh
	}
	return cfg, nil
}

// pofISR runs in interrupt context with the system possibly losing power.
// Both lines go down first so no further interrupt processing can start;
// disable failures are deliberately ignored, the callback must fire anyway.
func (d *Device) pofISR() {
	_ = d.pofLine.DisableIRQ()
	if d.disp != nil {
		d.disp.disableLine()
	}
	if d.pofCB != nil {
		d.pofCB(d)
	}
}
