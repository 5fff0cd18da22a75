package npm13xx

import (
	"context"
	"time"

	"npmcore-go/errcode"
)

// ADC measurement status register layout: ready flags in the low nibble,
// invalid flags in the high nibble. Reading a result clears its flags.
const (
	adcReadyVBAT   = 0x01
	adcReadyTemp   = 0x02
	adcInvalidVBAT = 0x10
	adcInvalidTemp = 0x20
)

// Ready-poll bound. The hardware conversion takes ~250 µs; twenty 1 ms polls
// is generous headroom while still guaranteeing the call returns on a stuck
// device.
const (
	measRetries = 20
	measBackoff = time.Millisecond
)

// NTCConfig describes the battery thermistor. Beta lives host-side: the
// comparator works on resistance ratios, degrees only exist in conversions.
type NTCConfig struct {
	Type NTCType
	Beta uint32
}

func (d *Device) NTCConfigSet(cfg NTCConfig) error {
	if cfg.Type == NTCTypeInvalid || cfg.Beta == 0 {
		return errcode.InvalidParam
	}
	if err := d.writeByte(regADCNTCRSel, byte(cfg.Type)); err != nil {
		return err
	}
	d.ntcBeta = cfg.Beta
	return nil
}

func (d *Device) NTCConfigGet() (NTCConfig, error) {
	v, err := d.readByte(regADCNTCRSel)
	if err != nil {
		return NTCConfig{}, err
	}
	t := NTCType(v)
	if _, ok := t.Ohms(); !ok {
		return NTCConfig{}, errcode.InvalidMeasurement
	}
	return NTCConfig{Type: t, Beta: d.ntcBeta}, nil
}

// measure triggers a single-shot conversion and polls for the ready flag.
// The wait is bounded: measRetries polls with measBackoff between them, plus
// context cancellation, so a stuck device yields errcode.Timeout instead of
// hanging the caller.
func (d *Device) measure(ctx context.Context, taskReg uint16, readyMask, invalidMask byte, resultMSB uint16, lsbShift uint) (uint16, error) {
	if err := d.writeByte(taskReg, 1); err != nil {
		return 0, err
	}
	for i := 0; i < measRetries; i++ {
		status, err := d.readByte(regADCMeasStatus)
		if err != nil {
			return 0, err
		}
		if status&invalidMask != 0 {
			return 0, errcode.InvalidMeasurement
		}
		if status&readyMask != 0 {
			msb, err := d.readByte(resultMSB)
			if err != nil {
				return 0, err
			}
			lsbs, err := d.readByte(regADCResultLSBs)
			if err != nil {
				return 0, err
			}
			return uint16(msb)<<2 | uint16(lsbs>>lsbShift)&0x03, nil
		}
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(measBackoff):
		}
	}
	return 0, errcode.Timeout
}

// MeasureVBAT runs a single-shot battery voltage conversion.
func (d *Device) MeasureVBAT(ctx context.Context) (int32, error) {
	code, err := d.measure(ctx, regADCTaskVBAT, adcReadyVBAT, adcInvalidVBAT, regADCVBATResultMSB, 0)
	if err != nil {
		return 0, err
	}
	return adcVBATMillivolts(code), nil
}

// MeasureDieTemp runs a single-shot die temperature conversion.
// The result is in milli-degrees Celsius.
func (d *Device) MeasureDieTemp(ctx context.Context) (int32, error) {
	code, err := d.measure(ctx, regADCTaskDieTemp, adcReadyTemp, adcInvalidTemp, regADCTempResultMSB, 2)
	if err != nil {
		return 0, err
	}
	return adcDieMilliCelsius(code), nil
}
