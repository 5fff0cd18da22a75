package npm13xx

import (
	"npmcore-go/errcode"
)

// TimerMode selects what expiry of the wake-up timer does.
type TimerMode uint8

const (
	TimerModeBootMonitor TimerMode = iota
	TimerModeWatchdogWarning
	TimerModeWatchdogReset
	TimerModeGeneralPurpose
	TimerModeWakeUp

	timerModeCount
)

// TimerPrescaler selects the tick period.
type TimerPrescaler uint8

const (
	TimerPrescalerSlow TimerPrescaler = iota // 16 ms per tick
	TimerPrescalerFast                       // 2 ms per tick
)

const (
	timerPrescalerBit = 0x08
	timerTargetMax    = 1<<24 - 1
)

// TickMilliseconds returns the tick period for the prescaler.
func (p TimerPrescaler) TickMilliseconds() uint32 {
	if p == TimerPrescalerFast {
		return 2
	}
	return 16
}

type TimerConfig struct {
	Mode      TimerMode
	Prescaler TimerPrescaler
}

func (d *Device) TimerConfigSet(cfg TimerConfig) error {
	if cfg.Mode >= timerModeCount {
		return errcode.InvalidParam
	}
	v := byte(cfg.Mode)
	if cfg.Prescaler == TimerPrescalerFast {
		v |= timerPrescalerBit
	}
	return d.writeByte(regTimerConfig, v)
}

func (d *Device) TimerConfigGet() (TimerConfig, error) {
	v, err := d.readByte(regTimerConfig)
	if err != nil {
		return TimerConfig{}, err
	}
	cfg := TimerConfig{Mode: TimerMode(v &^ timerPrescalerBit)}
	if v&timerPrescalerBit != 0 {
		cfg.Prescaler = TimerPrescalerFast
	}
	if cfg.Mode >= timerModeCount {
		return TimerConfig{}, errcode.InvalidMeasurement
	}
	return cfg, nil
}

// TimerTargetSet programs the 24-bit compare value in ticks.
func (d *Device) TimerTargetSet(ticks uint32) error {
	if ticks > timerTargetMax {
		return errcode.InvalidParam
	}
	if err := d.writeByte(regTimerTargetHi, byte(ticks>>16)); err != nil {
		return err
	}
	if err := d.writeByte(regTimerTargetMid, byte(ticks>>8)); err != nil {
		return err
	}
	return d.writeByte(regTimerTargetLo, byte(ticks))
}

func (d *Device) TimerTargetGet() (uint32, error) {
	hi, err := d.readByte(regTimerTargetHi)
	if err != nil {
		return 0, err
	}
	mid, err := d.readByte(regTimerTargetMid)
	if err != nil {
		return 0, err
	}
	lo, err := d.readByte(regTimerTargetLo)
	if err != nil {
		return 0, err
	}
	return uint32(hi)<<16 | uint32(mid)<<8 | uint32(lo), nil
}

func (d *Device) TimerStart() error { return d.writeByte(regTimerSet, 1) }
func (d *Device) TimerStop() error  { return d.writeByte(regTimerClear, 1) }
