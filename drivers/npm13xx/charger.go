package npm13xx

import (
	"npmcore-go/errcode"
)

// ChargerModule is the bitmask of independently switchable charger functions.
type ChargerModule uint8

const (
	ChargerModuleCharger  ChargerModule = 1 << 0
	ChargerModuleRecharge ChargerModule = 1 << 1
	ChargerModuleNTC      ChargerModule = 1 << 2
	ChargerModuleFullCool ChargerModule = 1 << 3
)

func (m ChargerModule) Has(flag ChargerModule) bool { return m&flag != 0 }

// ChargerModuleEnable switches the given modules on.
func (d *Device) ChargerModuleEnable(mask ChargerModule) error {
	return d.writeByte(regChargerEnableSet, byte(mask))
}

// ChargerModuleDisable switches the given modules off.
func (d *Device) ChargerModuleDisable(mask ChargerModule) error {
	return d.writeByte(regChargerEnableClr, byte(mask))
}

// ChargerModules reads the enabled-module mask.
func (d *Device) ChargerModules() (ChargerModule, error) {
	v, err := d.readByte(regChargerEnableSet)
	return ChargerModule(v), err
}

// ChargerVTermKind selects the normal or reduced (warm battery) termination
// voltage; both go through the same accessor.
type ChargerVTermKind uint8

const (
	ChargerVTermNormal ChargerVTermKind = iota
	ChargerVTermWarm
)

func chargerVTermReg(kind ChargerVTermKind) uint16 {
	if kind == ChargerVTermWarm {
		return regChargerVTermR
	}
	return regChargerVTerm
}

func (d *Device) ChargerVTermSet(kind ChargerVTermKind, mV int32) error {
	code := ChargerVTermFromMillivolts(mV)
	if code == ChargerVTermInvalid {
		return errcode.InvalidParam
	}
	return d.writeByte(chargerVTermReg(kind), byte(code))
}

func (d *Device) ChargerVTermGet(kind ChargerVTermKind) (int32, error) {
	v, err := d.readByte(chargerVTermReg(kind))
	if err != nil {
		return 0, err
	}
	mV, ok := ChargerVTerm(v).Millivolts()
	if !ok {
		return 0, errcode.InvalidMeasurement
	}
	return mV, nil
}

// ChargerCurrentSet programs the charging current. The hardware step is 2 mA;
// odd requests quantize down, which a set-then-get will reveal.
func (d *Device) ChargerCurrentSet(mA int32) error {
	code := ChargerCurrentFromMilliamps(mA)
	if code == ChargerCurrentInvalid {
		return errcode.InvalidParam
	}
	if err := d.writeByte(regChargerISetMSB, byte(code>>1)); err != nil {
		return err
	}
	return d.writeByte(regChargerISetLSB, byte(code&1))
}

func (d *Device) ChargerCurrentGet() (int32, error) {
	msb, err := d.readByte(regChargerISetMSB)
	if err != nil {
		return 0, err
	}
	lsb, err := d.readByte(regChargerISetLSB)
	if err != nil {
		return 0, err
	}
	mA, ok := ChargerCurrent(uint16(msb)<<1 | uint16(lsb&1)).Milliamps()
	if !ok {
		return 0, errcode.InvalidMeasurement
	}
	return mA, nil
}

func (d *Device) ChargerTrickleSet(mV int32) error {
	code := TrickleVoltageFromMillivolts(mV)
	if code == TrickleVoltageInvalid {
		return errcode.InvalidParam
	}
	return d.writeByte(regChargerVTrickle, byte(code))
}

func (d *Device) ChargerTrickleGet() (int32, error) {
	v, err := d.readByte(regChargerVTrickle)
	if err != nil {
		return 0, err
	}
	mV, ok := TrickleVoltage(v).Millivolts()
	if !ok {
		return 0, errcode.InvalidMeasurement
	}
	return mV, nil
}

func (d *Device) ChargerTermCurrentSet(pct uint32) error {
	code := TermCurrentFromPercent(pct)
	if code == TermCurrentInvalid {
		return errcode.InvalidParam
	}
	return d.writeByte(regChargerITermSel, byte(code))
}

func (d *Device) ChargerTermCurrentGet() (uint32, error) {
	v, err := d.readByte(regChargerITermSel)
	if err != nil {
		return 0, err
	}
	pct, ok := TermCurrent(v).Percent()
	if !ok {
		return 0, errcode.InvalidMeasurement
	}
	return pct, nil
}

// TempThreshold selects one of the four NTC comparator thresholds.
type TempThreshold uint8

const (
	TempThresholdCold TempThreshold = iota
	TempThresholdCool
	TempThresholdWarm
	TempThresholdHot
)

func (t TempThreshold) String() string {
	switch t {
	case TempThresholdCold:
		return "cold"
	case TempThresholdCool:
		return "cool"
	case TempThresholdWarm:
		return "warm"
	case TempThresholdHot:
		return "hot"
	default:
		return "unknown"
	}
}

func tempThresholdReg(t TempThreshold) (msb, lsb uint16, ok bool) {
	switch t {
	case TempThresholdCold:
		return regChargerNTCColdMSB, regChargerNTCColdLSB, true
	case TempThresholdCool:
		return regChargerNTCCoolMSB, regChargerNTCCoolLSB, true
	case TempThresholdWarm:
		return regChargerNTCWarmMSB, regChargerNTCWarmLSB, true
	case TempThresholdHot:
		return regChargerNTCHotMSB, regChargerNTCHotLSB, true
	default:
		return 0, 0, false
	}
}

// ChargerTempThresholdSet converts degrees through the beta equation and
// writes the 10-bit comparator code (8 MSBs, then 2 LSBs).
func (d *Device) ChargerTempThresholdSet(t TempThreshold, tempC int16) error {
	msbReg, lsbReg, ok := tempThresholdReg(t)
	if !ok {
		return errcode.InvalidParam
	}
	code := NTCCodeFromCelsius(tempC, d.ntcBeta)
	if code == NTCCodeInvalid {
		return errcode.InvalidParam
	}
	if err := d.writeByte(msbReg, byte(code>>2)); err != nil {
		return err
	}
	return d.writeByte(lsbReg, byte(code&0x03))
}

// ChargerTempThresholdGet reads the comparator code back as degrees Celsius.
// Quantization means this may differ from the value that was set.
func (d *Device) ChargerTempThresholdGet(t TempThreshold) (int16, error) {
	msbReg, lsbReg, ok := tempThresholdReg(t)
	if !ok {
		return 0, errcode.InvalidParam
	}
	msb, err := d.readByte(msbReg)
	if err != nil {
		return 0, err
	}
	lsb, err := d.readByte(lsbReg)
	if err != nil {
		return 0, err
	}
	tempC, ok := NTCCodeToCelsius(uint16(msb)<<2|uint16(lsb&0x03), d.ntcBeta)
	if !ok {
		return 0, errcode.InvalidMeasurement
	}
	return tempC, nil
}

// ChargerStatus bits.
type ChargerStatus uint8

const (
	ChargerStatusBatteryDetected ChargerStatus = 1 << 0
	ChargerStatusCompleted       ChargerStatus = 1 << 1
	ChargerStatusTrickle         ChargerStatus = 1 << 2
	ChargerStatusConstantCurrent ChargerStatus = 1 << 3
	ChargerStatusConstantVoltage ChargerStatus = 1 << 4
	ChargerStatusRecharge        ChargerStatus = 1 << 5
	ChargerStatusDieHighTemp     ChargerStatus = 1 << 6
	ChargerStatusSupplement      ChargerStatus = 1 << 7
)

func (s ChargerStatus) Has(flag ChargerStatus) bool { return s&flag != 0 }

func (d *Device) ChargerStatusGet() (ChargerStatus, error) {
	v, err := d.readByte(regChargerStatus)
	return ChargerStatus(v), err
}
