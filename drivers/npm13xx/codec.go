package npm13xx

import (
	"math"

	"npmcore-go/x/mathx"
)

// Unit <-> register-code conversions. Every converter returns a typed code
// with an Invalid sentinel instead of an error; callers must check for it.
// Code -> unit round-trips are quantized by the tables, so a set-then-get may
// not reproduce the requested value. The shell layer surfaces the delta.

// Buck output voltage, 1000..3300 mV in 100 mV steps. Exact-match only: the
// regulator has no notion of "closest supported voltage".
type BuckVoltage uint8

const (
	buckVoltageMin_mV  = 1000
	buckVoltageMax_mV  = 3300
	buckVoltageStep_mV = 100

	BuckVoltageInvalid BuckVoltage = 0xFF
)

func BuckVoltageFromMillivolts(mV int32) BuckVoltage {
	if !mathx.Between(mV, buckVoltageMin_mV, buckVoltageMax_mV) ||
		(mV-buckVoltageMin_mV)%buckVoltageStep_mV != 0 {
		return BuckVoltageInvalid
	}
	return BuckVoltage((mV - buckVoltageMin_mV) / buckVoltageStep_mV)
}

func (v BuckVoltage) Millivolts() (int32, bool) {
	if v > BuckVoltage((buckVoltageMax_mV-buckVoltageMin_mV)/buckVoltageStep_mV) {
		return 0, false
	}
	return buckVoltageMin_mV + int32(v)*buckVoltageStep_mV, true
}

// LDO output voltage when a load switch runs in LDO mode, 1000..3300 mV in
// 100 mV steps. Exact-match like the buck table.
type LDSWVoltage uint8

const LDSWVoltageInvalid LDSWVoltage = 0xFF

func LDSWVoltageFromMillivolts(mV int32) LDSWVoltage {
	if !mathx.Between(mV, buckVoltageMin_mV, buckVoltageMax_mV) ||
		(mV-buckVoltageMin_mV)%buckVoltageStep_mV != 0 {
		return LDSWVoltageInvalid
	}
	return LDSWVoltage((mV - buckVoltageMin_mV) / buckVoltageStep_mV)
}

func (v LDSWVoltage) Millivolts() (int32, bool) {
	if v > LDSWVoltage((buckVoltageMax_mV-buckVoltageMin_mV)/buckVoltageStep_mV) {
		return 0, false
	}
	return buckVoltageMin_mV + int32(v)*buckVoltageStep_mV, true
}

// Load switch soft-start current limit, four supported levels.
var softStartCurrent_mA = [...]int32{10, 20, 35, 50}

type SoftStartCurrent uint8

const SoftStartCurrentInvalid SoftStartCurrent = 0xFF

func SoftStartCurrentFromMilliamps(mA int32) SoftStartCurrent {
	for i, v := range softStartCurrent_mA {
		if v == mA {
			return SoftStartCurrent(i)
		}
	}
	return SoftStartCurrentInvalid
}

func (c SoftStartCurrent) Milliamps() (int32, bool) {
	if int(c) >= len(softStartCurrent_mA) {
		return 0, false
	}
	return softStartCurrent_mA[c], true
}

// Power-fail comparator threshold, 2600..3500 mV in 100 mV steps.
type POFThreshold uint8

const (
	pofThresholdMin_mV  = 2600
	pofThresholdMax_mV  = 3500
	pofThresholdStep_mV = 100

	POFThresholdInvalid POFThreshold = 0xFF
)

func POFThresholdFromMillivolts(mV uint32) POFThreshold {
	if !mathx.Between(mV, pofThresholdMin_mV, pofThresholdMax_mV) ||
		(mV-pofThresholdMin_mV)%pofThresholdStep_mV != 0 {
		return POFThresholdInvalid
	}
	return POFThreshold((mV - pofThresholdMin_mV) / pofThresholdStep_mV)
}

func (t POFThreshold) Millivolts() (uint32, bool) {
	if t > POFThreshold((pofThresholdMax_mV-pofThresholdMin_mV)/pofThresholdStep_mV) {
		return 0, false
	}
	return pofThresholdMin_mV + uint32(t)*pofThresholdStep_mV, true
}

// Charger termination voltage. Two disjoint 50 mV ranges, exact-match.
var chargerVTerm_mV = [...]int32{
	3500, 3550, 3600, 3650,
	4000, 4050, 4100, 4150, 4200, 4250, 4300, 4350, 4400, 4450,
}

type ChargerVTerm uint8

const ChargerVTermInvalid ChargerVTerm = 0xFF

func ChargerVTermFromMillivolts(mV int32) ChargerVTerm {
	for i, v := range chargerVTerm_mV {
		if v == mV {
			return ChargerVTerm(i)
		}
	}
	return ChargerVTermInvalid
}

func (c ChargerVTerm) Millivolts() (int32, bool) {
	if int(c) >= len(chargerVTerm_mV) {
		return 0, false
	}
	return chargerVTerm_mV[c], true
}

// Charging current, 32..800 mA in 2 mA hardware steps. Quantizes down to the
// step below; out-of-range requests are invalid rather than clamped.
type ChargerCurrent uint16

const (
	chargerCurrentMin_mA  = 32
	chargerCurrentMax_mA  = 800
	chargerCurrentStep_mA = 2

	ChargerCurrentInvalid ChargerCurrent = 0xFFFF
)

func ChargerCurrentFromMilliamps(mA int32) ChargerCurrent {
	if !mathx.Between(mA, chargerCurrentMin_mA, chargerCurrentMax_mA) {
		return ChargerCurrentInvalid
	}
	return ChargerCurrent((mA - chargerCurrentMin_mA) / chargerCurrentStep_mA)
}

func (c ChargerCurrent) Milliamps() (int32, bool) {
	if c > ChargerCurrent((chargerCurrentMax_mA-chargerCurrentMin_mA)/chargerCurrentStep_mA) {
		return 0, false
	}
	return chargerCurrentMin_mA + int32(c)*chargerCurrentStep_mA, true
}

// Trickle charge voltage, exactly two supported levels.
type TrickleVoltage uint8

const (
	TrickleVoltage2V5 TrickleVoltage = 0
	TrickleVoltage2V9 TrickleVoltage = 1

	TrickleVoltageInvalid TrickleVoltage = 0xFF
)

func TrickleVoltageFromMillivolts(mV int32) TrickleVoltage {
	switch mV {
	case 2500:
		return TrickleVoltage2V5
	case 2900:
		return TrickleVoltage2V9
	default:
		return TrickleVoltageInvalid
	}
}

func (t TrickleVoltage) Millivolts() (int32, bool) {
	switch t {
	case TrickleVoltage2V5:
		return 2500, true
	case TrickleVoltage2V9:
		return 2900, true
	default:
		return 0, false
	}
}

// Termination current as percent of the charging current.
type TermCurrent uint8

const (
	TermCurrent10 TermCurrent = 0
	TermCurrent20 TermCurrent = 1

	TermCurrentInvalid TermCurrent = 0xFF
)

func TermCurrentFromPercent(pct uint32) TermCurrent {
	switch pct {
	case 10:
		return TermCurrent10
	case 20:
		return TermCurrent20
	default:
		return TermCurrentInvalid
	}
}

func (t TermCurrent) Percent() (uint32, bool) {
	switch t {
	case TermCurrent10:
		return 10, true
	case TermCurrent20:
		return 20, true
	default:
		return 0, false
	}
}

// Battery NTC nominal resistance selector.
type NTCType uint8

const (
	NTCTypeHiZ  NTCType = 0 // thermistor absent, limits unusable
	NTCType10k  NTCType = 1
	NTCType47k  NTCType = 2
	NTCType100k NTCType = 3

	NTCTypeInvalid NTCType = 0xFF
)

func NTCTypeFromOhms(ohms uint32) NTCType {
	switch ohms {
	case 0:
		return NTCTypeHiZ
	case 10000:
		return NTCType10k
	case 47000:
		return NTCType47k
	case 100000:
		return NTCType100k
	default:
		return NTCTypeInvalid
	}
}

func (t NTCType) Ohms() (uint32, bool) {
	switch t {
	case NTCTypeHiZ:
		return 0, true
	case NTCType10k:
		return 10000, true
	case NTCType47k:
		return 47000, true
	case NTCType100k:
		return 100000, true
	default:
		return 0, false
	}
}

// VBUS input current limit: 100 mA, then 500..1500 mA in 100 mA steps.
var vbusILim_mA = [...]int32{
	100, 500, 600, 700, 800, 900, 1000, 1100, 1200, 1300, 1400, 1500,
}

type VBUSCurrentLimit uint8

const VBUSCurrentLimitInvalid VBUSCurrentLimit = 0xFF

func VBUSCurrentLimitFromMilliamps(mA int32) VBUSCurrentLimit {
	for i, v := range vbusILim_mA {
		if v == mA {
			return VBUSCurrentLimit(i)
		}
	}
	return VBUSCurrentLimitInvalid
}

func (l VBUSCurrentLimit) Milliamps() (int32, bool) {
	if int(l) >= len(vbusILim_mA) {
		return 0, false
	}
	return vbusILim_mA[l], true
}

// Ship-hold button debounce times in milliseconds.
var shipTime_ms = [...]uint16{16, 32, 64, 96, 304, 608, 1008, 3008}

type ShipTime uint8

const ShipTimeInvalid ShipTime = 0xFF

func ShipTimeFromMilliseconds(ms uint32) ShipTime {
	for i, v := range shipTime_ms {
		if uint32(v) == ms {
			return ShipTime(i)
		}
	}
	return ShipTimeInvalid
}

func (t ShipTime) Milliseconds() (uint32, bool) {
	if int(t) >= len(shipTime_ms) {
		return 0, false
	}
	return uint32(shipTime_ms[t]), true
}

// NTC threshold codes. The comparator works on the 10-bit ratio of the
// thermistor divider; degrees go through the beta equation and come back
// quantized, which is where most set-then-get deltas originate.

const (
	ntcCodeBits = 10
	ntcCodeMax  = 1<<ntcCodeBits - 1

	kelvinAt0C  = 273.15
	tNominalK   = 25 + kelvinAt0C
	ntcTempMinC = -20
	ntcTempMaxC = 60
)

// NTCCodeInvalid is outside the 10-bit comparator range.
const NTCCodeInvalid uint16 = 0xFFFF

// NTCCodeFromCelsius converts a threshold temperature to a comparator code
// for a thermistor with the given beta.
func NTCCodeFromCelsius(tempC int16, beta uint32) uint16 {
	if beta == 0 || !mathx.Between(tempC, ntcTempMinC, ntcTempMaxC) {
		return NTCCodeInvalid
	}
	tK := float64(tempC) + kelvinAt0C
	ratio := math.Exp(float64(beta) * (1/tK - 1/tNominalK)) // R/R25
	code := math.Round(ntcCodeMax * ratio / (1 + ratio))
	return uint16(mathx.Clamp(code, 1, ntcCodeMax-1))
}

// NTCCodeToCelsius inverts NTCCodeFromCelsius.
func NTCCodeToCelsius(code uint16, beta uint32) (int16, bool) {
	if beta == 0 || code == 0 || code >= ntcCodeMax {
		return 0, false
	}
	ratio := float64(code) / float64(ntcCodeMax-code)
	tK := 1 / (math.Log(ratio)/float64(beta) + 1/tNominalK)
	return int16(math.Round(tK - kelvinAt0C)), true
}

// ADC result scaling.

// adcVBATMillivolts converts a 10-bit VBAT sample; full scale is 5000 mV.
func adcVBATMillivolts(code uint16) int32 {
	return int32((uint32(code)*5000 + ntcCodeMax/2) / ntcCodeMax)
}

// adcDieMilliCelsius converts a 10-bit die-temperature sample.
// T[mC] = 394670 - code * 792.6.
func adcDieMilliCelsius(code uint16) int32 {
	return 394670 - int32(code)*7926/10
}
