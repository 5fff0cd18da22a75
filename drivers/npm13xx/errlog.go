package npm13xx

// ErrLog holds the sticky error registers: why the device last reset and
// which charger/sensor faults latched since the last clear.
type ErrLog struct {
	ResetCause   uint8
	ChargerError uint8
	SensorError  uint8
}

// Reset cause bits.
const (
	ResetCauseShipMode  = 1 << 0
	ResetCauseBoot      = 1 << 1
	ResetCauseWatchdog  = 1 << 2
	ResetCauseLongPress = 1 << 3
	ResetCauseThermal   = 1 << 4
	ResetCauseVSYSLow   = 1 << 5
	ResetCauseSoftReset = 1 << 6
)

// ResetCauseName names a single reset-cause bit for diagnostics.
func ResetCauseName(bit uint8) string {
	switch 1 << bit {
	case ResetCauseShipMode:
		return "ship mode exit"
	case ResetCauseBoot:
		return "cold boot"
	case ResetCauseWatchdog:
		return "watchdog"
	case ResetCauseLongPress:
		return "long press"
	case ResetCauseThermal:
		return "thermal shutdown"
	case ResetCauseVSYSLow:
		return "VSYS low"
	case ResetCauseSoftReset:
		return "soft reset"
	default:
		return "unknown"
	}
}

// ErrLogRead returns the sticky error registers and clears them.
// The clear is best-effort: a failed clear does not mask the log.
func (d *Device) ErrLogRead() (ErrLog, error) {
	var log ErrLog
	v, err := d.readByte(regErrlogRstCause)
	if err != nil {
		return ErrLog{}, err
	}
	log.ResetCause = v
	if v, err = d.readByte(regErrlogChargerErr); err != nil {
		return ErrLog{}, err
	}
	log.ChargerError = v
	if v, err = d.readByte(regErrlogSensorErr); err != nil {
		return ErrLog{}, err
	}
	log.SensorError = v

	clearErr := d.writeByte(regErrlogTaskClear, 1)
	return log, clearErr
}
