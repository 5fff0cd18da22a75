package shellio

import (
	"strconv"

	"npmcore-go/errcode"
)

// Unit tags a value for display.
type Unit uint8

const (
	UnitNone Unit = iota
	UnitMillivolt
	UnitMilliamp
	UnitCelsius
	UnitOhm
	UnitPercent
)

func (u Unit) String() string {
	switch u {
	case UnitMillivolt:
		return " mV"
	case UnitMilliamp:
		return " mA"
	case UnitCelsius:
		return "*C"
	case UnitOhm:
		return " ohms"
	case UnitPercent:
		return "%"
	default:
		return ""
	}
}

// FormatValue renders a read-back value.
func FormatValue(v int64, u Unit) string {
	return "Value: " + strconv.FormatInt(v, 10) + u.String() + "."
}

// FormatSuccess renders a successful write.
func FormatSuccess(v int64, u Unit) string {
	return "Success: " + strconv.FormatInt(v, 10) + u.String() + "."
}

// GetError is the uniform message for a failed read of <what>.
func GetError(what string) string { return "unable to get " + what }

// SetError is the uniform message for a failed write of <what>.
func SetError(what string) string { return "unable to set " + what }

// ConvertError is the uniform message for a unit conversion with no table
// match.
func ConvertError(src, dst string) string {
	return "unable to convert " + src + " to " + dst
}

// Hint renders one line of an enumerated-choices hint.
func Hint(index int, text string) string {
	return strconv.Itoa(index) + "-" + text
}

// DeviceErrorMessage maps the driver error taxonomy onto the uniform
// user-facing strings. It returns "" for nil so callers can gate on it.
func DeviceErrorMessage(err error) string {
	switch errcode.Of(err) {
	case errcode.OK:
		return ""
	case errcode.IOError:
		return "IO error"
	case errcode.InvalidParam:
		return "invalid parameter for device function"
	case errcode.InvalidMeasurement:
		return "invalid measurement"
	case errcode.Timeout:
		return "timed out waiting for the device"
	case errcode.ConfigError, errcode.Validation:
		return err.Error()
	default:
		return err.Error()
	}
}

// ApproxNote reports a set-then-get quantization delta. Table-backed codes
// round; hiding the discrepancy would let callers believe a value the device
// never stored.
func ApproxNote(requested, readback int64) (string, bool) {
	if requested == readback {
		return "", false
	}
	return "requested value was " + strconv.FormatInt(requested, 10) +
		" but reading will return " + strconv.FormatInt(readback, 10) +
		" due to approximations", true
}
