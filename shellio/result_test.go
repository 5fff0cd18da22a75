package shellio

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"npmcore-go/errcode"
)

func TestFormatting(t *testing.T) {
	assert.Equal(t, "Value: 3300 mV.", FormatValue(3300, UnitMillivolt))
	assert.Equal(t, "Success: 800 mA.", FormatSuccess(800, UnitMilliamp))
	assert.Equal(t, "Value: -20*C.", FormatValue(-20, UnitCelsius))
	assert.Equal(t, "Value: 10000 ohms.", FormatValue(10000, UnitOhm))
	assert.Equal(t, "Value: 10%.", FormatValue(10, UnitPercent))
	assert.Equal(t, "Value: 5.", FormatValue(5, UnitNone))
}

func TestUniformErrorMessages(t *testing.T) {
	assert.Equal(t, "unable to get charging current", GetError("charging current"))
	assert.Equal(t, "unable to set charging current", SetError("charging current"))
	assert.Equal(t, "unable to convert millivolts to register code",
		ConvertError("millivolts", "register code"))
}

func TestHint(t *testing.T) {
	assert.Equal(t, "0-cold", Hint(0, "cold"))
	assert.Equal(t, "3-hot", Hint(3, "hot"))
}

func TestDeviceErrorMessage(t *testing.T) {
	assert.Equal(t, "", DeviceErrorMessage(nil))
	assert.Equal(t, "IO error", DeviceErrorMessage(errcode.IOError))
	assert.Equal(t, "invalid parameter for device function", DeviceErrorMessage(errcode.InvalidParam))
	assert.Equal(t, "invalid measurement", DeviceErrorMessage(errcode.InvalidMeasurement))
	assert.Equal(t, "timed out waiting for the device", DeviceErrorMessage(errcode.Timeout))

	// Wrapped errors carry their code through.
	wrapped := &errcode.E{C: errcode.IOError, Msg: "scan failed"}
	assert.Equal(t, "IO error", DeviceErrorMessage(wrapped))

	// Validation and config errors speak for themselves.
	assert.Equal(t, "missing voltage value", DeviceErrorMessage(&Error{msg: "missing voltage value"}))
	plain := errors.New("something else")
	assert.Equal(t, "something else", DeviceErrorMessage(plain))
}

func TestApproxNote(t *testing.T) {
	msg, ok := ApproxNote(301, 300)
	assert.True(t, ok)
	assert.Equal(t, "requested value was 301 but reading will return 300 due to approximations", msg)

	msg, ok = ApproxNote(300, 300)
	assert.False(t, ok)
	assert.Empty(t, msg)
}
