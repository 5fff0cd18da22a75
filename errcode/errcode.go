package errcode

// Code is a stable error identifier shared by the driver and the shell layer.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK Code = "ok"

	// Device/transport outcomes.
	IOError            Code = "io_error"      // bus transaction failed, phase-indistinguishable
	InvalidParam       Code = "invalid_param" // value outside the device's accepted domain
	InvalidMeasurement Code = "invalid_meas"  // reading is not yet valid
	Timeout            Code = "timeout"       // bounded wait expired

	// Host-side outcomes.
	ConfigError Code = "config_error" // prerequisite pin/feature is not wired up
	Validation  Code = "validation"   // command input failed schema/range checks

	Error Code = "error" // generic fallback
)

// Optional wrapper when we want to keep context and a cause.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	if e.Msg != "" {
		return string(e.C) + ": " + e.Msg
	}
	return string(e.C)
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}
