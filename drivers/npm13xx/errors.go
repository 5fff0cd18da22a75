package npm13xx

import (
	"errors"

	"npmcore-go/errcode"
)

// Sentinel errors (TinyGo-safe; no fmt).
var (
	errInvalidGroup = errors.New("no such event group")

	ErrNoSuchInstance = errors.New("no such instance")

	// POF prerequisites.
	ErrPOFPinNotWired  = &errcode.E{C: errcode.ConfigError, Msg: "device POF pin not configured"}
	ErrPOFLineNotWired = &errcode.E{C: errcode.ConfigError, Msg: "host POF line not configured"}
	ErrNilCallback     = &errcode.E{C: errcode.ConfigError, Msg: "callback not set"}
)
