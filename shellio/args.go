// Package shellio is the argument validation and result vocabulary shared by
// every subsystem command. It parses positional tokens against a declared
// schema, range-checks, and normalizes outcomes into the uniform message set;
// it is strictly side-effect-free and never touches the bus, so a command can
// be rejected mid-parse without having touched hardware.
package shellio

import (
	"strconv"
	"strings"

	"npmcore-go/errcode"
)

// Kind is the semantic type of one argument slot.
type Kind uint8

const (
	Int   Kind = iota // signed value
	Uint              // unsigned value
	Bool              // on/enable/true, off/disable/false, 0/1
	Index             // unsigned peripheral instance index
)

// wording distinguishes missing values from missing instance indices in the
// combined missing-argument message.
func (k Kind) wording() string {
	if k == Index {
		return "instance index"
	}
	return "value"
}

// Arg declares one expected argument.
type Arg struct {
	Kind Kind
	Name string
}

// MaxArgs is the largest schema any command declares.
const MaxArgs = 3

// Error is a validation failure. It always maps to errcode.Validation so a
// bad command stays a benign outcome for the command loop.
type Error struct{ msg string }

func (e *Error) Error() string      { return e.msg }
func (e *Error) Code() errcode.Code { return errcode.Validation }

func errf(parts ...string) *Error {
	return &Error{msg: strings.Join(parts, "")}
}

type value struct {
	arg Arg
	i   int64
	u   uint64
	b   bool
}

// Values holds the typed results of one validated command, consumed by name.
type Values struct {
	vals []value
}

func (v Values) lookup(name string, k Kind) value {
	for _, val := range v.vals {
		if val.arg.Name == name && val.arg.Kind == k {
			return val
		}
	}
	panic("shellio: no " + k.wording() + " argument " + name)
}

// Int returns the named signed value. Asking for an undeclared name or the
// wrong kind is a programming error and panics.
func (v Values) Int(name string) int64 { return v.lookup(name, Int).i }

// Uint returns the named unsigned value.
func (v Values) Uint(name string) uint64 { return v.lookup(name, Uint).u }

// Bool returns the named boolean value.
func (v Values) Bool(name string) bool { return v.lookup(name, Bool).b }

// Index returns the named instance index.
func (v Values) Index(name string) uint64 { return v.lookup(name, Index).u }

// Check validates argv against the declared schema. argv[0] is the command
// name and is always skipped; remaining tokens match slots positionally and
// extra tokens are ignored. Missing arguments produce exactly one combined
// message naming up to MaxArgs slots.
func Check(argv []string, spec ...Arg) (Values, error) {
	if len(spec) > MaxArgs {
		panic("shellio: schema longer than MaxArgs")
	}
	var args []string
	if len(argv) > 1 {
		args = argv[1:]
	}

	if len(args) < len(spec) {
		return Values{}, missingError(spec[len(args):])
	}

	vals := make([]value, len(spec))
	for i, a := range spec {
		tok := args[i]
		v := value{arg: a}
		switch a.Kind {
		case Int:
			n, err := strconv.ParseInt(tok, 0, 32)
			if err != nil {
				return Values{}, errf(a.Name, " has to be an integer")
			}
			v.i = n
		case Uint, Index:
			n, err := strconv.ParseUint(tok, 0, 32)
			if err != nil {
				return Values{}, errf(a.Name, " has to be a non-negative integer")
			}
			v.u = n
		case Bool:
			b, err := parseBool(tok)
			if err != nil {
				return Values{}, errf("invalid ", a.Name, " value")
			}
			v.b = b
		}
		vals[i] = v
	}
	return Values{vals: vals}, nil
}

// parseBool accepts the exact literals on/enable/true and off/disable/false;
// anything else must parse as unsigned 0 or 1. Plain strconv.ParseBool would
// take t/T/1 style forms the original command set rejects.
func parseBool(tok string) (bool, error) {
	switch tok {
	case "on", "enable", "true":
		return true, nil
	case "off", "disable", "false":
		return false, nil
	}
	n, err := strconv.ParseUint(tok, 0, 32)
	if err != nil || n > 1 {
		return false, &Error{msg: "not a boolean"}
	}
	return n == 1, nil
}

func missingError(missing []Arg) *Error {
	var b strings.Builder
	b.WriteString("missing ")
	n := len(missing)
	if n > MaxArgs {
		n = MaxArgs
	}
	for i := 0; i < n; i++ {
		switch {
		case i == 0:
		case i == n-1:
			b.WriteString(" and ")
		default:
			b.WriteString(", ")
		}
		b.WriteString(missing[i].Name)
		b.WriteString(" ")
		b.WriteString(missing[i].Kind.wording())
	}
	return &Error{msg: b.String()}
}

// RangeCheck verifies v lies in [min, max].
func RangeCheck(v, min, max int64, name string) error {
	if v >= min && v <= max {
		return nil
	}
	return errf(name, " value out of range")
}

// IndexCheck verifies an instance index refers to an existing instance.
func IndexCheck(idx, count uint64, name string) error {
	if idx < count {
		return nil
	}
	return errf(name, " instance index is too high: no such instance")
}
