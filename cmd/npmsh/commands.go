package main

import (
	"fmt"

	"npmcore-go/drivers/npm13xx"
	"npmcore-go/shellio"
)

// dispatch routes a tokenized line to its subsystem handler. The handlers
// receive the tokens from their leaf command onward, so shellio.Check sees
// the leaf name in position zero and skips it.
func (sh *shell) dispatch(tokens []string) {
	if len(tokens) < 2 {
		if tokens[0] == "reset" {
			sh.cmdReset()
			return
		}
		fail("unknown command, try help")
		return
	}
	rest := tokens[1:]
	switch tokens[0] {
	case "buck":
		sh.cmdBuck(rest)
	case "ldsw":
		sh.cmdLDSW(rest)
	case "charger":
		sh.cmdCharger(rest)
	case "adc":
		sh.cmdADC(rest)
	case "pof":
		sh.cmdPOF(rest)
	case "gpio":
		sh.cmdGPIO(rest)
	case "led":
		sh.cmdLED(rest)
	case "ship":
		sh.cmdShip(rest)
	case "vbusin":
		sh.cmdVBUS(rest)
	case "timer":
		sh.cmdTimer(rest)
	case "errlog":
		sh.cmdErrLog(rest)
	case "events":
		sh.cmdEvents(rest)
	default:
		fail("unknown command, try help")
	}
}

func (sh *shell) cmdReset() {
	if err := sh.dev.SWReset(); err != nil {
		deviceFail(err, shellio.SetError("software reset"))
		return
	}
	fmt.Println(shellio.FormatSuccess(1, shellio.UnitNone))
}

// deviceFail prints the taxonomy message for err, then the uniform
// unable-to-get/set line. A bad command never propagates further than this.
func deviceFail(err error, what string) {
	if msg := shellio.DeviceErrorMessage(err); msg != "" {
		fail(msg)
	}
	fail(what)
}

// checkArgs wraps shellio.Check with uniform error printing.
func checkArgs(argv []string, spec ...shellio.Arg) (shellio.Values, bool) {
	vals, err := shellio.Check(argv, spec...)
	if err != nil {
		fail(err.Error())
		return shellio.Values{}, false
	}
	return vals, true
}

// buckIndex validates the buck instance index argument.
func buckIndex(vals shellio.Values) (uint8, bool) {
	idx := vals.Index("buck")
	if err := shellio.IndexCheck(idx, npm13xx.BuckCount, "buck"); err != nil {
		fail(err.Error())
		return 0, false
	}
	return uint8(idx), true
}

// pinGuard refuses pins carrying the interrupt or POF function.
func (sh *shell) pinGuard(pin int64) bool {
	if int8(pin) == sh.dev.IntPin() && sh.dev.IntPin() != -1 {
		fail("GPIO used as interrupt")
		return false
	}
	if int8(pin) == sh.dev.POFPin() && sh.dev.POFPin() != -1 {
		fail("GPIO used as POF")
		return false
	}
	return true
}

// approx surfaces a set-then-get quantization delta.
func approx(requested, readback int64) {
	if msg, ok := shellio.ApproxNote(requested, readback); ok {
		note(msg)
	}
}
