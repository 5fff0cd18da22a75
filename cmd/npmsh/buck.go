package main

import (
	"fmt"

	"npmcore-go/drivers/npm13xx"
	"npmcore-go/shellio"
)

func (sh *shell) cmdBuck(tokens []string) {
	if len(tokens) == 0 {
		fail("unknown buck subcommand")
		return
	}
	switch tokens[0] {
	case "status":
		sh.buckStatusGet(tokens)
	case "state":
		sh.buckStateSet(tokens)
	case "voltage":
		sh.cmdBuckVoltage(tokens[1:])
	case "discharge":
		sh.buckDischarge(tokens)
	case "gpio":
		sh.buckGPIO(tokens)
	default:
		fail("unknown buck subcommand")
	}
}

func (sh *shell) buckStatusGet(argv []string) {
	vals, ok := checkArgs(argv, shellio.Arg{Kind: shellio.Index, Name: "buck"})
	if !ok {
		return
	}
	idx, ok := buckIndex(vals)
	if !ok {
		return
	}
	up, err := sh.dev.BuckStatus(idx)
	if err != nil {
		deviceFail(err, shellio.GetError("buck status"))
		return
	}
	fmt.Println(shellio.FormatValue(boolInt(up), shellio.UnitNone))
}

func (sh *shell) buckStateSet(argv []string) {
	vals, ok := checkArgs(argv,
		shellio.Arg{Kind: shellio.Index, Name: "buck"},
		shellio.Arg{Kind: shellio.Bool, Name: "state"},
	)
	if !ok {
		return
	}
	idx, ok := buckIndex(vals)
	if !ok {
		return
	}
	on := vals.Bool("state")
	if err := sh.dev.BuckEnable(idx, on); err != nil {
		deviceFail(err, shellio.SetError("buck state"))
		return
	}
	fmt.Println(shellio.FormatSuccess(boolInt(on), shellio.UnitNone))
}

func (sh *shell) cmdBuckVoltage(tokens []string) {
	if len(tokens) < 2 {
		fail("usage: buck voltage normal|retention set|get ...")
		return
	}
	var kind npm13xx.BuckVoltageKind
	switch tokens[0] {
	case "normal":
		kind = npm13xx.BuckVoltageNormal
	case "retention":
		kind = npm13xx.BuckVoltageRetention
	default:
		fail("unknown buck voltage target")
		return
	}
	switch tokens[1] {
	case "set":
		sh.buckVoltageSet(tokens[1:], kind)
	case "get":
		sh.buckVoltageGet(tokens[1:], kind)
	default:
		fail("unknown buck voltage subcommand")
	}
}

func (sh *shell) buckVoltageSet(argv []string, kind npm13xx.BuckVoltageKind) {
	vals, ok := checkArgs(argv,
		shellio.Arg{Kind: shellio.Index, Name: "buck"},
		shellio.Arg{Kind: shellio.Uint, Name: "voltage"},
	)
	if !ok {
		return
	}
	idx, ok := buckIndex(vals)
	if !ok {
		return
	}
	mV := int64(vals.Uint("voltage"))
	if npm13xx.BuckVoltageFromMillivolts(int32(mV)) == npm13xx.BuckVoltageInvalid {
		fail(shellio.ConvertError("millivolts", "voltage code"))
		return
	}
	if err := sh.dev.BuckVoltageSet(idx, kind, int32(mV)); err != nil {
		deviceFail(err, shellio.SetError("buck voltage"))
		return
	}
	if got, err := sh.dev.BuckVoltageGet(idx, kind); err == nil {
		approx(mV, int64(got))
	}
	fmt.Println(shellio.FormatSuccess(mV, shellio.UnitMillivolt))
}

func (sh *shell) buckVoltageGet(argv []string, kind npm13xx.BuckVoltageKind) {
	vals, ok := checkArgs(argv, shellio.Arg{Kind: shellio.Index, Name: "buck"})
	if !ok {
		return
	}
	idx, ok := buckIndex(vals)
	if !ok {
		return
	}
	mV, err := sh.dev.BuckVoltageGet(idx, kind)
	if err != nil {
		deviceFail(err, shellio.GetError("buck voltage"))
		return
	}
	fmt.Println(shellio.FormatValue(int64(mV), shellio.UnitMillivolt))
}

func (sh *shell) buckDischarge(tokens []string) {
	if len(tokens) < 2 {
		fail("usage: buck discharge set|get ...")
		return
	}
	switch tokens[1] {
	case "set":
		vals, ok := checkArgs(tokens[1:],
			shellio.Arg{Kind: shellio.Index, Name: "buck"},
			shellio.Arg{Kind: shellio.Bool, Name: "active discharge"},
		)
		if !ok {
			return
		}
		idx, ok := buckIndex(vals)
		if !ok {
			return
		}
		on := vals.Bool("active discharge")
		if err := sh.dev.BuckActiveDischargeSet(idx, on); err != nil {
			deviceFail(err, shellio.SetError("active discharge"))
			return
		}
		fmt.Println(shellio.FormatSuccess(boolInt(on), shellio.UnitNone))
	case "get":
		vals, ok := checkArgs(tokens[1:], shellio.Arg{Kind: shellio.Index, Name: "buck"})
		if !ok {
			return
		}
		idx, ok := buckIndex(vals)
		if !ok {
			return
		}
		on, err := sh.dev.BuckActiveDischargeGet(idx)
		if err != nil {
			deviceFail(err, shellio.GetError("active discharge"))
			return
		}
		fmt.Println(shellio.FormatValue(boolInt(on), shellio.UnitNone))
	default:
		fail("unknown buck discharge subcommand")
	}
}

func (sh *shell) buckGPIO(tokens []string) {
	if len(tokens) < 2 {
		fail("usage: buck gpio set|get ...")
		return
	}
	switch tokens[1] {
	case "set":
		vals, ok := checkArgs(tokens[1:],
			shellio.Arg{Kind: shellio.Index, Name: "buck"},
			shellio.Arg{Kind: shellio.Int, Name: "GPIO number"},
			shellio.Arg{Kind: shellio.Bool, Name: "GPIO polarity"},
		)
		if !ok {
			return
		}
		idx, ok := buckIndex(vals)
		if !ok {
			return
		}
		pin := vals.Int("GPIO number")
		if pin != -1 && !sh.pinGuard(pin) {
			return
		}
		cfg := npm13xx.BuckGPIOConfig{Pin: int8(pin), Inverted: vals.Bool("GPIO polarity")}
		if err := sh.dev.BuckGPIOSet(idx, cfg); err != nil {
			deviceFail(err, shellio.SetError("GPIO config"))
			return
		}
		fmt.Println(shellio.FormatSuccess(pin, shellio.UnitNone))
	case "get":
		vals, ok := checkArgs(tokens[1:], shellio.Arg{Kind: shellio.Index, Name: "buck"})
		if !ok {
			return
		}
		idx, ok := buckIndex(vals)
		if !ok {
			return
		}
		cfg, err := sh.dev.BuckGPIOGet(idx)
		if err != nil {
			deviceFail(err, shellio.GetError("GPIO config"))
			return
		}
		fmt.Println(shellio.FormatValue(int64(cfg.Pin), shellio.UnitNone))
	default:
		fail("unknown buck gpio subcommand")
	}
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
