package main

import (
	"fmt"

	"npmcore-go/drivers/npm13xx"
	"npmcore-go/shellio"
)

func (sh *shell) cmdLDSW(tokens []string) {
	if len(tokens) == 0 {
		fail("unknown ldsw subcommand")
		return
	}
	switch tokens[0] {
	case "status":
		sh.ldswStatusGet(tokens)
	case "state":
		sh.ldswStateSet(tokens)
	case "mode":
		sh.ldswMode(tokens)
	case "voltage":
		sh.ldswVoltage(tokens)
	case "discharge":
		sh.ldswDischarge(tokens)
	case "softstart":
		sh.ldswSoftStart(tokens[1:])
	case "gpio":
		sh.ldswGPIO(tokens)
	default:
		fail("unknown ldsw subcommand")
	}
}

// ldswIndex validates the load switch instance index argument.
func ldswIndex(vals shellio.Values) (uint8, bool) {
	idx := vals.Index("LDSW")
	if err := shellio.IndexCheck(idx, npm13xx.LDSWCount, "LDSW"); err != nil {
		fail(err.Error())
		return 0, false
	}
	return uint8(idx), true
}

func (sh *shell) ldswStatusGet(argv []string) {
	vals, ok := checkArgs(argv, shellio.Arg{Kind: shellio.Index, Name: "LDSW"})
	if !ok {
		return
	}
	idx, ok := ldswIndex(vals)
	if !ok {
		return
	}
	up, err := sh.dev.LDSWStatus(idx)
	if err != nil {
		deviceFail(err, shellio.GetError("LDSW status"))
		return
	}
	fmt.Println(shellio.FormatValue(boolInt(up), shellio.UnitNone))
}

func (sh *shell) ldswStateSet(argv []string) {
	vals, ok := checkArgs(argv,
		shellio.Arg{Kind: shellio.Index, Name: "LDSW"},
		shellio.Arg{Kind: shellio.Bool, Name: "status"},
	)
	if !ok {
		return
	}
	idx, ok := ldswIndex(vals)
	if !ok {
		return
	}
	on := vals.Bool("status")
	if err := sh.dev.LDSWEnable(idx, on); err != nil {
		deviceFail(err, shellio.SetError("LDSW status"))
		return
	}
	fmt.Println(shellio.FormatSuccess(boolInt(on), shellio.UnitNone))
}

func (sh *shell) ldswMode(tokens []string) {
	if len(tokens) < 2 {
		fail("usage: ldsw mode set|get ...")
		return
	}
	switch tokens[1] {
	case "set":
		vals, ok := checkArgs(tokens[1:],
			shellio.Arg{Kind: shellio.Index, Name: "LDSW"},
			shellio.Arg{Kind: shellio.Uint, Name: "mode"},
		)
		if !ok {
			return
		}
		idx, ok := ldswIndex(vals)
		if !ok {
			return
		}
		mode := vals.Uint("mode")
		if mode > uint64(npm13xx.LDSWModeLDO) {
			fail("wrong mode")
			fail(shellio.Hint(0, "LOADSW"))
			fail(shellio.Hint(1, "LDO"))
			return
		}
		if err := sh.dev.LDSWModeSet(idx, npm13xx.LDSWMode(mode)); err != nil {
			deviceFail(err, shellio.SetError("LDSW mode"))
			return
		}
		fmt.Println(shellio.FormatSuccess(int64(mode), shellio.UnitNone))
	case "get":
		vals, ok := checkArgs(tokens[1:], shellio.Arg{Kind: shellio.Index, Name: "LDSW"})
		if !ok {
			return
		}
		idx, ok := ldswIndex(vals)
		if !ok {
			return
		}
		mode, err := sh.dev.LDSWModeGet(idx)
		if err != nil {
			deviceFail(err, shellio.GetError("LDSW mode"))
			return
		}
		fmt.Println(shellio.FormatValue(int64(mode), shellio.UnitNone))
	default:
		fail("unknown ldsw mode subcommand")
	}
}

func (sh *shell) ldswVoltage(tokens []string) {
	if len(tokens) < 2 {
		fail("usage: ldsw voltage set|get ...")
		return
	}
	switch tokens[1] {
	case "set":
		vals, ok := checkArgs(tokens[1:],
			shellio.Arg{Kind: shellio.Index, Name: "LDSW"},
			shellio.Arg{Kind: shellio.Uint, Name: "voltage"},
		)
		if !ok {
			return
		}
		idx, ok := ldswIndex(vals)
		if !ok {
			return
		}
		mV := int64(vals.Uint("voltage"))
		if npm13xx.LDSWVoltageFromMillivolts(int32(mV)) == npm13xx.LDSWVoltageInvalid {
			fail(shellio.ConvertError("millivolts", "LDSW voltage"))
			return
		}
		if err := sh.dev.LDSWVoltageSet(idx, int32(mV)); err != nil {
			deviceFail(err, shellio.SetError("LDSW voltage"))
			return
		}
		fmt.Println(shellio.FormatSuccess(mV, shellio.UnitMillivolt))
	case "get":
		vals, ok := checkArgs(tokens[1:], shellio.Arg{Kind: shellio.Index, Name: "LDSW"})
		if !ok {
			return
		}
		idx, ok := ldswIndex(vals)
		if !ok {
			return
		}
		mV, err := sh.dev.LDSWVoltageGet(idx)
		if err != nil {
			deviceFail(err, shellio.GetError("LDSW voltage"))
			return
		}
		fmt.Println(shellio.FormatValue(int64(mV), shellio.UnitMillivolt))
	default:
		fail("unknown ldsw voltage subcommand")
	}
}

func (sh *shell) ldswDischarge(tokens []string) {
	if len(tokens) < 2 {
		fail("usage: ldsw discharge set|get ...")
		return
	}
	switch tokens[1] {
	case "set":
		vals, ok := checkArgs(tokens[1:],
			shellio.Arg{Kind: shellio.Index, Name: "LDSW"},
			shellio.Arg{Kind: shellio.Bool, Name: "status"},
		)
		if !ok {
			return
		}
		idx, ok := ldswIndex(vals)
		if !ok {
			return
		}
		on := vals.Bool("status")
		if err := sh.dev.LDSWActiveDischargeSet(idx, on); err != nil {
			deviceFail(err, shellio.SetError("LDSW active discharge status"))
			return
		}
		fmt.Println(shellio.FormatSuccess(boolInt(on), shellio.UnitNone))
	case "get":
		vals, ok := checkArgs(tokens[1:], shellio.Arg{Kind: shellio.Index, Name: "LDSW"})
		if !ok {
			return
		}
		idx, ok := ldswIndex(vals)
		if !ok {
			return
		}
		on, err := sh.dev.LDSWActiveDischargeGet(idx)
		if err != nil {
			deviceFail(err, shellio.GetError("LDSW active discharge status"))
			return
		}
		fmt.Println(shellio.FormatValue(boolInt(on), shellio.UnitNone))
	default:
		fail("unknown ldsw discharge subcommand")
	}
}

func (sh *shell) ldswSoftStart(tokens []string) {
	if len(tokens) < 2 {
		fail("usage: ldsw softstart enable|current set|get ...")
		return
	}
	switch tokens[0] {
	case "enable":
		sh.ldswSoftStartEnable(tokens)
	case "current":
		sh.ldswSoftStartCurrent(tokens)
	default:
		fail("unknown ldsw softstart subcommand")
	}
}

func (sh *shell) ldswSoftStartEnable(tokens []string) {
	switch tokens[1] {
	case "set":
		vals, ok := checkArgs(tokens[1:],
			shellio.Arg{Kind: shellio.Index, Name: "LDSW"},
			shellio.Arg{Kind: shellio.Bool, Name: "config"},
		)
		if !ok {
			return
		}
		idx, ok := ldswIndex(vals)
		if !ok {
			return
		}
		on := vals.Bool("config")
		if err := sh.dev.LDSWSoftStartEnableSet(idx, on); err != nil {
			deviceFail(err, shellio.SetError("soft-start config"))
			return
		}
		fmt.Println(shellio.FormatSuccess(boolInt(on), shellio.UnitNone))
	case "get":
		vals, ok := checkArgs(tokens[1:], shellio.Arg{Kind: shellio.Index, Name: "LDSW"})
		if !ok {
			return
		}
		idx, ok := ldswIndex(vals)
		if !ok {
			return
		}
		on, err := sh.dev.LDSWSoftStartEnableGet(idx)
		if err != nil {
			deviceFail(err, shellio.GetError("soft-start config"))
			return
		}
		fmt.Println(shellio.FormatValue(boolInt(on), shellio.UnitNone))
	default:
		fail("unknown ldsw softstart subcommand")
	}
}

func (sh *shell) ldswSoftStartCurrent(tokens []string) {
	switch tokens[1] {
	case "set":
		vals, ok := checkArgs(tokens[1:],
			shellio.Arg{Kind: shellio.Index, Name: "LDSW"},
			shellio.Arg{Kind: shellio.Uint, Name: "config"},
		)
		if !ok {
			return
		}
		idx, ok := ldswIndex(vals)
		if !ok {
			return
		}
		mA := int64(vals.Uint("config"))
		if npm13xx.SoftStartCurrentFromMilliamps(int32(mA)) == npm13xx.SoftStartCurrentInvalid {
			fail(shellio.ConvertError("milliamperes", "soft-start current"))
			return
		}
		if err := sh.dev.LDSWSoftStartCurrentSet(idx, int32(mA)); err != nil {
			deviceFail(err, shellio.SetError("soft-start config"))
			return
		}
		fmt.Println(shellio.FormatSuccess(mA, shellio.UnitMilliamp))
	case "get":
		vals, ok := checkArgs(tokens[1:], shellio.Arg{Kind: shellio.Index, Name: "LDSW"})
		if !ok {
			return
		}
		idx, ok := ldswIndex(vals)
		if !ok {
			return
		}
		mA, err := sh.dev.LDSWSoftStartCurrentGet(idx)
		if err != nil {
			deviceFail(err, shellio.GetError("soft-start current"))
			return
		}
		fmt.Println(shellio.FormatValue(int64(mA), shellio.UnitMilliamp))
	default:
		fail("unknown ldsw softstart subcommand")
	}
}

func (sh *shell) ldswGPIO(tokens []string) {
	if len(tokens) < 2 {
		fail("usage: ldsw gpio set|get ...")
		return
	}
	switch tokens[1] {
	case "set":
		vals, ok := checkArgs(tokens[1:],
			shellio.Arg{Kind: shellio.Index, Name: "LDSW"},
			shellio.Arg{Kind: shellio.Int, Name: "GPIO number"},
			shellio.Arg{Kind: shellio.Bool, Name: "GPIO polarity"},
		)
		if !ok {
			return
		}
		idx, ok := ldswIndex(vals)
		if !ok {
			return
		}
		pin := vals.Int("GPIO number")
		if pin != -1 && !sh.pinGuard(pin) {
			return
		}
		cfg := npm13xx.LDSWGPIOConfig{Pin: int8(pin), Inverted: vals.Bool("GPIO polarity")}
		if err := sh.dev.LDSWGPIOSet(idx, cfg); err != nil {
			deviceFail(err, shellio.SetError("GPIO config"))
			return
		}
		fmt.Println(shellio.FormatSuccess(pin, shellio.UnitNone))
	case "get":
		vals, ok := checkArgs(tokens[1:], shellio.Arg{Kind: shellio.Index, Name: "LDSW"})
		if !ok {
			return
		}
		idx, ok := ldswIndex(vals)
		if !ok {
			return
		}
		cfg, err := sh.dev.LDSWGPIOGet(idx)
		if err != nil {
			deviceFail(err, shellio.GetError("GPIO config"))
			return
		}
		fmt.Println(shellio.FormatValue(int64(cfg.Pin), shellio.UnitNone))
	default:
		fail("unknown ldsw gpio subcommand")
	}
}
