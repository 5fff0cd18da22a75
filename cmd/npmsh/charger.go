package main

import (
	"fmt"

	"npmcore-go/drivers/npm13xx"
	"npmcore-go/shellio"
)

var chargerModules = map[string]npm13xx.ChargerModule{
	"charger":   npm13xx.ChargerModuleCharger,
	"recharge":  npm13xx.ChargerModuleRecharge,
	"ntc":       npm13xx.ChargerModuleNTC,
	"full_cool": npm13xx.ChargerModuleFullCool,
}

func (sh *shell) cmdCharger(tokens []string) {
	if len(tokens) == 0 {
		fail("unknown charger subcommand")
		return
	}
	switch tokens[0] {
	case "module":
		sh.chargerModule(tokens[1:])
	case "termination":
		sh.chargerTermination(tokens[1:])
	case "current":
		sh.chargerCurrent(tokens[1:])
	case "trickle":
		sh.chargerTrickle(tokens[1:])
	case "termcurrent":
		sh.chargerTermCurrent(tokens[1:])
	case "temp":
		sh.chargerTemp(tokens[1:])
	case "status":
		sh.chargerStatus()
	default:
		fail("unknown charger subcommand")
	}
}

func (sh *shell) chargerModule(tokens []string) {
	if len(tokens) < 2 {
		fail("usage: charger module <name> set|get ...")
		return
	}
	module, ok := chargerModules[tokens[0]]
	if !ok {
		fail("unknown charger module")
		return
	}
	switch tokens[1] {
	case "set":
		vals, ok := checkArgs(tokens[1:], shellio.Arg{Kind: shellio.Bool, Name: "module status"})
		if !ok {
			return
		}
		on := vals.Bool("module status")
		var err error
		if on {
			err = sh.dev.ChargerModuleEnable(module)
		} else {
			err = sh.dev.ChargerModuleDisable(module)
		}
		if err != nil {
			deviceFail(err, shellio.SetError("charger module status"))
			return
		}
		fmt.Println(shellio.FormatSuccess(boolInt(on), shellio.UnitNone))
	case "get":
		mask, err := sh.dev.ChargerModules()
		if err != nil {
			deviceFail(err, shellio.GetError("charger module status"))
			return
		}
		fmt.Println(shellio.FormatValue(boolInt(mask.Has(module)), shellio.UnitNone))
	default:
		fail("unknown charger module subcommand")
	}
}

// chargerDisabledGuard enforces that charge parameters only change while the
// charger module is off.
func (sh *shell) chargerDisabledGuard(what string) bool {
	mask, err := sh.dev.ChargerModules()
	if err != nil {
		deviceFail(err, shellio.GetError("charger module status"))
		return false
	}
	if mask.Has(npm13xx.ChargerModuleCharger) {
		fail("charger must be disabled to set " + what)
		return false
	}
	return true
}

func (sh *shell) chargerTermination(tokens []string) {
	if len(tokens) < 2 {
		fail("usage: charger termination normal|warm set|get ...")
		return
	}
	var kind npm13xx.ChargerVTermKind
	switch tokens[0] {
	case "normal":
		kind = npm13xx.ChargerVTermNormal
	case "warm":
		kind = npm13xx.ChargerVTermWarm
	default:
		fail("unknown termination voltage target")
		return
	}
	switch tokens[1] {
	case "set":
		vals, ok := checkArgs(tokens[1:], shellio.Arg{Kind: shellio.Uint, Name: "termination voltage"})
		if !ok {
			return
		}
		if !sh.chargerDisabledGuard("termination voltage") {
			return
		}
		mV := int64(vals.Uint("termination voltage"))
		if npm13xx.ChargerVTermFromMillivolts(int32(mV)) == npm13xx.ChargerVTermInvalid {
			fail(shellio.ConvertError("millivolts", "termination voltage code"))
			return
		}
		if err := sh.dev.ChargerVTermSet(kind, int32(mV)); err != nil {
			deviceFail(err, shellio.SetError("termination voltage"))
			return
		}
		fmt.Println(shellio.FormatSuccess(mV, shellio.UnitMillivolt))
	case "get":
		mV, err := sh.dev.ChargerVTermGet(kind)
		if err != nil {
			deviceFail(err, shellio.GetError("termination voltage"))
			return
		}
		fmt.Println(shellio.FormatValue(int64(mV), shellio.UnitMillivolt))
	default:
		fail("unknown charger termination subcommand")
	}
}

func (sh *shell) chargerCurrent(tokens []string) {
	if len(tokens) < 1 {
		fail("usage: charger current set|get ...")
		return
	}
	switch tokens[0] {
	case "set":
		vals, ok := checkArgs(tokens, shellio.Arg{Kind: shellio.Uint, Name: "charging current"})
		if !ok {
			return
		}
		if !sh.chargerDisabledGuard("charging current") {
			return
		}
		mA := int64(vals.Uint("charging current"))
		if npm13xx.ChargerCurrentFromMilliamps(int32(mA)) == npm13xx.ChargerCurrentInvalid {
			fail(shellio.ConvertError("milliamps", "charging current code"))
			return
		}
		if err := sh.dev.ChargerCurrentSet(int32(mA)); err != nil {
			deviceFail(err, shellio.SetError("charging current"))
			return
		}
		if got, err := sh.dev.ChargerCurrentGet(); err == nil {
			approx(mA, int64(got))
		}
		fmt.Println(shellio.FormatSuccess(mA, shellio.UnitMilliamp))
	case "get":
		mA, err := sh.dev.ChargerCurrentGet()
		if err != nil {
			deviceFail(err, shellio.GetError("charging current"))
			return
		}
		fmt.Println(shellio.FormatValue(int64(mA), shellio.UnitMilliamp))
	default:
		fail("unknown charger current subcommand")
	}
}

func (sh *shell) chargerTrickle(tokens []string) {
	if len(tokens) < 1 {
		fail("usage: charger trickle set|get ...")
		return
	}
	switch tokens[0] {
	case "set":
		vals, ok := checkArgs(tokens, shellio.Arg{Kind: shellio.Uint, Name: "trickle voltage"})
		if !ok {
			return
		}
		if !sh.chargerDisabledGuard("trickle voltage") {
			return
		}
		mV := int64(vals.Uint("trickle voltage"))
		if err := sh.dev.ChargerTrickleSet(int32(mV)); err != nil {
			deviceFail(err, shellio.SetError("trickle voltage"))
			return
		}
		fmt.Println(shellio.FormatSuccess(mV, shellio.UnitMillivolt))
	case "get":
		mV, err := sh.dev.ChargerTrickleGet()
		if err != nil {
			deviceFail(err, shellio.GetError("trickle voltage"))
			return
		}
		fmt.Println(shellio.FormatValue(int64(mV), shellio.UnitMillivolt))
	default:
		fail("unknown charger trickle subcommand")
	}
}

func (sh *shell) chargerTermCurrent(tokens []string) {
	if len(tokens) < 1 {
		fail("usage: charger termcurrent set|get ...")
		return
	}
	switch tokens[0] {
	case "set":
		vals, ok := checkArgs(tokens, shellio.Arg{Kind: shellio.Uint, Name: "termination current"})
		if !ok {
			return
		}
		if !sh.chargerDisabledGuard("termination current") {
			return
		}
		pct := vals.Uint("termination current")
		if err := sh.dev.ChargerTermCurrentSet(uint32(pct)); err != nil {
			deviceFail(err, shellio.SetError("termination current"))
			return
		}
		fmt.Println(shellio.FormatSuccess(int64(pct), shellio.UnitPercent))
	case "get":
		pct, err := sh.dev.ChargerTermCurrentGet()
		if err != nil {
			deviceFail(err, shellio.GetError("termination current"))
			return
		}
		fmt.Println(shellio.FormatValue(int64(pct), shellio.UnitPercent))
	default:
		fail("unknown charger termcurrent subcommand")
	}
}

var tempThresholds = map[string]npm13xx.TempThreshold{
	"cold": npm13xx.TempThresholdCold,
	"cool": npm13xx.TempThresholdCool,
	"warm": npm13xx.TempThresholdWarm,
	"hot":  npm13xx.TempThresholdHot,
}

func (sh *shell) chargerTemp(tokens []string) {
	if len(tokens) < 2 {
		fail("usage: charger temp cold|cool|warm|hot set|get ...")
		return
	}
	threshold, ok := tempThresholds[tokens[0]]
	if !ok {
		fail("unknown temperature threshold")
		return
	}
	switch tokens[1] {
	case "set":
		vals, ok := checkArgs(tokens[1:], shellio.Arg{Kind: shellio.Int, Name: "temperature"})
		if !ok {
			return
		}
		tempC := vals.Int("temperature")
		if err := shellio.RangeCheck(tempC, -20, 60, "temperature"); err != nil {
			fail(err.Error())
			return
		}
		if !sh.chargerDisabledGuard("NTC threshold") {
			return
		}
		if err := sh.dev.ChargerTempThresholdSet(threshold, int16(tempC)); err != nil {
			deviceFail(err, shellio.SetError("NTC threshold"))
			return
		}
		if got, err := sh.dev.ChargerTempThresholdGet(threshold); err == nil {
			approx(tempC, int64(got))
		}
		fmt.Println(shellio.FormatSuccess(tempC, shellio.UnitCelsius))
	case "get":
		tempC, err := sh.dev.ChargerTempThresholdGet(threshold)
		if err != nil {
			deviceFail(err, shellio.GetError("NTC threshold"))
			return
		}
		fmt.Println(shellio.FormatValue(int64(tempC), shellio.UnitCelsius))
	default:
		fail("unknown charger temp subcommand")
	}
}

func (sh *shell) chargerStatus() {
	status, err := sh.dev.ChargerStatusGet()
	if err != nil {
		deviceFail(err, shellio.GetError("charger status"))
		return
	}
	fmt.Println(shellio.FormatValue(int64(status), shellio.UnitNone))
}
