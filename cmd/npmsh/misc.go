package main

import (
	"fmt"

	"npmcore-go/drivers/npm13xx"
	"npmcore-go/shellio"
)

func (sh *shell) cmdPOF(tokens []string) {
	if tokens[0] != "get" {
		fail("POF is configured at startup; only get is supported")
		return
	}
	cfg, err := sh.dev.POFConfigGet()
	if err != nil {
		deviceFail(err, shellio.GetError("POF config"))
		return
	}
	fmt.Println(shellio.FormatValue(int64(cfg.Threshold_mV), shellio.UnitMillivolt))
	if cfg.Polarity == npm13xx.PolarityHigh {
		note("active high")
	} else {
		note("active low")
	}
}

func (sh *shell) cmdGPIO(tokens []string) {
	if len(tokens) < 2 {
		fail("usage: gpio mode|pull|drive set|get ...")
		return
	}
	kind, verb := tokens[0], tokens[1]
	vals, ok := checkArgsGPIO(tokens[1:], kind, verb)
	if !ok {
		return
	}
	pin := vals.Index("GPIO")
	if err := shellio.IndexCheck(pin, npm13xx.GPIOCount, "GPIO"); err != nil {
		fail(err.Error())
		return
	}
	if verb == "set" && !sh.pinGuard(int64(pin)) {
		return
	}

	switch kind + " " + verb {
	case "mode set":
		m := npm13xx.GPIOMode(vals.Uint("mode"))
		if err := sh.dev.GPIOModeSet(uint8(pin), m); err != nil {
			deviceFail(err, shellio.SetError("GPIO mode"))
			return
		}
		fmt.Println(shellio.FormatSuccess(int64(m), shellio.UnitNone))
	case "mode get":
		m, err := sh.dev.GPIOModeGet(uint8(pin))
		if err != nil {
			deviceFail(err, shellio.GetError("GPIO mode"))
			return
		}
		fmt.Println(shellio.FormatValue(int64(m), shellio.UnitNone))
	case "pull set":
		p := npm13xx.GPIOPull(vals.Uint("pull"))
		if err := sh.dev.GPIOPullSet(uint8(pin), p); err != nil {
			deviceFail(err, shellio.SetError("GPIO pull"))
			return
		}
		fmt.Println(shellio.FormatSuccess(int64(p), shellio.UnitNone))
	case "pull get":
		p, err := sh.dev.GPIOPullGet(uint8(pin))
		if err != nil {
			deviceFail(err, shellio.GetError("GPIO pull"))
			return
		}
		fmt.Println(shellio.FormatValue(int64(p), shellio.UnitNone))
	case "drive set":
		mA := vals.Uint("drive")
		if err := sh.dev.GPIODriveSet(uint8(pin), uint8(mA)); err != nil {
			deviceFail(err, shellio.SetError("GPIO drive"))
			return
		}
		fmt.Println(shellio.FormatSuccess(int64(mA), shellio.UnitMilliamp))
	case "drive get":
		mA, err := sh.dev.GPIODriveGet(uint8(pin))
		if err != nil {
			deviceFail(err, shellio.GetError("GPIO drive"))
			return
		}
		fmt.Println(shellio.FormatValue(int64(mA), shellio.UnitMilliamp))
	default:
		fail("unknown gpio subcommand")
	}
}

// checkArgsGPIO builds the schema for gpio commands: always a pin index,
// plus the setter's value argument.
func checkArgsGPIO(argv []string, kind, verb string) (shellio.Values, bool) {
	spec := []shellio.Arg{{Kind: shellio.Index, Name: "GPIO"}}
	if verb == "set" {
		switch kind {
		case "mode":
			spec = append(spec, shellio.Arg{Kind: shellio.Uint, Name: "mode"})
		case "pull":
			spec = append(spec, shellio.Arg{Kind: shellio.Uint, Name: "pull"})
		case "drive":
			spec = append(spec, shellio.Arg{Kind: shellio.Uint, Name: "drive"})
		}
	}
	return checkArgs(argv, spec...)
}

func (sh *shell) cmdLED(tokens []string) {
	if len(tokens) < 2 {
		fail("usage: led mode|state ...")
		return
	}
	switch tokens[0] {
	case "mode":
		sh.ledMode(tokens[1:])
	case "state":
		sh.ledState(tokens[1:])
	default:
		fail("unknown led subcommand")
	}
}

func (sh *shell) ledMode(tokens []string) {
	switch tokens[0] {
	case "set":
		vals, ok := checkArgs(tokens,
			shellio.Arg{Kind: shellio.Index, Name: "LED"},
			shellio.Arg{Kind: shellio.Uint, Name: "mode"},
		)
		if !ok {
			return
		}
		idx := vals.Index("LED")
		if err := shellio.IndexCheck(idx, npm13xx.LEDCount, "LED"); err != nil {
			fail(err.Error())
			return
		}
		m := npm13xx.LEDMode(vals.Uint("mode"))
		if err := sh.dev.LEDModeSet(uint8(idx), m); err != nil {
			deviceFail(err, shellio.SetError("LED mode"))
			return
		}
		fmt.Println(shellio.FormatSuccess(int64(m), shellio.UnitNone))
	case "get":
		vals, ok := checkArgs(tokens, shellio.Arg{Kind: shellio.Index, Name: "LED"})
		if !ok {
			return
		}
		idx := vals.Index("LED")
		if err := shellio.IndexCheck(idx, npm13xx.LEDCount, "LED"); err != nil {
			fail(err.Error())
			return
		}
		m, err := sh.dev.LEDModeGet(uint8(idx))
		if err != nil {
			deviceFail(err, shellio.GetError("LED mode"))
			return
		}
		fmt.Println(shellio.FormatValue(int64(m), shellio.UnitNone))
	default:
		fail("unknown led mode subcommand")
	}
}

func (sh *shell) ledState(tokens []string) {
	if tokens[0] != "set" {
		fail("unknown led state subcommand")
		return
	}
	vals, ok := checkArgs(tokens,
		shellio.Arg{Kind: shellio.Index, Name: "LED"},
		shellio.Arg{Kind: shellio.Bool, Name: "state"},
	)
	if !ok {
		return
	}
	idx := vals.Index("LED")
	if err := shellio.IndexCheck(idx, npm13xx.LEDCount, "LED"); err != nil {
		fail(err.Error())
		return
	}
	on := vals.Bool("state")
	if err := sh.dev.LEDSet(uint8(idx), on); err != nil {
		deviceFail(err, shellio.SetError("LED state"))
		return
	}
	fmt.Println(shellio.FormatSuccess(boolInt(on), shellio.UnitNone))
}

func (sh *shell) cmdShip(tokens []string) {
	if len(tokens) < 2 {
		fail("usage: ship config|reset|mode ...")
		return
	}
	switch tokens[0] + " " + tokens[1] {
	case "config set":
		vals, ok := checkArgs(tokens[1:],
			shellio.Arg{Kind: shellio.Uint, Name: "time"},
			shellio.Arg{Kind: shellio.Bool, Name: "inverted polarity"},
		)
		if !ok {
			return
		}
		ms := uint32(vals.Uint("time"))
		if npm13xx.ShipTimeFromMilliseconds(ms) == npm13xx.ShipTimeInvalid {
			fail(shellio.ConvertError("milliseconds", "ship time"))
			return
		}
		cfg := npm13xx.ShipConfig{Time_ms: ms, InvertPolarity: vals.Bool("inverted polarity")}
		if err := sh.dev.ShipConfigSet(cfg); err != nil {
			deviceFail(err, shellio.SetError("ship config"))
			return
		}
		fmt.Println(shellio.FormatSuccess(int64(ms), shellio.UnitNone))
	case "config get":
		cfg, err := sh.dev.ShipConfigGet()
		if err != nil {
			deviceFail(err, shellio.GetError("ship config"))
			return
		}
		fmt.Println(shellio.FormatValue(int64(cfg.Time_ms), shellio.UnitNone))
	case "reset set":
		vals, ok := checkArgs(tokens[1:],
			shellio.Arg{Kind: shellio.Bool, Name: "long press"},
			shellio.Arg{Kind: shellio.Bool, Name: "two buttons"},
		)
		if !ok {
			return
		}
		cfg := npm13xx.ShipResetConfig{
			LongPress:  vals.Bool("long press"),
			TwoButtons: vals.Bool("two buttons"),
		}
		if err := sh.dev.ShipResetConfigSet(cfg); err != nil {
			deviceFail(err, shellio.SetError("ship reset config"))
			return
		}
		fmt.Println(shellio.FormatSuccess(boolInt(cfg.LongPress), shellio.UnitNone))
	case "mode ship":
		if err := sh.dev.EnterShipMode(); err != nil {
			deviceFail(err, shellio.SetError("ship mode"))
			return
		}
		note("entering ship mode")
	case "mode hibernate":
		if err := sh.dev.EnterHibernate(); err != nil {
			deviceFail(err, shellio.SetError("hibernate mode"))
			return
		}
		note("entering hibernate mode")
	default:
		fail("unknown ship subcommand")
	}
}

func (sh *shell) cmdVBUS(tokens []string) {
	switch tokens[0] {
	case "ilim":
		if len(tokens) < 2 {
			fail("usage: vbusin ilim set|get ...")
			return
		}
		switch tokens[1] {
		case "set":
			vals, ok := checkArgs(tokens[1:], shellio.Arg{Kind: shellio.Uint, Name: "current limit"})
			if !ok {
				return
			}
			mA := int64(vals.Uint("current limit"))
			if npm13xx.VBUSCurrentLimitFromMilliamps(int32(mA)) == npm13xx.VBUSCurrentLimitInvalid {
				fail(shellio.ConvertError("milliamps", "current limit code"))
				return
			}
			if err := sh.dev.VBUSCurrentLimitSet(int32(mA)); err != nil {
				deviceFail(err, shellio.SetError("current limit"))
				return
			}
			fmt.Println(shellio.FormatSuccess(mA, shellio.UnitMilliamp))
		case "get":
			mA, err := sh.dev.VBUSCurrentLimitGet()
			if err != nil {
				deviceFail(err, shellio.GetError("current limit"))
				return
			}
			fmt.Println(shellio.FormatValue(int64(mA), shellio.UnitMilliamp))
		default:
			fail("unknown vbusin ilim subcommand")
		}
	case "status":
		status, err := sh.dev.VBUSStatusGet()
		if err != nil {
			deviceFail(err, shellio.GetError("VBUS status"))
			return
		}
		fmt.Println(shellio.FormatValue(int64(status), shellio.UnitNone))
	default:
		fail("unknown vbusin subcommand")
	}
}

func (sh *shell) cmdTimer(tokens []string) {
	switch tokens[0] {
	case "config":
		if len(tokens) < 2 || tokens[1] != "set" {
			cfg, err := sh.dev.TimerConfigGet()
			if err != nil {
				deviceFail(err, shellio.GetError("timer config"))
				return
			}
			fmt.Println(shellio.FormatValue(int64(cfg.Mode), shellio.UnitNone))
			return
		}
		vals, ok := checkArgs(tokens[1:],
			shellio.Arg{Kind: shellio.Uint, Name: "mode"},
			shellio.Arg{Kind: shellio.Bool, Name: "fast prescaler"},
		)
		if !ok {
			return
		}
		cfg := npm13xx.TimerConfig{Mode: npm13xx.TimerMode(vals.Uint("mode"))}
		if vals.Bool("fast prescaler") {
			cfg.Prescaler = npm13xx.TimerPrescalerFast
		}
		if err := sh.dev.TimerConfigSet(cfg); err != nil {
			deviceFail(err, shellio.SetError("timer config"))
			return
		}
		fmt.Println(shellio.FormatSuccess(int64(cfg.Mode), shellio.UnitNone))
	case "target":
		if len(tokens) < 2 {
			fail("usage: timer target set|get ...")
			return
		}
		switch tokens[1] {
		case "set":
			vals, ok := checkArgs(tokens[1:], shellio.Arg{Kind: shellio.Uint, Name: "ticks"})
			if !ok {
				return
			}
			ticks := uint32(vals.Uint("ticks"))
			if err := sh.dev.TimerTargetSet(ticks); err != nil {
				deviceFail(err, shellio.SetError("timer target"))
				return
			}
			fmt.Println(shellio.FormatSuccess(int64(ticks), shellio.UnitNone))
		case "get":
			ticks, err := sh.dev.TimerTargetGet()
			if err != nil {
				deviceFail(err, shellio.GetError("timer target"))
				return
			}
			fmt.Println(shellio.FormatValue(int64(ticks), shellio.UnitNone))
		default:
			fail("unknown timer target subcommand")
		}
	case "start":
		if err := sh.dev.TimerStart(); err != nil {
			deviceFail(err, shellio.SetError("timer state"))
			return
		}
		fmt.Println(shellio.FormatSuccess(1, shellio.UnitNone))
	case "stop":
		if err := sh.dev.TimerStop(); err != nil {
			deviceFail(err, shellio.SetError("timer state"))
			return
		}
		fmt.Println(shellio.FormatSuccess(0, shellio.UnitNone))
	default:
		fail("unknown timer subcommand")
	}
}

func (sh *shell) cmdErrLog(tokens []string) {
	if tokens[0] != "get" {
		fail("unknown errlog subcommand")
		return
	}
	log, err := sh.dev.ErrLogRead()
	if err != nil {
		deviceFail(err, shellio.GetError("error log"))
		return
	}
	fmt.Println(shellio.FormatValue(int64(log.ResetCause), shellio.UnitNone))
	for bit := uint8(0); bit < 8; bit++ {
		if log.ResetCause&(1<<bit) != 0 {
			note("reset cause: " + npm13xx.ResetCauseName(bit))
		}
	}
}

// cmdEvents drives the simulator: raise latches group bits and asserts the
// interrupt line, exercising the whole dispatch pipeline from the prompt.
func (sh *shell) cmdEvents(tokens []string) {
	if tokens[0] != "raise" {
		fail("unknown events subcommand")
		return
	}
	vals, ok := checkArgs(tokens,
		shellio.Arg{Kind: shellio.Index, Name: "group"},
		shellio.Arg{Kind: shellio.Uint, Name: "mask"},
	)
	if !ok {
		return
	}
	group := vals.Index("group")
	if err := shellio.IndexCheck(group, npm13xx.GroupCount, "group"); err != nil {
		fail(err.Error())
		return
	}
	sh.sim.Raise(uint8(group), uint8(vals.Uint("mask")))
	fmt.Println(shellio.FormatSuccess(int64(vals.Uint("mask")), shellio.UnitNone))
}
