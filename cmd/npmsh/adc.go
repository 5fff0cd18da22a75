package main

import (
	"context"
	"fmt"
	"time"

	"npmcore-go/drivers/npm13xx"
	"npmcore-go/shellio"
)

const measDeadline = 100 * time.Millisecond

func (sh *shell) cmdADC(tokens []string) {
	if len(tokens) < 2 {
		fail("usage: adc meas|ntc ...")
		return
	}
	switch tokens[0] {
	case "meas":
		sh.adcMeas(tokens[1])
	case "ntc":
		sh.adcNTC(tokens[1:])
	default:
		fail("unknown adc subcommand")
	}
}

func (sh *shell) adcMeas(what string) {
	ctx, cancel := context.WithTimeout(context.Background(), measDeadline)
	defer cancel()

	switch what {
	case "vbat":
		mV, err := sh.dev.MeasureVBAT(ctx)
		if err != nil {
			deviceFail(err, shellio.GetError("measurement"))
			return
		}
		fmt.Println(shellio.FormatValue(int64(mV), shellio.UnitMillivolt))
	case "temp":
		mC, err := sh.dev.MeasureDieTemp(ctx)
		if err != nil {
			deviceFail(err, shellio.GetError("measurement"))
			return
		}
		fmt.Println(shellio.FormatValue(int64(mC)/1000, shellio.UnitCelsius))
	default:
		fail("unknown measurement")
	}
}

func (sh *shell) adcNTC(tokens []string) {
	if len(tokens) < 2 {
		fail("usage: adc ntc type|beta set|get ...")
		return
	}
	switch tokens[0] {
	case "type":
		sh.adcNTCType(tokens[1:])
	case "beta":
		sh.adcNTCBeta(tokens[1:])
	default:
		fail("unknown adc ntc subcommand")
	}
}

func (sh *shell) adcNTCType(tokens []string) {
	switch tokens[0] {
	case "set":
		vals, ok := checkArgs(tokens, shellio.Arg{Kind: shellio.Uint, Name: "NTC type"})
		if !ok {
			return
		}
		if !sh.chargerDisabledGuard("NTC config") {
			return
		}
		ohms := uint32(vals.Uint("NTC type"))
		t := npm13xx.NTCTypeFromOhms(ohms)
		if t == npm13xx.NTCTypeInvalid {
			fail(shellio.ConvertError("resistance", "NTC type"))
			return
		}
		cfg, err := sh.dev.NTCConfigGet()
		if err != nil {
			deviceFail(err, shellio.GetError("NTC config"))
			return
		}
		cfg.Type = t
		if err := sh.dev.NTCConfigSet(cfg); err != nil {
			deviceFail(err, shellio.SetError("NTC config"))
			return
		}
		fmt.Println(shellio.FormatSuccess(int64(ohms), shellio.UnitOhm))
	case "get":
		cfg, err := sh.dev.NTCConfigGet()
		if err != nil {
			deviceFail(err, shellio.GetError("NTC config"))
			return
		}
		ohms, _ := cfg.Type.Ohms()
		fmt.Println(shellio.FormatValue(int64(ohms), shellio.UnitOhm))
	default:
		fail("unknown adc ntc type subcommand")
	}
}

func (sh *shell) adcNTCBeta(tokens []string) {
	switch tokens[0] {
	case "set":
		vals, ok := checkArgs(tokens, shellio.Arg{Kind: shellio.Uint, Name: "NTC beta"})
		if !ok {
			return
		}
		beta := uint32(vals.Uint("NTC beta"))
		if beta == 0 {
			fail("beta cannot be equal to zero")
			return
		}
		if !sh.chargerDisabledGuard("NTC config") {
			return
		}
		cfg, err := sh.dev.NTCConfigGet()
		if err != nil {
			deviceFail(err, shellio.GetError("NTC config"))
			return
		}
		cfg.Beta = beta
		if err := sh.dev.NTCConfigSet(cfg); err != nil {
			deviceFail(err, shellio.SetError("NTC config"))
			return
		}
		fmt.Println(shellio.FormatSuccess(int64(beta), shellio.UnitNone))
	case "get":
		cfg, err := sh.dev.NTCConfigGet()
		if err != nil {
			deviceFail(err, shellio.GetError("NTC config"))
			return
		}
		fmt.Println(shellio.FormatValue(int64(cfg.Beta), shellio.UnitNone))
	default:
		fail("unknown adc ntc beta subcommand")
	}
}
