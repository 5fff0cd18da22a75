// Package config loads the host tool configuration from a JSON file.
package config

import (
	"errors"
	"os"

	"github.com/andreyvit/tinyjson"
)

// Shell configures cmd/npmsh.
type Shell struct {
	LogLevel string

	Address uint16
	IntPin  int8
	POFPin  int8

	POFEnable       bool
	POFActiveHigh   bool
	POFThreshold_mV uint32

	NTCBeta uint32
}

// Default returns the configuration used when no file is given.
func Default() Shell {
	return Shell{
		LogLevel:        "info",
		Address:         0x6B,
		IntPin:          0,
		POFPin:          1,
		POFEnable:       true,
		POFActiveHigh:   false,
		POFThreshold_mV: 2800,
		NTCBeta:         3380,
	}
}

// Load reads path and overlays it on the defaults. Unknown keys are ignored;
// wrong-typed values fall back to the default.
func Load(path string) (Shell, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	r := tinyjson.Raw(raw)
	val := r.Value()
	r.EnsureEOF()

	m, ok := val.(map[string]any)
	if !ok {
		return cfg, errors.New("config is not a JSON object")
	}

	if v, ok := str(m, "log_level"); ok {
		cfg.LogLevel = v
	}
	if v, ok := num(m, "address"); ok {
		cfg.Address = uint16(v)
	}
	if v, ok := num(m, "int_pin"); ok {
		cfg.IntPin = int8(v)
	}
	if v, ok := num(m, "pof_pin"); ok {
		cfg.POFPin = int8(v)
	}
	if v, ok := boolean(m, "pof_enable"); ok {
		cfg.POFEnable = v
	}
	if v, ok := boolean(m, "pof_active_high"); ok {
		cfg.POFActiveHigh = v
	}
	if v, ok := num(m, "pof_threshold_mv"); ok {
		cfg.POFThreshold_mV = uint32(v)
	}
	if v, ok := num(m, "ntc_beta"); ok {
		cfg.NTCBeta = uint32(v)
	}
	return cfg, nil
}

func str(m map[string]any, key string) (string, bool) {
	v, ok := m[key].(string)
	return v, ok
}

func num(m map[string]any, key string) (float64, bool) {
	v, ok := m[key].(float64)
	return v, ok
}

func boolean(m map[string]any, key string) (bool, bool) {
	v, ok := m[key].(bool)
	return v, ok
}
