package npm13xx

import (
	"errors"
	"testing"

	"npmcore-go/errcode"
)

func TestLDSWVoltageRoundTrip(t *testing.T) {
	bus := newRegBus()
	d := New(bus, DefaultConfig())

	if err := d.LDSWVoltageSet(1, 1800); err != nil {
		t.Fatalf("LDSWVoltageSet: %v", err)
	}
	if v := bus.get(regLdswVOutBase + 1); v != 8 {
		t.Errorf("voltage code = %d, want 8", v)
	}
	mV, err := d.LDSWVoltageGet(1)
	if err != nil || mV != 1800 {
		t.Errorf("readback = %d, %v", mV, err)
	}

	bus.set(regLdswVOutBase, 0x55) // outside the code range
	if _, err := d.LDSWVoltageGet(0); errcode.Of(err) != errcode.InvalidMeasurement {
		t.Errorf("bad readback: %v", err)
	}
}

func TestLDSWVoltageSetRejections(t *testing.T) {
	bus := newRegBus()
	d := New(bus, DefaultConfig())

	if err := d.LDSWVoltageSet(LDSWCount, 1800); !errors.Is(err, ErrNoSuchInstance) {
		t.Errorf("bad instance: %v", err)
	}
	if err := d.LDSWVoltageSet(0, 1850); errcode.Of(err) != errcode.InvalidParam {
		t.Errorf("off-grid voltage: %v", err)
	}
	if len(bus.writes) != 0 {
		t.Errorf("rejected set reached the bus: %v", bus.writes)
	}
}

func TestLDSWEnableTasks(t *testing.T) {
	bus := newRegBus()
	d := New(bus, DefaultConfig())

	if err := d.LDSWEnable(0, true); err != nil {
		t.Fatalf("LDSWEnable on: %v", err)
	}
	if err := d.LDSWEnable(1, false); err != nil {
		t.Fatalf("LDSWEnable off: %v", err)
	}
	if !bus.wrote(regLdswEnaBase, 1) {
		t.Error("instance 0 SET task not strobed")
	}
	if !bus.wrote(regLdswEnaBase+3, 1) {
		t.Error("instance 1 CLR task not strobed")
	}
}

func TestLDSWStatusCoversBothModes(t *testing.T) {
	bus := newRegBus()
	d := New(bus, DefaultConfig())

	bus.set(regLdswStatus, 0x01) // instance 0 up as load switch
	up, err := d.LDSWStatus(0)
	if err != nil || !up {
		t.Errorf("switch power-up: %v, %v", up, err)
	}
	bus.set(regLdswStatus, 0x08) // instance 1 up as LDO
	up, err = d.LDSWStatus(1)
	if err != nil || !up {
		t.Errorf("LDO power-up: %v, %v", up, err)
	}
	up, _ = d.LDSWStatus(0)
	if up {
		t.Error("instance 0 reported up with only instance 1 bits set")
	}
}

func TestLDSWModeSetCyclesEnable(t *testing.T) {
	bus := newRegBus()
	d := New(bus, DefaultConfig())

	if err := d.LDSWModeSet(1, LDSWModeLDO); err != nil {
		t.Fatalf("LDSWModeSet: %v", err)
	}
	if v := bus.get(regLdswLDOSel); v&0x02 == 0 {
		t.Errorf("LDO select bit not set: %#02x", v)
	}
	// The mode change only applies across an enable cycle.
	if !bus.wrote(regLdswEnaBase+3, 1) {
		t.Error("instance 1 not disabled before re-enable")
	}
	if !bus.wrote(regLdswEnaBase+2, 1) {
		t.Error("instance 1 not re-enabled")
	}

	mode, err := d.LDSWModeGet(1)
	if err != nil || mode != LDSWModeLDO {
		t.Errorf("mode readback = %v, %v", mode, err)
	}

	if err := d.LDSWModeSet(1, LDSWModeSwitch); err != nil {
		t.Fatalf("back to switch: %v", err)
	}
	mode, _ = d.LDSWModeGet(1)
	if mode != LDSWModeSwitch {
		t.Errorf("mode readback = %v, want switch", mode)
	}

	if err := d.LDSWModeSet(0, LDSWMode(2)); errcode.Of(err) != errcode.InvalidParam {
		t.Errorf("bad mode: %v", err)
	}
}

func TestLDSWActiveDischarge(t *testing.T) {
	bus := newRegBus()
	d := New(bus, DefaultConfig())

	if err := d.LDSWActiveDischargeSet(1, true); err != nil {
		t.Fatalf("enable: %v", err)
	}
	on, err := d.LDSWActiveDischargeGet(1)
	if err != nil || !on {
		t.Errorf("readback = %v, %v", on, err)
	}
	if err := d.LDSWActiveDischargeSet(1, false); err != nil {
		t.Fatalf("disable: %v", err)
	}
	on, _ = d.LDSWActiveDischargeGet(1)
	if on {
		t.Error("discharge bit survived disable")
	}
}

func TestLDSWSoftStart(t *testing.T) {
	bus := newRegBus()
	d := New(bus, DefaultConfig())

	if err := d.LDSWSoftStartEnableSet(0, true); err != nil {
		t.Fatalf("enable: %v", err)
	}
	on, err := d.LDSWSoftStartEnableGet(0)
	if err != nil || !on {
		t.Errorf("enable readback = %v, %v", on, err)
	}
	// The enable bits live above the discharge bits in the same register.
	if v := bus.get(regLdswConfig); v != 1<<ldswConfigSoftStartPos {
		t.Errorf("config = %#02x", v)
	}

	if err := d.LDSWSoftStartCurrentSet(0, 35); err != nil {
		t.Fatalf("current set: %v", err)
	}
	mA, err := d.LDSWSoftStartCurrentGet(0)
	if err != nil || mA != 35 {
		t.Errorf("current readback = %d, %v", mA, err)
	}
	if err := d.LDSWSoftStartCurrentSet(0, 25); errcode.Of(err) != errcode.InvalidParam {
		t.Errorf("unsupported current: %v", err)
	}
}

func TestLDSWGPIOEncoding(t *testing.T) {
	bus := newRegBus()
	d := New(bus, DefaultConfig())

	if err := d.LDSWGPIOSet(0, LDSWGPIOConfig{Pin: 3, Inverted: true}); err != nil {
		t.Fatalf("LDSWGPIOSet: %v", err)
	}
	if v := bus.get(regLdswGPIOBase); v != 0x0C { // pin+1 | invert
		t.Errorf("encoded = %#02x, want 0x0C", v)
	}
	cfg, err := d.LDSWGPIOGet(0)
	if err != nil || cfg.Pin != 3 || !cfg.Inverted {
		t.Errorf("readback = %+v, %v", cfg, err)
	}

	if err := d.LDSWGPIOSet(0, LDSWGPIOConfig{Pin: -1}); err != nil {
		t.Fatalf("disconnect: %v", err)
	}
	cfg, _ = d.LDSWGPIOGet(0)
	if cfg.Pin != -1 || cfg.Inverted {
		t.Errorf("disconnected readback = %+v", cfg)
	}

	if err := d.LDSWGPIOSet(0, LDSWGPIOConfig{Pin: int8(GPIOCount)}); errcode.Of(err) != errcode.InvalidParam {
		t.Errorf("bad pin: %v", err)
	}
}
