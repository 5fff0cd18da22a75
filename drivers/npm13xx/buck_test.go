package npm13xx

import (
	"errors"
	"testing"

	"npmcore-go/errcode"
)

func TestBuckVoltageSetBothKinds(t *testing.T) {
	bus := newRegBus()
	d := New(bus, DefaultConfig())

	if err := d.BuckVoltageSet(1, BuckVoltageNormal, 1800); err != nil {
		t.Fatalf("BuckVoltageSet normal: %v", err)
	}
	if err := d.BuckVoltageSet(1, BuckVoltageRetention, 1200); err != nil {
		t.Fatalf("BuckVoltageSet retention: %v", err)
	}

	// Normal and retention targets land in adjacent registers per instance.
	if v := bus.get(regBuckVOutBase + 2); v != 8 {
		t.Errorf("normal target code = %d, want 8", v)
	}
	if v := bus.get(regBuckVOutBase + 3); v != 2 {
		t.Errorf("retention target code = %d, want 2", v)
	}
	// Writing a target flips the instance to software voltage control.
	if v := bus.get(regBuckSwCtrlSel); v&0x02 == 0 {
		t.Errorf("software control not selected: %#02x", v)
	}

	mV, err := d.BuckVoltageGet(1, BuckVoltageNormal)
	if err != nil || mV != 1800 {
		t.Errorf("normal readback = %d, %v", mV, err)
	}
	mV, err = d.BuckVoltageGet(1, BuckVoltageRetention)
	if err != nil || mV != 1200 {
		t.Errorf("retention readback = %d, %v", mV, err)
	}
}

func TestBuckVoltageSetRejections(t *testing.T) {
	bus := newRegBus()
	d := New(bus, DefaultConfig())

	if err := d.BuckVoltageSet(BuckCount, BuckVoltageNormal, 1800); !errors.Is(err, ErrNoSuchInstance) {
		t.Errorf("bad instance: %v", err)
	}
	if err := d.BuckVoltageSet(0, BuckVoltageNormal, 1850); errcode.Of(err) != errcode.InvalidParam {
		t.Errorf("off-grid voltage: %v", err)
	}
	if len(bus.writes) != 0 {
		t.Errorf("rejected set reached the bus: %v", bus.writes)
	}
}

func TestBuckVoltageGetBadReadback(t *testing.T) {
	bus := newRegBus()
	d := New(bus, DefaultConfig())

	bus.set(regBuckVOutBase, 0x55) // outside the code range
	if _, err := d.BuckVoltageGet(0, BuckVoltageNormal); errcode.Of(err) != errcode.InvalidMeasurement {
		t.Fatalf("err = %v, want invalid_meas", err)
	}
}

func TestBuckEnableTasks(t *testing.T) {
	bus := newRegBus()
	d := New(bus, DefaultConfig())

	if err := d.BuckEnable(0, true); err != nil {
		t.Fatalf("BuckEnable on: %v", err)
	}
	if err := d.BuckEnable(1, false); err != nil {
		t.Fatalf("BuckEnable off: %v", err)
	}
	if !bus.wrote(regBuckEnaBase, 1) {
		t.Error("instance 0 SET task not strobed")
	}
	if !bus.wrote(regBuckEnaBase+3, 1) {
		t.Error("instance 1 CLR task not strobed")
	}
}

func TestBuckStatus(t *testing.T) {
	bus := newRegBus()
	d := New(bus, DefaultConfig())

	bus.set(regBuckStatus, 0x02)
	up, err := d.BuckStatus(1)
	if err != nil || !up {
		t.Errorf("instance 1 up = %v, %v", up, err)
	}
	up, err = d.BuckStatus(0)
	if err != nil || up {
		t.Errorf("instance 0 up = %v, %v", up, err)
	}
}

func TestBuckActiveDischarge(t *testing.T) {
	bus := newRegBus()
	d := New(bus, DefaultConfig())

	if err := d.BuckActiveDischargeSet(0, true); err != nil {
		t.Fatalf("enable: %v", err)
	}
	on, err := d.BuckActiveDischargeGet(0)
	if err != nil || !on {
		t.Errorf("readback = %v, %v", on, err)
	}
	if err := d.BuckActiveDischargeSet(0, false); err != nil {
		t.Fatalf("disable: %v", err)
	}
	on, _ = d.BuckActiveDischargeGet(0)
	if on {
		t.Error("discharge bit survived disable")
	}
}

func TestBuckGPIOEncoding(t *testing.T) {
	bus := newRegBus()
	d := New(bus, DefaultConfig())

	if err := d.BuckGPIOSet(0, BuckGPIOConfig{Pin: 3, Inverted: true}); err != nil {
		t.Fatalf("BuckGPIOSet: %v", err)
	}
	if v := bus.get(regBuckGPIOBase); v != 0x0C { // pin+1 | invert
		t.Errorf("encoded = %#02x, want 0x0C", v)
	}
	cfg, err := d.BuckGPIOGet(0)
	if err != nil || cfg.Pin != 3 || !cfg.Inverted {
		t.Errorf("readback = %+v, %v", cfg, err)
	}

	if err := d.BuckGPIOSet(0, BuckGPIOConfig{Pin: -1}); err != nil {
		t.Fatalf("disconnect: %v", err)
	}
	cfg, _ = d.BuckGPIOGet(0)
	if cfg.Pin != -1 || cfg.Inverted {
		t.Errorf("disconnected readback = %+v", cfg)
	}

	if err := d.BuckGPIOSet(0, BuckGPIOConfig{Pin: int8(GPIOCount)}); errcode.Of(err) != errcode.InvalidParam {
		t.Errorf("bad pin: %v", err)
	}
}
