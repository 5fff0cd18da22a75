package npm13xx

import (
	"tinygo.org/x/drivers"
)

// AddressDefault is the fixed 7-bit bus address of the device.
const AddressDefault = 0x6B

// Instance counts of the per-subsystem blocks.
const (
	BuckCount = 2
	LDSWCount = 2
	LEDCount  = 3
	GPIOCount = 5
)

// Config describes how the device is wired into the board.
// Pin fields name device-side GPIOs; -1 means not wired.
type Config struct {
	Address  uint16
	IntPin   int8 // GPIO driven as interrupt output
	POFPin   int8 // GPIO driven as power-loss warning output
	ResetPin int8 // GPIO driven as reset output
	NTCBeta  uint32
}

// DefaultConfig returns a config with no pins wired.
func DefaultConfig() Config {
	return Config{
		Address:  AddressDefault,
		IntPin:   -1,
		POFPin:   -1,
		ResetPin: -1,
		NTCBeta:  3380,
	}
}

// Device is the single logical handle to one physical chip. It is created
// once at bring-up and never copied.
type Device struct {
	backend *Backend

	intPin   int8
	pofPin   int8
	resetPin int8
	ntcBeta  uint32

	callbacks [GroupCount]EventCallback
	userCtx   any

	disp    *Dispatcher
	pofLine IRQLine
	pofCB   func(*Device)
}

// New constructs a Device bound to the given bus.
func New(i2c drivers.I2C, cfg Config) *Device {
	addr := cfg.Address
	if addr == 0 {
		addr = AddressDefault
	}
	beta := cfg.NTCBeta
	if beta == 0 {
		beta = DefaultConfig().NTCBeta
	}
	return &Device{
		backend:  NewBackend(i2c, addr),
		intPin:   cfg.IntPin,
		pofPin:   cfg.POFPin,
		resetPin: cfg.ResetPin,
		ntcBeta:  beta,
	}
}

// Configure applies the wired pin modes on the device side.
// Interrupt pin mode is set by Dispatcher.Start, POF pin mode by
// RegisterPOFHandler.
func (d *Device) Configure() error {
	if d.resetPin >= 0 {
		return d.GPIOModeSet(uint8(d.resetPin), GPIOModeOutputReset)
	}
	return nil
}

// SetContext attaches an opaque consumer context passed back via Context
// from event callbacks.
func (d *Device) SetContext(ctx any) { d.userCtx = ctx }
func (d *Device) Context() any       { return d.userCtx }

// Pin introspection, used by the shell layer to refuse reconfiguring pins
// that carry the interrupt or POF function.
func (d *Device) IntPin() int8   { return d.intPin }
func (d *Device) POFPin() int8   { return d.pofPin }
func (d *Device) ResetPin() int8 { return d.resetPin }

// SWReset issues the software-reset task.
func (d *Device) SWReset() error {
	return d.writeByte(regTaskSWReset, 1)
}
