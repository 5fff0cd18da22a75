package npm13xx

import (
	"tinygo.org/x/drivers"

	"npmcore-go/errcode"
)

// Register transport. Every access is one two-phase bus transaction: the
// 16-bit register address is written big-endian, then the payload is written
// or read with a stop condition at the end. The I2C implementation must keep
// both phases inside a single transaction (drivers.I2C.Tx does).

// maxTransfer bounds a single payload; the largest burst the driver issues is
// an NTC threshold MSB/LSB pair plus slack.
const maxTransfer = 4

// Backend frames register accesses for one device on one bus.
// Stateless between calls apart from the bus handle and scratch buffer.
type Backend struct {
	i2c  drivers.I2C
	addr uint16

	// Fixed buffer to avoid per-call heap allocations.
	w [2 + maxTransfer]byte
}

func NewBackend(i2c drivers.I2C, addr uint16) *Backend {
	return &Backend{i2c: i2c, addr: addr}
}

// putRegisterAddress places addr big-endian at the start of the scratch buffer.
func (b *Backend) putRegisterAddress(addr uint16) {
	b.w[0] = byte(addr >> 8)
	b.w[1] = byte(addr)
}

// WriteRegisters writes data starting at register addr. Failure of either
// phase collapses to errcode.IOError; the bus has no mid-transaction rollback,
// so no partial-success state is reported.
func (b *Backend) WriteRegisters(addr uint16, data []byte) error {
	if len(data) == 0 || len(data) > maxTransfer {
		return errcode.InvalidParam
	}
	b.putRegisterAddress(addr)
	n := copy(b.w[2:], data)
	if err := b.i2c.Tx(b.addr, b.w[:2+n], nil); err != nil {
		return errcode.IOError
	}
	return nil
}

// ReadRegisters reads len(buf) bytes starting at register addr.
func (b *Backend) ReadRegisters(addr uint16, buf []byte) error {
	if len(buf) == 0 {
		return errcode.InvalidParam
	}
	b.putRegisterAddress(addr)
	if err := b.i2c.Tx(b.addr, b.w[:2], buf); err != nil {
		return errcode.IOError
	}
	return nil
}

// Byte-wide helpers used by all subsystem accessors.

func (d *Device) readByte(addr uint16) (byte, error) {
	var buf [1]byte
	if err := d.backend.ReadRegisters(addr, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func (d *Device) writeByte(addr uint16, v byte) error {
	return d.backend.WriteRegisters(addr, []byte{v})
}

// modifyByte is the generic read-modify-write for byte registers.
func (d *Device) modifyByte(addr uint16, set, clear byte) error {
	cur, err := d.readByte(addr)
	if err != nil {
		return err
	}
	return d.writeByte(addr, (cur|set)&^clear)
}
