// Package simbus is an in-memory model of the PMIC register file behind the
// drivers.I2C interface. It decodes the two-phase address+payload framing and
// reproduces the device-side behaviours the driver relies on: event latches
// that clear on command, self-clearing task registers, and single-shot ADC
// conversions. It backs the interactive shell and integration-style tests.
package simbus

import (
	"errors"
	"sync"
)

// Register layout mirrored from the device datasheet. The simulator is the
// device, so it carries its own copy rather than peeking into the driver.
const (
	regEventsBase  = 0x0002
	eventGroups    = 8
	offEventsSet   = 0
	offEventsClear = 1

	regVBUSTaskUpdateILim = 0x0200

	regBuckEnaBase = 0x0400
	regBuckStatus  = 0x0434
	buckCount      = 2

	regADCTaskVBAT      = 0x0500
	regADCTaskDieTemp   = 0x0501
	regADCMeasStatus    = 0x0510
	regADCVBATResultMSB = 0x0511
	regADCTempResultMSB = 0x0512
	regADCResultLSBs    = 0x0515

	regTimerSet   = 0x0700
	regTimerClear = 0x0701

	regLdswEnaBase = 0x0800
	regLdswStatus  = 0x0804
	regLdswLDOSel  = 0x080A
	ldswCount      = 2

	regShipTaskHibernate = 0x0B00
	regShipTaskShip      = 0x0B02

	regErrlogTaskClear  = 0x0E00
	regErrlogRstCause   = 0x0E01
	regErrlogChargerErr = 0x0E02
	regErrlogSensorErr  = 0x0E03

	adcReadyVBAT = 0x01
	adcReadyTemp = 0x02
)

var (
	ErrNoDevice   = errors.New("simbus: no device at address")
	ErrShortFrame = errors.New("simbus: transaction without register address")
	errInjected   = errors.New("simbus: injected bus error")
)

// Sim implements drivers.I2C for a single simulated device.
type Sim struct {
	mu   sync.Mutex
	addr uint16
	regs map[uint16]byte

	vbatCode uint16 // next VBAT conversion result, 10-bit
	tempCode uint16 // next die temp conversion result, 10-bit

	failNext int

	// OnAssert, if set, runs after Raise latches new event bits; wire it to
	// the host interrupt line of the harness.
	OnAssert func()
}

// New builds a simulator answering at the given 7-bit address.
func New(addr uint16) *Sim {
	return &Sim{
		addr:     addr,
		regs:     map[uint16]byte{},
		vbatCode: 780, // ~3810 mV
		tempCode: 460, // ~30 C die
	}
}

// SetVBATCode sets the 10-bit result of the next VBAT conversion.
func (s *Sim) SetVBATCode(code uint16) {
	s.mu.Lock()
	s.vbatCode = code & 0x3FF
	s.mu.Unlock()
}

// SetDieTempCode sets the 10-bit result of the next die temp conversion.
func (s *Sim) SetDieTempCode(code uint16) {
	s.mu.Lock()
	s.tempCode = code & 0x3FF
	s.mu.Unlock()
}

// FailNext makes the next n transactions fail, for IO-error paths.
func (s *Sim) FailNext(n int) {
	s.mu.Lock()
	s.failNext = n
	s.mu.Unlock()
}

// Raise latches event bits for a group, as the hardware would on a device
// event, and asserts the interrupt hook.
func (s *Sim) Raise(group uint8, mask byte) {
	s.mu.Lock()
	if group < eventGroups {
		reg := uint16(regEventsBase + uint16(group)*4 + offEventsSet)
		s.regs[reg] |= mask
	}
	hook := s.OnAssert
	s.mu.Unlock()
	if hook != nil {
		hook()
	}
}

// Pending reports the latched event bits of a group.
func (s *Sim) Pending(group uint8) byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.regs[uint16(regEventsBase+uint16(group)*4+offEventsSet)]
}

// SetErrLog seeds the sticky error registers.
func (s *Sim) SetErrLog(rstCause, chargerErr, sensorErr byte) {
	s.mu.Lock()
	s.regs[regErrlogRstCause] = rstCause
	s.regs[regErrlogChargerErr] = chargerErr
	s.regs[regErrlogSensorErr] = sensorErr
	s.mu.Unlock()
}

// Reg peeks at a raw register, for assertions.
func (s *Sim) Reg(addr uint16) byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.regs[addr]
}

// Tx implements drivers.I2C. The first two written bytes are the big-endian
// register address; remaining written bytes are a sequential register write,
// and the read buffer is a sequential register read.
func (s *Sim) Tx(addr uint16, w, r []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failNext > 0 {
		s.failNext--
		return errInjected
	}
	if addr != s.addr {
		return ErrNoDevice
	}
	if len(w) < 2 {
		return ErrShortFrame
	}
	reg := uint16(w[0])<<8 | uint16(w[1])
	for i, b := range w[2:] {
		s.writeReg(reg+uint16(i), b)
	}
	for i := range r {
		cur := reg + uint16(i)
		r[i] = s.regs[cur]
		// Reading a result consumes its ready flag.
		switch cur {
		case regADCVBATResultMSB:
			s.regs[regADCMeasStatus] &^= adcReadyVBAT
		case regADCTempResultMSB:
			s.regs[regADCMeasStatus] &^= adcReadyTemp
		}
	}
	return nil
}

// writeReg applies device-side semantics for special registers; everything
// else is plain storage.
func (s *Sim) writeReg(reg uint16, v byte) {
	// Event clear registers: write-1-to-clear the paired SET register.
	if reg >= regEventsBase && reg < regEventsBase+4*eventGroups &&
		(reg-regEventsBase)%4 == offEventsClear {
		s.regs[reg-1] &^= v
		return
	}

	switch reg {
	case regADCTaskVBAT:
		s.regs[regADCVBATResultMSB] = byte(s.vbatCode >> 2)
		s.regs[regADCResultLSBs] = s.regs[regADCResultLSBs]&^0x03 | byte(s.vbatCode&0x03)
		s.regs[regADCMeasStatus] |= adcReadyVBAT
	case regADCTaskDieTemp:
		s.regs[regADCTempResultMSB] = byte(s.tempCode >> 2)
		s.regs[regADCResultLSBs] = s.regs[regADCResultLSBs]&^0x0C | byte(s.tempCode&0x03)<<2
		s.regs[regADCMeasStatus] |= adcReadyTemp
	case regErrlogTaskClear:
		s.regs[regErrlogRstCause] = 0
		s.regs[regErrlogChargerErr] = 0
		s.regs[regErrlogSensorErr] = 0
	case regVBUSTaskUpdateILim, regTimerSet, regTimerClear,
		regShipTaskShip, regShipTaskHibernate:
		// Tasks self-clear; nothing to store.
	default:
		if s.buckTask(reg, v) || s.ldswTask(reg, v) {
			return
		}
		s.regs[reg] = v
	}
}

// buckTask maps the enable SET/CLR task pairs onto the status register.
func (s *Sim) buckTask(reg uint16, v byte) bool {
	if reg < regBuckEnaBase || reg >= regBuckEnaBase+2*buckCount || v == 0 {
		return false
	}
	idx := (reg - regBuckEnaBase) / 2
	if (reg-regBuckEnaBase)%2 == 0 {
		s.regs[regBuckStatus] |= 1 << idx
	} else {
		s.regs[regBuckStatus] &^= 1 << idx
	}
	return true
}

// ldswTask maps the load switch enable SET/CLR task pairs onto the status
// register. Which power-up bit of an instance's pair lights depends on the
// mode selected at enable time.
func (s *Sim) ldswTask(reg uint16, v byte) bool {
	if reg < regLdswEnaBase || reg >= regLdswEnaBase+2*ldswCount || v == 0 {
		return false
	}
	idx := (reg - regLdswEnaBase) / 2
	bit := byte(1) << (2 * idx) // load switch power-up
	if s.regs[regLdswLDOSel]&(1<<idx) != 0 {
		bit <<= 1 // LDO power-up
	}
	if (reg-regLdswEnaBase)%2 == 0 {
		s.regs[regLdswStatus] &^= 0x03 << (2 * idx)
		s.regs[regLdswStatus] |= bit
	} else {
		s.regs[regLdswStatus] &^= 0x03 << (2 * idx)
	}
	return true
}
