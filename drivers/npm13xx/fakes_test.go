package npm13xx

import (
	"errors"
	"sync"
)

// regBus is a map-backed register file behind drivers.I2C for unit tests.
// Event clear registers get write-1-to-clear semantics so dispatch passes
// drain latched bits the way the hardware does; everything else is plain
// storage.
type regBus struct {
	mu   sync.Mutex
	regs map[uint16]byte

	writes   []regWrite
	failRead map[uint16]bool
	failAll  bool
}

type regWrite struct {
	reg uint16
	val byte
}

func newRegBus() *regBus {
	return &regBus{regs: map[uint16]byte{}, failRead: map[uint16]bool{}}
}

var errFakeBus = errors.New("fake bus failure")

func (b *regBus) Tx(_ uint16, w, r []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.failAll {
		return errFakeBus
	}
	if len(w) < 2 {
		return errFakeBus
	}
	reg := uint16(w[0])<<8 | uint16(w[1])
	if len(r) > 0 && b.failRead[reg] {
		return errFakeBus
	}
	for i, v := range w[2:] {
		cur := reg + uint16(i)
		b.writes = append(b.writes, regWrite{cur, v})
		if cur >= regEventsBase && cur < regEventsBase+4*GroupCount &&
			(cur-regEventsBase)%4 == offEventsClear {
			b.regs[cur-1] &^= v
			continue
		}
		b.regs[cur] = v
	}
	for i := range r {
		r[i] = b.regs[reg+uint16(i)]
	}
	return nil
}

func (b *regBus) set(reg uint16, v byte) {
	b.mu.Lock()
	b.regs[reg] = v
	b.mu.Unlock()
}

func (b *regBus) get(reg uint16) byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.regs[reg]
}

// wrote reports whether val was ever written to reg.
func (b *regBus) wrote(reg uint16, val byte) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, w := range b.writes {
		if w.reg == reg && w.val == val {
			return true
		}
	}
	return false
}

// fakeLine implements IRQLine with call recording and error injection.
type fakeLine struct {
	mu      sync.Mutex
	handler func()
	enabled bool
	pol     Polarity

	enables  int
	disables int

	setErr     error
	enableErr  error
	disableErr error

	// onCall, if set, records line activity into a shared trace.
	onCall func(what string)
}

func (l *fakeLine) SetIRQ(handler func()) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.setErr != nil {
		return l.setErr
	}
	l.handler = handler
	return nil
}

func (l *fakeLine) EnableIRQ(pol Polarity) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enables++
	l.pol = pol
	if l.onCall != nil {
		l.onCall("enable")
	}
	if l.enableErr != nil {
		return l.enableErr
	}
	l.enabled = true
	return nil
}

func (l *fakeLine) DisableIRQ() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.disables++
	l.enabled = false
	if l.onCall != nil {
		l.onCall("disable")
	}
	if l.disableErr != nil {
		return l.disableErr
	}
	return nil
}

// fire delivers an edge if the line is enabled, mimicking a level interrupt
// gated by the enable.
func (l *fakeLine) fire() {
	l.mu.Lock()
	h := l.handler
	on := l.enabled
	l.mu.Unlock()
	if on && h != nil {
		h()
	}
}

func (l *fakeLine) isEnabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enabled
}
