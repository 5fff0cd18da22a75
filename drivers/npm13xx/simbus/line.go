package simbus

import (
	"sync"

	"npmcore-go/drivers/npm13xx"
)

// Line is a host-side interrupt input for harness use. Fire delivers an edge
// to the registered handler only while the line is enabled, which is exactly
// the coalescing the driver's state machine relies on.
type Line struct {
	mu      sync.Mutex
	handler func()
	enabled bool

	enables  int
	disables int
}

func (l *Line) SetIRQ(handler func()) error {
	l.mu.Lock()
	l.handler = handler
	l.mu.Unlock()
	return nil
}

func (l *Line) EnableIRQ(_ npm13xx.Polarity) error {
	l.mu.Lock()
	l.enabled = true
	l.enables++
	l.mu.Unlock()
	return nil
}

func (l *Line) DisableIRQ() error {
	l.mu.Lock()
	l.enabled = false
	l.disables++
	l.mu.Unlock()
	return nil
}

// Fire simulates an edge from the device.
func (l *Line) Fire() {
	l.mu.Lock()
	h := l.handler
	on := l.enabled
	l.mu.Unlock()
	if on && h != nil {
		h()
	}
}

// Enabled reports the current line state.
func (l *Line) Enabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enabled
}

// Counts reports how often the line was enabled and disabled.
func (l *Line) Counts() (enables, disables int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enables, l.disables
}
