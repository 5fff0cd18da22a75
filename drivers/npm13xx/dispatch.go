package npm13xx

import (
	"context"
	"sync/atomic"
)

// Polarity selects the active level/edge of a host interrupt line.
type Polarity uint8

const (
	PolarityLow Polarity = iota
	PolarityHigh
)

// IRQLine is a host-side interrupt input wired to one device output.
// Implementations must tolerate repeated enable/disable calls (idempotent)
// and must invoke the handler from interrupt context without blocking.
type IRQLine interface {
	SetIRQ(handler func()) error
	EnableIRQ(pol Polarity) error
	DisableIRQ() error
}

// Dispatcher owns the primary interrupt line and the single deferred worker
// that turns latched device events into callback invocations.
//
// The line is the state machine: while it is disabled a pass is in flight
// (Handling) and further edges coalesce; re-enabling it is the transition
// back to Armed. No lock is needed because scheduling a second pass is
// structurally impossible with the line down.
type Dispatcher struct {
	dev  *Device
	line IRQLine

	// OnDiagnostic, if set before Start, receives the error behind every
	// counted runtime failure. It runs on the worker goroutine.
	OnDiagnostic func(err error)

	kick    chan struct{}
	stopped chan struct{}

	busErrs    uint32
	rearmFails uint32
}

// NewDispatcher binds dev's event fan-out to the given host line.
func NewDispatcher(dev *Device, line IRQLine) *Dispatcher {
	return &Dispatcher{
		dev:     dev,
		line:    line,
		kick:    make(chan struct{}, 1),
		stopped: make(chan struct{}),
	}
}

// Start masks every event group, routes the device interrupt pin, arms the
// line and launches the worker. Any failure here is fatal to bring-up: a
// device that cannot deliver events must not come up half-armed.
// The line triggers on the active-high level the device drives.
func (p *Dispatcher) Start(ctx context.Context) error {
	for g := EventGroup(0); g < GroupCount; g++ {
		if err := p.dev.DisableGroupEvents(g, EventsAllMask); err != nil {
			return err
		}
	}
	if p.dev.intPin >= 0 {
		if err := p.dev.GPIOModeSet(uint8(p.dev.intPin), GPIOModeOutputIRQ); err != nil {
			return err
		}
	}
	if err := p.line.SetIRQ(p.isr); err != nil {
		return err
	}
	go p.run(ctx)
	if err := p.line.EnableIRQ(PolarityHigh); err != nil {
		return err
	}
	p.dev.disp = p
	return nil
}

// isr runs in interrupt context: disable further edges, schedule the worker.
// The send never blocks; with the line down a second edge cannot arrive, and
// a leftover kick from a raced edge only causes one spurious empty pass.
func (p *Dispatcher) isr() {
	_ = p.line.DisableIRQ()
	select {
	case p.kick <- struct{}{}:
	default:
	}
}

func (p *Dispatcher) run(ctx context.Context) {
	defer close(p.stopped)
	for {
		select {
		case <-ctx.Done():
			return
		case <-p.kick:
			p.pass()
		}
	}
}

// pass is one full worker cycle: scan-and-clear pending bits over the bus,
// fan out per-group callbacks in enumeration order, re-arm the line.
// Runtime failures are counted, never fatal: leaving the line enabled in a
// degraded state beats leaving it permanently dead.
func (p *Dispatcher) pass() {
	masks, err := p.dev.classifyAndClear()
	if err != nil {
		atomic.AddUint32(&p.busErrs, 1)
		p.diag(err)
	}
	p.dev.dispatchEvents(masks)
	if err := p.line.EnableIRQ(PolarityHigh); err != nil {
		atomic.AddUint32(&p.rearmFails, 1)
		p.diag(err)
	}
}

func (p *Dispatcher) diag(err error) {
	if p.OnDiagnostic != nil {
		p.OnDiagnostic(err)
	}
}

// Done is closed once the worker has observed context cancellation.
func (p *Dispatcher) Done() <-chan struct{} { return p.stopped }

// BusErrors counts passes whose scan hit a transport error.
func (p *Dispatcher) BusErrors() uint32 { return atomic.LoadUint32(&p.busErrs) }

// RearmFailures counts passes that could not re-enable the line.
func (p *Dispatcher) RearmFailures() uint32 { return atomic.LoadUint32(&p.rearmFails) }

// disableLine is the POF channel's hook for silencing ordinary event
// processing; best-effort.
func (p *Dispatcher) disableLine() {
	_ = p.line.DisableIRQ()
}
