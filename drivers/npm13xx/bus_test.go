package npm13xx

import (
	"bytes"
	"errors"
	"testing"

	"npmcore-go/errcode"
)

// recBus records raw transactions without interpreting them.
type recBus struct {
	txs [][]byte
	rd  []byte
	err error
}

func (b *recBus) Tx(_ uint16, w, r []byte) error {
	if b.err != nil {
		return b.err
	}
	b.txs = append(b.txs, append([]byte(nil), w...))
	copy(r, b.rd)
	return nil
}

func TestWriteRegistersFraming(t *testing.T) {
	bus := &recBus{}
	be := NewBackend(bus, AddressDefault)

	if err := be.WriteRegisters(0x0408, []byte{0x0D}); err != nil {
		t.Fatalf("WriteRegisters: %v", err)
	}
	if len(bus.txs) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(bus.txs))
	}
	want := []byte{0x04, 0x08, 0x0D}
	if !bytes.Equal(bus.txs[0], want) {
		t.Fatalf("frame = % X, want % X", bus.txs[0], want)
	}
}

func TestWriteRegistersAddressBigEndian(t *testing.T) {
	bus := &recBus{}
	be := NewBackend(bus, AddressDefault)

	for _, reg := range []uint16{0x0001, 0x0334, 0x0B04, 0x0E01} {
		bus.txs = nil
		if err := be.WriteRegisters(reg, []byte{1}); err != nil {
			t.Fatalf("WriteRegisters(%#04x): %v", reg, err)
		}
		w := bus.txs[0]
		if w[0] != byte(reg>>8) || w[1] != byte(reg) {
			t.Fatalf("reg %#04x framed as % X", reg, w[:2])
		}
	}
}

func TestReadRegistersFraming(t *testing.T) {
	bus := &recBus{rd: []byte{0xAB, 0xCD}}
	be := NewBackend(bus, AddressDefault)

	var buf [2]byte
	if err := be.ReadRegisters(0x0310, buf[:]); err != nil {
		t.Fatalf("ReadRegisters: %v", err)
	}
	if len(bus.txs) != 1 || !bytes.Equal(bus.txs[0], []byte{0x03, 0x10}) {
		t.Fatalf("address frame = % X", bus.txs)
	}
	if buf != [2]byte{0xAB, 0xCD} {
		t.Fatalf("read = % X", buf)
	}
}

func TestTransportErrorsCollapseToIOError(t *testing.T) {
	bus := &recBus{err: errors.New("nak")}
	be := NewBackend(bus, AddressDefault)

	if err := be.WriteRegisters(0x0100, []byte{1}); errcode.Of(err) != errcode.IOError {
		t.Fatalf("write error = %v, want io_error", err)
	}
	var buf [1]byte
	if err := be.ReadRegisters(0x0100, buf[:]); errcode.Of(err) != errcode.IOError {
		t.Fatalf("read error = %v, want io_error", err)
	}
}

func TestTransferSizeLimits(t *testing.T) {
	bus := &recBus{}
	be := NewBackend(bus, AddressDefault)

	if err := be.WriteRegisters(0x0100, nil); errcode.Of(err) != errcode.InvalidParam {
		t.Fatalf("empty write error = %v", err)
	}
	if err := be.WriteRegisters(0x0100, make([]byte, maxTransfer+1)); errcode.Of(err) != errcode.InvalidParam {
		t.Fatalf("oversized write error = %v", err)
	}
	if err := be.ReadRegisters(0x0100, nil); errcode.Of(err) != errcode.InvalidParam {
		t.Fatalf("empty read error = %v", err)
	}
	if len(bus.txs) != 0 {
		t.Fatalf("rejected transfers reached the bus: %d", len(bus.txs))
	}
}
