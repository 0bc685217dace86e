// Package sim provides in-memory two-wire bus devices implementing the
// core HAL, so the full controller/responder loop runs under plain go
// test and in the host demo, without hardware.
package sim

import (
	"errors"

	"twidma/core"
)

var (
	errNack         = errors.New("address not acknowledged")
	errNotListening = errors.New("no responder on the bus")
	errNoTransmit   = errors.New("responder did not arm a transmit")
	errNoReceive    = errors.New("responder did not arm a receive")
)

// Bus couples a simulated responder peripheral with controller endpoints
// on the same wire. Controller operations emulate what external bus
// traffic does to the responder: latch an event flag, fire the bus
// interrupt, move the bytes through the armed transfer, and finish with
// a stop event.
type Bus struct {
	resp *ResponderDevice
	isr  func()
}

// NewBus creates a bus with one responder peripheral attached.
func NewBus() *Bus {
	return &Bus{resp: &ResponderDevice{}}
}

// Responder returns the peripheral-mode device on this bus.
func (b *Bus) Responder() *ResponderDevice {
	return b.resp
}

// BindInterrupt registers the service routine invoked on bus events; it
// stands in for the peripheral's interrupt vector.
func (b *Bus) BindInterrupt(isr func()) {
	b.isr = isr
}

// Controller returns a controller-mode endpoint on the same wire.
func (b *Bus) Controller() core.ControllerDriver {
	return controller{bus: b}
}

// controller issues read/write transactions against the bus's responder.
type controller struct {
	bus *Bus
}

func (c controller) Read(addr uint16, p []byte) error {
	b := c.bus
	if addr != core.ResponderAddr {
		return errNack
	}
	if b.isr == nil {
		return errNotListening
	}

	d := b.resp
	d.Raise(core.EventRead)
	b.isr()

	t := d.current
	if t == nil || t.dir != dirTx {
		return errNoTransmit
	}
	// Transmit sources the buffer without mutating it.
	copy(p, t.buf[:])

	d.Raise(core.EventStopped)
	b.isr()
	return nil
}

func (c controller) Write(addr uint16, p []byte) error {
	b := c.bus
	if addr != core.ResponderAddr {
		return errNack
	}
	if b.isr == nil {
		return errNotListening
	}

	d := b.resp
	d.Raise(core.EventWrite)
	b.isr()

	t := d.current
	if t == nil || t.dir != dirRx {
		return errNoReceive
	}
	copy(t.buf[:], p)

	d.Raise(core.EventStopped)
	b.isr()
	return nil
}
