//go:build rp2040 || rp2350

package main

import (
	"errors"
	"machine"

	"twidma/core"
)

var errBusBusy = errors.New("transaction already in progress")

type dir uint8

const (
	dirTx dir = iota
	dirRx
)

// RPResponderDriver implements core.ResponderDriver on a machine.I2C
// block in target mode. The machine layer delivers target events through
// WaitForEvent, so Run pumps those into latched driver flags and invokes
// the bound service routine, standing in for the peripheral's interrupt
// vector. The reset pin interrupt can still preempt the service routine,
// which is why core masks interrupts around its slot updates.
type RPResponderDriver struct {
	bus     *machine.I2C
	service func()

	events  uint8
	rxBuf   [core.BufSize]byte
	rxLen   int
	current *rpTransfer
}

// NewRPResponderDriver constructs the driver on the given I2C block.
func NewRPResponderDriver(bus *machine.I2C) *RPResponderDriver {
	return &RPResponderDriver{bus: bus}
}

// Configure sets up target mode on the given pins and starts listening
// at the demo address.
func (d *RPResponderDriver) Configure(sda, scl machine.Pin) error {
	err := d.bus.Configure(machine.I2CConfig{
		SDA:  sda,
		SCL:  scl,
		Mode: machine.I2CModeTarget,
	})
	if err != nil {
		return err
	}
	return d.bus.Listen(core.ResponderAddr)
}

// Run binds the service routine and pumps hardware events into it.
// Call from a goroutine; it never returns.
func (d *RPResponderDriver) Run(service func()) {
	d.service = service
	for {
		evt, n, err := d.bus.WaitForEvent(d.rxBuf[:])
		if err != nil {
			core.Trace("bus event error: " + err.Error())
			continue
		}
		switch evt {
		case machine.I2CRequest:
			d.events |= 1 << core.EventRead
			d.service()
			// The service routine armed a transmit; hand its source to
			// the hardware reply path.
			if t := d.current; t != nil && t.dir == dirTx {
				if err := d.bus.Reply(t.buf[:]); err != nil {
					core.Trace("reply error: " + err.Error())
				}
			}
		case machine.I2CReceive:
			d.rxLen = n
			d.events |= 1 << core.EventWrite
			d.service()
		case machine.I2CFinish:
			d.events |= 1 << core.EventStopped
			d.service()
		}
	}
}

func (d *RPResponderDriver) EventTriggered(ev core.TwiEvent) bool {
	return d.events&(1<<ev) != 0
}

func (d *RPResponderDriver) ClearEvent(ev core.TwiEvent) {
	d.events &^= 1 << ev
}

func (d *RPResponderDriver) StartTx(buf core.DMABuffer) (core.Transfer, error) {
	return d.start(buf, dirTx)
}

func (d *RPResponderDriver) StartRx(buf core.DMABuffer) (core.Transfer, error) {
	return d.start(buf, dirRx)
}

func (d *RPResponderDriver) start(buf core.DMABuffer, dir dir) (core.Transfer, error) {
	if d.current != nil {
		return nil, errBusBusy
	}
	t := &rpTransfer{dev: d, buf: buf, dir: dir}
	d.current = t
	return t, nil
}

// rpTransfer tracks one hardware transaction between start and the stop
// event.
type rpTransfer struct {
	dev *RPResponderDriver
	buf core.DMABuffer
	dir dir
}

// Wait releases the interface and hands the buffer back. Received bytes
// land in the buffer here; they were already moved off the wire by the
// event pump before the stop fired.
func (t *rpTransfer) Wait() core.DMABuffer {
	if t.dir == dirRx {
		n := t.dev.rxLen
		if n > len(t.buf) {
			n = len(t.buf)
		}
		copy(t.buf[:n], t.dev.rxBuf[:n])
	}
	t.dev.current = nil
	return t.buf
}
