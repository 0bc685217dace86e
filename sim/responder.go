package sim

import (
	"errors"

	"twidma/core"
)

var errBusy = errors.New("transaction already in progress")

type dir uint8

const (
	dirTx dir = iota
	dirRx
)

// ResponderDevice is a simulated peripheral-mode two-wire interface:
// latched event flags plus single-transaction DMA starts. It implements
// core.ResponderDriver.
type ResponderDevice struct {
	events  uint8
	current *transfer
}

func (d *ResponderDevice) EventTriggered(ev core.TwiEvent) bool {
	return d.events&(1<<ev) != 0
}

func (d *ResponderDevice) ClearEvent(ev core.TwiEvent) {
	d.events &^= 1 << ev
}

// Raise latches an event flag, as bus traffic would.
func (d *ResponderDevice) Raise(ev core.TwiEvent) {
	d.events |= 1 << ev
}

func (d *ResponderDevice) StartTx(buf core.DMABuffer) (core.Transfer, error) {
	return d.start(buf, dirTx)
}

func (d *ResponderDevice) StartRx(buf core.DMABuffer) (core.Transfer, error) {
	return d.start(buf, dirRx)
}

func (d *ResponderDevice) start(buf core.DMABuffer, dir dir) (core.Transfer, error) {
	if d.current != nil {
		return nil, errBusy
	}
	t := &transfer{dev: d, buf: buf, dir: dir}
	d.current = t
	return t, nil
}

// transfer is one in-flight simulated DMA transaction holding the shared
// buffer.
type transfer struct {
	dev *ResponderDevice
	buf core.DMABuffer
	dir dir
}

// Wait stops the transaction if still active and hands the buffer back.
// The data movement itself happens on the bus side (see Bus), mirroring
// hardware that has finished before the completion interrupt fires.
func (t *transfer) Wait() core.DMABuffer {
	t.dev.current = nil
	return t.buf
}
