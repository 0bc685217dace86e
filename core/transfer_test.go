package core

import (
	"errors"
	"testing"
)

// fakeTransfer resolves immediately, like hardware that has already
// signaled completion.
type fakeTransfer struct {
	dev *fakeDevice
	buf DMABuffer
	tx  bool

	// fill, when set, lands in the buffer on Wait, simulating the bytes a
	// receive transaction moved in.
	fill []byte

	waits int
}

func (t *fakeTransfer) Wait() DMABuffer {
	t.waits++
	if t.fill != nil {
		copy(t.buf[:], t.fill)
	}
	if t.dev != nil {
		t.dev.current = nil
	}
	return t.buf
}

// fakeDevice implements ResponderDriver with latched flags and
// single-transaction starts.
type fakeDevice struct {
	events  uint8
	current *fakeTransfer

	rxFill   []byte // bytes the next receive transfer will deliver
	txStarts int
	rxStarts int
}

func (d *fakeDevice) EventTriggered(ev TwiEvent) bool {
	return d.events&(1<<ev) != 0
}

func (d *fakeDevice) ClearEvent(ev TwiEvent) {
	d.events &^= 1 << ev
}

func (d *fakeDevice) raise(ev TwiEvent) {
	d.events |= 1 << ev
}

func (d *fakeDevice) StartTx(buf DMABuffer) (Transfer, error) {
	if d.current != nil {
		return nil, errFakeBusy
	}
	d.txStarts++
	t := &fakeTransfer{dev: d, buf: buf, tx: true}
	d.current = t
	return t, nil
}

func (d *fakeDevice) StartRx(buf DMABuffer) (Transfer, error) {
	if d.current != nil {
		return nil, errFakeBusy
	}
	d.rxStarts++
	t := &fakeTransfer{dev: d, buf: buf, fill: d.rxFill}
	d.current = t
	return t, nil
}

var errFakeBusy = errors.New("interface busy")

func TestSlotTakePut(t *testing.T) {
	var slot TransferSlot
	var buf [BufSize]byte
	dev := &fakeDevice{}

	slot.Put(IdleState(&buf, dev))
	st := slot.Take()
	if st.Running() {
		t.Error("expected idle state after Put(IdleState)")
	}
	gotBuf, gotDev := st.Settle()
	if gotBuf != &buf {
		t.Error("Settle returned a different buffer than was parked")
	}
	if gotDev != ResponderDriver(dev) {
		t.Error("Settle returned a different device than was parked")
	}
}

func TestSettleRunningWaitsTransfer(t *testing.T) {
	var buf [BufSize]byte
	dev := &fakeDevice{}
	tr, err := dev.StartTx(&buf)
	if err != nil {
		t.Fatalf("StartTx: %v", err)
	}

	st := RunningState(tr, dev)
	if !st.Running() {
		t.Fatal("RunningState not reported as running")
	}
	gotBuf, _ := st.Settle()
	if gotBuf != &buf {
		t.Error("Settle did not hand back the transfer's buffer")
	}
	if tr.(*fakeTransfer).waits != 1 {
		t.Errorf("transfer waited %d times, want 1", tr.(*fakeTransfer).waits)
	}
}

// Reading an empty slot has no defined recovery: the fatal path must fire
// exactly once and not return.
func TestTakeEmptySlotFaults(t *testing.T) {
	var slot TransferSlot
	faults := 0

	func() {
		defer func() {
			if r := recover(); r != nil {
				faults++
			}
		}()
		slot.Take()
		t.Error("Take on empty slot returned normally")
	}()

	if faults != 1 {
		t.Fatalf("fatal path fired %d times, want 1", faults)
	}
}

func TestPutOccupiedSlotFaults(t *testing.T) {
	var slot TransferSlot
	var buf [BufSize]byte
	dev := &fakeDevice{}
	slot.Put(IdleState(&buf, dev))

	defer func() {
		if recover() == nil {
			t.Error("Put on occupied slot did not fault")
		}
	}()
	slot.Put(IdleState(&buf, dev))
}
