package core

// Responder owns the peripheral-mode interface and the shared buffer and
// drives the idle/running state machine. ServiceBusEvent and ServiceReset
// are interrupt service bodies: platform code binds them to the bus
// peripheral's vector and to the reset pin's edge interrupt. Both run
// their slot update inside a critical section, never blocking.
type Responder struct {
	slot TransferSlot
}

// NewResponder arms the state machine: buf parked, dev listening.
func NewResponder(buf DMABuffer, dev ResponderDriver) *Responder {
	r := &Responder{}
	r.slot.Put(IdleState(buf, dev))
	return r
}

// ServiceBusEvent handles one bus interrupt. Exactly one branch runs per
// invocation: read is checked before write, and a stop is the fallback
// when neither command flag is latched. If both commands are latched the
// write stays pending and is handled by the next interrupt.
func (r *Responder) ServiceBusEvent() {
	mask := disableInterrupts()
	defer restoreInterrupts(mask)

	buf, dev := r.slot.Take().Settle()
	switch {
	case dev.EventTriggered(EventRead):
		dev.ClearEvent(EventRead)
		recordEvent(evtRead)
		Trace("READ command received")
		tx, err := dev.StartTx(buf)
		if err != nil {
			Fault("tx start: " + err.Error())
		}
		r.slot.Put(RunningState(tx, dev))
	case dev.EventTriggered(EventWrite):
		dev.ClearEvent(EventWrite)
		recordEvent(evtWrite)
		Trace("WRITE command received")
		rx, err := dev.StartRx(buf)
		if err != nil {
			Fault("rx start: " + err.Error())
		}
		r.slot.Put(RunningState(rx, dev))
	default:
		dev.ClearEvent(EventStopped)
		recordEvent(evtStopped)
		Trace(FormatBytes(buf[:]))
		r.slot.Put(IdleState(buf, dev))
	}
}

// ServiceReset handles the reset pin's edge interrupt: reclaim the buffer
// (stopping any in-flight transfer), zero it, re-arm the idle state, and
// queue the controller exchange. The platform layer clears the edge latch
// before calling here. The spawn is fire-and-forget and happens outside
// the critical section.
func (r *Responder) ServiceReset(tasks *TaskQueue) {
	mask := disableInterrupts()
	recordEvent(evtReset)
	Trace("Reset buffer")
	buf, dev := r.slot.Take().Settle()
	for i := range buf {
		buf[i] = 0
	}
	Trace(FormatBytes(buf[:]))
	r.slot.Put(IdleState(buf, dev))
	restoreInterrupts(mask)

	tasks.Spawn()
}

// Idle reports whether the interface is parked and listening. Diagnostic
// only: the answer can be stale as soon as it is produced.
func (r *Responder) Idle() bool {
	mask := disableInterrupts()
	defer restoreInterrupts(mask)
	return r.slot.full && !r.slot.state.running
}
