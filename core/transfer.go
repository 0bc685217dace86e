package core

// TransferState pairs the responder device with the shared buffer in one
// of two phases: idle (buffer parked, interface listening) or running
// (buffer owned by an in-flight DMA transfer). The device and the buffer
// always travel together through transitions; neither is ever referenced
// from outside the state they are held in.
type TransferState struct {
	running bool
	buf     DMABuffer // set when !running
	pending Transfer  // set when running
	dev     ResponderDriver
}

// IdleState parks buf with its listening device.
func IdleState(buf DMABuffer, dev ResponderDriver) TransferState {
	return TransferState{buf: buf, dev: dev}
}

// RunningState records an in-flight transfer on dev.
func RunningState(t Transfer, dev ResponderDriver) TransferState {
	return TransferState{running: true, pending: t, dev: dev}
}

// Running reports whether a DMA transaction is in flight.
func (s TransferState) Running() bool { return s.running }

// Settle resolves the state to its (buffer, device) pair, waiting on the
// pending transfer if one is in flight.
func (s TransferState) Settle() (DMABuffer, ResponderDriver) {
	if s.running {
		return s.pending.Wait(), s.dev
	}
	return s.buf, s.dev
}

// TransferSlot holds the single process-wide TransferState. A handler
// transforms the state by Take (leaving the slot transiently empty),
// computing the next state, and Put. Both must happen inside one critical
// section so no other handler can observe the hole; the slot itself has
// no lock because interrupt-context code must never block.
type TransferSlot struct {
	full  bool
	state TransferState
}

// Take removes the state from the slot. An empty slot here means some
// handler leaked its take/put window; that is a logic bug with no defined
// recovery, so it faults.
func (s *TransferSlot) Take() TransferState {
	if !s.full {
		Fault("transfer slot empty")
	}
	s.full = false
	st := s.state
	s.state = TransferState{}
	return st
}

// Put installs a state into the slot. Faults if the slot is already
// occupied.
func (s *TransferSlot) Put(st TransferState) {
	if s.full {
		Fault("transfer slot already occupied")
	}
	s.full = true
	s.state = st
}
