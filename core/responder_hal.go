package core

// TwiEvent identifies one of the bus events the responder peripheral
// latches and raises its interrupt for.
type TwiEvent uint8

const (
	// EventRead fires when the external controller addressed us with a
	// read command: it wants bytes from the responder.
	EventRead TwiEvent = iota
	// EventWrite fires when the external controller addressed us with a
	// write command: it is sending bytes to the responder.
	EventWrite
	// EventStopped fires when the bus transaction ends (STOP condition).
	EventStopped
)

// Transfer is an in-flight DMA transaction. It owns the shared buffer
// from start until Wait.
type Transfer interface {
	// Wait completes the transaction and hands the buffer back. Called
	// from the bus interrupt it returns immediately, because the hardware
	// has already finished by the time that interrupt fires. Called from
	// the reset path it stops whatever is still in flight first. Must be
	// called exactly once.
	Wait() DMABuffer
}

// ResponderDriver is the peripheral-mode (bus target) side of the
// two-wire interface. Platform code supplies an implementation; core
// never touches hardware directly.
type ResponderDriver interface {
	// EventTriggered reports whether the given event flag is latched.
	EventTriggered(ev TwiEvent) bool

	// ClearEvent resets a latched event flag so the interrupt does not
	// immediately re-fire.
	ClearEvent(ev TwiEvent)

	// StartTx begins a transmit DMA transaction sourcing buf. The buffer
	// belongs to the returned Transfer until Wait. Returns an error if a
	// transaction is already outstanding.
	StartTx(buf DMABuffer) (Transfer, error)

	// StartRx begins a receive DMA transaction filling buf. Same
	// ownership and busy rules as StartTx.
	StartRx(buf DMABuffer) (Transfer, error)
}
