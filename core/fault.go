package core

// FaultHandler receives the diagnostic for an unrecoverable fault. It
// must not return; platform handlers disable interrupts, emit the
// message, and park the core.
type FaultHandler func(msg string)

var faultHandler FaultHandler

// SetFaultHandler installs the platform fault sink.
func SetFaultHandler(h FaultHandler) {
	faultHandler = h
}

// Fault reports a protocol or invariant violation: an empty state slot, a
// rejected DMA start, a double-queued task. These indicate logic bugs,
// not transient conditions, so there is no recovery path. The event ring
// is dumped for post-mortem, then the sink takes over; the panic is the
// backstop for host builds with no sink installed.
func Fault(msg string) {
	DumpEventRing()
	if faultHandler != nil {
		faultHandler(msg)
	}
	panic("fault: " + msg)
}
