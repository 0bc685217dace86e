package core

// TraceWriter is a function that emits one diagnostic trace line.
type TraceWriter func(string)

// traceWriter is the global trace sink (set by platform code).
// No-op by default so core stays usable without any output channel.
var traceWriter TraceWriter = func(string) {}

// SetTraceWriter sets the platform-specific trace output function.
// This allows platforms to redirect the trace to USB CDC, UART, RTT or
// stdout on the host.
func SetTraceWriter(w TraceWriter) {
	traceWriter = w
}

// Trace emits one diagnostic line. Observability only: no state machine
// behavior depends on it.
func Trace(msg string) {
	traceWriter(msg)
}

// Event codes for the post-mortem ring.
const (
	evtRead    = 1 // read command latched
	evtWrite   = 2 // write command latched
	evtStopped = 3 // transaction stopped
	evtReset   = 4 // reset edge serviced
)

const eventRingSize = 16

// Event capture ring for post-mortem analysis. Written from interrupt
// context, so updates must stay non-blocking and cheap.
var (
	eventRing     [eventRingSize]uint8
	eventRingHead uint8
)

// recordEvent captures a bus or reset event in the ring buffer.
func recordEvent(code uint8) {
	eventRing[eventRingHead] = code
	eventRingHead = (eventRingHead + 1) % eventRingSize
}

// DumpEventRing traces the recent event history, oldest first. Called on
// the fault path and usable from a debugger.
func DumpEventRing() {
	Trace("=== event ring ===")
	start := eventRingHead
	for i := uint8(0); i < eventRingSize; i++ {
		idx := (start + i) % eventRingSize
		var name string
		switch eventRing[idx] {
		case evtRead:
			name = "READ"
		case evtWrite:
			name = "WRITE"
		case evtStopped:
			name = "STOPPED"
		case evtReset:
			name = "RESET"
		default:
			continue // empty slot
		}
		Trace(name)
	}
	Trace("=== end ring ===")
}

// ClearEventRing clears the capture ring.
func ClearEventRing() {
	for i := range eventRing {
		eventRing[i] = 0
	}
	eventRingHead = 0
}
