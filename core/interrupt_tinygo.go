//go:build tinygo

package core

import "runtime/interrupt"

// disableInterrupts opens the slot's critical section and returns the
// previous state. With interrupts masked no other handler can observe
// the transiently empty slot, which is the mutual exclusion the
// take/put discipline relies on.
func disableInterrupts() interrupt.State {
	return interrupt.Disable()
}

// restoreInterrupts closes the critical section.
func restoreInterrupts(state interrupt.State) {
	interrupt.Restore(state)
}
