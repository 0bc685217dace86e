// twidma-sim runs the demo scenario against the simulated bus: an
// external write and read-back, then a reset-button press and the queued
// controller exchange. It prints the same trace the firmware would emit.
package main

import (
	"fmt"

	"twidma/core"
	"twidma/sim"
)

func main() {
	core.SetTraceWriter(func(s string) { fmt.Println(s) })

	var buffer [core.BufSize]byte
	bus := sim.NewBus()
	responder := core.NewResponder(&buffer, bus.Responder())
	bus.BindInterrupt(responder.ServiceBusEvent)
	tasks := core.NewTaskQueue()

	core.Trace("Waiting for commands from controller...")

	// An external controller writes eight nines and reads them back.
	external := bus.Controller()
	if err := external.Write(core.ResponderAddr, []byte{9, 9, 9, 9, 9, 9, 9, 9}); err != nil {
		core.Trace("external write failed: " + err.Error())
	}
	readBack := make([]byte, core.BufSize)
	if err := external.Read(core.ResponderAddr, readBack); err != nil {
		core.Trace("external read failed: " + err.Error())
	}

	// Reset button press: zero the buffer and queue the exchange.
	responder.ServiceReset(tasks)
	if tasks.TryTake() {
		core.RunControllerCommands(bus.Controller())
	}

	core.Trace("final buffer: " + core.FormatBytes(buffer[:]))
}
