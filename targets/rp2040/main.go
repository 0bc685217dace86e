//go:build rp2040 || rp2350

package main

import (
	"device/arm"
	"machine"
	"runtime"
	"runtime/interrupt"

	"twidma/core"
)

// Pin assignments. I2C0 (target mode) and I2C1 (controller mode) are
// independent blocks on the same physical bus: wire GP4+GP6 and GP5+GP7
// together, with pull-ups, to let the demo talk to itself.
const (
	responderSDA = machine.GP4
	responderSCL = machine.GP5

	controllerSDA = machine.GP6
	controllerSCL = machine.GP7

	// Reset button to ground; falling edge triggers the buffer reset.
	// No software debounce, the physical button is the rate limit.
	resetPin = machine.GP15
)

// buffer is the one shared DMA buffer, owned through the transfer state
// machine for its entire life.
var buffer [core.BufSize]byte

func main() {
	core.SetTraceWriter(func(s string) { println(s) })
	core.SetFaultHandler(haltOnFault)

	respDrv := NewRPResponderDriver(machine.I2C0)
	if err := respDrv.Configure(responderSDA, responderSCL); err != nil {
		core.Fault("responder configure: " + err.Error())
	}

	ctl, err := NewRPController(machine.I2C1, controllerSDA, controllerSCL)
	if err != nil {
		core.Fault("controller configure: " + err.Error())
	}

	responder := core.NewResponder(&buffer, respDrv)
	tasks := core.NewTaskQueue()

	// The machine layer clears the edge latch before the callback runs,
	// so the handler only has to reset the state machine and queue the
	// controller exchange.
	btn := resetPin
	btn.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	if err := btn.SetInterrupt(machine.PinFalling, func(machine.Pin) {
		responder.ServiceReset(tasks)
	}); err != nil {
		core.Fault("reset pin interrupt: " + err.Error())
	}

	go respDrv.Run(responder.ServiceBusEvent)

	core.Trace("Waiting for commands from controller...")
	core.Trace("idle")
	for {
		if tasks.TryTake() {
			core.RunControllerCommands(ctl)
			continue
		}
		// Park until the next interrupt, then let the event pump run
		// before sleeping again.
		arm.Asm("wfi")
		runtime.Gosched()
	}
}

// haltOnFault is the terminal fault sink: no restart, just a diagnostic
// and a parked core with interrupts off.
func haltOnFault(msg string) {
	interrupt.Disable()
	println("fault:", msg)
	for {
	}
}
