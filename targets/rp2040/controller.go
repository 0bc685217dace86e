//go:build rp2040 || rp2350

package main

import (
	"machine"

	"twidma/core"
)

// controllerFrequency is the bus clock for the controller-mode block.
const controllerFrequency = 100_000 // 100 kHz, matching the demo setup

// NewRPController configures an I2C block in controller mode and wraps
// it as a core.ControllerDriver. machine.I2C satisfies the drivers Tx
// contract, so the portable adapter does the rest.
func NewRPController(bus *machine.I2C, sda, scl machine.Pin) (core.ControllerDriver, error) {
	err := bus.Configure(machine.I2CConfig{
		Frequency: controllerFrequency,
		SDA:       sda,
		SCL:       scl,
	})
	if err != nil {
		return nil, err
	}
	return core.NewDriversController(bus), nil
}
