package core

import "tinygo.org/x/drivers"

// ControllerDriver is the controller-mode (bus initiator) side of the
// two-wire interface. It is a fully independent peripheral from the
// responder: separate hardware block, no shared state, plain blocking
// calls. Do not unify it with ResponderDriver; the two roles have
// different lifecycles and error handling.
type ControllerDriver interface {
	// Read issues a bus read of len(p) bytes from addr.
	Read(addr uint16, p []byte) error

	// Write issues a bus write of p to addr.
	Write(addr uint16, p []byte) error
}

// driversController adapts any drivers-compatible I2C bus (machine.I2C on
// TinyGo targets, bridge adapters on a host) to ControllerDriver.
type driversController struct {
	bus drivers.I2C
}

// NewDriversController wraps bus as a ControllerDriver.
func NewDriversController(bus drivers.I2C) ControllerDriver {
	return driversController{bus: bus}
}

func (c driversController) Read(addr uint16, p []byte) error {
	return c.bus.Tx(addr, nil, p)
}

func (c driversController) Write(addr uint16, p []byte) error {
	return c.bus.Tx(addr, p, nil)
}
