// Two-wire interface (I2C) demo: a peripheral-mode responder and a
// controller on the same bus sharing one DMA buffer.
// The core package holds the portable ownership logic; platform code
// registers drivers and binds the service routines to interrupt vectors.
package core

// ResponderAddr is the 7-bit bus address the responder listens on.
const ResponderAddr = 0x1A

// BufSize is the fixed transfer unit: every bus transaction in this demo
// moves exactly this many bytes.
const BufSize = 8

// DMABuffer is the shared transfer buffer. It is reachable through exactly
// one owner at any instant: the idle state record, an in-flight transfer,
// or, transiently, the reset handler while it zeroes the bytes.
type DMABuffer = *[BufSize]byte
