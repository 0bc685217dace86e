package core

// controllerPayload is the fixed pattern the demo writes to the responder
// after reading it.
var controllerPayload = [BufSize]byte{1, 2, 3, 4, 5, 6, 7, 8}

// RunControllerCommands performs the demonstration exchange against the
// responder address: read BufSize bytes, then write the fixed payload.
// Each step reports its own outcome and a failed read does not stop the
// write. Blocking; must only run at base priority, never from an
// interrupt handler.
func RunControllerCommands(bus ControllerDriver) {
	var rx [BufSize]byte
	Trace("READ from address " + hex8(ResponderAddr))
	if err := bus.Read(ResponderAddr, rx[:]); err != nil {
		Trace("read failed: " + err.Error())
	} else {
		Trace(FormatBytes(rx[:]))
	}

	tx := controllerPayload
	Trace("WRITE to address " + hex8(ResponderAddr))
	if err := bus.Write(ResponderAddr, tx[:]); err != nil {
		Trace("write failed: " + err.Error())
	} else {
		Trace(FormatBytes(tx[:]))
	}
}
