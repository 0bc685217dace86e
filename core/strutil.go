package core

// Lightweight string formatting without the fmt package, which pulls too
// much into an embedded image.

// utoa converts an unsigned integer to a decimal string.
func utoa(n uint32) string {
	if n == 0 {
		return "0"
	}

	temp := n
	digits := 0
	for temp > 0 {
		digits++
		temp /= 10
	}

	buf := make([]byte, digits)
	pos := digits - 1
	for n > 0 {
		buf[pos] = byte('0' + n%10)
		n /= 10
		pos--
	}

	return string(buf)
}

const hexDigits = "0123456789ABCDEF"

// hex8 renders a byte as "0xNN".
func hex8(v uint8) string {
	return "0x" + string([]byte{hexDigits[v>>4], hexDigits[v&0xF]})
}

// FormatBytes renders p as a bracketed decimal list, e.g. "[1, 2, 3]".
// This is the format used for the buffer dumps in the trace.
func FormatBytes(p []byte) string {
	s := "["
	for i, b := range p {
		if i > 0 {
			s += ", "
		}
		s += utoa(uint32(b))
	}
	return s + "]"
}
