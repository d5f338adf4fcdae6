package common

// WipeByteArray overwrites b with zeros. Nil is a no-op. Used for passwords
// read from the terminal.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
