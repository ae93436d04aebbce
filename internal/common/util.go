package common

// WipeByteArray overwrites the slice with zeros so sensitive material
// (passwords) does not linger in memory longer than needed.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
