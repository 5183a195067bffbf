package sliceops

// SwapBuf returns a reversed copy of in. BLE carries multi-byte values
// least significant byte first while crypto libraries expect big-endian,
// so buffers get swapped at that boundary.
func SwapBuf(in []byte) []byte {
	a := make([]byte, 0, len(in))
	a = append(a, in...)
	SwapBufInPlace(a)
	return a
}

// SwapBufInPlace reverses a without allocating.
func SwapBufInPlace(a []byte) {
	for i := len(a)/2 - 1; i >= 0; i-- {
		opp := len(a) - 1 - i
		a[i], a[opp] = a[opp], a[i]
	}
}
