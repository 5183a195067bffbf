package blecore

import "github.com/pkg/errors"

// IsAllZeros reports whether every byte of the view is zero. It works on
// any byte view, including the slices returned by the buffer types' Bytes
// methods.
func IsAllZeros(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

// SetAllZeros zeroes every byte of the view in place. Callers holding key
// material use this to scrub a buffer through its Bytes view.
func SetAllZeros(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// copyExact copies src into dst, requiring the lengths to match exactly.
// Every XxxFromBytes constructor funnels through this check so a short or
// oversized wire buffer is an error instead of silently undefined bytes.
func copyExact(dst, src []byte, what string) error {
	if len(src) != len(dst) {
		return errors.Errorf("%s: need %d bytes, got %d", what, len(dst), len(src))
	}
	copy(dst, src)
	return nil
}
