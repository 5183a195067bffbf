package blecore

import "github.com/pkg/errors"

// PasskeyNum is a pairing passkey stored as a number in [0, 999999].
type PasskeyNum uint32

// PasskeyLen is the number of digits in a pairing passkey.
const PasskeyLen = 6

const digitOffset = '0'

// PasskeyAscii is a pairing passkey stored as six ASCII digits, most
// significant digit first, as shown on a display during passkey entry.
//
// The zero value is six NUL bytes, not a valid passkey; construct values
// with NewPasskeyAscii or PasskeyAsciiFromBytes.
type PasskeyAscii [PasskeyLen]byte

// NewPasskeyAscii encodes a numeric passkey as ASCII digits. Only the low
// six decimal digits of the value are kept; callers must supply a value in
// [0, 999999]. NewPasskeyAscii(0) yields "000000".
func NewPasskeyAscii(passkey PasskeyNum) PasskeyAscii {
	var p PasskeyAscii
	for i, m := 0, PasskeyNum(100000); i < PasskeyLen; i, m = i+1, m/10 {
		d := passkey / m
		p[i] = digitOffset + byte(d%10)
		passkey -= d * m
	}
	return p
}

// PasskeyAsciiFromBytes builds a passkey from a 6-byte buffer of ASCII
// digits, rejecting buffers of the wrong length or with non-digit bytes.
func PasskeyAsciiFromBytes(b []byte) (PasskeyAscii, error) {
	var p PasskeyAscii
	if err := copyExact(p[:], b, "passkey"); err != nil {
		return p, err
	}
	for i, c := range p {
		if c < '0' || c > '9' {
			return PasskeyAscii{}, errors.Errorf("passkey: byte %d is 0x%02X, not an ASCII digit", i, c)
		}
	}
	return p, nil
}

// Num decodes the passkey back to its numeric value.
func (p PasskeyAscii) Num() PasskeyNum {
	var n PasskeyNum
	for _, c := range p {
		n = n*10 + PasskeyNum(c-digitOffset)
	}
	return n
}

// Bytes returns a mutable view of the digit storage. The view aliases the
// receiver and must not outlive it.
func (p *PasskeyAscii) Bytes() []byte { return p[:] }

func (p PasskeyAscii) String() string { return string(p[:]) }
