package blecore

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Address is a 6-byte device address, stored least significant byte first
// as it appears on the wire. The zero value 00:00:00:00:00:00 is the
// reserved invalid address; a default-constructed Address is therefore
// invalid until filled in.
//
// Whether the address is public, random, or an identity address is not
// encoded here; PeerAddressType and RandomAddressType carry that
// classification separately.
type Address [6]byte

// AddressFromBytes builds an Address from a 6-byte buffer in wire order.
func AddressFromBytes(b []byte) (Address, error) {
	var a Address
	err := copyExact(a[:], b, "address")
	return a, err
}

// ParseAddress parses a colon separated address written most significant
// byte first, e.g. "aa:bb:cc:dd:ee:ff". Case is ignored and the colons are
// optional.
func ParseAddress(s string) (Address, error) {
	var a Address
	h := strings.Replace(strings.ToLower(s), ":", "", -1)
	b, err := hex.DecodeString(h)
	if err != nil {
		return a, errors.Wrapf(err, "invalid address %q", s)
	}
	if len(b) != len(a) {
		return a, errors.Errorf("invalid address %q: need %d bytes, got %d", s, len(a), len(b))
	}
	for i := range a {
		a[i] = b[len(b)-1-i]
	}
	return a, nil
}

// Bytes returns a mutable view of the address storage in wire order. The
// view aliases the receiver and must not outlive it.
func (a *Address) Bytes() []byte { return a[:] }

// IsZero reports whether the address is the invalid all-zero address.
func (a Address) IsZero() bool { return IsAllZeros(a[:]) }

// String formats the address most significant byte first with colon
// separators.
func (a Address) String() string {
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x",
		a[5], a[4], a[3], a[2], a[1], a[0])
}

// PeerAddressType classifies a peer device address.
type PeerAddressType uint8

const (
	// PeerAddressPublic is a public device address.
	PeerAddressPublic PeerAddressType = 0x00
	// PeerAddressRandom is a random address; RandomAddressType refines it.
	PeerAddressRandom PeerAddressType = 0x01
	// PeerAddressPublicIdentity is a public address used as a device
	// identity address.
	PeerAddressPublicIdentity PeerAddressType = 0x02
	// PeerAddressRandomStaticIdentity is a random static address used as a
	// device identity address.
	PeerAddressRandomStaticIdentity PeerAddressType = 0x03
)

// PeerAddressTypeFromByte converts a raw byte into a PeerAddressType,
// rejecting values outside the declared set.
func PeerAddressTypeFromByte(b byte) (PeerAddressType, error) {
	t := PeerAddressType(b)
	if !t.Valid() {
		return 0, errors.Errorf("invalid peer address type 0x%02X", b)
	}
	return t, nil
}

// Valid reports whether the value is one of the declared types.
func (t PeerAddressType) Valid() bool {
	return t <= PeerAddressRandomStaticIdentity
}

func (t PeerAddressType) String() string {
	switch t {
	case PeerAddressPublic:
		return "public"
	case PeerAddressRandom:
		return "random"
	case PeerAddressPublicIdentity:
		return "public identity"
	case PeerAddressRandomStaticIdentity:
		return "random static identity"
	default:
		return "unknown"
	}
}

// RandomAddressType classifies a random device address.
type RandomAddressType uint8

const (
	// RandomAddressStatic is a random static device address.
	RandomAddressStatic RandomAddressType = 0x00
	// RandomAddressNonResolvablePrivate is a random non resolvable private
	// address.
	RandomAddressNonResolvablePrivate RandomAddressType = 0x01
	// RandomAddressResolvablePrivate is a random resolvable private
	// address.
	RandomAddressResolvablePrivate RandomAddressType = 0x02
)

// RandomAddressTypeFromByte converts a raw byte into a RandomAddressType,
// rejecting values outside the declared set.
func RandomAddressTypeFromByte(b byte) (RandomAddressType, error) {
	t := RandomAddressType(b)
	if !t.Valid() {
		return 0, errors.Errorf("invalid random address type 0x%02X", b)
	}
	return t, nil
}

// Valid reports whether the value is one of the declared types.
func (t RandomAddressType) Valid() bool {
	return t <= RandomAddressResolvablePrivate
}

func (t RandomAddressType) String() string {
	switch t {
	case RandomAddressStatic:
		return "static"
	case RandomAddressNonResolvablePrivate:
		return "non-resolvable private"
	case RandomAddressResolvablePrivate:
		return "resolvable private"
	default:
		return "unknown"
	}
}
