// Package smkeys generates and converts the P-256 key pairs exchanged
// during secure connections pairing. It only deals with key
// representation; key agreement and confirm value generation belong to
// the security manager protocol engine.
package smkeys

import (
	"crypto"
	"crypto/elliptic"
	"crypto/rand"

	"github.com/pkg/errors"
	ecdh "github.com/wsddn/go-ecdh"

	"github.com/blekit/blecore"
	"github.com/blekit/blecore/sliceops"
)

// WirePublicKeyLen is the length of a public key on the wire: the X and Y
// coordinates, each little-endian, with no point format header.
const WirePublicKeyLen = 64

// KeyPair is a P-256 key pair.
type KeyPair struct {
	private crypto.PrivateKey
	public  crypto.PublicKey
}

// Generate creates a new random key pair.
func Generate() (*KeyPair, error) {
	e := ecdh.NewEllipticECDH(elliptic.P256())

	prv, pub, err := e.GenerateKey(rand.Reader)
	if err != nil {
		return nil, errors.Wrap(err, "generate key pair")
	}

	return &KeyPair{private: prv, public: pub}, nil
}

// Public returns the public half of the pair.
func (k *KeyPair) Public() crypto.PublicKey {
	return k.public
}

// PublicCoords marshals the public key into its X and Y coordinates in
// wire order.
func (k *KeyPair) PublicCoords() (x, y blecore.PublicKeyCoord, err error) {
	return PublicCoords(k.public)
}

// PublicCoords marshals a public key into its X and Y coordinates in wire
// order.
func PublicCoords(pub crypto.PublicKey) (x, y blecore.PublicKeyCoord, err error) {
	e := ecdh.NewEllipticECDH(elliptic.P256())

	ba := e.Marshal(pub)
	if len(ba) != WirePublicKeyLen+1 {
		return x, y, errors.Errorf("unexpected marshaled key length %d", len(ba))
	}
	ba = ba[1:] // strip the point format header

	x, err = blecore.PublicKeyCoordFromBytes(sliceops.SwapBuf(ba[:32]))
	if err != nil {
		return x, y, err
	}
	y, err = blecore.PublicKeyCoordFromBytes(sliceops.SwapBuf(ba[32:]))
	return x, y, err
}

// UnmarshalPublicCoords rebuilds a public key from its wire-order X and Y
// coordinates. It fails if the coordinates are not a point on the curve.
func UnmarshalPublicCoords(x, y blecore.PublicKeyCoord) (crypto.PublicKey, error) {
	e := ecdh.NewEllipticECDH(elliptic.P256())

	r := make([]byte, 0, WirePublicKeyLen+1)
	r = append(r, 0x04)
	r = append(r, sliceops.SwapBuf(x.Bytes())...)
	r = append(r, sliceops.SwapBuf(y.Bytes())...)

	pk, ok := e.Unmarshal(r)
	if !ok {
		return nil, errors.New("public key coordinates are not a point on P-256")
	}
	return pk, nil
}

// PublicCoordsFromWire splits a 64-byte wire buffer into its X and Y
// coordinates.
func PublicCoordsFromWire(b []byte) (x, y blecore.PublicKeyCoord, err error) {
	if len(b) != WirePublicKeyLen {
		return x, y, errors.Errorf("public key: need %d bytes, got %d", WirePublicKeyLen, len(b))
	}
	x, err = blecore.PublicKeyCoordFromBytes(b[:32])
	if err != nil {
		return x, y, err
	}
	y, err = blecore.PublicKeyCoordFromBytes(b[32:])
	return x, y, err
}

// WireBytes concatenates the X and Y coordinates into the 64-byte wire
// representation.
func WireBytes(x, y blecore.PublicKeyCoord) []byte {
	out := make([]byte, 0, WirePublicKeyLen)
	out = append(out, x.Bytes()...)
	out = append(out, y.Bytes()...)
	return out
}
