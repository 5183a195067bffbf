package blecore

import "encoding/hex"

// The 128-bit keys exchanged or derived during pairing. Each key kind is
// its own type so an identity key can never be handed to code expecting a
// long term key. All of them are opaque storage to this layer; no
// cryptographic interpretation happens here.

// IRK is an identity resolving key.
type IRK [16]byte

// CSRK is a connection signature resolving key.
type CSRK [16]byte

// LTK is a long term key.
type LTK [16]byte

// OOBTemporaryKey is the legacy pairing temporary key exchanged out of
// band.
type OOBTemporaryKey [16]byte

// OOBLESCValue is the secure connections out of band 128-bit random value.
type OOBLESCValue [16]byte

// OOBConfirm is the secure connections out of band confirmation value.
type OOBConfirm [16]byte

// EncryptionBlock is one 16-byte block of data to be encrypted.
type EncryptionBlock [16]byte

// PublicKeyCoord is one coordinate of a P-256 public key; two of them
// define the key.
type PublicKeyCoord [32]byte

// DHKey is a Diffie-Hellman key.
type DHKey [32]byte

// EDIV is the encryption diversifier identifying an LTK on a legacy
// pairing connection.
type EDIV [2]byte

// Rand is the random value identifying an LTK on a legacy pairing
// connection.
type Rand [8]byte

// IRKFromBytes builds an IRK from a 16-byte buffer.
func IRKFromBytes(b []byte) (IRK, error) {
	var k IRK
	err := copyExact(k[:], b, "irk")
	return k, err
}

// CSRKFromBytes builds a CSRK from a 16-byte buffer.
func CSRKFromBytes(b []byte) (CSRK, error) {
	var k CSRK
	err := copyExact(k[:], b, "csrk")
	return k, err
}

// LTKFromBytes builds an LTK from a 16-byte buffer.
func LTKFromBytes(b []byte) (LTK, error) {
	var k LTK
	err := copyExact(k[:], b, "ltk")
	return k, err
}

// OOBTemporaryKeyFromBytes builds an OOBTemporaryKey from a 16-byte buffer.
func OOBTemporaryKeyFromBytes(b []byte) (OOBTemporaryKey, error) {
	var k OOBTemporaryKey
	err := copyExact(k[:], b, "oob tk")
	return k, err
}

// OOBLESCValueFromBytes builds an OOBLESCValue from a 16-byte buffer.
func OOBLESCValueFromBytes(b []byte) (OOBLESCValue, error) {
	var v OOBLESCValue
	err := copyExact(v[:], b, "oob lesc value")
	return v, err
}

// OOBConfirmFromBytes builds an OOBConfirm from a 16-byte buffer.
func OOBConfirmFromBytes(b []byte) (OOBConfirm, error) {
	var c OOBConfirm
	err := copyExact(c[:], b, "oob confirm")
	return c, err
}

// EncryptionBlockFromBytes builds an EncryptionBlock from a 16-byte buffer.
func EncryptionBlockFromBytes(b []byte) (EncryptionBlock, error) {
	var e EncryptionBlock
	err := copyExact(e[:], b, "encryption block")
	return e, err
}

// PublicKeyCoordFromBytes builds a PublicKeyCoord from a 32-byte buffer.
func PublicKeyCoordFromBytes(b []byte) (PublicKeyCoord, error) {
	var c PublicKeyCoord
	err := copyExact(c[:], b, "public key coordinate")
	return c, err
}

// DHKeyFromBytes builds a DHKey from a 32-byte buffer.
func DHKeyFromBytes(b []byte) (DHKey, error) {
	var k DHKey
	err := copyExact(k[:], b, "dhkey")
	return k, err
}

// EDIVFromBytes builds an EDIV from a 2-byte buffer.
func EDIVFromBytes(b []byte) (EDIV, error) {
	var e EDIV
	err := copyExact(e[:], b, "ediv")
	return e, err
}

// RandFromBytes builds a Rand from an 8-byte buffer.
func RandFromBytes(b []byte) (Rand, error) {
	var r Rand
	err := copyExact(r[:], b, "rand")
	return r, err
}

// Bytes returns a mutable view of the key storage. The view aliases the
// receiver and must not outlive it.
func (k *IRK) Bytes() []byte             { return k[:] }
func (k *CSRK) Bytes() []byte            { return k[:] }
func (k *LTK) Bytes() []byte             { return k[:] }
func (k *OOBTemporaryKey) Bytes() []byte { return k[:] }
func (v *OOBLESCValue) Bytes() []byte    { return v[:] }
func (c *OOBConfirm) Bytes() []byte      { return c[:] }
func (e *EncryptionBlock) Bytes() []byte { return e[:] }
func (c *PublicKeyCoord) Bytes() []byte  { return c[:] }
func (k *DHKey) Bytes() []byte           { return k[:] }
func (e *EDIV) Bytes() []byte            { return e[:] }
func (r *Rand) Bytes() []byte            { return r[:] }

// IsZero reports whether the value is all zeroes.
func (k IRK) IsZero() bool             { return IsAllZeros(k[:]) }
func (k CSRK) IsZero() bool            { return IsAllZeros(k[:]) }
func (k LTK) IsZero() bool             { return IsAllZeros(k[:]) }
func (k OOBTemporaryKey) IsZero() bool { return IsAllZeros(k[:]) }
func (v OOBLESCValue) IsZero() bool    { return IsAllZeros(v[:]) }
func (c OOBConfirm) IsZero() bool      { return IsAllZeros(c[:]) }
func (e EncryptionBlock) IsZero() bool { return IsAllZeros(e[:]) }
func (c PublicKeyCoord) IsZero() bool  { return IsAllZeros(c[:]) }
func (k DHKey) IsZero() bool           { return IsAllZeros(k[:]) }
func (e EDIV) IsZero() bool            { return IsAllZeros(e[:]) }
func (r Rand) IsZero() bool            { return IsAllZeros(r[:]) }

func (k IRK) String() string             { return hex.EncodeToString(k[:]) }
func (k CSRK) String() string            { return hex.EncodeToString(k[:]) }
func (k LTK) String() string             { return hex.EncodeToString(k[:]) }
func (k OOBTemporaryKey) String() string { return hex.EncodeToString(k[:]) }
func (v OOBLESCValue) String() string    { return hex.EncodeToString(v[:]) }
func (c OOBConfirm) String() string      { return hex.EncodeToString(c[:]) }
func (e EncryptionBlock) String() string { return hex.EncodeToString(e[:]) }
func (c PublicKeyCoord) String() string  { return hex.EncodeToString(c[:]) }
func (k DHKey) String() string           { return hex.EncodeToString(k[:]) }
func (e EDIV) String() string            { return hex.EncodeToString(e[:]) }
func (r Rand) String() string            { return hex.EncodeToString(r[:]) }
