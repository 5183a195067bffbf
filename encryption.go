package blecore

import "github.com/pkg/errors"

// LinkEncryption describes the encryption state of a link.
type LinkEncryption uint8

const (
	// LinkNotEncrypted means the link is not secured.
	LinkNotEncrypted LinkEncryption = 0x00
	// LinkEncryptionInProgress means link security is being established.
	LinkEncryptionInProgress LinkEncryption = 0x01
	// LinkEncrypted means the link is secure.
	LinkEncrypted LinkEncryption = 0x02
	// LinkEncryptedWithMITM means the link is secure and authenticated.
	LinkEncryptedWithMITM LinkEncryption = 0x03
	// LinkEncryptedWithSCAndMITM means the link is secure and authenticated
	// with a secure connections key.
	LinkEncryptedWithSCAndMITM LinkEncryption = 0x04
)

// LinkEncryptionFromByte converts a raw byte into a LinkEncryption,
// rejecting values outside the declared set.
func LinkEncryptionFromByte(b byte) (LinkEncryption, error) {
	e := LinkEncryption(b)
	if !e.Valid() {
		return 0, errors.Errorf("invalid link encryption state 0x%02X", b)
	}
	return e, nil
}

// Valid reports whether the value is one of the declared states.
func (e LinkEncryption) Valid() bool {
	return e <= LinkEncryptedWithSCAndMITM
}

func (e LinkEncryption) String() string {
	switch e {
	case LinkNotEncrypted:
		return "not encrypted"
	case LinkEncryptionInProgress:
		return "encryption in progress"
	case LinkEncrypted:
		return "encrypted"
	case LinkEncryptedWithMITM:
		return "encrypted with mitm"
	case LinkEncryptedWithSCAndMITM:
		return "encrypted with sc and mitm"
	default:
		return "unknown"
	}
}

// AttSecurityRequirementBits is the number of bits required to store an
// AttSecurityRequirement, for callers packing it into a bitfield.
const AttSecurityRequirementBits = 2

// AttSecurityRequirement is the security requirement attached to an
// attribute operation.
type AttSecurityRequirement uint8

const (
	// AttSecurityNone requires no authentication, encryption or signing.
	// Security mode 1 level 1. Not applicable to signed operations.
	AttSecurityNone AttSecurityRequirement = 0x00
	// AttSecurityUnauthenticated requires security without peer
	// authentication, achieved by either signing or link encryption.
	AttSecurityUnauthenticated AttSecurityRequirement = 0x01
	// AttSecurityAuthenticated requires security with an authenticated
	// peer, achieved by either signing or link encryption.
	AttSecurityAuthenticated AttSecurityRequirement = 0x02
	// AttSecuritySCAuthenticated requires link encryption with a peer
	// authenticated through secure connections pairing. Not applicable to
	// signed operations.
	AttSecuritySCAuthenticated AttSecurityRequirement = 0x03
)

// AttSecurityRequirementFromByte converts a raw byte into an
// AttSecurityRequirement, rejecting values outside the declared set.
func AttSecurityRequirementFromByte(b byte) (AttSecurityRequirement, error) {
	r := AttSecurityRequirement(b)
	if !r.Valid() {
		return 0, errors.Errorf("invalid att security requirement 0x%02X", b)
	}
	return r, nil
}

// Valid reports whether the value is one of the declared requirements.
func (r AttSecurityRequirement) Valid() bool {
	return r <= AttSecuritySCAuthenticated
}

func (r AttSecurityRequirement) String() string {
	switch r {
	case AttSecurityNone:
		return "none"
	case AttSecurityUnauthenticated:
		return "unauthenticated"
	case AttSecurityAuthenticated:
		return "authenticated"
	case AttSecuritySCAuthenticated:
		return "sc authenticated"
	default:
		return "unknown"
	}
}
