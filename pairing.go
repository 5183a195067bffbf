package blecore

import "github.com/pkg/errors"

// PairingFailure is the reason carried by an SMP Pairing Failed PDU
// [Vol 3, Part H, 3.5.5].
type PairingFailure uint8

const (
	PairingPasskeyEntryFailed         PairingFailure = 0x01
	PairingOOBNotAvailable            PairingFailure = 0x02
	PairingAuthenticationRequirements PairingFailure = 0x03
	PairingConfirmValueFailed         PairingFailure = 0x04
	PairingNotSupported               PairingFailure = 0x05
	PairingEncryptionKeySize          PairingFailure = 0x06
	PairingCommandNotSupported        PairingFailure = 0x07
	PairingUnspecifiedReason          PairingFailure = 0x08
	PairingRepeatedAttempts           PairingFailure = 0x09
	PairingInvalidParameters          PairingFailure = 0x0A
	PairingDHKeyCheckFailed           PairingFailure = 0x0B
	PairingNumericComparisonFailed    PairingFailure = 0x0C
	PairingBREDRPairingInProgress     PairingFailure = 0x0D
	// PairingCrossTransportKeyNotAllowed reports that cross-transport key
	// derivation or generation is not allowed.
	PairingCrossTransportKeyNotAllowed PairingFailure = 0x0E
)

// PairingFailureFromByte converts a raw reason byte into a PairingFailure,
// rejecting values outside the declared set.
func PairingFailureFromByte(b byte) (PairingFailure, error) {
	f := PairingFailure(b)
	if !f.Valid() {
		return 0, errors.Errorf("invalid pairing failure reason 0x%02X", b)
	}
	return f, nil
}

// Valid reports whether the value is one of the declared reasons.
func (f PairingFailure) Valid() bool {
	return f >= PairingPasskeyEntryFailed && f <= PairingCrossTransportKeyNotAllowed
}

func (f PairingFailure) String() string {
	switch f {
	case PairingPasskeyEntryFailed:
		return "passkey entry failed"
	case PairingOOBNotAvailable:
		return "oob not available"
	case PairingAuthenticationRequirements:
		return "authentication requirements"
	case PairingConfirmValueFailed:
		return "confirm value failed"
	case PairingNotSupported:
		return "pairing not supported"
	case PairingEncryptionKeySize:
		return "encryption key size"
	case PairingCommandNotSupported:
		return "command not supported"
	case PairingUnspecifiedReason:
		return "unspecified reason"
	case PairingRepeatedAttempts:
		return "repeated attempts"
	case PairingInvalidParameters:
		return "invalid parameters"
	case PairingDHKeyCheckFailed:
		return "dhkey check failed"
	case PairingNumericComparisonFailed:
		return "numeric comparison failed"
	case PairingBREDRPairingInProgress:
		return "br/edr pairing in progress"
	case PairingCrossTransportKeyNotAllowed:
		return "cross-transport key derivation not allowed"
	default:
		return "unknown"
	}
}

// IOCapability describes the IO capability of a device, exchanged during
// Pairing Feature exchange.
type IOCapability uint8

const (
	IOCapDisplayOnly     IOCapability = 0x00
	IOCapDisplayYesNo    IOCapability = 0x01
	IOCapKeyboardOnly    IOCapability = 0x02
	IOCapNoInputNoOutput IOCapability = 0x03
	IOCapKeyboardDisplay IOCapability = 0x04
)

// IOCapabilityFromByte converts a raw byte into an IOCapability, rejecting
// values outside the declared set.
func IOCapabilityFromByte(b byte) (IOCapability, error) {
	c := IOCapability(b)
	if !c.Valid() {
		return 0, errors.Errorf("invalid io capability 0x%02X", b)
	}
	return c, nil
}

// Valid reports whether the value is one of the declared capabilities.
func (c IOCapability) Valid() bool {
	return c <= IOCapKeyboardDisplay
}

func (c IOCapability) String() string {
	switch c {
	case IOCapDisplayOnly:
		return "display only"
	case IOCapDisplayYesNo:
		return "display yes/no"
	case IOCapKeyboardOnly:
		return "keyboard only"
	case IOCapNoInputNoOutput:
		return "no input no output"
	case IOCapKeyboardDisplay:
		return "keyboard display"
	default:
		return "unknown"
	}
}
