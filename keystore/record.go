package keystore

import (
	"encoding/hex"

	"github.com/pkg/errors"

	"github.com/blekit/blecore"
)

// record is the on-disk shape of an Entry. Key material is hex encoded so
// the bond file stays diffable and editable in the field.
type record struct {
	Address               string `json:"address"`
	AddressType           byte   `json:"addressType"`
	LongTermKey           string `json:"longTermKey"`
	EncryptionDiversifier string `json:"encryptionDiversifier"`
	RandomValue           string `json:"randomValue"`
	IdentityResolvingKey  string `json:"identityResolvingKey,omitempty"`
	SigningKey            string `json:"signingKey,omitempty"`
	Legacy                bool   `json:"legacy"`
}

func newRecord(e Entry) record {
	rec := record{
		Address:               e.Address.String(),
		AddressType:           byte(e.AddressType),
		LongTermKey:           e.LongTermKey.String(),
		EncryptionDiversifier: e.EDiv.String(),
		RandomValue:           e.Rand.String(),
		Legacy:                e.Legacy,
	}
	if !e.IdentityKey.IsZero() {
		rec.IdentityResolvingKey = e.IdentityKey.String()
	}
	if !e.SigningKey.IsZero() {
		rec.SigningKey = e.SigningKey.String()
	}
	return rec
}

func (rec record) entry() (Entry, error) {
	var e Entry
	var err error

	e.Address, err = blecore.ParseAddress(rec.Address)
	if err != nil {
		return Entry{}, err
	}

	e.AddressType, err = blecore.PeerAddressTypeFromByte(rec.AddressType)
	if err != nil {
		return Entry{}, errors.Wrapf(err, "bond for %s", rec.Address)
	}

	e.LongTermKey, err = decodeLTK(rec.LongTermKey)
	if err != nil {
		return Entry{}, errors.Wrapf(err, "bond for %s", rec.Address)
	}

	e.EDiv, err = decodeEDiv(rec.EncryptionDiversifier)
	if err != nil {
		return Entry{}, errors.Wrapf(err, "bond for %s", rec.Address)
	}

	e.Rand, err = decodeRand(rec.RandomValue)
	if err != nil {
		return Entry{}, errors.Wrapf(err, "bond for %s", rec.Address)
	}

	if rec.IdentityResolvingKey != "" {
		e.IdentityKey, err = decodeIRK(rec.IdentityResolvingKey)
		if err != nil {
			return Entry{}, errors.Wrapf(err, "bond for %s", rec.Address)
		}
	}

	if rec.SigningKey != "" {
		e.SigningKey, err = decodeCSRK(rec.SigningKey)
		if err != nil {
			return Entry{}, errors.Wrapf(err, "bond for %s", rec.Address)
		}
	}

	e.Legacy = rec.Legacy
	return e, nil
}

func decodeLTK(s string) (blecore.LTK, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return blecore.LTK{}, errors.Wrap(err, "long term key")
	}
	return blecore.LTKFromBytes(b)
}

func decodeEDiv(s string) (blecore.EDIV, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return blecore.EDIV{}, errors.Wrap(err, "encryption diversifier")
	}
	return blecore.EDIVFromBytes(b)
}

func decodeRand(s string) (blecore.Rand, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return blecore.Rand{}, errors.Wrap(err, "random value")
	}
	return blecore.RandFromBytes(b)
}

func decodeIRK(s string) (blecore.IRK, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return blecore.IRK{}, errors.Wrap(err, "identity resolving key")
	}
	return blecore.IRKFromBytes(b)
}

func decodeCSRK(s string) (blecore.CSRK, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return blecore.CSRK{}, errors.Wrap(err, "signing key")
	}
	return blecore.CSRKFromBytes(b)
}
