package blecore

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func TestKeyZeroValues(t *testing.T) {
	var ltk LTK
	var irk IRK
	var dh DHKey
	var ediv EDIV
	var rnd Rand

	if !ltk.IsZero() || !irk.IsZero() || !dh.IsZero() || !ediv.IsZero() || !rnd.IsZero() {
		t.Fatal("expected zero values to report IsZero")
	}
}

func TestLTKFromBytes(t *testing.T) {
	raw, _ := hex.DecodeString("45e39d7a7bb5f81e979b516757ecb2dc")

	k, err := LTKFromBytes(raw)
	if err != nil {
		t.Fatalf("expected nil error but got %s", err)
	}
	if k.String() != "45e39d7a7bb5f81e979b516757ecb2dc" {
		t.Fatalf("expected round trip but got %s", k)
	}

	k2, _ := LTKFromBytes(raw)
	if k != k2 {
		t.Fatal("expected keys built from the same bytes to be equal")
	}

	if _, err := LTKFromBytes(raw[:15]); err == nil {
		t.Fatal("expected error for short buffer")
	}
	if _, err := LTKFromBytes(append(raw, 0x00)); err == nil {
		t.Fatal("expected error for long buffer")
	}
}

func TestKeyBytesView(t *testing.T) {
	raw, _ := hex.DecodeString("e6d5505348fa4188acfb209860fd9524")
	k, _ := IRKFromBytes(raw)

	v := k.Bytes()
	if !bytes.Equal(v, raw) {
		t.Fatalf("expected view %x but got %x", raw, v)
	}

	// the view aliases the key storage
	v[0] ^= 0xFF
	if k[0] == raw[0] {
		t.Fatal("expected mutation through the view to reach the key")
	}

	SetAllZeros(k.Bytes())
	if !k.IsZero() {
		t.Fatal("expected key to be zero after scrubbing the view")
	}
}

func TestEDIVAndRandSizes(t *testing.T) {
	if _, err := EDIVFromBytes([]byte{0x12, 0x34}); err != nil {
		t.Fatalf("expected nil error but got %s", err)
	}
	if _, err := EDIVFromBytes([]byte{0x12}); err == nil {
		t.Fatal("expected error for 1-byte ediv")
	}

	if _, err := RandFromBytes(make([]byte, 8)); err != nil {
		t.Fatalf("expected nil error but got %s", err)
	}
	if _, err := RandFromBytes(make([]byte, 16)); err == nil {
		t.Fatal("expected error for 16-byte rand")
	}
}

func TestIsAllZeros(t *testing.T) {
	if !IsAllZeros(nil) {
		t.Fatal("expected nil view to be all zeros")
	}
	if !IsAllZeros(make([]byte, 32)) {
		t.Fatal("expected fresh buffer to be all zeros")
	}

	b := make([]byte, 32)
	b[31] = 0x01
	if IsAllZeros(b) {
		t.Fatal("expected non-zero buffer to be detected")
	}

	SetAllZeros(b)
	if !IsAllZeros(b) {
		t.Fatal("expected buffer to be zero after SetAllZeros")
	}
}
