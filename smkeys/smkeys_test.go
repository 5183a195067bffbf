package smkeys

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func TestGenerateAndCoordRoundTrip(t *testing.T) {
	kp, err := Generate()
	if err != nil {
		t.Fatalf("expected nil error but got %s", err)
	}

	x, y, err := kp.PublicCoords()
	if err != nil {
		t.Fatalf("expected nil error but got %s", err)
	}
	if x.IsZero() || y.IsZero() {
		t.Fatal("expected non-zero public key coordinates")
	}

	pub, err := UnmarshalPublicCoords(x, y)
	if err != nil {
		t.Fatalf("expected nil error but got %s", err)
	}

	x2, y2, err := PublicCoords(pub)
	if err != nil {
		t.Fatalf("expected nil error but got %s", err)
	}
	if x != x2 || y != y2 {
		t.Fatal("expected coordinates to survive the round trip")
	}
}

func TestUnmarshalCapturedKey(t *testing.T) {
	// public key captured from a real pairing exchange
	hs := "c697669493e497655afb7be56e319d53d97a7d5e4b043cfb23c1978ea9433ea6" +
		"2a56c8fda27d8ed835b5af7a31574ad71aa06ee745bc85e36bfde05b66a28d7d"
	hb, err := hex.DecodeString(hs)
	if err != nil {
		t.Fatalf("expected nil error but got %s", err)
	}

	x, y, err := PublicCoordsFromWire(hb)
	if err != nil {
		t.Fatalf("expected nil error but got %s", err)
	}

	if _, err := UnmarshalPublicCoords(x, y); err != nil {
		t.Fatalf("expected a valid point but got %s", err)
	}

	if !bytes.Equal(WireBytes(x, y), hb) {
		t.Fatal("expected wire bytes to round trip")
	}
}

func TestPublicCoordsFromWireRejects(t *testing.T) {
	if _, _, err := PublicCoordsFromWire(make([]byte, 63)); err == nil {
		t.Fatal("expected error for short buffer")
	}
	if _, _, err := PublicCoordsFromWire(make([]byte, 65)); err == nil {
		t.Fatal("expected error for long buffer")
	}
}

func TestUnmarshalRejectsOffCurvePoint(t *testing.T) {
	var b [64]byte
	for i := range b {
		b[i] = 0xAB
	}

	x, y, err := PublicCoordsFromWire(b[:])
	if err != nil {
		t.Fatalf("expected nil error but got %s", err)
	}

	if _, err := UnmarshalPublicCoords(x, y); err == nil {
		t.Fatal("expected error for a point off the curve")
	}
}
