package keystore

import (
	"encoding/hex"
	"os"
	"reflect"
	"testing"

	"github.com/blekit/blecore"
)

func testEntry(t *testing.T, addr string) Entry {
	t.Helper()

	a, err := blecore.ParseAddress(addr)
	if err != nil {
		t.Fatalf("expected nil error but got %s", err)
	}

	rawLTK, _ := hex.DecodeString("45e39d7a7bb5f81e979b516757ecb2dc")
	ltk, _ := blecore.LTKFromBytes(rawLTK)

	rawIRK, _ := hex.DecodeString("e6d5505348fa4188acfb209860fd9524")
	irk, _ := blecore.IRKFromBytes(rawIRK)

	ediv, _ := blecore.EDIVFromBytes([]byte{0x12, 0x34})
	rnd, _ := blecore.RandFromBytes([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08})

	return Entry{
		Address:     a,
		AddressType: blecore.PeerAddressRandomStaticIdentity,
		LongTermKey: ltk,
		EDiv:        ediv,
		Rand:        rnd,
		IdentityKey: irk,
		Legacy:      true,
	}
}

func TestStoreFindRoundTrip(t *testing.T) {
	defer os.Remove("./test.bonds.json")
	ks := New("./test.bonds.json")

	e := testEntry(t, "98:d3:45:85:47:d8")
	if err := ks.Save(e); err != nil {
		t.Fatalf("expected nil error but got %s", err)
	}

	loaded, err := ks.Find(e.Address)
	if err != nil {
		t.Fatalf("expected to find bond but did not: %s", err)
	}

	if !reflect.DeepEqual(e, loaded) {
		t.Fatalf("stored and loaded bonds are not equal:\n%+v\n%+v", e, loaded)
	}
}

func TestStoreRejectsInvalidEntries(t *testing.T) {
	defer os.Remove("./test.bonds.json")
	ks := New("./test.bonds.json")

	e := testEntry(t, "98:d3:45:85:47:d8")
	e.Address = blecore.Address{}
	if err := ks.Save(e); err == nil {
		t.Fatal("expected error for zero address")
	}

	e = testEntry(t, "98:d3:45:85:47:d8")
	e.LongTermKey = blecore.LTK{}
	if err := ks.Save(e); err == nil {
		t.Fatal("expected error for zero long term key")
	}
}

func TestStoreExistsAndDelete(t *testing.T) {
	defer os.Remove("./test.bonds.json")
	ks := New("./test.bonds.json")

	e := testEntry(t, "12:34:56:78:90:ab")
	if ks.Exists(e.Address) {
		t.Fatal("expected no bond before save")
	}

	if err := ks.Save(e); err != nil {
		t.Fatalf("expected nil error but got %s", err)
	}
	if !ks.Exists(e.Address) {
		t.Fatal("expected bond after save")
	}

	if err := ks.Delete(e.Address); err != nil {
		t.Fatalf("expected nil error but got %s", err)
	}
	if ks.Exists(e.Address) {
		t.Fatal("expected no bond after delete")
	}
	if _, err := ks.Find(e.Address); err == nil {
		t.Fatal("expected error finding a deleted bond")
	}
}

func TestStoreAllAndClear(t *testing.T) {
	defer os.Remove("./test.bonds.json")
	ks := New("./test.bonds.json")

	first := testEntry(t, "98:d3:45:85:47:d8")
	second := testEntry(t, "12:34:56:78:90:ab")
	second.Legacy = false

	if err := ks.Save(first); err != nil {
		t.Fatalf("expected nil error but got %s", err)
	}
	if err := ks.Save(second); err != nil {
		t.Fatalf("expected nil error but got %s", err)
	}

	all, err := ks.All()
	if err != nil {
		t.Fatalf("expected nil error but got %s", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 bonds but got %d", len(all))
	}

	if err := ks.Clear(); err != nil {
		t.Fatalf("expected nil error but got %s", err)
	}

	all, err = ks.All()
	if err != nil {
		t.Fatalf("expected nil error but got %s", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected no bonds after clear but got %d", len(all))
	}
}

func TestStoreOverwrite(t *testing.T) {
	defer os.Remove("./test.bonds.json")
	ks := New("./test.bonds.json")

	e := testEntry(t, "98:d3:45:85:47:d8")
	if err := ks.Save(e); err != nil {
		t.Fatalf("expected nil error but got %s", err)
	}

	raw, _ := hex.DecodeString("00112233445566778899aabbccddeeff")
	e.LongTermKey, _ = blecore.LTKFromBytes(raw)
	if err := ks.Save(e); err != nil {
		t.Fatalf("expected nil error but got %s", err)
	}

	loaded, err := ks.Find(e.Address)
	if err != nil {
		t.Fatalf("expected nil error but got %s", err)
	}
	if loaded.LongTermKey != e.LongTermKey {
		t.Fatal("expected the saved key to replace the previous one")
	}
}
