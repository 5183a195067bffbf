package blecore

import "testing"

func TestAttributeHandleRangeEquality(t *testing.T) {
	if NewAttributeHandleRange(1, 5) != NewAttributeHandleRange(1, 5) {
		t.Fatal("expected identical ranges to be equal")
	}
	if NewAttributeHandleRange(1, 5) == NewAttributeHandleRange(1, 6) {
		t.Fatal("expected ranges with different ends to differ")
	}
	if NewAttributeHandleRange(2, 5) == NewAttributeHandleRange(1, 5) {
		t.Fatal("expected ranges with different beginnings to differ")
	}
}

func TestAttributeHandleRangeString(t *testing.T) {
	r := NewAttributeHandleRange(0x0001, 0xFFFF)
	if r.String() != "[0x0001..0xFFFF]" {
		t.Fatalf("expected [0x0001..0xFFFF] but got %s", r)
	}
}

func TestConnectionHandleEquality(t *testing.T) {
	a := ConnectionHandle(0x40)
	b := ConnectionHandle(0x40)
	c := ConnectionHandle(0x41)

	if a != b {
		t.Fatal("expected identical handles to be equal")
	}
	if a == c {
		t.Fatal("expected distinct handles to differ")
	}
}
