package blecore

import "fmt"

// ConnectionHandle is an opaque reference to a connection. The concrete
// value is platform dependent; the stack only ever compares handles for
// equality and never interprets them arithmetically.
type ConnectionHandle uintptr

// AttributeHandle is a reference to an attribute in a GATT database.
type AttributeHandle uint16

// AttributeHandleRange is an inclusive range of GATT attribute handles.
// The ATT protocol requires Begin <= End; that is the constructing layer's
// contract to uphold, no ordering is enforced here.
type AttributeHandleRange struct {
	Begin AttributeHandle
	End   AttributeHandle
}

// NewAttributeHandleRange builds a range from its first and last handle.
func NewAttributeHandleRange(begin, end AttributeHandle) AttributeHandleRange {
	return AttributeHandleRange{Begin: begin, End: end}
}

func (r AttributeHandleRange) String() string {
	return fmt.Sprintf("[0x%04X..0x%04X]", uint16(r.Begin), uint16(r.End))
}

// SignCount is the counter for signed data writes done by a GATT client.
type SignCount uint32
