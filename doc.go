// Package blecore defines the primitive value types shared across a BLE
// host stack: connection and attribute handles, fixed-size security key
// material, device addresses, the pairing passkey, and the closed
// enumerations used by GAP, GATT and the Security Manager.
//
// Every enumeration is a distinct named type so that values from unrelated
// domains cannot be mixed up by accident; a pairing failure code will not
// compile where an IO capability is expected. Raw wire bytes enter the
// vocabulary only through the explicit XxxFromByte and XxxFromBytes
// constructors, which validate their input.
//
// All types are plain values. Copying is cheap, equality is ==, and the
// zero value of every buffer type is the all-zero buffer.
package blecore
