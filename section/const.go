// Package section implements the SPZ file header: the fixed 16-byte
// structure at the start of every packed splat, and the bit-packed flag
// byte within it.
package section

// HeaderSize is the fixed, wire-exact size of an SPZ header in bytes.
const HeaderSize = 16

// Magic is the literal "NGSP" byte sequence every valid SPZ file starts with.
var Magic = [4]byte{'N', 'G', 'S', 'P'}

// Supported header versions. Version 1 (float16 positions) is recognized
// only so decode can reject it with ErrUnsupportedVersion instead of a
// generic parse failure.
const (
	Version1 uint32 = 1
	Version2 uint32 = 2
	Version3 uint32 = 3
)

// MaxSHDegree is the highest spherical-harmonic degree the format supports.
const MaxSHDegree = 3

// Flag bit layout within the header's single flags byte.
const (
	FlagAntialiased = 0x01 // bit 0
	flagReservedMask = 0xFE // bits 1-7 must be zero
)
