package section

import (
	"github.com/arloliu/spz/endian"
	"github.com/arloliu/spz/errs"
)

// Header is the fixed 16-byte structure at the start of every packed SPZ
// payload (after gzip decompression), laid out little-endian on the wire:
//
//	offset 0   magic            4 bytes, "NGSP"
//	offset 4   version          4 bytes
//	offset 8   num_points       4 bytes
//	offset 12  sh_degree        1 byte
//	offset 13  fractional_bits  1 byte
//	offset 14  flags            1 byte
//	offset 15  reserved         1 byte
type Header struct {
	Magic          [4]byte
	Version        uint32
	NumPoints      uint32
	ShDegree       uint8
	FractionalBits uint8
	Flags          Flag
	Reserved       uint8
}

// NewHeader builds a Header with Magic already set to the SPZ signature.
func NewHeader(version, numPoints uint32, shDegree, fractionalBits uint8, antialiased bool) Header {
	return Header{
		Magic:          Magic,
		Version:        version,
		NumPoints:      numPoints,
		ShDegree:       shDegree,
		FractionalBits: fractionalBits,
		Flags:          NewFlag(antialiased),
	}
}

// Parse decodes and validates a 16-byte header. This is the default,
// checked entry point used by every decode path in the codec.
func (h *Header) Parse(data []byte) error {
	if err := h.ParseUnchecked(data); err != nil {
		return err
	}

	return h.Validate()
}

// ParseUnchecked decodes a 16-byte header without validating field domains,
// for tooling that wants to inspect a malformed or foreign file. The codec
// itself only reaches it through Parse, which validates the result.
func (h *Header) ParseUnchecked(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	engine := endian.GetLittleEndianEngine()

	copy(h.Magic[:], data[0:4])
	h.Version = engine.Uint32(data[4:8])
	h.NumPoints = engine.Uint32(data[8:12])
	h.ShDegree = data[12]
	h.FractionalBits = data[13]
	h.Flags = Flag(data[14])
	h.Reserved = data[15]

	return nil
}

// Validate checks every field domain: magic, version, sh_degree range,
// flag reserved bits, and the reserved byte.
func (h *Header) Validate() error {
	if h.Magic != Magic {
		return errs.ErrBadMagic
	}

	if h.Version != Version2 && h.Version != Version3 {
		return errs.ErrUnsupportedVersion
	}

	if h.ShDegree > MaxSHDegree {
		return errs.ErrInvalidHeaderField
	}

	if err := h.Flags.Validate(); err != nil {
		return err
	}

	if h.Reserved != 0 {
		return errs.ErrInvalidHeaderField
	}

	return nil
}

// Bytes serializes the header to its 16-byte little-endian wire form.
// Reserved is always written as zero.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	engine := endian.GetLittleEndianEngine()

	copy(b[0:4], h.Magic[:])
	engine.PutUint32(b[4:8], h.Version)
	engine.PutUint32(b[8:12], h.NumPoints)
	b[12] = h.ShDegree
	b[13] = h.FractionalBits
	b[14] = byte(h.Flags)
	b[15] = 0

	return b
}

// ParseHeader parses and validates a Header from a byte slice of at least
// HeaderSize bytes, ignoring any trailing bytes.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrInvalidHeaderSize
	}

	var h Header
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
