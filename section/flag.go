package section

import "github.com/arloliu/spz/errs"

// Flag wraps the header's single flags byte: bit 0 marks antialiased
// splatting, bits 1-7 are reserved and must be zero.
type Flag uint8

// NewFlag creates a Flag with antialiasing set according to antialiased.
func NewFlag(antialiased bool) Flag {
	var f Flag
	if antialiased {
		f |= FlagAntialiased
	}

	return f
}

// HasAntialiased reports whether the antialiased bit is set.
func (f Flag) HasAntialiased() bool {
	return f&FlagAntialiased != 0
}

// WithAntialiased returns f with the antialiased bit set or cleared.
func (f Flag) WithAntialiased(enabled bool) Flag {
	if enabled {
		return f | FlagAntialiased
	}

	return f &^ FlagAntialiased
}

// Validate reports ErrInvalidHeaderField if any reserved bit is set.
func (f Flag) Validate() error {
	if f&flagReservedMask != 0 {
		return errs.ErrInvalidHeaderField
	}

	return nil
}
