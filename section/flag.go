package section

import (
	"fmt"

	"github.com/aemr3/WTFIX/errs"
	"github.com/aemr3/WTFIX/format"
)

// Flag is the packed first word of the archive header.
type Flag struct {
	// Options holds the magic number in bits 4-15 and the endianness in bit 1.
	Options uint16
	// Version is the layout version.
	Version uint8
	// Compression is the payload compression, a format.CompressionType.
	Compression uint8
}

// NewFlag returns a little-endian v1 flag with the given compression.
func NewFlag(compression format.CompressionType) Flag {
	return Flag{
		Options:     MagicArchiveV1Opt,
		Version:     Version,
		Compression: uint8(compression),
	}
}

// IsLittleEndian reports whether numeric fields are little-endian.
func (f Flag) IsLittleEndian() bool {
	return f.Options&EndiannessMask == 0
}

// IsBigEndian reports whether numeric fields are big-endian.
func (f Flag) IsBigEndian() bool {
	return f.Options&EndiannessMask != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian sets big-endian byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetMagicNumber returns the magic number bits.
func (f Flag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// GetCompression returns the payload compression.
func (f Flag) GetCompression() format.CompressionType {
	return format.CompressionType(f.Compression)
}

// Validate checks the magic number, reserved bits, version and compression.
func (f Flag) Validate() error {
	if f.GetMagicNumber() != MagicArchiveV1Opt {
		return fmt.Errorf("%w: bad magic %#04x", errs.ErrInvalidArchiveHeader, f.GetMagicNumber())
	}
	if f.Options&ReservedBitsMask != 0 {
		return fmt.Errorf("%w: reserved bits set", errs.ErrInvalidArchiveHeader)
	}
	if f.Version != Version {
		return fmt.Errorf("%w: unsupported version %d", errs.ErrInvalidArchiveHeader, f.Version)
	}
	if !f.GetCompression().Valid() {
		return fmt.Errorf("%w: %w: %d", errs.ErrInvalidArchiveHeader, errs.ErrInvalidCompression, f.Compression)
	}

	return nil
}
