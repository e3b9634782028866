// Package format defines the small enumerations shared across WTFIX packages: the
// storage strategy behind a FieldSet or message, and the archive compression codec.
package format

import (
	"fmt"
	"strings"

	"github.com/aemr3/WTFIX/errs"
)

type (
	// Storage identifies how a FieldSet keeps its entries.
	Storage uint8
	// CompressionType identifies an archive payload codec.
	CompressionType uint8
)

const (
	StorageOrdered Storage = 0x1 // StorageOrdered is map-backed, insertion ordered, unique tags.
	StorageList    Storage = 0x2 // StorageList is slice-backed and tolerates duplicate tags.
	StorageRaw     Storage = 0x3 // StorageRaw keeps an undecoded body next to its header fields.

	CompressionNone CompressionType = 0x1 // CompressionNone stores the payload as is.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (s Storage) String() string {
	switch s {
	case StorageOrdered:
		return "Ordered"
	case StorageList:
		return "List"
	case StorageRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// AllowsDuplicates reports whether the storage tolerates repeated tags.
func (s Storage) AllowsDuplicates() bool {
	return s == StorageList
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Valid reports whether c is a known compression type.
func (c CompressionType) Valid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}

// ParseCompression parses a compression name as used in configuration files.
// Matching is case insensitive and the empty string means CompressionNone.
func ParseCompression(name string) (CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidCompression, name)
	}
}
