// Package endian selects the byte order used for the numeric fields of an archive.
//
// Archives are little-endian unless the writer asks otherwise; the choice is recorded
// in the header flag so readers pick the matching engine:
//
//	engine := endian.For(hdr.Flag.IsBigEndian())
//	n := engine.Uint32(data[4:8])
//
// The returned engines are the immutable binary.LittleEndian and binary.BigEndian values
// and are safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines binary.ByteOrder and binary.AppendByteOrder so one value can
// both read fixed-size fields and append them to a growing buffer.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// For returns the big-endian engine when bigEndian is set, the little-endian one
// otherwise.
func For(bigEndian bool) EndianEngine {
	if bigEndian {
		return GetBigEndianEngine()
	}

	return GetLittleEndianEngine()
}
