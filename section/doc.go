// Package section defines the binary layout of a frame archive: the fixed header, its
// packed flag word, and the fixed-size index entries.
//
// # Archive Structure
//
//	┌──────────────────────────────────────────────┐
//	│ Header (32 bytes)                            │
//	├──────────────────────────────────────────────┤
//	│ Index (N × 16 bytes)                         │
//	├──────────────────────────────────────────────┤
//	│ Payload (concatenated frames, compressed)    │
//	└──────────────────────────────────────────────┘
//
// # Header Format
//
//	Bytes  | Field         | Type   | Description
//	-------|---------------|--------|--------------------------------------
//	0-1    | Options       | uint16 | magic (bits 4-15), endianness (bit 1)
//	2      | Version       | uint8  | layout version, currently 1
//	3      | Compression   | uint8  | format.CompressionType
//	4-7    | FrameCount    | uint32 | number of frames
//	8-11   | PayloadOffset | uint32 | 32 + 16 × FrameCount
//	12-15  | PayloadSize   | uint32 | stored payload size
//	16-19  | RawSize       | uint32 | uncompressed payload size
//	20-23  | Reserved      | -      | zero
//	24-31  | Checksum      | uint64 | xxHash64 of the uncompressed payload
//
// Options is always little-endian; every other numeric field uses the byte order the
// flag selects.
//
// # Index Entry Format
//
//	Bytes  | Field   | Type   | Description
//	-------|---------|--------|----------------------------------------
//	0-3    | SeqNum  | uint32 | MsgSeqNum, zero when absent
//	4-7    | Offset  | uint32 | frame offset in the uncompressed payload
//	8-11   | Length  | uint32 | frame size
//	12-15  | TypeID  | uint32 | low 32 bits of xxHash64(MsgType)
package section
