// Package archive stores validated frames in a compact, checksummed container.
//
// An archive is built once and read many times, which suits a session message store
// that seals a day of traffic, or a test fixture of captured frames:
//
//	w, err := archive.NewWriter(archive.WithCompression(format.CompressionZstd))
//	for _, frame := range frames {
//	    if err := w.Add(frame); err != nil { ... }
//	}
//	data, err := w.Finish()
//
//	r, err := archive.Open(data)
//	frame, ok := r.BySeqNum(42)
//	msgs, err := r.Messages(codec)
//
// The layout is described in package section. Every frame is validated with
// wire.Codec.DecodeRaw on the way in, indexed by MsgSeqNum and MsgType, and the
// concatenated frames are compressed as one payload. Open verifies the header, the
// index and the xxHash64 of the decompressed payload before returning a Reader.
//
// A Writer is not safe for concurrent use. A Reader is immutable and safe for
// concurrent use.
package archive
