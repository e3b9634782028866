// Package pool provides reusable byte buffers for frame rendering and archive building.
package pool

import (
	"io"
	"sync"
)

const (
	FrameBufferDefaultSize     = 512             // covers most session and order messages
	FrameBufferMaxThreshold    = 1024 * 64       // 64KiB
	ArchiveBufferDefaultSize   = 1024 * 64       // 64KiB
	ArchiveBufferMaxThreshold  = 1024 * 1024 * 8 // 8MiB
	archiveGrowThresholdFactor = 4
)

// ByteBuffer is an append-only byte slice wrapper that can be pooled.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a ByteBuffer with the given initial capacity.
func NewByteBuffer(capacity int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, capacity)}
}

// Bytes returns the underlying byte slice. It is only valid until the buffer is reused.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer, keeping its capacity.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the number of buffered bytes.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the buffer capacity.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Grow ensures room for n more bytes without reallocating.
//
// Small buffers grow by at least FrameBufferDefaultSize, larger ones by a quarter of
// their capacity.
func (bb *ByteBuffer) Grow(n int) {
	if cap(bb.B)-len(bb.B) >= n {
		return
	}

	growBy := FrameBufferDefaultSize
	if cap(bb.B) > archiveGrowThresholdFactor*FrameBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < n {
		growBy = n
	}

	buf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(buf, bb.B)
	bb.B = buf
}

// Write appends data to the buffer. It never fails.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteString appends s to the buffer. It never fails.
func (bb *ByteBuffer) WriteString(s string) (int, error) {
	bb.B = append(bb.B, s...)
	return len(s), nil
}

// WriteByte appends c to the buffer. It never fails.
func (bb *ByteBuffer) WriteByte(c byte) error {
	bb.B = append(bb.B, c)
	return nil
}

// WriteTo writes the buffered bytes to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool is a sync.Pool of ByteBuffers. Buffers that grew beyond maxThreshold
// are dropped on Put instead of being retained.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool of buffers with the given initial capacity.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get returns an empty buffer.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns bb to the pool. bb must not be used afterwards.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var (
	framePool   = NewByteBufferPool(FrameBufferDefaultSize, FrameBufferMaxThreshold)
	archivePool = NewByteBufferPool(ArchiveBufferDefaultSize, ArchiveBufferMaxThreshold)
)

// GetFrameBuffer retrieves a buffer sized for a single encoded frame.
func GetFrameBuffer() *ByteBuffer {
	return framePool.Get()
}

// PutFrameBuffer returns a buffer obtained from GetFrameBuffer.
func PutFrameBuffer(bb *ByteBuffer) {
	framePool.Put(bb)
}

// GetArchiveBuffer retrieves a buffer sized for an archive payload.
func GetArchiveBuffer() *ByteBuffer {
	return archivePool.Get()
}

// PutArchiveBuffer returns a buffer obtained from GetArchiveBuffer.
func PutArchiveBuffer(bb *ByteBuffer) {
	archivePool.Put(bb)
}
