package pool

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(128)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 128, bb.Cap())
}

func TestByteBuffer_Writes(t *testing.T) {
	bb := NewByteBuffer(4)

	_, _ = bb.WriteString("8=FIX.4.4")
	_ = bb.WriteByte(0x01)
	n, err := bb.Write([]byte("9=5\x01"))

	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, []byte("8=FIX.4.4\x019=5\x01"), bb.Bytes())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(FrameBufferDefaultSize)
	_, _ = bb.WriteString("35=0\x01")
	capBefore := bb.Cap()

	bb.Reset()

	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, capBefore, bb.Cap())
}

func TestByteBuffer_Grow(t *testing.T) {
	bb := NewByteBuffer(8)
	_, _ = bb.WriteString("abc")

	bb.Grow(4)
	assert.Equal(t, 8, bb.Cap(), "enough room, no growth")

	bb.Grow(100)
	assert.GreaterOrEqual(t, bb.Cap()-bb.Len(), 100)
	assert.GreaterOrEqual(t, bb.Cap(), 3+FrameBufferDefaultSize)
	assert.Equal(t, []byte("abc"), bb.Bytes(), "contents preserved")

	large := NewByteBuffer(8 * FrameBufferDefaultSize)
	large.B = large.B[:cap(large.B)]
	large.Grow(1)
	assert.Equal(t, 10*FrameBufferDefaultSize, large.Cap(), "large buffers grow by a quarter")
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(16)
	_, _ = bb.WriteString("10=163\x01")

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)

	require.NoError(t, err)
	require.Equal(t, int64(7), n)
	require.Equal(t, "10=163\x01", out.String())
}

func TestByteBufferPool(t *testing.T) {
	p := NewByteBufferPool(64, 128)

	bb := p.Get()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())

	_, _ = bb.WriteString("data")
	p.Put(bb)

	again := p.Get()
	require.Equal(t, 0, again.Len(), "pooled buffers come back empty")

	p.Put(nil)
	p.Put(NewByteBuffer(1024))
}

func TestDefaultPools_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				fb := GetFrameBuffer()
				_, _ = fb.WriteString("35=0\x01")
				PutFrameBuffer(fb)

				ab := GetArchiveBuffer()
				_ = ab.WriteByte(1)
				PutArchiveBuffer(ab)
			}
		}()
	}
	wg.Wait()
}
