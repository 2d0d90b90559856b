// Package pool provides reusable byte buffers to reduce allocation pressure
// in the encode and decompression hot paths.
package pool

import (
	"io"
	"sync"
)

// Default and maximum-retained sizes for the two buffer pools used by the
// codec: one for assembling a single splat's packed attribute stream, one
// for the larger gzip-wrapped envelope around it.
const (
	SplatBufferDefaultSize     = 1024 * 16        // 16KiB, about 800 points at SH degree 0
	SplatBufferMaxThreshold    = 1024 * 1024 * 4  // 4MiB
	EnvelopeBufferDefaultSize  = 1024 * 64        // 64KiB
	EnvelopeBufferMaxThreshold = 1024 * 1024 * 16 // 16MiB
)

// ByteBuffer is a growable []byte wrapper sized for amortized append-heavy
// encoding loops, mirroring bytes.Buffer but exposing the backing slice
// directly so encoders can write fixed-width fields without an extra copy.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the given starting capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer while retaining its backing array.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the number of bytes currently held.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the buffer's current capacity.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// MustWrite appends data, growing the buffer if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// Slice returns bb.B[start:end]. Panics on out-of-range indices.
func (bb *ByteBuffer) Slice(start, end int) []byte {
	if start < 0 || end < start || end > cap(bb.B) {
		panic("pool: Slice: invalid indices")
	}

	return bb.B[start:end]
}

// SetLength resizes the buffer to exactly n bytes, within capacity.
func (bb *ByteBuffer) SetLength(n int) {
	if n < 0 || n > cap(bb.B) {
		panic("pool: SetLength: invalid length")
	}
	bb.B = bb.B[:n]
}

// Extend grows the visible length by n bytes if capacity allows, reporting
// whether it succeeded without reallocating.
func (bb *ByteBuffer) Extend(n int) bool {
	curLen := len(bb.B)
	if cap(bb.B)-curLen < n {
		return false
	}

	bb.B = bb.B[:curLen+n]

	return true
}

// ExtendOrGrow extends the buffer by n bytes, reallocating if necessary.
func (bb *ByteBuffer) ExtendOrGrow(n int) {
	if bb.Extend(n) {
		return
	}

	start := len(bb.B)
	bb.Grow(n)
	bb.B = bb.B[:start+n]
}

// Grow ensures the buffer can accept requiredBytes more bytes without a
// further reallocation.
//
// Small buffers grow by a fixed chunk to avoid repeated tiny reallocations;
// larger buffers grow by 25% of their current capacity.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := SplatBufferDefaultSize
	if cap(bb.B) > 4*SplatBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}

	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write implements io.Writer.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteTo implements io.WriterTo.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool pools ByteBuffers, discarding ones that grew unusually
// large so a single big splat doesn't permanently inflate the pool.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool whose buffers start at defaultSize and
// are discarded (not returned to the pool) once they exceed maxThreshold.
func NewByteBufferPool(defaultSize, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any { return NewByteBuffer(defaultSize) },
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a buffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a buffer to the pool for reuse.
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
	splatBufferPool    = NewByteBufferPool(SplatBufferDefaultSize, SplatBufferMaxThreshold)
	envelopeBufferPool = NewByteBufferPool(EnvelopeBufferDefaultSize, EnvelopeBufferMaxThreshold)
)

// GetSplatBuffer retrieves a buffer sized for assembling one splat's packed
// attribute stream (header + six attribute blocks, pre-compression).
func GetSplatBuffer() *ByteBuffer { return splatBufferPool.Get() }

// PutSplatBuffer returns a splat buffer to its pool.
func PutSplatBuffer(bb *ByteBuffer) { splatBufferPool.Put(bb) }

// GetEnvelopeBuffer retrieves a buffer sized for the gzip-wrapped envelope.
func GetEnvelopeBuffer() *ByteBuffer { return envelopeBufferPool.Get() }

// PutEnvelopeBuffer returns an envelope buffer to its pool.
func PutEnvelopeBuffer(bb *ByteBuffer) { envelopeBufferPool.Put(bb) }
