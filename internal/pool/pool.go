// Package pool provides pooled byte buffers reused across compress/decompress
// calls.
package pool

import "sync"

// ContainerBufferDefaultSize is the default capacity handed out by the
// container pool: large enough to hold a typical metadata JSON blob or a
// small-to-medium Huffman payload without reallocating.
const (
	ContainerBufferDefaultSize  = 1024 * 16  // 16KiB
	ContainerBufferMaxThreshold = 1024 * 256 // 256KiB
)

// ByteBuffer is a growable byte slice wrapper usable as an io.Writer.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a ByteBuffer with the given starting capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

// Bytes returns the underlying slice.
func (bb *ByteBuffer) Bytes() []byte { return bb.B }

// Len returns the number of bytes currently held.
func (bb *ByteBuffer) Len() int { return len(bb.B) }

// Reset empties the buffer while retaining its backing array.
func (bb *ByteBuffer) Reset() { bb.B = bb.B[:0] }

// Write appends data, growing the backing array as needed. It always
// returns (len(data), nil), satisfying io.Writer.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// bufferPool pools ByteBuffers to avoid a fresh allocation on every
// compress/decompress call.
type bufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

func newBufferPool(defaultSize, maxThreshold int) *bufferPool {
	return &bufferPool{
		pool: sync.Pool{
			New: func() any { return NewByteBuffer(defaultSize) },
		},
		maxThreshold: maxThreshold,
	}
}

func (p *bufferPool) Get() *ByteBuffer {
	bb, _ := p.pool.Get().(*ByteBuffer)
	return bb
}

func (p *bufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}
	if p.maxThreshold > 0 && cap(bb.B) > p.maxThreshold {
		return
	}
	bb.Reset()
	p.pool.Put(bb)
}

var containerPool = newBufferPool(ContainerBufferDefaultSize, ContainerBufferMaxThreshold)

// GetContainerBuffer retrieves a pooled ByteBuffer sized for container
// metadata or payload assembly.
func GetContainerBuffer() *ByteBuffer {
	return containerPool.Get()
}

// PutContainerBuffer returns buf to the pool for reuse.
func PutContainerBuffer(buf *ByteBuffer) {
	containerPool.Put(buf)
}
