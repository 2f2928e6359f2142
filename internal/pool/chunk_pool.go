// Package pool provides pooled copy buffers for the bounded-copy paths.
//
// Extract and replace move CHR data in fixed-size chunks; pooling the chunk
// buffers keeps repeated operations allocation-free regardless of image size.
package pool

import "sync"

const (
	// ChunkDefaultSize is the default size of a copy chunk obtained from the
	// pool. One CHR bank is 8 KiB, so a 64 KiB chunk moves eight banks per
	// read on typical images.
	ChunkDefaultSize = 64 * 1024

	// ChunkMaxThreshold is the largest buffer the pool will retain. Callers
	// may request oversized chunks via options; returning those to the pool
	// would pin the memory for the life of the process.
	ChunkMaxThreshold = 1024 * 1024
)

// ChunkPool is a pool of copy buffers backed by sync.Pool.
//
// Buffers larger than the configured threshold are dropped on Put to avoid
// retaining memory that a single oversized request allocated.
type ChunkPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewChunkPool creates a ChunkPool handing out buffers of defaultSize bytes.
func NewChunkPool(defaultSize int, maxThreshold int) *ChunkPool {
	return &ChunkPool{
		pool: sync.Pool{
			New: func() any {
				buf := make([]byte, defaultSize)
				return &buf
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a chunk of at least size bytes from the pool.
//
// The returned slice has length >= size; callers slice it down as needed.
// The caller must call the returned cleanup function (typically with defer)
// to return the chunk to the pool.
func (cp *ChunkPool) Get(size int) ([]byte, func()) {
	ptr, _ := cp.pool.Get().(*[]byte)
	if cap(*ptr) < size {
		buf := make([]byte, size)
		*ptr = buf
	}
	*ptr = (*ptr)[:cap(*ptr)]

	return *ptr, func() { cp.put(ptr) }
}

func (cp *ChunkPool) put(ptr *[]byte) {
	if ptr == nil {
		return
	}

	if cp.maxThreshold > 0 && cap(*ptr) > cp.maxThreshold {
		// Discard oversized buffers to prevent memory bloat.
		return
	}

	cp.pool.Put(ptr)
}

var defaultPool = NewChunkPool(ChunkDefaultSize, ChunkMaxThreshold)

// GetChunk retrieves a copy chunk of at least size bytes from the default pool.
func GetChunk(size int) ([]byte, func()) {
	return defaultPool.Get(size)
}
