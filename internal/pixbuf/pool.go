package pixbuf

import (
	"sync"
	"sync/atomic"
)

const (
	// maxPooledSize caps the buffers kept for reuse; larger ones are left to the GC.
	maxPooledSize = 64 << 20
	// maxPools caps the number of distinct lengths with a pool. Buffers of
	// other lengths are left to the GC once the cap is reached.
	maxPools = 256
)

// bytePool keeps released self-owned buffers keyed by exact length.
type bytePool struct {
	pools map[int]*sync.Pool
	mu    sync.RWMutex

	hits   atomic.Int64
	misses atomic.Int64
}

var defaultPool = newBytePool()

func newBytePool() *bytePool {
	return &bytePool{pools: make(map[int]*sync.Pool)}
}

func (p *bytePool) get(n int) []byte {
	p.mu.RLock()
	pool, ok := p.pools[n]
	p.mu.RUnlock()

	if ok {
		if v := pool.Get(); v != nil {
			p.hits.Add(1)
			return *(v.(*[]byte))
		}
	}

	p.misses.Add(1)
	return make([]byte, n)
}

func (p *bytePool) put(b []byte) {
	n := len(b)
	if n == 0 || n > maxPooledSize {
		return
	}

	p.mu.RLock()
	pool, ok := p.pools[n]
	p.mu.RUnlock()

	if !ok {
		p.mu.Lock()
		// Double-check after acquiring write lock
		pool, ok = p.pools[n]
		if !ok && len(p.pools) < maxPools {
			pool, ok = &sync.Pool{}, true
			p.pools[n] = pool
		}
		p.mu.Unlock()
		if !ok {
			return
		}
	}

	clear(b)
	pool.Put(&b)
}

// PoolMetrics returns how many allocations were served from released
// buffers (hits) and how many needed fresh memory (misses).
func PoolMetrics() (hits, misses int64) {
	return defaultPool.hits.Load(), defaultPool.misses.Load()
}
