package model

import "sync"

// CountPool recycles candidate-count maps between generations so a stable
// population stops allocating once its maps have grown.
type CountPool struct {
	pool sync.Pool
}

func NewCountPool() *CountPool {
	return &CountPool{
		pool: sync.Pool{
			New: func() interface{} {
				return make(map[Cell]int)
			},
		},
	}
}

// Get retrieves an empty count map from the pool
func (p *CountPool) Get() map[Cell]int {
	return p.pool.Get().(map[Cell]int)
}

// Put returns a count map to the pool, clearing its state
func (p *CountPool) Put(counts map[Cell]int) {
	clear(counts)
	p.pool.Put(counts)
}

// getCounts returns a map from the pool, or a fresh one when no pool is set
func getCounts(pool *CountPool, sizeHint int) map[Cell]int {
	if pool == nil {
		return make(map[Cell]int, sizeHint)
	}
	return pool.Get()
}

// putCounts returns a map to the pool when pooling is enabled
func putCounts(pool *CountPool, counts map[Cell]int) {
	if pool == nil {
		return
	}
	pool.Put(counts)
}
