package grid

import (
	"math/big"

	lru "github.com/hashicorp/golang-lru"
)

// Bounded memoization for arbitrary-precision results. Values are pure
// functions of their key, so racing writers overwrite idempotently; the
// LRU bound keeps memory flat under long pans. Fingerprint-scoped: the
// oracle that owns a cache is immutable, so a parameter change builds a
// fresh oracle with fresh caches — wholesale invalidation, never partial.

// exactCache memoizes exact transform values keyed by coordinate.
type exactCache struct {
	lru *lru.Cache
}

func newExactCache(size int) *exactCache {
	c, _ := lru.New(size) // size validated by options; > 0 here
	return &exactCache{lru: c}
}

// get returns the cached value for key. The returned big.Int is shared
// and must not be mutated by callers.
func (c *exactCache) get(key int64) (*big.Int, bool) {
	v, ok := c.lru.Get(key)
	if !ok {
		return nil, false
	}
	return v.(*big.Int), true
}

func (c *exactCache) add(key int64, v *big.Int) {
	c.lru.Add(key, v)
}

// gcdKey identifies one exact gcd computation: the effective x and y.
type gcdKey struct {
	x, y int64
}

// gcdCache memoizes exact gcd results keyed by coordinate pair.
type gcdCache struct {
	lru *lru.Cache
}

func newGCDCache(size int) *gcdCache {
	c, _ := lru.New(size)
	return &gcdCache{lru: c}
}

func (c *gcdCache) get(key gcdKey) (*big.Int, bool) {
	v, ok := c.lru.Get(key)
	if !ok {
		return nil, false
	}
	return v.(*big.Int), true
}

func (c *gcdCache) add(key gcdKey, v *big.Int) {
	c.lru.Add(key, v)
}
