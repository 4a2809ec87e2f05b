//
// chesscore - a bitboard chess engine core in Go
//
// MIT License
//
// Copyright (c) 2020-2024 chesscore contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package evalcache implements a fixed-capacity LRU cache for static
// evaluation results, keyed by Zobrist hash. Unlike a transposition
// table's fixed hash-bucket array, an eval cache entry is cheap to
// recompute on a collision, so this cache evicts the least-recently-used
// entry once it fills rather than overwriting on hash collision. The
// Cache is not safe for concurrent use and needs external synchronization
// if shared across goroutines.
package evalcache

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mkoepke/chesscore/internal/logging"
	. "github.com/mkoepke/chesscore/internal/types"
)

var out = message.NewPrinter(language.German)

// DefaultCapacity is the number of entries the cache holds before
// evicting the least recently used one, matching config.Settings.Eval.EvalCacheSize's
// default.
const DefaultCapacity = 400_000

// entry is one node of the intrusive doubly-linked list. prev/next link
// entries in recency order; entries also live in the hash index by key.
type entry struct {
	key        uint64
	value      Value
	prev, next *entry
}

// Cache is a fixed-size LRU keyed by Zobrist hash. It combines a map
// lookup with an intrusive doubly-linked list so both Probe and Put run
// in O(1): the list tracks recency (front = most recently used, back =
// next to evict) and the map gives direct access to a key's node.
type Cache struct {
	capacity int
	index    map[uint64]*entry
	front    *entry
	back     *entry
	Stats    Stats
}

// Stats holds cache usage counters for verbose search reports.
type Stats struct {
	probes    uint64
	hits      uint64
	misses    uint64
	puts      uint64
	evictions uint64
}

// New creates a Cache holding up to capacity entries.
func New(capacity int) *Cache {
	if capacity < 1 {
		capacity = 1
	}
	return &Cache{
		capacity: capacity,
		index:    make(map[uint64]*entry, capacity),
	}
}

// Probe looks up key and reports whether it was found. On a hit the
// entry is moved to the front of the recency list.
func (c *Cache) Probe(key uint64) (Value, bool) {
	c.Stats.probes++
	e, ok := c.index[key]
	if !ok {
		c.Stats.misses++
		return 0, false
	}
	c.Stats.hits++
	c.moveToFront(e)
	return e.value, true
}

// Put inserts or updates key's cached value, evicting the
// least-recently-used entry if the cache is at capacity.
func (c *Cache) Put(key uint64, value Value) {
	c.Stats.puts++
	if e, ok := c.index[key]; ok {
		e.value = value
		c.moveToFront(e)
		return
	}

	if len(c.index) >= c.capacity {
		c.evict()
	}

	e := &entry{key: key, value: value}
	c.pushFront(e)
	c.index[key] = e
}

// Clear empties the cache and resets its statistics.
func (c *Cache) Clear() {
	c.index = make(map[uint64]*entry, c.capacity)
	c.front = nil
	c.back = nil
	c.Stats = Stats{}
}

// Len returns the number of entries currently cached.
func (c *Cache) Len() int {
	return len(c.index)
}

// Hashfull returns how full the cache is in permill, matching the
// transposition table's UCI-style Hashfull reporting convention.
func (c *Cache) Hashfull() int {
	if c.capacity == 0 {
		return 0
	}
	return (1000 * len(c.index)) / c.capacity
}

// String renders cache usage for verbose search reports.
func (c *Cache) String() string {
	return out.Sprintf("EvalCache: capacity %d entries %d (%d%%) puts %d probes %d hits %d (%d%%) misses %d (%d%%) evictions %d",
		c.capacity, len(c.index), c.Hashfull()/10,
		c.Stats.puts, c.Stats.probes,
		c.Stats.hits, (c.Stats.hits*100)/(1+c.Stats.probes),
		c.Stats.misses, (c.Stats.misses*100)/(1+c.Stats.probes),
		c.Stats.evictions)
}

func (c *Cache) evict() {
	if c.back == nil {
		return
	}
	victim := c.back
	c.unlink(victim)
	delete(c.index, victim.key)
	c.Stats.evictions++
	log := logging.GetSearchLog()
	log.Debug(out.Sprintf("EvalCache evicted key %d, %d entries remain", victim.key, len(c.index)))
}

func (c *Cache) pushFront(e *entry) {
	e.prev = nil
	e.next = c.front
	if c.front != nil {
		c.front.prev = e
	}
	c.front = e
	if c.back == nil {
		c.back = e
	}
}

func (c *Cache) unlink(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.front = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.back = e.prev
	}
	e.prev = nil
	e.next = nil
}

func (c *Cache) moveToFront(e *entry) {
	if c.front == e {
		return
	}
	c.unlink(e)
	c.pushFront(e)
}
