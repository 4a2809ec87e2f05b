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

package evalcache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProbeMiss(t *testing.T) {
	c := New(4)
	_, ok := c.Probe(1)
	assert.False(t, ok)
	assert.EqualValues(t, 1, c.Stats.misses)
}

func TestPutThenProbeHits(t *testing.T) {
	c := New(4)
	c.Put(42, 100)
	v, ok := c.Probe(42)
	assert.True(t, ok)
	assert.EqualValues(t, 100, v)
	assert.EqualValues(t, 1, c.Stats.hits)
}

func TestPutUpdatesExistingEntry(t *testing.T) {
	c := New(4)
	c.Put(1, 100)
	c.Put(1, 200)
	assert.Equal(t, 1, c.Len())
	v, ok := c.Probe(1)
	assert.True(t, ok)
	assert.EqualValues(t, 200, v)
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c := New(2)
	c.Put(1, 10)
	c.Put(2, 20)
	// Touch key 1 so key 2 becomes the least recently used.
	_, _ = c.Probe(1)
	c.Put(3, 30)

	_, ok := c.Probe(2)
	assert.False(t, ok, "key 2 should have been evicted as the LRU entry")
	_, ok = c.Probe(1)
	assert.True(t, ok)
	_, ok = c.Probe(3)
	assert.True(t, ok)
	assert.EqualValues(t, 1, c.Stats.evictions)
}

func TestLenAndHashfull(t *testing.T) {
	c := New(4)
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, c.Hashfull())
	c.Put(1, 1)
	c.Put(2, 2)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 500, c.Hashfull())
}

func TestClearResetsState(t *testing.T) {
	c := New(4)
	c.Put(1, 1)
	_, _ = c.Probe(1)
	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.EqualValues(t, 0, c.Stats.puts)
	_, ok := c.Probe(1)
	assert.False(t, ok)
}

func TestNewClampsCapacityToOne(t *testing.T) {
	c := New(0)
	c.Put(1, 1)
	c.Put(2, 2)
	assert.Equal(t, 1, c.Len())
}
