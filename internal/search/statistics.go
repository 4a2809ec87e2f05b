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

package search

import "time"

// Statistics are extra data about a single BestMove call, not essential
// to the search itself but useful for verbose reporting and tests. Scaled
// down from a full iterative-deepening engine's statistics to the handful
// of numbers a fixed-depth alpha-beta search actually produces.
type Statistics struct {
	Depth           int
	NodesVisited    uint64
	LeavesEvaluated uint64
	BetaCuts        uint64
	EvalCacheProbes uint64
	EvalCacheHits   uint64
	Duration        time.Duration
}

// NodesPerSecond reports search throughput, 0 if Duration is 0.
func (s Statistics) NodesPerSecond() uint64 {
	seconds := s.Duration.Seconds()
	if seconds <= 0 {
		return 0
	}
	return uint64(float64(s.NodesVisited) / seconds)
}
