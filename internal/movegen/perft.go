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

package movegen

import "github.com/mkoepke/chesscore/internal/position"

// Perft counts the leaf nodes reachable from pos at exactly depth plies,
// the standard move-generator correctness benchmark: the counts at each
// depth from the start position and from known test positions (Kiwipete,
// etc.) are published and fixed, so any divergence pinpoints a move
// generation bug.
func Perft(pos *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := GenerateLegal(pos)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, mv := range moves {
		pos.Make(mv)
		nodes += Perft(pos, depth-1)
		pos.Undo()
	}
	return nodes
}

// PerftDivide runs Perft one ply at a time and returns each root move's
// individual leaf count, keyed by its UCI-style string. Useful for
// bisecting a perft mismatch against a reference down to the exact move.
func PerftDivide(pos *position.Position, depth int) map[string]uint64 {
	result := make(map[string]uint64)
	if depth < 1 {
		return result
	}
	moves := GenerateLegal(pos)
	for _, mv := range moves {
		pos.Make(mv)
		result[mv.String()] = Perft(pos, depth-1)
		pos.Undo()
	}
	return result
}
