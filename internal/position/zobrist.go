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

package position

import (
	"math/rand"

	. "github.com/mkoepke/chesscore/internal/types"
)

// zobrist keys are generated once from a fixed seed so hashes are stable
// across process runs, which matters for reproducing perft/eval-cache
// regressions from a bug report.
const zobristSeed = 0xC157C0DE

var (
	zPieceSquare [12][64]uint64
	zSideToMove  [2]uint64 // indexed by Color
	zCastling    [4]uint64 // white-K, white-Q, black-K, black-Q
	zEnPassant   uint64    // en-passant capture available this move
)

func init() {
	r := rand.New(rand.NewSource(zobristSeed))
	for p := 0; p < 12; p++ {
		for sq := 0; sq < 64; sq++ {
			zPieceSquare[p][sq] = r.Uint64()
		}
	}
	zSideToMove[White] = r.Uint64()
	zSideToMove[Black] = r.Uint64()
	for i := range zCastling {
		zCastling[i] = r.Uint64()
	}
	zEnPassant = r.Uint64()
}

// Hash recomputes the Zobrist hash of the position from scratch:
// correctness over incremental-update speed, paid for once per search
// node and amortized by the evaluation cache.
func (p *Position) Hash() uint64 {
	var h uint64
	for idx := 0; idx < 12; idx++ {
		bb := p.boards[idx]
		for bb != 0 {
			sq, rest := bb.PopLSB()
			bb = rest
			h ^= zPieceSquare[idx][sq]
		}
	}
	h ^= zSideToMove[p.sideToMove]
	if p.whiteKingMoves == 0 && p.whiteKingsideRookMoves == 0 {
		h ^= zCastling[0]
	}
	if p.whiteKingMoves == 0 && p.whiteQueensideRookMoves == 0 {
		h ^= zCastling[1]
	}
	if p.blackKingMoves == 0 && p.blackKingsideRookMoves == 0 {
		h ^= zCastling[2]
	}
	if p.blackKingMoves == 0 && p.blackQueensideRookMoves == 0 {
		h ^= zCastling[3]
	}
	// epTarget is only ever set when an enemy pawn can actually play the
	// capture, so "target set" and "en-passant available" coincide here.
	if p.epTarget != SquareNone {
		h ^= zEnPassant
	}
	return h
}
