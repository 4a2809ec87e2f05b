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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkoepke/chesscore/internal/movegen"
	"github.com/mkoepke/chesscore/internal/position"
	. "github.com/mkoepke/chesscore/internal/types"
)

func TestBestMoveReturnsLegalMove(t *testing.T) {
	e := NewEngine()
	e.MaxDepth = 2
	p := position.New()
	mv := e.BestMove(p, false)
	_, ok := movegen.IsLegal(p, mv)
	assert.True(t, ok)
	assert.Positive(t, e.Stats.NodesVisited)
}

func TestBestMoveNoneWhenNoLegalMoves(t *testing.T) {
	e := NewEngine()
	e.MaxDepth = 2
	p := position.New()
	require.NoError(t, p.LoadFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"))
	assert.Equal(t, MoveNone, e.BestMove(p, false))
}

func TestBestMoveSingleReplyShortcut(t *testing.T) {
	e := NewEngine()
	e.MaxDepth = 3
	p := position.New()
	// White king in check from the rook on the a-file, with b2 controlled
	// by the black king on c3: Kb1 is the only legal reply.
	require.NoError(t, p.LoadFEN("r7/8/8/8/8/2k5/8/K7 w - - 0 1"))
	moves := movegen.GenerateLegal(p)
	require.Len(t, moves, 1)
	assert.Equal(t, moves[0], e.BestMove(p, false))
}

func TestBestMoveTakesFreeQueen(t *testing.T) {
	e := NewEngine()
	e.MaxDepth = 2
	p := position.New()
	require.NoError(t, p.LoadFEN("4k3/8/8/3q4/8/8/8/3RK3 w - - 0 1"))
	mv := e.BestMove(p, false)
	captured := p.PieceAt(mv.To())
	assert.Equal(t, Queen, captured.Type, "the engine should take the hanging queen")
}

func TestSearchRespectsFiftyMoveDraw(t *testing.T) {
	e := NewEngine()
	p := position.New()
	require.NoError(t, p.LoadFEN("4k3/8/8/8/8/8/8/4K3 w - - 100 50"))
	v := e.search(p, 1, ValueMin, ValueMax)
	assert.EqualValues(t, ValueDraw, v)
}

func TestEvaluateUsesCache(t *testing.T) {
	e := NewEngine()
	p := position.New()
	_ = e.evaluate(p)
	_ = e.evaluate(p)
	assert.EqualValues(t, 1, e.Stats.EvalCacheHits)
}

func TestQuiescenceSettlesHangingCapture(t *testing.T) {
	e := NewEngine()
	p := position.New()
	// White to move, rook takes an undefended queen: a quiescence search
	// must not stand pat on the pre-capture evaluation.
	require.NoError(t, p.LoadFEN("4k3/8/8/3q4/8/8/8/3RK3 w - - 0 1"))
	standPat := e.relativeEvaluate(p)
	settled := e.quiescence(p, ValueMin, ValueMax)
	assert.Greater(t, settled, standPat)
}

func TestQuiescenceIsBoundedByBeta(t *testing.T) {
	e := NewEngine()
	p := position.New()
	v := e.quiescence(p, ValueMin, ValueDraw)
	assert.LessOrEqual(t, v, ValueDraw)
}
