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

// Package search implements a fixed-depth alpha-beta search driven by
// internal/evaluator's static evaluation function. There is deliberately
// no iterative deepening, no time management and no multithreading: the
// engine searches to Engine.MaxDepth plies and returns, or returns at once
// when the root has a single legal move. Evaluate
// scores are always White-relative, so the search itself is a classic
// explicit min/max (White maximizes, Black minimizes) rather than the
// negamax form a side-relative evaluator would invite.
package search

import (
	"sort"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/op/go-logging"

	"github.com/mkoepke/chesscore/internal/attacks"
	"github.com/mkoepke/chesscore/internal/config"
	"github.com/mkoepke/chesscore/internal/evalcache"
	"github.com/mkoepke/chesscore/internal/evaluator"
	myLogging "github.com/mkoepke/chesscore/internal/logging"
	"github.com/mkoepke/chesscore/internal/movegen"
	"github.com/mkoepke/chesscore/internal/position"
	. "github.com/mkoepke/chesscore/internal/types"
)

var out = message.NewPrinter(language.German)

// Engine holds the search configuration and the evaluation cache shared
// across the calls it makes during one BestMove. It is not safe for
// concurrent use: searching is always single-threaded per the scope of
// this engine.
type Engine struct {
	// MaxDepth is the number of plies searched from the root.
	MaxDepth int
	// Difficulty gates which evaluator terms are active; see
	// internal/evaluator's threshold constants.
	Difficulty int

	cache *evalcache.Cache
	log   *logging.Logger
	slog  *logging.Logger

	// Stats reports on the most recently completed BestMove call.
	Stats Statistics
}

// NewEngine creates an Engine seeded from the package-level config.Settings.
func NewEngine() *Engine {
	return &Engine{
		MaxDepth:   config.Settings.Search.MaxDepth,
		Difficulty: config.Settings.Eval.Difficulty,
		cache:      evalcache.New(config.Settings.Eval.EvalCacheSize),
		log:        myLogging.GetLog(),
		slog:       myLogging.GetSearchLog(),
	}
}

// BestMove searches pos to e.MaxDepth plies and returns the best move
// found for the side to move. It returns MoveNone if pos has no legal
// moves (checkmate or stalemate), and the only legal move without
// searching when there is exactly one. When verbose is true, a one-line
// summary of the search is logged through the search logger.
func (e *Engine) BestMove(pos *position.Position, verbose bool) Move {
	start := time.Now()
	e.Stats = Statistics{Depth: e.MaxDepth}

	moves := movegen.GenerateLegal(pos)
	if len(moves) == 0 {
		e.log.Debugf("no legal moves, position is %s", pos.State())
		return MoveNone
	}
	if len(moves) == 1 {
		return moves[0]
	}
	orderMoves(pos, moves)

	us := pos.SideToMove()
	best := moves[0]
	alpha, beta := ValueMin, ValueMax

	if us == White {
		bestScore := ValueMin
		for _, mv := range moves {
			pos.Make(mv)
			score := e.search(pos, e.MaxDepth-1, alpha, beta)
			pos.Undo()
			if score > bestScore {
				bestScore = score
				best = mv
			}
			if bestScore > alpha {
				alpha = bestScore
			}
		}
	} else {
		bestScore := ValueMax
		for _, mv := range moves {
			pos.Make(mv)
			score := e.search(pos, e.MaxDepth-1, alpha, beta)
			pos.Undo()
			if score < bestScore {
				bestScore = score
				best = mv
			}
			if bestScore < beta {
				beta = bestScore
			}
		}
	}

	e.Stats.Duration = time.Since(start)
	if verbose {
		e.slog.Info(out.Sprintf("bestmove %s depth %d nodes %d nps %d time %s %s",
			best, e.Stats.Depth, e.Stats.NodesVisited, e.Stats.NodesPerSecond(), e.Stats.Duration, e.cache))
	}
	return best
}

// search is the recursive alpha-beta workhorse. White maximizes, Black
// minimizes, matching the always-White-relative evaluator score.
func (e *Engine) search(pos *position.Position, depth int, alpha, beta Value) Value {
	e.Stats.NodesVisited++

	if depth == 0 {
		return e.evaluate(pos)
	}

	moves := movegen.GenerateLegal(pos)
	if len(moves) == 0 {
		// Checkmate or a claimed draw (stalemate, fifty-move rule,
		// insufficient material); pos.State() carries which.
		if movegen.InCheck(pos, pos.SideToMove()) {
			if pos.SideToMove() == White {
				return ValueMin
			}
			return ValueMax
		}
		return ValueDraw
	}

	orderMoves(pos, moves)
	us := pos.SideToMove()

	if us == White {
		value := ValueMin
		for _, mv := range moves {
			pos.Make(mv)
			score := e.search(pos, depth-1, alpha, beta)
			pos.Undo()
			if score > value {
				value = score
			}
			if value > alpha {
				alpha = value
			}
			if alpha >= beta {
				e.Stats.BetaCuts++
				break
			}
		}
		return value
	}

	value := ValueMax
	for _, mv := range moves {
		pos.Make(mv)
		score := e.search(pos, depth-1, alpha, beta)
		pos.Undo()
		if score < value {
			value = score
		}
		if value < beta {
			beta = value
		}
		if alpha >= beta {
			e.Stats.BetaCuts++
			break
		}
	}
	return value
}

// evaluate scores pos, consulting the evaluation cache before calling
// the evaluator.
func (e *Engine) evaluate(pos *position.Position) Value {
	e.Stats.LeavesEvaluated++
	e.Stats.EvalCacheProbes++

	key := pos.Hash()
	if v, ok := e.cache.Probe(key); ok {
		e.Stats.EvalCacheHits++
		return v
	}

	v := evaluator.Evaluate(pos, e.Difficulty)
	e.cache.Put(key, v)
	return v
}

// quiescence is a capture-only negamax search extension at the horizon,
// intended to settle positions where the static evaluator would otherwise
// misjudge a hanging capture as quiet. Deliberately not wired into the
// main search path: fixed-depth full-width search is the contract here,
// and this stays a self-contained, independently tested variant.
func (e *Engine) quiescence(pos *position.Position, alpha, beta Value) Value {
	e.Stats.NodesVisited++

	standPat := e.relativeEvaluate(pos)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	captures := movegen.GenerateCaptures(pos)
	orderMoves(pos, captures)
	for _, mv := range captures {
		pos.Make(mv)
		score := -e.quiescence(pos, -beta, -alpha)
		pos.Undo()
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

// relativeEvaluate scores pos from the side-to-move's perspective, for the
// negamax-form quiescence search above.
func (e *Engine) relativeEvaluate(pos *position.Position) Value {
	v := e.evaluate(pos)
	if pos.SideToMove() == Black {
		return -v
	}
	return v
}

// orderMoves sorts moves in place, most promising first, to maximize
// alpha-beta cutoffs: capturing a valuable piece with a cheap one ranks
// highest, promotions rank by the promoted piece, and walking into an
// enemy pawn's capture square costs the moving piece's value.
func orderMoves(pos *position.Position, moves []Move) {
	them := pos.SideToMove().Other()
	tbl := attacks.Shared()
	var pawnAttacks Bitboard
	pawns := pos.Board(them, Pawn)
	for pawns != 0 {
		sq, rest := pawns.PopLSB()
		pawns = rest
		pawnAttacks |= tbl.PawnCaptures[them][sq]
	}

	sort.SliceStable(moves, func(i, j int) bool {
		return moveOrderScore(pos, moves[i], pawnAttacks) > moveOrderScore(pos, moves[j], pawnAttacks)
	})
}

func moveOrderScore(pos *position.Position, mv Move, pawnAttacks Bitboard) Value {
	var score Value
	mover := pos.PieceAt(mv.From())
	if captured := pos.PieceAt(mv.To()); !captured.IsNone() {
		score += 10*captured.Type.Value() - mover.Type.Value()
	}
	if mv.IsPromotion() {
		score += mv.Promotion().Value()
	}
	if pawnAttacks.Has(mv.To()) {
		score -= mover.Type.Value()
	}
	return score
}
