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

// Package evaluator is the engine's static position evaluator: material
// plus piece-square tables, passed pawns, king safety, bad bishops and
// isolated pawns, each term gated by a difficulty knob so weaker engine
// settings see a simpler position. Evaluate's return value always favours
// White when positive, matching the classic (non-negamax) minimax the
// search package drives it with.
package evaluator

import (
	"github.com/mkoepke/chesscore/internal/position"
	. "github.com/mkoepke/chesscore/internal/types"
)

// Difficulty gating thresholds: an evaluation term is active only once
// the difficulty knob exceeds its threshold.
const (
	BadBishopThreshold    = 700
	KingSafetyThreshold   = 800
	IsolatedPawnThreshold = 900
	PassedPawnThreshold   = 1000
)

// Evaluate scores pos in centipawns, positive favouring White. Terms
// gated by difficulty are computed from the side-to-move's perspective
// and then flipped onto White's perspective before material and
// piece-square values (which are already White-relative) are added.
func Evaluate(pos *position.Position, difficulty int) Value {
	phase := pos.GamePhase()
	us := pos.SideToMove()
	them := us.Other()

	var agnostic Value
	if difficulty > PassedPawnThreshold {
		agnostic += evaluatePassedPawns(pos, us, them)
	}
	if difficulty > KingSafetyThreshold {
		agnostic += evaluateKingSafety(pos, us, them, phase)
	}
	if difficulty > BadBishopThreshold {
		agnostic += evaluateBadBishops(pos, us, them)
	}
	if difficulty > IsolatedPawnThreshold {
		agnostic += evaluateIsolatedPawns(pos, us, them)
	}

	perspective := Value(1)
	if us == Black {
		perspective = -1
	}

	return agnostic*perspective + materialAndPSQ(pos, phase)
}

func evaluatePassedPawns(pos *position.Position, us, them Color) Value {
	return passedPawnBonusFor(pos, us) - passedPawnBonusFor(pos, them)
}

// passedPawnBonusFor sums the promotion-distance bonus for every pawn of
// side with no enemy pawn on its own or an adjacent file, on any rank
// between it and the promotion rank.
func passedPawnBonusFor(pos *position.Position, side Color) Value {
	them := side.Other()
	enemyPawns := pos.Board(them, Pawn)
	promoRank := 8
	if side == Black {
		promoRank = 1
	}

	var bonus Value
	pawns := pos.Board(side, Pawn)
	for pawns != 0 {
		sq, rest := pawns.PopLSB()
		pawns = rest

		file := sq.File()
		fileBand := Files[file-1]
		if file > 1 {
			fileBand |= Files[file-2]
		}
		if file < 8 {
			fileBand |= Files[file]
		}

		r := sq.Rank()
		var ahead Bitboard
		if side == White {
			for rr := r + 1; rr <= 8; rr++ {
				ahead |= Ranks[rr-1]
			}
		} else {
			for rr := 1; rr < r; rr++ {
				ahead |= Ranks[rr-1]
			}
		}

		if enemyPawns&fileBand&ahead != 0 {
			continue
		}
		dist := promoRank - r
		if dist < 0 {
			dist = -dist
		}
		idx := dist - 1
		if idx >= 0 && idx < len(passedPawnBonus) {
			bonus += passedPawnBonus[idx]
		}
	}
	return bonus
}

func evaluateIsolatedPawns(pos *position.Position, us, them Color) Value {
	return isolatedPenaltyFor(pos, us) - isolatedPenaltyFor(pos, them)
}

// isolatedPenaltyFor sums the file-indexed penalty for every pawn of side
// with no friendly pawn on an adjacent file.
func isolatedPenaltyFor(pos *position.Position, side Color) Value {
	all := pos.Board(side, Pawn)
	pawns := all
	var penalty Value
	for pawns != 0 {
		sq, rest := pawns.PopLSB()
		pawns = rest
		file := sq.File()
		var adjacent Bitboard
		if file > 1 {
			adjacent |= Files[file-2]
		}
		if file < 8 {
			adjacent |= Files[file]
		}
		if all&adjacent == 0 {
			penalty += isolatedPawnPenalty[file-1]
		}
	}
	return penalty
}

func evaluateBadBishops(pos *position.Position, us, them Color) Value {
	return badBishopPenaltyFor(pos, us) - badBishopPenaltyFor(pos, them)
}

// badBishopPenaltyFor sums, for every bishop of side, a penalty per
// friendly pawn standing on a square of the bishop's own color ahead of
// it, weighted by how many ranks ahead the pawn sits.
func badBishopPenaltyFor(pos *position.Position, side Color) Value {
	bishops := pos.Board(side, Bishop)
	pawns := pos.Board(side, Pawn)

	var penalty Value
	for bishops != 0 {
		sq, rest := bishops.PopLSB()
		bishops = rest

		complex := lightSquares
		if (sq.File()+sq.Rank())%2 != 0 {
			complex = darkSquares
		}

		r := sq.Rank()
		for dist := 1; dist <= 7; dist++ {
			var aheadRank int
			if side == White {
				aheadRank = r + dist
			} else {
				aheadRank = r - dist
			}
			if aheadRank < 1 || aheadRank > 8 {
				break
			}
			count := (Ranks[aheadRank-1] & complex & pawns).PopCount()
			if count > 0 {
				penalty += badBishopPenalty[dist-1] * Value(count)
			}
		}
	}
	return penalty
}

func evaluateKingSafety(pos *position.Position, us, them Color, phase float64) Value {
	return kingSafetyTermFor(pos, us, phase) - kingSafetyTermFor(pos, them, phase)
}

// kingSafetyTermFor rewards a king tucked in its home corner behind a
// pawn shelter during the opening/middlegame, and an active king once
// the phase crosses into the endgame.
func kingSafetyTermFor(pos *position.Position, side Color, phase float64) Value {
	kingSq := pos.Board(side, King).LSB()
	homeRank := 1
	if side == Black {
		homeRank = 8
	}
	file := kingSq.File()
	inCorner := kingSq.Rank() == homeRank && (file <= 2 || file >= 7)

	var term Value
	if phase < 0.5 {
		if inCorner {
			term += 10
		} else {
			term -= 10
		}
		term += kingShelterBonus[guardingPawnCount(pos, side, kingSq)]
	} else {
		if inCorner {
			term -= 10
		} else {
			term += 10
		}
	}
	return term
}

// guardingPawnCount counts friendly pawns on the three squares directly
// in front of the king, clamped to the table's [0,3] index range.
func guardingPawnCount(pos *position.Position, side Color, kingSq Square) int {
	kb := kingSq.Bb()
	var shield Bitboard
	if side == White {
		shield = ShiftNorth(kb) | ShiftNorthEast(kb) | ShiftNorthWest(kb)
	} else {
		shield = ShiftSouth(kb) | ShiftSouthEast(kb) | ShiftSouthWest(kb)
	}
	count := (pos.Board(side, Pawn) & shield).PopCount()
	if count > 3 {
		count = 3
	}
	return count
}

// materialAndPSQ sums material value plus piece-square bonus for every
// piece kind, White-relative. The king's bonus is interpolated between
// its opening and endgame tables by phase.
func materialAndPSQ(pos *position.Position, phase float64) Value {
	var total Value
	total += sumSingleTable(pos, Knight, knightTable)
	total += sumSingleTable(pos, Queen, queenTable)
	total += sumDualTable(pos, Rook, rookTable)
	total += sumDualTable(pos, Bishop, bishopTable)
	total += kingMaterial(pos, phase)
	total += Value(pos.Board(White, Pawn).PopCount()-pos.Board(Black, Pawn).PopCount()) * 100
	return total
}

func sumSingleTable(pos *position.Position, pt PieceType, table [64]Value) Value {
	var v Value
	bb := pos.Board(White, pt)
	for bb != 0 {
		sq, rest := bb.PopLSB()
		bb = rest
		v += pt.Value() + table[sq]
	}
	bb = pos.Board(Black, pt)
	for bb != 0 {
		sq, rest := bb.PopLSB()
		bb = rest
		v -= pt.Value() + table[sq]
	}
	return v
}

func sumDualTable(pos *position.Position, pt PieceType, table [2][64]Value) Value {
	var v Value
	bb := pos.Board(White, pt)
	for bb != 0 {
		sq, rest := bb.PopLSB()
		bb = rest
		v += pt.Value() + table[0][sq]
	}
	bb = pos.Board(Black, pt)
	for bb != 0 {
		sq, rest := bb.PopLSB()
		bb = rest
		v -= pt.Value() + table[1][sq]
	}
	return v
}

func kingMaterial(pos *position.Position, phase float64) Value {
	wsq := pos.Board(White, King).LSB()
	bsq := pos.Board(Black, King).LSB()
	wBegin, wEnd := KingSquareTable(White, wsq)
	bBegin, bEnd := KingSquareTable(Black, bsq)
	white := King.Value() + interp(wBegin, wEnd, phase)
	black := King.Value() + interp(bBegin, bEnd, phase)
	return white - black
}

func interp(begin, end Value, phase float64) Value {
	return begin + Value(phase*float64(end-begin))
}
