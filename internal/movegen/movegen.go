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

import (
	"github.com/mkoepke/chesscore/internal/attacks"
	"github.com/mkoepke/chesscore/internal/position"
	. "github.com/mkoepke/chesscore/internal/types"
)

// PseudoLegal returns every move available to the side to move without
// regard to whether it leaves that side's own king in check.
func PseudoLegal(pos *position.Position) []Move {
	moves := make([]Move, 0, 48)
	us := pos.SideToMove()
	own := pos.Occupied(us)
	enemy := pos.Occupied(us.Other())
	occ := own | enemy
	tbl := attacks.Shared()

	genJumps(&moves, pos.Board(us, Knight), tbl.Knight, own)
	genJumps(&moves, pos.Board(us, King), tbl.King, own)

	bb := pos.Board(us, Bishop)
	for bb != 0 {
		from, rest := bb.PopLSB()
		bb = rest
		targets := attacks.SlidingAttacks(from, occ, tbl.PrimaryDiagonal, tbl.SecondaryDiagonal) &^ own
		addTargets(&moves, from, targets)
	}
	bb = pos.Board(us, Rook)
	for bb != 0 {
		from, rest := bb.PopLSB()
		bb = rest
		targets := attacks.SlidingAttacks(from, occ, tbl.PrimaryStraight, tbl.SecondaryStraight) &^ own
		addTargets(&moves, from, targets)
	}
	bb = pos.Board(us, Queen)
	for bb != 0 {
		from, rest := bb.PopLSB()
		bb = rest
		targets := attacks.SlidingAttacks(from, occ, tbl.PrimaryDiagonal, tbl.SecondaryDiagonal,
			tbl.PrimaryStraight, tbl.SecondaryStraight) &^ own
		addTargets(&moves, from, targets)
	}

	genPawnMoves(&moves, pos, us, occ, enemy, tbl)
	genCastling(&moves, pos, us)

	return moves
}

func genJumps(moves *[]Move, pieces Bitboard, table [64]Bitboard, own Bitboard) {
	bb := pieces
	for bb != 0 {
		from, rest := bb.PopLSB()
		bb = rest
		addTargets(moves, from, table[from]&^own)
	}
}

func addTargets(moves *[]Move, from Square, targets Bitboard) {
	for targets != 0 {
		to, rest := targets.PopLSB()
		targets = rest
		*moves = append(*moves, NewMove(from, to, NoPieceType))
	}
}

func genPawnMoves(moves *[]Move, pos *position.Position, us Color, occ, enemy Bitboard, tbl *attacks.Tables) {
	promoRank := Rank8
	startRank := Rank2
	if us == Black {
		promoRank = Rank1
		startRank = Rank7
	}

	bb := pos.Board(us, Pawn)
	for bb != 0 {
		from, rest := bb.PopLSB()
		bb = rest

		var single, double Bitboard
		if us == White {
			single = ShiftNorth(from.Bb()) &^ occ
			if single != 0 && from.Bb()&startRank != 0 {
				double = ShiftNorth(single) &^ occ
			}
		} else {
			single = ShiftSouth(from.Bb()) &^ occ
			if single != 0 && from.Bb()&startRank != 0 {
				double = ShiftSouth(single) &^ occ
			}
		}
		pushes := single | double
		addPawnTargets(moves, from, pushes, promoRank)

		captures := tbl.PawnCaptures[us][from] & enemy
		addPawnTargets(moves, from, captures, promoRank)

		if ep := pos.EnPassantTarget(); ep != SquareNone {
			if tbl.PawnCaptures[us][from].Has(ep) {
				*moves = append(*moves, NewMove(from, ep, NoPieceType))
			}
		}
	}
}

func addPawnTargets(moves *[]Move, from Square, targets Bitboard, promoRank Bitboard) {
	for targets != 0 {
		to, rest := targets.PopLSB()
		targets = rest
		if to.Bb()&promoRank != 0 {
			for _, pt := range PromotionPieceTypes {
				*moves = append(*moves, NewMove(from, to, pt))
			}
			continue
		}
		*moves = append(*moves, NewMove(from, to, NoPieceType))
	}
}

func genCastling(moves *[]Move, pos *position.Position, us Color) {
	if InCheck(pos, us) {
		return
	}
	occ := pos.AllOccupied()
	them := us.Other()

	type corner struct {
		kingside         bool
		kingFrom, kingTo Square
		transit          Square
		betweenEmpty     Bitboard
	}
	var corners []corner
	if us == White {
		corners = []corner{
			{true, 3, 1, 2, Square(1).Bb() | Square(2).Bb()},
			{false, 3, 5, 4, Square(4).Bb() | Square(5).Bb() | Square(6).Bb()},
		}
	} else {
		corners = []corner{
			{true, 59, 57, 58, Square(57).Bb() | Square(58).Bb()},
			{false, 59, 61, 60, Square(60).Bb() | Square(61).Bb() | Square(62).Bb()},
		}
	}

	for _, c := range corners {
		if !pos.CanCastle(us, c.kingside) {
			continue
		}
		if occ&c.betweenEmpty != 0 {
			continue
		}
		if IsSquareAttacked(pos, c.transit, them) || IsSquareAttacked(pos, c.kingTo, them) {
			continue
		}
		*moves = append(*moves, NewCastlingMove(c.kingFrom, c.kingTo))
	}
}

// GenerateLegal returns every fully legal move for the side to move and
// records the derived game status on pos: an automatic draw (fifty-move
// rule, insufficient material) is claimed before any move is generated
// and yields an empty list, and an empty list without a draw claim means
// checkmate or stalemate depending on whether the king stands in check.
//
// Moves that cannot possibly expose the king (not a king move, not
// en-passant, not in check, and either unpinned or sliding along its own
// pin line) are accepted directly; everything else is verified by making
// the move, checking whether the own king is then attacked, and undoing.
func GenerateLegal(pos *position.Position) []Move {
	if pos.HalfmoveClock() >= 100 {
		pos.SetState(FiftyMoveRule)
		return nil
	}
	if HasInsufficientMaterial(pos) {
		pos.SetState(InsufficientMaterial)
		return nil
	}

	us := pos.SideToMove()
	kingSq := pos.KingSquare(us)
	inCheck := IsSquareAttacked(pos, kingSq, us.Other())

	var pins map[Square]Bitboard
	if !inCheck {
		pins = pinLines(pos, us)
	}

	pseudo := PseudoLegal(pos)
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		if !inCheck && m.From() != kingSq && !isEnPassant(pos, m) {
			if allowed, isPinned := pins[m.From()]; isPinned && !allowed.Has(m.To()) {
				continue
			}
			legal = append(legal, m)
			continue
		}
		if verifyLegal(pos, m, us, kingSq) {
			legal = append(legal, m)
		}
	}

	switch {
	case len(legal) > 0:
		pos.SetState(Play)
	case inCheck:
		pos.SetState(Checkmate)
	default:
		pos.SetState(Stalemate)
	}
	return legal
}

// GenerateCaptures returns only legal capturing moves (including
// en-passant and capture-promotions), for quiescence search.
func GenerateCaptures(pos *position.Position) []Move {
	all := GenerateLegal(pos)
	caps := make([]Move, 0, len(all))
	enemy := pos.Occupied(pos.SideToMove().Other())
	for _, m := range all {
		if m.To().Bb()&enemy != 0 || isEnPassant(pos, m) {
			caps = append(caps, m)
		}
	}
	return caps
}

// IsLegal reports whether m is a legal move in pos, returning the fully
// resolved move word (with the castling flag the generator inferred) on
// success. Matching uses Move.Equal (origin, target and promotion piece),
// so a promotion request matches only the generated move with the same
// promotion piece.
func IsLegal(pos *position.Position, m Move) (Move, bool) {
	for _, lm := range GenerateLegal(pos) {
		if lm.Equal(m) {
			return lm, true
		}
	}
	return MoveNone, false
}

func isEnPassant(pos *position.Position, m Move) bool {
	ep := pos.EnPassantTarget()
	if ep == SquareNone || m.To() != ep {
		return false
	}
	pc := pos.PieceAt(m.From())
	return pc.Type == Pawn
}

func verifyLegal(pos *position.Position, m Move, us Color, kingSqBefore Square) bool {
	pos.Make(m)
	ksq := kingSqBefore
	if m.From() == kingSqBefore {
		ksq = m.To()
	}
	ok := !IsSquareAttacked(pos, ksq, us.Other())
	pos.Undo()
	return ok
}
