// Copyright (C) 2016 Mikael Berthe <mikael@lilotux.net>. All rights reserved.
// Use of this source code is governed by the MIT license,
// which can be found in the LICENSE file.

package takuzu

// This file contains the heuristic propagator: three deduction rules,
// each a constant-width bitwise derivation over a line's masks, iterated
// to a fixed point before the solver falls back to branching.

import "math/bits"

// ruleFunc derives, from the current state of a line, the positions that
// must become Zero and the positions that must become One. Both returned
// masks only ever name positions that are still empty in l.
type ruleFunc func(l line, size int) (forceZero, forceOne uint64)

// maskFor returns the mask of positions already holding v.
func maskFor(l line, v Value) uint64 {
	if v == One {
		return l.ones
	}
	return l.zeros
}

// consecutivePairRule is the "consecutive-pair forbids flanks" rule: for
// every pair of adjacent equal values, the cells immediately outside the
// pair cannot hold the same value.
func consecutivePairRule(l line, size int) (forceZero, forceOne uint64) {
	empty := fullMask(size) &^ (l.ones | l.zeros)
	for _, v := range [2]Value{Zero, One} {
		a := maskFor(l, v)
		pairs := a & (a >> 1)
		for p := 0; p < size; p++ {
			if pairs&(uint64(1)<<uint(p)) == 0 {
				continue
			}
			flank := other(v)
			if p >= 1 && empty&(uint64(1)<<uint(p-1)) != 0 {
				setFlag(&forceZero, &forceOne, flank, p-1)
			}
			if p <= size-3 && empty&(uint64(1)<<uint(p+2)) != 0 {
				setFlag(&forceZero, &forceOne, flank, p+2)
			}
		}
	}
	return
}

// sandwichRule is the "sandwich fills middle" rule: if positions p and
// p+2 hold the same value, position p+1 cannot hold it.
func sandwichRule(l line, size int) (forceZero, forceOne uint64) {
	empty := fullMask(size) &^ (l.ones | l.zeros)
	for _, v := range [2]Value{Zero, One} {
		a := maskFor(l, v)
		sandwiched := a & (a >> 2)
		for p := 0; p < size; p++ {
			if sandwiched&(uint64(1)<<uint(p)) == 0 {
				continue
			}
			if empty&(uint64(1)<<uint(p+1)) != 0 {
				setFlag(&forceZero, &forceOne, other(v), p+1)
			}
		}
	}
	return
}

// halfCountRule is the "half-count fills rest" rule: once a line holds
// size/2 of one value, every remaining empty cell must hold the other.
func halfCountRule(l line, size int) (forceZero, forceOne uint64) {
	half := size / 2
	empty := fullMask(size) &^ (l.ones | l.zeros)
	for _, v := range [2]Value{Zero, One} {
		a := maskFor(l, v)
		b := maskFor(l, other(v))
		if bits.OnesCount64(a) == half && bits.OnesCount64(b) < half {
			for p := 0; p < size; p++ {
				if empty&(uint64(1)<<uint(p)) != 0 {
					setFlag(&forceZero, &forceOne, other(v), p)
				}
			}
		}
	}
	return
}

func setFlag(forceZero, forceOne *uint64, v Value, pos int) {
	if v == Zero {
		*forceZero |= uint64(1) << uint(pos)
	} else {
		*forceOne |= uint64(1) << uint(pos)
	}
}

var propagationRules = [...]ruleFunc{consecutivePairRule, sandwichRule, halfCountRule}

// applyRule runs rule over every row and every column, writing any forced
// cell it derives, and reports whether it changed the board.
func applyRule(b *Board, rule ruleFunc) bool {
	changed := false
	for i := 0; i < b.size; i++ {
		fz, fo := rule(b.rows[i], b.size)
		changed = writeForced(b, true, i, fz, Zero) || changed
		changed = writeForced(b, true, i, fo, One) || changed
	}
	for j := 0; j < b.size; j++ {
		fz, fo := rule(b.cols[j], b.size)
		changed = writeForced(b, false, j, fz, Zero) || changed
		changed = writeForced(b, false, j, fo, One) || changed
	}
	return changed
}

// writeForced sets every still-empty bit of mask on the line identified
// by (isRow, idx) to v. It returns whether it wrote anything.
func writeForced(b *Board, isRow bool, idx int, mask uint64, v Value) bool {
	changed := false
	for p := 0; p < b.size; p++ {
		if mask&(uint64(1)<<uint(p)) == 0 {
			continue
		}
		var row, col int
		if isRow {
			row, col = idx, p
		} else {
			row, col = p, idx
		}
		cur, _ := b.Get(row, col)
		if cur != Empty {
			continue
		}
		_ = b.Set(row, col, v)
		changed = true
	}
	return changed
}

// runRuleToFixedPoint re-applies rule until it stops changing the board,
// or the board becomes inconsistent (in which case it returns false
// immediately: the caller must stop propagating).
func runRuleToFixedPoint(b *Board, rule ruleFunc) bool {
	for {
		if !applyRule(b, rule) {
			return true
		}
		if !b.IsConsistent() {
			return false
		}
	}
}

// Propagate runs the fixed-point loop over the three heuristics in order
// (consecutive-pair, sandwich, half-count), each re-entered until it
// reports no change, repeating the cycle until a full outer pass makes no
// change or the board becomes valid. It reports false ("failed") if any
// rule drove the board into an inconsistent state, true ("stable")
// otherwise.
func Propagate(b *Board) bool {
	for {
		outerChanged := false
		for _, rule := range propagationRules {
			before := b.Clone()
			if !runRuleToFixedPoint(b, rule) {
				return false
			}
			if !linesEqual(before, b) {
				outerChanged = true
			}
		}
		if !outerChanged || b.IsValid() {
			break
		}
	}
	return true
}

// linesEqual reports whether a and b hold identical content. Boards are
// assumed to have the same size.
func linesEqual(a, b *Board) bool {
	for i := range a.rows {
		if a.rows[i] != b.rows[i] {
			return false
		}
	}
	return true
}
