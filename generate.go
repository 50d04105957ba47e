// Copyright (C) 2016 Mikael Berthe <mikael@lilotux.net>. All rights reserved.
// Use of this source code is governed by the MIT license,
// which can be found in the LICENSE file.

package takuzu

// This file contains the board generator: two strategies for building a
// full, valid board (outer-ring seed + solve, and quadrant assembly), and
// the cell-removal loop that turns a full board into a puzzle, optionally
// preserving solution uniqueness. See SPEC_FULL.md for how these map onto
// original_source's grid_generate_1/grid_assemble.

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
)

// fillRatio is the fraction of cells that remain as clues after removal
// (spec.md's open question: this repo picks 0.3, the value closer to
// original_source's incremental-seeding constant).
const fillRatio = 0.3

// globalRand is the single process-wide PRNG the generator draws from,
// seeded once at program start, as required by spec.md §5.
var globalRand = rand.New(rand.NewSource(time.Now().UTC().UnixNano()))

// Generate builds a new, randomly filled Takuzu board of the given size,
// then erases cells down to the target fill ratio. When unique is true,
// every erased cell is checked (via the solver, in ModeAll) to still
// leave exactly one completion.
func Generate(size int, unique bool) (*Board, error) {
	return generate(globalRand, size, unique)
}

// GenerateSeeded is like Generate but draws from a PRNG seeded with seed,
// for reproducible tests.
func GenerateSeeded(size int, unique bool, seed int64) (*Board, error) {
	return generate(rand.New(rand.NewSource(seed)), size, unique)
}

// maxGenerateAttempts bounds the retry loops in generateOuterRing and
// generateQuadrants, matching original_source's grid_generate_2 retry cap
// ("while (loop++ < 10000)" in src/takuzu.c). Past this many failed
// attempts a strategy gives up rather than spinning forever.
const maxGenerateAttempts = 10000

// generate dispatches to the strategy named by spec.md §4.6 (outer-ring
// seed at size 4, quadrant assembly above it); both strategies already
// retry internally up to maxGenerateAttempts times and report
// ErrGeneratorGaveUp if they exhaust that budget without producing a
// valid board.
func generate(rng *rand.Rand, size int, unique bool) (*Board, error) {
	if !CheckSize(size) {
		return nil, errSize(size)
	}

	var b *Board
	var err error
	if size == 4 {
		b, err = generateOuterRing(rng, 4)
	} else {
		b, err = generateQuadrants(rng, size)
	}
	if err != nil {
		return nil, err
	}
	if !b.IsValid() {
		return nil, ErrGeneratorGaveUp
	}

	removeCells(rng, b, unique)
	return b, nil
}

// generateOuterRing is the first generation strategy: seed the four 2x2
// corners with a random Takuzu-legal pattern, fill the rest of the border
// pair by pair, and (for N > 4) call the solver to complete the interior.
// It retries from scratch whenever the seed turns out inconsistent, up to
// maxGenerateAttempts times before giving up with ErrGeneratorGaveUp.
func generateOuterRing(rng *rand.Rand, size int) (*Board, error) {
	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		b, err := Allocate(size)
		if err != nil {
			return nil, err
		}

		fillCorners(rng, b)
		fillBorderPairs(rng, b)

		if !b.IsConsistent() {
			continue
		}

		if size > 4 {
			counters := &Counters{}
			sol, err := Solve(b, nil, ModeFirst, counters)
			if err != nil {
				return nil, err
			}
			if sol == nil {
				continue
			}
			b = sol
		}

		return b, nil
	}
	return nil, ErrGeneratorGaveUp
}

// corner2x2 is one of the two Takuzu-legal fillings of a 2x2 block.
var corner2x2 = [2][2][2]Value{
	{{Zero, One}, {One, Zero}},
	{{One, Zero}, {Zero, One}},
}

// fillCorners seeds each of the board's four 2x2 corners with a randomly
// chosen legal pattern.
func fillCorners(rng *rand.Rand, b *Board) {
	size := b.size
	corners := [4][2]int{
		{0, 0},
		{0, size - 2},
		{size - 2, 0},
		{size - 2, size - 2},
	}
	for _, c := range corners {
		r0, c0 := c[0], c[1]
		pattern := corner2x2[rng.Intn(2)]
		for dr := 0; dr < 2; dr++ {
			for dc := 0; dc < 2; dc++ {
				_ = b.Set(r0+dr, c0+dc, pattern[dr][dc])
			}
		}
	}
}

// fillBorderPairs fills the remaining border cells (the parts of row 0,
// row size-1, column 0 and column size-1 not already covered by a
// corner), two cells at a time: a random value and its complement, or the
// reverse if the forward choice would create a consistency violation.
func fillBorderPairs(rng *rand.Rand, b *Board) {
	size := b.size
	if size <= 4 {
		return // corners already cover the whole board
	}

	setPair := func(set func(pos int, v Value), check func() error, lo, hi int) {
		for p := lo; p < hi; p += 2 {
			v := Value(rng.Intn(2))
			set(p, v)
			set(p+1, other(v))
			if check() != nil {
				set(p, other(v))
				set(p+1, v)
			}
		}
	}

	lo, hi := 2, size-2

	setPair(func(p int, v Value) { _ = b.Set(0, p, v) }, func() error { return b.CheckLine(0) }, lo, hi)
	setPair(func(p int, v Value) { _ = b.Set(size-1, p, v) }, func() error { return b.CheckLine(size - 1) }, lo, hi)
	setPair(func(p int, v Value) { _ = b.Set(p, 0, v) }, func() error { return b.CheckColumn(0) }, lo, hi)
	setPair(func(p int, v Value) { _ = b.Set(p, size-1, v) }, func() error { return b.CheckColumn(size - 1) }, lo, hi)
}

// generateQuadrants is the second generation strategy: paste four
// independently generated N/2 x N/2 boards into the four quadrants, only
// accepting the result if the quadrant boundaries stay consistent. For
// N == 8 the quadrants come from generateOuterRing; for N > 8 it recurses
// on itself, matching original_source's grid_assemble.
func generateQuadrants(rng *rand.Rand, size int) (*Board, error) {
	half := size / 2
	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		var subs [4]*Board
		var err error
		for i := 0; i < 4; i++ {
			if size == 8 {
				subs[i], err = generateOuterRing(rng, half)
			} else {
				subs[i], err = generateQuadrants(rng, half)
			}
			if err != nil {
				return nil, err
			}
		}

		b, err := Allocate(size)
		if err != nil {
			return nil, err
		}
		offsets := [4][2]int{{0, 0}, {0, half}, {half, 0}, {half, half}}
		for q, off := range offsets {
			for i := 0; i < half; i++ {
				for j := 0; j < half; j++ {
					v, _ := subs[q].Get(i, j)
					_ = b.Set(off[0]+i, off[1]+j, v)
				}
			}
		}

		if b.IsConsistent() {
			return b, nil
		}
	}
	return nil, ErrGeneratorGaveUp
}

// removeCells erases cells from a full, valid board down to the target
// fill ratio. In the non-unique mode cells are removed unconditionally;
// in the unique mode each candidate removal is first verified, via the
// solver in ModeAll, to still leave exactly one completion, and is
// skipped otherwise.
func removeCells(rng *rand.Rand, b *Board, unique bool) {
	size := b.size
	n := size * size
	perm := rng.Perm(n)

	removalTarget := int(float64(n) * (1 - fillRatio)) // §4.6: N² · (1 − ρ), rounded down

	if !unique {
		for i := 0; i < removalTarget && i < n; i++ {
			idx := perm[i]
			_ = b.Set(idx/size, idx%size, Empty)
		}
		return
	}

	removed := 0
	for _, idx := range perm {
		if removed >= removalTarget {
			break
		}
		row, col := idx/size, idx%size

		candidate := b.Clone()
		_ = candidate.Set(row, col, Empty)

		counters := &Counters{}
		if _, err := Solve(candidate, nil, ModeAll, counters); err != nil {
			continue
		}
		if counters.Solutions != 1 {
			continue
		}

		_ = b.Set(row, col, Empty)
		removed++
	}
}

// ErrGeneratorGaveUp is returned by Generate/GenerateSeeded (and by
// generateOuterRing/generateQuadrants directly) when a strategy still
// hasn't produced a valid board after maxGenerateAttempts retries.
var ErrGeneratorGaveUp = errors.New("takuzu: could not generate a board of this size")
