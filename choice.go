// Copyright (C) 2016 Mikael Berthe <mikael@lilotux.net>. All rights reserved.
// Use of this source code is governed by the MIT license,
// which can be found in the LICENSE file.

package takuzu

// This file contains the choice oracle: picking the next cell the solver
// should branch on, and the trial value to try there.

import (
	"math/bits"

	"github.com/pkg/errors"
)

// Choice names an empty cell and the value the solver should try there
// first; the opposite value is explored on backtrack.
type Choice struct {
	Row, Col int
	Value    Value
}

// ErrBoardFull is returned by ChooseBranch when the board has no empty
// cell left to branch on.
var ErrBoardFull = errors.New("takuzu: board is full, nothing to choose")

// ChooseBranch selects the line (row or column) that is most filled but
// not yet full, breaking ties toward rows and then lower indices; within
// that line it picks an empty position by repeatedly eroding the
// empty-position mask until one more erosion step would wipe it out, then
// taking the lowest surviving bit (see mostIsolatedEmptyBit). The trial
// value is the parity of the chosen bit index.
func ChooseBranch(b *Board) (Choice, error) {
	bestPopcount := -1
	bestIsRow := true
	bestIdx := -1

	consider := func(isRow bool, idx int, l line) {
		if l.isFull(b.size) {
			return
		}
		pc := bits.OnesCount64(l.ones | l.zeros)
		if pc > bestPopcount {
			bestPopcount = pc
			bestIsRow = isRow
			bestIdx = idx
		}
	}

	for i := 0; i < b.size; i++ {
		consider(true, i, b.rows[i])
	}
	for j := 0; j < b.size; j++ {
		consider(false, j, b.cols[j])
	}

	if bestIdx == -1 {
		return Choice{}, ErrBoardFull
	}

	var l line
	if bestIsRow {
		l = b.rows[bestIdx]
	} else {
		l = b.cols[bestIdx]
	}

	pos := mostIsolatedEmptyBit(l, b.size)

	choice := Choice{Value: Value(pos % 2)}
	if bestIsRow {
		choice.Row, choice.Col = bestIdx, pos
	} else {
		choice.Row, choice.Col = pos, bestIdx
	}
	return choice, nil
}

// mostIsolatedEmptyBit erodes the empty-position mask of l with
// E <- E & (E>>1) until one further erosion step would eliminate every
// bit, then returns the lowest-index bit still set. That bit is the first
// cell of the longest run of adjacent empty cells (the lowest such run on a
// tie); an isolated empty cell is returned only when no two empty cells are
// adjacent. Fragmented masks need no special case (see spec's open
// question on the erosion loop's termination condition).
func mostIsolatedEmptyBit(l line, size int) int {
	e := fullMask(size) &^ (l.ones | l.zeros)
	for {
		eroded := e & (e >> 1)
		if eroded == 0 {
			break
		}
		e = eroded
	}
	for p := 0; p < size; p++ {
		if e&(uint64(1)<<uint(p)) != 0 {
			return p
		}
	}
	return -1 // unreachable: l is not full, so e is never zero here
}
