// Copyright (C) 2016 Mikael Berthe <mikael@lilotux.net>. All rights reserved.
// Use of this source code is governed by the MIT license,
// which can be found in the LICENSE file.

package takuzu

// This file contains the recursive solver: propagate-then-branch search,
// in "first solution" and "enumerate all" modes. The search is
// single-threaded by design (see spec.md Non-goals): unlike the teacher's
// concurrent/"Schrödinger" resolution in its historical solve.go, this
// solver follows the sequential recursive shape of original_source's
// grid_solver.

import (
	"io"

	"github.com/pkg/errors"
)

// Mode selects whether Solve stops at the first solution or enumerates
// every distinct completion.
type Mode int

// The two solver modes.
const (
	// ModeFirst returns as soon as any solution is found.
	ModeFirst Mode = iota
	// ModeAll never returns early; Counters.Solutions ends up holding the
	// exact number of distinct completions.
	ModeAll
)

// Counters accumulates statistics across one logical Solve invocation. It
// is owned by the caller; Solve resets it at the start of each top-level
// call.
type Counters struct {
	Solutions  int
	Backtracks int
	Solved     bool
}

// Reset zeroes the counters, ready for a new search.
func (c *Counters) Reset() {
	*c = Counters{}
}

// Solve runs the solver on board b, following mode. b is consumed: the
// search mutates it in place as it explores branches, the way
// original_source's grid_solver mutates its grid argument. In ModeFirst
// it returns the first solution found (or nil if the puzzle has none). In
// ModeAll it emits every solution to sink (if non-nil, in the text format
// from board.go's Print), always returns a nil board, and leaves the
// exact count in Counters.Solutions. Counters is reset at the start of
// the call.
func Solve(b *Board, sink io.Writer, mode Mode, counters *Counters) (*Board, error) {
	if counters == nil {
		counters = &Counters{}
	}
	counters.Reset()

	solution, err := solveRecurse(b, mode, sink, counters)
	if err != nil {
		return nil, err
	}
	counters.Solved = solution != nil
	return solution, nil
}

// solveRecurse implements the recursive contract from spec.md §4.5:
//  1. propagate; if it fails, this branch is unsolved.
//  2. if full, record a solution; ModeAll keeps exploring siblings,
//     ModeFirst returns immediately.
//  3. otherwise take a choice from the oracle, recurse on a clone with
//     the chosen value, then (if that didn't end the search) recurse on
//     the original with the opposite value.
//  4. if neither branch yielded a solution, count a backtrack.
func solveRecurse(b *Board, mode Mode, sink io.Writer, counters *Counters) (*Board, error) {
	if !Propagate(b) {
		return nil, nil
	}

	if b.IsFull() {
		counters.Solutions++
		if mode == ModeAll {
			if sink != nil {
				if err := b.Print(sink); err != nil {
					return nil, err
				}
				if _, err := io.WriteString(sink, "\n"); err != nil {
					return nil, err
				}
			}
			return nil, nil
		}
		return b, nil
	}

	choice, err := ChooseBranch(b)
	if err != nil {
		if errors.Cause(err) == ErrBoardFull {
			// IsFull said otherwise; should not happen, but treat as a
			// dead end rather than propagating an internal error.
			return nil, nil
		}
		return nil, err
	}

	branch := b.Clone()
	if err := branch.Set(choice.Row, choice.Col, choice.Value); err != nil {
		return nil, errors.Wrap(err, "applying choice")
	}
	if sol, err := solveRecurse(branch, mode, sink, counters); err != nil {
		return nil, err
	} else if sol != nil {
		return sol, nil
	}

	if err := b.Set(choice.Row, choice.Col, other(choice.Value)); err != nil {
		return nil, errors.Wrap(err, "applying opposite choice")
	}
	sol, err := solveRecurse(b, mode, sink, counters)
	if err != nil {
		return nil, err
	}
	if sol == nil {
		counters.Backtracks++
	}
	return sol, nil
}
