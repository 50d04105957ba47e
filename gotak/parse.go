// Copyright (C) 2016 Mikael Berthe <mikael@lilotux.net>. All rights reserved.
// Use of this source code is governed by the MIT license,
// which can be found in the LICENSE file.

// gotak is a CLI wrapper for the takuzu package.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/binairo-go/takuzu"
)

// ParseError reports a malformed input file, naming the offending line
// when known. Parsing is a CLI-layer concern (spec §6/§7): the core
// package never sees raw text.
type ParseError struct {
	Line int // 1-based significant-line number, 0 if not line-specific
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error at line %d: %s", e.Line, e.Msg)
	}
	return fmt.Sprintf("parse error: %s", e.Msg)
}

// significantLines strips comment lines (leading '#') and blank lines,
// trims surrounding whitespace from what remains and removes every space
// and tab inside it.
func significantLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		raw := sc.Text()
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		stripped := strings.Map(func(r rune) rune {
			if r == ' ' || r == '\t' {
				return -1
			}
			return r
		}, trimmed)
		lines = append(lines, stripped)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading board file")
	}
	return lines, nil
}

// ParseBoard reads a text grid (see spec §6) from r and builds the
// Board it describes. The first significant line fixes the board size;
// the file must contain exactly that many significant lines in all (the
// first one included), each exactly size characters from {'0', '1', '_'}.
func ParseBoard(r io.Reader) (*takuzu.Board, error) {
	lines, err := significantLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, &ParseError{Msg: "empty board file"}
	}

	size := len(lines[0])
	if !takuzu.CheckSize(size) {
		return nil, &ParseError{Line: 1, Msg: fmt.Sprintf("invalid board size %d", size)}
	}
	if len(lines) != size {
		return nil, &ParseError{Msg: fmt.Sprintf("expected %d rows, got %d", size, len(lines))}
	}

	b, err := takuzu.Allocate(size)
	if err != nil {
		return nil, errors.Wrap(err, "allocating board")
	}

	for i, l := range lines {
		if len(l) != size {
			return nil, &ParseError{Line: i + 1, Msg: fmt.Sprintf("expected %d columns, got %d", size, len(l))}
		}
		for j := 0; j < size; j++ {
			c := l[j]
			if !takuzu.CheckChar(c) {
				return nil, &ParseError{Line: i + 1, Msg: fmt.Sprintf("invalid character %q", c)}
			}
			var v takuzu.Value
			switch c {
			case '0':
				v = takuzu.Zero
			case '1':
				v = takuzu.One
			default:
				v = takuzu.Empty
			}
			if err := b.Set(i, j, v); err != nil {
				return nil, errors.Wrapf(err, "setting (%d,%d)", i, j)
			}
		}
	}

	return b, nil
}
