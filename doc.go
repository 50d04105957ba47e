// Copyright (C) 2016 Mikael Berthe <mikael@lilotux.net>. All rights reserved.
// Use of this source code is governed by the MIT license,
// which can be found in the LICENSE file.

// Package takuzu implements the bit-packed board representation and the
// constraint propagation / backtracking engine used to solve and generate
// Takuzu (a.k.a. Binairo) puzzles on square boards of size 4, 8, 16, 32 or
// 64.
//
// The package is deliberately silent on command-line parsing, the text
// grid file format, and program exit codes: those live in the gotak
// command that wraps this package.
package takuzu
