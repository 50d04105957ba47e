// Copyright (C) 2016 Mikael Berthe <mikael@lilotux.net>. All rights reserved.
// Use of this source code is governed by the MIT license,
// which can be found in the LICENSE file.

// gotak is a CLI wrapper for the takuzu package.

package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/pflag"

	"github.com/binairo-go/takuzu"
)

var verbosity int

func verbosef(level int, format string, args ...interface{}) {
	if verbosity < level {
		return
	}
	log.Print(color.CyanString(fmt.Sprintf(format, args...)))
}

// openSink opens the file named by path for writing board output, or
// returns os.Stdout if path is empty.
func openSink(path string) (*os.File, error) {
	if path == "" {
		return os.Stdout, nil
	}
	return os.Create(path)
}

func main() {
	all := pflag.Bool("all", false, "Look for all possible solutions")
	generateSize := pflag.Uint("generate", 0, "Generate a new board of the given size")
	unique := pflag.Bool("unique", false, "Require the generated board to have a unique solution")
	output := pflag.String("output", "", "Write the board to FILE instead of stdout (.pdf produces a PDF grid)")
	verbose := pflag.CountP("verbose", "v", "Increase verbosity (may be repeated)")
	seed := pflag.Int64("x-seed", 0, "[Advanced] PRNG seed for --generate (0 picks a random seed)")

	pflag.Parse()
	verbosity = *verbose

	var board *takuzu.Board

	switch {
	case *generateSize > 0:
		var err error
		if *seed != 0 {
			board, err = takuzu.GenerateSeeded(int(*generateSize), *unique, *seed)
		} else {
			board, err = takuzu.Generate(int(*generateSize), *unique)
		}
		if err != nil {
			log.Println("Error:", err)
			os.Exit(1)
		}
		verbosef(1, "generated a %dx%d board (unique=%v)", board.Size(), board.Size(), *unique)

	case pflag.NArg() > 0:
		f, err := os.Open(pflag.Arg(0))
		if err != nil {
			log.Println("Error:", err)
			os.Exit(1)
		}
		board, err = ParseBoard(f)
		f.Close()
		if err != nil {
			log.Println("Error:", err)
			os.Exit(1)
		}

	default:
		fmt.Fprintln(os.Stderr, "Usage: gotak [flags] [board-file]")
		pflag.PrintDefaults()
		os.Exit(1)
	}

	sinkPath := *output
	if strings.HasSuffix(sinkPath, ".pdf") {
		if err := boardToPDF(board, sinkPath); err != nil {
			log.Println("Error:", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	sink, err := openSink(sinkPath)
	if err != nil {
		log.Println("Error:", err)
		os.Exit(1)
	}
	if sink != os.Stdout {
		defer sink.Close()
	}

	if *generateSize > 0 {
		if err := board.Print(sink); err != nil {
			log.Println("Error:", err)
			os.Exit(1)
		}
		fmt.Fprintln(sink)
		os.Exit(0)
	}

	mode := takuzu.ModeFirst
	if *all {
		mode = takuzu.ModeAll
	}

	counters := &takuzu.Counters{}
	solution, err := takuzu.Solve(board, sink, mode, counters)
	if err != nil {
		log.Println("Error:", err)
		os.Exit(1)
	}

	verbosef(1, "%d solution(s), %d backtrack(s)", counters.Solutions, counters.Backtracks)

	if *all {
		fmt.Fprintln(os.Stdout, "Number of solutions:", counters.Solutions)
		if counters.Solutions == 0 {
			os.Exit(2)
		}
		os.Exit(0)
	}

	if solution == nil {
		fmt.Fprintln(os.Stdout, "Number of solutions: 0")
		os.Exit(2)
	}

	if err := solution.Print(sink); err != nil {
		log.Println("Error:", err)
		os.Exit(1)
	}
	fmt.Fprintln(sink)
	os.Exit(0)
}
