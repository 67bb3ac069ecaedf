// Command crosswordist builds a word-length index from a dictionary file, or
// generates randomly-filled crossword grids from a previously built index.
//
// Example usage:
//	$ crosswordist -mode index -index words.json -words-file corpus.txt
//	$ crosswordist -mode crossword -index words.json -output-dir out
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
)

const progName = "crosswordist"

func main() {
	cfg := parseFlags()
	if err := cfg.validate(); err != nil {
		fmt.Fprintln(os.Stderr, progName+": "+err.Error())
		os.Exit(1)
	}

	logLevel := slog.LevelWarn
	switch {
	case cfg.verbosity >= 2:
		logLevel = slog.LevelDebug
	case cfg.verbosity >= 1:
		logLevel = slog.LevelInfo
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	logCPUInfo(log)

	var err error
	switch cfg.mode {
	case modeIndex:
		err = runIndexMode(cfg, log)
	case modeCrossword:
		err = runCrosswordMode(cfg, log)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, progName+": "+err.Error())
		os.Exit(1)
	}
}

const (
	modeIndex     = "index"
	modeCrossword = "crossword"

	symmetryFourWay = "X"
	symmetryDiag    = "D"
	symmetryNone    = "NO"
)

// config holds every flag value, pre-validation. Field names mirror the
// original cli_app.py's App constructor parameters.
type config struct {
	mode                     string
	index                    string
	wordsFile                string
	gridSize                 int
	gridUnusedPercentage     float64
	gridSymmetry             string
	gridGenerationTimeoutSec float64
	gridMinWordLength        int
	crosswordTimeoutSec      float64
	outputDir                string
	numberOfCrosswords       int
	picturePixels            int
	verbosity                int
}

func parseFlags() config {
	var cfg config
	flag.StringVar(&cfg.mode, "mode", modeCrossword,
		fmt.Sprintf("Working mode: %q builds an index, %q generates crosswords.", modeIndex, modeCrossword))
	flag.StringVar(&cfg.index, "index", "", "Index file: output in index mode, input in crossword mode.")
	flag.StringVar(&cfg.wordsFile, "words-file", "", "Dictionary file, one upper-case word per line. Required in index mode.")
	flag.IntVar(&cfg.gridSize, "grid-size", 11, "Crossword grid side length, in [3,35].")
	flag.Float64Var(&cfg.gridUnusedPercentage, "grid-unused-percentage", 16.6, "Percentage of black (unused) cells, in [0,100).")
	flag.StringVar(&cfg.gridSymmetry, "grid-symmetry", symmetryDiag,
		fmt.Sprintf("Grid symmetry: %q (four-way rotation), %q (diagonal), %q (none).", symmetryFourWay, symmetryDiag, symmetryNone))
	flag.Float64Var(&cfg.gridGenerationTimeoutSec, "grid-generation-timeout-seconds", 3, "Timeout for generating the grid geometry.")
	flag.IntVar(&cfg.gridMinWordLength, "grid-min-word-length", 3, "Minimum run length the grid generator treats as a slot.")
	flag.Float64Var(&cfg.crosswordTimeoutSec, "crossword-generation-timeout-seconds", 15, "Timeout for solving a single grid.")
	flag.StringVar(&cfg.outputDir, "output-dir", "out", "Directory to write generated SVG files into.")
	flag.IntVar(&cfg.numberOfCrosswords, "number-of-crosswords", 100, "Number of crosswords to generate.")
	flag.IntVar(&cfg.picturePixels, "picture-pixels", 800, "Side length, in pixels, of each generated SVG.")
	flag.IntVar(&cfg.verbosity, "verbosity", 0, "Verbosity level: 0, 1, or 2.")
	flag.Parse()
	return cfg
}

func (c config) validate() error {
	if c.mode != modeIndex && c.mode != modeCrossword {
		return fmt.Errorf("mode %q is not one of %q, %q", c.mode, modeIndex, modeCrossword)
	}
	if c.mode == modeIndex && c.wordsFile == "" {
		return fmt.Errorf("-words-file is required in %q mode", modeIndex)
	}
	if c.mode == modeIndex {
		if fi, err := os.Stat(c.wordsFile); err != nil || fi.IsDir() {
			return fmt.Errorf("-words-file %q must be an existing file", c.wordsFile)
		}
	}
	if c.index == "" {
		return fmt.Errorf("-index is required")
	}
	if c.mode == modeCrossword {
		if fi, err := os.Stat(c.index); err != nil || fi.IsDir() {
			return fmt.Errorf("-index %q must be an existing file in %q mode", c.index, modeCrossword)
		}
	}
	if c.gridSize < 3 || c.gridSize > 35 {
		return fmt.Errorf("-grid-size %d must be in [3,35]", c.gridSize)
	}
	if c.gridUnusedPercentage < 0 || c.gridUnusedPercentage >= 100 {
		return fmt.Errorf("-grid-unused-percentage %g must be in [0,100)", c.gridUnusedPercentage)
	}
	switch c.gridSymmetry {
	case symmetryFourWay, symmetryDiag, symmetryNone:
	default:
		return fmt.Errorf("-grid-symmetry %q must be one of %q, %q, %q", c.gridSymmetry, symmetryFourWay, symmetryDiag, symmetryNone)
	}
	if c.gridGenerationTimeoutSec < 0 {
		return fmt.Errorf("-grid-generation-timeout-seconds cannot be negative")
	}
	if c.crosswordTimeoutSec < 0 {
		return fmt.Errorf("-crossword-generation-timeout-seconds cannot be negative")
	}
	if c.outputDir == "" {
		return fmt.Errorf("-output-dir cannot be empty")
	}
	if c.numberOfCrosswords < 1 {
		return fmt.Errorf("-number-of-crosswords must be a positive integer")
	}
	if c.picturePixels < 200 {
		return fmt.Errorf("-picture-pixels must be at least 200")
	}
	if c.verbosity < 0 || c.verbosity > 2 {
		return fmt.Errorf("-verbosity must be 0, 1, or 2")
	}
	return nil
}
