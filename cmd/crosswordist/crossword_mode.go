package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/karnobh/crosswordist/grid"
	"github.com/karnobh/crosswordist/internal/testutil"
	"github.com/karnobh/crosswordist/solver"
	"github.com/karnobh/crosswordist/svgwriter"
	"github.com/karnobh/crosswordist/wordindex"
)

func symmetryFromFlag(s string) grid.Symmetry {
	switch s {
	case symmetryFourWay:
		return grid.SymmetryFourWay
	case symmetryDiag:
		return grid.SymmetryDiagonal
	default:
		return grid.SymmetryNone
	}
}

var resultNames = map[solver.Result]string{
	solver.Found:      "Found",
	solver.NoSolution: "Does not exist",
	solver.TimedOut:   "Timed Out",
}

// runCrosswordMode loads cfg.index, then loops cfg.numberOfCrosswords times:
// generate a random grid, build its slot graph, solve it, write it out as an
// SVG. Mirrors cli_app.py's crossword_mode control flow.
func runCrosswordMode(cfg config, log *slog.Logger) error {
	in, err := os.Open(cfg.index)
	if err != nil {
		return fmt.Errorf("opening index file: %w", err)
	}
	defer in.Close()

	wi, err := wordindex.Load(in, wordindex.WithLogger(log))
	if err != nil {
		return fmt.Errorf("loading index: %w", err)
	}

	if err := os.MkdirAll(cfg.outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	rng := testutil.NewRand(int(time.Now().UnixNano()))
	gridTimeout := time.Duration(cfg.gridGenerationTimeoutSec * float64(time.Second))
	crosswordTimeout := time.Duration(cfg.crosswordTimeoutSec * float64(time.Second))
	symmetry := symmetryFromFlag(cfg.gridSymmetry)

	digits := len(strconv.Itoa(cfg.numberOfCrosswords))
	found := 0
	var totalFoundDuration time.Duration

	for num := 1; num <= cfg.numberOfCrosswords; num++ {
		log.Debug("generating crossword", "number", num)

		g, err := grid.GenerateRandom(grid.GenerateConfig{
			Size:        cfg.gridSize,
			BlackRatio:  cfg.gridUnusedPercentage / 100.0,
			Symmetry:    symmetry,
			MinWordSize: cfg.gridMinWordLength,
			AllChecked:  true,
			Timeout:     gridTimeout,
			Rand:        rng,
		})
		if err != nil {
			return fmt.Errorf("generating grid %d: %w", num, err)
		}
		layout := grid.BuildLayout(g)

		t0 := time.Now()
		res, err := solver.Solve(wi, layout, crosswordTimeout, rng)
		if err != nil {
			return fmt.Errorf("solving grid %d: %w", num, err)
		}
		elapsed := time.Since(t0)
		if res == solver.Found {
			found++
			totalFoundDuration += elapsed
		}
		log.Debug("solved crossword",
			"number", num,
			"result", resultNames[res],
			"elapsed", elapsed,
			"found_ratio", float64(found)/float64(num),
		)

		fileName := fmt.Sprintf("crossword_%0*d.svg", digits, num)
		out, err := os.Create(filepath.Join(cfg.outputDir, fileName))
		if err != nil {
			return fmt.Errorf("creating svg file for grid %d: %w", num, err)
		}
		err = svgwriter.Write(out, layout, cfg.picturePixels)
		closeErr := out.Close()
		if err != nil {
			return fmt.Errorf("writing svg file for grid %d: %w", num, err)
		}
		if closeErr != nil {
			return fmt.Errorf("closing svg file for grid %d: %w", num, closeErr)
		}
	}

	log.Info("crossword generation complete", "found", found, "total", cfg.numberOfCrosswords)
	if found > 0 {
		log.Info("average solve time for found solutions", "seconds", (totalFoundDuration / time.Duration(found)).Seconds())
	}
	return nil
}
