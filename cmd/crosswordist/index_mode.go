package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/karnobh/crosswordist/internal/wordsrc"
	"github.com/karnobh/crosswordist/wordindex"
)

// runIndexMode streams cfg.wordsFile through wordsrc, builds a WordIndex,
// and dumps it to cfg.index.
func runIndexMode(cfg config, log *slog.Logger) error {
	in, err := os.Open(cfg.wordsFile)
	if err != nil {
		return fmt.Errorf("opening words file: %w", err)
	}
	defer in.Close()

	wi := wordindex.NewWordIndex(wordindex.WithLogger(log))
	var total int
	err = wordsrc.ScanWords(in, func(word string) error {
		total++
		return wi.AddWord(word)
	})
	if err != nil {
		return fmt.Errorf("reading words file: %w", err)
	}
	log.Info("scanned corpus", "lines", total)

	if err := wi.MakeIndex(); err != nil {
		return fmt.Errorf("building index: %w", err)
	}

	out, err := os.Create(cfg.index)
	if err != nil {
		return fmt.Errorf("creating index file: %w", err)
	}
	defer out.Close()
	if err := wi.Dump(out); err != nil {
		return fmt.Errorf("writing index file: %w", err)
	}
	return nil
}
