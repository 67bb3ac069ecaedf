// Command rlebench compares bitrle's compression ratio against general-
// purpose byte-stream compressors, either on real per-length-index bitmap
// files dumped alongside -files, or on a synthetic sparse bitmap if none are
// given.
//
// Example usage:
//	$ rlebench -files bitmap1.bin,bitmap2.bin
//	$ rlebench
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/dsnet/golib/strconv"
	"github.com/klauspost/cpuid"

	"github.com/karnobh/crosswordist/internal/rlebench"
)

func main() {
	files := flag.String("files", "", "Comma-separated list of bitmap files to benchmark. Default: one synthetic sparse bitmap.")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	log.Info("cpu detected", "brand", cpuid.CPU.BrandName, "logical_cores", cpuid.CPU.LogicalCores)

	inputs, err := loadInputs(*files)
	if err != nil {
		fmt.Fprintln(os.Stderr, "rlebench: "+err.Error())
		os.Exit(1)
	}

	var codecs []string
	for name := range rlebench.Codecs {
		codecs = append(codecs, name)
	}
	sort.Strings(codecs)

	for name, data := range inputs {
		fmt.Printf("BENCHMARK: %s (%d bytes)\n", name, len(data))
		for _, codec := range codecs {
			res, err := rlebench.BenchmarkRatio(codec, data)
			if err != nil {
				fmt.Printf("\t%-8s SKIP: %v\n", codec, err)
				continue
			}
			raw := strconv.FormatPrefix(float64(res.RawSize), strconv.Base1024, 2)
			comp := strconv.FormatPrefix(float64(res.CompSize), strconv.Base1024, 2)
			fmt.Printf("\t%-8s %8s -> %8s  ratio %.2fx\n", codec, raw, comp, res.Ratio)
		}
	}
}

// loadInputs reads each comma-separated path in csv, or returns one
// synthetic sparse bitmap (the density a PerLengthIndex's position/letter
// bitmaps actually exhibit) when csv is empty.
func loadInputs(csv string) (map[string][]byte, error) {
	out := make(map[string][]byte)
	if strings.TrimSpace(csv) == "" {
		out["synthetic"] = syntheticBitmap()
		return out, nil
	}
	for _, path := range strings.Split(csv, ",") {
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
		out[path] = data
	}
	return out, nil
}

// syntheticBitmap approximates the sparsity of a real PerLengthIndex bitmap:
// long runs of zero bytes with occasional set bits.
func syntheticBitmap() []byte {
	b := make([]byte, 1<<16)
	for i := 0; i < len(b); i += 131 {
		b[i] = 0x08
	}
	return b
}
