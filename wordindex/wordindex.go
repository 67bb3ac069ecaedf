// Package wordindex builds, serializes, and queries a dictionary index keyed
// by word length: for every accepted length, a PerLengthIndex holds the
// sorted word list and a compressed position/letter bitmap matrix, and
// WordIndex maps lengths to their PerLengthIndex. Lookup, count, and
// intersection-exists queries are answered through the bitrle package's bit
// enumeration (single-sequence for one constrained position, multi-sequence
// AND for several) rather than scanning the word list; an empty mapping
// matches every word of the length.
package wordindex

import (
	"log/slog"
	"sort"

	"github.com/dsnet/golib/bits"

	"github.com/karnobh/crosswordist/bitrle"
)

// LengthRange is a half-open interval [Start, Stop) of admissible word
// lengths. The zero value is invalid; use DefaultLengthRange or NewWordIndex.
type LengthRange struct {
	Start, Stop int
}

// DefaultLengthRange is the [3, 37) interval used when no range is given.
var DefaultLengthRange = LengthRange{Start: 3, Stop: 37}

// WordIndex maps word length to PerLengthIndex, restricted to an admissible
// length range and alphabet. Words outside either are silently discarded at
// add time, per §4.3.
type WordIndex struct {
	alphabet string
	lenRange LengthRange
	byLength map[int]*PerLengthIndex
	frozen   bool

	log *slog.Logger
}

// Option configures a WordIndex constructed by NewWordIndex.
type Option func(*WordIndex)

// WithAlphabet overrides the default A-Z alphabet.
func WithAlphabet(alphabet string) Option {
	return func(wi *WordIndex) { wi.alphabet = alphabet }
}

// WithLengthRange overrides the default [3,37) admissible length range.
func WithLengthRange(r LengthRange) Option {
	return func(wi *WordIndex) { wi.lenRange = r }
}

// WithLogger attaches a structured logger used for build diagnostics. A nil
// logger (the default) disables diagnostic logging.
func WithLogger(l *slog.Logger) Option {
	return func(wi *WordIndex) { wi.log = l }
}

// NewWordIndex returns an empty, unfrozen WordIndex.
func NewWordIndex(opts ...Option) *WordIndex {
	wi := &WordIndex{
		alphabet: DefaultAlphabet,
		lenRange: DefaultLengthRange,
		byLength: make(map[int]*PerLengthIndex),
	}
	for _, opt := range opts {
		opt(wi)
	}
	return wi
}

// AddWord routes w to its length's PerLengthIndex, creating one on first use.
// Words outside the length range are silently discarded (returning nil);
// words containing characters outside the alphabet are discarded by the
// underlying PerLengthIndex.AddWord.
func (wi *WordIndex) AddWord(w string) error {
	if wi.frozen {
		return ErrIndexFrozen
	}
	l := len(w)
	if l < wi.lenRange.Start || l >= wi.lenRange.Stop {
		return nil
	}
	idx, ok := wi.byLength[l]
	if !ok {
		idx = NewPerLengthIndex(l, wi.alphabet)
		wi.byLength[l] = idx
	}
	return idx.AddWord(w)
}

// MakeIndex finalizes every per-length index and freezes the WordIndex.
func (wi *WordIndex) MakeIndex() error {
	if wi.frozen {
		return ErrIndexFrozen
	}
	var totalWords, totalBits int
	for _, l := range wi.sortedLengths() {
		idx := wi.byLength[l]
		if err := idx.MakeIndex(); err != nil {
			return err
		}
		totalWords += idx.Count()
		if wi.log != nil {
			for p := 0; p < idx.length; p++ {
				for c := 0; c < len(wi.alphabet); c++ {
					if bm, err := idx.BitmapOnPosition(p, wi.alphabet[c]); err == nil {
						totalBits += bits.Count(bm)
					}
				}
			}
		}
	}
	wi.frozen = true
	if wi.log != nil {
		wi.log.Info("word index constructed",
			"lengths", len(wi.byLength),
			"words", totalWords,
			"set_bits_compressed_domain", totalBits,
		)
	}
	return nil
}

// WordIndexByLength returns the PerLengthIndex for length l, or nil if no
// word of that length was ever accepted.
func (wi *WordIndex) WordIndexByLength(l int) *PerLengthIndex {
	return wi.byLength[l]
}

// LengthRange reports the admissible word length interval.
func (wi *WordIndex) LengthRange() LengthRange { return wi.lenRange }

func (wi *WordIndex) sortedLengths() []int {
	ls := make([]int, 0, len(wi.byLength))
	for l := range wi.byLength {
		ls = append(ls, l)
	}
	sort.Ints(ls)
	return ls
}

// performLookup resolves mapping M against length L's index, returning the
// ascending enumerated indices and the backing PerLengthIndex. It returns
// (nil, nil, nil) when there is no index for that length (an empty result,
// not an error: the length simply has no words).
func (wi *WordIndex) performLookup(length int, mapping map[int]byte) ([]int, *PerLengthIndex, error) {
	if !wi.frozen {
		return nil, nil, ErrIndexNotReady
	}
	idx := wi.byLength[length]
	if idx == nil {
		return nil, nil, nil
	}
	if len(mapping) == 0 {
		out := make([]int, idx.Count())
		for i := range out {
			out[i] = i
		}
		return out, idx, nil
	}

	positions := make([]int, 0, len(mapping))
	for p := range mapping {
		positions = append(positions, p)
	}
	sort.Ints(positions)

	bitmaps := make([][]byte, 0, len(positions))
	for _, p := range positions {
		b, err := idx.BitmapOnPosition(p, mapping[p])
		if err != nil {
			return nil, nil, err
		}
		bitmaps = append(bitmaps, b)
	}

	var enumerated []int
	if len(bitmaps) == 1 {
		enumerated = bitrle.DecodedBitIndices(bitmaps[0])
	} else {
		var err error
		enumerated, err = bitrle.AndIndices(bitmaps...)
		if err != nil {
			return nil, nil, err
		}
	}
	return enumerated, idx, nil
}

// Lookup returns every word of length `length` whose letters agree with
// mapping, in sorted order, or nil if no word matches.
func (wi *WordIndex) Lookup(length int, mapping map[int]byte) ([]string, error) {
	enumerated, idx, err := wi.performLookup(length, mapping)
	if err != nil {
		return nil, err
	}
	if idx == nil || len(enumerated) == 0 {
		return nil, nil
	}
	out := make([]string, len(enumerated))
	for i, wordIdx := range enumerated {
		out[i] = idx.WordAt(wordIdx)
	}
	return out, nil
}

// CountOccurrences returns len(Lookup(length, mapping)) without allocating
// the intermediate word slice.
func (wi *WordIndex) CountOccurrences(length int, mapping map[int]byte) (int, error) {
	enumerated, _, err := wi.performLookup(length, mapping)
	if err != nil {
		return 0, err
	}
	return len(enumerated), nil
}

// DoesIntersectionExist reports whether CountOccurrences(length, mapping) > 0.
func (wi *WordIndex) DoesIntersectionExist(length int, mapping map[int]byte) (bool, error) {
	n, err := wi.CountOccurrences(length, mapping)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
