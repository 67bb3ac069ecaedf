// Package solver fills a grid's slot graph with words from a WordIndex by
// backtracking search: at each step it picks the unfilled slot with the
// fewest matching candidates, tries those candidates in a shuffled order
// supplied by the caller's PRNG, and backtracks on either an outright letter
// conflict or a look-ahead failure on a crossing slot.
package solver

import (
	"time"

	"github.com/dsnet/golib/errs"

	"github.com/karnobh/crosswordist/grid"
	"github.com/karnobh/crosswordist/wordindex"
)

// Result is the outcome of a Solve call.
type Result int

const (
	// Found means every slot in the layout holds a word.
	Found Result = iota
	// NoSolution means the search space was exhausted with no solution.
	NoSolution
	// TimedOut means the deadline passed before the search space was
	// exhausted. A deadline is only checked once a slot's candidate list is
	// fully tried, never mid-candidate: a search that reaches Found without
	// exhausting any list returns Found even past the deadline, while any
	// list exhausted after the deadline reports TimedOut, however small the
	// problem.
	TimedOut
)

func (r Result) String() string {
	switch r {
	case Found:
		return "FOUND"
	case TimedOut:
		return "TIMED_OUT"
	default:
		return "NO_SOLUTION"
	}
}

// RandSource is the seedable shuffle source Solve draws candidate orderings
// from. *internal/testutil.Rand satisfies this.
type RandSource interface {
	Perm(n int) []int
}

// Solve attempts to fill every slot of layout with a word from wi, stopping
// at Found, NoSolution, or when timeout has elapsed since the call began
// (checked only after a slot's candidates are exhausted). rng drives every shuffle
// decision; calling Solve twice with the same rng seed and the same layout
// and wi produces byte-identical results.
func Solve(wi *wordindex.WordIndex, layout *grid.Layout, timeout time.Duration, rng RandSource) (result Result, err error) {
	defer errRecover(&err)

	deadline := time.Now().Add(timeout)
	inCrossword := make(map[string]bool)

	var step func(slot *grid.WordLayout) Result
	step = func(slot *grid.WordLayout) Result {
		candidates := wordsFromIndex(wi, slot)
		order := rng.Perm(len(candidates))

		for _, i := range order {
			word := candidates[i]
			if inCrossword[word] {
				continue
			}

			before := layout.SnapshotWord(slot)
			if err := layout.SetWord(slot, word); err != nil {
				// The candidate came from a lookup already filtered against
				// slot's own filled positions, so this should be
				// unreachable; treat it as merely unusable, not fatal.
				continue
			}
			assertCrossingAgreement(slot)

			if !lookAheadOK(wi, slot) {
				layout.RestoreWord(slot, before)
				continue
			}

			inCrossword[word] = true
			next := selectSlot(layout, wi)
			if next == nil {
				return Found
			}
			res := step(next)
			if res == Found || res == TimedOut {
				return res
			}

			delete(inCrossword, word)
			layout.RestoreWord(slot, before)
		}

		if time.Now().After(deadline) {
			return TimedOut
		}
		return NoSolution
	}

	first := selectSlot(layout, wi)
	if first == nil {
		return Found, nil
	}
	return step(first), nil
}

// lookAheadOK reports whether every crossing slot of slot still has at least
// one matching candidate, given slot's newly-written letters.
func lookAheadOK(wi *wordindex.WordIndex, slot *grid.WordLayout) bool {
	for p := 0; p < slot.Len(); p++ {
		other, _, ok := slot.Crossing(p)
		if !ok {
			continue
		}
		exists, err := wi.DoesIntersectionExist(other.Len(), other.Mapping())
		errs.Assert(err == nil, err)
		if !exists {
			return false
		}
	}
	return true
}

// wordsFromIndex returns slot's candidate words: an index lookup filtered by
// its currently-filled positions, or the full per-length word list when
// nothing is filled yet.
func wordsFromIndex(wi *wordindex.WordIndex, slot *grid.WordLayout) []string {
	if slot.FilledLetters() == 0 {
		idx := wi.WordIndexByLength(slot.Len())
		if idx == nil {
			return nil
		}
		return idx.Words()
	}
	words, err := wi.Lookup(slot.Len(), slot.Mapping())
	errs.Assert(err == nil, err)
	return words
}

// selectSlot returns the unfilled slot with the fewest matching candidates
// (ties keep the first slot seen, i.e. layout.All()'s order), or nil if
// every slot is already full.
func selectSlot(layout *grid.Layout, wi *wordindex.WordIndex) *grid.WordLayout {
	var best *grid.WordLayout
	bestCount := -1
	for _, slot := range layout.All() {
		if slot.Full() {
			continue
		}
		n, err := wi.CountOccurrences(slot.Len(), slot.Mapping())
		errs.Assert(err == nil, err)
		if best == nil || n < bestCount {
			best, bestCount = slot, n
		}
	}
	return best
}

// assertCrossingAgreement panics with ErrCrossingInvariant if slot and any of
// its crossings disagree on a shared cell's letter, a defensive check of an
// invariant BuildLayout and SetWord are both supposed to maintain.
func assertCrossingAgreement(slot *grid.WordLayout) {
	letters := slot.Letters()
	for p, c := range letters {
		other, otherPos, ok := slot.Crossing(p)
		if !ok {
			continue
		}
		errs.Assert(other.Letters()[otherPos] == c, ErrCrossingInvariant)
	}
}
