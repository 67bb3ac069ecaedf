package wordindex

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/karnobh/crosswordist/bitrle"
)

func buildIndex(t *testing.T, length int, words ...string) *PerLengthIndex {
	t.Helper()
	idx := NewPerLengthIndex(length, DefaultAlphabet)
	for _, w := range words {
		if err := idx.AddWord(w); err != nil {
			t.Fatalf("AddWord(%q): %v", w, err)
		}
	}
	if err := idx.MakeIndex(); err != nil {
		t.Fatalf("MakeIndex: %v", err)
	}
	return idx
}

func TestPerLengthIndexSortsAndDedups(t *testing.T) {
	idx := buildIndex(t, 3, "CAT", "BAT", "CAT", "ANT")
	want := []string{"ANT", "BAT", "CAT"}
	if diff := cmp.Diff(want, idx.Words()); diff != "" {
		t.Errorf("Words() mismatch (-want +got):\n%s", diff)
	}
}

func TestPerLengthIndexWrongLengthRejected(t *testing.T) {
	idx := NewPerLengthIndex(3, DefaultAlphabet)
	if err := idx.AddWord("CATS"); err != ErrWordLengthMismatch {
		t.Errorf("AddWord(too long) error = %v, want ErrWordLengthMismatch", err)
	}
}

func TestPerLengthIndexFrozenAfterMakeIndex(t *testing.T) {
	idx := buildIndex(t, 3, "CAT")
	if err := idx.AddWord("DOG"); err != ErrIndexFrozen {
		t.Errorf("AddWord after freeze error = %v, want ErrIndexFrozen", err)
	}
	if err := idx.MakeIndex(); err != ErrIndexFrozen {
		t.Errorf("second MakeIndex error = %v, want ErrIndexFrozen", err)
	}
}

func TestPerLengthIndexSilentlyDropsOutOfAlphabet(t *testing.T) {
	idx := NewPerLengthIndex(3, DefaultAlphabet)
	if err := idx.AddWord("C4T"); err != nil {
		t.Fatalf("AddWord out-of-alphabet returned error instead of silent drop: %v", err)
	}
	if err := idx.MakeIndex(); err != nil {
		t.Fatalf("MakeIndex: %v", err)
	}
	if n := idx.Count(); n != 0 {
		t.Errorf("Count() = %d, want 0", n)
	}
}

// TestIndexInvariants checks §8 "Index invariants": for every position and
// letter, the number of set bits in bitmap[p][c] equals the number of words
// with that letter at that position, and for every word index exactly one
// letter is set at each position.
func TestIndexInvariants(t *testing.T) {
	idx := buildIndex(t, 3, "CAT", "BAT", "CAR", "BAR", "CAB")
	words := idx.Words()

	for p := 0; p < 3; p++ {
		seen := make(map[int]byte)
		for c := 0; c < len(DefaultAlphabet); c++ {
			letter := DefaultAlphabet[c]
			bm, err := idx.BitmapOnPosition(p, letter)
			if err != nil {
				t.Fatalf("BitmapOnPosition(%d,%c): %v", p, letter, err)
			}
			indices := bitrle.DecodedBitIndices(bm)

			var want int
			for _, w := range words {
				if w[p] == letter {
					want++
				}
			}
			if len(indices) != want {
				t.Errorf("p=%d c=%c: %d set bits, want %d", p, letter, len(indices), want)
			}
			for _, i := range indices {
				if prev, ok := seen[i]; ok {
					t.Fatalf("p=%d: word %d has two letters set (%c and %c)", p, i, prev, letter)
				}
				seen[i] = letter
			}
		}
		if len(seen) != len(words) {
			t.Errorf("p=%d: %d words had a letter set, want %d", p, len(seen), len(words))
		}
	}
}
