package wordindex

import (
	"hash/crc32"
	"sort"
	"strings"

	"github.com/karnobh/crosswordist/bitrle"
)

// DefaultAlphabet is the 26-letter upper-case alphabet used by a WordIndex
// constructed with no explicit alphabet.
const DefaultAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// PerLengthIndex holds the sorted word list and the L×|abc| compressed
// position/letter bitmaps for every accepted word of one fixed length L.
//
// Before MakeIndex, words are buffered in a deduplicating set; AddWord may be
// called repeatedly. After MakeIndex, words and the bitmap matrix are
// immutable and every further AddWord fails with ErrIndexFrozen.
type PerLengthIndex struct {
	length   int
	alphabet string

	pending map[string]struct{}

	words    []string
	bitmaps  []map[byte][]byte // bitmaps[p][letter] = compressed bit sequence
	checksum uint32
	frozen   bool
}

// NewPerLengthIndex returns an empty, unfrozen index for words of the given
// length over the given alphabet.
func NewPerLengthIndex(length int, alphabet string) *PerLengthIndex {
	return &PerLengthIndex{
		length:   length,
		alphabet: alphabet,
		pending:  make(map[string]struct{}),
	}
}

// Length reports L, the fixed word length of this index.
func (pi *PerLengthIndex) Length() int { return pi.length }

// AddWord inserts w into the deduplicating pending set. It returns
// ErrWordLengthMismatch if len(w) != L, ErrIndexFrozen if called after
// MakeIndex, and silently drops (returning nil) any word containing a
// character outside the alphabet, per §4.3.
func (pi *PerLengthIndex) AddWord(w string) error {
	if pi.frozen {
		return ErrIndexFrozen
	}
	if len(w) != pi.length {
		return ErrWordLengthMismatch
	}
	for i := 0; i < len(w); i++ {
		if !strings.ContainsRune(pi.alphabet, rune(w[i])) {
			return nil
		}
	}
	pi.pending[w] = struct{}{}
	return nil
}

// MakeIndex sorts the accepted words lexicographically and builds, for every
// position and every alphabet letter, a packed MSB-first bit vector over
// |words| bits RLE-compressed via bitrle.Compress. It freezes the index:
// further AddWord calls fail.
func (pi *PerLengthIndex) MakeIndex() error {
	if pi.frozen {
		return ErrIndexFrozen
	}
	words := make([]string, 0, len(pi.pending))
	for w := range pi.pending {
		words = append(words, w)
	}
	sort.Strings(words)
	pi.pending = nil
	pi.words = words

	var crc uint32
	for _, w := range words {
		crc = crc32.Update(crc, crc32.IEEETable, []byte(w))
	}
	pi.checksum = crc

	bitmaps := make([]map[byte][]byte, pi.length)
	n := len(words)
	for p := 0; p < pi.length; p++ {
		m := make(map[byte][]byte, len(pi.alphabet))
		for i := 0; i < len(pi.alphabet); i++ {
			c := pi.alphabet[i]
			raw := make([]byte, (n+7)/8)
			for wi, w := range words {
				if w[p] == c {
					raw[wi/8] |= 1 << uint(7-(wi%8))
				}
			}
			m[c] = bitrle.Compress(raw)
		}
		bitmaps[p] = m
	}
	pi.bitmaps = bitmaps
	pi.frozen = true
	return nil
}

// Words returns the full sorted word list. Callers with an empty lookup
// mapping use this directly rather than going through BitmapOnPosition, per
// §4.3's "Callers with |M|=0" rule.
func (pi *PerLengthIndex) Words() []string { return pi.words }

// WordAt returns the i-th word in sorted order.
func (pi *PerLengthIndex) WordAt(i int) string { return pi.words[i] }

// Count returns the number of distinct words held by this index.
func (pi *PerLengthIndex) Count() int { return len(pi.words) }

// BitmapOnPosition returns the compressed bit sequence bitmap[p][c]: bit i
// set iff words[i][p] == c.
func (pi *PerLengthIndex) BitmapOnPosition(p int, c byte) ([]byte, error) {
	if !pi.frozen {
		return nil, ErrIndexNotReady
	}
	if p < 0 || p >= pi.length {
		return nil, ErrWordLengthMismatch
	}
	b, ok := pi.bitmaps[p][c]
	if !ok {
		return nil, ErrLetterNotInAlphabet
	}
	return b, nil
}
