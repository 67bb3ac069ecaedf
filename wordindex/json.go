package wordindex

import (
	"encoding/base64"
	"encoding/json"
	"hash/crc32"
	"io"
	"sort"
	"strconv"

	"github.com/dsnet/golib/hashutil"
)

// perLengthWire is the on-disk shape of one length's entry: the sorted word
// list, one map[letter]base64(bitmap) object per position, the alphabet used
// to build it, and a CRC-32 checksum of the word list guarding against a
// truncated or hand-edited file.
type perLengthWire struct {
	Words    []string          `json:"words"`
	Index    []map[string]string `json:"index"`
	Abc      string            `json:"abc"`
	Checksum uint32            `json:"checksum"`
}

// Dump serializes the whole index as the JSON object described in the
// external-interfaces section: stringified lengths keyed to their
// per-length entry, plus a "range" key holding [Start, Stop), plus a
// top-level "checksum" combining every per-length checksum via
// hashutil.CombineCRC32 (mirroring how bzip2 combines per-block CRCs into
// one stream CRC).
func (wi *WordIndex) Dump(w io.Writer) error {
	if !wi.frozen {
		return ErrIndexNotReady
	}
	obj := make(map[string]json.RawMessage, len(wi.byLength)+2)

	lengths := wi.sortedLengths()
	var combined uint32
	var combinedSet bool
	for _, l := range lengths {
		idx := wi.byLength[l]
		wire := perLengthWire{
			Words:    idx.words,
			Abc:      idx.alphabet,
			Checksum: idx.checksum,
			Index:    make([]map[string]string, idx.length),
		}
		for p := 0; p < idx.length; p++ {
			m := make(map[string]string, len(idx.alphabet))
			for i := 0; i < len(idx.alphabet); i++ {
				c := idx.alphabet[i]
				m[string(c)] = base64.StdEncoding.EncodeToString(idx.bitmaps[p][c])
			}
			wire.Index[p] = m
		}
		data, err := json.Marshal(wire)
		if err != nil {
			return err
		}
		obj[strconv.Itoa(l)] = data

		if !combinedSet {
			combined, combinedSet = idx.checksum, true
		} else {
			combined = hashutil.CombineCRC32(crc32.IEEE, combined, idx.checksum, int64(len(idx.words)))
		}
	}

	rangeData, err := json.Marshal([2]int{wi.lenRange.Start, wi.lenRange.Stop})
	if err != nil {
		return err
	}
	obj["range"] = rangeData

	checksumData, err := json.Marshal(combined)
	if err != nil {
		return err
	}
	obj["checksum"] = checksumData

	enc := json.NewEncoder(w)
	return enc.Encode(obj)
}

// Load deserializes a WordIndex previously written by Dump. It recomputes
// each length's word-list checksum and fails with ErrIndexLoadFailure on a
// mismatch, then folds those per-length checksums the same way Dump combined
// them and compares the result against the top-level "checksum", in addition
// to failing on any JSON or base64 decoding error.
func Load(r io.Reader, opts ...Option) (*WordIndex, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, ErrIndexLoadFailure
	}

	rangeRaw, ok := raw["range"]
	if !ok {
		return nil, ErrIndexLoadFailure
	}
	checksumRaw, hasChecksum := raw["checksum"]
	delete(raw, "range")
	delete(raw, "checksum")

	var rng [2]int
	if err := json.Unmarshal(rangeRaw, &rng); err != nil {
		return nil, ErrIndexLoadFailure
	}

	wi := NewWordIndex(opts...)
	wi.lenRange = LengthRange{Start: rng[0], Stop: rng[1]}
	wi.frozen = true

	lengths := make([]int, 0, len(raw))
	for lenStr := range raw {
		l, err := strconv.Atoi(lenStr)
		if err != nil {
			return nil, ErrIndexLoadFailure
		}
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)

	var combined uint32
	var combinedSet bool
	for _, l := range lengths {
		data := raw[strconv.Itoa(l)]
		var wire perLengthWire
		if err := json.Unmarshal(data, &wire); err != nil {
			return nil, ErrIndexLoadFailure
		}
		if len(wire.Index) != l {
			return nil, ErrIndexLoadFailure
		}

		var crc uint32
		for _, word := range wire.Words {
			crc = crc32.Update(crc, crc32.IEEETable, []byte(word))
		}
		if crc != wire.Checksum {
			return nil, ErrIndexLoadFailure
		}

		if !combinedSet {
			combined, combinedSet = wire.Checksum, true
		} else {
			combined = hashutil.CombineCRC32(crc32.IEEE, combined, wire.Checksum, int64(len(wire.Words)))
		}

		bitmaps := make([]map[byte][]byte, l)
		for p, letterMap := range wire.Index {
			m := make(map[byte][]byte, len(letterMap))
			for letter, b64 := range letterMap {
				if len(letter) != 1 {
					return nil, ErrIndexLoadFailure
				}
				decoded, err := base64.StdEncoding.DecodeString(b64)
				if err != nil {
					return nil, ErrIndexLoadFailure
				}
				m[letter[0]] = decoded
			}
			bitmaps[p] = m
		}

		wi.byLength[l] = &PerLengthIndex{
			length:   l,
			alphabet: wire.Abc,
			words:    wire.Words,
			bitmaps:  bitmaps,
			checksum: wire.Checksum,
			frozen:   true,
		}
	}

	if hasChecksum {
		var want uint32
		if err := json.Unmarshal(checksumRaw, &want); err != nil {
			return nil, ErrIndexLoadFailure
		}
		if combined != want {
			return nil, ErrIndexLoadFailure
		}
	}
	return wi, nil
}
