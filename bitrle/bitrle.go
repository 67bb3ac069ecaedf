// Package bitrle implements a simplified run-length encoding for byte
// sequences, specialized for the mostly-zero bitmaps produced by a word
// index (see the wordindex package). Every byte of the uncompressed stream
// either belongs to a fill run (a maximal span of identical 0x00 or 0xFF
// bytes) or a noise run (everything else); each run is stored as a single
// control byte (or two, for long runs) describing its kind and length,
// followed by the raw payload in the noise case.
//
// Encoding scheme (first byte of each segment):
//
//	00 0x xxxx            zero-fill, short (count 0..31)
//	00 1x xxxx  cccc cccc  zero-fill, long  (count 0..8191)
//	01 0x xxxx            one-fill, short (count 0..31)
//	01 1x xxxx  cccc cccc  one-fill, long  (count 0..8191)
//	10 xx xxxx  [payload]  noise, short (count 0..63)
//	11 xx xxxx  cccc cccc  noise, long  (count 0..16383)
//	            [payload]
package bitrle

const (
	maxShortFill  = 31
	maxLongFill   = 8191
	maxShortNoise = 63
	maxLongNoise  = 16383
)

// Compress encodes b into a compressed byte sequence. Reading
// NewDecoder(Compress(b)) to its end always reproduces b exactly.
//
// The encoder is greedy: it buffers a run of identical fill bytes (0x00 or
// 0xFF) and flushes it as soon as a different byte value appears, using the
// shortest control form that represents the run. Runs longer than a single
// segment's capacity are split into consecutive maximal segments followed by
// a remainder segment.
func Compress(b []byte) []byte {
	var out []byte
	var noise []byte
	var fillSet bool
	var fillByte byte
	var fillCount int

	flushNoise := func() {
		for len(noise) > 0 {
			n := len(noise)
			switch {
			case n > maxLongNoise:
				out = append(out, 0xFF, 0xFF)
				out = append(out, noise[:maxLongNoise]...)
				noise = noise[maxLongNoise:]
			case n > maxShortNoise:
				v := uint16(0xC000) | uint16(n)
				out = append(out, byte(v>>8), byte(v))
				out = append(out, noise...)
				noise = nil
			default:
				out = append(out, 0x80|byte(n))
				out = append(out, noise...)
				noise = nil
			}
		}
	}

	flushFill := func() {
		var bit byte
		if fillByte == 0xFF {
			bit = 1
		}
		cnt := fillCount
		for cnt > 0 {
			switch {
			case cnt > maxLongFill:
				v := uint16(0x3FFF) | (uint16(bit) << 14)
				out = append(out, byte(v>>8), byte(v))
				cnt -= maxLongFill
			case cnt > maxShortFill:
				v := uint16(0x2000) | (uint16(bit) << 14) | uint16(cnt)
				out = append(out, byte(v>>8), byte(v))
				cnt = 0
			default:
				out = append(out, (bit<<6)|byte(cnt))
				cnt = 0
			}
		}
	}

	for _, c := range b {
		if c == 0x00 || c == 0xFF {
			if len(noise) > 0 {
				flushNoise()
			}
			switch {
			case !fillSet:
				fillByte, fillCount, fillSet = c, 1, true
			case fillByte != c:
				flushFill()
				fillByte, fillCount = c, 1
			default:
				fillCount++
			}
		} else {
			if fillSet {
				flushFill()
				fillSet, fillCount = false, 0
			}
			noise = append(noise, c)
		}
	}
	if len(noise) > 0 {
		flushNoise()
	} else if fillSet {
		flushFill()
	}
	return out
}

// segKind identifies what a Decoder is currently positioned inside.
type segKind int

const (
	segNone segKind = iota
	segZero
	segOne
	segNoise
)

// Decoder is a forward iterator over a compressed byte sequence. It yields
// the uncompressed byte stream one byte at a time via Next, and additionally
// exposes SeekableBytes: the number of further bytes in the current segment
// that are already known to be a zero fill, letting multi-sequence
// enumeration skip ahead without materializing them (see AndIndices).
type Decoder struct {
	data      []byte
	pos       int
	kind      segKind
	remaining int
	err       error
}

// NewDecoder returns a Decoder positioned at the start of compressed.
func NewDecoder(compressed []byte) *Decoder {
	return &Decoder{data: compressed}
}

// advance parses the next control byte(s), setting d.kind and d.remaining.
// It does nothing (and reports true) while d.remaining > 0. It skips over zero-count
// segments (which a conservative encoder never emits, but a hand-built or
// foreign compressed stream might).
func (d *Decoder) advance() bool {
	for d.remaining == 0 {
		if d.pos >= len(d.data) {
			return false
		}
		b := d.data[d.pos]
		d.pos++
		if b&0x80 != 0 {
			count := int(b & 0x3F)
			if b&0x40 != 0 {
				count = (count << 8) | int(d.data[d.pos])
				d.pos++
			}
			d.kind = segNoise
			d.remaining = count
		} else {
			if b&0x40 != 0 {
				d.kind = segOne
			} else {
				d.kind = segZero
			}
			count := int(b & 0x1F)
			if b&0x20 != 0 {
				count = (count << 8) | int(d.data[d.pos])
				d.pos++
			}
			d.remaining = count
		}
	}
	return true
}

// Next returns the next uncompressed byte, or ok=false at end of stream.
// Next recovers from malformed input (a truncated control byte or a noise
// segment overrunning the slice) by returning ok=false; use Err after a
// false result to distinguish a clean end of stream from corruption.
func (d *Decoder) Next() (b byte, ok bool) {
	defer func() {
		if recover() != nil {
			b, ok = 0, false
			d.err = ErrCorrupt
		}
	}()
	if !d.advance() {
		return 0, false
	}
	switch d.kind {
	case segZero:
		d.remaining--
		return 0x00, true
	case segOne:
		d.remaining--
		return 0xFF, true
	default: // segNoise
		v := d.data[d.pos]
		d.pos++
		d.remaining--
		return v, true
	}
}

// Err reports the error, if any, that caused the last Next call to stop.
func (d *Decoder) Err() error { return d.err }

// SeekableBytes reports how many further uncompressed bytes beyond the one
// most recently returned by Next are already known to be zero, i.e. the
// number of remaining bytes in the current zero-fill segment. It is 0
// inside a one-fill or noise segment, and 0 before the first call to Next.
func (d *Decoder) SeekableBytes() int {
	if d.kind == segZero {
		return d.remaining
	}
	return 0
}

// Seek advances the decoder by n uncompressed bytes without materializing
// them, in O(segments crossed). After Seek(n) a subsequent Next returns the
// (n+1)-th byte following the decoder's prior position.
func (d *Decoder) Seek(n int) (err error) {
	defer errRecover(&err)
	for n > 0 {
		if d.remaining == 0 {
			if !d.advance() {
				return nil
			}
		}
		step := n
		if d.remaining < step {
			step = d.remaining
		}
		if d.kind == segNoise {
			d.pos += step
		}
		d.remaining -= step
		n -= step
	}
	return nil
}
