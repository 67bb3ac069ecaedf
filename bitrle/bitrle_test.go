package bitrle

import (
	"bytes"
	"encoding/hex"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func decodeAll(t *testing.T, compressed []byte) []byte {
	t.Helper()
	d := NewDecoder(compressed)
	var out []byte
	for {
		b, ok := d.Next()
		if !ok {
			if err := d.Err(); err != nil {
				t.Fatalf("Next: %v", err)
			}
			return out
		}
		out = append(out, b)
	}
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	s = stripSpaces(s)
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("invalid hex %q: %v", s, err)
	}
	return b
}

func stripSpaces(s string) string {
	var out []byte
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' {
			out = append(out, s[i])
		}
	}
	return string(out)
}

func TestRoundTrip(t *testing.T) {
	vectors := [][]byte{
		bytes.Repeat([]byte{0x00}, 8191*2+8190),
		append(append(bytes.Repeat([]byte{0x00}, 50), bytes.Repeat([]byte{0xFF}, 50)...), bytes.Repeat([]byte{0x00}, 50)...),
		concat(
			bytes.Repeat([]byte{0x00}, 8191+66),
			bytes.Repeat([]byte{0x1F}, 8191+66),
			bytes.Repeat([]byte{0x11}, 8191+66),
			bytes.Repeat([]byte{0xFF}, 8191*2+44),
		),
		nil,
		{0x42},
		{0x00, 0xFF, 0x00},
	}
	for i, want := range vectors {
		got := decodeAll(t, Compress(want))
		if !bytes.Equal(got, want) {
			t.Errorf("vector %d: round trip mismatch (len got=%d want=%d)", i, len(got), len(want))
		}
	}
}

func TestRoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		n := rng.Intn(4000)
		buf := make([]byte, n)
		for j := range buf {
			switch rng.Intn(4) {
			case 0:
				buf[j] = 0x00
			case 1:
				buf[j] = 0xFF
			default:
				buf[j] = byte(rng.Intn(256))
			}
		}
		got := decodeAll(t, Compress(buf))
		if !bytes.Equal(got, buf) {
			t.Fatalf("iteration %d: round trip mismatch", i)
		}
	}
}

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func TestSegmentBoundaries(t *testing.T) {
	in := bytes.Repeat([]byte{0x00}, 8191*2+8190)
	got := Compress(in)
	want := []byte{0x3F, 0xFF, 0x3F, 0xFF, 0x3F, 0xFE}
	if !bytes.Equal(got, want) {
		t.Errorf("got %x, want %x", got, want)
	}
}

func TestSeekEquivalence(t *testing.T) {
	in := concat(
		bytes.Repeat([]byte{0x00}, 40),
		bytes.Repeat([]byte{0xFF}, 20),
		[]byte{0x01, 0x02, 0x03, 0x04},
		bytes.Repeat([]byte{0x00}, 9000),
	)
	compressed := Compress(in)

	for _, k := range []int{0, 1, 39, 40, 41, 60, 63, 64, 100, len(in) - 1} {
		for _, m := range []int{0, 1, 5, 30} {
			if k+m > len(in) {
				continue
			}
			full := decodeAll(t, compressed)
			wantSuffix := full[k+m:]

			d := NewDecoder(compressed)
			for i := 0; i < k; i++ {
				if _, ok := d.Next(); !ok {
					t.Fatalf("k=%d m=%d: ran out decoding prefix", k, m)
				}
			}
			if err := d.Seek(m); err != nil {
				t.Fatalf("k=%d m=%d: Seek: %v", k, m, err)
			}
			gotSuffix := []byte{}
			for {
				b, ok := d.Next()
				if !ok {
					break
				}
				gotSuffix = append(gotSuffix, b)
			}
			if diff := cmp.Diff(wantSuffix, gotSuffix); diff != "" {
				t.Fatalf("k=%d m=%d: suffix mismatch (-want +got):\n%s", k, m, diff)
			}
		}
	}
}

func TestZeroAwareSeekableBytes(t *testing.T) {
	in := concat(bytes.Repeat([]byte{0x00}, 10), bytes.Repeat([]byte{0xFF}, 5), []byte{0x42, 0x43})
	compressed := Compress(in)
	d := NewDecoder(compressed)

	for j := 0; j < 10; j++ {
		if _, ok := d.Next(); !ok {
			t.Fatalf("ran out in zero-fill at j=%d", j)
		}
		if got, want := d.SeekableBytes(), 10-j-1; got != want {
			t.Errorf("after consuming byte %d of zero-fill: SeekableBytes=%d, want %d", j, got, want)
		}
	}
	for j := 0; j < 5; j++ {
		if _, ok := d.Next(); !ok {
			t.Fatalf("ran out in one-fill at j=%d", j)
		}
		if got := d.SeekableBytes(); got != 0 {
			t.Errorf("after consuming one-fill byte: SeekableBytes=%d, want 0", got)
		}
	}
	for j := 0; j < 2; j++ {
		if _, ok := d.Next(); !ok {
			t.Fatalf("ran out in noise at j=%d", j)
		}
		if got := d.SeekableBytes(); got != 0 {
			t.Errorf("after consuming noise byte: SeekableBytes=%d, want 0", got)
		}
	}
}

func TestBitIndicesOnShortInput(t *testing.T) {
	in := mustHex(t, "00 1F 01")
	got := BitIndices(in)
	want := []int{11, 12, 13, 14, 15, 23}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BitIndices mismatch (-want +got):\n%s", diff)
	}
}

func TestEnumerationScenario3(t *testing.T) {
	in := mustHex(t, "00 00 00 FF FF 88 88")
	compressed := Compress(in)
	got := decodeAll(t, compressed)
	if !bytes.Equal(got, in) {
		t.Fatalf("round trip mismatch: got %x want %x", got, in)
	}

	d := NewDecoder(compressed)
	if _, ok := d.Next(); !ok {
		t.Fatal("expected a byte")
	}
	if got, want := d.SeekableBytes(), 2; got != want {
		t.Errorf("SeekableBytes after one byte = %d, want %d", got, want)
	}
}
