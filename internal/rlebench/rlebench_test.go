package rlebench

import (
	"bytes"
	"testing"
)

// sparseBitmap approximates a real PerLengthIndex bitmap: mostly zero bytes
// with the occasional sparse one, the shape bitrle is designed around.
func sparseBitmap() []byte {
	b := make([]byte, 4096)
	for i := 0; i < len(b); i += 97 {
		b[i] = 0x10
	}
	return b
}

func TestBenchmarkRatioKnownCodecs(t *testing.T) {
	input := sparseBitmap()
	for _, name := range []string{"bitrle", "flate", "xz"} {
		res, err := BenchmarkRatio(name, input)
		if err != nil {
			t.Fatalf("BenchmarkRatio(%q): %v", name, err)
		}
		if res.RawSize != len(input) {
			t.Errorf("%s: RawSize = %d, want %d", name, res.RawSize, len(input))
		}
		if res.CompSize == 0 || res.Ratio <= 0 {
			t.Errorf("%s: CompSize=%d Ratio=%g, want both positive", name, res.CompSize, res.Ratio)
		}
	}
}

func TestBenchmarkRatioUnknownCodec(t *testing.T) {
	_, err := BenchmarkRatio("does-not-exist", []byte("x"))
	if err == nil {
		t.Fatalf("expected an error for an unregistered codec")
	}
}

func TestBitrleRegisteredCodecChangesBytes(t *testing.T) {
	input := sparseBitmap()
	compressed, err := Codecs["bitrle"](input)
	if err != nil {
		t.Fatalf("bitrle codec: %v", err)
	}
	if bytes.Equal(compressed, input) {
		t.Errorf("expected compression to change the byte representation")
	}
}
