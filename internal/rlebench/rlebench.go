// Package rlebench compares bitrle's compression ratio against general-
// purpose byte-stream compressors on the same kind of sparse position/letter
// bitmap data wordindex.PerLengthIndex stores, in the spirit of the
// teacher's own internal/tool/bench codec-registration harness.
package rlebench

// Codec compresses input and returns the compressed bytes.
type Codec func(input []byte) ([]byte, error)

// Codecs holds every registered compressor, keyed by name.
var Codecs = make(map[string]Codec)

// RegisterCodec adds a named codec, overwriting any codec already
// registered under that name.
func RegisterCodec(name string, c Codec) {
	Codecs[name] = c
}

// Result is one codec's outcome on one input.
type Result struct {
	RawSize, CompSize int
	Ratio             float64 // RawSize / CompSize
}

// BenchmarkRatio compresses input with the named codec and reports its
// compression ratio.
func BenchmarkRatio(name string, input []byte) (Result, error) {
	c, ok := Codecs[name]
	if !ok {
		return Result{}, UnknownCodecError(name)
	}
	out, err := c(input)
	if err != nil {
		return Result{}, err
	}
	r := Result{RawSize: len(input), CompSize: len(out)}
	if len(out) > 0 {
		r.Ratio = float64(len(input)) / float64(len(out))
	}
	return r, nil
}

// UnknownCodecError is returned by BenchmarkRatio for a name not in Codecs.
type UnknownCodecError string

func (e UnknownCodecError) Error() string { return "rlebench: unknown codec " + string(e) }
