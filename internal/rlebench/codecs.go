package rlebench

import (
	"bytes"

	"github.com/klauspost/compress/flate"
	"github.com/ulikunitz/xz"

	"github.com/karnobh/crosswordist/bitrle"
)

func init() {
	RegisterCodec("bitrle", func(input []byte) ([]byte, error) {
		return bitrle.Compress(input), nil
	})
	RegisterCodec("flate", func(input []byte) ([]byte, error) {
		var buf bytes.Buffer
		w, err := flate.NewWriter(&buf, flate.DefaultCompression)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write(input); err != nil {
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	})
	RegisterCodec("xz", func(input []byte) ([]byte, error) {
		var buf bytes.Buffer
		w, err := xz.NewWriter(&buf)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write(input); err != nil {
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	})
}
