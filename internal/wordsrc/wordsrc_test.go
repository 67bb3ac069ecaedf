package wordsrc

import (
	"strings"
	"testing"
)

func TestScanWordsTrimsAndSkipsBlankLines(t *testing.T) {
	input := "CAT\n  DOG  \n\nFISH\n"
	var got []string
	err := ScanWords(strings.NewReader(input), func(w string) error {
		got = append(got, w)
		return nil
	})
	if err != nil {
		t.Fatalf("ScanWords: %v", err)
	}
	want := []string{"CAT", "DOG", "FISH"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("word %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestScanWordsPropagatesCallbackError(t *testing.T) {
	sentinel := strings.NewReader("ONE\nTWO\n")
	boom := &sentinelError{}
	err := ScanWords(sentinel, func(w string) error {
		if w == "TWO" {
			return boom
		}
		return nil
	})
	if err != boom {
		t.Fatalf("err = %v, want sentinel", err)
	}
}

type sentinelError struct{}

func (e *sentinelError) Error() string { return "boom" }
