package solver

import (
	"sort"
	"testing"
	"time"

	"github.com/karnobh/crosswordist/grid"
	"github.com/karnobh/crosswordist/internal/testutil"
	"github.com/karnobh/crosswordist/wordindex"
)

// scenarioGrid is the §8 "tiny deterministic fill" scenario's 7×7 grid.
func scenarioGrid(t *testing.T) *grid.Grid {
	t.Helper()
	rows := []string{
		"0001000",
		"0001000",
		"0001000",
		"1000000",
		"0000000",
		"0000001",
		"0001111",
	}
	size := len(rows)
	data := make([]byte, size*size)
	for y, row := range rows {
		for x := 0; x < size; x++ {
			if row[x] == '1' {
				data[y*size+x] = 1
			}
		}
	}
	return grid.NewGridFromData(size, size, data)
}

// scenarioWords is exactly the dictionary needed to fill scenarioGrid: one
// word per slot, no spares, so a Found result must use every one of them
// exactly once.
var scenarioWords = []string{
	"BRN", "RTG", "AIA", "EWO", "OPT", "MIN", "MRS",
	"BAO", "CTM", "SCS",
	"GONAD",
	"PISACA", "TENSER", "REMAKE", "TWICER",
	"CLOCKED", "RIPPLER", "NATIONS",
}

func buildWordIndex(t *testing.T, words []string) *wordindex.WordIndex {
	t.Helper()
	wi := wordindex.NewWordIndex()
	for _, w := range words {
		if err := wi.AddWord(w); err != nil {
			t.Fatalf("AddWord(%q): %v", w, err)
		}
	}
	if err := wi.MakeIndex(); err != nil {
		t.Fatalf("MakeIndex: %v", err)
	}
	return wi
}

func TestSolveFindsValidSolution(t *testing.T) {
	g := scenarioGrid(t)
	layout := grid.BuildLayout(g)
	wi := buildWordIndex(t, scenarioWords)

	res, err := Solve(wi, layout, 5*time.Second, testutil.NewRand(1))
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if res != Found {
		t.Fatalf("Solve result = %v, want Found", res)
	}

	var used []string
	for _, slot := range layout.All() {
		if !slot.Full() {
			t.Errorf("slot (num=%d,dir=%v) left unfilled", slot.WordNum(), slot.Direction())
		}
		used = append(used, slot.Word())
		for p := 0; p < slot.Len(); p++ {
			other, otherPos, ok := slot.Crossing(p)
			if !ok {
				continue
			}
			if slot.Letters()[p] != other.Letters()[otherPos] {
				t.Errorf("crossing disagreement at slot (num=%d,dir=%v) pos %d", slot.WordNum(), slot.Direction(), p)
			}
		}
	}

	sort.Strings(used)
	want := append([]string(nil), scenarioWords...)
	sort.Strings(want)
	if len(used) != len(want) {
		t.Fatalf("used %d words, want %d", len(used), len(want))
	}
	for i := range used {
		if used[i] != want[i] {
			t.Errorf("used word set mismatch: got %v want %v", used, want)
			break
		}
	}
}

func TestSolveDeterministic(t *testing.T) {
	run := func() string {
		g := scenarioGrid(t)
		layout := grid.BuildLayout(g)
		wi := buildWordIndex(t, scenarioWords)
		res, err := Solve(wi, layout, 5*time.Second, testutil.NewRand(1))
		if err != nil {
			t.Fatalf("Solve: %v", err)
		}
		if res != Found {
			t.Fatalf("Solve result = %v, want Found", res)
		}
		w, h := layout.Grid().Size()
		out := make([]byte, 0, w*h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if c := layout.LetterAt(x, y); c != 0 {
					out = append(out, c)
				} else {
					out = append(out, '#')
				}
			}
		}
		return string(out)
	}

	first := run()
	second := run()
	if first != second {
		t.Errorf("Solve with the same seed produced different grids:\n%s\n%s", first, second)
	}
}

// TestSolveNoSolution removes a word the scenario grid needs, so the search
// must exhaust every candidate and report NoSolution well within the
// deadline.
func TestSolveNoSolution(t *testing.T) {
	var words []string
	for _, w := range scenarioWords {
		if w == "MIN" {
			continue
		}
		words = append(words, w)
	}
	g := scenarioGrid(t)
	layout := grid.BuildLayout(g)
	wi := buildWordIndex(t, words)

	res, err := Solve(wi, layout, 5*time.Second, testutil.NewRand(1))
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if res != NoSolution {
		t.Fatalf("Solve result = %v, want NoSolution", res)
	}
}

// TestSolveTimeout covers §5: the deadline is only checked once a slot's
// candidate list is exhausted. With an already-past deadline and an
// unsatisfiable dictionary, the first such exhaustion must report TimedOut
// rather than NoSolution.
func TestSolveTimeout(t *testing.T) {
	var words []string
	for _, w := range scenarioWords {
		if w == "MIN" {
			continue
		}
		words = append(words, w)
	}
	g := scenarioGrid(t)
	layout := grid.BuildLayout(g)
	wi := buildWordIndex(t, words)

	res, err := Solve(wi, layout, -1*time.Hour, testutil.NewRand(1))
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if res != TimedOut {
		t.Fatalf("Solve result = %v, want TimedOut", res)
	}
}

func TestSolveEmptyLayoutIsTriviallyFound(t *testing.T) {
	g := grid.NewGrid(2, 2)
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			g.Set(x, y, 1)
		}
	}
	layout := grid.BuildLayout(g)
	wi := buildWordIndex(t, nil)

	res, err := Solve(wi, layout, time.Second, testutil.NewRand(1))
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if res != Found {
		t.Fatalf("Solve result = %v, want Found for an all-black grid", res)
	}
}
