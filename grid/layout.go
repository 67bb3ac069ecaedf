package grid

// Direction is the axis a WordLayout runs along.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

func (d Direction) String() string {
	if d == Vertical {
		return "V"
	}
	return "H"
}

// crossing is a back-reference from one cell of a WordLayout to the
// perpendicular slot (and position within it) sharing that cell. A zero
// crossing (Slot == nil) means the cell has no perpendicular slot, which is
// always true of every cell in a length-1 slot.
type crossing struct {
	slot *WordLayout
	pos  int
}

// WordLayout is one maximal horizontal or vertical run of white cells: a
// single fillable slot in the puzzle. Every WordLayout is owned by the
// Layout that built it; WordLayouts reference each other only through their
// crossing pointers, which BuildLayout wires, so the whole graph (cyclic,
// since a horizontal and vertical slot cross each other) is freed in one
// piece when the owning Layout is dropped. See DESIGN.md for why this sidesteps the reference-
// counted-cycle pitfall called out for this component.
type WordLayout struct {
	wordNum      int
	direction    Direction
	xInit, yInit int
	wordLen      int

	letters    []byte
	intersects []crossing
}

func newWordLayout(wordNum int, dir Direction, x, y, length int) *WordLayout {
	return &WordLayout{
		wordNum:    wordNum,
		direction:  dir,
		xInit:      x,
		yInit:      y,
		wordLen:    length,
		letters:    make([]byte, length),
		intersects: make([]crossing, length),
	}
}

// WordNum returns the slot's 0-based word number, shared between a
// horizontal and vertical slot that start at the same cell.
func (w *WordLayout) WordNum() int { return w.wordNum }

// Direction reports whether the slot runs horizontally or vertically.
func (w *WordLayout) Direction() Direction { return w.direction }

// Start returns the (x, y) of the slot's first cell.
func (w *WordLayout) Start() (x, y int) { return w.xInit, w.yInit }

// Len returns the slot's length in cells.
func (w *WordLayout) Len() int { return w.wordLen }

// CellCoord returns the grid coordinate of the slot's pos-th cell.
func (w *WordLayout) CellCoord(pos int) (x, y int) {
	if w.direction == Horizontal {
		return w.xInit + pos, w.yInit
	}
	return w.xInit, w.yInit + pos
}

// Letters returns a copy of the slot's current per-cell letters; an unfilled
// cell holds 0.
func (w *WordLayout) Letters() []byte {
	out := make([]byte, len(w.letters))
	copy(out, w.letters)
	return out
}

// FilledLetters returns the number of non-empty cells. It is computed on
// every call rather than cached: both it and Mapping are O(word_len), and
// so neither keeps a cache that every write would have to invalidate.
func (w *WordLayout) FilledLetters() int {
	n := 0
	for _, c := range w.letters {
		if c != 0 {
			n++
		}
	}
	return n
}

// Full reports whether every cell of the slot is filled.
func (w *WordLayout) Full() bool { return w.FilledLetters() == w.wordLen }

// Mapping returns the slot's currently filled letters as a position→letter
// map, the form the word index's lookup primitives take.
func (w *WordLayout) Mapping() map[int]byte {
	m := make(map[int]byte, w.FilledLetters())
	for p, c := range w.letters {
		if c != 0 {
			m[p] = c
		}
	}
	return m
}

// Word returns the slot's contents as a string, valid only when Full.
func (w *WordLayout) Word() string { return string(w.letters) }

// Crossing returns the perpendicular slot crossing the slot's pos-th cell,
// and its position within that slot, or ok=false if there is none.
func (w *WordLayout) Crossing(pos int) (other *WordLayout, otherPos int, ok bool) {
	c := w.intersects[pos]
	return c.slot, c.pos, c.slot != nil
}

// Layout is the slot graph built from a Grid: every WordLayout plus the
// letter matrix they jointly populate.
type Layout struct {
	grid       *Grid
	all        []*WordLayout
	letterGrid []byte
}

// Grid returns the grid the layout was built from.
func (l *Layout) Grid() *Grid { return l.grid }

// All returns every slot in the layout, in the order BuildLayout created
// them (row-major over start cells; a cell starting both a horizontal and a
// vertical slot contributes the horizontal one first).
func (l *Layout) All() []*WordLayout { return l.all }

// LetterAt returns the letter currently occupying cell (x, y), or 0 if the
// cell is black or not yet filled.
func (l *Layout) LetterAt(x, y int) byte {
	w, _ := l.grid.Size()
	return l.letterGrid[y*w+x]
}

func idx(x, y, width int) int { return y*width + x }

// BuildLayout constructs the slot graph for g: every maximal horizontal and
// vertical run of white cells becomes a WordLayout, word-numbered
// contiguously in row-major order over cells that start at least one slot,
// with crossings wired between any horizontal/vertical pair of slots (both
// longer than one cell) that share a cell.
func BuildLayout(g *Grid) *Layout {
	w, h := g.Size()
	horizAt := make([]crossing, w*h)
	vertAt := make([]crossing, w*h)
	var all []*WordLayout
	wordNum := 0

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if g.Get(x, y) != 0 {
				continue
			}
			var hSlot, vSlot *WordLayout

			if x == 0 || g.Get(x-1, y) == 1 {
				length := 0
				for x+length < w && g.Get(x+length, y) == 0 {
					length++
				}
				if length > 0 {
					hSlot = newWordLayout(wordNum, Horizontal, x, y, length)
					for p := 0; p < length; p++ {
						horizAt[idx(x+p, y, w)] = crossing{hSlot, p}
					}
				}
			}

			if y == 0 || g.Get(x, y-1) == 1 {
				length := 0
				for y+length < h && g.Get(x, y+length) == 0 {
					length++
				}
				if length > 0 {
					vSlot = newWordLayout(wordNum, Vertical, x, y, length)
					for p := 0; p < length; p++ {
						vertAt[idx(x, y+p, w)] = crossing{vSlot, p}
					}
				}
			}

			if hSlot != nil {
				all = append(all, hSlot)
			}
			if vSlot != nil {
				all = append(all, vSlot)
			}
			if hSlot != nil || vSlot != nil {
				wordNum++
			}
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			hr := horizAt[idx(x, y, w)]
			vr := vertAt[idx(x, y, w)]
			if hr.slot != nil && vr.slot != nil && hr.slot.wordLen > 1 && vr.slot.wordLen > 1 {
				hr.slot.intersects[hr.pos] = crossing{vr.slot, vr.pos}
				vr.slot.intersects[vr.pos] = crossing{hr.slot, hr.pos}
			}
		}
	}

	return &Layout{grid: g, all: all, letterGrid: make([]byte, w*h)}
}

// SetLetter assigns character c to slot's pos-th cell and, one hop only,
// propagates the same assignment to the crossing slot at that cell (if
// any). It fails with ErrLetterConflict if the cell already holds a
// different non-zero character; assigning c=0 (clearing) never conflicts.
// RestoreWord and ClearWord use the same propagating write without this
// conflict check.
func (l *Layout) SetLetter(slot *WordLayout, pos int, c byte) error {
	cur := slot.letters[pos]
	if c != 0 && cur != 0 && cur != c {
		return ErrLetterConflict
	}
	l.writeLetter(slot, pos, c, true)
	return nil
}

func (l *Layout) writeLetter(slot *WordLayout, pos int, c byte, propagate bool) {
	slot.letters[pos] = c
	x, y := slot.CellCoord(pos)
	width, _ := l.grid.Size()
	l.letterGrid[idx(x, y, width)] = c
	if propagate {
		if cr := slot.intersects[pos]; cr.slot != nil {
			l.writeLetter(cr.slot, cr.pos, c, false)
		}
	}
}

// SnapshotWord returns a copy of slot's current letters, for later use with
// RestoreWord.
func (l *Layout) SnapshotWord(slot *WordLayout) []byte { return slot.Letters() }

// SetWord assigns word to slot one character at a time via SetLetter. On the
// first conflicting character, it undoes every character this call already
// applied by restoring the pre-call snapshot for those positions (via
// RestoreWord's propagating write) and returns ErrLetterConflict; slot and
// its crossings are left exactly as they were before the call.
func (l *Layout) SetWord(slot *WordLayout, word string) error {
	before := l.SnapshotWord(slot)
	applied := 0
	for p := 0; p < len(word) && p < slot.wordLen; p++ {
		if err := l.SetLetter(slot, p, word[p]); err != nil {
			for q := 0; q < applied; q++ {
				l.writeLetter(slot, q, before[q], true)
			}
			return err
		}
		applied++
	}
	return nil
}

// RestoreWord writes back a snapshot taken by SnapshotWord, position by
// position, through the same one-hop propagating write SetLetter uses, but
// without SetLetter's conflict check (per §4.5 "Setting to empty is
// symmetric").
func (l *Layout) RestoreWord(slot *WordLayout, snapshot []byte) {
	for p, c := range snapshot {
		l.writeLetter(slot, p, c, true)
	}
}

// ClearWord unsets every cell of slot, propagating each clear to its
// crossings.
func (l *Layout) ClearWord(slot *WordLayout) {
	for p := range slot.letters {
		l.writeLetter(slot, p, 0, true)
	}
}
