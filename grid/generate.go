package grid

import (
	"fmt"
	"time"
)

// Symmetry selects how a randomly-placed black cell is mirrored elsewhere in
// the grid.
type Symmetry int

const (
	// SymmetryNone places one black cell per random point: no mirroring.
	SymmetryNone Symmetry = iota
	// SymmetryDiagonal mirrors a point across the grid's main diagonal,
	// placing two black cells per point.
	SymmetryDiagonal
	// SymmetryFourWay mirrors a point through four 90° rotations about the
	// grid center, placing four black cells per point (the classic American
	// crossword symmetry).
	SymmetryFourWay
)

// RandSource is the seedable uniform source GenerateRandom draws from.
// *github.com/karnobh/crosswordist/internal/testutil.Rand satisfies this.
type RandSource interface {
	Intn(n int) int
}

// GenerateConfig configures GenerateRandom. AllChecked must be true: the
// reference generator's allChecked=false mode was never implemented and is
// rejected with ErrInvalidArgument, per the original source's own
// `raise Exception("all_checked=False not supported")`.
type GenerateConfig struct {
	Size        int
	BlackRatio  float64
	Symmetry    Symmetry
	MinWordSize int
	AllChecked  bool
	Timeout     time.Duration
	Rand        RandSource
}

// symmetryPoints returns every distinct black cell produced by placing one
// point under cfg's symmetry. SymmetryFourWay applies the 90°-rotation
// transform repeatedly (mirroring create_random_grid's use of ROT_INT_90);
// SymmetryDiagonal swaps x and y. A point that
// maps to itself under the symmetry (e.g. one on the main diagonal, or a
// grid's exact rotational center) is reported once, not once per mapping.
func symmetryPoints(sym Symmetry, size, x, y int) [][2]int {
	transform := Translate(size-1, 0).Mul(Rotate90)
	var pts [][2]int
	switch sym {
	case SymmetryNone:
		pts = [][2]int{{x, y}}
	case SymmetryDiagonal:
		pts = [][2]int{{x, y}, {y, x}}
	case SymmetryFourWay:
		pts = make([][2]int, 0, 4)
		cx, cy := x, y
		for i := 0; i < 4; i++ {
			pts = append(pts, [2]int{cx, cy})
			cx, cy = transform.Apply(cx, cy)
		}
	default:
		pts = [][2]int{{x, y}}
	}
	return dedupPoints(pts)
}

// dedupPoints removes repeated cells while preserving order.
func dedupPoints(pts [][2]int) [][2]int {
	seen := make(map[[2]int]bool, len(pts))
	out := pts[:0]
	for _, p := range pts {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

// GenerateRandom produces a random W×H (Size×Size) black/white grid
// satisfying cfg.BlackRatio and cfg.MinWordSize, mirroring black-cell
// placement under cfg.Symmetry. It retries placements that would create a
// run shorter than MinWordSize (but not zero) adjacent to the new black
// cells, and restarts from a blank grid periodically to escape dead ends,
// exactly as the reference generator does. It returns ErrGridGenerationTimeout
// (wrapping the numeric deadline) if cfg.Timeout elapses before a valid grid
// is produced; a zero Timeout sets no deadline.
func GenerateRandom(cfg GenerateConfig) (*Grid, error) {
	if !cfg.AllChecked {
		return nil, fmt.Errorf("%w: allChecked=false is not supported", ErrInvalidArgument)
	}
	switch cfg.Symmetry {
	case SymmetryNone, SymmetryDiagonal, SymmetryFourWay:
	default:
		return nil, fmt.Errorf("%w: unknown symmetry %d", ErrInvalidArgument, cfg.Symmetry)
	}
	if cfg.Size < 1 {
		return nil, fmt.Errorf("%w: size must be positive", ErrInvalidArgument)
	}
	if cfg.BlackRatio < 0 || cfg.BlackRatio >= 1 {
		return nil, fmt.Errorf("%w: black ratio must be in [0,1)", ErrInvalidArgument)
	}

	size := cfg.Size
	incX := []int{-1, 1, 0, 0}
	incY := []int{0, 0, -1, 1}

	g := NewGrid(size, size)
	maxBlacks := int(float64(size*size) * cfg.BlackRatio)
	blacksNum := 0
	iterations := 0
	maxIterations := size * size * size

	var deadline time.Time
	if cfg.Timeout > 0 {
		deadline = time.Now().Add(cfg.Timeout)
	}

	for blacksNum <= maxBlacks {
		if !deadline.IsZero() && time.Now().After(deadline) {
			return nil, fmt.Errorf("%w: deadline of %g seconds exceeded", ErrGridGenerationTimeout, cfg.Timeout.Seconds())
		}
		if iterations > maxIterations {
			g = NewGrid(size, size)
			blacksNum = 0
			iterations = 0
		}

		x, y := cfg.Rand.Intn(size), cfg.Rand.Intn(size)
		points := symmetryPoints(cfg.Symmetry, size, x, y)

		regen := false
		for _, p := range points {
			if g.OutOfRange(p[0], p[1]) || g.Get(p[0], p[1]) != 0 {
				regen = true
				break
			}
		}
		if regen {
			iterations++
			continue
		}

		for _, p := range points {
			g.Set(p[0], p[1], 1)
		}
		blacksNum += len(points)

		for _, p := range points {
			for dir := 0; dir < 4; dir++ {
				cx, cy := p[0]+incX[dir], p[1]+incY[dir]
				d := 0
				for d < cfg.MinWordSize && !g.OutOfRange(cx, cy) && g.Get(cx, cy) == 0 {
					cx += incX[dir]
					cy += incY[dir]
					d++
				}
				if d > 0 && d != cfg.MinWordSize {
					regen = true
					break
				}
			}
			if regen {
				break
			}
		}

		if regen {
			for _, p := range points {
				g.Set(p[0], p[1], 0)
			}
			blacksNum -= len(points)
		}
		iterations++
	}
	return g, nil
}
