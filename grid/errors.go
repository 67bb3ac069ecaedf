package grid

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "grid: " + string(e) }

var (
	// ErrInvalidArgument is returned for a non-positive grid size, a black
	// ratio outside [0,1), an unknown symmetry, or a generator called with
	// allChecked=false (the
	// reference generator's unsupported mode; see DESIGN.md).
	ErrInvalidArgument = Error("invalid argument")

	// ErrGridGenerationTimeout is returned, wrapped with the numeric
	// deadline via fmt.Errorf, when GenerateRandom exhausts its wall-clock
	// budget without satisfying every placement constraint.
	ErrGridGenerationTimeout = Error("grid generation timed out")

	// ErrLetterConflict is returned when a slot's cell is assigned a
	// character that disagrees with an already-set character at that cell.
	// This indicates a solver invariant violation and must never be
	// silently ignored.
	ErrLetterConflict = Error("letter conflict")
)
