package wordindex

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "wordindex: " + string(e) }

var (
	// ErrIndexFrozen is returned by AddWord or MakeIndex once MakeIndex has
	// already been called on the receiver.
	ErrIndexFrozen = Error("index already constructed")

	// ErrWordLengthMismatch is returned by a PerLengthIndex's AddWord when the
	// word's length differs from the index's fixed length.
	ErrWordLengthMismatch = Error("word length does not match index length")

	// ErrIndexNotReady is returned by lookup primitives called before
	// MakeIndex.
	ErrIndexNotReady = Error("index not yet constructed")

	// ErrLetterNotInAlphabet is returned when a lookup mapping names a
	// letter outside the index's alphabet.
	ErrLetterNotInAlphabet = Error("letter outside alphabet")

	// ErrIndexLoadFailure is returned by Load when the JSON is malformed, a
	// base64 payload is malformed, or a stored checksum does not match its
	// recomputed value.
	ErrIndexLoadFailure = Error("index failed to load")
)
