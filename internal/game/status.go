package game

// Status is the outcome state of a session.
type Status int

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
	InsufficientMaterial
	Repetition
)

// String returns the string representation of a status.
func (s Status) String() string {
	names := []string{"ongoing", "checkmate", "stalemate", "insufficient material", "repetition"}
	if s >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "unknown"
}

// IsOver reports whether no further moves may be played.
func (s Status) IsOver() bool {
	return s != Ongoing
}

// IsDraw reports whether the game ended without a winner.
func (s Status) IsDraw() bool {
	return s == Stalemate || s == InsufficientMaterial || s == Repetition
}
