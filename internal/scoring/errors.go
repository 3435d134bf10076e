package scoring

// ScoringError is a custom error type for scoring errors
type ScoringError string

// Error implements the error interface
func (e ScoringError) Error() string {
	return string(e)
}

// ErrInvalidRoll is returned when a roll has the wrong number of dice or a face outside the die
const ErrInvalidRoll ScoringError = "invalid roll"
