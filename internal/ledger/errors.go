package ledger

// LedgerError is a custom error type for ledger errors
type LedgerError string

// Error implements the error interface
func (e LedgerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig      LedgerError = "config cannot be nil"
	ErrInvalidRoster  LedgerError = "greed needs at least 2 distinct players"
	ErrUnknownPlayer  LedgerError = "player not in game"
	ErrNegativePoints LedgerError = "scorer returned negative points"
)
