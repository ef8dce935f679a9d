package library

import "errors"

// Sentinel errors for use with errors.Is(). These classify every way a
// circulation request can fail without crashing the caller.
var (
	// ErrNotFound indicates an unknown book or student ID.
	ErrNotFound = errors.New("not found")

	// ErrOutOfStock indicates the book has no copies left to lend.
	ErrOutOfStock = errors.New("out of stock")

	// ErrLimitExceeded indicates the student is at the borrow cap.
	ErrLimitExceeded = errors.New("limit exceeded")

	// ErrNotBorrowed indicates a return for a book the student does not hold.
	ErrNotBorrowed = errors.New("not borrowed")

	// ErrStorage indicates the table files could not be read or written.
	ErrStorage = errors.New("storage unavailable")
)

// CirculationError pairs a failure kind with the message shown to the
// librarian at the desk. Callers branch on the kind via errors.Is and
// display Error() verbatim.
type CirculationError struct {
	Kind    error
	Message string
}

// Error implements the error interface.
func (e *CirculationError) Error() string {
	return e.Message
}

// Unwrap returns the sentinel kind for errors.Is() support.
func (e *CirculationError) Unwrap() error {
	return e.Kind
}

func newCirculationError(kind error, message string) error {
	return &CirculationError{Kind: kind, Message: message}
}

// IsNotFound checks if an error is an unknown-ID error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsOutOfStock checks if an error is a no-copies-left error.
func IsOutOfStock(err error) bool {
	return errors.Is(err, ErrOutOfStock)
}

// IsLimitExceeded checks if an error is a borrow-cap error.
func IsLimitExceeded(err error) bool {
	return errors.Is(err, ErrLimitExceeded)
}

// IsNotBorrowed checks if an error is a return-without-loan error.
func IsNotBorrowed(err error) bool {
	return errors.Is(err, ErrNotBorrowed)
}
