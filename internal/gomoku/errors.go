package gomoku

import (
	"errors"
	"fmt"
)

var (
	ErrBadBoardSize      = errors.New("bad board size")
	ErrInvalidSymbol     = errors.New("invalid symbol")
	ErrInvalidMoveParity = errors.New("invalid move parity")
)

// ValidationError describes why a grid was rejected. Kind is one of the
// sentinels above; only the fields relevant to Kind are set.
type ValidationError struct {
	Kind error

	// ErrBadBoardSize: Row is -1 when the row count is wrong.
	Row      int
	Expected int
	Actual   int

	// ErrInvalidSymbol
	Col    int
	Symbol Cell

	// ErrInvalidMoveParity
	CountA int
	CountB int
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case ErrBadBoardSize:
		if e.Row < 0 {
			return fmt.Sprintf("%s: got %d rows, want %d", e.Kind, e.Actual, e.Expected)
		}
		return fmt.Sprintf("%s: row %d has %d cells, want %d", e.Kind, e.Row, e.Actual, e.Expected)
	case ErrInvalidSymbol:
		return fmt.Sprintf("%s %q at row %d, column %d", e.Kind, rune(e.Symbol), e.Row, e.Col)
	case ErrInvalidMoveParity:
		return fmt.Sprintf("%s: %d %c and %d %c", e.Kind, e.CountA, MarkA, e.CountB, MarkB)
	default:
		return fmt.Sprintf("invalid board: %v", e.Kind)
	}
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// IsValidationError reports whether err (or anything it wraps) is a board
// validation failure.
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
