package predictor

import (
	"errors"
	"fmt"
)

// ErrEmptySeries is returned when a symbol resolves to a series with no
// bars; scoring is undefined without data.
var ErrEmptySeries = errors.New("no bars available for symbol")

// ValidationError rejects malformed input: empty symbol or an
// unrecognized timeframe.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
