package clock

import "fmt"

// InvalidArgumentError reports a caller-supplied value that cannot be used:
// a malformed numeric string, an out-of-range day of the month, or a
// malformed target expression.
type InvalidArgumentError struct {
	Field string
	Value any
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid value %v for %s", e.Value, e.Field)
}

// FormatMismatchError reports a time string that does not match TimeLayout.
type FormatMismatchError struct {
	Value string
}

func (e *FormatMismatchError) Error() string {
	return fmt.Sprintf("time %q does not match format %q", e.Value, TimeLayout)
}
