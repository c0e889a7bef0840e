package filter

import "errors"

// Common errors returned by the filter package.
var (
	// ErrEmptyExpression is returned when the expression is blank.
	ErrEmptyExpression = errors.New("empty filter expression")

	// ErrNotBoolean is returned when an expression evaluates to a
	// non-boolean value.
	ErrNotBoolean = errors.New("filter expression must evaluate to a boolean")
)
