package selenite

import "fmt"

// MissingColumnError is returned when a query names a column that a row does
// not have.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing column %q", e.Column)
}

// AssertionError is returned by the Should* operations and the Is* assertion
// helpers when a condition does not hold.
type AssertionError struct {
	Msg string
	// Expected and Actual are the compared values, when the assertion compares
	// values.
	Expected, Actual interface{}
	// Matched holds the rows that were matched, if any, for diagnostics.
	Matched interface{}
}

func (e *AssertionError) Error() string {
	return e.Msg
}

// ConfigurationError is returned when a paginated table shows a different
// header list on a later page than on the first one.
type ConfigurationError struct {
	// Page is the zero-based index of the offending page.
	Page      int
	Want, Got []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("page %d has headers %q, want %q as on the first page", e.Page, e.Got, e.Want)
}
