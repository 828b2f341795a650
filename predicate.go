package selenite

import (
	"fmt"
	"strings"
)

// PredicateKind selects how a Predicate compares text.
type PredicateKind int

// The valid predicate kinds.
const (
	Equals PredicateKind = iota
	EqualsIgnoreCase
	Includes
	IncludesIgnoreCase
)

func (k PredicateKind) String() string {
	switch k {
	case Equals:
		return "equals"
	case EqualsIgnoreCase:
		return "equals ignoring case"
	case Includes:
		return "includes"
	case IncludesIgnoreCase:
		return "includes ignoring case"
	}
	return fmt.Sprintf("PredicateKind(%d)", int(k))
}

// Predicate is a test against an expected text.
type Predicate struct {
	Kind     PredicateKind
	Expected string
}

// Test reports whether actual satisfies the predicate.
func (p Predicate) Test(actual string) bool {
	switch p.Kind {
	case Equals:
		return actual == p.Expected
	case EqualsIgnoreCase:
		return strings.EqualFold(actual, p.Expected)
	case Includes:
		return strings.Contains(actual, p.Expected)
	case IncludesIgnoreCase:
		return strings.Contains(strings.ToLower(actual), strings.ToLower(p.Expected))
	}
	return false
}

func (p Predicate) String() string {
	return fmt.Sprintf("%s %q", p.Kind, p.Expected)
}
