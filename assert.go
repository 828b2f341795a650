package selenite

import (
	"fmt"
	"reflect"
)

// Default messages of the assertion helpers.
const (
	DefaultMsgTrue  = "Condition should be true"
	DefaultMsgFalse = "Condition should be false"
	DefaultMsgEqual = "Actual value %v is not equal to expected value %v"
	DefaultMsgIn    = "Object %v should be in container %v"
)

// IsTrue returns an AssertionError unless cond holds. An empty msg selects
// DefaultMsgTrue.
func IsTrue(cond bool, msg string) error {
	if cond {
		return nil
	}
	if msg == "" {
		msg = DefaultMsgTrue
	}
	return &AssertionError{Msg: msg, Expected: true, Actual: false}
}

// IsFalse returns an AssertionError if cond holds. An empty msg selects
// DefaultMsgFalse.
func IsFalse(cond bool, msg string) error {
	if !cond {
		return nil
	}
	if msg == "" {
		msg = DefaultMsgFalse
	}
	return &AssertionError{Msg: msg, Expected: false, Actual: true}
}

// IsEqual returns an AssertionError unless actual and expected are deeply
// equal.
func IsEqual(actual, expected interface{}, msg string) error {
	if reflect.DeepEqual(actual, expected) {
		return nil
	}
	if msg == "" {
		msg = fmt.Sprintf(DefaultMsgEqual, actual, expected)
	}
	return &AssertionError{Msg: msg, Expected: expected, Actual: actual}
}

// IsIn returns an AssertionError unless container includes obj as a
// substring.
func IsIn(obj, container string, msg string) error {
	if (Predicate{Kind: Includes, Expected: obj}).Test(container) {
		return nil
	}
	if msg == "" {
		msg = fmt.Sprintf(DefaultMsgIn, obj, container)
	}
	return &AssertionError{Msg: msg, Expected: obj, Actual: container}
}
