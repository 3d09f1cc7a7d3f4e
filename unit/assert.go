package unit

import (
	"fmt"
	"math"
	"reflect"
	"unicode/utf8"
)

// defaultMessage is recorded when a failing assertion carries no diagnostic
// of its own.
const defaultMessage = "assert failed."

// caseAbort is the sentinel carried by the panic that unwinds a failing
// case body back to its run boundary. It never escapes the runner.
type caseAbort struct {
	tc *Case
}

// String makes a stray abort readable when it surfaces as a foreign panic
// inside another case's boundary.
func (a caseAbort) String() string {
	return fmt.Sprintf("abort from case %q", a.tc.name)
}

// pass records a passing assertion. The last recorded outcome wins, so a
// body keeps its case at Pass only until an assertion fails.
func (c *Case) pass() {
	c.result = Pass
}

// failAt records the diagnostic and aborts the body. It never returns.
func (c *Case) failAt(loc Location, format string, args ...any) {
	c.result = Fail
	c.message = clip(fmt.Sprintf(format, args...), MaxMessageLen)
	c.msgLoc = loc
	panic(caseAbort{tc: c})
}

// clip bounds s to max bytes without splitting a UTF-8 sequence.
func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// Pass marks the case passed and continues; a later assertion may still
// overturn the outcome.
func (c *Case) Pass() {
	c.pass()
}

// Fail aborts the case with message, or a default when message is empty.
func (c *Case) Fail(message string) {
	if message == "" {
		message = defaultMessage
	}
	c.failAt(caller(0), "%s", message)
}

// Assert evaluates an arbitrary condition. On failure the case records
// message (or a default when message is empty) and the body stops here.
func (c *Case) Assert(cond bool, message string) {
	if cond {
		c.pass()
		return
	}
	if message == "" {
		message = defaultMessage
	}
	c.failAt(caller(0), "%s", message)
}

// AssertIntEquals compares two signed integers.
func (c *Case) AssertIntEquals(expected, actual int64) {
	if actual == expected {
		c.pass()
		return
	}
	c.failAt(caller(0), "expected <%d>, but was <%d>", expected, actual)
}

// AssertFloatEquals compares two floats within tolerance: the case fails
// exactly when |actual-expected| exceeds tolerance. A NaN tolerance is a
// defect in the test itself and panics.
func (c *Case) AssertFloatEquals(expected, actual, tolerance float64) {
	if math.IsNaN(tolerance) {
		panic("unit: assertion tolerance is NaN")
	}
	if deviation := math.Abs(actual - expected); deviation > tolerance {
		c.failAt(caller(0), "expected <%f>, but was <%f> (Deviation <%f> exceeds <%f>)",
			expected, actual, deviation, tolerance)
	} else {
		c.pass()
	}
}

// AssertSame passes when expected and actual denote the same referenced
// object, or when both denote nothing. Operands must be of reference kind
// (pointer, slice, map, channel or function); identity is undefined for
// plain values, so passing one panics.
func (c *Case) AssertSame(expected, actual any) {
	loc := caller(0)
	expAddr, expOK := refAddr(expected)
	actAddr, actOK := refAddr(actual)
	if expOK == actOK && expAddr == actAddr {
		c.pass()
		return
	}
	switch {
	case !expOK:
		c.failAt(loc, "expected <NULL>, but was <0x%x>", actAddr)
	case !actOK:
		c.failAt(loc, "expected <0x%x>, but was <NULL>", expAddr)
	default:
		c.failAt(loc, "expected <0x%x>, but was <0x%x>", expAddr, actAddr)
	}
}

// AssertNotNil fails when actual references nothing. Values of
// non-reference kind always pass: a plain value cannot be null.
func (c *Case) AssertNotNil(actual any) {
	if isNilRef(actual) {
		c.failAt(caller(0), "<NULL> unexpected")
	}
	c.pass()
}

// AssertStrEquals compares two strings byte for byte.
func (c *Case) AssertStrEquals(expected, actual string) {
	if actual == expected {
		c.pass()
		return
	}
	c.failAt(caller(0), "expected <%s>, but was <%s>", expected, actual)
}

// AssertBytesEquals compares the first n bytes of two buffers and reports
// the first mismatching offset. Buffers shorter than n are a defect in the
// test itself and panic; n must not be negative.
func (c *Case) AssertBytesEquals(expected, actual []byte, n int) {
	if expected == nil {
		panic("unit: expected byte range is nil")
	}
	if n < 0 || n > len(expected) || n > len(actual) {
		panic(fmt.Sprintf("unit: compare of %d bytes exceeds buffers (expected %d, actual %d)",
			n, len(expected), len(actual)))
	}
	loc := caller(0)
	for i := 0; i < n; i++ {
		if expected[i] != actual[i] {
			c.failAt(loc, "mismatch at offset <%d>: expected <0x%02X>, but was <0x%02X>",
				i, expected[i], actual[i])
		}
	}
	c.pass()
}

// refAddr resolves v to the address it references; ok is false when v is
// nil or a nil reference. Non-reference kinds panic.
func refAddr(v any) (addr uintptr, ok bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Chan, reflect.Func, reflect.Map, reflect.Slice:
		if rv.IsNil() {
			return 0, false
		}
		return rv.Pointer(), true
	default:
		panic(fmt.Sprintf("unit: %T is not a reference", v))
	}
}

// isNilRef reports whether v is nil or a nil value of reference kind.
func isNilRef(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Chan, reflect.Func, reflect.Map, reflect.Slice:
		return rv.IsNil()
	}
	return false
}
