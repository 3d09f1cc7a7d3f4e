package unit

import (
	"fmt"
	"runtime"
)

// Location is a source position captured at declaration or assertion time.
// Reports link through it back to the test code.
type Location struct {
	File string
	Line int
}

// String returns the compiler-style file:line form.
func (l Location) String() string {
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// caller captures the location skip frames above the function invoking it;
// caller(0) is that function's own call site.
func caller(skip int) Location {
	_, file, line, ok := runtime.Caller(skip + 2)
	if !ok {
		return Location{File: "unknown"}
	}
	return Location{File: file, Line: line}
}
