// Package report renders finished test runs: a console summary block, an
// HTML document and a JSON results file for later review.
package report

import "time"

// Timestamp formats t the way every renderer expects: ISO-8601 in UTC with
// a numeric zone designator, e.g. "2026-08-25T14:22:05+0000".
func Timestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05-0700")
}
