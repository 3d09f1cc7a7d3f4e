package unit

import (
	"path/filepath"
	"strings"
)

// Match filters entities by name. Patterns use the usual shell wildcards
// ("Codec*", "*Parse*"); a pattern without wildcards matches as a substring.
// An empty pattern keeps everything.
func Match(entities []Entity, pattern string) []Entity {
	if pattern == "" {
		return entities
	}
	var matched []Entity
	for _, e := range entities {
		if matchName(e.Name(), pattern) {
			matched = append(matched, e)
		}
	}
	return matched
}

func matchName(name, pattern string) bool {
	if ok, err := filepath.Match(pattern, name); err == nil && ok {
		return true
	}
	if strings.Contains(pattern, "*") {
		matchedPart := false
		for _, part := range strings.Split(pattern, "*") {
			if part == "" {
				continue
			}
			matchedPart = true
			if !strings.Contains(name, part) {
				return false
			}
		}
		return matchedPart
	}
	if !strings.Contains(pattern, "?") {
		return strings.Contains(name, pattern)
	}
	return false
}
