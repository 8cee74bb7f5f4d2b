package project

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// normalizePattern turns a descriptor file pattern into a doublestar pattern
// over slash separated relative paths. "**" as a whole path segment crosses
// directories, "*" and "?" do not.
func normalizePattern(pattern string) (string, error) {
	pattern = strings.TrimPrefix(pattern, "./")
	if !doublestar.ValidatePattern(pattern) {
		return "", doublestar.ErrBadPattern
	}

	return pattern, nil
}

// matchPattern reports whether rel matches a normalized pattern.
func matchPattern(pattern, rel string) bool {
	ok, err := doublestar.Match(pattern, rel)
	return err == nil && ok
}
