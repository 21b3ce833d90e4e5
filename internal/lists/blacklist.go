// fnmatch pattern list
package lists

import (
	"path/filepath"
)

// Blacklist holds fnmatch patterns of values to exclude from sequences.
type Blacklist []string

// Check verify patterns are valid.
//
// Use it before using MatchString().
func (bl *Blacklist) Check() error {
	for _, pattern := range *bl {
		_, err := filepath.Match(pattern, "pouet")
		if err != nil {
			return err
		}
	}
	return nil
}

// MatchString returns the first pattern that matches the item.
//
// Use Check() before using MatchString().
// panics if pattern is invalid.
// returns empty string if no match.
func (bl *Blacklist) MatchString(item string) string {
	for _, pattern := range *bl {
		ok, err := filepath.Match(pattern, item)
		if err != nil {
			// Use Check() before using MatchString().
			panic(err)
		}
		if ok {
			return pattern
		}
	}
	return ""
}
