package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)
var punctuationRegex = regexp.MustCompile(`[.,'()\-]`)

// NormalizeName lowercases a name and strips whitespace and punctuation
// so that "Korea, Rep." and "korea rep" compare equal.
func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = punctuationRegex.ReplaceAllString(name, "")
	return whitespaceRegex.ReplaceAllString(name, "")
}
