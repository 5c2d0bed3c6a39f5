package helpers

import (
	"regexp"
	"strconv"
)

var placeholderRegex = regexp.MustCompile(`\$(\d)`)

// ReplacePlaceholders substitutes $1, $2, ... in template with values.
// Out-of-range placeholders are replaced with an empty string.
func ReplacePlaceholders(template string, values ...string) string {
	return placeholderRegex.ReplaceAllStringFunc(template, func(m string) string {
		index, err := strconv.Atoi(m[1:])
		if err != nil || index < 1 || index > len(values) {
			return ""
		}
		return values[index-1]
	})
}
