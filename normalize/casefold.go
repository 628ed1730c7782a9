package normalize

import (
	"strings"
	"unicode"
)

// ToSnakeCase rewrites an identifier into snake_case per spec §4.3.4: split
// on runs of non-alphanumeric characters, split each alphanumeric chunk
// before a humped uppercase letter (preceded or followed by a lowercase
// letter), lowercase and join with "_", collapse repeated underscores, trim
// the ends, and prefix an underscore if the result is empty or starts with
// a digit.
//
// splitHumps is the only step that differs between build variants (see
// casefold_scan.go and casefold_regex.go); both must agree on every ASCII
// input.
func ToSnakeCase(s string) string {
	chunks := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var pieces []string

	for _, chunk := range chunks {
		pieces = append(pieces, splitHumps(chunk)...)
	}

	var nonEmpty []string

	for _, p := range pieces {
		if p != "" {
			nonEmpty = append(nonEmpty, strings.ToLower(p))
		}
	}

	result := strings.Join(nonEmpty, "_")

	for strings.Contains(result, "__") {
		result = strings.ReplaceAll(result, "__", "_")
	}

	result = strings.Trim(result, "_")

	if result == "" || unicode.IsDigit(rune(result[0])) {
		result = "_" + result
	}

	return result
}
