//go:build !regexcase

package normalize

import "unicode"

// splitHumps is the default hand-rolled backend: it scans runes and opens a
// new piece before an uppercase letter that borders a lowercase letter on
// either side, so "HTTPServer" becomes ["HTTP","Server"] and "fooBar"
// becomes ["foo","Bar"]. Build with -tags regexcase to swap in the
// regexp-backed equivalent in casefold_regex.go.
func splitHumps(chunk string) []string {
	runes := []rune(chunk)
	if len(runes) == 0 {
		return nil
	}

	var pieces []string

	start := 0

	for i := 1; i < len(runes); i++ {
		if !unicode.IsUpper(runes[i]) {
			continue
		}

		prevLower := unicode.IsLower(runes[i-1])
		nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

		if prevLower || nextLower {
			pieces = append(pieces, string(runes[start:i]))
			start = i
		}
	}

	pieces = append(pieces, string(runes[start:]))

	return pieces
}
