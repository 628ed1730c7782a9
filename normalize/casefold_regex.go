//go:build regexcase

package normalize

import "regexp"

// splitHumps is the regexp-backed alternate backend, selected with
// -tags regexcase. Go's RE2 engine has no lookaround, so the hump boundary
// is found with two substitution passes instead of the scanner's
// rune-by-rune walk: first split a run of capitals or digits before a
// trailing Capital+lowercase ("HTTPServer" -> "HTTP_Server", "v2Beta" ->
// "v2_Beta"), then split a lowercase directly followed by a capital
// ("fooBar" -> "foo_Bar"). Must agree with casefold_scan.go on every ASCII
// input.
var (
	humpRunBoundary    = regexp.MustCompile(`([A-Z0-9]+)([A-Z][a-z]+)`)
	humpSingleBoundary = regexp.MustCompile(`([a-z])([A-Z])`)
)

func splitHumps(chunk string) []string {
	if chunk == "" {
		return nil
	}

	marked := humpRunBoundary.ReplaceAllString(chunk, "$1\x00$2")
	marked = humpSingleBoundary.ReplaceAllString(marked, "$1\x00$2")

	var pieces []string

	start := 0

	for i := 0; i < len(marked); i++ {
		if marked[i] == 0 {
			pieces = append(pieces, marked[start:i])
			start = i + 1
		}
	}

	pieces = append(pieces, marked[start:])

	return pieces
}
