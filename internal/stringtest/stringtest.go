// Package stringtest provides small string helpers for building expected
// test output: dedenting an indented multi-line literal, and joining lines
// with an explicit terminator.
package stringtest

import "strings"

// Input dedents a multi-line string literal for use as test input or an
// expected value. It strips exactly one leading and one trailing newline
// (so a backtick literal can open and close on their own lines without
// forcing every case to also juggle blank-line padding), then removes the
// minimum common leading whitespace from every non-blank line. Blank and
// whitespace-only lines collapse to empty strings rather than keeping
// stray trailing whitespace.
func Input(s string) string {
	if strings.HasPrefix(s, "\n") {
		s = s[1:]
	}

	if strings.HasSuffix(s, "\n") {
		s = s[:len(s)-1]
	}

	lines := strings.Split(s, "\n")

	indent := -1

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		n := leadingWhitespace(line)
		if indent == -1 || n < indent {
			indent = n
		}
	}

	if indent < 0 {
		indent = 0
	}

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ""
			continue
		}

		lines[i] = line[indent:]
	}

	return strings.Join(lines, "\n")
}

func leadingWhitespace(line string) int {
	n := 0

	for n < len(line) && (line[n] == ' ' || line[n] == '\t') {
		n++
	}

	return n
}

// JoinLF joins multiple strings with LF line endings.
func JoinLF(ss ...string) string {
	var sb strings.Builder

	for i, s := range ss {
		if i > 0 {
			sb.WriteByte('\n')
		}

		sb.WriteString(s)
	}

	return sb.String()
}

// JoinCRLF joins multiple strings with CRLF line endings.
func JoinCRLF(ss ...string) string {
	var sb strings.Builder

	for i, s := range ss {
		if i > 0 {
			sb.WriteByte('\r')
			sb.WriteByte('\n')
		}

		sb.WriteString(s)
	}

	return sb.String()
}
