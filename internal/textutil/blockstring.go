package textutil

import (
	"strings"
)

// splitLines splits s on \r\n, \n and \r, matching the lexer's own line
// terminator handling so block-string dedent agrees with how the lexer
// counted lines while scanning the literal.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(s, "\n")
}

func leadingWhitespaceCount(line string) int {
	count := 0
	for _, r := range line {
		if r != ' ' && r != '\t' {
			return count
		}
		count++
	}
	return len(line)
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

/*
DedentBlockStringLines implements the GraphQL block-string dedent algorithm
(spec §4.B): split into lines, find the common leading-whitespace indentation
of every non-blank line *after the first*, strip it from those lines, then
trim leading and trailing blank lines from the whole set. The teacher's
StripUniformIndentation/TrimBlankLines pair does the equivalent job against a
single already-joined string; this version works line-by-line so it can be
reused directly as the lexer's intermediate representation before the lines
are rejoined with "\n".
*/
func DedentBlockStringLines(lines []string) []string {
	commonIndent := -1

	for i, line := range lines {
		if i == 0 {
			continue
		}
		if isBlank(line) {
			continue
		}
		indent := leadingWhitespaceCount(line)
		if commonIndent == -1 || indent < commonIndent {
			commonIndent = indent
		}
	}

	out := make([]string, len(lines))
	copy(out, lines)

	if commonIndent > 0 {
		for i := 1; i < len(out); i++ {
			if len(out[i]) >= commonIndent {
				out[i] = out[i][commonIndent:]
			} else {
				out[i] = ""
			}
		}
	}

	start := 0
	for start < len(out) && isBlank(out[start]) {
		start++
	}

	end := len(out)
	for end > start && isBlank(out[end-1]) {
		end--
	}

	return out[start:end]
}

/*
PrintBlockString renders value as a triple-quoted block string (spec §4.B).
Interior `"""` sequences are escaped as `\"""`. Multi-line form (leading and
trailing newline, each content line on its own row) is used when the value
contains a newline, ends in a quote or backslash, or preferMultipleLines is
set. A leading space is preserved on an otherwise single-line value so that
re-dedenting on reparse does not eat it.
*/
func PrintBlockString(value string, preferMultipleLines bool) string {
	escaped := strings.ReplaceAll(value, `"""`, `\"""`)

	lines := splitLines(escaped)
	isSingleLine := len(lines) == 1

	hasLeadingSpace := len(value) > 0 && (value[0] == ' ' || value[0] == '\t')
	hasTrailingQuote := strings.HasSuffix(value, `"`)
	hasTrailingSlash := strings.HasSuffix(value, `\`)
	printAsMultipleLines := !isSingleLine || hasTrailingQuote || hasTrailingSlash || preferMultipleLines

	var b strings.Builder
	b.WriteString(`"""`)

	if printAsMultipleLines && !(isSingleLine && hasLeadingSpace) {
		b.WriteString("\n")
	}

	b.WriteString(escaped)

	if printAsMultipleLines {
		b.WriteString("\n")
	}

	b.WriteString(`"""`)

	return b.String()
}
