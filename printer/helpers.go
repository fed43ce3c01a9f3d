package printer

import (
	"strings"

	"github.com/krotik/gqlfront/ast"
)

// join mirrors graphql-js's join: joins the non-empty elements of items
// with sep, producing "" when none are non-empty.
func join(items []string, sep string) string {
	var filtered []string
	for _, it := range items {
		if it != "" {
			filtered = append(filtered, it)
		}
	}
	return strings.Join(filtered, sep)
}

// concat is join with no separator.
func concat(items ...string) string {
	return join(items, "")
}

// wrap returns "" if s is empty, else start+s+end.
func wrap(start, s, end string) string {
	if s == "" {
		return ""
	}
	return start + s + end
}

// indent prefixes every line of s (including the first) with two spaces.
func indent(s string) string {
	if s == "" {
		return s
	}
	return "  " + strings.ReplaceAll(s, "\n", "\n  ")
}

// block renders items as a brace-delimited, newline-separated, 2-space
// indented list, or "" if items is empty (spec §4.F).
func block(items []string) string {
	joined := join(items, "\n")
	if joined == "" {
		return ""
	}
	return "{\n" + indent(joined) + "\n}"
}

// mapPrint prints every element of items in order, preserving source order
// (spec §4.F: directive and argument lists preserve source order).
func mapPrint[T ast.Node](items []T) []string {
	if len(items) == 0 {
		return nil
	}
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = print(it)
	}
	return out
}
