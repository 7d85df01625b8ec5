// Package source normalizes raw text in the restricted statement-per-line
// dialect and classifies each surviving line by keyword.
package source

import (
	"regexp"
	"strings"
)

// comments matches // line comments and non-nested /* ... */ block comments.
var comments = regexp.MustCompile(`//[^\n]*|/\*(?s:.*?)\*/`)

// Normalize strips comments from raw source, splits it into lines, trims
// each line and drops lines that are empty or consist of a single brace.
// The result is the ordered statement sequence every later stage operates
// on; positions are implied by slice index.
//
// Normalize is idempotent: running it on the joined text of its own output
// yields the same sequence.
func Normalize(raw string) []Statement {
	stripped := comments.ReplaceAllString(raw, "")

	var stmts []Statement
	for _, line := range strings.Split(stripped, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line == "{" || line == "}" {
			continue
		}
		stmts = append(stmts, NewStatement(line))
	}
	return stmts
}

// Texts returns the literal line text of each statement, in order.
func Texts(stmts []Statement) []string {
	texts := make([]string, len(stmts))
	for i, s := range stmts {
		texts[i] = s.Text
	}
	return texts
}
