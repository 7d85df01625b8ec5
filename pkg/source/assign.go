package source

import "regexp"

// assignPattern recognizes "identifier = expression ;" where the left-hand
// side is a bare identifier. Array and member assignments are deliberately
// not recognized; the dialect is classified by pattern, not parsed.
var assignPattern = regexp.MustCompile(`\b([A-Za-z_][A-Za-z0-9_]*)\s*=\s*[^;]+;`)

// AssignedVar returns the variable assigned on the line, if the line
// contains an assignment. At most one assignment is recognized per line.
func (s Statement) AssignedVar() (string, bool) {
	m := assignPattern.FindStringSubmatch(s.Text)
	if m == nil {
		return "", false
	}
	return m[1], true
}
