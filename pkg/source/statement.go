package source

import "strings"

// Kind is the dominant classification of a statement line. A line can carry
// more than one keyword; Kind reflects the one that drives control flow,
// chosen in loop > conditional > else > jump > assignment order. Use the
// HasKeyword and ContainsBrace predicates when the question is about a
// specific keyword rather than the dominant role.
type Kind string

const (
	KindFor      Kind = "for"
	KindWhile    Kind = "while"
	KindElseIf   Kind = "else_if"
	KindIf       Kind = "if"
	KindElse     Kind = "else"
	KindReturn   Kind = "return"
	KindBreak    Kind = "break"
	KindContinue Kind = "continue"
	KindAssign   Kind = "assign"
	KindOther    Kind = "other"
)

// Statement is one trimmed, non-empty source line. It is immutable once
// produced by Normalize.
type Statement struct {
	Text string `json:"text" msgpack:"text"`
	Kind Kind   `json:"kind" msgpack:"kind"`
}

// NewStatement classifies a trimmed line.
func NewStatement(text string) Statement {
	return Statement{Text: text, Kind: classify(text)}
}

func classify(text string) Kind {
	words := tokens(text)
	switch {
	case contains(words, "for"):
		return KindFor
	case contains(words, "while"):
		return KindWhile
	case followedBy(words, "else", "if"):
		return KindElseIf
	case contains(words, "if"):
		return KindIf
	case contains(words, "else"):
		return KindElse
	case contains(words, "return"):
		return KindReturn
	case contains(words, "break"):
		return KindBreak
	case contains(words, "continue"):
		return KindContinue
	case assignPattern.MatchString(text):
		return KindAssign
	default:
		return KindOther
	}
}

// HasKeyword reports whether kw occurs in the line as a whole word.
// Whole-word matching keeps identifiers like "forward" from triggering
// on "for".
func (s Statement) HasKeyword(kw string) bool {
	return contains(tokens(s.Text), kw)
}

// IsControlHeader reports whether the line opens a control construct
// (if, else if, else, for, while).
func (s Statement) IsControlHeader() bool {
	for _, kw := range []string{"if", "else", "for", "while"} {
		if s.HasKeyword(kw) {
			return true
		}
	}
	return false
}

// IsJump reports whether the line transfers control away
// (return, break, continue).
func (s Statement) IsJump() bool {
	for _, kw := range []string{"return", "break", "continue"} {
		if s.HasKeyword(kw) {
			return true
		}
	}
	return false
}

// ContainsBrace reports whether the line carries a literal { or }.
func (s Statement) ContainsBrace() bool {
	return strings.ContainsAny(s.Text, "{}")
}

// tokens splits a line into maximal identifier-shaped runs. Everything
// else (operators, punctuation, whitespace) separates tokens.
func tokens(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !isWordRune(r)
	})
}

func isWordRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

func contains(words []string, kw string) bool {
	for _, w := range words {
		if w == kw {
			return true
		}
	}
	return false
}

// followedBy reports whether first occurs immediately before second.
func followedBy(words []string, first, second string) bool {
	for i := 0; i+1 < len(words); i++ {
		if words[i] == first && words[i+1] == second {
			return true
		}
	}
	return false
}
