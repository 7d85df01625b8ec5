package source

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		text string
		want Kind
	}{
		{"for (i = 0; i < n; i++) {", KindFor},
		{"while (x > 0) {", KindWhile},
		{"} else if (x == 2) {", KindElseIf},
		{"if (x > 0) {", KindIf},
		{"} else {", KindElse},
		{"return total;", KindReturn},
		{"break;", KindBreak},
		{"continue;", KindContinue},
		{"x = 1;", KindAssign},
		{"int x = 5;", KindAssign},
		{"printf(\"%d\", x);", KindOther},
		{"int x;", KindOther},
		// Whole-word matching: identifiers containing keywords do not trigger.
		{"forward(x);", KindOther},
		{"whilelist = next;", KindAssign},
		{"int iffy;", KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := NewStatement(tt.text).Kind; got != tt.want {
				t.Errorf("classify(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestStatementPredicates(t *testing.T) {
	s := NewStatement("if (x > 0) {")
	if !s.IsControlHeader() {
		t.Error("if line should be a control header")
	}
	if !s.ContainsBrace() {
		t.Error("line with { should report a brace")
	}
	if s.IsJump() {
		t.Error("if line is not a jump")
	}

	jump := NewStatement("return x;")
	if !jump.IsJump() {
		t.Error("return line should be a jump")
	}
	if jump.IsControlHeader() {
		t.Error("return line is not a control header")
	}

	plain := NewStatement("forward(x);")
	if plain.HasKeyword("for") {
		t.Error(`"forward" must not match keyword "for"`)
	}
}

func TestAssignedVar(t *testing.T) {
	tests := []struct {
		text    string
		wantVar string
		wantOK  bool
	}{
		{"x = 1;", "x", true},
		{"int x = 5;", "x", true},
		{"total = total + n;", "total", true},
		{"for (i = 0; i < n; i++) {", "i", true},
		// Array and member assignment targets are not recognized.
		{"arr[i] = 3;", "", false},
		// Compound assignment is not a plain definition.
		{"x += 1;", "", false},
		// No trailing semicolon, no match.
		{"if (x > 0)", "", false},
		{"int x;", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := NewStatement(tt.text).AssignedVar()
			if got != tt.wantVar || ok != tt.wantOK {
				t.Errorf("AssignedVar(%q) = (%q, %v), want (%q, %v)",
					tt.text, got, ok, tt.wantVar, tt.wantOK)
			}
		})
	}
}
