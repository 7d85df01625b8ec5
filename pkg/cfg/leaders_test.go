package cfg

import (
	"reflect"
	"testing"

	"github.com/l3aro/go-cflow/pkg/source"
)

func stmts(lines ...string) []source.Statement {
	out := make([]source.Statement, len(lines))
	for i, l := range lines {
		out[i] = source.NewStatement(l)
	}
	return out
}

func TestLeaders(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []int
	}{
		{
			name:  "empty input",
			lines: nil,
			want:  nil,
		},
		{
			name:  "single statement",
			lines: []string{"x = 1;"},
			want:  []int{0},
		},
		{
			name:  "straight line code has one leader",
			lines: []string{"x = 1;", "y = 2;", "z = 3;"},
			want:  []int{0},
		},
		{
			name:  "control header marks itself and successor",
			lines: []string{"x = 1;", "if (x > 0)", "y = 2;", "z = 3;"},
			want:  []int{0, 1, 2},
		},
		{
			name:  "jump marks only the successor",
			lines: []string{"x = 1;", "return x;", "y = 2;"},
			want:  []int{0, 2},
		},
		{
			name:  "brace marks itself and successor",
			lines: []string{"x = 1;", "y = 2; }", "z = 3;"},
			want:  []int{0, 1, 2},
		},
		{
			name:  "marks past the end are discarded",
			lines: []string{"x = 1;", "while (x > 0)"},
			want:  []int{0, 1},
		},
		{
			name:  "overlapping rules deduplicate",
			lines: []string{"if (x > 0) {", "return x;", "z = 3;"},
			want:  []int{0, 1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Leaders(stmts(tt.lines...))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Leaders(%v) = %v, want %v", tt.lines, got, tt.want)
			}
		})
	}
}
