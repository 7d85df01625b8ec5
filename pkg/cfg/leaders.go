package cfg

import (
	"sort"

	"github.com/l3aro/go-cflow/pkg/source"
)

// Leaders returns the sorted, duplicate-free indices of statements that
// start a new basic block.
//
// Index 0 is always a leader. A control header (if, else if, else, for,
// while) marks its own line and the following one. A jump (return, break,
// continue) marks only the following line. A line carrying a literal brace
// marks its own line and the following one.
func Leaders(stmts []source.Statement) []int {
	if len(stmts) == 0 {
		return nil
	}

	marks := map[int]struct{}{0: {}}
	mark := func(i int) {
		if i < len(stmts) {
			marks[i] = struct{}{}
		}
	}

	for i, s := range stmts {
		if s.IsControlHeader() {
			mark(i)
			mark(i + 1)
		}
		if s.IsJump() {
			mark(i + 1)
		}
		if s.ContainsBrace() {
			mark(i)
			mark(i + 1)
		}
	}

	leaders := make([]int, 0, len(marks))
	for i := range marks {
		leaders = append(leaders, i)
	}
	sort.Ints(leaders)
	return leaders
}
