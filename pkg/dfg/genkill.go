package dfg

import "github.com/l3aro/go-cflow/pkg/cfg"

// ComputeGenKill derives the per-block gen and kill sets.
//
// gen[B] holds every definition whose source line matches a line of B
// textually. kill[B] is the union, over each definition d generated in B
// for variable v, of all other definitions of v anywhere in the program,
// including other occurrences inside B itself. The kill rule is applied
// per occurrence, not per variable: a block that writes the same variable
// twice generates both occurrences and each kills the other.
func ComputeGenKill(blocks []cfg.Block, defs []Definition, index VarIndex) (gen, kill map[string]DefSet) {
	gen = make(map[string]DefSet, len(blocks))
	kill = make(map[string]DefSet, len(blocks))

	for _, b := range blocks {
		gen[b.Label] = NewDefSet()
		kill[b.Label] = NewDefSet()
		for _, s := range b.Stmts {
			for _, d := range defs {
				if d.Line != s.Text {
					continue
				}
				gen[b.Label].Add(d.ID)
				for other := range index[d.Var] {
					if other != d.ID {
						kill[b.Label].Add(other)
					}
				}
			}
		}
	}
	return gen, kill
}
