package dfg

import "github.com/l3aro/go-cflow/pkg/cfg"

// Row is one block's dataflow state at the end of a sweep. All four sets
// are copies; recorded rows are never mutated afterwards.
type Row struct {
	Block string `json:"block" msgpack:"block"`
	Gen   DefSet `json:"gen" msgpack:"gen"`
	Kill  DefSet `json:"kill" msgpack:"kill"`
	In    DefSet `json:"in" msgpack:"in"`
	Out   DefSet `json:"out" msgpack:"out"`
}

// Iteration is the state of every block after one full sweep, in block
// label order. One Iteration is recorded per sweep, including the final
// sweep that observes no change.
type Iteration struct {
	Number int   `json:"iteration" msgpack:"iteration"`
	Rows   []Row `json:"rows" msgpack:"rows"`
}

// Solve runs the classic iterative reaching-definitions fixed point over
// the subset lattice of definition IDs, join = union:
//
//	in[B]  = union of out[P] over predecessors P
//	out[B] = gen[B] U (in[B] - kill[B])
//
// Blocks are visited in label order within a sweep; sweeps repeat until no
// out set changes. The transfer function is monotone and the lattice
// height is bounded by the number of definitions, so out sets only grow
// and the solver converges in at most |definitions|+1 sweeps.
func Solve(g *cfg.Graph, defs []Definition, index VarIndex) []Iteration {
	gen, kill := ComputeGenKill(g.Blocks, defs, index)
	preds := Predecessors(g)

	in := make(map[string]DefSet, len(g.Blocks))
	out := make(map[string]DefSet, len(g.Blocks))
	for _, b := range g.Blocks {
		in[b.Label] = NewDefSet()
		out[b.Label] = NewDefSet()
	}

	var iterations []Iteration
	for changed := true; changed; {
		changed = false
		rows := make([]Row, 0, len(g.Blocks))

		for _, b := range g.Blocks {
			newIn := NewDefSet()
			for _, p := range preds[b.Label] {
				newIn = newIn.Union(out[p])
			}
			newOut := gen[b.Label].Union(newIn.Minus(kill[b.Label]))

			if !newOut.Equal(out[b.Label]) {
				changed = true
			}
			in[b.Label] = newIn
			out[b.Label] = newOut

			rows = append(rows, Row{
				Block: b.Label,
				Gen:   gen[b.Label].Clone(),
				Kill:  kill[b.Label].Clone(),
				In:    newIn.Clone(),
				Out:   newOut.Clone(),
			})
		}

		iterations = append(iterations, Iteration{Number: len(iterations) + 1, Rows: rows})
	}
	return iterations
}
