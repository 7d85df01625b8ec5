package dfg

import (
	"fmt"

	"github.com/l3aro/go-cflow/pkg/cfg"
)

// Definition is one textual assignment occurrence. IDs are globally unique
// and assigned monotonically in block-then-line order. A variable
// reassigned twice in one block yields two Definitions.
type Definition struct {
	ID    string `json:"id" msgpack:"id"`
	Var   string `json:"var" msgpack:"var"`
	Block string `json:"block" msgpack:"block"`
	Line  string `json:"line" msgpack:"line"`
}

// VarIndex maps a variable name to every definition of it anywhere in the
// program. Built once by CollectDefinitions, read-only after.
type VarIndex map[string]DefSet

// CollectDefinitions scans each block's lines in order for assignment
// statements and numbers them D1, D2, ... via an explicit sequence.
func CollectDefinitions(blocks []cfg.Block) ([]Definition, VarIndex) {
	var defs []Definition
	index := make(VarIndex)
	next := 1

	for _, b := range blocks {
		for _, s := range b.Stmts {
			name, ok := s.AssignedVar()
			if !ok {
				continue
			}
			d := Definition{
				ID:    fmt.Sprintf("D%d", next),
				Var:   name,
				Block: b.Label,
				Line:  s.Text,
			}
			next++
			defs = append(defs, d)
			if index[name] == nil {
				index[name] = NewDefSet()
			}
			index[name].Add(d.ID)
		}
	}
	return defs, index
}
