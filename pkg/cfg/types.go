// Package cfg builds control-flow graphs for the restricted
// statement-per-line dialect: leader detection, basic-block partitioning,
// positional edge synthesis and McCabe complexity.
package cfg

import (
	"fmt"

	"github.com/l3aro/go-cflow/pkg/source"
)

// EdgeKind labels the role of a control-flow edge.
type EdgeKind string

const (
	EdgeTrue     EdgeKind = "true"         // positive branch of a decision
	EdgeFalse    EdgeKind = "false"        // negative branch skipping a body
	EdgeLoopExit EdgeKind = "false (exit)" // negative branch leaving a loop
	EdgeBack     EdgeKind = "back"         // loop body returning to its header
	EdgePlain    EdgeKind = ""             // sequential or merge fallthrough
)

// Block is a maximal straight-line run of statements. Labels are assigned
// in creation order (B0, B1, ...), which equals source order, and are never
// reused.
type Block struct {
	Label string             `json:"label" msgpack:"label"`
	Stmts []source.Statement `json:"statements" msgpack:"statements"`
}

// Text returns the block's statements joined with single spaces, the form
// edge classification scans.
func (b Block) Text() string {
	text := ""
	for i, s := range b.Stmts {
		if i > 0 {
			text += " "
		}
		text += s.Text
	}
	return text
}

// hasKeyword reports whether any statement in the block carries kw as a
// whole word.
func (b Block) hasKeyword(kw string) bool {
	for _, s := range b.Stmts {
		if s.HasKeyword(kw) {
			return true
		}
	}
	return false
}

// Edge is a directed, labeled transfer between two blocks. Edges form a
// set: a (From, To, Kind) triple appears at most once per graph.
type Edge struct {
	From string   `json:"from" msgpack:"from"`
	To   string   `json:"to" msgpack:"to"`
	Kind EdgeKind `json:"kind,omitempty" msgpack:"kind"`
}

// Graph is a control-flow graph. Block order corresponds to source line
// order, not graph topology. Every edge endpoint references an existing
// block label.
type Graph struct {
	Blocks []Block `json:"blocks" msgpack:"blocks"`
	Edges  []Edge  `json:"edges" msgpack:"edges"`
}

// Build runs the full graph construction pipeline over a normalized
// statement sequence.
func Build(stmts []source.Statement) *Graph {
	leaders := Leaders(stmts)
	blocks := BuildBlocks(stmts, leaders)
	return &Graph{
		Blocks: blocks,
		Edges:  BuildEdges(blocks),
	}
}

// Block returns the block with the given label, if present.
func (g *Graph) Block(label string) (Block, bool) {
	for _, b := range g.Blocks {
		if b.Label == label {
			return b, true
		}
	}
	return Block{}, false
}

// labelSeq hands out sequential labels with a fixed prefix. An explicit
// generator is threaded through construction so identifiers stay stable
// without ambient counters.
type labelSeq struct {
	prefix string
	next   int
}

func (s *labelSeq) Next() string {
	label := fmt.Sprintf("%s%d", s.prefix, s.next)
	s.next++
	return label
}
