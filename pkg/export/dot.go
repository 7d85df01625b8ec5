// Package export renders analysis results for external consumers: DOT
// graph descriptions, per-iteration dataflow tables and CSV files.
package export

import (
	"fmt"
	"strings"

	"github.com/l3aro/go-cflow/pkg/cfg"
)

// dotEscaper escapes the characters graphviz treats as structure inside a
// quoted label. Newlines pass through; they separate a block's lines.
var dotEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"{", `\{`,
	"}", `\}`,
	"<", `\<`,
	">", `\>`,
)

// DOT renders the graph as a graphviz digraph. Each block becomes a box
// node labeled with its literal lines. A Start oval points at B0 and every
// block containing return or break points at an End oval; those exits are
// an export concern, not part of the graph itself.
func DOT(g *cfg.Graph) string {
	var b strings.Builder
	b.WriteString("digraph CFG {\n")
	b.WriteString("node [shape=box, style=filled, color=lightgray];\n")
	b.WriteString("Start [shape=oval, color=lightblue, label=\"Start\"];\n")
	b.WriteString("End [shape=oval, color=lightblue, label=\"End\"];\n")

	for _, block := range g.Blocks {
		lines := make([]string, len(block.Stmts))
		for i, s := range block.Stmts {
			lines[i] = s.Text
		}
		label := dotEscaper.Replace(strings.Join(lines, "\n"))
		fmt.Fprintf(&b, "%s [label=\"%s:\n%s\"];\n", block.Label, block.Label, label)
	}

	if len(g.Blocks) > 0 {
		fmt.Fprintf(&b, "Start -> %s;\n", g.Blocks[0].Label)
	}

	for _, e := range g.Edges {
		if e.Kind != cfg.EdgePlain {
			fmt.Fprintf(&b, "%s -> %s [label=\"%s\"];\n", e.From, e.To, e.Kind)
		} else {
			fmt.Fprintf(&b, "%s -> %s;\n", e.From, e.To)
		}
	}

	for _, block := range g.Blocks {
		if blockExits(block) {
			fmt.Fprintf(&b, "%s -> End;\n", block.Label)
		}
	}

	b.WriteString("}\n")
	return b.String()
}

// blockExits reports whether a block leaves the graph: return ends the
// program and break is treated as an exit too.
func blockExits(block cfg.Block) bool {
	for _, s := range block.Stmts {
		if s.HasKeyword("return") || s.HasKeyword("break") {
			return true
		}
	}
	return false
}
