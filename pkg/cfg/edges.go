package cfg

// BuildEdges synthesizes the control-flow edges from per-block keyword
// classification. The rules are positional, first match wins:
//
//  1. Loop header (for/while): true edge into the body, back edge from the
//     body, and a loop-exit edge two blocks ahead when one exists.
//  2. Conditional header (if/else if): true edge into the body, false edge
//     two blocks ahead modeling the skip-over path.
//  3. Else block: sequential continuation.
//  4. Anything without a control keyword and without return: sequential
//     merge/fallthrough continuation.
//
// Blocks containing return emit no forward edge; exporters wire them to a
// designated End node. The two-blocks-ahead offset assumes single-statement
// branch bodies; it is a textual heuristic, not a structural parse.
// The result is deduplicated, in first-emission order.
func BuildEdges(blocks []Block) []Edge {
	var edges []Edge
	emit := func(from, to int, kind EdgeKind) {
		edges = append(edges, Edge{From: blocks[from].Label, To: blocks[to].Label, Kind: kind})
	}

	for i, b := range blocks {
		hasNext := i+1 < len(blocks)
		hasSkip := i+2 < len(blocks)

		switch {
		case b.hasKeyword("for") || b.hasKeyword("while"):
			if hasNext {
				emit(i, i+1, EdgeTrue)
				emit(i+1, i, EdgeBack)
				if hasSkip {
					emit(i, i+2, EdgeLoopExit)
				}
			}

		case b.hasKeyword("if"):
			if hasNext {
				emit(i, i+1, EdgeTrue)
			}
			if hasSkip {
				emit(i, i+2, EdgeFalse)
			}

		case b.hasKeyword("else"):
			if hasNext {
				emit(i, i+1, EdgePlain)
			}

		case !b.hasKeyword("return"):
			if hasNext {
				emit(i, i+1, EdgePlain)
			}
		}
	}

	return dedupeEdges(edges)
}

// dedupeEdges collapses the emitted multiset into a set, keeping first
// emission order.
func dedupeEdges(edges []Edge) []Edge {
	seen := make(map[Edge]struct{}, len(edges))
	out := edges[:0]
	for _, e := range edges {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}
