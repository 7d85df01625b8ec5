package dfg

import (
	"sort"

	"github.com/l3aro/go-cflow/pkg/cfg"
)

// Predecessors inverts the edge set into a map from block label to the
// distinct source labels of its incoming edges. Every block is present;
// the entry block typically maps to an empty list. Lists are sorted for
// deterministic iteration.
func Predecessors(g *cfg.Graph) map[string][]string {
	preds := make(map[string]map[string]struct{}, len(g.Blocks))
	for _, b := range g.Blocks {
		preds[b.Label] = make(map[string]struct{})
	}
	for _, e := range g.Edges {
		if _, ok := preds[e.To]; ok {
			preds[e.To][e.From] = struct{}{}
		}
	}

	out := make(map[string][]string, len(preds))
	for label, set := range preds {
		labels := make([]string, 0, len(set))
		for from := range set {
			labels = append(labels, from)
		}
		sort.Strings(labels)
		out[label] = labels
	}
	return out
}
