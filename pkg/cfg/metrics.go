package cfg

// Metrics holds the node and edge counts of a graph and the cyclomatic
// complexity derived from them.
type Metrics struct {
	Nodes      int `json:"nodes" msgpack:"nodes"`
	Edges      int `json:"edges" msgpack:"edges"`
	Complexity int `json:"cyclomatic_complexity" msgpack:"cyclomatic_complexity"`
}

// ComputeMetrics derives McCabe's cyclomatic complexity CC = E - N + 2 for
// a single connected graph with one entry and one exit. CC is purely
// derived from the counts, never computed a second way.
func ComputeMetrics(g *Graph) Metrics {
	n := len(g.Blocks)
	e := len(g.Edges)
	return Metrics{
		Nodes:      n,
		Edges:      e,
		Complexity: e - n + 2,
	}
}
