package analysis

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeSourceSingleAssignment(t *testing.T) {
	report := AnalyzeSource("x = 1;")

	assert.Equal(t, 1, report.Metrics.Nodes)
	assert.Equal(t, 0, report.Metrics.Edges)
	assert.Equal(t, 1, report.Metrics.Complexity)
	require.Len(t, report.Definitions, 1)
	assert.Equal(t, "D1", report.Definitions[0].ID)
	assert.Equal(t, "x", report.Definitions[0].Var)
}

func TestAnalyzeSourceSingleBranch(t *testing.T) {
	report := AnalyzeSource("x = 1;\nif (x > 0) {\ny = 2; }\nz = 3;")

	assert.Equal(t, 4, report.Metrics.Nodes)
	assert.Equal(t, 4, report.Metrics.Edges)
	assert.Equal(t, 2, report.Metrics.Complexity)
}

func TestAnalyzeSourceDeterministic(t *testing.T) {
	src := "x = 1;\nwhile (x < 10) {\nx = x + 1; }\ny = x;\nreturn y;"

	first := AnalyzeSource(src)
	second := AnalyzeSource(src)

	assert.Equal(t, first, second)
}

func TestAnalyzeSourcePartition(t *testing.T) {
	src := "a = 1;\nif (a > 0) {\nb = 2; }\nwhile (b > 0) {\nb = b - 1; }\nreturn b;"
	report := AnalyzeSource(src)

	total := 0
	for _, b := range report.Graph.Blocks {
		total += len(b.Stmts)
	}
	assert.Equal(t, len(report.Statements), total,
		"blocks must cover every statement exactly once")

	assert.GreaterOrEqual(t, report.Metrics.Nodes, 1)
	assert.Equal(t, report.Metrics.Edges-report.Metrics.Nodes+2, report.Metrics.Complexity)
}

func TestAnalyzeSourceEdgeEndpointsExist(t *testing.T) {
	src := "a = 1;\nif (a > 0) {\nb = 2; }\nreturn b;"
	report := AnalyzeSource(src)

	labels := make(map[string]bool)
	for _, b := range report.Graph.Blocks {
		labels[b.Label] = true
	}
	for _, e := range report.Graph.Edges {
		assert.True(t, labels[e.From], "edge source %s must exist", e.From)
		assert.True(t, labels[e.To], "edge target %s must exist", e.To)
	}
}

func TestAnalyzeFile(t *testing.T) {
	report, err := Analyze(filepath.Join("..", "..", "testdata", "countdown.c"))
	require.NoError(t, err)

	assert.NotEmpty(t, report.Graph.Blocks)
	assert.NotEmpty(t, report.Definitions)
	assert.NotEmpty(t, report.Iterations)
	assert.Equal(t, report.Metrics.Edges-report.Metrics.Nodes+2, report.Metrics.Complexity)
}

func TestAnalyzeMissingFile(t *testing.T) {
	_, err := Analyze("does-not-exist.c")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist.c")
}
