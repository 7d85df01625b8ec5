package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/l3aro/go-cflow/pkg/analysis"
)

func TestWriteIterationCSVs(t *testing.T) {
	report := analysis.AnalyzeSource("x = 1;\nwhile (x < 10) {\nx = x + 1; }\ny = x;")
	dir := t.TempDir()

	paths, err := WriteIterationCSVs(dir, "sample", report.Iterations)
	require.NoError(t, err)
	require.Len(t, paths, len(report.Iterations))

	assert.Equal(t, filepath.Join(dir, "sample_iteration_1.csv"), paths[0])

	f, err := os.Open(paths[0])
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.NotEmpty(t, rows)

	assert.Equal(t, []string{"Basic Block", "gen[B]", "kill[B]", "in[B]", "out[B]"}, rows[0])
	assert.Len(t, rows, len(report.Graph.Blocks)+1)

	// Set cells are brace-delimited; empty sets render as {}.
	for _, row := range rows[1:] {
		for _, cell := range row[1:] {
			assert.True(t, strings.HasPrefix(cell, "{") && strings.HasSuffix(cell, "}"),
				"cell %q is not brace-delimited", cell)
		}
	}
}

func TestRenderIterations(t *testing.T) {
	report := analysis.AnalyzeSource("x = 1;")

	var buf bytes.Buffer
	RenderIterations(&buf, report.Iterations)

	out := buf.String()
	assert.Contains(t, out, "=== Iteration 1 ===")
	assert.Contains(t, out, "B0")
	assert.Contains(t, out, "{D1}")
}
