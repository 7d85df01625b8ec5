// Package analysis wires the full pipeline: preprocessing, control-flow
// graph construction, metrics and reaching definitions. It is the only
// package that reads source files; everything downstream consumes the
// Report it produces.
package analysis

import (
	"fmt"
	"os"

	"github.com/l3aro/go-cflow/pkg/cfg"
	"github.com/l3aro/go-cflow/pkg/dfg"
	"github.com/l3aro/go-cflow/pkg/source"
)

// Report is the complete result of analyzing one source file. It is
// immutable once returned; exporters only read it.
type Report struct {
	File        string             `json:"file" msgpack:"file"`
	Statements  []source.Statement `json:"statements" msgpack:"statements"`
	Graph       *cfg.Graph         `json:"graph" msgpack:"graph"`
	Metrics     cfg.Metrics        `json:"metrics" msgpack:"metrics"`
	Definitions []dfg.Definition   `json:"definitions" msgpack:"definitions"`
	Iterations  []dfg.Iteration    `json:"iterations" msgpack:"iterations"`
}

// Analyze reads and analyzes the file at path.
func Analyze(path string) (*Report, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	report := AnalyzeSource(string(content))
	report.File = path
	return report, nil
}

// AnalyzeSource runs the pipeline over raw source text. The stages run
// strictly left to right; no stage mutates its predecessor's output. The
// pipeline is deterministic: identical input yields an identical Report.
func AnalyzeSource(src string) *Report {
	stmts := source.Normalize(src)
	graph := cfg.Build(stmts)
	defs, index := dfg.CollectDefinitions(graph.Blocks)

	return &Report{
		Statements:  stmts,
		Graph:       graph,
		Metrics:     cfg.ComputeMetrics(graph),
		Definitions: defs,
		Iterations:  dfg.Solve(graph, defs, index),
	}
}
