package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/l3aro/go-cflow/pkg/analysis"
	"github.com/l3aro/go-cflow/pkg/export"
)

// cfgCmd represents the cfg command
var cfgCmd = &cobra.Command{
	Use:   "cfg <source-file>",
	Short: "Build the control-flow graph for a source file",
	Long: `Partitions the file's statements into basic blocks, synthesizes the
control-flow edges and computes cyclomatic complexity. Outputs blocks,
edges and metrics; --dot prints the graphviz description instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filePath := args[0]

		info, err := os.Stat(filePath)
		if err != nil {
			return fmt.Errorf("stat file: %w", err)
		}
		if info.IsDir() {
			return fmt.Errorf("path is a directory, expected a file: %s", filePath)
		}

		report, err := analysis.Analyze(filePath)
		if err != nil {
			return fmt.Errorf("analyzing: %w", err)
		}

		if dotOutput, _ := cmd.Flags().GetBool("dot"); dotOutput {
			fmt.Print(export.DOT(report.Graph))
			return nil
		}

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			data, err := json.MarshalIndent(report.Graph, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling JSON: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		printGraph(report)
		return nil
	},
}

// printGraph prints the graph in human-readable form.
func printGraph(report *analysis.Report) {
	fmt.Printf("=== CFG for %s ===\n", report.File)
	fmt.Printf("Cyclomatic Complexity: %d\n", report.Metrics.Complexity)

	fmt.Printf("\nBlocks (%d):\n", len(report.Graph.Blocks))
	for _, block := range report.Graph.Blocks {
		fmt.Printf("  %s:\n", block.Label)
		for _, s := range block.Stmts {
			fmt.Printf("    %s\n", s.Text)
		}
	}

	fmt.Printf("\nEdges (%d):\n", len(report.Graph.Edges))
	for _, edge := range report.Graph.Edges {
		if edge.Kind != "" {
			fmt.Printf("  %s --%s--> %s\n", edge.From, edge.Kind, edge.To)
		} else {
			fmt.Printf("  %s --> %s\n", edge.From, edge.To)
		}
	}
}

func init() {
	cfgCmd.Flags().BoolP("json", "j", false, "Output as JSON")
	cfgCmd.Flags().Bool("dot", false, "Output the graphviz DOT description")
	RootCmd.AddCommand(cfgCmd)
}
