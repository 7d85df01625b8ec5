package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/l3aro/go-cflow/pkg/analysis"
	"github.com/l3aro/go-cflow/pkg/export"
)

var rdCmd = &cobra.Command{
	Use:   "rd <source-file>",
	Short: "Run reaching-definitions analysis for a source file",
	Long: `Collects assignment definitions, derives per-block gen/kill sets and
iterates the dataflow equations to their fixed point. Prints one table per
iteration; --csv additionally persists each iteration as a CSV file.`,
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

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			data, err := json.MarshalIndent(report.Iterations, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling JSON: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		fmt.Printf("Using CFG from %s\n", filePath)
		fmt.Printf("%d blocks, %d edges, CC = %d\n",
			report.Metrics.Nodes, report.Metrics.Edges, report.Metrics.Complexity)

		fmt.Printf("\nDefinitions (%d):\n", len(report.Definitions))
		for _, d := range report.Definitions {
			fmt.Printf("  %s [%s] %s: %s\n", d.ID, d.Block, d.Var, d.Line)
		}

		export.RenderIterations(os.Stdout, report.Iterations)

		if csvDir, _ := cmd.Flags().GetString("csv"); csvDir != "" {
			base := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
			paths, err := export.WriteIterationCSVs(csvDir, base, report.Iterations)
			if err != nil {
				return fmt.Errorf("writing iteration tables: %w", err)
			}
			for _, p := range paths {
				fmt.Printf("Saved %s\n", p)
			}
		}

		return nil
	},
}

func init() {
	rdCmd.Flags().BoolP("json", "j", false, "Output as JSON")
	rdCmd.Flags().String("csv", "", "Directory to write per-iteration CSV tables")
	RootCmd.AddCommand(rdCmd)
}
