// Package commands provides the CLI commands for the cflow tool.
package commands

import (
	"github.com/spf13/cobra"
)

// RootCmd represents the base command. Called with a source file it runs
// the full pipeline; subcommands expose the individual stages.
var RootCmd = &cobra.Command{
	Use:   "cflow <source-file>",
	Short: "cflow - control-flow and reaching-definitions analysis",
	Long: `cflow analyzes programs written in a restricted statement-per-line
dialect. It partitions statements into basic blocks, synthesizes a
control-flow graph, computes McCabe cyclomatic complexity and runs
reaching-definitions dataflow analysis to its fixed point.

Commands:
  cfg         Build the control-flow graph and print blocks, edges, metrics
  rd          Run reaching definitions and print per-iteration tables
  init        Initialize cflow configuration interactively
  version     Print version information

Called with just a source file, cflow runs the whole pipeline, prints the
graph metrics and writes the DOT and CSV artifacts.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPipeline(cmd, args[0])
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return RootCmd.Execute()
}
