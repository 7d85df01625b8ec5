// Package main implements the cflow CLI. It analyzes source files in the
// restricted statement-per-line dialect: control-flow graph extraction,
// cyclomatic complexity and reaching-definitions dataflow.
package main

import (
	"os"

	"github.com/l3aro/go-cflow/cmd/cflow/commands"
)

var version = "dev"

func main() {
	commands.RootCmd.Version = version
	commands.RootCmd.SetVersionTemplate(`cflow version {{.Version}}
`)

	if err := commands.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
