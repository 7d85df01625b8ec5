package commands

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/l3aro/go-cflow/internal/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize cflow configuration interactively",
	Long: `Guides you through setting up cflow configuration step by step.
Creates a config file with output and caching settings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		global, _ := cmd.Flags().GetBool("global")
		return runInit(global)
	},
}

func runInit(global bool) error {
	cfg := config.DefaultConfig()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Output directory for DOT and CSV artifacts").
				Description("Leave empty to write next to the analyzed file").
				Value(&cfg.OutputDir),
			huh.NewConfirm().
				Title("Write the CFG DOT artifact?").
				Value(&cfg.WriteDOT),
			huh.NewConfirm().
				Title("Write per-iteration CSV tables?").
				Value(&cfg.WriteCSV),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Enable the report cache?").
				Description("Caches analysis results keyed by file content").
				Value(&cfg.CacheEnabled),
			huh.NewConfirm().
				Title("Verbose logging?").
				Value(&cfg.Verbose),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("interactive prompt failed: %w", err)
	}

	path := ".cflow/config.yaml"
	if global {
		path = config.GlobalPath()
	}
	if err := cfg.Save(path); err != nil {
		return err
	}

	fmt.Printf("Configuration written to %s\n", path)
	return nil
}

func init() {
	initCmd.Flags().Bool("global", false, "Write the global config (~/.cflow/config.yaml)")
	RootCmd.AddCommand(initCmd)
}
