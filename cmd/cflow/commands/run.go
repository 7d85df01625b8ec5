package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/l3aro/go-cflow/internal/config"
	"github.com/l3aro/go-cflow/internal/log"
	"github.com/l3aro/go-cflow/pkg/analysis"
	"github.com/l3aro/go-cflow/pkg/cache"
	"github.com/l3aro/go-cflow/pkg/export"
)

// runPipeline is the single-positional-argument surface: analyze the file,
// print the metrics summary and write the DOT and CSV artifacts.
func runPipeline(cmd *cobra.Command, filePath string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := log.Default()
	if cfg.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	if v, _ := cmd.Flags().GetString("out"); v != "" {
		cfg.OutputDir = v
	}
	if v, _ := cmd.Flags().GetBool("no-dot"); v {
		cfg.WriteDOT = false
	}
	if v, _ := cmd.Flags().GetBool("no-csv"); v {
		cfg.WriteCSV = false
	}
	if v, _ := cmd.Flags().GetBool("cache"); v {
		cfg.CacheEnabled = true
	}

	report, err := loadReport(filePath, cfg, logger)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	base := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	outDir := cfg.OutputDir
	if outDir == "" {
		outDir = filepath.Dir(filePath)
	}

	if cfg.WriteDOT {
		dotPath := filepath.Join(outDir, base+"_cfg.dot")
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return fmt.Errorf("creating output directory %s: %w", outDir, err)
		}
		if err := os.WriteFile(dotPath, []byte(export.DOT(report.Graph)), 0644); err != nil {
			return fmt.Errorf("writing DOT file: %w", err)
		}
		fmt.Printf("[+] CFG DOT file saved as %s\n", dotPath)
	}

	if cfg.WriteCSV {
		paths, err := export.WriteIterationCSVs(outDir, base, report.Iterations)
		if err != nil {
			return fmt.Errorf("writing iteration tables: %w", err)
		}
		logger.Debug("iteration tables written", "count", len(paths))
	}

	export.RenderIterations(os.Stdout, report.Iterations)

	fmt.Printf("\n[+] Found %d basic blocks and %d edges.\n", report.Metrics.Nodes, report.Metrics.Edges)
	fmt.Printf("[+] Cyclomatic Complexity (CC) = %d\n", report.Metrics.Complexity)
	return nil
}

// loadReport analyzes the file, consulting the report cache when enabled.
func loadReport(filePath string, cfg *config.Config, logger log.Logger) (*analysis.Report, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", filePath, err)
	}

	if !cfg.CacheEnabled {
		report := analysis.AnalyzeSource(string(content))
		report.File = filePath
		return report, nil
	}

	store, err := cache.Open(cfg.CachePath)
	if err != nil {
		return nil, err
	}

	key := cache.Key(filePath, content)
	var report analysis.Report
	if err := store.Get(key, &report); err == nil {
		logger.Debug("report cache hit", "file", filePath)
		return &report, nil
	} else if !errors.Is(err, cache.ErrKeyNotFound) {
		logger.Warn("report cache unreadable, recomputing", "error", err)
	}

	fresh := analysis.AnalyzeSource(string(content))
	fresh.File = filePath
	if err := store.Set(key, fresh); err != nil {
		logger.Warn("caching report failed", "error", err)
	} else if err := store.Save(); err != nil {
		logger.Warn("persisting cache failed", "error", err)
	}
	return fresh, nil
}

func init() {
	RootCmd.Flags().BoolP("json", "j", false, "Output the full report as JSON")
	RootCmd.Flags().String("out", "", "Directory for DOT and CSV artifacts")
	RootCmd.Flags().Bool("no-dot", false, "Skip writing the DOT artifact")
	RootCmd.Flags().Bool("no-csv", false, "Skip writing per-iteration CSV tables")
	RootCmd.Flags().Bool("cache", false, "Enable the report cache")
}
