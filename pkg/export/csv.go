package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/l3aro/go-cflow/pkg/dfg"
)

// WriteIterationCSVs persists one CSV file per solver sweep under dir,
// named <base>_iteration_<n>.csv. It returns the written paths in order.
func WriteIterationCSVs(dir, base string, iterations []dfg.Iteration) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	paths := make([]string, 0, len(iterations))
	for _, it := range iterations {
		path := filepath.Join(dir, fmt.Sprintf("%s_iteration_%d.csv", base, it.Number))
		if err := writeIterationCSV(path, it); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeIterationCSV(path string, it dfg.Iteration) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(tableHeader); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	for _, row := range it.Rows {
		if err := w.Write(rowCells(row)); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
