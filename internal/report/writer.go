// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package report writes the per-file and consolidated export pairs.
package report

import (
	"fmt"
	"path/filepath"
	"strings"

	"prompt-scan/internal/detector"
	"prompt-scan/internal/formatters"
	csvfmt "prompt-scan/internal/formatters/csv"
	excelfmt "prompt-scan/internal/formatters/excel"
)

// Writer exports scan results as CSV and spreadsheet pairs. Per-file
// exports land next to the input file; consolidated exports land in
// outputDir (the working directory when empty).
type Writer struct {
	csv       *csvfmt.Formatter
	excel     *excelfmt.Formatter
	outputDir string
}

// NewWriter creates a report writer. outputDir only affects the
// consolidated exports.
func NewWriter(outputDir string) *Writer {
	return &Writer{
		csv:       csvfmt.NewFormatter(),
		excel:     excelfmt.NewFormatter(),
		outputDir: outputDir,
	}
}

// WriteFileReports writes X_results.csv and X_results.xlsx for input X.ext,
// overwriting silently, and returns the written paths.
func (w *Writer) WriteFileReports(path string, result *detector.ScanResult) (string, string, error) {
	rows, err := formatters.Rows(result)
	if err != nil {
		return "", "", fmt.Errorf("failed to flatten results for %s: %w", path, err)
	}

	base := outputBase(path)
	csvPath := base + w.csv.FileExtension()
	xlsxPath := base + w.excel.FileExtension()

	if err := w.csv.Write(csvPath, rows, false); err != nil {
		return "", "", fmt.Errorf("failed to write %s: %w", csvPath, err)
	}
	if err := w.excel.Write(xlsxPath, rows, false); err != nil {
		return "", "", fmt.Errorf("failed to write %s: %w", xlsxPath, err)
	}

	return csvPath, xlsxPath, nil
}

// WriteConsolidated writes the consolidated pair aggregating all files'
// results in input order, and returns the written paths.
func (w *Writer) WriteConsolidated(order []string, results map[string]*detector.ScanResult) (string, string, error) {
	rows, err := formatters.ConsolidatedRows(order, results)
	if err != nil {
		return "", "", fmt.Errorf("failed to flatten consolidated results: %w", err)
	}

	csvPath := filepath.Join(w.outputDir, "consolidated_results"+w.csv.FileExtension())
	xlsxPath := filepath.Join(w.outputDir, "consolidated_results"+w.excel.FileExtension())

	if err := w.csv.Write(csvPath, rows, true); err != nil {
		return "", "", fmt.Errorf("failed to write %s: %w", csvPath, err)
	}
	if err := w.excel.Write(xlsxPath, rows, true); err != nil {
		return "", "", fmt.Errorf("failed to write %s: %w", xlsxPath, err)
	}

	return csvPath, xlsxPath, nil
}

// outputBase strips the input's extension and appends the results suffix:
// dir/X.pdf becomes dir/X_results.
func outputBase(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + "_results"
}
