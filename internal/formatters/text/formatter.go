// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"prompt-scan/internal/detector"
)

// Formatter implements the per-file stdout report block
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter(noColor bool) *Formatter {
	if noColor {
		color.NoColor = true
	}

	return &Formatter{
		colors: map[string]*color.Color{
			"header": color.New(color.FgCyan, color.Bold),
			"notice": color.New(color.FgGreen),
		},
	}
}

// Print writes the labeled result block for one file: a header line
// followed by the full result structure with two-space indentation.
func (f *Formatter) Print(w io.Writer, path string, result *detector.ScanResult) error {
	f.colors["header"].Fprintf(w, "\n=== Results for %s ===\n", path)

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render result: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// SavedNotice reports where a file's exports were written.
func (f *Formatter) SavedNotice(w io.Writer, csvPath, xlsxPath string) {
	f.colors["notice"].Fprintf(w, "Results saved to %s and %s\n", csvPath, xlsxPath)
}

// ConsolidatedNotice reports where the consolidated exports were written.
func (f *Formatter) ConsolidatedNotice(w io.Writer, csvPath, xlsxPath string) {
	f.colors["notice"].Fprintf(w, "\nConsolidated results saved to %s and %s\n", csvPath, xlsxPath)
}
