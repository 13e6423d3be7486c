// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"fmt"
	"os"
	"strings"

	"prompt-scan/internal/formatters"
)

// Formatter implements CSV output formatting
type Formatter struct{}

// NewFormatter creates a new CSV formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "csv"
}

func (f *Formatter) FileExtension() string {
	return ".csv"
}

// Format renders rows as CSV text. withFile selects the consolidated
// header (File,Category,Details) over the per-file one (Category,Details).
func (f *Formatter) Format(rows []formatters.Row, withFile bool) string {
	headers := []string{"Category", "Details"}
	if withFile {
		headers = []string{"File", "Category", "Details"}
	}

	csvRows := []string{strings.Join(headers, ",")}
	for _, row := range rows {
		csvRows = append(csvRows, f.createCSVRow(row, withFile))
	}

	return strings.Join(csvRows, "\n") + "\n"
}

// Write renders rows and writes them to path, overwriting any existing
// file.
func (f *Formatter) Write(path string, rows []formatters.Row, withFile bool) error {
	return os.WriteFile(path, []byte(f.Format(rows, withFile)), 0o644)
}

// createCSVRow creates a CSV row for one finding
func (f *Formatter) createCSVRow(row formatters.Row, withFile bool) string {
	fields := []string{
		f.escapeCSVField(row.Category),
		f.escapeCSVField(row.Details),
	}
	if withFile {
		fields = append([]string{f.escapeCSVField(row.File)}, fields...)
	}
	return strings.Join(fields, ",")
}

// escapeCSVField properly escapes a field for CSV format and prevents CSV injection
func (f *Formatter) escapeCSVField(field string) string {
	// Prevent CSV injection by sanitizing formula characters
	field = f.sanitizeFormulaInjection(field)

	// If field contains comma, quote, or newline, wrap in quotes and escape internal quotes
	if strings.Contains(field, ",") || strings.Contains(field, "\"") || strings.Contains(field, "\n") || strings.Contains(field, "\r") {
		// Escape internal quotes by doubling them
		escaped := strings.ReplaceAll(field, "\"", "\"\"")
		return fmt.Sprintf("\"%s\"", escaped)
	}
	return field
}

// sanitizeFormulaInjection prevents CSV injection attacks by sanitizing formula characters
func (f *Formatter) sanitizeFormulaInjection(field string) string {
	if len(field) == 0 {
		return field
	}

	// Fields starting with formula characters could execute in spreadsheets;
	// a single-quote prefix neutralizes them
	firstChar := field[0]
	if firstChar == '=' || firstChar == '+' || firstChar == '-' || firstChar == '@' {
		return "'" + field
	}

	return field
}
