// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"prompt-scan/internal/formatters"
)

// SheetName is the single worksheet every export uses.
const SheetName = "LLM Prompt Detection"

// Formatter implements spreadsheet output formatting
type Formatter struct{}

// NewFormatter creates a new spreadsheet formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "excel"
}

func (f *Formatter) FileExtension() string {
	return ".xlsx"
}

// Write renders rows into a single-sheet workbook at path, overwriting any
// existing file. withFile selects the consolidated header
// (File,Category,Details) over the per-file one (Category,Details).
func (f *Formatter) Write(path string, rows []formatters.Row, withFile bool) error {
	wb := excelize.NewFile()
	defer wb.Close()

	if err := wb.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("failed to name worksheet: %w", err)
	}

	header := []interface{}{"Category", "Details"}
	if withFile {
		header = []interface{}{"File", "Category", "Details"}
	}
	if err := wb.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to compute cell name: %w", err)
		}
		values := []interface{}{row.Category, row.Details}
		if withFile {
			values = []interface{}{row.File, row.Category, row.Details}
		}
		if err := wb.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if err := wb.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
