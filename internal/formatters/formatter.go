// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package formatters holds the flattened export row model shared by the
// CSV and spreadsheet writers.
package formatters

import (
	"encoding/json"

	"prompt-scan/internal/detector"
)

// Row is one exported finding: originating file (consolidated exports
// only), category, and the finding serialized compactly.
type Row struct {
	File     string
	Category string
	Details  string
}

// Rows flattens a single file's result into per-file rows (File left
// empty), preserving category and traversal order.
func Rows(result *detector.ScanResult) ([]Row, error) {
	return flatten("", result)
}

// ConsolidatedRows flattens the results of several files into rows tagged
// with their originating path, in the given file order.
func ConsolidatedRows(order []string, results map[string]*detector.ScanResult) ([]Row, error) {
	var rows []Row
	for _, file := range order {
		result, ok := results[file]
		if !ok {
			continue
		}
		fileRows, err := flatten(file, result)
		if err != nil {
			return nil, err
		}
		rows = append(rows, fileRows...)
	}
	return rows, nil
}

func flatten(file string, result *detector.ScanResult) ([]Row, error) {
	var rows []Row
	for _, category := range result.Categories() {
		for _, finding := range result.Findings(category) {
			details, err := json.Marshal(finding)
			if err != nil {
				return nil, err
			}
			rows = append(rows, Row{File: file, Category: category, Details: string(details)})
		}
	}
	return rows, nil
}
