// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"prompt-scan/internal/formatters"
)

func TestFormat_PerFileHeader(t *testing.T) {
	f := NewFormatter()
	out := f.Format(nil, false)
	if out != "Category,Details\n" {
		t.Errorf("empty per-file output = %q", out)
	}
}

func TestFormat_ConsolidatedHeader(t *testing.T) {
	f := NewFormatter()
	out := f.Format(nil, true)
	if out != "File,Category,Details\n" {
		t.Errorf("empty consolidated output = %q", out)
	}
}

func TestFormat_RowsAndQuoting(t *testing.T) {
	f := NewFormatter()
	rows := []formatters.Row{
		{Category: "text", Details: `{"type":"text","page":1}`},
		{Category: "metadata", Details: `{"field":"Title","text":"a \"quoted\" value"}`},
	}

	out := f.Format(rows, false)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	// JSON details contain commas and quotes, so they must be wrapped and
	// internal quotes doubled
	if lines[1] != `text,"{""type"":""text"",""page"":1}"` {
		t.Errorf("row 1 = %q", lines[1])
	}
	if !strings.Contains(lines[2], `""quoted""`) {
		t.Errorf("row 2 = %q, expected doubled quotes", lines[2])
	}
}

func TestFormat_ConsolidatedRowIncludesFile(t *testing.T) {
	f := NewFormatter()
	rows := []formatters.Row{{File: "dir/x.pdf", Category: "text", Details: "{}"}}

	out := f.Format(rows, true)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if lines[1] != "dir/x.pdf,text,{}" {
		t.Errorf("row = %q", lines[1])
	}
}

func TestEscapeCSVField_FormulaInjection(t *testing.T) {
	f := NewFormatter()
	tests := map[string]string{
		"=SUM(A1)": "'=SUM(A1)",
		"+1":       "'+1",
		"-payload": "'-payload",
		"@cmd":     "'@cmd",
		"plain":    "plain",
	}
	for in, want := range tests {
		if got := f.escapeCSVField(in); got != want {
			t.Errorf("escapeCSVField(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEscapeCSVField_Newlines(t *testing.T) {
	f := NewFormatter()
	got := f.escapeCSVField("line1\nline2")
	if got != "\"line1\nline2\"" {
		t.Errorf("escapeCSVField = %q", got)
	}
}

func TestWrite_OverwritesExistingFile(t *testing.T) {
	f := NewFormatter()
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := os.WriteFile(path, []byte("stale content"), 0600); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}

	rows := []formatters.Row{{Category: "text", Details: "{}"}}
	if err := f.Write(path, rows, false); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read back: %v", err)
	}
	if string(data) != "Category,Details\ntext,{}\n" {
		t.Errorf("written content = %q", string(data))
	}
}
