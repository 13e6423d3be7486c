// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package loaders routes input files to the format-specific document
// loaders and defines the shared error taxonomy for load failures.
package loaders

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Kind identifies a supported document format.
type Kind int

const (
	KindUnknown Kind = iota
	KindPDF
	KindWord
)

// UnsupportedFileTypeError indicates a file extension outside the supported
// set. The file is skipped; the run continues.
type UnsupportedFileTypeError struct {
	Path string
	Ext  string
}

func (e *UnsupportedFileTypeError) Error() string {
	return fmt.Sprintf("unsupported file type %q: %s", e.Ext, e.Path)
}

// FormatError indicates a file that could not be opened or parsed as its
// claimed format (corruption, permissions, masquerading content). The file
// is skipped; the run continues.
type FormatError struct {
	Path string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("cannot open %s: %v", e.Path, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Detect determines the document kind from the file extension,
// case-insensitively.
func Detect(path string) (Kind, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".pdf":
		return KindPDF, nil
	case ".docx":
		return KindWord, nil
	default:
		return KindUnknown, &UnsupportedFileTypeError{Path: path, Ext: ext}
	}
}
