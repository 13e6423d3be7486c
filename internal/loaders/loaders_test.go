// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package loaders

import (
	"errors"
	"testing"
)

func TestDetect_SupportedExtensions(t *testing.T) {
	tests := []struct {
		path string
		want Kind
	}{
		{"report.pdf", KindPDF},
		{"REPORT.PDF", KindPDF},
		{"dir/nested/contract.docx", KindWord},
		{"contract.DocX", KindWord},
	}

	for _, tt := range tests {
		kind, err := Detect(tt.path)
		if err != nil {
			t.Errorf("Detect(%q) returned error: %v", tt.path, err)
			continue
		}
		if kind != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.path, kind, tt.want)
		}
	}
}

func TestDetect_UnsupportedExtension(t *testing.T) {
	for _, path := range []string{"notes.txt", "image.png", "archive", "legacy.doc"} {
		kind, err := Detect(path)
		if kind != KindUnknown {
			t.Errorf("Detect(%q) kind = %v, want KindUnknown", path, kind)
		}
		var unsupported *UnsupportedFileTypeError
		if !errors.As(err, &unsupported) {
			t.Errorf("Detect(%q) error = %v, want UnsupportedFileTypeError", path, err)
			continue
		}
		if unsupported.Path != path {
			t.Errorf("error path = %q, want %q", unsupported.Path, path)
		}
	}
}

func TestFormatError_Unwrap(t *testing.T) {
	inner := errors.New("truncated xref table")
	err := &FormatError{Path: "broken.pdf", Err: inner}

	if !errors.Is(err, inner) {
		t.Error("expected FormatError to unwrap to the inner error")
	}
	if msg := err.Error(); msg == "" {
		t.Error("expected non-empty error message")
	}
}
