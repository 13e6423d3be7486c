// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package word loads .docx files. A docx is a zip archive; the paragraph
// text lives in word/document.xml as <w:p> elements with <w:t> runs.
package word

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"prompt-scan/internal/loaders"
)

// Paragraph is one ordered paragraph of plain text.
type Paragraph struct {
	Index int // 1-based document order
	Text  string
}

// Document is the loaded representation of a Word file.
type Document struct {
	Path       string
	Paragraphs []Paragraph
}

// Open loads the Word document at path. Any open/parse failure returns a
// *loaders.FormatError.
func Open(path string) (*Document, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return nil, &loaders.FormatError{Path: path, Err: err}
	}
	defer reader.Close()

	var documentFile *zip.File
	for _, file := range reader.File {
		if file.Name == "word/document.xml" {
			documentFile = file
			break
		}
	}
	if documentFile == nil {
		return nil, &loaders.FormatError{Path: path, Err: fmt.Errorf("document.xml not found in the archive")}
	}

	rc, err := documentFile.Open()
	if err != nil {
		return nil, &loaders.FormatError{Path: path, Err: err}
	}
	defer rc.Close()

	paragraphs, err := decodeParagraphs(rc)
	if err != nil {
		return nil, &loaders.FormatError{Path: path, Err: err}
	}

	return &Document{Path: path, Paragraphs: paragraphs}, nil
}

// decodeParagraphs walks the document XML token stream and assembles one
// Paragraph per <w:p>. Text runs are concatenated; explicit tabs become
// tab characters.
func decodeParagraphs(r io.Reader) ([]Paragraph, error) {
	decoder := xml.NewDecoder(r)

	var paragraphs []Paragraph
	var current strings.Builder
	inParagraph := false
	inText := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inParagraph = true
				current.Reset()
			case "t":
				inText = inParagraph
			case "tab":
				if inParagraph {
					current.WriteByte('\t')
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "p":
				paragraphs = append(paragraphs, Paragraph{
					Index: len(paragraphs) + 1,
					Text:  current.String(),
				})
				inParagraph = false
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		}
	}

	return paragraphs, nil
}
