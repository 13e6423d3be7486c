// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package pdf loads a PDF file into the in-memory representation the
// scanner works on: styled text spans per page, the Info-dictionary
// metadata, and the raw low-level object table for script inspection.
package pdf

import (
	"fmt"
	"io"
	"sort"

	ledongthuc "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"github.com/rs/zerolog"

	"prompt-scan/internal/loaders"
)

// Span is a run of characters sharing font size and fill color, the
// smallest unit the classifier inspects.
type Span struct {
	Text     string
	FontSize float64
	Color    int // integer-encoded RGB, r<<16|g<<8|b
}

// Page holds the spans of one page in content-stream order.
type Page struct {
	Number int // 1-based
	Spans  []Span
}

// RawObject is one entry of the cross-reference table, stringified for
// marker scanning.
type RawObject struct {
	Xref    int
	Content string
}

// Document is the loaded representation of a PDF file.
type Document struct {
	Path         string
	Pages        []Page
	Metadata     map[string]string
	MetadataKeys []string // key order for deterministic traversal
	Objects      []RawObject
}

// Open loads the PDF at path. Open/parse failures return a
// *loaders.FormatError; per-page and per-object failures inside an
// otherwise readable file are logged at debug level and skipped.
func Open(path string, log zerolog.Logger) (*Document, error) {
	ctx, err := api.ReadContextFile(path)
	if err != nil {
		return nil, &loaders.FormatError{Path: path, Err: err}
	}

	doc := &Document{
		Path:     path,
		Metadata: make(map[string]string),
	}

	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		page := Page{Number: pageNr}
		r, err := pdfcpu.ExtractPageContent(ctx, pageNr)
		if err != nil || r == nil {
			log.Debug().Str("file", path).Int("page", pageNr).Err(err).Msg("no readable content stream, page skipped")
			doc.Pages = append(doc.Pages, page)
			continue
		}
		data, err := io.ReadAll(r)
		if err != nil {
			log.Debug().Str("file", path).Int("page", pageNr).Err(err).Msg("content stream read failed, page skipped")
			doc.Pages = append(doc.Pages, page)
			continue
		}
		page.Spans = parseContent(data)
		doc.Pages = append(doc.Pages, page)
	}

	doc.Objects = collectObjects(ctx, path, log)
	readInfoDict(path, doc, log)

	return doc, nil
}

// collectObjects stringifies every xref table entry in ascending order.
// A malformed object must not abort the scan, so stringification failures
// are logged and skipped.
func collectObjects(ctx *model.Context, path string, log zerolog.Logger) []RawObject {
	xrefs := make([]int, 0, len(ctx.XRefTable.Table))
	for xref := range ctx.XRefTable.Table {
		xrefs = append(xrefs, xref)
	}
	sort.Ints(xrefs)

	objects := make([]RawObject, 0, len(xrefs))
	for _, xref := range xrefs {
		entry := ctx.XRefTable.Table[xref]
		if entry == nil || entry.Free || entry.Object == nil {
			continue
		}
		content, err := objectString(entry.Object)
		if err != nil {
			log.Debug().Str("file", path).Int("xref", xref).Err(err).Msg("object inspection failed, skipped")
			continue
		}
		objects = append(objects, RawObject{Xref: xref, Content: content})
	}
	return objects
}

// objectString renders a pdfcpu object in PDF source form. pdfcpu can panic
// on pathological objects, so the panic is converted into an error and the
// object is treated as uninspectable.
func objectString(obj types.Object) (s string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("object stringification failed: %v", r)
		}
	}()
	return obj.PDFString(), nil
}

// readInfoDict fills in the document metadata from the trailer Info
// dictionary. Metadata is best effort: a PDF without a readable Info
// dictionary still gets its text scanned.
func readInfoDict(path string, doc *Document, log zerolog.Logger) {
	f, r, err := ledongthuc.Open(path)
	if err != nil {
		log.Debug().Str("file", path).Err(err).Msg("metadata read failed")
		return
	}
	defer f.Close()

	info := r.Trailer().Key("Info")
	if info.IsNull() || info.Kind() != ledongthuc.Dict {
		return
	}

	for _, key := range info.Keys() {
		v := info.Key(key)
		var value string
		switch v.Kind() {
		case ledongthuc.String:
			value = v.Text()
		case ledongthuc.Name:
			value = v.Name()
		default:
			continue
		}
		if value == "" {
			continue
		}
		doc.Metadata[key] = value
		doc.MetadataKeys = append(doc.MetadataKeys, key)
	}
}
