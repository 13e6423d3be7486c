// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package scanner applies the suspicious-pattern matcher and the
// rendering-anomaly heuristics to loaded documents. It operates purely on
// the in-memory representations; no file I/O happens here.
package scanner

import (
	"regexp"
	"strings"

	"prompt-scan/internal/detector"
	"prompt-scan/internal/loaders/pdf"
	"prompt-scan/internal/loaders/word"
)

// scriptBodyRE extracts parenthesized substrings from raw PDF objects as
// candidate script bodies.
var scriptBodyRE = regexp.MustCompile(`(?s)\((.*?)\)`)

// ScanPDF runs all four PDF passes and returns a result with all five
// categories registered, in the fixed category order.
func ScanPDF(doc *pdf.Document, patterns *detector.PatternSet) *detector.ScanResult {
	result := detector.NewScanResult(
		detector.CategoryText,
		detector.CategoryMetadata,
		detector.CategoryJavaScript,
		detector.CategoryInvisibleText,
		detector.CategorySmallText,
	)

	scanVisibleText(doc, patterns, result)
	scanMetadata(doc, patterns, result)
	scanScripts(doc, patterns, result)
	scanHiddenText(doc, result)

	return result
}

// ScanWord runs the paragraph pass. Word documents carry no rendering
// attributes or object table, so only the text category exists.
func ScanWord(doc *word.Document, patterns *detector.PatternSet) *detector.ScanResult {
	result := detector.NewScanResult(detector.CategoryText)

	for _, para := range doc.Paragraphs {
		text := strings.TrimSpace(para.Text)
		if text == "" {
			continue
		}
		if patterns.Match(text) {
			result.Add(detector.ParagraphFinding{
				Type:      detector.CategoryText,
				Paragraph: text,
			})
		}
	}

	return result
}

// scanVisibleText emits a text finding for every non-empty span whose text
// matches a pattern, carrying the span's rendering attributes and the
// computed invisibility flag.
func scanVisibleText(doc *pdf.Document, patterns *detector.PatternSet, result *detector.ScanResult) {
	for _, page := range doc.Pages {
		for _, span := range page.Spans {
			text := strings.TrimSpace(span.Text)
			if text == "" {
				continue
			}
			if !patterns.Match(text) {
				continue
			}
			result.Add(detector.TextFinding{
				Type:      detector.CategoryText,
				Page:      page.Number,
				Text:      text,
				FontSize:  span.FontSize,
				Color:     span.Color,
				Invisible: detector.IsInvisible(span.Color, span.FontSize),
			})
		}
	}
}

// scanHiddenText buckets every non-empty span by rendering anomaly: white
// fill goes to invisible_texts, sub-threshold font size to small_texts.
// The color check takes precedence, so a span is never in both buckets.
// This pass deliberately ignores the pattern set; all hidden text is a
// risk signal, not only text containing known trigger phrases.
func scanHiddenText(doc *pdf.Document, result *detector.ScanResult) {
	for _, page := range doc.Pages {
		for _, span := range page.Spans {
			text := strings.TrimSpace(span.Text)
			if text == "" {
				continue
			}
			switch {
			case span.Color == detector.WhiteRGB:
				result.Add(detector.NewInvisibleText(page.Number, span.FontSize, span.Color, text))
			case span.FontSize < detector.MinVisibleFontSize:
				result.Add(detector.NewSmallText(page.Number, span.FontSize, span.Color, text))
			}
		}
	}
}

// scanMetadata matches each non-empty metadata field value.
func scanMetadata(doc *pdf.Document, patterns *detector.PatternSet, result *detector.ScanResult) {
	for _, key := range doc.MetadataKeys {
		value := doc.Metadata[key]
		if value == "" {
			continue
		}
		if patterns.Match(value) {
			result.Add(detector.MetadataFinding{
				Type:  detector.CategoryMetadata,
				Field: key,
				Text:  value,
			})
		}
	}
}

// scanScripts looks for embedded JavaScript in the low-level object table.
// Any object whose source carries a /JavaScript or /JS marker has its
// parenthesized substrings extracted and matched as candidate script
// bodies.
func scanScripts(doc *pdf.Document, patterns *detector.PatternSet, result *detector.ScanResult) {
	for _, obj := range doc.Objects {
		if !strings.Contains(obj.Content, "/JavaScript") && !strings.Contains(obj.Content, "/JS") {
			continue
		}
		for _, m := range scriptBodyRE.FindAllStringSubmatch(obj.Content, -1) {
			script := m[1]
			if !patterns.Match(script) {
				continue
			}
			result.Add(detector.ScriptFinding{
				Type: detector.CategoryJavaScript,
				Xref: obj.Xref,
				Text: strings.TrimSpace(script),
			})
		}
	}
}
