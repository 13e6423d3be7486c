// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import (
	"bytes"
	"encoding/json"
)

// Finding categories. A ScanResult never contains a category outside this set.
const (
	CategoryText          = "text"
	CategoryMetadata      = "metadata"
	CategoryJavaScript    = "javascript"
	CategoryInvisibleText = "invisible_texts"
	CategorySmallText     = "small_texts"
)

// Rendering thresholds for the invisibility heuristic. White fill color and
// sub-point font sizes are the two hiding mechanisms this tool detects;
// near-white colors and off-page positioning are intentionally out of scope.
const (
	WhiteRGB           = 16777215
	MinVisibleFontSize = 1.0
)

// Finding is one detected occurrence of a suspicious pattern or rendering
// anomaly. Concrete types exist per serialized shape so that the JSON field
// order of a finding always follows the pass that produced it.
type Finding interface {
	Category() string
}

// TextFinding is a pattern match in visible PDF page text.
type TextFinding struct {
	Type      string  `json:"type"`
	Page      int     `json:"page"`
	Text      string  `json:"text"`
	FontSize  float64 `json:"font_size"`
	Color     int     `json:"color"`
	Invisible bool    `json:"invisible"`
}

func (TextFinding) Category() string { return CategoryText }

// ParagraphFinding is a pattern match in a Word document paragraph.
type ParagraphFinding struct {
	Type      string `json:"type"`
	Paragraph string `json:"paragraph"`
}

func (ParagraphFinding) Category() string { return CategoryText }

// MetadataFinding is a pattern match in a document metadata field.
type MetadataFinding struct {
	Type  string `json:"type"`
	Field string `json:"field"`
	Text  string `json:"text"`
}

func (MetadataFinding) Category() string { return CategoryMetadata }

// ScriptFinding is a pattern match inside an embedded script object.
type ScriptFinding struct {
	Type string `json:"type"`
	Xref int    `json:"xref"`
	Text string `json:"text"`
}

func (ScriptFinding) Category() string { return CategoryJavaScript }

// HiddenTextFinding is a rendering-anomaly entry: a span that is rendered
// white or below the minimum visible font size, regardless of its content.
type HiddenTextFinding struct {
	category string
	Page     int     `json:"page"`
	FontSize float64 `json:"font_size"`
	Color    int     `json:"color"`
	Text     string  `json:"text"`
}

func (f HiddenTextFinding) Category() string { return f.category }

// NewInvisibleText returns a HiddenTextFinding bucketed as invisible text.
func NewInvisibleText(page int, fontSize float64, colorRGB int, text string) HiddenTextFinding {
	return HiddenTextFinding{category: CategoryInvisibleText, Page: page, FontSize: fontSize, Color: colorRGB, Text: text}
}

// NewSmallText returns a HiddenTextFinding bucketed as abnormally small text.
func NewSmallText(page int, fontSize float64, colorRGB int, text string) HiddenTextFinding {
	return HiddenTextFinding{category: CategorySmallText, Page: page, FontSize: fontSize, Color: colorRGB, Text: text}
}

// IsInvisible reports whether a span with the given rendering attributes is
// effectively hidden from a human reader.
func IsInvisible(colorRGB int, fontSize float64) bool {
	return colorRGB == WhiteRGB || fontSize < MinVisibleFontSize
}

// ScanResult maps categories to findings for one scanned file. Categories
// keep registration order and findings keep document traversal order; the
// result is never re-sorted.
type ScanResult struct {
	categories []string
	findings   map[string][]Finding
}

// NewScanResult creates a result with the given categories pre-registered.
// Pre-registered categories serialize as empty lists when nothing is found,
// so a PDF result always shows all five categories while a Word result only
// shows the text category.
func NewScanResult(categories ...string) *ScanResult {
	r := &ScanResult{findings: make(map[string][]Finding)}
	for _, c := range categories {
		r.register(c)
	}
	return r
}

func (r *ScanResult) register(category string) {
	if _, ok := r.findings[category]; !ok {
		r.categories = append(r.categories, category)
		r.findings[category] = nil
	}
}

// Add appends a finding to its category, registering the category if needed.
func (r *ScanResult) Add(f Finding) {
	c := f.Category()
	r.register(c)
	r.findings[c] = append(r.findings[c], f)
}

// Categories returns the category names in registration order.
func (r *ScanResult) Categories() []string {
	out := make([]string, len(r.categories))
	copy(out, r.categories)
	return out
}

// Findings returns the findings recorded for a category.
func (r *ScanResult) Findings(category string) []Finding {
	return r.findings[category]
}

// Total returns the number of findings across all categories.
func (r *ScanResult) Total() int {
	n := 0
	for _, fs := range r.findings {
		n += len(fs)
	}
	return n
}

// MarshalJSON serializes the result as an object with categories in
// registration order. encoding/json re-indents this output when the caller
// asks for indentation, so the compact form here is sufficient.
func (r *ScanResult) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range r.categories {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		fs := r.findings[c]
		if len(fs) == 0 {
			buf.WriteString("[]")
			continue
		}
		vals, err := json.Marshal(fs)
		if err != nil {
			return nil, err
		}
		buf.Write(vals)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
