// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package pdf

import (
	"math"
	"strconv"
	"unicode/utf16"
)

// parseContent interprets a decoded page content stream and returns the
// text spans it shows, in stream order. Only the operators that influence
// the rendering attributes we classify on are tracked: Tf (font size),
// Tm (text matrix scale), rg/g/k/sc/scn (fill color) and q/Q (graphics
// state stack). Each Tj, ', " or TJ emission becomes one span.
func parseContent(data []byte) []Span {
	var spans []Span

	state := graphicsState{fontSize: defaultFontSize, scale: 1, color: 0}
	var stack []graphicsState
	var operands []token

	lex := newLexer(data)
	for {
		tok, ok := lex.next()
		if !ok {
			break
		}
		if tok.kind != tokOperator {
			operands = append(operands, tok)
			continue
		}

		switch tok.text {
		case "q":
			stack = append(stack, state)
		case "Q":
			if n := len(stack); n > 0 {
				state = stack[n-1]
				stack = stack[:n-1]
			}
		case "BT":
			// Text objects start with an identity text matrix.
			state.scale = 1
		case "Tf":
			if n, ok := lastNumber(operands); ok {
				state.fontSize = n
			}
		case "Tm":
			if m, ok := lastNumbers(operands, 6); ok {
				// Vertical scale of the text matrix; rotation keeps the
				// magnitude via the b/d column.
				scale := math.Hypot(m[1], m[3])
				if scale > 0 {
					state.scale = scale
				}
			}
		case "rg":
			if m, ok := lastNumbers(operands, 3); ok {
				state.color = encodeRGB(m[0], m[1], m[2])
			}
		case "g":
			if n, ok := lastNumber(operands); ok {
				state.color = encodeRGB(n, n, n)
			}
		case "k":
			if m, ok := lastNumbers(operands, 4); ok {
				state.color = encodeCMYK(m[0], m[1], m[2], m[3])
			}
		case "sc", "scn":
			if m, ok := trailingNumbers(operands); ok {
				switch len(m) {
				case 1:
					state.color = encodeRGB(m[0], m[0], m[0])
				case 3:
					state.color = encodeRGB(m[0], m[1], m[2])
				case 4:
					state.color = encodeCMYK(m[0], m[1], m[2], m[3])
				}
			}
		case "Tj", "'", "\"":
			if s, ok := lastString(operands); ok {
				spans = appendSpan(spans, s, state)
			}
		case "TJ":
			if s, ok := arrayText(operands); ok {
				spans = appendSpan(spans, s, state)
			}
		}
		operands = operands[:0]
	}

	return spans
}

// defaultFontSize is assumed when text is shown before any Tf operator, so
// malformed streams do not masquerade as small text.
const defaultFontSize = 12.0

type graphicsState struct {
	fontSize float64
	scale    float64
	color    int
}

func appendSpan(spans []Span, text string, state graphicsState) []Span {
	if text == "" {
		return spans
	}
	return append(spans, Span{
		Text:     text,
		FontSize: state.fontSize * state.scale,
		Color:    state.color,
	})
}

func encodeRGB(r, g, b float64) int {
	return component(r)<<16 | component(g)<<8 | component(b)
}

func encodeCMYK(c, m, y, k float64) int {
	r := 1 - math.Min(1, c+k)
	g := 1 - math.Min(1, m+k)
	b := 1 - math.Min(1, y+k)
	return encodeRGB(r, g, b)
}

func component(v float64) int {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return int(math.Round(v * 255))
}

// Token handling.

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokString
	tokName
	tokArrayStart
	tokArrayEnd
	tokDict
	tokOperator
)

type token struct {
	kind tokenKind
	text string  // decoded string, name, or operator
	num  float64 // for tokNumber
}

func lastNumber(operands []token) (float64, bool) {
	for i := len(operands) - 1; i >= 0; i-- {
		if operands[i].kind == tokNumber {
			return operands[i].num, true
		}
	}
	return 0, false
}

func lastNumbers(operands []token, n int) ([]float64, bool) {
	nums, ok := trailingNumbers(operands)
	if !ok || len(nums) < n {
		return nil, false
	}
	return nums[len(nums)-n:], true
}

// trailingNumbers returns the run of numeric operands at the end of the
// operand list (e.g. the components of a color-setting operator).
func trailingNumbers(operands []token) ([]float64, bool) {
	end := len(operands)
	start := end
	for start > 0 && operands[start-1].kind == tokNumber {
		start--
	}
	if start == end {
		return nil, false
	}
	nums := make([]float64, 0, end-start)
	for _, t := range operands[start:end] {
		nums = append(nums, t.num)
	}
	return nums, true
}

func lastString(operands []token) (string, bool) {
	for i := len(operands) - 1; i >= 0; i-- {
		if operands[i].kind == tokString {
			return operands[i].text, true
		}
	}
	return "", false
}

// arrayText concatenates the string elements of the most recent array
// operand, as used by the TJ operator. Kerning adjustments are ignored.
func arrayText(operands []token) (string, bool) {
	start := -1
	for i := len(operands) - 1; i >= 0; i-- {
		if operands[i].kind == tokArrayStart {
			start = i
			break
		}
	}
	if start < 0 {
		return "", false
	}
	var out []byte
	found := false
	for _, t := range operands[start:] {
		if t.kind == tokString {
			out = append(out, t.text...)
			found = true
		}
	}
	return string(out), found
}

// Lexer.

type lexer struct {
	data []byte
	pos  int
}

func newLexer(data []byte) *lexer {
	return &lexer{data: data}
}

func (l *lexer) next() (token, bool) {
	l.skipSpace()
	if l.pos >= len(l.data) {
		return token{}, false
	}

	c := l.data[l.pos]
	switch {
	case c == '(':
		return token{kind: tokString, text: l.literalString()}, true
	case c == '<':
		if l.pos+1 < len(l.data) && l.data[l.pos+1] == '<' {
			l.skipDict()
			return token{kind: tokDict}, true
		}
		return token{kind: tokString, text: l.hexString()}, true
	case c == '[':
		l.pos++
		return token{kind: tokArrayStart}, true
	case c == ']':
		l.pos++
		return token{kind: tokArrayEnd}, true
	case c == '/':
		return token{kind: tokName, text: l.name()}, true
	case c == '+' || c == '-' || c == '.' || (c >= '0' && c <= '9'):
		return l.number(), true
	default:
		return token{kind: tokOperator, text: l.operator()}, true
	}
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.data) {
		c := l.data[l.pos]
		if isSpace(c) {
			l.pos++
			continue
		}
		if c == '%' {
			for l.pos < len(l.data) && l.data[l.pos] != '\n' && l.data[l.pos] != '\r' {
				l.pos++
			}
			continue
		}
		break
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f' || c == 0
}

func isDelimiter(c byte) bool {
	switch c {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}

// literalString decodes a (...) string including nested parentheses and
// backslash escapes.
func (l *lexer) literalString() string {
	l.pos++ // consume '('
	var out []byte
	depth := 1
	for l.pos < len(l.data) {
		c := l.data[l.pos]
		switch c {
		case '\\':
			l.pos++
			if l.pos >= len(l.data) {
				return decodeStringBytes(out)
			}
			e := l.data[l.pos]
			switch e {
			case 'n':
				out = append(out, '\n')
			case 'r':
				out = append(out, '\r')
			case 't':
				out = append(out, '\t')
			case 'b':
				out = append(out, '\b')
			case 'f':
				out = append(out, '\f')
			case '(', ')', '\\':
				out = append(out, e)
			case '\r':
				// Line continuation; swallow an LF that follows.
				if l.pos+1 < len(l.data) && l.data[l.pos+1] == '\n' {
					l.pos++
				}
			case '\n':
				// Line continuation.
			default:
				if e >= '0' && e <= '7' {
					v := int(e - '0')
					for i := 0; i < 2 && l.pos+1 < len(l.data); i++ {
						d := l.data[l.pos+1]
						if d < '0' || d > '7' {
							break
						}
						v = v*8 + int(d-'0')
						l.pos++
					}
					out = append(out, byte(v))
				} else {
					out = append(out, e)
				}
			}
			l.pos++
		case '(':
			depth++
			out = append(out, c)
			l.pos++
		case ')':
			depth--
			l.pos++
			if depth == 0 {
				return decodeStringBytes(out)
			}
			out = append(out, c)
		default:
			out = append(out, c)
			l.pos++
		}
	}
	return decodeStringBytes(out)
}

// hexString decodes a <...> string; an odd final digit is padded with zero.
func (l *lexer) hexString() string {
	l.pos++ // consume '<'
	var digits []byte
	for l.pos < len(l.data) && l.data[l.pos] != '>' {
		c := l.data[l.pos]
		if isHexDigit(c) {
			digits = append(digits, c)
		}
		l.pos++
	}
	if l.pos < len(l.data) {
		l.pos++ // consume '>'
	}
	if len(digits)%2 == 1 {
		digits = append(digits, '0')
	}
	out := make([]byte, 0, len(digits)/2)
	for i := 0; i+1 < len(digits); i += 2 {
		hi := hexValue(digits[i])
		lo := hexValue(digits[i+1])
		out = append(out, byte(hi<<4|lo))
	}
	return decodeStringBytes(out)
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	default:
		return int(c-'A') + 10
	}
}

// decodeStringBytes interprets PDF string bytes as text. UTF-16BE strings
// carry a byte order mark; everything else is treated as a byte string.
func decodeStringBytes(b []byte) string {
	if len(b) >= 2 && b[0] == 0xFE && b[1] == 0xFF {
		u := make([]uint16, 0, (len(b)-2)/2)
		for i := 2; i+1 < len(b); i += 2 {
			u = append(u, uint16(b[i])<<8|uint16(b[i+1]))
		}
		return string(utf16.Decode(u))
	}
	return string(b)
}

func (l *lexer) name() string {
	start := l.pos
	l.pos++ // consume '/'
	for l.pos < len(l.data) && !isSpace(l.data[l.pos]) && !isDelimiter(l.data[l.pos]) {
		l.pos++
	}
	return string(l.data[start:l.pos])
}

func (l *lexer) number() token {
	start := l.pos
	l.pos++
	for l.pos < len(l.data) && !isSpace(l.data[l.pos]) && !isDelimiter(l.data[l.pos]) {
		l.pos++
	}
	text := string(l.data[start:l.pos])
	n, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return token{kind: tokOperator, text: text}
	}
	return token{kind: tokNumber, num: n}
}

func (l *lexer) operator() string {
	start := l.pos
	l.pos++
	for l.pos < len(l.data) && !isSpace(l.data[l.pos]) && !isDelimiter(l.data[l.pos]) {
		l.pos++
	}
	return string(l.data[start:l.pos])
}

// skipDict consumes a << ... >> dictionary, which can nest.
func (l *lexer) skipDict() {
	depth := 0
	for l.pos < len(l.data) {
		if l.pos+1 < len(l.data) && l.data[l.pos] == '<' && l.data[l.pos+1] == '<' {
			depth++
			l.pos += 2
			continue
		}
		if l.pos+1 < len(l.data) && l.data[l.pos] == '>' && l.data[l.pos+1] == '>' {
			depth--
			l.pos += 2
			if depth == 0 {
				return
			}
			continue
		}
		if l.data[l.pos] == '(' {
			l.literalString()
			continue
		}
		l.pos++
	}
}
