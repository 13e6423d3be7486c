// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import "strings"

// defaultPhrases are the built-in prompt-injection trigger phrases. Matching
// is case-insensitive substring matching, so these are stored lowercase.
var defaultPhrases = []string{
	"ignore previous instructions",
	"you are now",
	"disregard earlier",
	"pretend to",
	"output the following",
	"as a language model",
	"repeat after me",
	"print this exactly",
	"simulate response",
	"respond with",
	"complete the prompt",
}

// PatternSet is an immutable set of case-insensitive substring patterns.
// Build one at process start and pass it explicitly to the scanner; the set
// is never mutated after construction.
type PatternSet struct {
	phrases []string // original casing, for display
	lowered []string // lowercase, for matching
}

// NewPatternSet builds a set from the given phrases. Blank phrases are
// dropped.
func NewPatternSet(phrases ...string) *PatternSet {
	p := &PatternSet{}
	for _, phrase := range phrases {
		phrase = strings.TrimSpace(phrase)
		if phrase == "" {
			continue
		}
		p.phrases = append(p.phrases, phrase)
		p.lowered = append(p.lowered, strings.ToLower(phrase))
	}
	return p
}

// DefaultPatterns returns the built-in pattern set.
func DefaultPatterns() *PatternSet {
	return NewPatternSet(defaultPhrases...)
}

// Extend returns a new set containing this set's phrases plus the extras.
// The receiver is left unchanged.
func (p *PatternSet) Extend(extra ...string) *PatternSet {
	combined := make([]string, 0, len(p.phrases)+len(extra))
	combined = append(combined, p.phrases...)
	combined = append(combined, extra...)
	return NewPatternSet(combined...)
}

// Match reports whether any pattern occurs in s, case-insensitively.
func (p *PatternSet) Match(s string) bool {
	_, ok := p.MatchAny(s)
	return ok
}

// MatchAny returns the first pattern that occurs in s, case-insensitively.
func (p *PatternSet) MatchAny(s string) (string, bool) {
	lowered := strings.ToLower(s)
	for i, phrase := range p.lowered {
		if strings.Contains(lowered, phrase) {
			return p.phrases[i], true
		}
	}
	return "", false
}

// Phrases returns a copy of the phrases in this set.
func (p *PatternSet) Phrases() []string {
	out := make([]string, len(p.phrases))
	copy(out, p.phrases)
	return out
}

// Len returns the number of patterns in the set.
func (p *PatternSet) Len() int {
	return len(p.phrases)
}
