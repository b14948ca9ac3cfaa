// Package litscan batch-scans an input string for every occurrence of a set
// of candidate literal substrings in a single pass, using the teacher's own
// multi-pattern matcher (github.com/coregx/ahocorasick) instead of compiling
// and running one regexp per literal.
//
// The bottom-up enumerator (spec §4.5) uses it to tell which of a round's
// candidate literal Find/FindEnd patterns occur in at least one example
// input, so that patterns occurring in none are dropped before candidates
// are built. Doing that with len(literals) separate strings.Index or regexp
// searches scans each input once per literal; an Aho-Corasick automaton
// scans it once for all of them.
package litscan

import "github.com/coregx/ahocorasick"

// Occurrence is a single literal match: Pattern is the index into the
// patterns slice Scanner was built from, Start and End delimit the match in
// the haystack (End exclusive, both byte offsets).
type Occurrence struct {
	Pattern int
	Start   int
	End     int
}

// Scanner finds every occurrence of a fixed set of literal patterns in a
// haystack. A Scanner is immutable and safe for concurrent use once built.
type Scanner struct {
	automaton *ahocorasick.Automaton
	patterns  []string
}

// New builds a Scanner over patterns. Duplicate or empty patterns are kept
// as given; the caller (the enumerator) is expected to already have deduped
// via observational equivalence. New returns an error if the underlying
// automaton fails to build (spec §7: surfaced, not panicked — building the
// automaton is a fallible setup step, not a programming error).
func New(patterns []string) (*Scanner, error) {
	builder := ahocorasick.NewBuilder()
	for _, p := range patterns {
		builder.AddPattern([]byte(p))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &Scanner{automaton: auto, patterns: patterns}, nil
}

// FindAll returns the non-overlapping occurrences of the patterns in
// haystack, left to right: after each match the scan resumes at its end, so
// an occurrence overlapping an earlier reported match is not returned. When
// several patterns are equal, Pattern is the index of the first of them.
func (s *Scanner) FindAll(haystack string) []Occurrence {
	hb := []byte(haystack)
	var out []Occurrence
	at := 0
	for at <= len(hb) {
		m := s.automaton.Find(hb, at)
		if m == nil {
			break
		}
		out = append(out, Occurrence{Pattern: s.patternOf(hb, m), Start: m.Start, End: m.End})
		if m.End > at {
			at = m.End
		} else {
			at++
		}
	}
	return out
}

// patternOf recovers which configured pattern produced m by comparing the
// matched bytes; the automaton itself reports only the span, not the
// pattern id, for a single Find call in this teacher's API.
func (s *Scanner) patternOf(haystack []byte, m *ahocorasick.Match) int {
	matched := string(haystack[m.Start:m.End])
	for i, p := range s.patterns {
		if p == matched {
			return i
		}
	}
	return -1
}

// Patterns returns the patterns the Scanner was built from.
func (s *Scanner) Patterns() []string {
	return s.patterns
}
