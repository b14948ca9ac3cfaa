package enumerate

import (
	"regexp"

	"github.com/vsalang/pbe/bank"
	"github.com/vsalang/pbe/dsl"
	"github.com/vsalang/pbe/internal/litscan"
)

// GrowTo performs one bottom-up enumeration round for size (spec §4.5): it
// grows both banks to size, builds every candidate of that round from
// re_concats, slices, finds (Find and FindEnd, always paired), re_groups,
// and — when EnableBools — loc_eqs, then keeps only those that are
// observationally novel (see observe) in Bank's size bucket.
//
// Plain string concatenation and loc_add/loc_sub candidates are
// deliberately not generated here: the witness-based learner's Concat
// rule (spec §4.6) is already complete for strings, so enumerating them
// bottom-up would only cost bank space for no gain in reachable programs
// — mirroring the original, which builds but never wires these three
// generators into its candidate pipeline.
func (e *Enumerator) GrowTo(size int) {
	e.Bank.GrowTo(size)
	e.RegexBank.GrowTo(size)

	var candidates []dsl.AST
	candidates = append(candidates, e.reConcats(size)...)
	candidates = append(candidates, e.slices(size)...)
	candidates = append(candidates, e.finds(size)...)
	candidates = append(candidates, e.reGroups(size)...)
	if e.EnableBools {
		candidates = append(candidates, e.locEqs(size)...)
	}

	accepted := make([]dsl.AST, 0, len(candidates))
	for _, cand := range candidates {
		if e.observe(cand) {
			accepted = append(accepted, cand)
		}
	}
	e.Bank.Extend(size, accepted)
}

// reConcats builds Concat over pairs of regex atoms (spec §4.5): these
// land in the main bank, not RegexBank, because a concatenation of two
// regex atoms is itself usable both as a further regex atom (via
// stringsOfSize's Concat case) and as an ordinary string value.
func (e *Enumerator) reConcats(size int) []dsl.AST {
	var out []dsl.AST
	for i := 1; i < size; i++ {
		lhsSize, rhsSize := i, size-i
		for _, lhs := range regexesOfSize(e.RegexBank, lhsSize) {
			for _, rhs := range regexesOfSize(e.RegexBank, rhsSize) {
				out = append(out, dsl.NewApp(dsl.Concat, lhs, rhs))
			}
		}
	}
	return out
}

// slices builds Slice over pairs of locations of complementary size.
func (e *Enumerator) slices(size int) []dsl.AST {
	var out []dsl.AST
	for i := 1; i < size; i++ {
		lhsSize, rhsSize := i, size-i
		for _, lhs := range locsOfSize(e.Bank, lhsSize) {
			for _, rhs := range locsOfSize(e.Bank, rhsSize) {
				out = append(out, dsl.NewApp(dsl.Slice, lhs, rhs))
			}
		}
	}
	return out
}

// finds builds Find and FindEnd, always in pairs, over every (outer,
// pattern, index) triple whose three bank bucket sizes sum to size (the
// wrapping App is not counted, so each candidate is filed one below its
// own Size, as in slices, reConcats and locEqs);
// pattern ranges over both ordinary strings (gated, see gatedFindPatterns)
// and regex atoms of its size.
func (e *Enumerator) finds(size int) []dsl.AST {
	var out []dsl.AST
	for l := 1; l < size-1; l++ {
		for r := l + 1; r < size; r++ {
			lhsSize, rhsSize, indexSize := l, r-l, size-r

			patterns := e.gatedFindPatterns(rhsSize)

			for _, lhs := range stringsOfSize(e.Bank, lhsSize) {
				for _, pattern := range patterns {
					for _, idx := range locsOfSize(e.Bank, indexSize) {
						out = append(out, dsl.NewApp(dsl.Find, lhs, pattern, idx))
						out = append(out, dsl.NewApp(dsl.FindEnd, lhs, pattern, idx))
					}
				}
			}
		}
	}
	return out
}

// gatedFindPatterns returns rhsSize's candidate Find/FindEnd patterns —
// string-bank literals plus regex atoms — after dropping non-empty string
// literals free of regex metacharacters that occur in none of the example
// inputs, using a single
// Aho-Corasick pass (package internal/litscan) over all of that round's
// literal candidates instead of a separate strings.Index scan per literal
// (spec SPEC_FULL.md §B). A literal pattern absent from every input can
// never drive a matching Find/FindEnd at eval time, so there's no reason
// to pay bank space for it only to discard it later via observational
// equivalence. Regex atoms and non-literal string-shaped programs
// (Concat/Slice applications) aren't fixed byte sequences an Aho-Corasick
// automaton can search for, so they pass through ungated — as does the
// empty string literal, which Aho-Corasick cannot meaningfully gate either,
// and any literal containing a regex metacharacter (such as "."), since
// Find compiles it as a regex that can match text it does not spell out.
func (e *Enumerator) gatedFindPatterns(rhsSize int) []dsl.AST {
	candidates := stringsOfSize(e.Bank, rhsSize)

	var literalAt []int
	var literals []string
	for i, ast := range candidates {
		if ast.Kind != dsl.KindLit {
			continue
		}
		if s, ok := ast.Lit.IsStringConst(); ok && s != "" && regexp.QuoteMeta(s) == s {
			literalAt = append(literalAt, i)
			literals = append(literals, s)
		}
	}

	drop := make(map[int]bool, len(literalAt))
	if len(literals) > 0 {
		occurs := e.literalOccursInSomeInput(literals)
		for i, idx := range literalAt {
			if !occurs[i] {
				drop[idx] = true
			}
		}
	}

	out := make([]dsl.AST, 0, len(candidates))
	for i, ast := range candidates {
		if !drop[i] {
			out = append(out, ast)
		}
	}
	return append(out, regexesOfSize(e.RegexBank, rhsSize)...)
}

// literalOccursInSomeInput reports, for each of literals, whether it
// occurs anywhere in any example input, found with one Aho-Corasick pass
// per input rather than len(literals) separate substring searches. If the
// automaton fails to build, every pattern is reported as occurring (fail
// open: never drop a candidate the gate couldn't evaluate).
func (e *Enumerator) literalOccursInSomeInput(literals []string) []bool {
	occurs := make([]bool, len(literals))
	scanner, err := litscan.New(literals)
	if err != nil {
		for i := range occurs {
			occurs[i] = true
		}
		return occurs
	}
	for _, inp := range e.Inputs {
		s, ok := inp.IsStringConst()
		if !ok {
			continue
		}
		for _, occ := range scanner.FindAll(s) {
			matched := s[occ.Start:occ.End]
			for j, lit := range literals {
				if lit == matched {
					occurs[j] = true
				}
			}
		}
	}
	return occurs
}

// reGroups builds a one-or-more regex quantifier over a string-shaped
// program by concatenating it with the literal "+" (spec §4.5). The inner
// size bound intentionally ranges over 1..size-2 rather than pinning to
// exactly size-2, matching the original's own generator — the resulting
// candidate's true AST size does not always equal the round it is filed
// under, which the original accepts since the bank bucket here tracks
// "found during round size", not a verified post-hoc AST.Size().
func (e *Enumerator) reGroups(size int) []dsl.AST {
	var out []dsl.AST
	plus := dsl.NewLit(dsl.StringConst("+"))
	for s := 1; s < size-1; s++ {
		for _, ast := range stringsOfSize(e.Bank, s) {
			out = append(out, dsl.NewApp(dsl.Concat, ast, plus))
		}
	}
	return out
}

// locEqs builds Equal over pairs of locations, only when EnableBools.
func (e *Enumerator) locEqs(size int) []dsl.AST {
	var out []dsl.AST
	for i := 1; i < size; i++ {
		lhsSize, rhsSize := i, size-i
		for _, lhs := range locsOfSize(e.Bank, lhsSize) {
			for _, rhs := range locsOfSize(e.Bank, rhsSize) {
				out = append(out, dsl.NewApp(dsl.Equal, lhs, rhs))
			}
		}
	}
	return out
}

// stringsOfSize returns b's size-n bucket filtered to string-shaped ASTs:
// Input, a string constant, or a Concat/Slice application (spec §4.5).
func stringsOfSize(b *bank.Bank, n int) []dsl.AST {
	var out []dsl.AST
	for _, ast := range b.Size(n) {
		if isStringShaped(ast) {
			out = append(out, ast)
		}
	}
	return out
}

func isStringShaped(ast dsl.AST) bool {
	switch ast.Kind {
	case dsl.KindLit:
		if ast.Lit.IsInput() {
			return true
		}
		_, ok := ast.Lit.IsStringConst()
		return ok
	case dsl.KindApp:
		return ast.Fun == dsl.Concat || ast.Fun == dsl.Slice
	case dsl.KindForeignCall:
		return ast.Foreign.Typ == dsl.Str
	default:
		return false
	}
}

// locsOfSize returns b's size-n bucket filtered to location-shaped ASTs: a
// location constant, LocEnd, or a Find/LocAdd/LocSub application. FindEnd
// results are deliberately excluded here, matching the original — only a
// match's start position is treated as a composable location value.
func locsOfSize(b *bank.Bank, n int) []dsl.AST {
	var out []dsl.AST
	for _, ast := range b.Size(n) {
		if isLocShaped(ast) {
			out = append(out, ast)
		}
	}
	return out
}

func isLocShaped(ast dsl.AST) bool {
	switch ast.Kind {
	case dsl.KindLit:
		if ast.Lit.IsLocEnd() {
			return true
		}
		_, ok := ast.Lit.IsLocConst()
		return ok
	case dsl.KindApp:
		return ast.Fun == dsl.Find || ast.Fun == dsl.LocAdd || ast.Fun == dsl.LocSub
	default:
		return false
	}
}

// regexesOfSize returns RegexBank's size-n bucket verbatim: every entry in
// RegexBank is already a regex atom by construction (seed.go only ever
// pushes regex-atom literals into it; nothing in this file extends it past
// size 1), so no further filtering is needed.
func regexesOfSize(b *bank.Bank, n int) []dsl.AST {
	return b.Size(n)
}
