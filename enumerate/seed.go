package enumerate

import (
	"sort"
	"unicode"

	"github.com/vsalang/pbe/dsl"
	"github.com/vsalang/pbe/vsa"
)

// SeedPrimitives seeds both banks' size-1 buckets and the cache with the
// starting primitives (spec §4.5; Supplemented Feature, SPEC_FULL.md §C):
// the constant literals every synthesis run shares, plus the non-alphanumeric
// characters that appear (in the input or the output) in every example; an
// example whose input or output is not a string contributes no characters,
// which leaves that set empty (see charSetIntersection). Each seeded
// primitive's output vector is marked as seen, so GrowTo keeps no later
// candidate with the same outputs in the bank. outputs must have the same
// length as e.Inputs, index for index.
func (e *Enumerator) SeedPrimitives(outputs []dsl.Lit) {
	intersection := charSetIntersection(e.Inputs, outputs)

	stringPrims := []dsl.Lit{
		dsl.Input,
		dsl.StringConst(""),
		dsl.StringConst(" "),
		dsl.StringConst("."),
		dsl.LocConst(0),
		dsl.LocConst(1),
		dsl.LocEnd,
	}
	stringPrims = append(stringPrims, intersection...)

	for _, prim := range stringPrims {
		e.Bank.PushSize(1, dsl.NewLit(prim))
		outs := make([]dsl.Lit, len(e.Inputs))
		for i := range outs {
			outs[i] = prim
		}
		e.seen.Insert(outsKey(outs))
		e.insertCache(outs, vsa.Singleton(dsl.NewLit(prim)))
	}

	regexPrims := []dsl.Lit{
		dsl.StringConst(`\d`),
		dsl.StringConst(`\b`),
		dsl.StringConst("[a-z]"),
		dsl.StringConst("[A-Z]"),
	}
	regexPrims = append(regexPrims, intersection...)
	for _, prim := range regexPrims {
		e.RegexBank.PushSize(1, dsl.NewLit(prim))
	}
}

// charSetIntersection computes, as single-character StringConst literals,
// the non-alphanumeric characters common to every example's input+output
// text — replicating original_source/src/synth.rs's own char_sets fold
// exactly, including two of its quirks rather than silently correcting
// them (original_source is authoritative here; the distilled spec does
// not call for a fix):
//
//   - '{' and '}' both escape to the literal pattern "\{" (not "\}" for
//     the closing brace) — an apparent source slip where the closing-brace
//     arm was copy-pasted from the opening-brace arm without updating its
//     replacement string. ('.' itself escapes correctly to "\.".)
//   - an example whose input or output isn't a plain string (e.g. a
//     BoolExample) contributes an EMPTY char set, not a skipped one. Since
//     the intersection is "characters present in every example's set",
//     even a single non-string-pair example anywhere in the batch collapses
//     the whole intersection to empty — this is load-bearing, not
//     incidental: the original computes char_sets per example unconditionally
//     (one set per example, empty or not) and folds over all of them, so
//     dropping non-string examples out of the fold (rather than keeping
//     their empty set in it) changes the result for any synthesis run that
//     mixes string and boolean examples.
func charSetIntersection(inputs, outputs []dsl.Lit) []dsl.Lit {
	sets := make([]map[string]struct{}, len(inputs))
	for i := range inputs {
		sets[i] = charSet(inputs[i], outputs[i])
	}
	if len(sets) == 0 {
		return nil
	}

	common := make([]string, 0, len(sets[0]))
	for c := range sets[0] {
		inAll := true
		for _, s := range sets[1:] {
			if _, ok := s[c]; !ok {
				inAll = false
				break
			}
		}
		if inAll {
			common = append(common, c)
		}
	}
	sort.Strings(common)

	out := make([]dsl.Lit, len(common))
	for i, c := range common {
		out[i] = dsl.StringConst(c)
	}
	return out
}

// charSet returns the escaped non-alphanumeric character set for one
// example, or an empty set if its input or output isn't a plain string —
// the zero-on-non-string-pair arm of the original's own match.
func charSet(input, output dsl.Lit) map[string]struct{} {
	set := make(map[string]struct{})
	in, inOk := input.IsStringConst()
	out, outOk := output.IsStringConst()
	if !inOk || !outOk {
		return set
	}
	for _, r := range in + out {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			continue
		}
		set[escapeCharLit(r)] = struct{}{}
	}
	return set
}

func escapeCharLit(r rune) string {
	switch r {
	case '.':
		return "\\."
	case '{', '}':
		return "\\{"
	default:
		return string(r)
	}
}
