// Package enumerate implements bottom-up enumeration (spec §4.5): growing a
// size-indexed bank.Bank of candidate programs one size class at a time,
// deduplicating every candidate by observational equivalence — programs
// that produce the same output on every example input are folded into one
// vsa.VSA rather than kept as separate bank entries — so the bank stays
// small enough that top-down learning over it (package learn) stays
// tractable.
package enumerate

import (
	"strings"

	"github.com/vsalang/pbe/bank"
	"github.com/vsalang/pbe/dsl"
	"github.com/vsalang/pbe/internal/sparse"
	"github.com/vsalang/pbe/vsa"
)

// Enumerator holds the two banks bottom-up enumeration fills — the main
// bank of string/location/boolean programs and a separate bank of regex
// atoms used only as Find/FindEnd pattern arguments — plus the
// observational-equivalence cache built while filling them (spec §4.5).
type Enumerator struct {
	// Inputs is the example inputs, one per example, in example order.
	Inputs []dsl.Lit
	// EnableBools gates loc_eqs candidate generation: only worth the
	// combinatorial cost when at least one example's output is boolean.
	EnableBools bool

	Bank      *bank.Bank
	RegexBank *bank.Bank

	cache map[string]*outsEntry
	// seen tracks which output-vector keys have already been observed, so
	// observe's novelty check is a single Insert rather than a second map
	// probe against cache.
	seen *sparse.Set
}

type outsEntry struct {
	outs []dsl.Lit
	v    *vsa.VSA
}

// New creates an Enumerator over inputs with empty banks.
func New(inputs []dsl.Lit, enableBools bool) *Enumerator {
	return &Enumerator{
		Inputs:      inputs,
		EnableBools: enableBools,
		Bank:        bank.New(),
		RegexBank:   bank.New(),
		cache:       make(map[string]*outsEntry),
		seen:        sparse.NewSet(0),
	}
}

// PerExampleCache folds the observational-equivalence cache down to
// example i: for every distinct output vector discovered so far, the
// value at position i maps to the union of every VSA whose vector agrees
// there. This is the per-example cache the driver seeds learn with (spec
// §4.6, §4.7).
func (e *Enumerator) PerExampleCache(i int) map[dsl.Lit]*vsa.VSA {
	out := make(map[dsl.Lit]*vsa.VSA, len(e.cache))
	for _, entry := range e.cache {
		key := entry.outs[i]
		if existing, ok := out[key]; ok {
			out[key] = vsa.Unify(existing, entry.v)
		} else {
			out[key] = entry.v
		}
	}
	return out
}

// insertCache merges v into the cache entry for outs, unifying with
// whatever is already there (spec §4.5: the observational-equivalence
// cache never drops a program, it accumulates every equivalent one).
func (e *Enumerator) insertCache(outs []dsl.Lit, v *vsa.VSA) {
	key := outsKey(outs)
	if existing, ok := e.cache[key]; ok {
		e.cache[key] = &outsEntry{outs: outs, v: vsa.Unify(existing.v, v)}
		return
	}
	e.cache[key] = &outsEntry{outs: outs, v: v}
}

// observe evaluates ast against every input, merges it into the cache
// under its output vector, and reports whether that vector was novel —
// the bank only ever stores the first representative AST found for a
// given output vector; later ones still join its VSA but are not also
// kept as separate bank entries (spec §4.5).
func (e *Enumerator) observe(ast dsl.AST) bool {
	outs := make([]dsl.Lit, len(e.Inputs))
	for i, inp := range e.Inputs {
		outs[i] = dsl.Eval(ast, inp)
	}
	key := outsKey(outs)
	novel := e.seen.Insert(key)
	e.insertCache(outs, vsa.Singleton(ast))
	return novel
}

func outsKey(outs []dsl.Lit) string {
	var sb strings.Builder
	for i, o := range outs {
		if i > 0 {
			sb.WriteByte('\x1f')
		}
		sb.WriteString(o.String())
	}
	return sb.String()
}
