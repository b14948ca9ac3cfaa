// Package learn implements the top-down witness-function learner (spec
// §4.6): given a single (input, output) example, it returns the VSA of
// every DSL program consistent with that example, built by recursively
// decomposing the goal output into smaller subgoals via a fixed set of
// witness rules and recombining the sub-VSAs those subgoals return.
package learn

import (
	"strings"

	"github.com/vsalang/pbe/bank"
	"github.com/vsalang/pbe/dsl"
	"github.com/vsalang/pbe/vsa"
)

// Learn synthesizes the VSA of every program consistent with one example
// (spec §4.6). cache is the per-example observational-equivalence cache
// built by enumerate.Enumerator.PerExampleCache: it seeds the base case
// (rule 0) but Learn never writes back into it, mirroring the original —
// every recursive learn() call there reads the same cache map but none of
// them insert into it, so repeated subgoals across different branches of
// the recursion are recomputed rather than memoized. This is a real
// inefficiency inherited on purpose rather than silently optimized away:
// see DESIGN.md's note on the non-memoization hazard.
func Learn(inp, out dsl.Lit, cache map[dsl.Lit]*vsa.VSA, bnk *bank.Bank) *vsa.VSA {
	self := func(i, o dsl.Lit) *vsa.VSA { return Learn(i, o, cache, bnk) }
	return learnImpl(inp, out, cache, bnk, self)
}

// LearnToDepth is the depth-bounded variant (spec §4.6): at depth 0 it
// returns an Unlearned placeholder instead of recursing further, letting a
// caller (package synth) treat an unsolved subgoal as data rather than
// paying for unbounded recursion up front.
func LearnToDepth(inp, out dsl.Lit, cache map[dsl.Lit]*vsa.VSA, bnk *bank.Bank, depth int) *vsa.VSA {
	if depth == 0 {
		return vsa.NewUnlearned(inp, out)
	}
	self := func(i, o dsl.Lit) *vsa.VSA { return LearnToDepth(i, o, cache, bnk, depth-1) }
	return learnImpl(inp, out, cache, bnk, self)
}

// learnImpl applies every witness rule whose pattern matches (out, inp),
// recursing into subgoals through recurse (plain or depth-bounded), and
// unifies their results. Every rule below is independent — unlike a real
// match, more than one can fire for the same (out, inp) pair, matching the
// original's own multi_match! macro, which expands each arm into its own
// unconditional match rather than a single exhaustive one.
func learnImpl(inp, out dsl.Lit, cache map[dsl.Lit]*vsa.VSA, bnk *bank.Bank, recurse func(dsl.Lit, dsl.Lit) *vsa.VSA) *vsa.VSA {
	result := vsa.Empty()

	// Rule 0: whatever bottom-up enumeration already found.
	if cached, ok := cache[out]; ok {
		result = vsa.Unify(result, cached)
	}

	// Rule 1: a string goal is witnessed by its own literal.
	if s, ok := out.IsStringConst(); ok {
		result = vsa.Unify(result, vsa.Singleton(dsl.NewLit(dsl.StringConst(s))))
	}

	// Rule 2: likewise for booleans.
	if b, ok := out.IsBoolConst(); ok {
		result = vsa.Unify(result, vsa.Singleton(dsl.NewLit(dsl.BoolConst(b))))
	}

	// Rule 3: likewise for locations, plus rule 4: LocEnd is also a
	// witness when the goal location equals the input's length.
	if n, ok := out.IsLocConst(); ok {
		result = vsa.Unify(result, vsa.Singleton(dsl.NewLit(dsl.LocConst(n))))

		if inpStr, ok := inp.IsStringConst(); ok && len(inpStr) == n {
			result = vsa.Unify(result, vsa.Singleton(dsl.NewLit(dsl.LocEnd)))
		}
	}

	// Rule 5: the universal-witness rule for booleans — every pairing of
	// location-shaped bank programs through Equal, offered as a single
	// candidate pool regardless of which boolean b actually is (see the
	// doc comment on universalEqualWitness for why, and its risk).
	if _, ok := out.IsBoolConst(); ok {
		result = vsa.Unify(result, universalEqualWitness(bnk))
	}

	// Rules 6-8 are independent arms, not a mutually exclusive match —
	// when s == inpStr both "contains" guards hold and rules 6 and 7
	// both fire, exactly as in the original's separately expanded arms.
	if s, inpStr, ok := stringStringGoal(out, inp); ok {
		if strings.Contains(s, inpStr) {
			// Rule 6: the current input occurs (as a regex!) inside the
			// goal string.
			result = vsa.Unify(result, concatAroundInput(inp, s, inpStr, recurse))
		}

		if strings.Contains(inpStr, s) {
			// Rule 7: the goal string occurs literally inside the input.
			result = vsa.Unify(result, sliceFromInput(inp, s, inpStr, recurse))
		}

		if !strings.Contains(inpStr, s) && !strings.Contains(s, inpStr) {
			// Rule 8: neither contains the other — split the goal at
			// every internal boundary and recurse on both halves.
			result = vsa.Unify(result, splitConcat(inp, s, recurse))
		}
	}

	return result
}

func stringStringGoal(out, inp dsl.Lit) (s, inpStr string, ok bool) {
	s, sOk := out.IsStringConst()
	i, iOk := inp.IsStringConst()
	if !sOk || !iOk {
		return "", "", false
	}
	return s, i, true
}
