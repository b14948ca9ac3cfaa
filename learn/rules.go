package learn

import (
	"strings"

	"github.com/vsalang/pbe/bank"
	"github.com/vsalang/pbe/dsl"
	"github.com/vsalang/pbe/regexcache"
	"github.com/vsalang/pbe/vsa"
)

// universalEqualWitness builds the Leaf of every Equal(lhs, rhs) pairing
// over every location-shaped program anywhere in the bank (spec §4.6 rule
// 5), by folding over bank.Bank.All exactly as a size-indexed Bank is
// meant to be folded for this rule.
//
// It returns the same candidate pool no matter which boolean value the
// current goal actually is: the original's own rule 5 arm builds this set
// without filtering by the bool it matched on, so an Equal program can be
// offered as a witness for a "true" goal even though it would evaluate to
// false for this example (and vice versa). Because every bool example
// receives this same pool, intersecting the per-example VSAs keeps all of
// it, so a surviving Equal program has not been checked against any
// example's value and the driver returns the cheapest one whether or not it
// reproduces every example. When every example shares one bool value, the
// plain boolean literal rule 2 offers also survives, and PickBest prefers
// it (cost 2, against 3 or more for an Equal application) — see
// DESIGN.md's note on this rule.
func universalEqualWitness(bnk *bank.Bank) *vsa.VSA {
	var locs []dsl.AST
	bnk.All(func(ast dsl.AST) bool {
		if isLocShaped(ast) {
			locs = append(locs, ast)
		}
		return true
	})

	set := make(map[string]dsl.AST, len(locs)*len(locs))
	for _, lhs := range locs {
		for _, rhs := range locs {
			ast := dsl.NewApp(dsl.Equal, lhs, rhs)
			set[ast.Key()] = ast
		}
	}
	return &vsa.VSA{Kind: vsa.Leaf, LeafSet: set}
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

// concatAroundInput implements rule 6 (spec §4.6): the current input,
// compiled and matched as a regex pattern against the goal string s,
// decomposes s at each match into prefix + input + suffix. Using
// regexcache here — rather than a literal substring search — is
// deliberate: it mirrors the original source exactly, which compiles
// inpStr as a pattern even though the guard that gates this rule is a
// plain substring test.
func concatAroundInput(inp dsl.Lit, s, inpStr string, recurse func(dsl.Lit, dsl.Lit) *vsa.VSA) *vsa.VSA {
	re := regexcache.Compile(inpStr)
	result := vsa.Empty()
	for _, m := range re.FindAllStringIndex(s, -1) {
		start, end := m[0], m[1]
		startLit := dsl.StringConst(s[:start])
		endLit := dsl.StringConst(s[end:])

		startVSA := recurse(inp, startLit)
		endVSA := recurse(inp, endLit)
		inputVSA := recurse(inp, dsl.Input)

		inner := vsa.NewJoin(dsl.Concat, []*vsa.VSA{inputVSA, endVSA}, []dsl.Lit{dsl.Input, endLit})
		outer := vsa.NewJoin(dsl.Concat, []*vsa.VSA{startVSA, inner}, []dsl.Lit{startLit, endLit})
		result = vsa.Unify(result, outer)
	}
	return result
}

// sliceFromInput implements rule 7 (spec §4.6): the goal string s occurs
// literally inside the input; Slice(start, end) from its first occurrence
// reproduces it. Unlike rule 6, this is a plain literal substring search,
// not a regex match — the original's own asymmetry between the two rules.
func sliceFromInput(inp dsl.Lit, s, inpStr string, recurse func(dsl.Lit, dsl.Lit) *vsa.VSA) *vsa.VSA {
	start := strings.Index(inpStr, s)
	end := start + len(s)
	startLit := dsl.LocConst(start)
	endLit := dsl.LocConst(end)

	startVSA := recurse(inp, startLit)
	endVSA := recurse(inp, endLit)

	return vsa.NewJoin(dsl.Slice, []*vsa.VSA{startVSA, endVSA}, []dsl.Lit{startLit, endLit})
}

// splitConcat implements rule 8 (spec §4.6): when neither the goal string
// nor the input contains the other, every internal split point is a
// candidate Concat decomposition; all of them are offered together as a
// Union.
func splitConcat(inp dsl.Lit, s string, recurse func(dsl.Lit, dsl.Lit) *vsa.VSA) *vsa.VSA {
	var joins []*vsa.VSA
	for i := 1; i < len(s); i++ {
		leftLit := dsl.StringConst(s[:i])
		rightLit := dsl.StringConst(s[i:])
		left := recurse(inp, leftLit)
		right := recurse(inp, rightLit)
		joins = append(joins, vsa.NewJoin(dsl.Concat, []*vsa.VSA{left, right}, []dsl.Lit{leftLit, rightLit}))
	}
	if len(joins) == 0 {
		return vsa.Empty()
	}
	return &vsa.VSA{Kind: vsa.Union, Children: joins}
}
