package learn

import (
	"testing"

	"github.com/vsalang/pbe/bank"
	"github.com/vsalang/pbe/dsl"
	"github.com/vsalang/pbe/vsa"
)

func TestLearnRule1StringLiteral(t *testing.T) {
	v := Learn(dsl.StringConst("hello"), dsl.StringConst("hi"), nil, bank.New())
	want := dsl.NewLit(dsl.StringConst("hi"))
	if !v.Contains(want) {
		t.Errorf("Learn should witness a string goal with its own literal")
	}
}

func TestLearnRule2BoolLiteral(t *testing.T) {
	v := Learn(dsl.StringConst("x"), dsl.BoolConst(true), nil, bank.New())
	want := dsl.NewLit(dsl.BoolConst(true))
	if !v.Contains(want) {
		t.Error("Learn should witness a bool goal with its own literal")
	}
}

func TestLearnRule3And4LocConstAndLocEnd(t *testing.T) {
	v := Learn(dsl.StringConst("abc"), dsl.LocConst(3), nil, bank.New())
	wantConst := dsl.NewLit(dsl.LocConst(3))
	wantEnd := dsl.NewLit(dsl.LocEnd)
	if !v.Contains(wantConst) {
		t.Error("Learn should witness a loc goal with its own literal (rule 3)")
	}
	if !v.Contains(wantEnd) {
		t.Error("Learn should also witness LocEnd when the goal equals the input's length (rule 4)")
	}
}

func TestLearnRule4OnlyFiresWhenLocMatchesInputLength(t *testing.T) {
	v := Learn(dsl.StringConst("abc"), dsl.LocConst(1), nil, bank.New())
	wantEnd := dsl.NewLit(dsl.LocEnd)
	if v.Contains(wantEnd) {
		t.Error("LocEnd should not be offered when the goal loc doesn't match the input length")
	}
}

func TestLearnRule0ReadsCacheButNeverWrites(t *testing.T) {
	cached := vsa.Singleton(dsl.NewLit(dsl.Input))
	cache := map[dsl.Lit]*vsa.VSA{dsl.StringConst("seeded"): cached}

	v := Learn(dsl.StringConst("in"), dsl.StringConst("seeded"), cache, bank.New())
	if !v.Contains(dsl.NewLit(dsl.Input)) {
		t.Error("Learn should unify in whatever rule 0 finds in the cache")
	}
	if len(cache) != 1 {
		t.Error("Learn must never write back into the cache (matches original non-memoization)")
	}
}

func TestLearnRule6And7BothFireWhenEqual(t *testing.T) {
	// s == inpStr: the input occurs inside the goal (rule 6, via regex) AND
	// the goal occurs inside the input (rule 7, via literal slice) — both
	// guards hold simultaneously, so both must contribute candidates.
	v := Learn(dsl.StringConst("ab"), dsl.StringConst("ab"), nil, bank.New())

	wantSlice := dsl.NewApp(dsl.Slice, dsl.NewLit(dsl.LocConst(0)), dsl.NewLit(dsl.LocConst(2)))
	if !v.Contains(wantSlice) {
		t.Error("rule 7 should offer Slice(0, len) when the goal equals the whole input")
	}

	if !hasConcat(v) {
		t.Error("rule 6 should also contribute a Concat-shaped candidate when s == inpStr")
	}
}

func TestLearnRule8SplitsWhenNeitherContains(t *testing.T) {
	v := Learn(dsl.StringConst("xyz"), dsl.StringConst("ab"), nil, bank.New())
	if v.IsEmpty() {
		t.Fatal("rule 8 should produce at least one Concat decomposition")
	}
	if !hasConcat(v) {
		t.Error("rule 8 should decompose the goal into a Union of Concat candidates")
	}
}

// hasConcat reports whether v contains any Join/Union node built around a
// Concat application, by probing with PickBest after intersecting away
// every other shape is impractical — instead walk the VSA's own public
// structure directly via Children/LeafSet.
func hasConcat(v *vsa.VSA) bool {
	switch v.Kind {
	case vsa.Leaf:
		for _, ast := range v.LeafSet {
			if ast.Kind == dsl.KindApp && ast.Fun == dsl.Concat {
				return true
			}
		}
		return false
	case vsa.Union:
		for _, c := range v.Children {
			if hasConcat(c) {
				return true
			}
		}
		return false
	case vsa.Join:
		return v.Op == dsl.Concat
	default:
		return false
	}
}

func TestLearnToDepthZeroReturnsUnlearned(t *testing.T) {
	v := LearnToDepth(dsl.StringConst("xyz"), dsl.StringConst("ab"), nil, bank.New(), 0)
	if v.Kind != vsa.Unlearned {
		t.Errorf("LearnToDepth with depth 0 should return an Unlearned placeholder, got Kind %v", v.Kind)
	}
}
