package enumerate

import (
	"testing"

	"github.com/vsalang/pbe/dsl"
)

func TestSeedPrimitivesPopulatesBank(t *testing.T) {
	inputs := []dsl.Lit{dsl.StringConst("a.b"), dsl.StringConst("c.d")}
	outputs := []dsl.Lit{dsl.StringConst("a"), dsl.StringConst("c")}

	e := New(inputs, false)
	e.SeedPrimitives(outputs)

	size1 := e.Bank.Size(1)
	if len(size1) == 0 {
		t.Fatal("SeedPrimitives should populate Bank.Size(1)")
	}

	foundDot := false
	for _, ast := range size1 {
		if s, ok := ast.Lit.IsStringConst(); ok && s == "\\." {
			foundDot = true
		}
	}
	if !foundDot {
		t.Error("the shared '.' character should be seeded as an escaped literal")
	}

	if len(e.RegexBank.Size(1)) == 0 {
		t.Error("SeedPrimitives should also populate RegexBank.Size(1)")
	}
}

func TestPerExampleCacheAfterSeed(t *testing.T) {
	inputs := []dsl.Lit{dsl.StringConst("x"), dsl.StringConst("y")}
	outputs := []dsl.Lit{dsl.StringConst("x"), dsl.StringConst("y")}

	e := New(inputs, false)
	e.SeedPrimitives(outputs)

	cache0 := e.PerExampleCache(0)
	v, ok := cache0[dsl.StringConst("")]
	if !ok {
		t.Fatal("expected a cache entry for the seeded empty-string literal")
	}
	if v.IsEmpty() {
		t.Error("cache entry for a seeded literal should not be empty")
	}
}

func TestSeedPrimitivesCollapsesOnAnyNonStringExample(t *testing.T) {
	// A single BoolExample anywhere in the batch must zero the whole
	// char-set intersection, even though every other example is a
	// plain string pair sharing a punctuation character.
	inputs := []dsl.Lit{dsl.StringConst("a.b"), dsl.StringConst("c.d")}
	outputs := []dsl.Lit{dsl.StringConst("a"), dsl.BoolConst(true)}

	e := New(inputs, true)
	e.SeedPrimitives(outputs)

	for _, ast := range e.Bank.Size(1) {
		if s, ok := ast.Lit.IsStringConst(); ok && s == "\\." {
			t.Error("a non-string example anywhere in the batch should zero the char-set intersection")
		}
	}
}

func TestGrowToDedupesObservationallyEquivalentPrograms(t *testing.T) {
	inputs := []dsl.Lit{dsl.StringConst("ab"), dsl.StringConst("cd")}
	outputs := []dsl.Lit{dsl.StringConst("a"), dsl.StringConst("c")}

	e := New(inputs, false)
	e.SeedPrimitives(outputs)
	for size := 2; size <= 4; size++ {
		e.GrowTo(size)
	}

	total := e.Bank.TotalEntries()
	if total == 0 {
		t.Fatal("GrowTo should add candidates to the bank")
	}

	seen := make(map[string]bool)
	for _, bucket := range e.Bank.Entries {
		for _, ast := range bucket {
			key := ast.Key()
			if seen[key] {
				t.Errorf("bank contains duplicate AST %s", ast.String())
			}
			seen[key] = true
		}
	}
}
