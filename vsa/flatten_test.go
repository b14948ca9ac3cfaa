package vsa

import "testing"

func TestFlattenCollapsesSingleNonEmptyChild(t *testing.T) {
	v := &VSA{Kind: Union, Children: []*VSA{Empty(), Singleton(astLit("a"))}}
	got := Flatten(v)
	if got.Kind != Leaf {
		t.Errorf("Flatten should collapse to the single surviving Leaf child, got Kind %v", got.Kind)
	}
}

func TestFlattenMergesNestedUnions(t *testing.T) {
	inner := &VSA{Kind: Union, Children: []*VSA{Singleton(astLit("a")), Singleton(astLit("b"))}}
	outer := &VSA{Kind: Union, Children: []*VSA{inner, Singleton(astLit("c"))}}

	got := Flatten(outer)
	if got.Kind != Union {
		t.Fatalf("Flatten should stay a Union here, got Kind %v", got.Kind)
	}
	if len(got.Children) != 3 {
		t.Errorf("Flatten should merge nested Union children, got %d children", len(got.Children))
	}
}

func TestFlattenDedupsStructurallyEqualIndependentChildren(t *testing.T) {
	// a and b are independently constructed Leaf nodes with identical
	// contents — different Go allocations, same denotation. Flatten's
	// adjacent-dedup must collapse them on structural equality, not
	// merely on pointer identity.
	a := Singleton(astLit("x"))
	b := Singleton(astLit("x"))
	v := &VSA{Kind: Union, Children: []*VSA{a, b}}

	got := Flatten(v)
	if len(got.Children) != 1 {
		t.Errorf("Flatten should dedup two independently built but structurally equal Leaf children down to one, got %d children", len(got.Children))
	}
}

func TestFlattenIsIdempotent(t *testing.T) {
	v := Unify(Singleton(astLit("a")), Singleton(astLit("b")))
	once := Flatten(v)
	twice := Flatten(once)
	if len(once.Children) != len(twice.Children) {
		t.Error("Flatten should be idempotent")
	}
}
