package vsa

import (
	"testing"

	"github.com/vsalang/pbe/dsl"
)

func TestClusterLeafGroupsByOutput(t *testing.T) {
	v := Unify(Singleton(dsl.NewLit(dsl.Input)), Singleton(dsl.NewLit(dsl.StringConst("x"))))

	groups := Cluster(v, dsl.StringConst("y"))
	if len(groups) != 2 {
		t.Fatalf("Cluster() produced %d groups, want 2 (for outputs 'y' and 'x')", len(groups))
	}
	if _, ok := groups[dsl.StringConst("y")]; !ok {
		t.Error("expected a group for output 'y' (from the Input literal)")
	}
	if _, ok := groups[dsl.StringConst("x")]; !ok {
		t.Error("expected a group for output 'x' (from the StringConst literal)")
	}
}

func TestClusterJoinUsesActualInput(t *testing.T) {
	start := Singleton(dsl.NewLit(dsl.LocConst(0)))
	end := Singleton(dsl.NewLit(dsl.LocConst(1)))
	join := NewJoin(dsl.Slice, []*VSA{start, end}, []dsl.Lit{dsl.LocConst(0), dsl.LocConst(1)})

	groups := Cluster(join, dsl.StringConst("ab"))
	if len(groups) != 1 {
		t.Fatalf("Cluster(Join) produced %d groups, want 1", len(groups))
	}
	sub, ok := groups[dsl.StringConst("a")]
	if !ok {
		t.Fatalf("expected Slice(0,1) over input 'ab' to cluster under output 'a', got groups %v", groups)
	}
	want := dsl.NewApp(dsl.Slice, dsl.NewLit(dsl.LocConst(0)), dsl.NewLit(dsl.LocConst(1)))
	if !sub.Contains(want) {
		t.Error("the clustered sub-VSA should contain the Slice application")
	}
}

func TestClusterUnionMergesByOutput(t *testing.T) {
	a := Singleton(dsl.NewLit(dsl.StringConst("same")))
	b := Singleton(dsl.NewLit(dsl.Input))
	union := &VSA{Kind: Union, Children: []*VSA{a, b}}

	groups := Cluster(union, dsl.StringConst("same"))
	if len(groups) != 1 {
		t.Fatalf("Cluster(Union) with both branches producing the same output should yield 1 group, got %d", len(groups))
	}
}
