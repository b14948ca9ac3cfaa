package vsa

import (
	"testing"

	"github.com/vsalang/pbe/dsl"
)

func TestPickBestLeafPicksMinRank(t *testing.T) {
	short := astLit("a")
	long := astLit("aaa")
	v := Unify(Singleton(short), Singleton(long))

	rank := func(a dsl.AST) int { return len(a.Lit.String()) }
	got, ok := v.PickBest(rank)
	if !ok {
		t.Fatal("PickBest should find a result")
	}
	if !got.Equal(short) {
		t.Errorf("PickBest() = %v, want the shorter literal %v", got, short)
	}
}

func TestPickBestJoinRequiresAllChildren(t *testing.T) {
	join := NewJoin(dsl.Concat, []*VSA{Singleton(astLit("a")), Empty()}, nil)
	if _, ok := join.PickBest(dsl.AST.Cost); ok {
		t.Error("PickBest on a Join with an empty child should fail")
	}
}

func TestPickBestJoinComposesChildren(t *testing.T) {
	join := NewJoin(dsl.Concat, []*VSA{Singleton(astLit("a")), Singleton(astLit("b"))}, nil)
	got, ok := join.PickBest(dsl.AST.Cost)
	if !ok {
		t.Fatal("PickBest should succeed when every child has a best")
	}
	want := dsl.NewApp(dsl.Concat, astLit("a"), astLit("b"))
	if !got.Equal(want) {
		t.Errorf("PickBest() = %v, want %v", got, want)
	}
}

func TestPickBestUnlearnedNeverFinds(t *testing.T) {
	u := NewUnlearned(dsl.StringConst("in"), dsl.StringConst("out"))
	if _, ok := u.PickBest(dsl.AST.Cost); ok {
		t.Error("PickBest on Unlearned should never succeed")
	}
}
