package bank

import (
	"testing"

	"github.com/vsalang/pbe/dsl"
)

func TestGrowToIsIdempotent(t *testing.T) {
	b := New()
	b.GrowTo(3)
	n := len(b.Entries)
	b.GrowTo(2)
	if len(b.Entries) != n {
		t.Errorf("GrowTo with a smaller size should be a no-op, got len %d want %d", len(b.Entries), n)
	}
}

func TestPushAndSize(t *testing.T) {
	b := New()
	lit := dsl.NewLit(dsl.StringConst("x"))
	b.Push(lit)

	if got := b.Size(1); len(got) != 1 || !got[0].Equal(lit) {
		t.Errorf("Size(1) = %v, want [%v]", got, lit)
	}
	if got := b.Size(2); got != nil {
		t.Errorf("Size(2) = %v, want nil", got)
	}
}

func TestPushSizeExplicit(t *testing.T) {
	b := New()
	lit := dsl.NewLit(dsl.StringConst("x"))
	b.PushSize(5, lit)
	if got := b.Size(5); len(got) != 1 {
		t.Errorf("Size(5) has %d entries, want 1", len(got))
	}
}

func TestExtendAndTotalEntries(t *testing.T) {
	b := New()
	asts := []dsl.AST{
		dsl.NewLit(dsl.StringConst("a")),
		dsl.NewLit(dsl.StringConst("b")),
	}
	b.Extend(2, asts)
	if b.TotalEntries() != 2 {
		t.Errorf("TotalEntries() = %d, want 2", b.TotalEntries())
	}
	if len(b.Size(2)) != 2 {
		t.Errorf("Size(2) has %d entries, want 2", len(b.Size(2)))
	}
}

func TestAllIteratesBySizeThenInsertionOrder(t *testing.T) {
	b := New()
	b.PushSize(1, dsl.NewLit(dsl.StringConst("a")))
	b.PushSize(2, dsl.NewLit(dsl.StringConst("b")))
	b.PushSize(1, dsl.NewLit(dsl.StringConst("c")))

	var seen []string
	b.All(func(ast dsl.AST) bool {
		seen = append(seen, ast.String())
		return true
	})
	want := []string{"'a'", "'c'", "'b'"}
	if len(seen) != len(want) {
		t.Fatalf("All() yielded %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("All()[%d] = %q, want %q", i, seen[i], want[i])
		}
	}
}

func TestAllStopsOnFalse(t *testing.T) {
	b := New()
	b.PushSize(1, dsl.NewLit(dsl.StringConst("a")))
	b.PushSize(1, dsl.NewLit(dsl.StringConst("b")))

	count := 0
	b.All(func(ast dsl.AST) bool {
		count++
		return false
	})
	if count != 1 {
		t.Errorf("All() should stop after the first false return, called %d times", count)
	}
}
