// Package bank implements the size-indexed store of ASTs discovered during
// bottom-up enumeration (spec §3, §4.3). A Bank is append-only within a
// run: entries are inserted as enumeration grows the bank one size at a
// time, and never removed.
package bank

import "github.com/vsalang/pbe/dsl"

// Bank is a size-indexed store of ASTs: Entries[k] holds the ASTs filed under
// size k. Push files an AST under its own Size; PushSize and Extend file it
// under the size the caller passes, which need not equal its Size (the
// enumerator files each round's candidates under the round number, and a
// candidate's Size can differ from it). Enumeration order within a bucket is stable,
// which the learner's universal-witness fold (spec §4.6 rule 5) relies on.
type Bank struct {
	// Entries holds ASTs by size; Entries[0] is unused (sizes start at 1)
	// so that Entries[k] directly indexes size k.
	Entries [][]dsl.AST
}

// New creates an empty Bank.
func New() *Bank {
	return &Bank{Entries: make([][]dsl.AST, 1)}
}

// GrowTo ensures buckets 1..=n exist. Idempotent: calling it with a smaller
// or equal n than already grown is a no-op.
func (b *Bank) GrowTo(n int) {
	for len(b.Entries) <= n {
		b.Entries = append(b.Entries, nil)
	}
}

// Size returns the bucket of ASTs of exactly size n, or nil if the bank
// hasn't grown that far yet.
func (b *Bank) Size(n int) []dsl.AST {
	if n < 0 || n >= len(b.Entries) {
		return nil
	}
	return b.Entries[n]
}

// Push appends ast to the bucket for its own size.
func (b *Bank) Push(ast dsl.AST) {
	b.appendTo(ast.Size(), ast)
}

// PushSize appends ast to the bucket for size n explicitly — used by the
// enumerator when seeding size-1 primitives, where the caller already knows
// the size and we want to avoid recomputing it per primitive.
func (b *Bank) PushSize(n int, ast dsl.AST) {
	b.appendTo(n, ast)
}

func (b *Bank) appendTo(n int, ast dsl.AST) {
	b.GrowTo(n)
	b.Entries[n] = append(b.Entries[n], ast)
}

// Extend appends every element of asts to the bucket for size n.
func (b *Bank) Extend(n int, asts []dsl.AST) {
	if len(asts) == 0 {
		return
	}
	b.GrowTo(n)
	b.Entries[n] = append(b.Entries[n], asts...)
}

// TotalEntries returns the total number of ASTs stored across all buckets.
func (b *Bank) TotalEntries() int {
	n := 0
	for _, bucket := range b.Entries {
		n += len(bucket)
	}
	return n
}

// All iterates every AST in the bank bucket by bucket in ascending size,
// and in insertion order within each bucket — the "universal witness" fold
// from spec §4.6 rule 5
// folds over exactly this sequence.
func (b *Bank) All(yield func(dsl.AST) bool) {
	for _, bucket := range b.Entries {
		for _, ast := range bucket {
			if !yield(ast) {
				return
			}
		}
	}
}
