package dsl

import (
	"strconv"
	"strings"
)

// Typ tags the result type of a ForeignCall for coercion purposes only; the
// core never inspects it beyond passing it to the ForeignEvaluator.
type Typ uint8

const (
	// Str marks a ForeignCall that produces a string.
	Str Typ = iota
	// Int marks a ForeignCall that produces a location.
	Int
	// Bool marks a ForeignCall that produces a boolean.
	Bool
)

// AST is a finite tree in the DSL: a literal, an operator application, or an
// opaque foreign call delegated to a ForeignEvaluator. The zero AST has Kind
// KindLit with the zero Lit (Input is not the zero value, so construct ASTs
// through the constructors below rather than literal structs).
type AST struct {
	Kind Kind
	Lit  Lit
	Fun  Fun
	Args []AST

	Foreign ForeignCall
}

// Kind discriminates the AST node variants.
type Kind uint8

const (
	// KindLit is a literal leaf.
	KindLit Kind = iota
	// KindApp is an operator application.
	KindApp
	// KindForeignCall is an opaque, pluggable-evaluator node.
	KindForeignCall
)

// ForeignCall is an opaque AST node whose evaluation is delegated to a
// ForeignEvaluator. It exists so the core can represent (but never itself
// interpret) a literal user-supplied code fragment — see
// ForeignEvaluator in foreign.go.
type ForeignCall struct {
	Code  string
	Input *AST
	Typ   Typ
}

// NewLit builds a literal AST node.
func NewLit(l Lit) AST { return AST{Kind: KindLit, Lit: l} }

// NewApp builds an operator-application AST node. It panics if len(args)
// does not match fun's arity — an arity mismatch is a programming bug
// (spec §3 AST invariants), never constructed by the enumerator or learner.
func NewApp(fun Fun, args ...AST) AST {
	if len(args) != fun.Arity() {
		panic("dsl: NewApp: arity mismatch for " + fun.String())
	}
	return AST{Kind: KindApp, Fun: fun, Args: args}
}

// NewForeignCall builds an opaque ForeignCall AST node.
func NewForeignCall(code string, input AST, typ Typ) AST {
	return AST{Kind: KindForeignCall, Foreign: ForeignCall{Code: code, Input: &input, Typ: typ}}
}

// Size is the recursive AST size from spec §3: a literal is size 1, an
// application is 1 plus the sum of its arguments' sizes, and a ForeignCall
// is 1 plus its input's size.
func (a AST) Size() int {
	switch a.Kind {
	case KindLit:
		return 1
	case KindApp:
		n := 1
		for _, arg := range a.Args {
			n += arg.Size()
		}
		return n
	case KindForeignCall:
		return 1 + a.Foreign.Input.Size()
	default:
		panic("dsl: Size: unknown AST kind")
	}
}

// Cost is the minimum-cost ranking function the driver uses to pick the
// best consistent program (spec §3 Cost, §4.7). Note it sums argument
// *sizes*, not argument costs, mirroring the source's cost formula exactly:
// cost(App) = op.cost + Σ child.size.
func (a AST) Cost() int {
	switch a.Kind {
	case KindLit:
		return a.Lit.Cost()
	case KindApp:
		n := a.Fun.Cost()
		for _, arg := range a.Args {
			n += arg.Size()
		}
		return n
	case KindForeignCall:
		return 1 + a.Foreign.Input.Cost()
	default:
		panic("dsl: Cost: unknown AST kind")
	}
}

// Equal reports structural equality, used by the bank and VSA sets (Go
// doesn't let us put a slice-bearing struct directly in a map key, so
// higher layers key by a canonical string form — see Key below).
func (a AST) Equal(b AST) bool {
	return a.Key() == b.Key()
}

// Key returns a canonical string encoding of a, suitable as a map/set key
// for bank dedup and VSA Leaf sets.
func (a AST) Key() string {
	var sb strings.Builder
	a.writeKey(&sb)
	return sb.String()
}

func (a AST) writeKey(sb *strings.Builder) {
	switch a.Kind {
	case KindLit:
		sb.WriteByte('L')
		sb.WriteString(litKey(a.Lit))
	case KindApp:
		sb.WriteByte('A')
		sb.WriteString(a.Fun.String())
		sb.WriteByte('(')
		for i, arg := range a.Args {
			if i > 0 {
				sb.WriteByte(',')
			}
			arg.writeKey(sb)
		}
		sb.WriteByte(')')
	case KindForeignCall:
		sb.WriteByte('F')
		sb.WriteString(a.Foreign.Code)
		sb.WriteByte('<')
		a.Foreign.Input.writeKey(sb)
		sb.WriteByte('>')
	}
}

func litKey(l Lit) string {
	switch {
	case l.IsInput():
		return "I"
	case l.IsLocEnd():
		return "$"
	default:
		if s, ok := l.IsStringConst(); ok {
			return "s:" + s
		}
		if n, ok := l.IsLocConst(); ok {
			return "n:" + strconv.Itoa(n)
		}
		if b, ok := l.IsBoolConst(); ok {
			if b {
				return "b:1"
			}
			return "b:0"
		}
		return "?"
	}
}
