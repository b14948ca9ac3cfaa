package dsl

import (
	"strings"

	"github.com/vsalang/pbe/regexcache"
)

// Eval evaluates a against input, substituting Input leaves with input
// (spec §4.1). Eval is deterministic and total except on type-mismatched
// argument tuples, where it panics — eval should only ever be called on
// ASTs produced by this package's own enumerator/learner, so a panic here
// is a programming bug, not a user-facing outcome (spec §3, §7).
//
// Eval never needs a ForeignEvaluator unless a ends up containing a
// ForeignCall node; use EvalWith to supply one.
func Eval(a AST, input Lit) Lit {
	return EvalWith(a, input, noForeignEvaluator{})
}

// EvalWith evaluates a against input, delegating any ForeignCall nodes to
// fe.
func EvalWith(a AST, input Lit, fe ForeignEvaluator) Lit {
	switch a.Kind {
	case KindLit:
		if a.Lit.IsInput() {
			return input
		}
		return a.Lit
	case KindApp:
		args := make([]Lit, len(a.Args))
		for i, arg := range a.Args {
			args[i] = EvalWith(arg, input, fe)
		}
		return evalFun(a.Fun, args, input)
	case KindForeignCall:
		in := EvalWith(*a.Foreign.Input, input, fe)
		out, err := fe.Invoke(a.Foreign.Code, in)
		if err != nil {
			panic("dsl: ForeignCall evaluation failed: " + err.Error())
		}
		return out
	default:
		panic("dsl: Eval: unknown AST kind")
	}
}

func evalFun(f Fun, args []Lit, input Lit) Lit {
	switch f {
	case Concat:
		a, aok := args[0].IsStringConst()
		b, bok := args[1].IsStringConst()
		if !aok || !bok {
			panic("dsl: Concat: argument type mismatch")
		}
		return StringConst(a + b)

	case Find, FindEnd:
		return evalFind(f, args, input)

	case Slice:
		return evalSlice(args, input)

	case LocAdd:
		return evalLocArith(args, true)

	case LocSub:
		return evalLocArith(args, false)

	case Lowercase:
		s, ok := args[0].IsStringConst()
		if !ok {
			panic("dsl: Lowercase: argument type mismatch")
		}
		return StringConst(strings.ToLower(s))

	case Uppercase:
		s, ok := args[0].IsStringConst()
		if !ok {
			panic("dsl: Uppercase: argument type mismatch")
		}
		return StringConst(strings.ToUpper(s))

	case Equal:
		return evalEqual(args, input)

	case ConcatMap:
		panic("dsl: ConcatMap is reserved and unimplemented")

	default:
		panic("dsl: evalFun: unknown Fun")
	}
}

// evalFind implements both Find and FindEnd (spec §4.1): compile the
// pattern, locate the i-th match of pattern in outer, and return its start
// (Find) or end (FindEnd); LocEnd if fewer than i+1 matches exist. When the
// index is LocEnd itself, the result is LocEnd, including for a pattern that
// matches the empty string (which has |outer|+1 matches).
func evalFind(f Fun, args []Lit, _ Lit) Lit {
	outer, ok := args[0].IsStringConst()
	if !ok {
		panic("dsl: Find/FindEnd: outer argument type mismatch")
	}
	pattern, ok := args[1].IsStringConst()
	if !ok {
		panic("dsl: Find/FindEnd: pattern argument type mismatch")
	}

	i, isConst := args[2].IsLocConst()
	if !isConst {
		if args[2].IsLocEnd() {
			return LocEnd
		}
		panic("dsl: Find/FindEnd: index argument type mismatch")
	}

	re := regexcache.Compile(pattern)
	matches := re.FindAllStringIndex(outer, -1)
	if i < 0 || i >= len(matches) {
		return LocEnd
	}
	if f == Find {
		return LocConst(matches[i][0])
	}
	return LocConst(matches[i][1])
}

// evalSlice implements Slice (spec §4.1): extracts input[s:e]. Never
// panics on bounds — out-of-range bounds, including a LocEnd start, return
// the empty string; only a non-location argument or a non-string input
// panics.
func evalSlice(args []Lit, input Lit) Lit {
	if args[0].IsLocEnd() {
		return StringConst("")
	}
	s, sok := args[0].IsLocConst()
	if !sok {
		panic("dsl: Slice: start argument type mismatch")
	}
	str, ok := input.IsStringConst()
	if !ok {
		panic("dsl: Slice: input is not a string")
	}

	if args[1].IsLocEnd() {
		if s <= len(str) {
			return StringConst(str[s:])
		}
		return StringConst("")
	}
	e, eok := args[1].IsLocConst()
	if !eok {
		panic("dsl: Slice: end argument type mismatch")
	}
	if s <= e && e <= len(str) {
		return StringConst(str[s:e])
	}
	return StringConst("")
}

// evalLocArith implements LocAdd/LocSub (spec §4.1): LocEnd is absorbing in
// either operand; subtraction saturates at zero.
func evalLocArith(args []Lit, add bool) Lit {
	if args[0].IsLocEnd() || args[1].IsLocEnd() {
		return LocEnd
	}
	a, aok := args[0].IsLocConst()
	b, bok := args[1].IsLocConst()
	if !aok || !bok {
		panic("dsl: LocAdd/LocSub: argument type mismatch")
	}
	if add {
		return LocConst(a + b)
	}
	if a < b {
		return LocConst(0)
	}
	return LocConst(a - b)
}

// evalEqual implements Equal (spec §4.1): polymorphic over comparable
// pairs, with two input-sensitive special cases — (LocConst, LocEnd)
// compares against the input string's length, and (Input, StringConst)
// compares against the current input string.
func evalEqual(args []Lit, input Lit) Lit {
	a, b := args[0], args[1]

	if an, aok := a.IsLocConst(); aok && b.IsLocEnd() {
		return BoolConst(an == inputLen(input))
	}
	if bn, bok := b.IsLocConst(); bok && a.IsLocEnd() {
		return BoolConst(bn == inputLen(input))
	}

	if as, aok := a.IsStringConst(); aok {
		if bs, bok := b.IsStringConst(); bok {
			return BoolConst(as == bs)
		}
	}
	if a.IsInput() {
		if bs, bok := b.IsStringConst(); bok {
			s, _ := input.IsStringConst()
			return BoolConst(bs == s)
		}
	}
	if b.IsInput() {
		if as, aok := a.IsStringConst(); aok {
			s, _ := input.IsStringConst()
			return BoolConst(as == s)
		}
	}

	if an, aok := a.IsLocConst(); aok {
		if bn, bok := b.IsLocConst(); bok {
			return BoolConst(an == bn)
		}
	}

	return BoolConst(false)
}

func inputLen(input Lit) int {
	s, ok := input.IsStringConst()
	if !ok {
		panic("dsl: Equal: LocEnd comparison against non-string input")
	}
	return len(s)
}
