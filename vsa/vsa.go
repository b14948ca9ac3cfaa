// Package vsa implements the version-space algebra: a compact, recursive,
// tagged structure representing a (possibly exponentially large) set of
// DSL programs, and its algebraic operations — union, intersection,
// clustering, best-program extraction (spec §3, §4.4).
//
// A VSA is a DAG: sub-VSAs are shared by pointer, and the DAG is acyclic by
// construction because every sub-VSA is built before the parent that
// references it. Go's garbage collector plays the role the source's
// reference-counted Rc<VSA> handles play in Rust — there is no manual
// refcounting or cycle collection to implement (spec §5, §9).
package vsa

import "github.com/vsalang/pbe/dsl"

// Kind discriminates the four VSA node variants.
type Kind uint8

const (
	// Leaf holds a set of ASTs — the programs it directly contains.
	Leaf Kind = iota
	// Union denotes the set-union of its children.
	Union
	// Join denotes { App(op, [p1...pn]) : pi ∈ children[i] }.
	Join
	// Unlearned is a placeholder for "all programs mapping Start to Goal",
	// used by the depth-bounded learner.
	Unlearned
)

// VSA is the recursive tagged VSA node. Which fields are meaningful
// depends on Kind:
//
//   - Leaf:      LeafSet
//   - Union:     Children
//   - Join:      Op, Children, ChildrenGoals
//   - Unlearned: Start, Goal
type VSA struct {
	Kind Kind

	LeafSet map[string]dsl.AST

	Children      []*VSA
	Op            dsl.Fun
	ChildrenGoals []dsl.Lit

	Start dsl.Lit
	Goal  dsl.Lit
}

// Empty returns the canonical empty Leaf — "no program" (spec §3).
func Empty() *VSA {
	return &VSA{Kind: Leaf, LeafSet: map[string]dsl.AST{}}
}

// Singleton returns a Leaf containing exactly ast.
func Singleton(ast dsl.AST) *VSA {
	return &VSA{Kind: Leaf, LeafSet: map[string]dsl.AST{ast.Key(): ast}}
}

// NewJoin builds a Join node. len(children) must equal len(childrenGoals)
// and the arity of op (spec §3 VSA invariants); this is enforced by the
// enumerator/learner, not re-validated here.
func NewJoin(op dsl.Fun, children []*VSA, childrenGoals []dsl.Lit) *VSA {
	return &VSA{Kind: Join, Op: op, Children: children, ChildrenGoals: childrenGoals}
}

// NewUnlearned builds an Unlearned placeholder recording an unsolved
// (start, goal) subgoal.
func NewUnlearned(start, goal dsl.Lit) *VSA {
	return &VSA{Kind: Unlearned, Start: start, Goal: goal}
}

// Unify returns the VSA denoting the union of the programs denoted by l
// and r (spec §4.4). If both are Leaf, the result is a single Leaf holding
// the union of their sets; if either is already a Union, the other is
// flattened into its list; otherwise the result is a fresh two-element
// Union. Unifying with an Unlearned node is allowed and yields a Union.
func Unify(l, r *VSA) *VSA {
	if l.Kind == Leaf && r.Kind == Leaf {
		merged := make(map[string]dsl.AST, len(l.LeafSet)+len(r.LeafSet))
		for k, v := range l.LeafSet {
			merged[k] = v
		}
		for k, v := range r.LeafSet {
			merged[k] = v
		}
		return &VSA{Kind: Leaf, LeafSet: merged}
	}
	if l.Kind == Union {
		children := make([]*VSA, 0, len(l.Children)+1)
		children = append(children, l.Children...)
		children = append(children, r)
		return &VSA{Kind: Union, Children: children}
	}
	if r.Kind == Union {
		children := make([]*VSA, 0, len(r.Children)+1)
		children = append(children, r.Children...)
		children = append(children, l)
		return &VSA{Kind: Union, Children: children}
	}
	return &VSA{Kind: Union, Children: []*VSA{l, r}}
}

// Contains reports structural membership of ast in v (spec §4.4).
func (v *VSA) Contains(ast dsl.AST) bool {
	switch v.Kind {
	case Leaf:
		_, ok := v.LeafSet[ast.Key()]
		return ok
	case Union:
		for _, c := range v.Children {
			if c.Contains(ast) {
				return true
			}
		}
		return false
	case Join:
		if ast.Kind != dsl.KindApp || ast.Fun != v.Op || len(ast.Args) != len(v.Children) {
			return false
		}
		for i, child := range v.Children {
			if !child.Contains(ast.Args[i]) {
				return false
			}
		}
		return true
	case Unlearned:
		return false
	default:
		return false
	}
}

// Eval picks an arbitrary consistent program and evaluates it against
// input. It panics if v is empty (spec §4.4, §7 LookupError).
func (v *VSA) Eval(input dsl.Lit) dsl.Lit {
	ast, ok := v.PickOne()
	if !ok {
		panic("vsa: Eval on empty VSA")
	}
	return dsl.Eval(ast, input)
}

// PickOne returns an arbitrary consistent AST, or false for Unlearned or an
// empty VSA (spec §4.4).
func (v *VSA) PickOne() (dsl.AST, bool) {
	switch v.Kind {
	case Leaf:
		for _, ast := range v.LeafSet {
			return ast, true
		}
		return dsl.AST{}, false
	case Union:
		for _, c := range v.Children {
			if ast, ok := c.PickOne(); ok {
				return ast, true
			}
		}
		return dsl.AST{}, false
	case Join:
		args := make([]dsl.AST, len(v.Children))
		for i, c := range v.Children {
			ast, ok := c.PickOne()
			if !ok {
				return dsl.AST{}, false
			}
			args[i] = ast
		}
		return dsl.NewApp(v.Op, args...), true
	case Unlearned:
		return dsl.AST{}, false
	default:
		return dsl.AST{}, false
	}
}

// IsEmpty reports whether v denotes no programs. Unlearned is never
// considered empty (spec §4.4).
func (v *VSA) IsEmpty() bool {
	if v.Kind == Unlearned {
		return false
	}
	_, ok := v.PickOne()
	return !ok
}
