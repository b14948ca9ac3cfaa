package vsa

import "github.com/vsalang/pbe/dsl"

// Intersect computes the VSA denoting the intersection of the programs
// denoted by v and other, following the Mitchell/Polozov-style VSA
// intersection algorithm (spec §4.4):
//
//   - Union(u) ∩ X (or symmetric) distributes: Union({ui ∩ X}).
//   - Join{f,...} ∩ Join{g,...} with f ≠ g is empty.
//   - Join{f,a} ∩ Join{f,b} is Join{f, [ai ∩ bi]} elementwise.
//   - Join{f,c} ∩ Leaf(s) (or symmetric) filters s to programs matching f
//     whose arguments are each contained in the corresponding child.
//   - Leaf(a) ∩ Leaf(b) is Leaf(a ∩ b).
//   - Any intersection involving Unlearned is empty — a conservative
//     policy; see spec §9 for the richer alternative left as an extension
//     point.
func (v *VSA) Intersect(other *VSA) *VSA {
	switch {
	case v.Kind == Union:
		children := make([]*VSA, len(v.Children))
		for i, c := range v.Children {
			children[i] = c.Intersect(other)
		}
		return &VSA{Kind: Union, Children: children}

	case other.Kind == Union:
		children := make([]*VSA, len(other.Children))
		for i, c := range other.Children {
			children[i] = v.Intersect(c)
		}
		return &VSA{Kind: Union, Children: children}

	case v.Kind == Join && other.Kind == Join:
		if v.Op != other.Op || len(v.Children) != len(other.Children) {
			return Empty()
		}
		children := make([]*VSA, len(v.Children))
		for i := range v.Children {
			children[i] = v.Children[i].Intersect(other.Children[i])
		}
		return &VSA{Kind: Join, Op: v.Op, Children: children, ChildrenGoals: v.ChildrenGoals}

	case v.Kind == Join && other.Kind == Leaf:
		return intersectJoinLeaf(v, other)

	case v.Kind == Leaf && other.Kind == Join:
		return intersectJoinLeaf(other, v)

	case v.Kind == Leaf && other.Kind == Leaf:
		result := make(map[string]dsl.AST)
		small, big := v.LeafSet, other.LeafSet
		if len(big) < len(small) {
			small, big = big, small
		}
		for k, ast := range small {
			if _, ok := big[k]; ok {
				result[k] = ast
			}
		}
		return &VSA{Kind: Leaf, LeafSet: result}

	default:
		// Unlearned on either side.
		return Empty()
	}
}

func intersectJoinLeaf(join, leaf *VSA) *VSA {
	result := make(map[string]dsl.AST)
	for k, ast := range leaf.LeafSet {
		if ast.Kind != dsl.KindApp || ast.Fun != join.Op || len(ast.Args) != len(join.Children) {
			continue
		}
		matches := true
		for i, child := range join.Children {
			if !child.Contains(ast.Args[i]) {
				matches = false
				break
			}
		}
		if matches {
			result[k] = ast
		}
	}
	return &VSA{Kind: Leaf, LeafSet: result}
}
