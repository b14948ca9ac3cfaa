package vsa

import "github.com/vsalang/pbe/dsl"

// PickBest returns the minimum-rank consistent AST (spec §4.4): for a Leaf,
// the argmin of the set; for a Union, the argmin across children; for a
// Join, the combination of every child's best if all children have one,
// else false; Unlearned never has a best.
func (v *VSA) PickBest(rank func(dsl.AST) int) (dsl.AST, bool) {
	switch v.Kind {
	case Leaf:
		var (
			best  dsl.AST
			bestR int
			found bool
		)
		for _, ast := range v.LeafSet {
			r := rank(ast)
			if !found || r < bestR {
				best, bestR, found = ast, r, true
			}
		}
		return best, found

	case Union:
		var (
			best  dsl.AST
			bestR int
			found bool
		)
		for _, c := range v.Children {
			ast, ok := c.PickBest(rank)
			if !ok {
				continue
			}
			r := rank(ast)
			if !found || r < bestR {
				best, bestR, found = ast, r, true
			}
		}
		return best, found

	case Join:
		args := make([]dsl.AST, len(v.Children))
		for i, c := range v.Children {
			ast, ok := c.PickBest(rank)
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
