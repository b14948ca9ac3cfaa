package vsa

import "github.com/vsalang/pbe/dsl"

// Cluster partitions v into a mapping from output value (under input) to
// the sub-VSA whose programs all produce that value (spec §4.4), by
// pushing the partition through Union/Join/Leaf and grouping by key.
func Cluster(v *VSA, input dsl.Lit) map[dsl.Lit]*VSA {
	switch v.Kind {
	case Leaf:
		groups := make(map[dsl.Lit][]dsl.AST)
		for _, ast := range v.LeafSet {
			out := dsl.Eval(ast, input)
			groups[out] = append(groups[out], ast)
		}
		return leafGroupsToVSAs(groups)

	case Union:
		merged := make(map[dsl.Lit][]*VSA)
		for _, c := range v.Children {
			for out, sub := range Cluster(c, input) {
				merged[out] = append(merged[out], sub)
			}
		}
		return unionGroupsToVSAs(merged)

	case Join:
		childClusters := make([]map[dsl.Lit]*VSA, len(v.Children))
		for i, c := range v.Children {
			childClusters[i] = Cluster(c, input)
		}
		return joinClusters(v.Op, childClusters, input)

	case Unlearned:
		panic("vsa: Cluster: unsupported on Unlearned (goal " + v.Goal.String() + ")")

	default:
		panic("vsa: Cluster: unknown VSA kind")
	}
}

func leafGroupsToVSAs(groups map[dsl.Lit][]dsl.AST) map[dsl.Lit]*VSA {
	out := make(map[dsl.Lit]*VSA, len(groups))
	for k, asts := range groups {
		set := make(map[string]dsl.AST, len(asts))
		for _, ast := range asts {
			set[ast.Key()] = ast
		}
		out[k] = &VSA{Kind: Leaf, LeafSet: set}
	}
	return out
}

func unionGroupsToVSAs(groups map[dsl.Lit][]*VSA) map[dsl.Lit]*VSA {
	out := make(map[dsl.Lit]*VSA, len(groups))
	for k, subs := range groups {
		if len(subs) == 1 {
			out[k] = subs[0]
			continue
		}
		out[k] = &VSA{Kind: Union, Children: subs}
	}
	return out
}

// joinClusters builds the product of per-argument-position clusters under
// op: every combination of one representative value per child position
// evaluates App(op, reps) to an output value, and the corresponding
// sub-VSAs are grouped by that output.
func joinClusters(op dsl.Fun, childClusters []map[dsl.Lit]*VSA, input dsl.Lit) map[dsl.Lit]*VSA {
	type combo struct {
		reps []dsl.Lit
		subs []*VSA
	}
	combos := []combo{{}}
	for _, cluster := range childClusters {
		next := make([]combo, 0, len(combos)*len(cluster))
		for _, c := range combos {
			for rep, sub := range cluster {
				reps := append(append([]dsl.Lit{}, c.reps...), rep)
				subs := append(append([]*VSA{}, c.subs...), sub)
				next = append(next, combo{reps: reps, subs: subs})
			}
		}
		combos = next
	}

	groups := make(map[dsl.Lit][]*VSA)
	for _, c := range combos {
		args := make([]dsl.AST, len(c.reps))
		for i, r := range c.reps {
			args[i] = dsl.NewLit(r)
		}
		out := dsl.Eval(dsl.NewApp(op, args...), input)
		children := append([]*VSA{}, c.subs...)
		groups[out] = append(groups[out], &VSA{Kind: Join, Op: op, Children: children})
	}
	return unionGroupsToVSAs(groups)
}
