package vsa

// Flatten simplifies v (spec §4.4): a Union with exactly one non-empty
// child collapses to that child (recursively); nested Unions are merged
// into their parent; adjacent identical children are deduped. Flatten is
// idempotent and preserves denotation.
func Flatten(v *VSA) *VSA {
	switch v.Kind {
	case Leaf:
		return v

	case Union:
		nonEmpty := make([]*VSA, 0, len(v.Children))
		for _, c := range v.Children {
			if !c.IsEmpty() {
				nonEmpty = append(nonEmpty, c)
			}
		}
		if len(nonEmpty) == 1 {
			return Flatten(nonEmpty[0])
		}

		flattened := make([]*VSA, 0, len(v.Children))
		for _, c := range v.Children {
			if c.Kind == Union {
				for _, gc := range c.Children {
					flattened = appendDedup(flattened, Flatten(gc))
				}
				continue
			}
			flattened = appendDedup(flattened, c)
		}
		return &VSA{Kind: Union, Children: flattened}

	case Join:
		children := make([]*VSA, len(v.Children))
		for i, c := range v.Children {
			children[i] = Flatten(c)
		}
		return &VSA{Kind: Join, Op: v.Op, Children: children, ChildrenGoals: v.ChildrenGoals}

	case Unlearned:
		return v

	default:
		return v
	}
}

// appendDedup appends next unless it's structurally equal to the last
// element already appended, matching the source's adjacent Vec::dedup
// (which compares by derived PartialEq, not by reference identity).
func appendDedup(children []*VSA, next *VSA) []*VSA {
	if len(children) > 0 && structEqual(children[len(children)-1], next) {
		return children
	}
	return append(children, next)
}

// structEqual reports whether a and b denote the same VSA shape: same Kind
// and, recursively, the same fields that Kind makes meaningful. Pointer
// identity implies structural equality but not the reverse — two
// independently constructed sub-VSAs with identical shape are equal here
// even though they're different Go allocations.
func structEqual(a, b *VSA) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case Leaf:
		if len(a.LeafSet) != len(b.LeafSet) {
			return false
		}
		for k := range a.LeafSet {
			if _, ok := b.LeafSet[k]; !ok {
				return false
			}
		}
		return true

	case Union:
		if len(a.Children) != len(b.Children) {
			return false
		}
		for i := range a.Children {
			if !structEqual(a.Children[i], b.Children[i]) {
				return false
			}
		}
		return true

	case Join:
		if a.Op != b.Op || len(a.Children) != len(b.Children) || len(a.ChildrenGoals) != len(b.ChildrenGoals) {
			return false
		}
		for i := range a.Children {
			if !structEqual(a.Children[i], b.Children[i]) {
				return false
			}
		}
		for i := range a.ChildrenGoals {
			if a.ChildrenGoals[i] != b.ChildrenGoals[i] {
				return false
			}
		}
		return true

	case Unlearned:
		return a.Start == b.Start && a.Goal == b.Goal

	default:
		return false
	}
}
