package dsl

// Fun is the closed, finite enum of DSL operators. Every Fun case has an
// eval case (eval.go), a pretty-printer case (print.go), and an Arity and
// String case (this file); the enumerate and learn packages construct only
// some of the operators. Go does not check these switches for
// exhaustiveness, so adding a Fun case means updating each of them by hand.
type Fun uint8

const (
	// Concat concatenates two strings.
	Concat Fun = iota
	// Find returns the start of the i-th match of a pattern in a string.
	Find
	// FindEnd returns the end of the i-th match of a pattern in a string.
	FindEnd
	// Slice extracts input[start:end].
	Slice
	// LocAdd adds two locations.
	LocAdd
	// LocSub subtracts two locations, saturating at zero.
	LocSub
	// Lowercase lowercases a string.
	Lowercase
	// Uppercase uppercases a string.
	Uppercase
	// ConcatMap is reserved: the evaluator panics and no enumerator rule
	// constructs it (spec §4.1, §9).
	ConcatMap
	// Equal compares two values for equality.
	Equal
)

// Arity returns the number of arguments f takes.
func (f Fun) Arity() int {
	switch f {
	case Concat, Slice, LocAdd, LocSub, Lowercase, Uppercase, Equal:
		if f == Lowercase || f == Uppercase {
			return 1
		}
		return 2
	case Find, FindEnd:
		return 3
	case ConcatMap:
		return 2
	default:
		panic("dsl: Arity: unknown Fun")
	}
}

// Cost assigns §3's operator cost: Concat costs 2, every other operator
// costs 1.
func (f Fun) Cost() int {
	if f == Concat {
		return 2
	}
	return 1
}

// String names f for diagnostics.
func (f Fun) String() string {
	switch f {
	case Concat:
		return "Concat"
	case Find:
		return "Find"
	case FindEnd:
		return "FindEnd"
	case Slice:
		return "Slice"
	case LocAdd:
		return "LocAdd"
	case LocSub:
		return "LocSub"
	case Lowercase:
		return "Lowercase"
	case Uppercase:
		return "Uppercase"
	case ConcatMap:
		return "ConcatMap"
	case Equal:
		return "Equal"
	default:
		return "Fun(?)"
	}
}
