package dsl

import "strings"

// String renders a as DSL program text (spec §6): Concat is "(a <> b)",
// Slice is "(X[a..b])", Find/FindEnd are "x.find(p, i)"/"x.find_end(p, i)",
// literals use their obvious syntax, and an empty-string Concat operand
// elides (so the empty prefix or suffix the top-down learner's witness
// rule 6 can produce doesn't clutter the printed program with "'' <> ...").
func (a AST) String() string {
	var sb strings.Builder
	a.writeString(&sb)
	return sb.String()
}

func (a AST) writeString(sb *strings.Builder) {
	switch a.Kind {
	case KindLit:
		sb.WriteString(a.Lit.String())
	case KindForeignCall:
		sb.WriteString("(lambda X: ")
		sb.WriteString(a.Foreign.Code)
		sb.WriteString(")(")
		a.Foreign.Input.writeString(sb)
		sb.WriteByte(')')
	case KindApp:
		a.writeApp(sb)
	}
}

var emptyString = NewLit(StringConst(""))

func (a AST) writeApp(sb *strings.Builder) {
	switch a.Fun {
	case Concat:
		lhs, rhs := a.Args[0], a.Args[1]
		switch {
		case lhs.Equal(emptyString):
			rhs.writeString(sb)
		case rhs.Equal(emptyString):
			lhs.writeString(sb)
		default:
			sb.WriteByte('(')
			lhs.writeString(sb)
			sb.WriteString(" <> ")
			rhs.writeString(sb)
			sb.WriteByte(')')
		}
	case ConcatMap:
		sb.WriteString("X.split(")
		a.Args[0].writeString(sb)
		sb.WriteString(").concat_map(λX.")
		a.Args[1].writeString(sb)
		sb.WriteByte(')')
	case Find:
		a.Args[0].writeString(sb)
		sb.WriteString(".find(")
		a.Args[1].writeString(sb)
		sb.WriteString(", ")
		a.Args[2].writeString(sb)
		sb.WriteByte(')')
	case FindEnd:
		a.Args[0].writeString(sb)
		sb.WriteString(".find_end(")
		a.Args[1].writeString(sb)
		sb.WriteString(", ")
		a.Args[2].writeString(sb)
		sb.WriteByte(')')
	case Slice:
		sb.WriteString("(X[")
		a.Args[0].writeString(sb)
		sb.WriteString("..")
		a.Args[1].writeString(sb)
		sb.WriteString("])")
	case LocAdd:
		sb.WriteByte('(')
		a.Args[0].writeString(sb)
		sb.WriteString(" + ")
		a.Args[1].writeString(sb)
		sb.WriteByte(')')
	case LocSub:
		sb.WriteByte('(')
		a.Args[0].writeString(sb)
		sb.WriteString(" - ")
		a.Args[1].writeString(sb)
		sb.WriteByte(')')
	case Lowercase:
		a.Args[0].writeString(sb)
		sb.WriteString(".lower()")
	case Uppercase:
		a.Args[0].writeString(sb)
		sb.WriteString(".upper()")
	case Equal:
		sb.WriteByte('(')
		a.Args[0].writeString(sb)
		sb.WriteString(" == ")
		a.Args[1].writeString(sb)
		sb.WriteByte(')')
	default:
		sb.WriteString(a.Fun.String())
	}
}
