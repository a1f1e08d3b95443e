// printer.go — human-readable rendering of values and expression trees.
//
// FormatValue is what the REPL prints after a successful line. FormatExp
// renders a tree fully parenthesized, which makes grouping decisions visible
// ("2+3*4" → "(2 + (3 * 4))"); tests lean on it to assert tree shape.
package mfl

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatValue renders a runtime value for display.
func FormatValue(v Value) string {
	switch v.Tag {
	case VTInt:
		return strconv.FormatInt(v.Data.(int64), 10)
	case VTFun:
		return fmt.Sprintf("<func (%s)>", v.Data.(*Closure).Param)
	default:
		return "<unknown>"
	}
}

// FormatExp renders an expression tree with explicit parentheses around
// every compound form.
func FormatExp(exp Exp) string {
	var b strings.Builder
	writeExp(&b, exp)
	return b.String()
}

func writeExp(b *strings.Builder, exp Exp) {
	switch e := exp.(type) {
	case *IntegerExp:
		b.WriteString(strconv.FormatInt(e.Value, 10))
	case *IdentifierExp:
		b.WriteString(e.Name)
	case *CompoundExp:
		b.WriteByte('(')
		writeExp(b, e.Lhs)
		b.WriteString(" " + e.Op + " ")
		writeExp(b, e.Rhs)
		b.WriteByte(')')
	case *CallExp:
		writeExp(b, e.Fn)
		b.WriteByte('(')
		writeExp(b, e.Arg)
		b.WriteByte(')')
	case *FuncExp:
		b.WriteString("func (" + e.Param + ") { ")
		writeExp(b, e.Body)
		b.WriteString(" }")
	case *IfExp:
		b.WriteString("(if ")
		writeExp(b, e.Lhs)
		b.WriteString(" " + e.Relop + " ")
		writeExp(b, e.Rhs)
		b.WriteString(" then ")
		writeExp(b, e.Then)
		b.WriteString(" else ")
		writeExp(b, e.Else)
		b.WriteByte(')')
	default:
		fmt.Fprintf(b, "<%T>", exp)
	}
}
