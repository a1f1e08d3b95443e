// exp.go — expression tree nodes and their constructors.
//
// The parser builds these bottom-up: leaves first, operator nodes wrapping
// already-built subtrees. Each node exclusively owns its children; trees are
// built fresh per input line, evaluated once, and discarded.
//
// Node variants:
//
//	IntegerExp    — integer literal
//	IdentifierExp — variable reference (also carries opaque :commands)
//	CompoundExp   — binary operator over two subtrees ("+", "-", "*", "/", "=")
//	CallExp       — single-argument application
//	FuncExp       — single-parameter function literal
//	IfExp         — if lhs relop rhs then A else B
package mfl

// Exp is the interface satisfied by every expression tree node.
type Exp interface {
	expNode()
}

// IntegerExp is an integer literal leaf.
type IntegerExp struct {
	Value int64
}

// IdentifierExp is a variable-reference leaf. Unrecognized REPL commands
// (":foo") also land here as opaque identifiers for downstream handling.
type IdentifierExp struct {
	Name string
}

// CompoundExp applies a binary operator to two subtrees. Assignment is
// represented the same way, with Op "=" and an IdentifierExp on the left.
type CompoundExp struct {
	Op  string
	Lhs Exp
	Rhs Exp
}

// CallExp applies Fn to a single argument.
type CallExp struct {
	Fn  Exp
	Arg Exp
}

// FuncExp is a function literal with exactly one parameter.
type FuncExp struct {
	Param string
	Body  Exp
}

// IfExp is a two-way conditional over a relational comparison. The relop is
// kept as raw token text; the evaluator decides what it means.
type IfExp struct {
	Lhs   Exp
	Relop string
	Rhs   Exp
	Then  Exp
	Else  Exp
}

func (*IntegerExp) expNode()    {}
func (*IdentifierExp) expNode() {}
func (*CompoundExp) expNode()   {}
func (*CallExp) expNode()       {}
func (*FuncExp) expNode()       {}
func (*IfExp) expNode()         {}

// Constructors. Pure factories: no validation, no side effects; the parser
// is responsible for handing in well-formed parts.

func NewIntegerExp(n int64) *IntegerExp { return &IntegerExp{Value: n} }

func NewIdentifierExp(name string) *IdentifierExp { return &IdentifierExp{Name: name} }

func NewCompoundExp(op string, lhs, rhs Exp) *CompoundExp {
	return &CompoundExp{Op: op, Lhs: lhs, Rhs: rhs}
}

func NewCallExp(fn, arg Exp) *CallExp { return &CallExp{Fn: fn, Arg: arg} }

func NewFuncExp(param string, body Exp) *FuncExp { return &FuncExp{Param: param, Body: body} }

func NewIfExp(lhs Exp, relop string, rhs, then, els Exp) *IfExp {
	return &IfExp{Lhs: lhs, Relop: relop, Rhs: rhs, Then: then, Else: els}
}
