// interpreter.go — values, environments, and the tree-walking evaluator.
//
// The evaluator consumes the trees built by parser.go. It owns the variable
// table (a chain of Env frames rooted at Global) and nothing else; trees are
// evaluated once per line and discarded.
//
// Semantics:
//   - Integers self-evaluate; identifiers resolve through the Env chain.
//   - "+", "-", "*", "/" operate on integers ("/" truncates; dividing by
//     zero is a runtime error).
//   - "=" with an identifier on the left binds in the Global frame and
//     yields the bound value. This is how ":define x = 5" takes effect.
//   - A func literal captures the environment it was evaluated in; a call
//     binds the single argument in a fresh child of that captured frame.
//   - An if-expression compares two integers with its recorded relop and
//     evaluates only the selected branch.
//
// The evaluator returns *RuntimeError for all failures and never prints.
package mfl

import (
	"fmt"
	"strconv"
)

////////////////////////////////////////////////////////////////////////////////
//                              PUBLIC TYPES & CTORS
////////////////////////////////////////////////////////////////////////////////

// ValueTag enumerates all runtime kinds a Value may hold.
type ValueTag int

const (
	VTInt ValueTag = iota // int64
	VTFun                 // *Closure
)

// Value is the universal runtime carrier used by the interpreter.
// The tag determines which Go type Data holds (see ValueTag).
type Value struct {
	Tag  ValueTag
	Data interface{}
}

// String renders a human-friendly debug representation.
func (v Value) String() string {
	switch v.Tag {
	case VTInt:
		return strconv.FormatInt(v.Data.(int64), 10)
	case VTFun:
		return fmt.Sprintf("<func (%s)>", v.Data.(*Closure).Param)
	default:
		return "<unknown>"
	}
}

// Int wraps an integer into a Value.
func Int(n int64) Value { return Value{Tag: VTInt, Data: n} }

// FunVal wraps *Closure into a Value (Tag=VTFun).
func FunVal(c *Closure) Value { return Value{Tag: VTFun, Data: c} }

// Closure is a function value: the literal's single parameter and body plus
// the environment captured where the literal was evaluated.
type Closure struct {
	Param string
	Body  Exp
	Env   *Env
}

// Env is a lexical environment frame with a parent link. Lookups walk
// parent-ward. Use Define to bind in the current frame, Set to update an
// existing visible binding, and Get to retrieve.
type Env struct {
	parent *Env
	table  map[string]Value
}

// NewEnv creates a new lexical frame with the given parent (which may be nil).
func NewEnv(parent *Env) *Env { return &Env{parent: parent, table: make(map[string]Value)} }

// Define binds name to v in the current frame, shadowing any outer binding.
func (e *Env) Define(name string, v Value) {
	e.table[name] = v
}

// Set updates the nearest existing binding of name to v. If no binding
// exists in any visible frame, Set returns an error (it does not define).
func (e *Env) Set(name string, v Value) error {
	if _, ok := e.table[name]; ok {
		e.table[name] = v
		return nil
	}
	if e.parent != nil {
		return e.parent.Set(name, v)
	}
	return fmt.Errorf("undefined variable: %s", name)
}

// Get retrieves the nearest visible binding for name or returns an error.
func (e *Env) Get(name string) (Value, error) {
	if v, ok := e.table[name]; ok {
		return v, nil
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	return Value{}, fmt.Errorf("undefined variable: %s", name)
}

// RuntimeError represents an execution-time failure. Unlike lex and parse
// errors it has no useful column: the tree no longer remembers token
// positions, so only the message travels.
type RuntimeError struct {
	Msg string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("RUNTIME ERROR: %s", e.Msg)
}

func rtErrf(format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Msg: fmt.Sprintf(format, args...)}
}

// Interpreter evaluates expression trees against a persistent Global frame.
// One Interpreter backs one REPL session; it is not safe for concurrent use
// (the REPL evaluates one line to completion before reading the next).
type Interpreter struct {
	Global *Env
}

// NewInterpreter returns an interpreter with an empty variable table.
func NewInterpreter() *Interpreter {
	return &Interpreter{Global: NewEnv(nil)}
}

// EvalLine parses one line and evaluates it in the Global frame.
func (ip *Interpreter) EvalLine(src string) (Value, error) {
	exp, err := ParseLine(src)
	if err != nil {
		return Value{}, err
	}
	return ip.Eval(exp, ip.Global)
}

// Eval evaluates exp in env and returns its value.
func (ip *Interpreter) Eval(exp Exp, env *Env) (Value, error) {
	switch e := exp.(type) {
	case *IntegerExp:
		return Int(e.Value), nil
	case *IdentifierExp:
		v, err := env.Get(e.Name)
		if err != nil {
			return Value{}, &RuntimeError{Msg: err.Error()}
		}
		return v, nil
	case *CompoundExp:
		return ip.evalCompound(e, env)
	case *FuncExp:
		return FunVal(&Closure{Param: e.Param, Body: e.Body, Env: env}), nil
	case *CallExp:
		return ip.evalCall(e, env)
	case *IfExp:
		return ip.evalIf(e, env)
	default:
		return Value{}, rtErrf("cannot evaluate %T", exp)
	}
}

//// END_OF_PUBLIC

////////////////////////////////////////////////////////////////////////////////
///////////////////////////// PRIVATE IMPLEMENTATION ///////////////////////////
////////////////////////////////////////////////////////////////////////////////

func (ip *Interpreter) evalCompound(e *CompoundExp, env *Env) (Value, error) {
	if e.Op == "=" {
		id, ok := e.Lhs.(*IdentifierExp)
		if !ok {
			return Value{}, rtErrf("left side of '=' must be an identifier")
		}
		v, err := ip.Eval(e.Rhs, env)
		if err != nil {
			return Value{}, err
		}
		// Definitions always land in the session's table, not in whatever
		// call frame happens to be current.
		ip.Global.Define(id.Name, v)
		return v, nil
	}

	lhs, err := ip.evalInt(e.Lhs, env, e.Op)
	if err != nil {
		return Value{}, err
	}
	rhs, err := ip.evalInt(e.Rhs, env, e.Op)
	if err != nil {
		return Value{}, err
	}
	switch e.Op {
	case "+":
		return Int(lhs + rhs), nil
	case "-":
		return Int(lhs - rhs), nil
	case "*":
		return Int(lhs * rhs), nil
	case "/":
		if rhs == 0 {
			return Value{}, rtErrf("division by zero")
		}
		return Int(lhs / rhs), nil
	default:
		return Value{}, rtErrf("unknown operator %q", e.Op)
	}
}

func (ip *Interpreter) evalCall(e *CallExp, env *Env) (Value, error) {
	fn, err := ip.Eval(e.Fn, env)
	if err != nil {
		return Value{}, err
	}
	if fn.Tag != VTFun {
		return Value{}, rtErrf("cannot call %s", fn)
	}
	arg, err := ip.Eval(e.Arg, env)
	if err != nil {
		return Value{}, err
	}
	cl := fn.Data.(*Closure)
	frame := NewEnv(cl.Env)
	frame.Define(cl.Param, arg)
	return ip.Eval(cl.Body, frame)
}

func (ip *Interpreter) evalIf(e *IfExp, env *Env) (Value, error) {
	lhs, err := ip.evalInt(e.Lhs, env, e.Relop)
	if err != nil {
		return Value{}, err
	}
	rhs, err := ip.evalInt(e.Rhs, env, e.Relop)
	if err != nil {
		return Value{}, err
	}

	var take bool
	switch e.Relop {
	case "<":
		take = lhs < rhs
	case "<=":
		take = lhs <= rhs
	case ">":
		take = lhs > rhs
	case ">=":
		take = lhs >= rhs
	case "=", "==":
		take = lhs == rhs
	case "!=":
		take = lhs != rhs
	default:
		// The parser accepts any token as the relop; meaning is decided here.
		return Value{}, rtErrf("unknown relational operator %q", e.Relop)
	}

	if take {
		return ip.Eval(e.Then, env)
	}
	return ip.Eval(e.Else, env)
}

// evalInt evaluates exp and requires an integer result, naming op in the
// failure message.
func (ip *Interpreter) evalInt(exp Exp, env *Env, op string) (int64, error) {
	v, err := ip.Eval(exp, env)
	if err != nil {
		return 0, err
	}
	if v.Tag != VTInt {
		return 0, rtErrf("operand of %q is not an integer: %s", op, v)
	}
	return v.Data.(int64), nil
}
