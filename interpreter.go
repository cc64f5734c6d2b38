// interpreter.go — tree-walking evaluator with a mutable variable environment.
//
// Statements execute top-to-bottom; the first runtime failure halts the unit
// and is returned as a *RuntimeError carrying the line of the token that
// triggered it. The environment lives for the lifetime of the Interpreter,
// so a REPL that reuses one Interpreter keeps bindings across lines while a
// file run gets a fresh one.
package lox

import (
	"fmt"
	"io"
	"os"
)

// Environment is a single flat mapping from variable names to their most
// recent binding. There is no block or function scoping: declaring or
// assigning a name overwrites any prior binding.
type Environment struct {
	table map[string]Value
}

// NewEnvironment creates an empty environment.
func NewEnvironment() *Environment {
	return &Environment{table: make(map[string]Value)}
}

// Define binds name to v, overwriting any prior binding.
func (e *Environment) Define(name string, v Value) {
	e.table[name] = v
}

// Get retrieves the current binding for name.
func (e *Environment) Get(name string) (Value, bool) {
	v, ok := e.table[name]
	return v, ok
}

// Interpreter executes statement sequences. Safe for reuse across multiple
// Interpret calls (REPL style); never safe for concurrent use.
type Interpreter struct {
	env *Environment
	out io.Writer
}

// NewInterpreter creates an interpreter with a fresh environment writing
// print output to stdout.
func NewInterpreter() *Interpreter {
	return &Interpreter{env: NewEnvironment(), out: os.Stdout}
}

// SetOutput redirects print statement output (tests, embedding).
func (ip *Interpreter) SetOutput(w io.Writer) { ip.out = w }

// Interpret executes stmts in order. The error, when non-nil, is a
// *RuntimeError; bindings made before the failure are kept.
func (ip *Interpreter) Interpret(stmts []Stmt) error {
	for _, st := range stmts {
		if err := ip.execute(st); err != nil {
			return err
		}
	}
	return nil
}

func (ip *Interpreter) execute(st Stmt) error {
	switch st := st.(type) {
	case *ExprStmt:
		_, err := ip.Evaluate(st.Expr)
		return err
	case *PrintStmt:
		v, err := ip.Evaluate(st.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(ip.out, v.String())
		return nil
	case *VarStmt:
		v := Nil
		if st.Initializer != nil {
			var err error
			v, err = ip.Evaluate(st.Initializer)
			if err != nil {
				return err
			}
		}
		ip.env.Define(st.Name.Lexeme, v)
		return nil
	default:
		panic(fmt.Sprintf("interpreter: unknown statement %T", st))
	}
}

// Evaluate computes the value of a single expression against the current
// environment. Exported so the REPL can echo bare-expression lines.
func (ip *Interpreter) Evaluate(e Expr) (Value, error) {
	switch e := e.(type) {
	case *LiteralExpr:
		return e.Value, nil
	case *GroupingExpr:
		return ip.Evaluate(e.Expr)
	case *VariableExpr:
		v, ok := ip.env.Get(e.Name.Lexeme)
		if !ok {
			return Nil, runtimeErrorf(e.Name, "undefined variable: %s", e.Name.Lexeme)
		}
		return v, nil
	case *AssignExpr:
		v, err := ip.Evaluate(e.Value)
		if err != nil {
			return Nil, err
		}
		// Assigning to an undeclared name creates it. Intentional semantic
		// looseness kept for behavioral compatibility.
		ip.env.Define(e.Name.Lexeme, v)
		return v, nil
	case *UnaryExpr:
		return ip.evalUnary(e)
	case *BinaryExpr:
		return ip.evalBinary(e)
	default:
		panic(fmt.Sprintf("interpreter: unknown expression %T", e))
	}
}

func (ip *Interpreter) evalUnary(e *UnaryExpr) (Value, error) {
	right, err := ip.Evaluate(e.Right)
	if err != nil {
		return Nil, err
	}
	switch e.Operator.Type {
	case MINUS:
		if right.Tag != VTNum {
			return Nil, runtimeErrorf(e.Operator, "invalid operand: %s: expected a number", FormatValue(right))
		}
		return Num(-right.Data.(float64)), nil
	case BANG:
		// truthiness negation applies to any value, never errors
		return Bool(!right.Truthy()), nil
	default:
		return Nil, runtimeErrorf(e.Operator, "invalid unary operator: %s", e.Operator.Lexeme)
	}
}

func (ip *Interpreter) evalBinary(e *BinaryExpr) (Value, error) {
	left, err := ip.Evaluate(e.Left)
	if err != nil {
		return Nil, err
	}
	right, err := ip.Evaluate(e.Right)
	if err != nil {
		return Nil, err
	}
	op := e.Operator

	// numeric op helper: both sides must be numbers
	num := func(f func(l, r float64) Value) (Value, error) {
		if left.Tag == VTNum && right.Tag == VTNum {
			return f(left.Data.(float64), right.Data.(float64)), nil
		}
		return Nil, invalidOperands(left, right, "expected numbers", op)
	}

	switch op.Type {
	case PLUS:
		switch {
		case left.Tag == VTNum && right.Tag == VTNum:
			return Num(left.Data.(float64) + right.Data.(float64)), nil
		case left.Tag == VTStr && right.Tag == VTStr:
			return Str(left.Data.(string) + right.Data.(string)), nil
		case left.Tag == VTNum:
			return Nil, invalidOperands(left, right, "expected a number", op)
		case left.Tag == VTStr:
			return Nil, invalidOperands(left, right, "expected a string", op)
		default:
			return Nil, invalidOperands(left, right, "expected a number or string", op)
		}

	case MINUS:
		return num(func(l, r float64) Value { return Num(l - r) })
	case STAR:
		return num(func(l, r float64) Value { return Num(l * r) })
	case SLASH:
		// Division by zero is not special-cased: IEEE-754 semantics apply
		// and yield +/-Inf or NaN.
		return num(func(l, r float64) Value { return Num(l / r) })

	case EQ, NEQ:
		// Equality is type-strict: only same-variant Number/String/Boolean
		// pairs are comparable, and a cross-type comparison is an error
		// rather than false.
		comparable := left.Tag == right.Tag &&
			(left.Tag == VTNum || left.Tag == VTStr || left.Tag == VTBool)
		if !comparable {
			return Nil, invalidOperands(left, right, "expected comparable types", op)
		}
		eq := left.Equal(right)
		if op.Type == NEQ {
			eq = !eq
		}
		return Bool(eq), nil

	case GREATER:
		return num(func(l, r float64) Value { return Bool(l > r) })
	case GREATER_EQ:
		return num(func(l, r float64) Value { return Bool(l >= r) })
	case LESS:
		return num(func(l, r float64) Value { return Bool(l < r) })
	case LESS_EQ:
		return num(func(l, r float64) Value { return Bool(l <= r) })

	default:
		return Nil, runtimeErrorf(op, "invalid binary operator: %s", op.Lexeme)
	}
}

func invalidOperands(left, right Value, msg string, op Token) error {
	return runtimeErrorf(op, "invalid operands: %s and %s: %s",
		FormatValue(left), FormatValue(right), msg)
}

func runtimeErrorf(tok Token, format string, args ...interface{}) error {
	return &RuntimeError{
		Line: tok.Line,
		Col:  tok.Col + 1, // tokens carry 0-based columns; RuntimeError is 1-based
		Msg:  fmt.Sprintf(format, args...),
	}
}
