// printer.go — diagnostic formatting: quoted value rendering and a
// parenthesized prefix printer for the AST. Neither is part of the language
// contract; the REPL uses them for echoing values and for the :ast toggle.
package lox

import (
	"strconv"
	"strings"
)

// FormatValue renders v for diagnostics: like Value.String but with strings
// quoted, so `"1"` and `1` are distinguishable in error messages and REPL
// echoes.
func FormatValue(v Value) string {
	if v.Tag == VTStr {
		return strconv.Quote(v.Data.(string))
	}
	return v.String()
}

// FormatExpr renders an expression in parenthesized prefix form,
// e.g. (+ 1 (* 2 3)).
func FormatExpr(e Expr) string {
	switch e := e.(type) {
	case *BinaryExpr:
		return parenthesize(e.Operator.Lexeme, e.Left, e.Right)
	case *UnaryExpr:
		return parenthesize(e.Operator.Lexeme, e.Right)
	case *GroupingExpr:
		return parenthesize("group", e.Expr)
	case *LiteralExpr:
		return FormatValue(e.Value)
	case *VariableExpr:
		return e.Name.Lexeme
	case *AssignExpr:
		return "(assign " + e.Name.Lexeme + " " + FormatExpr(e.Value) + ")"
	default:
		return "<unknown expr>"
	}
}

// FormatStmt renders a statement in the same prefix form.
func FormatStmt(st Stmt) string {
	switch st := st.(type) {
	case *ExprStmt:
		return FormatExpr(st.Expr)
	case *PrintStmt:
		return parenthesize("print", st.Expr)
	case *VarStmt:
		if st.Initializer == nil {
			return "(var " + st.Name.Lexeme + ")"
		}
		return "(var " + st.Name.Lexeme + " " + FormatExpr(st.Initializer) + ")"
	default:
		return "<unknown stmt>"
	}
}

func parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		b.WriteString(FormatExpr(e))
	}
	b.WriteByte(')')
	return b.String()
}
