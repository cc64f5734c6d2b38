// ast.go — expression and statement nodes.
//
// Nodes form two closed sums (Expr, Stmt) discriminated by type switches at
// every consumer. Adding a node kind means adding a struct here and handling
// it in the parser, the evaluator and the printer; consumers panic on an
// unknown node so a missed case fails loudly rather than silently.
//
// Every operator- or name-bearing node retains the originating Token (not a
// bare symbol) so runtime errors can report the source line.
package lox

// Expr is an expression node. Each non-leaf node exclusively owns its
// children: the AST is a tree, never a DAG.
type Expr interface {
	exprNode()
}

// BinaryExpr is a left-associative binary operation: left op right.
type BinaryExpr struct {
	Left     Expr
	Operator Token
	Right    Expr
}

// UnaryExpr is a prefix operation: op right.
type UnaryExpr struct {
	Operator Token
	Right    Expr
}

// GroupingExpr is a parenthesized expression.
type GroupingExpr struct {
	Expr Expr
}

// LiteralExpr carries a constant value scanned from source.
type LiteralExpr struct {
	Value Value
}

// VariableExpr reads the current binding of a name.
type VariableExpr struct {
	Name Token
}

// AssignExpr rebinds a name and yields the assigned value.
type AssignExpr struct {
	Name  Token
	Value Expr
}

func (*BinaryExpr) exprNode()   {}
func (*UnaryExpr) exprNode()    {}
func (*GroupingExpr) exprNode() {}
func (*LiteralExpr) exprNode()  {}
func (*VariableExpr) exprNode() {}
func (*AssignExpr) exprNode()   {}

// Stmt is a statement node. A program is an ordered []Stmt; slice order is
// evaluation order.
type Stmt interface {
	stmtNode()
}

// ExprStmt evaluates an expression for its effect and discards the result.
type ExprStmt struct {
	Expr Expr
}

// PrintStmt evaluates an expression and writes its display form.
type PrintStmt struct {
	Expr Expr
}

// VarStmt declares a variable. Initializer may be nil, in which case the
// name is bound to nil.
type VarStmt struct {
	Name        Token
	Initializer Expr
}

func (*ExprStmt) stmtNode()  {}
func (*PrintStmt) stmtNode() {}
func (*VarStmt) stmtNode()   {}
