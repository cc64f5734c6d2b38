// parser.go — recursive-descent parser: token sequence to statement sequence.
//
// One method per precedence level, lowest first:
//
//	program     → declaration* EOF
//	declaration → "var" ID ("=" expression)? ";" | statement
//	statement   → "print" expression ";" | expression ";"
//	expression  → assignment
//	assignment  → ID "=" assignment | equality
//	equality    → comparison (("!="|"==") comparison)*
//	comparison  → term ((">"|">="|"<"|"<=") term)*
//	term        → factor (("-"|"+") factor)*
//	factor      → unary (("/"|"*") unary)*
//	unary       → ("!"|"-") unary | primary
//	primary     → NUMBER | STRING | "true" | "false" | "nil" | ID | "(" expression ")"
//
// Left-associative binary operators are built by iterative left-folding: each
// loop turn wraps the accumulated expression as the new left operand, which
// is what gives `1 - 2 - 3` the shape ((1-2)-3).
//
// The parser is fail-fast: the first grammar violation returns a *ParseError
// carrying the offending token, and no synchronization is attempted. The
// caller decides whether to retry the next input unit (a REPL does, a file
// run does not).
package lox

import "fmt"

// Parser consumes a scanned token sequence.
type Parser struct {
	toks []Token
	i    int
}

// NewParser creates a parser over toks. Scanned token sequences always end
// with an EOF token; an empty or nil slice is treated as one.
func NewParser(toks []Token) *Parser {
	if len(toks) == 0 {
		toks = []Token{{Type: EOF, Line: 1}}
	}
	return &Parser{toks: toks}
}

// Parse is a convenience wrapper: parse toks as a full program. The error,
// when non-nil, is a *ParseError.
func Parse(toks []Token) ([]Stmt, error) {
	return NewParser(toks).Parse()
}

// Parse reads declarations until EOF.
func (p *Parser) Parse() ([]Stmt, error) {
	var stmts []Stmt
	for !p.atEnd() {
		st, err := p.declaration()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, st)
	}
	return stmts, nil
}

// ParseExpression parses the whole input as a single bare expression. Used
// by the REPL to echo expression values typed without a trailing ';'.
func (p *Parser) ParseExpression() (Expr, error) {
	e, err := p.expression()
	if err != nil {
		return nil, err
	}
	if !p.atEnd() {
		return nil, parseErrorf(p.peek(), "unexpected token '%s'", p.peek())
	}
	return e, nil
}

// ----- token cursor -----

func (p *Parser) atEnd() bool { return p.peek().Type == EOF }

func (p *Parser) peek() Token {
	if p.i >= len(p.toks) {
		return p.toks[len(p.toks)-1] // EOF
	}
	return p.toks[p.i]
}

func (p *Parser) prev() Token { return p.toks[p.i-1] }

func (p *Parser) check(tt TokenType) bool { return p.peek().Type == tt }

func (p *Parser) advance() Token {
	if !p.atEnd() {
		p.i++
	}
	return p.prev()
}

func (p *Parser) match(tts ...TokenType) bool {
	for _, tt := range tts {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

// need consumes a token of the given type or fails with msg.
func (p *Parser) need(tt TokenType, msg string) (Token, error) {
	if p.check(tt) {
		return p.advance(), nil
	}
	return Token{}, &ParseError{Tok: p.peek(), Msg: msg}
}

func parseErrorf(tok Token, format string, args ...interface{}) error {
	return &ParseError{Tok: tok, Msg: fmt.Sprintf(format, args...)}
}

// ----- statements -----

func (p *Parser) declaration() (Stmt, error) {
	if p.match(VAR) {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *Parser) varDeclaration() (Stmt, error) {
	name, err := p.need(ID, "expected variable name after 'var'")
	if err != nil {
		return nil, err
	}
	var init Expr
	if p.match(ASSIGN) {
		init, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.need(SEMICOLON, "expected ';' after variable declaration"); err != nil {
		return nil, err
	}
	return &VarStmt{Name: name, Initializer: init}, nil
}

func (p *Parser) statement() (Stmt, error) {
	if p.match(PRINT) {
		return p.printStatement()
	}
	return p.expressionStatement()
}

func (p *Parser) printStatement() (Stmt, error) {
	e, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.need(SEMICOLON, "expected ';' after value"); err != nil {
		return nil, err
	}
	return &PrintStmt{Expr: e}, nil
}

func (p *Parser) expressionStatement() (Stmt, error) {
	e, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.need(SEMICOLON, "expected ';' after expression"); err != nil {
		return nil, err
	}
	return &ExprStmt{Expr: e}, nil
}

// ----- expressions -----

func (p *Parser) expression() (Expr, error) {
	return p.assignment()
}

func (p *Parser) assignment() (Expr, error) {
	e, err := p.equality()
	if err != nil {
		return nil, err
	}
	if p.match(ASSIGN) {
		eq := p.prev()
		value, err := p.assignment() // right-associative
		if err != nil {
			return nil, err
		}
		if v, ok := e.(*VariableExpr); ok {
			return &AssignExpr{Name: v.Name, Value: value}, nil
		}
		return nil, parseErrorf(eq, "invalid assignment target")
	}
	return e, nil
}

func (p *Parser) equality() (Expr, error) {
	e, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.match(NEQ, EQ) {
		op := p.prev()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		e = &BinaryExpr{Left: e, Operator: op, Right: right}
	}
	return e, nil
}

func (p *Parser) comparison() (Expr, error) {
	e, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.match(GREATER, GREATER_EQ, LESS, LESS_EQ) {
		op := p.prev()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		e = &BinaryExpr{Left: e, Operator: op, Right: right}
	}
	return e, nil
}

func (p *Parser) term() (Expr, error) {
	e, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.match(MINUS, PLUS) {
		op := p.prev()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		e = &BinaryExpr{Left: e, Operator: op, Right: right}
	}
	return e, nil
}

func (p *Parser) factor() (Expr, error) {
	e, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.match(SLASH, STAR) {
		op := p.prev()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		e = &BinaryExpr{Left: e, Operator: op, Right: right}
	}
	return e, nil
}

func (p *Parser) unary() (Expr, error) {
	if p.match(BANG, MINUS) {
		op := p.prev()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Operator: op, Right: right}, nil
	}
	return p.primary()
}

func (p *Parser) primary() (Expr, error) {
	switch {
	case p.match(NUMBER):
		return &LiteralExpr{Value: Num(p.prev().Literal.(float64))}, nil
	case p.match(STRING):
		return &LiteralExpr{Value: Str(p.prev().Literal.(string))}, nil
	case p.match(TRUE):
		return &LiteralExpr{Value: Bool(true)}, nil
	case p.match(FALSE):
		return &LiteralExpr{Value: Bool(false)}, nil
	case p.match(NIL):
		return &LiteralExpr{Value: Nil}, nil
	case p.match(ID):
		return &VariableExpr{Name: p.prev()}, nil
	case p.match(LEFT_PAREN):
		e, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.need(RIGHT_PAREN, "expected ')' after expression"); err != nil {
			return nil, err
		}
		return &GroupingExpr{Expr: e}, nil
	}
	return nil, parseErrorf(p.peek(), "expected expression, got '%s'", p.peek())
}
