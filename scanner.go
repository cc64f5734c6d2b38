// scanner.go — lexical scanner: raw source text to a token sequence.
//
// The scanner makes a single left-to-right pass over the source bytes using
// one character of lookahead (peek) plus one more (peekNext) to disambiguate
// '.' inside numbers and "//" comments. Lexical errors are not fatal: the
// offending character is skipped, a diagnostic is recorded, and scanning
// continues so that one pass can surface every lexical problem. The token
// sequence always ends with exactly one EOF token.
package lox

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Scanner turns a source string into tokens.
type Scanner struct {
	src    string
	start  int // start index of the current token
	cur    int // current index
	line   int // 1-based
	col    int // 0-based column within line
	tokens []Token
	errs   []*LexError

	// position where the current token began
	tokStartLine int
	tokStartCol  int
}

// NewScanner creates a scanner for the given source.
func NewScanner(src string) *Scanner {
	return &Scanner{src: src, line: 1}
}

// Scan is a convenience wrapper: tokenize src and return the tokens together
// with any lexical errors. The caller must not parse if errors are present.
func Scan(src string) ([]Token, []*LexError) {
	return NewScanner(src).Scan()
}

// Scan tokenizes the entire source. The returned slice always ends with an
// EOF token tagged with the line the scan ended on. Errors accumulate; the
// scan never stops early.
func (s *Scanner) Scan() ([]Token, []*LexError) {
	for !s.isAtEnd() {
		s.start = s.cur
		s.tokStartLine = s.line
		s.tokStartCol = s.col
		s.scanToken()
	}
	s.tokStartLine = s.line
	s.tokStartCol = s.col
	s.addToken(EOF, nil)
	return s.tokens, s.errs
}

// HadError reports whether any lexical error was recorded.
func (s *Scanner) HadError() bool { return len(s.errs) > 0 }

// Errors returns the accumulated lexical diagnostics in source order.
func (s *Scanner) Errors() []*LexError { return s.errs }

func (s *Scanner) isAtEnd() bool { return s.cur >= len(s.src) }

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.src[s.cur]
}

func (s *Scanner) peekNext() byte {
	if s.cur+1 >= len(s.src) {
		return 0
	}
	return s.src[s.cur+1]
}

func (s *Scanner) advance() byte {
	ch := s.src[s.cur]
	s.cur++
	if ch == '\n' {
		s.line++
		s.col = 0
	} else {
		s.col++
	}
	return ch
}

// match consumes the next character only when it equals expected. On a
// mismatch nothing is consumed, so the character is reprocessed by the next
// scan iteration.
func (s *Scanner) match(expected byte) bool {
	if s.isAtEnd() || s.src[s.cur] != expected {
		return false
	}
	s.advance()
	return true
}

func (s *Scanner) addToken(tt TokenType, lit interface{}) {
	s.tokens = append(s.tokens, Token{
		Type:    tt,
		Lexeme:  s.src[s.start:s.cur],
		Literal: lit,
		Line:    s.tokStartLine,
		Col:     s.tokStartCol,
	})
}

func (s *Scanner) report(line, col int, msg string) {
	s.errs = append(s.errs, &LexError{Line: line, Col: col, Msg: msg})
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}
func isAlphaNum(b byte) bool { return isAlpha(b) || isDigit(b) }

func (s *Scanner) scanToken() {
	ch := s.advance()
	switch ch {
	case '(':
		s.addToken(LEFT_PAREN, nil)
	case ')':
		s.addToken(RIGHT_PAREN, nil)
	case '{':
		s.addToken(LEFT_BRACE, nil)
	case '}':
		s.addToken(RIGHT_BRACE, nil)
	case ',':
		s.addToken(COMMA, nil)
	case '.':
		s.addToken(DOT, nil)
	case '-':
		s.addToken(MINUS, nil)
	case '+':
		s.addToken(PLUS, nil)
	case ';':
		s.addToken(SEMICOLON, nil)
	case '*':
		s.addToken(STAR, nil)

	case '!':
		if s.match('=') {
			s.addToken(NEQ, nil)
		} else {
			s.addToken(BANG, nil)
		}
	case '=':
		if s.match('=') {
			s.addToken(EQ, nil)
		} else {
			s.addToken(ASSIGN, nil)
		}
	case '<':
		if s.match('=') {
			s.addToken(LESS_EQ, nil)
		} else {
			s.addToken(LESS, nil)
		}
	case '>':
		if s.match('=') {
			s.addToken(GREATER_EQ, nil)
		} else {
			s.addToken(GREATER, nil)
		}

	case '/':
		if s.match('/') {
			// line comment: eat through (not including) the newline
			for !s.isAtEnd() && s.peek() != '\n' {
				s.advance()
			}
		} else {
			s.addToken(SLASH, nil)
		}

	case ' ', '\r', '\t':
		// discarded
	case '\n':
		// advance already bumped the line counter

	case '"':
		s.scanString()

	default:
		switch {
		case isDigit(ch):
			s.scanNumber()
		case isAlpha(ch):
			s.scanIdentifier()
		default:
			// Skip the full rune so a multi-byte character yields one
			// diagnostic, then keep scanning.
			s.cur--
			r, size := utf8.DecodeRuneInString(s.src[s.cur:])
			s.cur += size
			s.col += size - 1
			s.report(s.tokStartLine, s.tokStartCol, fmt.Sprintf("unexpected character: %q", r))
		}
	}
}

// scanString consumes a double-quoted string literal. Embedded newlines are
// legal and become part of the string. An unterminated string is reported at
// the line the string began and emits no token.
func (s *Scanner) scanString() {
	for !s.isAtEnd() && s.peek() != '"' {
		s.advance()
	}
	if s.isAtEnd() {
		s.report(s.tokStartLine, s.tokStartCol, "unterminated string")
		return
	}
	s.advance() // closing quote
	value := s.src[s.start+1 : s.cur-1]
	s.addToken(STRING, value)
}

// scanNumber consumes one-or-more digits with an optional fractional part.
// The '.' is consumed only when a digit follows it; a trailing '.' is left
// for the next token.
func (s *Scanner) scanNumber() {
	for isDigit(s.peek()) {
		s.advance()
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance() // consume '.'
		for isDigit(s.peek()) {
			s.advance()
		}
	}
	lex := s.src[s.start:s.cur]
	v, err := strconv.ParseFloat(lex, 64)
	if err != nil {
		s.report(s.tokStartLine, s.tokStartCol, "invalid number literal")
		return
	}
	s.addToken(NUMBER, v)
}

func (s *Scanner) scanIdentifier() {
	for isAlphaNum(s.peek()) {
		s.advance()
	}
	lex := s.src[s.start:s.cur]
	if tt, ok := keywords[lex]; ok {
		switch tt {
		case TRUE:
			s.addToken(TRUE, true)
		case FALSE:
			s.addToken(FALSE, false)
		case NIL:
			s.addToken(NIL, nil)
		default:
			s.addToken(tt, nil)
		}
		return
	}
	s.addToken(ID, nil)
}
