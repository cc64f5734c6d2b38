// token.go — token model and runtime literal values shared by all stages.
package lox

import (
	"fmt"
	"strconv"
)

// TokenType is the kind of a lexical token.
type TokenType int

const (
	// Special
	EOF TokenType = iota

	// Single-character punctuation
	LEFT_PAREN  // "("
	RIGHT_PAREN // ")"
	LEFT_BRACE  // "{"
	RIGHT_BRACE // "}"
	COMMA       // ","
	DOT         // "."
	MINUS       // "-"
	PLUS        // "+"
	SEMICOLON   // ";"
	STAR        // "*"
	SLASH       // "/"

	// One- or two-character operators
	BANG       // "!"
	NEQ        // "!="
	ASSIGN     // "="
	EQ         // "=="
	LESS       // "<"
	LESS_EQ    // "<="
	GREATER    // ">"
	GREATER_EQ // ">="

	// Literals & identifiers
	ID
	STRING
	NUMBER

	// Keywords
	TRUE
	FALSE
	NIL
	VAR
	PRINT
)

func (tt TokenType) String() string {
	switch tt {
	case EOF:
		return "EOF"
	case LEFT_PAREN:
		return "("
	case RIGHT_PAREN:
		return ")"
	case LEFT_BRACE:
		return "{"
	case RIGHT_BRACE:
		return "}"
	case COMMA:
		return ","
	case DOT:
		return "."
	case MINUS:
		return "-"
	case PLUS:
		return "+"
	case SEMICOLON:
		return ";"
	case STAR:
		return "*"
	case SLASH:
		return "/"
	case BANG:
		return "!"
	case NEQ:
		return "!="
	case ASSIGN:
		return "="
	case EQ:
		return "=="
	case LESS:
		return "<"
	case LESS_EQ:
		return "<="
	case GREATER:
		return ">"
	case GREATER_EQ:
		return ">="
	case ID:
		return "identifier"
	case STRING:
		return "string"
	case NUMBER:
		return "number"
	case TRUE:
		return "true"
	case FALSE:
		return "false"
	case NIL:
		return "nil"
	case VAR:
		return "var"
	case PRINT:
		return "print"
	default:
		return "unknown"
	}
}

// keywords maps reserved words to their token types.
var keywords = map[string]TokenType{
	"true":  TRUE,
	"false": FALSE,
	"nil":   NIL,
	"var":   VAR,
	"print": PRINT,
}

// Token is a lexical token with an optional literal value. Tokens are created
// by the scanner and immutable afterward; AST nodes retain the operator or
// name token they were built from so runtime errors can report source lines.
type Token struct {
	Type    TokenType
	Lexeme  string      // raw source slice
	Literal interface{} // parsed value for literals (float64, string, bool)
	Line    int         // 1-based
	Col     int         // 0-based column within line
}

func (t Token) String() string {
	if t.Lexeme != "" {
		return t.Lexeme
	}
	return t.Type.String()
}

// ValueTag enumerates the runtime kinds a Value may hold.
type ValueTag int

const (
	VTNil  ValueTag = iota // nil (no payload)
	VTBool                 // bool
	VTNum                  // float64
	VTStr                  // string
)

func (tag ValueTag) String() string {
	switch tag {
	case VTNil:
		return "nil"
	case VTBool:
		return "boolean"
	case VTNum:
		return "number"
	case VTStr:
		return "string"
	default:
		return "unknown"
	}
}

// Value is the universal runtime carrier: a tagged sum over nil, boolean,
// 64-bit float and string. The tag determines which Go type Data holds.
type Value struct {
	Tag  ValueTag
	Data interface{}
}

// Nil is the singleton nil Value.
var Nil = Value{Tag: VTNil}

func Bool(b bool) Value   { return Value{Tag: VTBool, Data: b} }
func Num(f float64) Value { return Value{Tag: VTNum, Data: f} }
func Str(s string) Value  { return Value{Tag: VTStr, Data: s} }

// Truthy reports the boolean reading of v: nil and false are falsy,
// everything else (including 0 and "") is truthy.
func (v Value) Truthy() bool {
	switch v.Tag {
	case VTNil:
		return false
	case VTBool:
		return v.Data.(bool)
	default:
		return true
	}
}

// Equal is type-homogeneous equality. Values of different tags are never
// equal; callers that want cross-type comparison to be an error must check
// tags themselves (the evaluator does).
func (v Value) Equal(o Value) bool {
	if v.Tag != o.Tag {
		return false
	}
	switch v.Tag {
	case VTNil:
		return true
	case VTBool:
		return v.Data.(bool) == o.Data.(bool)
	case VTNum:
		return v.Data.(float64) == o.Data.(float64)
	case VTStr:
		return v.Data.(string) == o.Data.(string)
	default:
		return false
	}
}

// String renders the display form used by print: numbers via the host's
// default float formatting, strings unquoted, booleans as true/false,
// nil as "nil".
func (v Value) String() string {
	switch v.Tag {
	case VTNil:
		return "nil"
	case VTBool:
		return strconv.FormatBool(v.Data.(bool))
	case VTNum:
		return strconv.FormatFloat(v.Data.(float64), 'g', -1, 64)
	case VTStr:
		return v.Data.(string)
	default:
		return fmt.Sprintf("<unknown %v>", v.Data)
	}
}
