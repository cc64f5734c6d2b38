// errors.go — typed stage errors and caret-snippet rendering.
//
// Each pipeline stage owns one error kind:
//
//   - *LexError     — non-fatal per character; the scanner accumulates them
//     and keeps going so one pass surfaces every lexical problem.
//   - *ParseError   — fatal to the current parse; carries the offending token.
//   - *RuntimeError — fatal to the current interpretation unit.
//
// All three are plain values (never panics crossing the API) so an embedding
// shell can decide whether to continue with the next input unit or abort.
//
// WrapErrorWithSource / WrapErrorWithName turn any of the three into a
// readable snippet with a caret under the offending column:
//
//	PARSE ERROR in demo.lox at 2:13: expected ';' after value
//
//	   1 | var a = 1;
//	   2 | print a + 1
//	     |            ^
//
// Other error values pass through unchanged.
package lox

import (
	"fmt"
	"strings"
)

// LexError is a lexical diagnostic. Line is 1-based, Col 0-based.
type LexError struct {
	Line int
	Col  int
	Msg  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("LEXICAL ERROR at %d:%d: %s", e.Line, e.Col+1, e.Msg)
}

// ParseError reports the first unrecoverable grammar violation, carrying the
// token the parser was looking at when it gave up.
type ParseError struct {
	Tok Token
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("PARSE ERROR at %d:%d: %s", e.Tok.Line, e.Tok.Col+1, e.Msg)
}

// RuntimeError is an execution-time failure. Line and Col are 1-based.
type RuntimeError struct {
	Line int
	Col  int
	Msg  string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("RUNTIME ERROR at %d:%d: %s", e.Line, e.Col, e.Msg)
}

// WrapErrorWithSource augments lex/parse/runtime errors with a caret snippet
// of src. Any other error is returned unchanged.
func WrapErrorWithSource(err error, src string) error {
	return WrapErrorWithName(err, "", src)
}

// WrapErrorWithName is WrapErrorWithSource with a source label (file name,
// "repl", ...) included in the header.
func WrapErrorWithName(err error, srcName, src string) error {
	switch e := err.(type) {
	case *LexError:
		return fmt.Errorf("%s", snippet(src, "LEXICAL ERROR", srcName, e.Line, e.Col+1, e.Msg))
	case *ParseError:
		return fmt.Errorf("%s", snippet(src, "PARSE ERROR", srcName, e.Tok.Line, e.Tok.Col+1, e.Msg))
	case *RuntimeError:
		return fmt.Errorf("%s", snippet(src, "RUNTIME ERROR", srcName, e.Line, e.Col, e.Msg))
	default:
		return err
	}
}

// snippet builds the header plus up to one line of context either side, with
// a caret under the 1-based column. Out-of-range coordinates are clamped so
// rendering never fails.
func snippet(src, header, name string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line < 1 {
		line = 1
	}
	if line > len(lines) {
		line = len(lines)
	}
	if col < 1 {
		col = 1
	}

	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "%s in %s at %d:%d: %s\n\n", header, name, line, col, msg)
	} else {
		fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	}
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
