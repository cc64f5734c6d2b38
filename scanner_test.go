// scanner_test.go
package lox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustScan(t *testing.T, src string) []Token {
	t.Helper()
	toks, errs := Scan(src)
	require.Empty(t, errs, "unexpected lexical errors for %q", src)
	return toks
}

func tokenTypes(toks []Token) []TokenType {
	out := make([]TokenType, 0, len(toks))
	for _, tok := range toks {
		out = append(out, tok.Type)
	}
	return out
}

func wantTypes(t *testing.T, src string, want []TokenType) []Token {
	t.Helper()
	toks := mustScan(t, src)
	require.Equal(t, append(want, EOF), tokenTypes(toks), "source: %q", src)
	return toks
}

func Test_Scanner_SingleCharPunctuation(t *testing.T) {
	wantTypes(t, "(){},.-+;*", []TokenType{
		LEFT_PAREN, RIGHT_PAREN, LEFT_BRACE, RIGHT_BRACE,
		COMMA, DOT, MINUS, PLUS, SEMICOLON, STAR,
	})
}

func Test_Scanner_PunctuationCountProperty(t *testing.T) {
	// For inputs of only single-character punctuation, token count is
	// input length + 1 (the EOF token).
	for _, src := range []string{"(", "()", "{};,", "(((((", "+-*;.,"} {
		toks := mustScan(t, src)
		require.Len(t, toks, len(src)+1, "source: %q", src)
		require.Equal(t, EOF, toks[len(toks)-1].Type)
	}
}

func Test_Scanner_OneOrTwoCharOperators(t *testing.T) {
	wantTypes(t, "! != = == < <= > >=", []TokenType{
		BANG, NEQ, ASSIGN, EQ, LESS, LESS_EQ, GREATER, GREATER_EQ,
	})
	// mismatched lookahead emits the short token and reprocesses the
	// next character; nothing is ever skipped
	wantTypes(t, "!<=>", []TokenType{BANG, LESS_EQ, GREATER})
}

func Test_Scanner_CommentVsSlash(t *testing.T) {
	wantTypes(t, "1 / 2", []TokenType{NUMBER, SLASH, NUMBER})

	toks := mustScan(t, "1 // comment ;;; var\n2")
	require.Equal(t, []TokenType{NUMBER, NUMBER, EOF}, tokenTypes(toks))
	require.Equal(t, 1, toks[0].Line)
	require.Equal(t, 2, toks[1].Line)

	// comment at end of input, no trailing newline
	wantTypes(t, "1 // to the end", []TokenType{NUMBER})
}

func Test_Scanner_Numbers(t *testing.T) {
	toks := wantTypes(t, "123 45.67 0 0.5", []TokenType{NUMBER, NUMBER, NUMBER, NUMBER})
	require.Equal(t, 123.0, toks[0].Literal)
	require.Equal(t, 45.67, toks[1].Literal)
	require.Equal(t, 0.0, toks[2].Literal)
	require.Equal(t, 0.5, toks[3].Literal)
}

func Test_Scanner_TrailingDotNotConsumed(t *testing.T) {
	// "1." is NUMBER then DOT: the '.' only joins the number when a digit
	// follows it.
	toks := wantTypes(t, "1.", []TokenType{NUMBER, DOT})
	require.Equal(t, "1", toks[0].Lexeme)
	wantTypes(t, "1.foo", []TokenType{NUMBER, DOT, ID})
}

func Test_Scanner_Strings(t *testing.T) {
	toks := wantTypes(t, `"hello" ""`, []TokenType{STRING, STRING})
	require.Equal(t, "hello", toks[0].Literal)
	require.Equal(t, "", toks[1].Literal)
	require.Equal(t, `"hello"`, toks[0].Lexeme)
}

func Test_Scanner_MultilineString_CountsLines(t *testing.T) {
	toks := mustScan(t, "\"a\nb\" 1")
	require.Equal(t, []TokenType{STRING, NUMBER, EOF}, tokenTypes(toks))
	require.Equal(t, "a\nb", toks[0].Literal)
	require.Equal(t, 1, toks[0].Line, "string is attributed to the line it began on")
	require.Equal(t, 2, toks[1].Line)
}

func Test_Scanner_UnterminatedString(t *testing.T) {
	s := NewScanner("\n\"abc")
	toks, errs := s.Scan()
	require.True(t, s.HadError())
	require.Len(t, errs, 1)
	require.Contains(t, errs[0].Msg, "unterminated string")
	require.Equal(t, 2, errs[0].Line, "reported at the line the string began")
	// no token for the unterminated literal, but EOF is still emitted
	require.Equal(t, []TokenType{EOF}, tokenTypes(toks))
}

func Test_Scanner_IdentifiersAndKeywords(t *testing.T) {
	toks := wantTypes(t, "var foo print true false nil _x truthy nilish",
		[]TokenType{VAR, ID, PRINT, TRUE, FALSE, NIL, ID, ID, ID})
	require.Equal(t, "foo", toks[1].Lexeme)
	require.Equal(t, true, toks[3].Literal)
	require.Equal(t, false, toks[4].Literal)
	require.Nil(t, toks[5].Literal)
}

func Test_Scanner_ErrorRecovery_KeepsScanning(t *testing.T) {
	// lexical errors are non-fatal: the bad character is skipped and the
	// scan continues, so one pass surfaces all of them
	s := NewScanner("@ 1 $ 2")
	toks, errs := s.Scan()
	require.Len(t, errs, 2)
	require.Contains(t, errs[0].Msg, "unexpected character")
	require.Equal(t, []TokenType{NUMBER, NUMBER, EOF}, tokenTypes(toks))
}

func Test_Scanner_NonASCII_SingleDiagnostic(t *testing.T) {
	_, errs := Scan("λ")
	require.Len(t, errs, 1)
	require.Contains(t, errs[0].Msg, "λ")
}

func Test_Scanner_EOFLine(t *testing.T) {
	toks := mustScan(t, "1\n2\n")
	eof := toks[len(toks)-1]
	require.Equal(t, EOF, eof.Type)
	require.Equal(t, 3, eof.Line, "EOF is tagged with the line the scan ended on")
}

func Test_Scanner_WhitespaceDiscarded(t *testing.T) {
	wantTypes(t, " \t\r1 \t 2 ", []TokenType{NUMBER, NUMBER})
}

func Test_Scanner_ScenarioTokenCount(t *testing.T) {
	src := "var a = 1; var b = 2; print a + b;"
	toks := mustScan(t, src)
	require.Len(t, toks, 16) // three 5-token statements + EOF
	require.Equal(t, []TokenType{
		VAR, ID, ASSIGN, NUMBER, SEMICOLON,
		VAR, ID, ASSIGN, NUMBER, SEMICOLON,
		PRINT, ID, PLUS, ID, SEMICOLON,
		EOF,
	}, tokenTypes(toks))
}

func Test_Scanner_ColonIsError(t *testing.T) {
	// the ':' is skipped and the '=' after it is still scanned
	toks, errs := Scan("==:=")
	require.Len(t, errs, 1)
	require.True(t, strings.Contains(errs[0].Msg, "':'"))
	require.Equal(t, []TokenType{EQ, ASSIGN, EOF}, tokenTypes(toks))
}
