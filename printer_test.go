// printer_test.go
package lox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Printer_PrefixForm(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"1 + 2 * 3", "(+ 1 (* 2 3))"},
		{"(45.67)", "(group 45.67)"},
		{"-123", "(- 123)"},
		{"!true", "(! true)"},
		{"1 - 2 - 3", "(- (- 1 2) 3)"},
		{`"str"`, `"str"`},
		{"nil", "nil"},
		{"someVar", "someVar"},
		{"a = 2", "(assign a 2)"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, FormatExpr(mustParseExpr(t, c.src)), "source: %q", c.src)
	}
}

func Test_Printer_Statements(t *testing.T) {
	stmts := mustParse(t, `var a = 1; var b; print a + 1; a;`)
	require.Equal(t, "(var a 1)", FormatStmt(stmts[0]))
	require.Equal(t, "(var b)", FormatStmt(stmts[1]))
	require.Equal(t, "(print (+ a 1))", FormatStmt(stmts[2]))
	require.Equal(t, "a", FormatStmt(stmts[3]))
}

func Test_FormatValue_QuotesStrings(t *testing.T) {
	require.Equal(t, `"hi"`, FormatValue(Str("hi")))
	require.Equal(t, "3", FormatValue(Num(3)))
	require.Equal(t, "nil", FormatValue(Nil))
	require.Equal(t, "true", FormatValue(Bool(true)))
}
