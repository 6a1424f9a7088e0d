package translate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	// No trailing newline after END: the final lexeme is the last bytes of
	// the input and must still count as the end of the program.
	out, err := Translate([]byte("BEGIN\nLET x = 5\nPRINT x\nEND"))
	require.NoError(t, err)
	assert.Equal(t, `#include <iostream>

using namespace std;

int main(int argc, char *argv[])
{
	int x = 5;
	cout << x;
	return 0;
}
`, out)
}

func TestTranslate_EmptyProgram(t *testing.T) {
	out, err := Translate([]byte("BEGIN\nEND\n"))
	require.NoError(t, err)
	assert.Equal(t, `#include <iostream>

using namespace std;

int main(int argc, char *argv[])
{
	return 0;
}
`, out)
}

func TestTranslate_Statements(t *testing.T) {
	src := `BEGIN
INPUT n
LET r = 0
WHILE n > 0 REPEAT
LET r = n mod 2
IF r == 0
PRINT "even"
ELSEIF r == 1
PRINT "odd"
ELSE
PRINT r
ENDIF
LET n = n - 1
ENDWHILE
PRINT "done"
END
`
	out, err := Translate([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, `#include <iostream>

using namespace std;

int main(int argc, char *argv[])
{
	int n;
	cin >> n;
	int r = 0;
	while(n > 0)
	{
		r = n % 2;
		if(r == 0)
		{
			cout << "even";
		}
		else if(r == 1)
		{
			cout << "odd";
		}
		else
		{
			cout << r;
		}
		n = n - 1;
	}
	cout << "done";
	return 0;
}
`, out)
}

func TestTranslate_Deterministic(t *testing.T) {
	src := []byte("BEGIN\nINPUT a\nLET b = a * 2\nPRINT b\nEND\n")
	first, err := Translate(src)
	require.NoError(t, err)
	second, err := Translate(src)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestTranslate_DeclarationsAreEmittedOnce(t *testing.T) {
	out, err := Translate([]byte("BEGIN\nLET x = 1\nLET x = 2\nINPUT x\nPRINT x\nEND\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "int x"))
	assert.Contains(t, out, "\tint x = 1;\n\tx = 2;\n\tcin >> x;\n\tcout << x;\n")
}

func TestTranslate_SignedNumbers(t *testing.T) {
	out, err := Translate([]byte("BEGIN\nLET x = -5 + +3\nEND\n"))
	require.NoError(t, err)
	assert.Contains(t, out, "\tint x = -5 + +3;\n")
}

func TestTranslate_SyntaxErrors(t *testing.T) {
	for src, message := range map[string]string{
		"PRINT x\nEND":                  "cannot find the beginning of the program",
		"BEGIN\nLET x = 1\n":            "cannot find the end of the program",
		"BEGIN\nLET x = 1\nEND extra":   "unexpected tokens after END",
		"BEGIN LET x = 1\nEND":          "BEGIN must be followed by a newline",
		"BEGIN\nPRINT x\nEND":           "attempt to print an undeclared identifier",
		"BEGIN\nLET x = y\nEND":         "attempt to use an undeclared identifier in exp",
		"BEGIN\nLET 5 = 3\nEND":         "target of assignment must be an identifier",
		"BEGIN\nLET x 3\nEND":           "unexpected token in assignment",
		"BEGIN\nLET x = 1 PRINT x\nEND": "let_statement must be followed by a newline",
		"BEGIN\nPRINT +\nEND":           "unexpected tokens after PRINT",
		"BEGIN\nINPUT 5\nEND":           "unexpected tokens after INPUT",
		"BEGIN\nLET x = *\nEND":         "unexpected tokens in number",
		"BEGIN\nIF 1 + 2\nENDIF\nEND":   "unexpected tokens in condition",
		"BEGIN\nIF 1 > 2\nEND":          "cannot find the end of if_statement",
		"BEGIN\nLET x = 1\nWHILE x < 5\nREPEAT\nLET x = x + 1\nENDWHILE\nEND": "a WHILE literal and a REPEAT literal must be on the same line",
		"BEGIN\nLET x = 1\nWHILE x < 5 REPEAT\nLET x = x + 1\nEND":            "cannot find the end of while_statement",
	} {
		out, err := Translate([]byte(src))
		require.Error(t, err, src)
		assert.Empty(t, out, src)

		terr, ok := err.(*Error)
		require.True(t, ok, src)
		assert.Equal(t, KindSyntax, terr.Kind, src)
		assert.Equal(t, message, terr.Message(), src)
	}
}

func TestTranslate_LexicalErrors(t *testing.T) {
	for src, message := range map[string]string{
		"BEGIN\nLET x = 12.\nEND":    "no digits after decimal point",
		"BEGIN\nLET x = 5E\nEND":     "no digits in exponent part",
		"BEGIN\nPRINT \"broken END":  `unterminated string "broken END"`,
		"BEGIN\nPRINT \"broken\nEND": `unexpected character in string "broken"`,
		"BEGIN\nLET x = 1 & 2\nEND":  `unexpected character '&'`,
	} {
		out, err := Translate([]byte(src))
		require.Error(t, err, src)
		assert.Empty(t, out, src)

		terr, ok := err.(*Error)
		require.True(t, ok, src)
		assert.Equal(t, KindLexical, terr.Kind, src)
		assert.Equal(t, message, terr.Message(), src)
	}
}

func TestTranslate_WhileRepeatOnSameLine(t *testing.T) {
	out, err := Translate([]byte("BEGIN\nLET x = 0\nWHILE x < 3 REPEAT\nLET x = x + 1\nENDWHILE\nEND\n"))
	require.NoError(t, err)
	assert.Contains(t, out, "\twhile(x < 3)\n\t{\n\t\tx = x + 1;\n\t}\n")
}

func TestSymbolTable(t *testing.T) {
	s := NewSymbolTable()
	assert.False(t, s.Declared("x"))
	assert.True(t, s.Declare("x"))
	assert.True(t, s.Declared("x"))
	assert.False(t, s.Declare("x"))
}
