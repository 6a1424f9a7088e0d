package token

type Token int

const (
	INVALID Token = iota

	IDENT
	STRING
	NUMBER

	ASSIGN
	PLUS
	MINUS
	MUL
	DIV
	MOD
	GREATER
	LESS
	EQUAL
	GREATER_EQUAL
	LESS_EQUAL

	BEGIN
	END
	PRINT
	INPUT
	LET
	IF
	ELSEIF
	ELSE
	ENDIF
	WHILE
	REPEAT
	ENDWHILE

	NEWLINE
	EOF
)

// Keywords are matched case-sensitively against the whole lexeme. The
// all-lowercase "mod" is the one identifier-shaped lexeme that maps to an
// operator rather than a keyword.
var keywords = map[string]Token{
	"BEGIN":    BEGIN,
	"END":      END,
	"PRINT":    PRINT,
	"INPUT":    INPUT,
	"LET":      LET,
	"IF":       IF,
	"ELSEIF":   ELSEIF,
	"ELSE":     ELSE,
	"ENDIF":    ENDIF,
	"WHILE":    WHILE,
	"REPEAT":   REPEAT,
	"ENDWHILE": ENDWHILE,
	"mod":      MOD,
}

// Lookup classifies an identifier-shaped lexeme, returning IDENT for anything
// that isn't a keyword or "mod".
func Lookup(name string) Token {
	if t, ok := keywords[name]; ok {
		return t
	}
	return IDENT
}

func (t Token) IsKeyword() bool {
	return t >= BEGIN && t <= ENDWHILE
}

func (t Token) IsComparison() bool {
	switch t {
	case GREATER, LESS, EQUAL, GREATER_EQUAL, LESS_EQUAL:
		return true
	default:
		return false
	}
}

func (t Token) IsArithmetic() bool {
	switch t {
	case PLUS, MINUS, MUL, DIV, MOD:
		return true
	default:
		return false
	}
}
